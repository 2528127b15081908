package content

// Slide is one panel of the home page hero banner.
type Slide struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Category    string `json:"category"`
}

// Testimonial is an athlete quote.
type Testimonial struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Sport string `json:"sport"`
	Quote string `json:"quote"`
	Image string `json:"image"`
}

type Benefit struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Section is a titled block of the about page.
type Section struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

type TeamMember struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Bio   string `json:"bio"`
}

// Home is the home page payload. Hero and Testimonials carry the deck
// position the client asked for, already wrapped into range.
type Home struct {
	Slides       []Slide       `json:"slides"`
	Hero         Carousel      `json:"hero"`
	Testimonials []Testimonial `json:"testimonials"`
	Quotes       Carousel      `json:"quotes"`
	Benefits     []Benefit     `json:"benefits"`
}

type About struct {
	Sections []Section    `json:"sections"`
	Team     []TeamMember `json:"team"`
}
