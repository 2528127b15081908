package content

// Service serves the static marketing pages.
type Service interface {
	Home(slide, quote int) Home
	About() About
}

type service struct {
	slides       []Slide
	testimonials []Testimonial
	benefits     []Benefit
	about        About
}

// NewService returns the service over the built-in brand content.
func NewService() Service {
	return &service{
		slides:       slides,
		testimonials: testimonials,
		benefits:     benefits,
		about:        About{Sections: aboutSections, Team: team},
	}
}

func (s *service) Home(slide, quote int) Home {
	return Home{
		Slides:       s.slides,
		Hero:         NewCarousel(len(s.slides)).Goto(slide),
		Testimonials: s.testimonials,
		Quotes:       NewCarousel(len(s.testimonials)).Goto(quote),
		Benefits:     s.benefits,
	}
}

func (s *service) About() About { return s.about }
