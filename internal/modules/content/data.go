package content

var slides = []Slide{
	{
		Title:       "PROTON",
		Description: "Pre-workout energy boost with electrolytes and B vitamins",
		Image:       "/proton-bottle.png",
		Category:    "proton",
	},
	{
		Title:       "NEUTRON",
		Description: "Sustained energy for endurance with complex carbs and minerals",
		Image:       "/neutron-bottle.png",
		Category:    "neutron",
	},
	{
		Title:       "ELECTRON",
		Description: "Post-workout recovery with protein and antioxidants",
		Image:       "/electron-bottle.png",
		Category:    "electron",
	},
}

var testimonials = []Testimonial{
	{
		ID:    1,
		Name:  "Alex Johnson",
		Sport: "Professional Basketball",
		Quote: "Zenith Zap's Proton series gives me the quick energy I need before games. It's a game-changer for my pre-game routine.",
		Image: "/athlete-1.jpg",
	},
	{
		ID:    2,
		Name:  "Sarah Williams",
		Sport: "Olympic Swimmer",
		Quote: "I've tried many sports drinks, but Neutron's balanced formula keeps me hydrated through my longest training sessions.",
		Image: "/athlete-2.jpg",
	},
	{
		ID:    3,
		Name:  "Marcus Chen",
		Sport: "Triathlete",
		Quote: "The Electron recovery drinks have cut my recovery time significantly. I can train harder, more often with less fatigue.",
		Image: "/athlete-3.jpg",
	},
}

var benefits = []Benefit{
	{
		Title:       "Rapid Hydration",
		Description: "Our electrolyte formula delivers hydration 2X faster than water alone, keeping you at peak performance.",
	},
	{
		Title:       "Enhanced Endurance",
		Description: "Scientifically balanced carbohydrates provide sustained energy throughout your entire workout or competition.",
	},
	{
		Title:       "Faster Recovery",
		Description: "Amino acids and antioxidants speed muscle recovery and reduce soreness after intense training sessions.",
	},
}

var aboutSections = []Section{
	{
		ID:       "origin",
		Title:    "The Zenith Zap Origin Story",
		Subtitle: "Where It All Began",
		Description: "Founded in 2020 by a team of sports scientists and professional athletes, Zenith Zap was born from a simple question: " +
			"why do generic sports drinks fail to address the specific needs of athletes?",
		Image: "/about-origin.jpg",
	},
	{
		ID:       "science",
		Title:    "The Science of Hydration",
		Subtitle: "Our Technology",
		Description: "At Zenith Zap, we leverage cutting-edge research in sports nutrition and hydration science. " +
			"Our proprietary Tri-Phase Formula addresses the specific needs of athletes before, during, and after activity.",
		Image: "/about-science.jpg",
	},
	{
		ID:       "commitment",
		Title:    "Commitment to Athletes",
		Subtitle: "Why We're Different",
		Description: "We believe that elite hydration should be available to every athlete, not just professionals. " +
			"From weekend warriors to Olympic competitors, Zenith Zap is designed to help you push your limits and achieve your personal best.",
		Image: "/about-commitment.jpg",
	},
}

var team = []TeamMember{
	{Name: "Dr. Alex Chen", Title: "Founder & CEO", Bio: "Former Olympic medalist with a PhD in Sports Nutrition"},
	{Name: "Dr. Sarah Williams", Title: "Chief Science Officer", Bio: "Pioneering researcher in athletic hydration and performance"},
	{Name: "Michael Rodriguez", Title: "Athletic Performance Director", Bio: "Former pro athlete and certified strength and conditioning specialist"},
}
