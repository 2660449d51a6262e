package models

type SiteInfo struct {
	CompanyName     string            `yaml:"companyName"`
	CompanySubtitle string            `yaml:"companySubtitle"`
	Tagline         string            `yaml:"tagline"`
	Email           string            `yaml:"email"`
	Phones          map[string]string `yaml:"phones"`
	Address         struct {
		Street string `yaml:"street"`
		City   string `yaml:"city"`
	} `yaml:"address"`
	FoundedYear int               `yaml:"foundedYear"`
	SocialMedia map[string]string `yaml:"socialMedia"`
}

type Service struct {
	ID          string `yaml:"id"`
	Icon        string `yaml:"icon"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	CTAText     string `yaml:"ctaText"`
	CTALink     string `yaml:"ctaLink"`
}

// IsAnchor reports whether the CTA scrolls within the page instead of navigating.
func (s Service) IsAnchor() bool {
	return len(s.CTALink) > 0 && s.CTALink[0] == '#'
}

type Feature struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type AboutSection struct {
	Heading     string    `yaml:"heading"`
	Description string    `yaml:"description"`
	Features    []Feature `yaml:"features"`
}

type Testimonial struct {
	ID   int    `yaml:"id"`
	Name string `yaml:"name"`
	Text string `yaml:"text"`
}

// Content is everything the catalog ships besides properties.
type Content struct {
	Site         SiteInfo      `yaml:"site"`
	Services     []Service     `yaml:"services"`
	About        AboutSection  `yaml:"about"`
	Testimonials []Testimonial `yaml:"testimonials"`
}
