package models

// Category values used by the catalog and the listing filter.
const (
	CategoryAll             = "all"
	CategoryShortTermRental = "short-term-rental"
	CategoryForSale         = "for-sale"
)

// AmenityGroup is one titled block of amenities on the detail page.
type AmenityGroup struct {
	Category string   `yaml:"category" json:"category"`
	Items    []string `yaml:"items" json:"items"`
}

type Property struct {
	ID              int            `yaml:"id" json:"id"`
	Slug            string         `yaml:"slug" json:"slug"`
	Name            string         `yaml:"name" json:"name"`
	Location        string         `yaml:"location" json:"location"`
	Category        string         `yaml:"category" json:"category"`
	Type            string         `yaml:"type" json:"type"`
	Bedrooms        int            `yaml:"bedrooms" json:"bedrooms"`
	Bathrooms       int            `yaml:"bathrooms" json:"bathrooms"`
	MaxGuests       int            `yaml:"maxGuests" json:"maxGuests"`
	Area            string         `yaml:"area" json:"area"`
	Price           string         `yaml:"price" json:"price"`
	PriceUnit       string         `yaml:"priceUnit" json:"priceUnit"`
	Description     string         `yaml:"description" json:"description"`
	LongDescription string         `yaml:"longDescription" json:"longDescription"`
	Features        []string       `yaml:"features" json:"features"`
	Amenities       []AmenityGroup `yaml:"amenities" json:"amenities"`
	// nil means the images are not hosted yet; "" means the CDN root folder.
	CloudinaryFolder *string  `yaml:"cloudinaryFolder" json:"cloudinaryFolder,omitempty"`
	Images           []string `yaml:"images" json:"images"`
	ShowImages       *bool    `yaml:"showImages" json:"showImages,omitempty"`
	Available        bool     `yaml:"available" json:"available"`
	Published        *bool    `yaml:"published" json:"published,omitempty"`
	Featured         bool     `yaml:"featured" json:"featured"`
	AirbnbLink       string   `yaml:"airbnbLink" json:"airbnbLink"`
	BookingLink      string   `yaml:"bookingLink" json:"bookingLink"`
}

// IsPublished treats an unset flag as published.
func (p *Property) IsPublished() bool {
	return p.Published == nil || *p.Published
}

// ImagesEnabled treats an unset flag as enabled.
func (p *Property) ImagesEnabled() bool {
	return p.ShowImages == nil || *p.ShowImages
}

func (p *Property) IsShortTermRental() bool {
	return p.Category == CategoryShortTermRental
}
