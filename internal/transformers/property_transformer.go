package transformers

import (
	"strings"

	"prestige-properties/internal/models"
)

// PropertyView is a catalog property with everything a template needs resolved.
type PropertyView struct {
	models.Property
	ImageURLs   []string
	CoverImage  string
	AirbnbURL   string
	BookingURL  string
	HasAirbnb   bool
	HasBooking  bool
	InquiryKind string
	// Status is the listing badge: "available" or "booked" for rentals, "forSale" otherwise.
	Status string
}

type propertyTransformer struct {
	imageBaseURL  string
	fallbackImage string
	links         LinkTransformer
}

func NewPropertyTransformer(imageBaseURL, fallbackImage string, links LinkTransformer) PropertyTransformer {
	return &propertyTransformer{
		imageBaseURL:  strings.TrimRight(imageBaseURL, "/"),
		fallbackImage: fallbackImage,
		links:         links,
	}
}

// Images returns the fallback alone when images are switched off, missing, or not
// hosted yet (no folder configured). An empty folder means the CDN root.
func (t *propertyTransformer) Images(p *models.Property) []string {
	if !p.ImagesEnabled() || len(p.Images) == 0 || p.CloudinaryFolder == nil {
		return []string{t.fallbackImage}
	}

	prefix := t.imageBaseURL
	if folder := strings.Trim(*p.CloudinaryFolder, "/"); folder != "" {
		prefix += "/" + folder
	}

	urls := make([]string, 0, len(p.Images))
	for _, name := range p.Images {
		urls = append(urls, prefix+"/"+name)
	}
	return urls
}

func (t *propertyTransformer) ToView(p *models.Property) PropertyView {
	images := t.Images(p)
	view := PropertyView{
		Property:    *p,
		ImageURLs:   images,
		CoverImage:  images[0],
		InquiryKind: DefaultInquiryKind(p),
		Status:      ListingStatus(p),
	}
	view.AirbnbURL, view.HasAirbnb = t.links.NormalizeExternalLink(p.AirbnbLink)
	view.BookingURL, view.HasBooking = t.links.NormalizeExternalLink(p.BookingLink)
	return view
}

func (t *propertyTransformer) ToViews(properties []models.Property) []PropertyView {
	views := make([]PropertyView, 0, len(properties))
	for i := range properties {
		views = append(views, t.ToView(&properties[i]))
	}
	return views
}

// DefaultInquiryKind is "booking" for rentals and "information" for everything else.
func DefaultInquiryKind(p *models.Property) string {
	if p.IsShortTermRental() {
		return "booking"
	}
	return "information"
}

func ListingStatus(p *models.Property) string {
	switch {
	case !p.IsShortTermRental():
		return "forSale"
	case p.Available:
		return "available"
	default:
		return "booked"
	}
}
