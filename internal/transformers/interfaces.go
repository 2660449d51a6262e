package transformers

import (
	"prestige-properties/internal/models"
)

type PropertyTransformer interface {
	// Images resolves the display image list of a property; it is never empty.
	Images(p *models.Property) []string
	ToView(p *models.Property) PropertyView
	ToViews(properties []models.Property) []PropertyView
}

type LinkTransformer interface {
	// NormalizeExternalLink returns the link to render and whether to render it at all.
	NormalizeExternalLink(input string) (string, bool)
}
