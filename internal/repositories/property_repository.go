package repositories

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	apperrors "prestige-properties/internal/errors"
	"prestige-properties/internal/models"

	"gopkg.in/yaml.v3"
)

//go:embed data/catalog.yaml
var embeddedCatalog []byte

type catalogDocument struct {
	models.Content `yaml:",inline"`
	Properties     []models.Property `yaml:"properties"`
}

type propertyRepository struct {
	content    models.Content
	properties []models.Property
	bySlug     map[string]int
}

// NewPropertyRepository loads the catalog from path, or from the copy embedded in
// the binary when path is empty.
func NewPropertyRepository(path string) (PropertyRepository, error) {
	data := embeddedCatalog
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog: %w", err)
		}
		data = raw
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes a YAML catalog document.
func ParseCatalog(data []byte) (PropertyRepository, error) {
	var doc catalogDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog: %w", err)
	}

	repo := &propertyRepository{
		content:    doc.Content,
		properties: doc.Properties,
		bySlug:     make(map[string]int, len(doc.Properties)),
	}
	for i, p := range doc.Properties {
		if p.Slug == "" {
			return nil, fmt.Errorf("catalog property %d has no slug", p.ID)
		}
		if _, dup := repo.bySlug[p.Slug]; dup {
			return nil, fmt.Errorf("duplicate catalog slug %q", p.Slug)
		}
		repo.bySlug[p.Slug] = i
	}
	return repo, nil
}

// FindBySlug returns published and unpublished properties alike; the detail page is
// reachable by direct link even when the listing hides it.
func (r *propertyRepository) FindBySlug(ctx context.Context, slug string) (*models.Property, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	i, ok := r.bySlug[slug]
	if !ok {
		return nil, fmt.Errorf("slug %q: %w", slug, apperrors.ErrPropertyNotFound)
	}
	property := r.properties[i]
	return &property, nil
}

func (r *propertyRepository) FindPublished(ctx context.Context, category string) ([]models.Property, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	matchAll := category == "" || category == models.CategoryAll
	properties := make([]models.Property, 0, len(r.properties))
	for _, p := range r.properties {
		if !p.IsPublished() {
			continue
		}
		if matchAll || p.Category == category {
			properties = append(properties, p)
		}
	}
	return properties, nil
}

// FindFeatured returns at most limit published, featured properties in catalog order.
// A limit <= 0 returns all of them.
func (r *propertyRepository) FindFeatured(ctx context.Context, limit int) ([]models.Property, error) {
	published, err := r.FindPublished(ctx, models.CategoryAll)
	if err != nil {
		return nil, err
	}
	featured := make([]models.Property, 0, len(published))
	for _, p := range published {
		if !p.Featured {
			continue
		}
		featured = append(featured, p)
		if limit > 0 && len(featured) == limit {
			break
		}
	}
	return featured, nil
}

func (r *propertyRepository) Content(ctx context.Context) *models.Content {
	content := r.content
	return &content
}
