package services

import (
	"context"
	"fmt"

	"prestige-properties/internal/models"
	"prestige-properties/internal/repositories"
	"prestige-properties/internal/transformers"
)

// FeaturedLimit is how many featured properties the home page shows.
const FeaturedLimit = 2

type PropertyService struct {
	repo  repositories.PropertyRepository
	trans transformers.PropertyTransformer
}

func NewPropertyService(repo repositories.PropertyRepository, trans transformers.PropertyTransformer) *PropertyService {
	return &PropertyService{repo: repo, trans: trans}
}

// Listing returns the published properties of a category; "" and "all" list everything.
func (s *PropertyService) Listing(ctx context.Context, category string) ([]transformers.PropertyView, error) {
	properties, err := s.repo.FindPublished(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	return s.trans.ToViews(properties), nil
}

func (s *PropertyService) Featured(ctx context.Context) ([]transformers.PropertyView, error) {
	properties, err := s.repo.FindFeatured(ctx, FeaturedLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list featured properties: %w", err)
	}
	return s.trans.ToViews(properties), nil
}

// Detail resolves a slug; unknown slugs wrap errors.ErrPropertyNotFound.
func (s *PropertyService) Detail(ctx context.Context, slug string) (*transformers.PropertyView, error) {
	property, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	view := s.trans.ToView(property)
	return &view, nil
}

func (s *PropertyService) Content(ctx context.Context) *models.Content {
	return s.repo.Content(ctx)
}
