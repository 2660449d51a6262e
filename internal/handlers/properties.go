package handlers

import (
	"fmt"
	"net/http"

	"prestige-properties/internal/i18n"
	"prestige-properties/internal/middleware"
	"prestige-properties/internal/models"
	"prestige-properties/internal/services"

	"github.com/gin-gonic/gin"
)

type PropertyHandler struct {
	pages      *Pages
	properties *services.PropertyService
	gallery    *services.GalleryService
}

func NewPropertyHandler(pages *Pages, properties *services.PropertyService, gallery *services.GalleryService) *PropertyHandler {
	return &PropertyHandler{pages: pages, properties: properties, gallery: gallery}
}

var categoryTabs = []struct {
	value string
	label string
}{
	{models.CategoryAll, "properties.all"},
	{models.CategoryShortTermRental, "properties.shortTermRental"},
	{models.CategoryForSale, "properties.forSaleCategory"},
}

// List renders GET [/{locale}]/properties?category=. Unknown categories list nothing.
func (h *PropertyHandler) List(c *gin.Context) {
	locale := middleware.Locale(c)
	category := c.DefaultQuery("category", models.CategoryAll)

	views, err := h.properties.Listing(c.Request.Context(), category)
	if err != nil {
		_ = c.Error(err)
		return
	}

	base := i18n.LocalizedPath(locale, "/properties")
	tabs := make([]categoryTab, 0, len(categoryTabs))
	for _, tab := range categoryTabs {
		url := base
		if tab.value != models.CategoryAll {
			url = fmt.Sprintf("%s?category=%s", base, tab.value)
		}
		tabs = append(tabs, categoryTab{
			Label:  h.pages.catalog.T(locale, tab.label),
			URL:    url,
			Active: tab.value == category,
		})
	}

	c.HTML(http.StatusOK, "properties.html", listingPage{
		pageData:   h.pages.base(c, "properties", h.pages.catalog.T(locale, "properties.allProperties")),
		Category:   category,
		Categories: tabs,
		Properties: h.pages.cards(c, views),
	})
}

// Detail renders GET [/{locale}]/properties/{slug}. A plain view starts a fresh
// gallery; ?resume=1 (the redirect after a gallery form post) keeps the stored one.
func (h *PropertyHandler) Detail(c *gin.Context) {
	ctx := c.Request.Context()
	locale := middleware.Locale(c)
	slug := c.Param("slug")

	view, err := h.properties.Detail(ctx, slug)
	if err != nil {
		_ = c.Error(err)
		return
	}

	state := middleware.SessionState(c)
	gallery := h.gallery.Open
	if c.Query("resume") == "1" {
		gallery = h.gallery.Resume
	}
	controller := gallery(ctx, state, slug, view.ImageURLs)

	detailPath := i18n.LocalizedPath(locale, "/properties/"+slug)
	noStore(c)
	c.HTML(http.StatusOK, "property.html", detailPage{
		pageData:    h.pages.base(c, "property", view.Name),
		Property:    *view,
		Gallery:     services.NewGalleryView(controller),
		GalleryPath: detailPath + "/gallery",
		InquiryPath: detailPath + "/inquiry",
	})
}
