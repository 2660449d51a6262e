package handlers

import (
	"net/http"
	"time"

	"prestige-properties/internal/errors"
	"prestige-properties/internal/handoff"
	"prestige-properties/internal/i18n"
	"prestige-properties/internal/middleware"
	"prestige-properties/internal/models"
	"prestige-properties/internal/services"
	"prestige-properties/internal/transformers"

	"github.com/gin-gonic/gin"
)

type languageLink struct {
	Locale i18n.Locale
	URL    string
	Active bool
}

// scrollDirective is read by the page script on load.
type scrollDirective struct {
	Kind    string
	Target  string
	Offset  int
	DelayMS int64
	Smooth  bool
}

func newScrollDirective(action *handoff.ScrollAction) *scrollDirective {
	if action == nil {
		return nil
	}
	d := &scrollDirective{
		Target:  action.Target,
		Offset:  action.Offset,
		DelayMS: action.Delay.Milliseconds(),
		Smooth:  action.Smooth,
	}
	switch action.Kind {
	case handoff.ScrollToContact:
		d.Kind = "contact"
	case handoff.ScrollToOffset:
		d.Kind = "offset"
	}
	return d
}

type pageData struct {
	Page      string
	Title     string
	Locale    i18n.Locale
	I18n      i18n.Translator
	Languages []languageLink
	Site      models.SiteInfo
	Year      int
	Scroll    *scrollDirective
}

type propertyCard struct {
	View  transformers.PropertyView
	Path  string
	Label string
}

type homePage struct {
	pageData
	Content     *models.Content
	Featured    []propertyCard
	Form        models.ContactSubmission
	FieldErrors map[string]string
	Status      *models.ContactStatus
}

type categoryTab struct {
	Label  string
	URL    string
	Active bool
}

type listingPage struct {
	pageData
	Category   string
	Categories []categoryTab
	Properties []propertyCard
}

type detailPage struct {
	pageData
	Property    transformers.PropertyView
	Gallery     services.GalleryView
	GalleryPath string
	InquiryPath string
}

type errorPage struct {
	pageData
	Heading string
	Message string
}

// Pages holds what every page handler needs to render.
type Pages struct {
	catalog    *i18n.Catalog
	properties *services.PropertyService
}

func NewPages(catalog *i18n.Catalog, properties *services.PropertyService) *Pages {
	return &Pages{catalog: catalog, properties: properties}
}

func (p *Pages) base(c *gin.Context, page, title string) pageData {
	locale := middleware.Locale(c)
	current := c.Request.URL.RequestURI()

	languages := make([]languageLink, 0, len(i18n.Supported))
	for _, l := range i18n.Supported {
		languages = append(languages, languageLink{
			Locale: l,
			URL:    i18n.SwitchPath(current, locale, l),
			Active: l.Code == locale.Code,
		})
	}

	return pageData{
		Page:      page,
		Title:     title,
		Locale:    locale,
		I18n:      p.catalog.For(locale),
		Languages: languages,
		Site:      p.properties.Content(c.Request.Context()).Site,
		Year:      time.Now().Year(),
	}
}

func (p *Pages) cards(c *gin.Context, views []transformers.PropertyView) []propertyCard {
	locale := middleware.Locale(c)
	label := p.catalog.T(locale, "properties.viewDetails")
	cards := make([]propertyCard, 0, len(views))
	for _, v := range views {
		cards = append(cards, propertyCard{
			View:  v,
			Path:  i18n.LocalizedPath(locale, "/properties/"+v.Slug),
			Label: label,
		})
	}
	return cards
}

// RenderError is the HTML ErrorRenderer.
func (p *Pages) RenderError(c *gin.Context, appErr *errors.AppError) {
	locale := middleware.Locale(c)
	message := appErr.UserMessage
	if appErr.MessageKey != "" {
		message = p.catalog.T(locale, appErr.MessageKey)
	}
	heading := http.StatusText(appErr.HTTPStatus)
	if appErr.Code == errors.ErrCodePropertyNotFound {
		heading = p.catalog.T(locale, "errors.notFoundTitle")
	}

	c.HTML(appErr.HTTPStatus, "error.html", errorPage{
		pageData: p.base(c, "error", heading),
		Heading:  heading,
		Message:  message,
	})
}

// NotFound answers unmatched routes.
func (p *Pages) NotFound(c *gin.Context) {
	_ = c.Error(errors.ErrPropertyNotFound)
}

func noStore(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
}
