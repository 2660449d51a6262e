package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"prestige-properties/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rentalSlug = "onepacific-tb-15n"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type relayStub struct {
	status int32
	calls  int32
	last   atomic.Value
}

func newRelayStub(t *testing.T) (*relayStub, string) {
	t.Helper()
	stub := &relayStub{status: http.StatusOK}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&stub.calls, 1)
		_ = r.ParseForm()
		stub.last.Store(r.PostForm)
		w.WriteHeader(int(atomic.LoadInt32(&stub.status)))
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(server.Close)
	return stub, server.URL
}

func newTestApp(t *testing.T) (*App, *relayStub) {
	t.Helper()
	stub, endpoint := newRelayStub(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "session:\n  secret: test-secret-test-secret-test-secret\nform_relay:\n  endpoint: " + endpoint + "\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))
	t.Setenv("SESSION_BACKEND", "memory")
	t.Setenv("CATALOG_PATH", "")

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	app, err := NewApp(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(app.cleanup)
	return app, stub
}

// browser replays cookies between requests like a real client would.
type browser struct {
	t       *testing.T
	handler http.Handler
	cookies map[string]*http.Cookie
}

func newBrowser(t *testing.T, app *App) *browser {
	return &browser{t: t, handler: app.Router, cookies: map[string]*http.Cookie{}}
}

func (b *browser) do(req *http.Request) *httptest.ResponseRecorder {
	for _, c := range b.cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	b.handler.ServeHTTP(rec, req)
	for _, c := range rec.Result().Cookies() {
		b.cookies[c.Name] = c
	}
	return rec
}

func (b *browser) get(path string) *httptest.ResponseRecorder {
	return b.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (b *browser) post(path string, form url.Values, accept string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	return b.do(req)
}

func TestHomePage(t *testing.T) {
	app, _ := newTestApp(t)
	b := newBrowser(t, app)

	rec := b.get("/")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "J&amp;M PRESTIGE")
	assert.Contains(t, body, "Mactan Newtown One Pacific 1 Bedroom")
	assert.Contains(t, body, "The Reef Island Resort")
	assert.NotContains(t, body, "data-scroll-kind")
	assert.Contains(t, b.cookies, "prestige_session")

	rec = b.get("/pl")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `lang="pl"`)
	assert.Contains(t, rec.Body.String(), "Polecane nieruchomości")
}

func TestInquiryHandoff(t *testing.T) {
	app, _ := newTestApp(t)
	b := newBrowser(t, app)

	require.Equal(t, http.StatusOK, b.get("/properties/"+rentalSlug).Code)

	rec := b.post("/properties/"+rentalSlug+"/inquiry", url.Values{"kind": {"booking"}}, "")
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/#contact", rec.Header().Get("Location"))

	rec = b.get("/")
	body := rec.Body.String()
	assert.Contains(t, body, "interested in booking Mactan Newtown One Pacific 1 Bedroom")
	assert.Contains(t, body, `data-scroll-kind="contact"`)
	assert.Contains(t, body, `data-scroll-delay="100"`)

	// delivered at most once
	rec = b.get("/")
	assert.NotContains(t, rec.Body.String(), "interested in booking")
	assert.NotContains(t, rec.Body.String(), "data-scroll-kind")
}

func TestInquiryHandoff_LocalizedDefaultKind(t *testing.T) {
	app, _ := newTestApp(t)
	b := newBrowser(t, app)

	rec := b.post("/pl/properties/reef-island-resort-condo/inquiry", url.Values{}, "")
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/pl#contact", rec.Header().Get("Location"))

	rec = b.get("/pl")
	assert.Contains(t, rec.Body.String(), "Chciałbym uzyskać informacje o The Reef Island Resort - 11th Floor Condo.")
}

func TestInquiry_Rejects(t *testing.T) {
	app, _ := newTestApp(t)
	b := newBrowser(t, app)

	rec := b.post("/properties/"+rentalSlug+"/inquiry", url.Values{"kind": {"auction"}}, "application/json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = b.post("/properties/nope/inquiry", url.Values{}, "application/json")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPropertyDetail(t *testing.T) {
	app, _ := newTestApp(t)
	b := newBrowser(t, app)

	rec := b.get("/properties/" + rentalSlug)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "https://res.cloudinary.com/du85wguro/image/upload/op_tb15n1_uoz4ec")
	assert.Contains(t, body, "https://www.airbnb.com/rooms/1617983795154763749")
	assert.NotContains(t, body, "View on Booking.com")
	assert.Contains(t, body, "Contact to Book")
	assert.Contains(t, body, `class="gallery-next"`)
	assert.Contains(t, body, `<span class="status status-available">Available</span>`)

	rec = b.get("/properties/hayat-sky-tower-sale")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `data-current="/static/logo.png"`)
	assert.NotContains(t, rec.Body.String(), `class="gallery-next"`)
	assert.Contains(t, rec.Body.String(), "Request Information")
	assert.Contains(t, rec.Body.String(), `<span class="status status-forSale">For Sale</span>`)

	rec = b.get("/pl/properties/" + rentalSlug)
	assert.Contains(t, rec.Body.String(), `<span class="status status-available">Dostępne</span>`)
}

func TestPropertyDetail_NotFound(t *testing.T) {
	app, _ := newTestApp(t)
	b := newBrowser(t, app)

	rec := b.get("/properties/does-not-exist")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "doesn&#39;t exist")

	rec = b.get("/tl/properties/does-not-exist")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Hindi umiiral")

	req := httptest.NewRequest(http.MethodGet, "/properties/does-not-exist", nil)
	req.Header.Set("Accept", "application/json")
	rec = b.do(req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "PROPERTY_NOT_FOUND")

	assert.Equal(t, http.StatusNotFound, b.get("/nowhere").Code)
}

func decodeGallery(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var view map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	return view
}

func TestGalleryJSON(t *testing.T) {
	app, _ := newTestApp(t)
	b := newBrowser(t, app)
	base := "/properties/" + rentalSlug + "/gallery/"

	require.Equal(t, http.StatusOK, b.get("/properties/"+rentalSlug).Code)

	view := decodeGallery(t, b.post(base+"next", nil, "application/json"))
	assert.Equal(t, float64(1), view["index"])
	current := view["current"].(string)

	view = decodeGallery(t, b.post(base+"failed", url.Values{"image": {current}}, "application/json"))
	assert.Len(t, view["images"], 6)
	assert.Equal(t, float64(1), view["index"])
	assert.NotEqual(t, current, view["current"])

	view = decodeGallery(t, b.post(base+"prev", nil, "application/json"))
	assert.Equal(t, float64(0), view["index"])

	view = decodeGallery(t, b.post(base+"jump", url.Values{"index": {"5"}}, "application/json"))
	assert.Equal(t, float64(5), view["index"])

	rec := b.post(base+"jump", url.Values{"index": {"abc"}}, "application/json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = b.post(base+"shuffle", nil, "application/json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGalleryFormPost(t *testing.T) {
	app, _ := newTestApp(t)
	b := newBrowser(t, app)

	require.Equal(t, http.StatusOK, b.get("/tl/properties/"+rentalSlug).Code)
	b.post("/tl/properties/"+rentalSlug+"/gallery/next", nil, "")
	rec := b.post("/tl/properties/"+rentalSlug+"/gallery/next", nil, "")
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/tl/properties/"+rentalSlug+"?resume=1#gallery", rec.Header().Get("Location"))

	rec = b.get("/tl/properties/" + rentalSlug + "?resume=1")
	assert.Contains(t, rec.Body.String(), `<span id="gallery-position">3</span>`)

	// a plain visit starts the gallery over
	rec = b.get("/tl/properties/" + rentalSlug)
	assert.Contains(t, rec.Body.String(), `<span id="gallery-position">1</span>`)
}

func TestScrollRestore(t *testing.T) {
	app, _ := newTestApp(t)
	b := newBrowser(t, app)
	b.get("/")

	rec := b.post("/scroll", url.Values{"y": {"640"}}, "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	body := b.get("/").Body.String()
	assert.Contains(t, body, `data-scroll-kind="offset"`)
	assert.Contains(t, body, `data-scroll-offset="640"`)

	assert.NotContains(t, b.get("/").Body.String(), "data-scroll-kind")

	rec = b.post("/scroll", url.Values{}, "application/json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestScrollOffsetBounds(t *testing.T) {
	tests := []struct {
		name   string
		y      string
		status int
		offset string
	}{
		{"fractional", "640.7", http.StatusNoContent, `data-scroll-offset="640"`},
		{"negative", "-80", http.StatusNoContent, `data-scroll-offset="0"`},
		{"huge", "1e300", http.StatusNoContent, `data-scroll-offset="16777216"`},
		{"not a number", "NaN", http.StatusBadRequest, ""},
		{"infinite", "+Inf", http.StatusBadRequest, ""},
		{"garbage", "far", http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _ := newTestApp(t)
			b := newBrowser(t, app)
			b.get("/")

			rec := b.post("/scroll", url.Values{"y": {tt.y}}, "application/json")
			require.Equal(t, tt.status, rec.Code)

			body := b.get("/").Body.String()
			if tt.offset == "" {
				assert.NotContains(t, body, "data-scroll-kind")
				return
			}
			assert.Contains(t, body, tt.offset)
		})
	}
}

func TestContactJSON(t *testing.T) {
	app, relay := newTestApp(t)
	b := newBrowser(t, app)
	form := url.Values{"name": {"Ana"}, "email": {"ana@example.com"}, "message": {"Hello"}}

	rec := b.post("/contact", form, "application/json")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"success","message":"Thank you! Your message has been sent successfully.","clearAfterMs":5000}`, rec.Body.String())
	sent := relay.last.Load().(url.Values)
	assert.Equal(t, "Ana", sent.Get("name"))
	assert.Equal(t, "New inquiry from the website", sent.Get("_subject"))

	atomic.StoreInt32(&relay.status, http.StatusInternalServerError)
	rec = b.post("/pl/contact", form, "application/json")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "wystąpił błąd")

	rec = b.post("/contact", url.Values{"email": {"nope"}}, "application/json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"fields"`)
	assert.Equal(t, int32(2), atomic.LoadInt32(&relay.calls))
}

func TestContactFormPost(t *testing.T) {
	app, _ := newTestApp(t)
	b := newBrowser(t, app)
	b.get("/")

	rec := b.post("/contact", url.Values{"name": {"Ana"}, "email": {"ana@example.com"}, "message": {"Hello"}}, "")
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/#contact", rec.Header().Get("Location"))

	body := b.get("/").Body.String()
	assert.Contains(t, body, "banner-success")
	assert.Contains(t, body, `data-clear-after="5000"`)

	assert.NotContains(t, b.get("/").Body.String(), "banner-success")

	b.post("/contact", url.Values{"name": {"Ana"}, "email": {"bad"}, "message": {"Hello"}}, "")
	body = b.get("/").Body.String()
	assert.Contains(t, body, "banner-error")
	assert.Contains(t, body, "Please enter a valid email address.")
	assert.Contains(t, body, `value="Ana"`)
}

func TestListing(t *testing.T) {
	app, _ := newTestApp(t)
	b := newBrowser(t, app)

	body := b.get("/properties?category=for-sale").Body.String()
	assert.Contains(t, body, "The Reef Island Resort")
	assert.NotContains(t, body, "Mactan Newtown One Pacific")
	assert.NotContains(t, body, "Luxury Villa with Ocean View")

	body = b.get("/properties?category=castles").Body.String()
	assert.Contains(t, body, "No properties found in this category.")

	body = b.get("/tl/properties").Body.String()
	assert.Contains(t, body, `href="/pl/properties"`)
	assert.Contains(t, body, `href="/properties"`)
	assert.Contains(t, body, `href="/tl/properties/`+rentalSlug+`"`)
}

func TestHealth(t *testing.T) {
	app, _ := newTestApp(t)
	rec := newBrowser(t, app).get("/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","session_backend":"memory"}`, rec.Body.String())
}

func TestRateLimitedContact(t *testing.T) {
	app, _ := newTestApp(t)
	b := newBrowser(t, app)
	form := url.Values{"name": {"Ana"}, "email": {"ana@example.com"}, "message": {"Hello"}}

	var last int
	for i := 0; i <= app.Config.RateLimit.Burst; i++ {
		last = b.post("/contact", form, "application/json").Code
	}
	assert.Equal(t, http.StatusTooManyRequests, last)
}

func TestLocaleDetection(t *testing.T) {
	app, _ := newTestApp(t)
	b := newBrowser(t, app)

	req := httptest.NewRequest(http.MethodGet, "/properties?category=for-sale", nil)
	req.Header.Set("Accept-Language", "pl-PL,pl;q=0.9,en;q=0.5")
	rec := b.do(req)
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/pl/properties?category=for-sale", rec.Header().Get("Location"))

	req = httptest.NewRequest(http.MethodGet, "/pl/properties?category=for-sale", nil)
	req.Header.Set("Accept-Language", "pl-PL,pl;q=0.9,en;q=0.5")
	require.Equal(t, http.StatusOK, b.do(req).Code)

	// switching to English afterwards is honored
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "pl-PL,pl;q=0.9,en;q=0.5")
	rec = b.do(req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `lang="en"`)
}
