package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	"prestige-properties/internal/carousel"
	"prestige-properties/internal/repositories"
	"prestige-properties/pkg/logger"
	"prestige-properties/pkg/metrics"
)

// Gallery actions accepted by Apply.
const (
	GalleryNext   = "next"
	GalleryPrev   = "prev"
	GalleryJump   = "jump"
	GalleryFailed = "failed"
)

// CarouselKey is the session-state key of a property's gallery.
func CarouselKey(slug string) string {
	return "carousel:" + slug
}

// GalleryView is the JSON answer of the gallery endpoints.
type GalleryView struct {
	Images         []string `json:"images"`
	Index          int      `json:"index"`
	Current        string   `json:"current"`
	ShowNavigation bool     `json:"showNavigation"`
	Placeholder    bool     `json:"placeholder"`
}

func NewGalleryView(c *carousel.Controller) GalleryView {
	return GalleryView{
		Images:         c.Images(),
		Index:          c.Index(),
		Current:        c.Current(),
		ShowNavigation: c.ShowNavigation(),
		Placeholder:    c.IsPlaceholder(),
	}
}

// GalleryCommand is one gallery interaction.
type GalleryCommand struct {
	Action string
	// Index is the target of GalleryJump.
	Index int
	// Image, when set on GalleryFailed, is the reference the browser failed to load.
	// Reports for an image that is no longer current are stale and ignored.
	Image string
}

type GalleryService struct {
	placeholder string
	locks       *keyedMutex
}

func NewGalleryService(placeholder string) *GalleryService {
	return &GalleryService{placeholder: placeholder, locks: newKeyedMutex()}
}

// Open starts a fresh gallery for a detail page view and persists it. Earlier state
// for the same slug is discarded.
func (s *GalleryService) Open(ctx context.Context, state repositories.SessionState, slug string, images []string) *carousel.Controller {
	c := carousel.New(images, s.placeholder)
	s.save(ctx, state, slug, c)
	return c
}

// Resume returns the stored gallery of slug, or a fresh one when none is stored.
func (s *GalleryService) Resume(ctx context.Context, state repositories.SessionState, slug string, images []string) *carousel.Controller {
	return s.load(ctx, state, slug, images)
}

// Apply loads the persisted gallery (or opens one from images when none is stored),
// runs the command and persists the result. Commands for the same session and slug
// run one at a time within this process, so overlapping clicks are not lost.
func (s *GalleryService) Apply(ctx context.Context, state repositories.SessionState, sessionID, slug string, images []string, cmd GalleryCommand) (*carousel.Controller, error) {
	unlock := s.locks.Lock(sessionID + "\x00" + slug)
	defer unlock()

	c := s.load(ctx, state, slug, images)

	switch cmd.Action {
	case GalleryNext:
		c.Next()
	case GalleryPrev:
		c.Prev()
	case GalleryJump:
		c.JumpTo(cmd.Index)
	case GalleryFailed:
		if cmd.Image != "" && cmd.Image != c.Current() {
			logger.GlobalLogger.Debugf("gallery %s: ignoring stale failure report for %s", slug, cmd.Image)
			break
		}
		c.OnImageLoadFailure()
		metrics.CarouselImageFailuresTotal.WithLabelValues(strconv.FormatBool(c.IsPlaceholder())).Inc()
	default:
		return nil, fmt.Errorf("unknown gallery action %q", cmd.Action)
	}

	s.save(ctx, state, slug, c)
	return c, nil
}

func (s *GalleryService) load(ctx context.Context, state repositories.SessionState, slug string, images []string) *carousel.Controller {
	raw, ok, err := state.Get(ctx, CarouselKey(slug))
	if err != nil {
		logger.GlobalLogger.Warnf("gallery %s: reading state: %v", slug, err)
	}
	if err != nil || !ok {
		return carousel.New(images, s.placeholder)
	}

	var persisted carousel.State
	if err := json.Unmarshal([]byte(raw), &persisted); err != nil {
		logger.GlobalLogger.Warnf("gallery %s: discarding malformed state: %v", slug, err)
		return carousel.New(images, s.placeholder)
	}
	return carousel.Restore(persisted, s.placeholder)
}

// save is best effort: a lost write only costs the visitor their gallery position.
func (s *GalleryService) save(ctx context.Context, state repositories.SessionState, slug string, c *carousel.Controller) {
	data, err := json.Marshal(c.State())
	if err != nil {
		logger.GlobalLogger.Errorf("gallery %s: encoding state: %v", slug, err)
		return
	}
	if err := state.Set(ctx, CarouselKey(slug), string(data)); err != nil {
		logger.GlobalLogger.Warnf("gallery %s: storing state: %v", slug, err)
	}
}

// keyedMutex hands out one mutex per key and forgets it once nobody holds or waits on it.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*keyedLock
}

type keyedLock struct {
	sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*keyedLock)}
}

// Lock blocks until key is free and returns its unlock function.
func (k *keyedMutex) Lock(key string) func() {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &keyedLock{}
		k.locks[key] = l
	}
	l.refs++
	k.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()
		k.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}

func (k *keyedMutex) size() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.locks)
}
