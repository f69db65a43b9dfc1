// Package client implements the request-shaping side of the search UI:
// a controller that turns raw keystrokes and facet switches into
// debounced fetches against the artworks API.
package client

import (
	"sync"
	"time"

	"artworks-backend/internal/domains/artwork/model"
	"artworks-backend/pkg/debounce"
)

// FetchFunc runs a facet search with the current type and query. Called
// off the debouncer's timer goroutine.
type FetchFunc func(searchType model.SearchType, query string)

// NavigateFunc switches the UI to the dedicated color-search view with
// the given hue query.
type NavigateFunc func(hue string)

// SearchController holds the live search state for one session. Input
// changes are coalesced through a debouncer so only the last keystroke
// in a burst reaches the backend. Selecting the color facet navigates
// to the color-search view instead of querying in place.
type SearchController struct {
	fetch    FetchFunc
	navigate NavigateFunc
	deb      *debounce.Debouncer

	mu         sync.Mutex
	searchType model.SearchType
	query      string
	hue        string
}

// NewSearchController builds a controller with the default quiet period.
// The controller starts on the all-fields facet with an empty query.
func NewSearchController(fetch FetchFunc, navigate NavigateFunc) *SearchController {
	return NewSearchControllerWithQuietPeriod(fetch, navigate, debounce.DefaultQuietPeriod)
}

// NewSearchControllerWithQuietPeriod is NewSearchController with an
// explicit quiet period, used by tests to keep them fast.
func NewSearchControllerWithQuietPeriod(fetch FetchFunc, navigate NavigateFunc, quiet time.Duration) *SearchController {
	return &SearchController{
		fetch:      fetch,
		navigate:   navigate,
		deb:        debounce.New(quiet),
		searchType: model.SearchAll,
	}
}

// SetQuery records a keystroke and schedules a debounced fetch.
func (sc *SearchController) SetQuery(query string) {
	sc.mu.Lock()
	sc.query = query
	sc.mu.Unlock()

	sc.scheduleFetch()
}

// SetSearchType switches the active facet. The color facet navigates to
// the color-search view immediately; every other facet re-runs the
// current query through the debouncer.
func (sc *SearchController) SetSearchType(raw string) {
	searchType, ok := model.ParseSearchType(raw)
	if !ok {
		return
	}

	sc.mu.Lock()
	sc.searchType = searchType
	hue := sc.hue
	sc.mu.Unlock()

	if searchType == model.SearchColor {
		sc.deb.Stop()
		sc.navigate(hue)
		return
	}

	sc.scheduleFetch()
}

// SetHue records the live hue slider value without triggering anything;
// it is carried over when the color facet is selected.
func (sc *SearchController) SetHue(hue string) {
	sc.mu.Lock()
	sc.hue = hue
	sc.mu.Unlock()
}

// SearchType returns the active facet.
func (sc *SearchController) SearchType() model.SearchType {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.searchType
}

// Stop cancels any pending fetch.
func (sc *SearchController) Stop() {
	sc.deb.Stop()
}

func (sc *SearchController) scheduleFetch() {
	sc.deb.Call(func() {
		sc.mu.Lock()
		searchType := sc.searchType
		query := sc.query
		sc.mu.Unlock()

		sc.fetch(searchType, query)
	})
}
