package model

// SearchType is the closed set of facets the dispatcher accepts. The raw
// query-string tag is resolved exactly once, at the HTTP boundary;
// anything outside the set is rejected explicitly instead of falling
// through.
type SearchType string

const (
	SearchAll    SearchType = "all"
	SearchArtist SearchType = "artist"
	SearchStyle  SearchType = "style"
	SearchPlace  SearchType = "place"
	SearchDate   SearchType = "date"
	SearchColor  SearchType = "color"
)

// ParseSearchType resolves a raw searchType tag. ok is false for empty or
// unrecognized tags; callers render those as an empty-state result, never
// as an error.
func ParseSearchType(raw string) (SearchType, bool) {
	switch SearchType(raw) {
	case SearchAll, SearchArtist, SearchStyle, SearchPlace, SearchDate, SearchColor:
		return SearchType(raw), true
	default:
		return "", false
	}
}

// OutcomeKind discriminates the three ways a search can resolve.
type OutcomeKind string

const (
	// OutcomeResults carries rows (possibly zero) from an executed query.
	OutcomeResults OutcomeKind = "results"
	// OutcomeNoQuery means no repository query was issued at all
	// (missing or unrecognized search type).
	OutcomeNoQuery OutcomeKind = "no_query"
	// OutcomeInvalidInput means the facet value could not be parsed
	// (non-numeric hue), distinct from an empty result set.
	OutcomeInvalidInput OutcomeKind = "invalid_input"
)

// SearchOutcome is the single result type every facet search resolves to,
// so callers branch on Kind instead of distinguishing nil, empty and
// defaulted results by truthiness.
type SearchOutcome struct {
	Kind     OutcomeKind
	Artworks []Artwork
}

func NewResults(artworks []Artwork) *SearchOutcome {
	if artworks == nil {
		artworks = []Artwork{}
	}
	return &SearchOutcome{Kind: OutcomeResults, Artworks: artworks}
}

func NewNoQuery() *SearchOutcome {
	return &SearchOutcome{Kind: OutcomeNoQuery, Artworks: []Artwork{}}
}

func NewInvalidInput() *SearchOutcome {
	return &SearchOutcome{Kind: OutcomeInvalidInput, Artworks: []Artwork{}}
}
