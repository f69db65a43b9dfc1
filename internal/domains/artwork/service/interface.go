package service

import (
	"context"

	"artworks-backend/internal/domains/artwork/model"
)

// ServiceInterface is the business surface the HTTP layer talks to.
type ServiceInterface interface {
	// Search resolves the raw (searchType, query) pair to exactly one
	// repository call and reports the outcome kind explicitly.
	Search(ctx context.Context, rawType, rawQuery string) (*model.SearchOutcome, error)

	// SearchByColor backs the dedicated color-search view; a hue that
	// does not parse is InvalidInput, distinct from an empty result.
	SearchByColor(ctx context.Context, rawHue string) (*model.SearchOutcome, error)

	SearchBySubject(ctx context.Context, query string) ([]model.Artwork, error)

	// SearchByWeight treats a missing or unparsable threshold as 0.
	SearchByWeight(ctx context.Context, rawMin string) ([]model.Artwork, error)

	ListFavorites(ctx context.Context) ([]model.Artwork, error)

	GetArtwork(ctx context.Context, id int) (*model.Artwork, error)

	// GetZoom derives the IIIF tile-source identifier and background
	// color for the zoom viewer.
	GetZoom(ctx context.Context, id int) (*model.ZoomResponse, error)

	// ToggleFavorite flips and returns the row; a missing id is a hard
	// failure, never a silent no-op.
	ToggleFavorite(ctx context.Context, id int) (*model.Artwork, error)
}
