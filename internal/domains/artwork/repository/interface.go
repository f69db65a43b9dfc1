package repository

import (
	"context"

	"artworks-backend/internal/domains/artwork/model"
)

// ArtworkRepository is the data-access contract for the artworks relation.
//
// Every list query is hardcoded to its own page: OFFSET 0 with a
// per-facet LIMIT, ordered by weight descending. Callers cannot request a
// next page, only re-filter.
type ArtworkRepository interface {
	// GetByID returns the full projection of one row.
	// Returns model.ErrArtworkNotFound if the id has no row.
	GetByID(ctx context.Context, id int) (*model.Artwork, error)

	// GetZoomInfo returns the narrow image/color projection for the
	// tiled viewer. Same not-found contract as GetByID.
	GetZoomInfo(ctx context.Context, id int) (*model.ZoomInfo, error)

	// SearchAny matches text against the fixed set of descriptive
	// fields, or date_end against its integer parse. Rows with an empty
	// description are always excluded.
	SearchAny(ctx context.Context, text string) ([]model.Artwork, error)

	// SearchByArtist matches artist or artist_title; preview projection.
	SearchByArtist(ctx context.Context, text string) ([]model.Artwork, error)

	SearchByStyle(ctx context.Context, text string) ([]model.Artwork, error)
	SearchByPlace(ctx context.Context, text string) ([]model.Artwork, error)
	SearchBySubject(ctx context.Context, text string) ([]model.Artwork, error)

	// SearchByDateEnd is an exact-equality match on date_end.
	SearchByDateEnd(ctx context.Context, year int) ([]model.Artwork, error)

	// SearchByColor matches rows whose hue lies in the open interval
	// (hue-2, hue+2), with saturation above 15 and lightness strictly
	// between 15 and 85, so near-gray and near-white/black rows never
	// pollute a hue match.
	SearchByColor(ctx context.Context, hue float64) ([]model.Artwork, error)

	// SearchByWeight returns rows with weight strictly above min.
	SearchByWeight(ctx context.Context, min float64) ([]model.Artwork, error)

	// ListFavorites is the bounded "show all favorites" view.
	ListFavorites(ctx context.Context) ([]model.Artwork, error)

	// ToggleFavorite atomically flips the favorite flag and returns the
	// updated row. Returns model.ErrArtworkNotFound if the id has no row.
	ToggleFavorite(ctx context.Context, id int) (*model.Artwork, error)

	// InsertBatch bulk-inserts seeded rows; used by cmd/seed only.
	InsertBatch(ctx context.Context, artworks []model.Artwork) (int64, error)
}
