package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"artworks-backend/internal/domains/artwork/model"
	"artworks-backend/internal/domains/artwork/repository"
)

// defaultZoomImageURL is served when an artwork row carries no image URL,
// so the tiled viewer always has something to render.
const defaultZoomImageURL = "https://www.artic.edu/iiif/2/f8fd76e9-c396-5678-36ed-6a348c904d27/full/843,/0/default.jpg"

type artworkService struct {
	artworkRepo repository.ArtworkRepository
}

func NewArtworkService(artworkRepo repository.ArtworkRepository) ServiceInterface {
	return &artworkService{
		artworkRepo: artworkRepo,
	}
}

// =====================================================
// SEARCH DISPATCH
// =====================================================

// Search maps the (searchType, query) pair onto one facet query. The tag
// is resolved once here; an empty or unrecognized tag short-circuits to
// NoQuery without touching the repository.
func (s *artworkService) Search(ctx context.Context, rawType, rawQuery string) (*model.SearchOutcome, error) {
	searchType, ok := model.ParseSearchType(rawType)
	if !ok {
		return model.NewNoQuery(), nil
	}

	switch searchType {
	case model.SearchAll:
		artworks, err := s.artworkRepo.SearchAny(ctx, rawQuery)
		if err != nil {
			return nil, fmt.Errorf("failed to search artworks: %w", err)
		}
		return model.NewResults(artworks), nil

	case model.SearchArtist:
		artworks, err := s.artworkRepo.SearchByArtist(ctx, rawQuery)
		if err != nil {
			return nil, fmt.Errorf("failed to search by artist: %w", err)
		}
		return model.NewResults(artworks), nil

	case model.SearchStyle:
		artworks, err := s.artworkRepo.SearchByStyle(ctx, rawQuery)
		if err != nil {
			return nil, fmt.Errorf("failed to search by style: %w", err)
		}
		return model.NewResults(artworks), nil

	case model.SearchPlace:
		artworks, err := s.artworkRepo.SearchByPlace(ctx, rawQuery)
		if err != nil {
			return nil, fmt.Errorf("failed to search by place: %w", err)
		}
		return model.NewResults(artworks), nil

	case model.SearchDate:
		// A missing or unparsable year silently becomes 0. Lenient on
		// purpose; the date facet never errors.
		year, err := strconv.Atoi(rawQuery)
		if err != nil {
			year = 0
		}
		artworks, err := s.artworkRepo.SearchByDateEnd(ctx, year)
		if err != nil {
			return nil, fmt.Errorf("failed to search by date: %w", err)
		}
		return model.NewResults(artworks), nil

	case model.SearchColor:
		return s.SearchByColor(ctx, rawQuery)
	}

	return model.NewNoQuery(), nil
}

// SearchByColor parses the hue before any query is issued. Unlike the
// date facet, a hue that does not parse means no query at all.
func (s *artworkService) SearchByColor(ctx context.Context, rawHue string) (*model.SearchOutcome, error) {
	hue, err := strconv.ParseFloat(strings.TrimSpace(rawHue), 64)
	if err != nil {
		return model.NewInvalidInput(), nil
	}

	artworks, err := s.artworkRepo.SearchByColor(ctx, hue)
	if err != nil {
		return nil, fmt.Errorf("failed to search by color: %w", err)
	}
	return model.NewResults(artworks), nil
}

func (s *artworkService) SearchBySubject(ctx context.Context, query string) ([]model.Artwork, error) {
	artworks, err := s.artworkRepo.SearchBySubject(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search by subject: %w", err)
	}
	return artworks, nil
}

func (s *artworkService) SearchByWeight(ctx context.Context, rawMin string) ([]model.Artwork, error) {
	minWeight, err := strconv.ParseFloat(strings.TrimSpace(rawMin), 64)
	if err != nil {
		minWeight = 0
	}

	artworks, err := s.artworkRepo.SearchByWeight(ctx, minWeight)
	if err != nil {
		return nil, fmt.Errorf("failed to search by weight: %w", err)
	}
	return artworks, nil
}

func (s *artworkService) ListFavorites(ctx context.Context) ([]model.Artwork, error) {
	artworks, err := s.artworkRepo.ListFavorites(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	return artworks, nil
}

// =====================================================
// DETAIL / ZOOM
// =====================================================

func (s *artworkService) GetArtwork(ctx context.Context, id int) (*model.Artwork, error) {
	return s.artworkRepo.GetByID(ctx, id)
}

// GetZoom builds the tile-source info for the zoom viewer. IIIF image
// URLs look like <identifier>/full/<size>/0/default.jpg; the viewer wants
// just the identifier.
func (s *artworkService) GetZoom(ctx context.Context, id int) (*model.ZoomResponse, error) {
	info, err := s.artworkRepo.GetZoomInfo(ctx, id)
	if err != nil {
		return nil, err
	}

	src := defaultZoomImageURL
	if info.ImageURL != nil && *info.ImageURL != "" {
		src = *info.ImageURL
	}

	return &model.ZoomResponse{
		Identifier: strings.SplitN(src, "/full/", 2)[0],
		ColorHSL:   info.ColorHSL(),
	}, nil
}

// =====================================================
// FAVORITE TOGGLE
// =====================================================

func (s *artworkService) ToggleFavorite(ctx context.Context, id int) (*model.Artwork, error) {
	return s.artworkRepo.ToggleFavorite(ctx, id)
}
