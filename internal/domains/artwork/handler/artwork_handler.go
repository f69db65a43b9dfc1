package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"artworks-backend/internal/domains/artwork/model"
	"artworks-backend/internal/domains/artwork/service"
	"artworks-backend/internal/shared/response"
)

// defaultColorHue is the hue preselected when the color-search view loads
// without a query, so the page never starts empty.
const defaultColorHue = "200"

type ArtworkHandler struct {
	service service.ServiceInterface
}

func NewArtworkHandler(service service.ServiceInterface) *ArtworkHandler {
	return &ArtworkHandler{
		service: service,
	}
}

// Search - GET /v1/artworks?search=&searchType=
//
// Dispatches the (searchType, search) pair to one facet query. A missing
// or unrecognized searchType is the empty-state, not an error.
func (h *ArtworkHandler) Search(c *gin.Context) {
	query := c.Query("search")
	searchType := c.Query("searchType")

	outcome, err := h.service.Search(c.Request.Context(), searchType, query)
	if err != nil {
		log.Error().Err(err).Str("search_type", searchType).Msg("artwork search failed")
		response.InternalServerError(c, "Search failed")
		return
	}

	h.renderOutcome(c, outcome)
}

// ColorSearch - GET /v1/artworks/color?q=
//
// Dedicated color-search view; defaults to hue 200 when no query is
// present.
func (h *ArtworkHandler) ColorSearch(c *gin.Context) {
	q := c.DefaultQuery("q", defaultColorHue)

	outcome, err := h.service.SearchByColor(c.Request.Context(), q)
	if err != nil {
		log.Error().Err(err).Str("hue", q).Msg("color search failed")
		response.InternalServerError(c, "Search failed")
		return
	}

	h.renderOutcome(c, outcome)
}

// SearchBySubject - GET /v1/artworks/subject?search=
func (h *ArtworkHandler) SearchBySubject(c *gin.Context) {
	artworks, err := h.service.SearchBySubject(c.Request.Context(), c.Query("search"))
	if err != nil {
		log.Error().Err(err).Msg("subject search failed")
		response.InternalServerError(c, "Search failed")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, artworks, &response.Meta{Total: len(artworks)})
}

// SearchByWeight - GET /v1/artworks/weight?min=
func (h *ArtworkHandler) SearchByWeight(c *gin.Context) {
	artworks, err := h.service.SearchByWeight(c.Request.Context(), c.Query("min"))
	if err != nil {
		log.Error().Err(err).Msg("weight search failed")
		response.InternalServerError(c, "Search failed")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, artworks, &response.Meta{Total: len(artworks)})
}

// ListFavorites - GET /v1/artworks/favorites
func (h *ArtworkHandler) ListFavorites(c *gin.Context) {
	artworks, err := h.service.ListFavorites(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list favorites")
		response.InternalServerError(c, "Failed to list favorites")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, artworks, &response.Meta{Total: len(artworks)})
}

// GetDetail - GET /v1/artworks/:id
func (h *ArtworkHandler) GetDetail(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	artwork, err := h.service.GetArtwork(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrArtworkNotFound) {
			response.NotFound(c, "Artwork not found")
			return
		}
		log.Error().Err(err).Int("id", id).Msg("failed to get artwork")
		response.InternalServerError(c, "Failed to get artwork")
		return
	}

	response.Success(c, http.StatusOK, artwork)
}

// GetZoom - GET /v1/artworks/:id/zoom
func (h *ArtworkHandler) GetZoom(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	zoom, err := h.service.GetZoom(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrArtworkNotFound) {
			response.NotFound(c, "Artwork not found")
			return
		}
		log.Error().Err(err).Int("id", id).Msg("failed to get zoom info")
		response.InternalServerError(c, "Failed to get zoom info")
		return
	}

	response.Success(c, http.StatusOK, zoom)
}

// ToggleFavorite - POST /v1/artworks/:id/favorite
//
// No request body: the new value is the negation of the stored one, the
// client never supplies it.
func (h *ArtworkHandler) ToggleFavorite(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	artwork, err := h.service.ToggleFavorite(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrArtworkNotFound) {
			response.NotFound(c, "Artwork not found")
			return
		}
		log.Error().Err(err).Int("id", id).Msg("failed to toggle favorite")
		response.InternalServerError(c, "Failed to toggle favorite")
		return
	}

	response.Success(c, http.StatusOK, artwork)
}

func (h *ArtworkHandler) renderOutcome(c *gin.Context, outcome *model.SearchOutcome) {
	switch outcome.Kind {
	case model.OutcomeInvalidInput:
		response.ErrorResponse(c, http.StatusBadRequest, model.ErrCodeInvalidFacet, "Facet value must be numeric")
	default:
		// Results and NoQuery both render as a (possibly empty) list;
		// the view layer shows the empty-state message.
		response.SuccessWithMeta(c, http.StatusOK, outcome.Artworks, &response.Meta{Total: len(outcome.Artworks)})
	}
}

func (h *ArtworkHandler) parseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		response.BadRequest(c, "Invalid artwork id")
		return 0, false
	}
	return id, true
}
