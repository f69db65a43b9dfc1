package model

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Artwork represents one row of the artworks relation.
//
// Most descriptive fields are nullable in the source data, so they are
// pointers and dropped from JSON when absent. List queries use partial
// projections; fields outside a projection stay nil.
type Artwork struct {
	ID int `json:"id"`

	Title          *string `json:"title,omitempty"`
	Artist         *string `json:"artist,omitempty"`
	ArtistTitle    *string `json:"artist_title,omitempty"`
	Place          *string `json:"place,omitempty"`
	Medium         *string `json:"medium,omitempty"`
	Technique      *string `json:"technique,omitempty"`
	Description    *string `json:"description,omitempty"`
	Style          *string `json:"style,omitempty"`
	Type           *string `json:"type,omitempty"`
	Category       *string `json:"category,omitempty"`
	Term           *string `json:"term,omitempty"`
	Subject        *string `json:"subject,omitempty"`
	Classification *string `json:"classification,omitempty"`
	Provenance     *string `json:"provenance,omitempty"`
	AltText        *string `json:"alt_text,omitempty"`

	// DateLabel is the display string ("c. 1503"); DateEnd drives the
	// date facet.
	DateLabel *string `json:"date_label,omitempty"`
	DateEnd   *int    `json:"date_end,omitempty"`

	ImageURL *string `json:"image_url,omitempty"`
	Width    *int    `json:"width,omitempty"`
	Height   *int    `json:"height,omitempty"`

	IsZoomable              bool `json:"is_zoomable"`
	HasMultimediaResources  bool `json:"has_multimedia_resources"`
	HasEducationalResources bool `json:"has_educational_resources"`
	HasAdvancedImaging      bool `json:"has_advanced_imaging"`
	IsBoosted               bool `json:"is_boosted"`
	Favorite                bool `json:"favorite"`

	// Weight is the precomputed relevance score; every facet query
	// sorts by it descending.
	Weight float64 `json:"weight"`

	// Dominant color of the artwork in HSL space. The display string is
	// derived on read, never stored (see ColorHSL).
	ColorHue        int `json:"color_h"`
	ColorSaturation int `json:"color_s"`
	ColorLightness  int `json:"color_l"`
}

// ColorHSL renders the dominant color as a CSS hsl() display string from
// the three stored components, so there is no denormalized copy to keep
// consistent.
func (a *Artwork) ColorHSL() string {
	return fmt.Sprintf("hsl(%d %d%% %d%%)", a.ColorHue, a.ColorSaturation, a.ColorLightness)
}

// Validate checks the invariants the database does not enforce. Used by
// the bulk importer before rows are written.
func (a *Artwork) Validate() error {
	return validation.ValidateStruct(a,
		validation.Field(&a.ID, validation.Required, validation.Min(1)),
		validation.Field(&a.ColorHue, validation.Min(0), validation.Max(360)),
		validation.Field(&a.ColorSaturation, validation.Min(0), validation.Max(100)),
		validation.Field(&a.ColorLightness, validation.Min(0), validation.Max(100)),
		validation.Field(&a.Weight, validation.Min(0.0)),
	)
}

// ZoomInfo is the narrow projection backing the tiled image viewer.
type ZoomInfo struct {
	ImageURL        *string `json:"image_url"`
	ColorHue        int     `json:"color_h"`
	ColorSaturation int     `json:"color_s"`
	ColorLightness  int     `json:"color_l"`
}

// ColorHSL renders the display color for the zoom view background.
func (z *ZoomInfo) ColorHSL() string {
	return fmt.Sprintf("hsl(%d %d%% %d%%)", z.ColorHue, z.ColorSaturation, z.ColorLightness)
}

// ZoomResponse is what the zoom endpoint returns: the IIIF identifier the
// viewer tiles from, plus the page background color.
type ZoomResponse struct {
	Identifier string `json:"identifier"`
	ColorHSL   string `json:"color_hsl"`
}
