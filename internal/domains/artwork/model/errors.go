package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeArtworkNotFound = "ART001"
	ErrCodeInvalidFacet    = "ART002"
)

// Errors
var (
	ErrArtworkNotFound = errors.New("artwork not found")
	ErrInvalidFacet    = errors.New("invalid facet value")
)

// ArtworkError custom error type
type ArtworkError struct {
	Code    string
	Message string
	Err     error
}

func (e *ArtworkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ArtworkError) Unwrap() error {
	return e.Err
}

// Error constructors
func NewArtworkNotFoundError(id int) *ArtworkError {
	return &ArtworkError{
		Code:    ErrCodeArtworkNotFound,
		Message: fmt.Sprintf("Artwork %d not found", id),
		Err:     ErrArtworkNotFound,
	}
}

func NewInvalidFacetError(facet, value string) *ArtworkError {
	return &ArtworkError{
		Code:    ErrCodeInvalidFacet,
		Message: fmt.Sprintf("Invalid %s value %q", facet, value),
		Err:     ErrInvalidFacet,
	}
}
