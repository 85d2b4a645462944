package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrAuthorNotFound is returned when an author is not found.
	ErrAuthorNotFound = errors.New("author not found")
	// ErrOrganismNotFound is returned when an organism is not found.
	ErrOrganismNotFound = errors.New("organism not found")
	// ErrPaperNotFound is returned when a paper is not found.
	ErrPaperNotFound = errors.New("paper not found")
	// ErrDuplicateKey is returned when creating an entity whose id already exists.
	ErrDuplicateKey = errors.New("identifier already exists")
	// ErrInvalidEmail is returned when an identifier is not a valid email address.
	ErrInvalidEmail = errors.New("identifier is not a valid email address")
	// ErrDanglingReference is returned when a referenced entity does not exist.
	ErrDanglingReference = errors.New("referenced entity does not exist")
	// ErrHasDependents is returned when deleting an entity others still reference.
	ErrHasDependents = errors.New("entity still has dependent records")
	// ErrNotOwner is returned when the authenticated user does not own the target.
	ErrNotOwner = errors.New("not authorized for this resource")
)

// ErrorResponse is the flat failure envelope returned on every error.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{Error: e.Message}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrAuthorNotFound),
		errors.Is(err, ErrOrganismNotFound),
		errors.Is(err, ErrPaperNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrDuplicateKey),
		errors.Is(err, ErrInvalidEmail),
		errors.Is(err, ErrDanglingReference),
		errors.Is(err, ErrHasDependents):
		return NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotOwner):
		return NewHTTPError(http.StatusUnauthorized, err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
