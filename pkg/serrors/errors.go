// Package serrors defines the coded errors surfaced by the catalogue core.
// Every operation failure maps to exactly one of these kinds; callers
// translate them into their own response format.
package serrors

import "errors"

type BaseError struct {
	Code    string
	Message string
}

func NewError(code, message string) *BaseError {
	return &BaseError{Code: code, Message: message}
}

func (e *BaseError) Error() string {
	return e.Message
}

// Is matches any BaseError carrying the same code, so wrapped copies of a
// sentinel (including constraint errors, which share a code but carry
// per-constraint messages) still satisfy errors.Is.
func (e *BaseError) Is(target error) bool {
	var other *BaseError
	if !errors.As(target, &other) {
		return false
	}
	return e.Code == other.Code
}

var (
	// ErrUnauthorised is returned before any row is touched when the caller
	// lacks rights over the resolved owning publisher.
	ErrUnauthorised = NewError("UNAUTHORISED", "unauthorised: insufficient permissions")

	// ErrEntityNotFound covers lookups by key or composite key that matched
	// nothing, including broken links in an ownership chain.
	ErrEntityNotFound = NewError("ENTITY_NOT_FOUND", "entity not found")

	// ErrCanonicalLocation: a non-canonical location requires an existing
	// canonical one for the same publication.
	ErrCanonicalLocation = NewError("CANONICAL_LOCATION", "a canonical location must exist before non-canonical ones can be added")

	// ErrLocationUrl: a canonical location of a digital publication must have
	// both a landing page and a full text URL.
	ErrLocationUrl = NewError("LOCATION_URL", "a canonical location for a digital publication must have both a landing page and a full text URL")

	// ErrIssueImprints: an issue's series and work must share an imprint.
	ErrIssueImprints = NewError("ISSUE_IMPRINTS", "an issue's series and work must both belong to the same imprint")

	// ErrChapterPagination: first page, last page and page interval only
	// apply to works of the book chapter type.
	ErrChapterPagination = NewError("CHAPTER_PAGINATION", "only book chapters can have a first page, last page or page interval")

	ErrInternal = NewError("INTERNAL", "internal error")
)

func NewInternalError() *BaseError {
	return ErrInternal
}
