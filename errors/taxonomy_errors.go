// errors/taxonomy_errors.go
package errors

import "errors"

var (
	ErrCategoryNotFound    = errors.New("category not found")
	ErrCategoryConflict    = errors.New("category conflict")
	ErrInvalidCategoryData = errors.New("invalid category data")

	ErrTagNotFound    = errors.New("tag not found")
	ErrTagConflict    = errors.New("tag conflict")
	ErrInvalidTagData = errors.New("invalid tag data")

	ErrSubscriberNotFound    = errors.New("subscriber not found")
	ErrInvalidSubscriberData = errors.New("invalid subscriber data")
)
