// errors/content_errors.go
package errors

import "errors"

var (
	ErrPostNotFound    = errors.New("post not found")
	ErrPostConflict    = errors.New("post conflict")
	ErrInvalidPostData = errors.New("invalid post data")
	ErrContentTooLong  = errors.New("content exceeds maximum allowed length")

	ErrCommentNotFound    = errors.New("comment not found")
	ErrInvalidCommentData = errors.New("invalid comment data")
	ErrCommentTooLong     = errors.New("comment exceeds maximum allowed length")

	ErrInvalidSearchCriteria = errors.New("invalid search criteria")
)
