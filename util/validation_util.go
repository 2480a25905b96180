// util/validation_util.go

package util

import (
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	quill_errors "github.com/dev-mohitbeniwal/quill/errors"
	"github.com/dev-mohitbeniwal/quill/model"
)

// Content limits, counted in characters.
const (
	MaxTitleLength   = 500
	MaxSlugLength    = 500
	MaxSearchLength  = 500
	MaxContentLength = 200000
	MaxCommentLength = 5000
	MaxEmailLength   = 254
	MaxNameLength    = 100
)

var validPostStatuses = map[string]bool{model.PostStatusDraft: true, model.PostStatusPublished: true}
var validVisibilities = map[string]bool{model.VisibilityPublic: true, model.VisibilityPrivate: true}

// ValidationUtil checks request payloads. Errors wrap the entity's
// invalid-data sentinel and never echo the offending input.
type ValidationUtil struct {
	validate *validator.Validate
}

func NewValidationUtil() *ValidationUtil {
	return &ValidationUtil{validate: validator.New()}
}

func lengthBetween(s string, min, max int) bool {
	n := utf8.RuneCountInString(s)
	return n >= min && n <= max
}

func (v *ValidationUtil) ValidatePostCreate(p model.PostCreate) error {
	if !lengthBetween(strings.TrimSpace(p.Title), 1, MaxTitleLength) {
		return quill_errors.Invalid(quill_errors.ErrInvalidPostData, "title must be between 1 and 500 characters")
	}
	if !lengthBetween(p.Slug, 1, MaxSlugLength) {
		return quill_errors.Invalid(quill_errors.ErrInvalidPostData, "slug must be between 1 and 500 characters")
	}
	if strings.TrimSpace(p.Content) == "" && strings.TrimSpace(p.PDFURL) == "" {
		return quill_errors.Invalid(quill_errors.ErrInvalidPostData, "either content or pdf_url is required")
	}
	if p.Status != "" && !validPostStatuses[p.Status] {
		return quill_errors.Invalid(quill_errors.ErrInvalidPostData, "status must be draft or published")
	}
	if p.Visibility != "" && !validVisibilities[p.Visibility] {
		return quill_errors.Invalid(quill_errors.ErrInvalidPostData, "visibility must be public or private")
	}
	return nil
}

func (v *ValidationUtil) ValidatePostUpdate(p model.PostUpdate) error {
	if p.Title != nil && !lengthBetween(strings.TrimSpace(*p.Title), 1, MaxTitleLength) {
		return quill_errors.Invalid(quill_errors.ErrInvalidPostData, "title must be between 1 and 500 characters")
	}
	if p.Slug != nil && !lengthBetween(*p.Slug, 1, MaxSlugLength) {
		return quill_errors.Invalid(quill_errors.ErrInvalidPostData, "slug must be between 1 and 500 characters")
	}
	if p.Status != nil && !validPostStatuses[*p.Status] {
		return quill_errors.Invalid(quill_errors.ErrInvalidPostData, "status must be draft or published")
	}
	if p.Visibility != nil && !validVisibilities[*p.Visibility] {
		return quill_errors.Invalid(quill_errors.ErrInvalidPostData, "visibility must be public or private")
	}
	return nil
}

// ValidateContentLength is applied after sanitizing.
func (v *ValidationUtil) ValidateContentLength(content string) error {
	if utf8.RuneCountInString(content) > MaxContentLength {
		return quill_errors.ErrContentTooLong
	}
	return nil
}

func (v *ValidationUtil) ValidateComment(content string) error {
	if strings.TrimSpace(content) == "" {
		return quill_errors.Invalid(quill_errors.ErrInvalidCommentData, "comment content cannot be empty")
	}
	if utf8.RuneCountInString(content) > MaxCommentLength {
		return quill_errors.ErrCommentTooLong
	}
	return nil
}

func (v *ValidationUtil) ValidateCategory(c model.CategoryCreate) error {
	if !lengthBetween(strings.TrimSpace(c.Name), 1, MaxNameLength) || !lengthBetween(c.Slug, 1, MaxNameLength) {
		return quill_errors.Invalid(quill_errors.ErrInvalidCategoryData, "name and slug must be between 1 and 100 characters")
	}
	return nil
}

func (v *ValidationUtil) ValidateTag(t model.TagCreate) error {
	if !lengthBetween(strings.TrimSpace(t.Name), 1, MaxNameLength) || !lengthBetween(t.Slug, 1, MaxNameLength) {
		return quill_errors.Invalid(quill_errors.ErrInvalidTagData, "name and slug must be between 1 and 100 characters")
	}
	return nil
}

func (v *ValidationUtil) ValidateEmail(email string) error {
	if len(email) > MaxEmailLength || v.validate.Var(email, "required,email") != nil {
		return quill_errors.Invalid(quill_errors.ErrInvalidSubscriberData, "a valid email address is required")
	}
	return nil
}

func (v *ValidationUtil) ValidateSearch(q model.SearchQuery) error {
	if !lengthBetween(strings.TrimSpace(q.Q), 1, MaxSearchLength) {
		return quill_errors.Invalid(quill_errors.ErrInvalidSearchCriteria, "q must be between 1 and 500 characters")
	}
	if q.Sort != model.SearchSortRelevance && q.Sort != model.SearchSortDate {
		return quill_errors.Invalid(quill_errors.ErrInvalidSearchCriteria, "sort must be relevance or date")
	}
	return nil
}
