package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	quill_errors "github.com/dev-mohitbeniwal/quill/errors"
	"github.com/dev-mohitbeniwal/quill/model"
)

func TestValidatePostCreate(t *testing.T) {
	v := NewValidationUtil()

	assert.NoError(t, v.ValidatePostCreate(model.PostCreate{Title: "T", Slug: "t", Content: "body"}))
	assert.NoError(t, v.ValidatePostCreate(model.PostCreate{Title: "T", Slug: "t", PDFURL: "https://x/p.pdf"}))

	err := v.ValidatePostCreate(model.PostCreate{Title: "T", Slug: "t"})
	assert.ErrorIs(t, err, quill_errors.ErrInvalidPostData)
	assert.Equal(t, "either content or pdf_url is required", quill_errors.PublicMessage(err, ""))

	err = v.ValidatePostCreate(model.PostCreate{Title: strings.Repeat("x", 501), Slug: "t", Content: "c"})
	assert.ErrorIs(t, err, quill_errors.ErrInvalidPostData)

	err = v.ValidatePostCreate(model.PostCreate{Title: "T", Slug: "t", Content: "c", Status: "archived"})
	assert.ErrorIs(t, err, quill_errors.ErrInvalidPostData)
}

func TestValidateComment(t *testing.T) {
	v := NewValidationUtil()
	assert.NoError(t, v.ValidateComment("nice"))
	assert.ErrorIs(t, v.ValidateComment("   "), quill_errors.ErrInvalidCommentData)
	assert.ErrorIs(t, v.ValidateComment(strings.Repeat("a", MaxCommentLength+1)), quill_errors.ErrCommentTooLong)
}

func TestValidateEmail(t *testing.T) {
	v := NewValidationUtil()
	assert.NoError(t, v.ValidateEmail("reader@example.com"))
	assert.ErrorIs(t, v.ValidateEmail("not-an-email"), quill_errors.ErrInvalidSubscriberData)
	assert.ErrorIs(t, v.ValidateEmail(strings.Repeat("a", 250)+"@x.io"), quill_errors.ErrInvalidSubscriberData)
}

func TestValidateSearch(t *testing.T) {
	v := NewValidationUtil()
	assert.NoError(t, v.ValidateSearch(model.SearchQuery{Q: "go", Sort: model.SearchSortDate}))
	assert.ErrorIs(t, v.ValidateSearch(model.SearchQuery{Q: " ", Sort: model.SearchSortDate}), quill_errors.ErrInvalidSearchCriteria)
	assert.ErrorIs(t, v.ValidateSearch(model.SearchQuery{Q: "go", Sort: "popular"}), quill_errors.ErrInvalidSearchCriteria)
}
