package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dev-mohitbeniwal/quill/audit"
	quill_errors "github.com/dev-mohitbeniwal/quill/errors"
	"github.com/dev-mohitbeniwal/quill/model"
	"github.com/dev-mohitbeniwal/quill/service"
	quill_mock "github.com/dev-mohitbeniwal/quill/test/mock"
	"github.com/dev-mohitbeniwal/quill/util"
)

type postFixture struct {
	dao      *quill_mock.MockPostDAO
	audit    *quill_mock.MockAuditService
	eventBus *util.EventBus
	service  *service.PostService
}

func newPostFixture(t *testing.T) *postFixture {
	cache, _ := newTestCache(t)
	f := &postFixture{
		dao:      &quill_mock.MockPostDAO{},
		audit:    newAuditMock(),
		eventBus: util.NewEventBus(),
	}
	f.service = service.NewPostService(f.dao, util.NewValidationUtil(), util.NewContentSanitizer(), cache, f.audit, f.eventBus)
	return f
}

func TestListPostsServedFromCacheUntilCreate(t *testing.T) {
	f := newPostFixture(t)
	ctx := context.Background()
	filter := model.PostFilter{Skip: 0, Limit: 10}
	author := &model.User{ID: "u1"}

	f.dao.On("ListPosts", mock.Anything, filter).
		Return([]model.PostListItem{}, int64(0), nil).Once()

	first, err := f.service.ListPosts(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, int64(0), first.Total)

	// second read is a hit
	_, err = f.service.ListPosts(ctx, filter)
	require.NoError(t, err)
	f.dao.AssertNumberOfCalls(t, "ListPosts", 1)

	f.dao.On("CreatePost", mock.Anything, mock.AnythingOfType("model.Post")).
		Return(&model.Post{ID: "p1", Slug: "hello", Status: model.PostStatusDraft, AuthorID: "u1"}, nil)
	_, err = f.service.CreatePost(ctx, model.PostCreate{Title: "Hello", Slug: "hello", Content: "<p>hi</p>"}, author)
	require.NoError(t, err)

	f.dao.On("ListPosts", mock.Anything, filter).
		Return([]model.PostListItem{{ID: "p1", Slug: "hello"}}, int64(1), nil).Once()
	after, err := f.service.ListPosts(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, int64(1), after.Total)
	f.dao.AssertNumberOfCalls(t, "ListPosts", 2)
}

func TestCreatePostSanitizesContentAndDefaults(t *testing.T) {
	f := newPostFixture(t)
	var stored model.Post
	f.dao.On("CreatePost", mock.Anything, mock.AnythingOfType("model.Post")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(model.Post) }).
		Return(&model.Post{ID: "p1", Status: model.PostStatusDraft}, nil)

	_, err := f.service.CreatePost(context.Background(), model.PostCreate{
		Title:   "  Title  ",
		Slug:    "title",
		Content: `<p onclick="x()">body</p><script>alert(1)</script>`,
	}, &model.User{ID: "u1"})
	require.NoError(t, err)

	assert.Equal(t, "Title", stored.Title)
	assert.Equal(t, "u1", stored.AuthorID)
	assert.Equal(t, model.PostStatusDraft, stored.Status)
	assert.Equal(t, model.VisibilityPublic, stored.Visibility)
	assert.NotContains(t, stored.Content, "script")
	assert.NotContains(t, stored.Content, "onclick")
	assert.Equal(t, 1, stored.ReadingTime)
	f.audit.AssertCalled(t, "Record", mock.Anything, mock.MatchedBy(func(l audit.AuditLog) bool {
		return l.Action == audit.ActionCreatePost && l.ResourceID == "p1" && l.Success
	}))
}

func TestCreatePostRejectsMissingBody(t *testing.T) {
	f := newPostFixture(t)
	_, err := f.service.CreatePost(context.Background(), model.PostCreate{Title: "t", Slug: "s"}, &model.User{ID: "u1"})
	assert.ErrorIs(t, err, quill_errors.ErrInvalidPostData)
	f.dao.AssertNotCalled(t, "CreatePost", mock.Anything, mock.Anything)
}

func TestUpdatePostByNonAuthorIsForbidden(t *testing.T) {
	f := newPostFixture(t)
	f.dao.On("GetPost", mock.Anything, "p1").Return(&model.Post{ID: "p1", AuthorID: "owner"}, nil)

	title := "taken over"
	_, err := f.service.UpdatePost(context.Background(), "p1", model.PostUpdate{Title: &title}, &model.User{ID: "intruder"})
	assert.ErrorIs(t, err, quill_errors.ErrForbidden)
	f.dao.AssertNotCalled(t, "UpdatePost", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeletePostByNonAuthorIsForbidden(t *testing.T) {
	f := newPostFixture(t)
	f.dao.On("GetPost", mock.Anything, "p1").Return(&model.Post{ID: "p1", AuthorID: "owner"}, nil)

	_, err := f.service.DeletePost(context.Background(), "p1", &model.User{ID: "intruder"})
	assert.ErrorIs(t, err, quill_errors.ErrForbidden)
	f.dao.AssertNotCalled(t, "SoftDeletePost", mock.Anything, mock.Anything)
}

func TestSuperuserMayDeleteAnyPost(t *testing.T) {
	f := newPostFixture(t)
	f.dao.On("GetPost", mock.Anything, "p1").Return(&model.Post{ID: "p1", AuthorID: "owner"}, nil)
	f.dao.On("SoftDeletePost", mock.Anything, "p1").Return(&model.Post{ID: "p1"}, nil)

	_, err := f.service.DeletePost(context.Background(), "p1", &model.User{ID: "admin", IsSuperuser: true})
	require.NoError(t, err)
}

func TestPublishingEmitsEvent(t *testing.T) {
	f := newPostFixture(t)
	received := make(chan model.Post, 1)
	f.eventBus.Subscribe(util.EventPostPublished, func(_ context.Context, e util.Event) error {
		received <- e.Payload.(model.Post)
		return nil
	})

	f.dao.On("GetPost", mock.Anything, "p1").
		Return(&model.Post{ID: "p1", AuthorID: "u1", Status: model.PostStatusDraft}, nil)
	f.dao.On("UpdatePost", mock.Anything, mock.AnythingOfType("model.Post"), []string(nil)).
		Return(&model.Post{ID: "p1", AuthorID: "u1", Status: model.PostStatusPublished}, nil)

	status := model.PostStatusPublished
	_, err := f.service.UpdatePost(context.Background(), "p1", model.PostUpdate{Status: &status}, &model.User{ID: "u1"})
	require.NoError(t, err)

	f.eventBus.Wait()
	select {
	case p := <-received:
		assert.Equal(t, "p1", p.ID)
	case <-time.After(time.Second):
		t.Fatal("post.published was not emitted")
	}
}
