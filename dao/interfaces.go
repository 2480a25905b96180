// dao/interfaces.go
package dao

import (
	"context"

	"github.com/dev-mohitbeniwal/quill/model"
)

type IUserDAO interface {
	CreateUser(ctx context.Context, user model.User) (*model.User, error)
	GetUser(ctx context.Context, userID string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
}

type IRoleDAO interface {
	CreateRole(ctx context.Context, role model.Role) (*model.Role, error)
	GetRoleByName(ctx context.Context, name string) (*model.Role, error)
}

type IPostDAO interface {
	CreatePost(ctx context.Context, post model.Post) (*model.Post, error)
	UpdatePost(ctx context.Context, post model.Post, tagIDs []string) (*model.Post, error)
	SoftDeletePost(ctx context.Context, postID string) (*model.Post, error)
	GetPost(ctx context.Context, postID string) (*model.Post, error)
	GetPostBySlug(ctx context.Context, slug string) (*model.Post, error)
	GetPostDetail(ctx context.Context, slug string) (*model.PostDetail, error)
	ListPosts(ctx context.Context, filter model.PostFilter) ([]model.PostListItem, int64, error)
	SearchPosts(ctx context.Context, q model.SearchQuery) ([]SearchHit, int64, error)
}

type ICommentDAO interface {
	CreateComment(ctx context.Context, comment model.Comment) (*model.Comment, error)
	GetComment(ctx context.Context, commentID string) (*model.Comment, error)
	ApproveComment(ctx context.Context, commentID string) (*model.Comment, error)
	DeleteComment(ctx context.Context, commentID string) error
	ListApprovedComments(ctx context.Context, postID string, skip, limit int) ([]model.Comment, int64, error)
}

type ICategoryDAO interface {
	CreateCategory(ctx context.Context, category model.Category) (*model.Category, error)
	ListCategoriesWithCount(ctx context.Context) ([]model.CategoryWithCount, error)
}

type ITagDAO interface {
	CreateTag(ctx context.Context, tag model.Tag) (*model.Tag, error)
	ListTags(ctx context.Context, q string) ([]model.Tag, error)
}

type ISubscriberDAO interface {
	GetSubscriberByEmail(ctx context.Context, email string) (*model.Subscriber, error)
	CreateSubscriber(ctx context.Context, email string) (*model.Subscriber, error)
	SetSubscriberActive(ctx context.Context, email string, active bool) error
	ListActiveEmails(ctx context.Context) ([]string, error)
}

type IDashboardDAO interface {
	CountPosts(ctx context.Context, status string) (int64, error)
	SumViews(ctx context.Context) (int64, error)
	ListDashboardPosts(ctx context.Context, filter model.DashboardFilter) ([]model.DashboardPostItem, int64, error)
}
