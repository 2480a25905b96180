// test/mock/neo4j.go
package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dev-mohitbeniwal/quill/dao"
	"github.com/dev-mohitbeniwal/quill/model"
)

// MockDriver stands in for the Neo4j driver in health checks
type MockDriver struct {
	mock.Mock
}

func (m *MockDriver) VerifyConnectivity(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockUserDAO is a mock implementation of dao.IUserDAO
type MockUserDAO struct {
	mock.Mock
}

var _ dao.IUserDAO = &MockUserDAO{}

func (m *MockUserDAO) CreateUser(ctx context.Context, user model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *MockUserDAO) GetUser(ctx context.Context, userID string) (*model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *MockUserDAO) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

// MockRoleDAO is a mock implementation of dao.IRoleDAO
type MockRoleDAO struct {
	mock.Mock
}

var _ dao.IRoleDAO = &MockRoleDAO{}

func (m *MockRoleDAO) CreateRole(ctx context.Context, role model.Role) (*model.Role, error) {
	args := m.Called(ctx, role)
	r, _ := args.Get(0).(*model.Role)
	return r, args.Error(1)
}

func (m *MockRoleDAO) GetRoleByName(ctx context.Context, name string) (*model.Role, error) {
	args := m.Called(ctx, name)
	r, _ := args.Get(0).(*model.Role)
	return r, args.Error(1)
}

// MockPostDAO is a mock implementation of dao.IPostDAO
type MockPostDAO struct {
	mock.Mock
}

var _ dao.IPostDAO = &MockPostDAO{}

func (m *MockPostDAO) CreatePost(ctx context.Context, post model.Post) (*model.Post, error) {
	args := m.Called(ctx, post)
	p, _ := args.Get(0).(*model.Post)
	return p, args.Error(1)
}

func (m *MockPostDAO) UpdatePost(ctx context.Context, post model.Post, tagIDs []string) (*model.Post, error) {
	args := m.Called(ctx, post, tagIDs)
	p, _ := args.Get(0).(*model.Post)
	return p, args.Error(1)
}

func (m *MockPostDAO) SoftDeletePost(ctx context.Context, postID string) (*model.Post, error) {
	args := m.Called(ctx, postID)
	p, _ := args.Get(0).(*model.Post)
	return p, args.Error(1)
}

func (m *MockPostDAO) GetPost(ctx context.Context, postID string) (*model.Post, error) {
	args := m.Called(ctx, postID)
	p, _ := args.Get(0).(*model.Post)
	return p, args.Error(1)
}

func (m *MockPostDAO) GetPostBySlug(ctx context.Context, slug string) (*model.Post, error) {
	args := m.Called(ctx, slug)
	p, _ := args.Get(0).(*model.Post)
	return p, args.Error(1)
}

func (m *MockPostDAO) GetPostDetail(ctx context.Context, slug string) (*model.PostDetail, error) {
	args := m.Called(ctx, slug)
	p, _ := args.Get(0).(*model.PostDetail)
	return p, args.Error(1)
}

func (m *MockPostDAO) ListPosts(ctx context.Context, filter model.PostFilter) ([]model.PostListItem, int64, error) {
	args := m.Called(ctx, filter)
	items, _ := args.Get(0).([]model.PostListItem)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *MockPostDAO) SearchPosts(ctx context.Context, q model.SearchQuery) ([]dao.SearchHit, int64, error) {
	args := m.Called(ctx, q)
	hits, _ := args.Get(0).([]dao.SearchHit)
	return hits, args.Get(1).(int64), args.Error(2)
}

// MockCommentDAO is a mock implementation of dao.ICommentDAO
type MockCommentDAO struct {
	mock.Mock
}

var _ dao.ICommentDAO = &MockCommentDAO{}

func (m *MockCommentDAO) CreateComment(ctx context.Context, comment model.Comment) (*model.Comment, error) {
	args := m.Called(ctx, comment)
	c, _ := args.Get(0).(*model.Comment)
	return c, args.Error(1)
}

func (m *MockCommentDAO) GetComment(ctx context.Context, commentID string) (*model.Comment, error) {
	args := m.Called(ctx, commentID)
	c, _ := args.Get(0).(*model.Comment)
	return c, args.Error(1)
}

func (m *MockCommentDAO) ApproveComment(ctx context.Context, commentID string) (*model.Comment, error) {
	args := m.Called(ctx, commentID)
	c, _ := args.Get(0).(*model.Comment)
	return c, args.Error(1)
}

func (m *MockCommentDAO) DeleteComment(ctx context.Context, commentID string) error {
	args := m.Called(ctx, commentID)
	return args.Error(0)
}

func (m *MockCommentDAO) ListApprovedComments(ctx context.Context, postID string, skip, limit int) ([]model.Comment, int64, error) {
	args := m.Called(ctx, postID, skip, limit)
	items, _ := args.Get(0).([]model.Comment)
	return items, args.Get(1).(int64), args.Error(2)
}

// MockCategoryDAO is a mock implementation of dao.ICategoryDAO
type MockCategoryDAO struct {
	mock.Mock
}

var _ dao.ICategoryDAO = &MockCategoryDAO{}

func (m *MockCategoryDAO) CreateCategory(ctx context.Context, category model.Category) (*model.Category, error) {
	args := m.Called(ctx, category)
	c, _ := args.Get(0).(*model.Category)
	return c, args.Error(1)
}

func (m *MockCategoryDAO) ListCategoriesWithCount(ctx context.Context) ([]model.CategoryWithCount, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.CategoryWithCount)
	return items, args.Error(1)
}

// MockTagDAO is a mock implementation of dao.ITagDAO
type MockTagDAO struct {
	mock.Mock
}

var _ dao.ITagDAO = &MockTagDAO{}

func (m *MockTagDAO) CreateTag(ctx context.Context, tag model.Tag) (*model.Tag, error) {
	args := m.Called(ctx, tag)
	t, _ := args.Get(0).(*model.Tag)
	return t, args.Error(1)
}

func (m *MockTagDAO) ListTags(ctx context.Context, q string) ([]model.Tag, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Tag)
	return items, args.Error(1)
}

// MockSubscriberDAO is a mock implementation of dao.ISubscriberDAO
type MockSubscriberDAO struct {
	mock.Mock
}

var _ dao.ISubscriberDAO = &MockSubscriberDAO{}

func (m *MockSubscriberDAO) GetSubscriberByEmail(ctx context.Context, email string) (*model.Subscriber, error) {
	args := m.Called(ctx, email)
	s, _ := args.Get(0).(*model.Subscriber)
	return s, args.Error(1)
}

func (m *MockSubscriberDAO) CreateSubscriber(ctx context.Context, email string) (*model.Subscriber, error) {
	args := m.Called(ctx, email)
	s, _ := args.Get(0).(*model.Subscriber)
	return s, args.Error(1)
}

func (m *MockSubscriberDAO) SetSubscriberActive(ctx context.Context, email string, active bool) error {
	args := m.Called(ctx, email, active)
	return args.Error(0)
}

func (m *MockSubscriberDAO) ListActiveEmails(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	emails, _ := args.Get(0).([]string)
	return emails, args.Error(1)
}

// MockDashboardDAO is a mock implementation of dao.IDashboardDAO
type MockDashboardDAO struct {
	mock.Mock
}

var _ dao.IDashboardDAO = &MockDashboardDAO{}

func (m *MockDashboardDAO) CountPosts(ctx context.Context, status string) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDashboardDAO) SumViews(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDashboardDAO) ListDashboardPosts(ctx context.Context, filter model.DashboardFilter) ([]model.DashboardPostItem, int64, error) {
	args := m.Called(ctx, filter)
	items, _ := args.Get(0).([]model.DashboardPostItem)
	return items, args.Get(1).(int64), args.Error(2)
}

// MockNotifier is a mock implementation of util.Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendEmail(ctx context.Context, recipient, subject, body string) error {
	args := m.Called(ctx, recipient, subject, body)
	return args.Error(0)
}

func (m *MockNotifier) Broadcast(ctx context.Context, recipients []string, subject, body string) error {
	args := m.Called(ctx, recipients, subject, body)
	return args.Error(0)
}
