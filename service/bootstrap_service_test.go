package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dev-mohitbeniwal/quill/auth"
	"github.com/dev-mohitbeniwal/quill/config"
	quill_errors "github.com/dev-mohitbeniwal/quill/errors"
	"github.com/dev-mohitbeniwal/quill/model"
	"github.com/dev-mohitbeniwal/quill/service"
	quill_mock "github.com/dev-mohitbeniwal/quill/test/mock"
)

func TestBootstrapDisabledDoesNothing(t *testing.T) {
	roles := &quill_mock.MockRoleDAO{}
	users := &quill_mock.MockUserDAO{}
	svc := service.NewBootstrapService(roles, users, nil)

	require.NoError(t, svc.Run(context.Background(), config.BootstrapConfiguration{}))
	roles.AssertNotCalled(t, "CreateRole", mock.Anything, mock.Anything)
}

func TestBootstrapCreatesRolesAndSuperuser(t *testing.T) {
	hasher, err := auth.NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)
	roles := &quill_mock.MockRoleDAO{}
	users := &quill_mock.MockUserDAO{}
	svc := service.NewBootstrapService(roles, users, hasher)

	for _, name := range []string{model.RoleAdmin, model.RoleEditor, model.RoleUser} {
		name := name
		roles.On("CreateRole", mock.Anything, mock.MatchedBy(func(r model.Role) bool { return r.Name == name })).
			Return(&model.Role{ID: "role-" + name, Name: name}, nil)
	}
	users.On("GetUserByEmail", mock.Anything, "root@example.com").Return(nil, quill_errors.ErrUserNotFound)

	var created model.User
	users.On("CreateUser", mock.Anything, mock.AnythingOfType("model.User")).
		Run(func(args mock.Arguments) { created = args.Get(1).(model.User) }).
		Return(&model.User{ID: "u1"}, nil)

	err = svc.Run(context.Background(), config.BootstrapConfiguration{
		Enabled:           true,
		SuperuserEmail:    "root@example.com",
		SuperuserPassword: "changeme",
	})
	require.NoError(t, err)

	assert.True(t, created.IsSuperuser)
	assert.True(t, created.IsActive)
	assert.Equal(t, "role-admin", created.RoleID)
	ok, err := hasher.Verify("changeme", created.PasswordHash)
	require.NoError(t, err)
	assert.True(t, ok)
}
