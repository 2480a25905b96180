package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	quill_errors "github.com/dev-mohitbeniwal/quill/errors"
	"github.com/dev-mohitbeniwal/quill/model"
	"github.com/dev-mohitbeniwal/quill/service"
	quill_mock "github.com/dev-mohitbeniwal/quill/test/mock"
	"github.com/dev-mohitbeniwal/quill/util"
)

func TestSubscribeIsIdempotent(t *testing.T) {
	subscriberDAO := &quill_mock.MockSubscriberDAO{}
	svc := service.NewSubscriberService(subscriberDAO, util.NewValidationUtil(), &quill_mock.MockNotifier{}, util.NewEventBus())
	ctx := context.Background()

	subscriberDAO.On("GetSubscriberByEmail", mock.Anything, "new@example.com").
		Return(nil, quill_errors.ErrSubscriberNotFound)
	subscriberDAO.On("CreateSubscriber", mock.Anything, "new@example.com").
		Return(&model.Subscriber{Email: "new@example.com", IsActive: true}, nil)
	msg, err := svc.Subscribe(ctx, "new@example.com")
	require.NoError(t, err)
	assert.Equal(t, service.MsgSubscribed, msg)

	subscriberDAO.On("GetSubscriberByEmail", mock.Anything, "old@example.com").
		Return(&model.Subscriber{Email: "old@example.com", IsActive: true}, nil)
	msg, err = svc.Subscribe(ctx, "old@example.com")
	require.NoError(t, err)
	assert.Equal(t, service.MsgAlreadySubscribed, msg)

	subscriberDAO.On("GetSubscriberByEmail", mock.Anything, "gone@example.com").
		Return(&model.Subscriber{Email: "gone@example.com", IsActive: false}, nil)
	subscriberDAO.On("SetSubscriberActive", mock.Anything, "gone@example.com", true).Return(nil)
	msg, err = svc.Subscribe(ctx, "gone@example.com")
	require.NoError(t, err)
	assert.Equal(t, service.MsgSubscribed, msg)
}

func TestSubscribeRejectsInvalidEmail(t *testing.T) {
	subscriberDAO := &quill_mock.MockSubscriberDAO{}
	svc := service.NewSubscriberService(subscriberDAO, util.NewValidationUtil(), &quill_mock.MockNotifier{}, util.NewEventBus())

	_, err := svc.Subscribe(context.Background(), "not-an-email")
	assert.ErrorIs(t, err, quill_errors.ErrInvalidSubscriberData)
}

func TestPublishedPostNotifiesActiveSubscribers(t *testing.T) {
	subscriberDAO := &quill_mock.MockSubscriberDAO{}
	notifier := &quill_mock.MockNotifier{}
	eventBus := util.NewEventBus()
	service.NewSubscriberService(subscriberDAO, util.NewValidationUtil(), notifier, eventBus)

	emails := []string{"a@example.com", "b@example.com"}
	subscriberDAO.On("ListActiveEmails", mock.Anything).Return(emails, nil)
	notifier.On("Broadcast", mock.Anything, emails, "New article: Hello", "Hello").Return(nil)

	eventBus.Publish(context.Background(), util.EventPostPublished, model.Post{ID: "p1", Title: "Hello"})
	eventBus.Wait()

	notifier.AssertExpectations(t)
}
