// service/subscriber_service.go
package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/quill/dao"
	quill_errors "github.com/dev-mohitbeniwal/quill/errors"
	logger "github.com/dev-mohitbeniwal/quill/logging"
	"github.com/dev-mohitbeniwal/quill/model"
	"github.com/dev-mohitbeniwal/quill/util"
)

const (
	MsgSubscribed        = "Successfully subscribed."
	MsgAlreadySubscribed = "Already subscribed."
	MsgUnsubscribed      = "Successfully unsubscribed."
)

type ISubscriberService interface {
	Subscribe(ctx context.Context, email string) (string, error)
	Unsubscribe(ctx context.Context, email string) (string, error)
}

type SubscriberService struct {
	subscriberDAO  dao.ISubscriberDAO
	validationUtil *util.ValidationUtil
	notifier       util.Notifier
}

var _ ISubscriberService = &SubscriberService{}

// NewSubscriberService also subscribes to post publication so active
// subscribers hear about new articles.
func NewSubscriberService(subscriberDAO dao.ISubscriberDAO, validationUtil *util.ValidationUtil, notifier util.Notifier, eventBus *util.EventBus) *SubscriberService {
	service := &SubscriberService{
		subscriberDAO:  subscriberDAO,
		validationUtil: validationUtil,
		notifier:       notifier,
	}
	eventBus.Subscribe(util.EventPostPublished, service.handlePostPublished)
	return service
}

// Subscribe is idempotent. An inactive subscriber is reactivated.
func (s *SubscriberService) Subscribe(ctx context.Context, email string) (string, error) {
	if err := s.validationUtil.ValidateEmail(email); err != nil {
		return "", err
	}
	existing, err := s.subscriberDAO.GetSubscriberByEmail(ctx, email)
	switch {
	case err == nil && existing.IsActive:
		return MsgAlreadySubscribed, nil
	case err == nil:
		if err := s.subscriberDAO.SetSubscriberActive(ctx, email, true); err != nil {
			return "", fmt.Errorf("failed to reactivate subscriber: %w", err)
		}
		return MsgSubscribed, nil
	case errors.Is(err, quill_errors.ErrSubscriberNotFound):
		if _, err := s.subscriberDAO.CreateSubscriber(ctx, email); err != nil {
			return "", fmt.Errorf("failed to create subscriber: %w", err)
		}
		logger.Info("New subscriber")
		return MsgSubscribed, nil
	default:
		return "", fmt.Errorf("failed to look up subscriber: %w", err)
	}
}

func (s *SubscriberService) Unsubscribe(ctx context.Context, email string) (string, error) {
	if err := s.subscriberDAO.SetSubscriberActive(ctx, email, false); err != nil {
		return "", fmt.Errorf("failed to unsubscribe: %w", err)
	}
	return MsgUnsubscribed, nil
}

func (s *SubscriberService) handlePostPublished(ctx context.Context, event util.Event) error {
	post, ok := event.Payload.(model.Post)
	if !ok {
		return fmt.Errorf("unexpected payload %T", event.Payload)
	}
	logger.Info("Post published event received", zap.String("postID", post.ID))

	emails, err := s.subscriberDAO.ListActiveEmails(ctx)
	if err != nil {
		return err
	}
	if len(emails) == 0 {
		return nil
	}
	body := post.Abstract
	if body == "" {
		body = post.Title
	}
	return s.notifier.Broadcast(ctx, emails, "New article: "+post.Title, body)
}
