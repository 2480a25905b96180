// util/notification_service.go

package util

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	logger "github.com/dev-mohitbeniwal/quill/logging"
)

// maxConcurrentSends caps how many emails go out at once.
const maxConcurrentSends = 8

type Notifier interface {
	SendEmail(ctx context.Context, recipient, subject, body string) error
	Broadcast(ctx context.Context, recipients []string, subject, body string) error
}

// NotificationService delivers outbound mail. Delivery is only logged; there
// is no mail transport configured.
type NotificationService struct{}

var _ Notifier = &NotificationService{}

func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

func (n *NotificationService) SendEmail(ctx context.Context, recipient, subject, body string) error {
	logger.Info("Sending email",
		zap.String("recipient", recipient),
		zap.String("subject", subject),
		zap.Int("bodyLength", len(body)))
	return nil
}

// Broadcast sends the same message to every recipient. It returns the first
// delivery error after all sends have finished.
func (n *NotificationService) Broadcast(ctx context.Context, recipients []string, subject, body string) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentSends)
	for _, r := range recipients {
		recipient := r
		g.Go(func() error {
			return n.SendEmail(gctx, recipient, subject, body)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("Broadcast delivered", zap.String("subject", subject), zap.Int("recipients", len(recipients)))
	return nil
}
