package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/gaienhofen/user-onboarding/config"
	"github.com/gaienhofen/user-onboarding/internal/domain/event"
	mailtpl "github.com/gaienhofen/user-onboarding/pkg/mailer/templates"
	"github.com/gaienhofen/user-onboarding/pkg/validation"
)

// ErrBadPayload marks messages that can never be delivered; they must not be requeued.
var ErrBadPayload = errors.New("bad payload")

// MailSender sends a rendered message.
type MailSender interface {
	Send(ctx context.Context, to, subject, text, html string) error
}

// WelcomeService turns user.created events into welcome emails.
type WelcomeService struct {
	Sender      MailSender
	Logger      *logrus.Logger
	Cfg         *config.Config
	SendTimeout time.Duration
}

func NewWelcomeService(sender MailSender, logger *logrus.Logger, cfg *config.Config) *WelcomeService {
	return &WelcomeService{Sender: sender, Logger: logger, Cfg: cfg, SendTimeout: 15 * time.Second}
}

// HandleUserCreated decodes body, renders the welcome mail and sends it.
func (w *WelcomeService) HandleUserCreated(ctx context.Context, body []byte) error {
	var ev event.UserCreated
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	if ev.Type != event.TypeUserCreated {
		return fmt.Errorf("%w: unexpected type %q", ErrBadPayload, ev.Type)
	}
	if !validation.IsEmail(ev.Email) {
		return fmt.Errorf("%w: invalid recipient", ErrBadPayload)
	}

	data := mailtpl.NewWelcomeData(w.Cfg, ev.FirstName, ev.Name, ev.Email)
	subject, text, html, err := mailtpl.Render(mailtpl.Welcome, data)
	if err != nil {
		return fmt.Errorf("%w: render: %v", ErrBadPayload, err)
	}

	timeout := w.SendTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	c, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := w.Sender.Send(c, ev.Email, subject, text, html); err != nil {
		return fmt.Errorf("send welcome: %w", err)
	}
	if w.Logger != nil {
		w.Logger.WithField("user_id", ev.UserID).Info("welcome email sent")
	}
	return nil
}
