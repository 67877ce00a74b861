package mailservice

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSendWelcomeEmail(t *testing.T) {
	mockMC := new(MockMessageConsumer)
	mockMailer := new(MockMailer)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx, cancel := context.WithCancel(context.Background())

	s := &MailService{
		mb:     mockMC,
		m:      mockMailer,
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}

	s.SendWelcomeEmail()

	time.Sleep(1 * time.Second)

	assert.True(t, mockMailer.Called, "expected a welcome email to be sent")
	assert.Equal(t, "test@example.com", mockMailer.Email, "expected email to be sent to the recipient")

	t.Cleanup(func() {
		s.Close()
	})
}
