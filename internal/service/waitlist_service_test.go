package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-resume-be/internal/dto"
	"ai-resume-be/internal/repository/memory"
)

type recordingMailer struct {
	sent []string
}

func (m *recordingMailer) SendWaitlistConfirmation(toEmail string) error {
	m.sent = append(m.sent, toEmail)
	return nil
}

func TestWaitlistSubscribe(t *testing.T) {
	mails := &recordingMailer{}
	svc := NewWaitlistService(memory.NewWaitlistRepository(), mails, nopLogger{})

	res, err := svc.Subscribe(context.Background(), &dto.SubscribeWaitlistRequest{Email: "jane@example.com"})

	require.NoError(t, err)
	assert.True(t, res.Subscribed)
	assert.Equal(t, []string{"jane@example.com"}, mails.sent)
}

func TestWaitlistSubscribeIdempotent(t *testing.T) {
	mails := &recordingMailer{}
	svc := NewWaitlistService(memory.NewWaitlistRepository(), mails, nopLogger{})

	_, err := svc.Subscribe(context.Background(), &dto.SubscribeWaitlistRequest{Email: "jane@example.com"})
	require.NoError(t, err)

	res, err := svc.Subscribe(context.Background(), &dto.SubscribeWaitlistRequest{Email: "jane@example.com"})

	require.NoError(t, err)
	assert.True(t, res.Subscribed, "re-subscribing still reports success")
	assert.Len(t, mails.sent, 1, "only the first signup gets a confirmation")
}
