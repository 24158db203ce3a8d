package email

import (
	"context"
	"errors"
	"net/smtp"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendInvitationEmail(t *testing.T) {
	svc := NewSMTPEmailService("localhost", "1025", "casting@filmforge.dev", zerolog.Nop()).(*smtpEmailService)

	var (
		gotAddr string
		gotTo   []string
		gotMsg  string
	)
	svc.send = func(addr string, _ smtp.Auth, _ string, to []string, msg []byte) error {
		gotAddr, gotTo, gotMsg = addr, to, string(msg)
		return nil
	}

	err := svc.SendInvitationEmail(context.Background(), InvitationEmailData{
		To:          "ada@example.com",
		ActorName:   "Ada Stone",
		MovieTitle:  "Harbor Lights",
		Kind:        "offer",
		Event:       "created",
		StartDate:   time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		ReleaseDate: time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, "localhost:1025", gotAddr)
	assert.Equal(t, []string{"ada@example.com"}, gotTo)
	assert.Contains(t, gotMsg, "Subject: Invitation to Harbor Lights")
	assert.Contains(t, gotMsg, "Hello Ada Stone")
	assert.Contains(t, gotMsg, "1 May 2026 to 1 Nov 2026")
	assert.Contains(t, gotMsg, "awaiting your answer")
}

func TestSendInvitationEmail_Accepted(t *testing.T) {
	svc := NewSMTPEmailService("localhost", "1025", "casting@filmforge.dev", zerolog.Nop()).(*smtpEmailService)
	var gotMsg string
	svc.send = func(_ string, _ smtp.Auth, _ string, _ []string, msg []byte) error {
		gotMsg = string(msg)
		return nil
	}

	require.NoError(t, svc.SendInvitationEmail(context.Background(), InvitationEmailData{
		To: "bo@example.com", ActorName: "Bo", MovieTitle: "Second Wind", Kind: "confirmation", HasAccepted: true,
	}))
	assert.Contains(t, gotMsg, "Subject: You are cast in Second Wind")
}

func TestSendInvitationEmail_Failure(t *testing.T) {
	svc := NewSMTPEmailService("localhost", "1025", "casting@filmforge.dev", zerolog.Nop()).(*smtpEmailService)
	svc.send = func(string, smtp.Auth, string, []string, []byte) error {
		return errors.New("connection refused")
	}

	err := svc.SendInvitationEmail(context.Background(), InvitationEmailData{To: "x@example.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, svc.SendInvitationEmail(ctx, InvitationEmailData{To: "x@example.com"}), context.Canceled)
}
