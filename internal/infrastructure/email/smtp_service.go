package email

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"github.com/rs/zerolog"
)

type EmailService interface {
	SendInvitationEmail(ctx context.Context, data InvitationEmailData) error
}

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type smtpEmailService struct {
	smtpAddr string
	smtpFrom string
	send     sendFunc
	log      zerolog.Logger
}

// NewSMTPEmailService sends plain-text mail through an unauthenticated SMTP
// relay such as MailHog in development.
func NewSMTPEmailService(host, port, from string, log zerolog.Logger) EmailService {
	return &smtpEmailService{
		smtpAddr: net.JoinHostPort(host, port),
		smtpFrom: from,
		send:     smtp.SendMail,
		log:      log.With().Str("component", "smtp").Logger(),
	}
}

func (s *smtpEmailService) SendInvitationEmail(ctx context.Context, data InvitationEmailData) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	subject, body := renderInvitation(data)
	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n%s",
		s.smtpFrom, data.To, subject, body))

	if err := s.send(s.smtpAddr, nil, s.smtpFrom, []string{data.To}, msg); err != nil {
		s.log.Error().Err(err).
			Str("to", data.To).
			Str("smtp_addr", s.smtpAddr).
			Msg("failed to send invitation email")
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func renderInvitation(data InvitationEmailData) (subject, body string) {
	switch {
	case data.HasAccepted:
		subject = fmt.Sprintf("You are cast in %s", data.MovieTitle)
	case data.Event == "updated":
		subject = fmt.Sprintf("Your invitation to %s was updated", data.MovieTitle)
	default:
		subject = fmt.Sprintf("Invitation to %s", data.MovieTitle)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\r\n\r\n", data.ActorName)
	fmt.Fprintf(&b, "You have a %s for the movie %q.\r\n", data.Kind, data.MovieTitle)
	fmt.Fprintf(&b, "Production runs from %s to %s.\r\n",
		data.StartDate.Format("2 Jan 2006"), data.ReleaseDate.Format("2 Jan 2006"))
	if data.HasAccepted {
		b.WriteString("The invitation is accepted and you are on the roster.\r\n")
	} else {
		b.WriteString("The invitation is awaiting your answer.\r\n")
	}
	b.WriteString("\r\nFilmForge")
	return subject, b.String()
}
