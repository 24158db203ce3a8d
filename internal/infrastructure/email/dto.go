package email

import "time"

// InvitationEmailData is everything the invitation e-mail renders.
type InvitationEmailData struct {
	To          string
	ActorName   string
	MovieTitle  string
	Kind        string
	Event       string
	HasAccepted bool
	StartDate   time.Time
	ReleaseDate time.Time
}
