package shared

import "github.com/google/uuid"

// Role is the authorization role stored on a user and carried in tokens.
type Role string

const (
	RoleSuperAdministrator Role = "super_administrator"
	RoleDirector           Role = "director"
	RoleActor              Role = "actor"
	RoleUser               Role = "user"
)

func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdministrator, RoleDirector, RoleActor, RoleUser:
		return true
	}
	return false
}

// Principal is the authenticated caller of a service operation.
type Principal struct {
	UserID uuid.UUID
	Email  string
	Role   Role
}

func (p Principal) IsSuperAdministrator() bool {
	return p.Role == RoleSuperAdministrator
}

// Task types
const (
	TypeInvitationNotify = "invitation:notify"
	TypeMovieBudgetAudit = "movie:budget_audit"
)

// Queues
const (
	QueueCritical = "critical"
	QueueDefault  = "default"
	QueueLow      = "low"
)

// InvitationEvent describes what happened to an invitation.
type InvitationEvent string

const (
	InvitationCreated  InvitationEvent = "created"
	InvitationUpdated  InvitationEvent = "updated"
	InvitationAccepted InvitationEvent = "accepted"
)

// InvitationNotifyPayload is the payload of TypeInvitationNotify.
type InvitationNotifyPayload struct {
	InvitationID uuid.UUID       `json:"invitation_id"`
	MovieID      uuid.UUID       `json:"movie_id"`
	ActorID      uuid.UUID       `json:"actor_id"`
	Event        InvitationEvent `json:"event"`
}

// BudgetAuditPayload is the payload of TypeMovieBudgetAudit.
type BudgetAuditPayload struct {
	// Limit caps the number of movies scanned per run; 0 means all.
	Limit int `json:"limit"`
}
