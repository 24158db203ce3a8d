package model

import "filmforge-backend/internal/shared/apperror"

const (
	ErrCodeInvitationNotFound = "INVITATION_NOT_FOUND"
	ErrCodeInvitationExists   = "INVITATION_ALREADY_EXISTS"
)

var (
	ErrInvitationNotFound = apperror.NotFound(ErrCodeInvitationNotFound, "Invitation not found")
	ErrInvitationExists   = apperror.Conflict(ErrCodeInvitationExists, "Actor is already invited to this movie")
)
