package model

import "filmforge-backend/internal/shared/apperror"

const (
	ErrCodeActorNotFound = "ACTOR_NOT_FOUND"
	ErrCodeUserLinked    = "ACTOR_USER_ALREADY_LINKED"
	ErrCodeNotOwner      = "ACTOR_NOT_OWNER"
)

var (
	ErrActorNotFound = apperror.NotFound(ErrCodeActorNotFound, "Actor not found")
	ErrUserLinked    = apperror.Conflict(ErrCodeUserLinked, "User is already linked to another actor")
	ErrNotOwner      = apperror.New(apperror.KindForbidden, ErrCodeNotOwner, "Actors may only update their own record")
)
