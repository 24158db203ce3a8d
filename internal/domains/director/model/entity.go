package model

import (
	"time"

	"github.com/google/uuid"
)

type Director struct {
	ID        uuid.UUID
	Name      string
	Bio       string
	UserID    *uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}
