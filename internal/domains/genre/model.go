package genre

import (
	"time"

	"github.com/google/uuid"
)

type Genre struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DefaultNames are the genres seeded into a fresh database.
var DefaultNames = []string{
	"Action", "Adventure", "Comedy", "Drama", "Fantasy",
	"Historical", "Horror", "Sci-Fi", "Musical/Dance", "Mystery",
	"Romance", "Thriller/Suspense", "Western", "Documentary", "Biopic",
	"Animation", "Family", "War", "Crime", "Film Noir",
}
