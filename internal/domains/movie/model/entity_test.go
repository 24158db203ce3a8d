package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestMovie_FeesWith(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	m := &Movie{Roster: []RosterEntry{{ActorID: a, Fee: 40}, {ActorID: b, Fee: 30}}}

	assert.Equal(t, []uint64{40, 30}, m.Fees())
	assert.Equal(t, []uint64{40, 30, 20}, m.FeesWith(c, 20), "new actor is appended")
	assert.Equal(t, []uint64{40, 5}, m.FeesWith(b, 5), "rostered actor is replaced")
	assert.Equal(t, []uint64{40, 30}, m.Fees(), "roster is not mutated")

	empty := &Movie{}
	assert.Equal(t, []uint64{7}, empty.FeesWith(a, 7))
	assert.True(t, m.HasActor(a))
	assert.False(t, m.HasActor(c))
}

func TestMovie_InProduction(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	release := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	m := &Movie{StartDate: start, ReleaseDate: release}

	assert.True(t, m.InProduction(start), "window start is inclusive")
	assert.True(t, m.InProduction(release), "window end is inclusive")
	assert.True(t, m.InProduction(start.Add(48*time.Hour)))
	assert.False(t, m.InProduction(start.Add(-time.Second)))
	assert.False(t, m.InProduction(release.Add(time.Second)))
}
