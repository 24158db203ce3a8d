package model

import (
	"bytes"
	"context"
	"errors"
	"slices"

	"github.com/google/uuid"

	"filmforge-backend/pkg/lock"
)

// Lock order: movie locks before actor locks, each group in ascending id
// order. Every path that reads actor fees into a roster holds the actor
// locks of those actors until the roster is stored.

// AcquireRoster takes the lock guarding movieID's roster. A lock that cannot
// be taken in time is reported as ErrMovieBusy.
func AcquireRoster(ctx context.Context, locker lock.Locker, movieID uuid.UUID) (func(), error) {
	return acquireAll(ctx, locker, []string{LockKey(movieID)})
}

// AcquireRosters locks several movies at once, in lock order.
func AcquireRosters(ctx context.Context, locker lock.Locker, movieIDs ...uuid.UUID) (func(), error) {
	keys := make([]string, 0, len(movieIDs))
	for _, id := range sortedUnique(movieIDs) {
		keys = append(keys, LockKey(id))
	}
	return acquireAll(ctx, locker, keys)
}

// AcquireActors locks the fees of the given actors. Callers that also need
// a roster lock must take it first.
func AcquireActors(ctx context.Context, locker lock.Locker, actorIDs ...uuid.UUID) (func(), error) {
	keys := make([]string, 0, len(actorIDs))
	for _, id := range sortedUnique(actorIDs) {
		keys = append(keys, ActorLockKey(id))
	}
	return acquireAll(ctx, locker, keys)
}

func ActorLockKey(actorID uuid.UUID) string {
	return "actor:" + actorID.String()
}

func acquireAll(ctx context.Context, locker lock.Locker, keys []string) (func(), error) {
	releases := make([]func(), 0, len(keys))
	releaseAll := func() {
		for i := len(releases) - 1; i >= 0; i-- {
			releases[i]()
		}
	}

	for _, key := range keys {
		release, err := locker.Acquire(ctx, key)
		if err != nil {
			releaseAll()
			if errors.Is(err, lock.ErrNotAcquired) {
				return nil, ErrMovieBusy
			}
			return nil, err
		}
		releases = append(releases, release)
	}
	return releaseAll, nil
}

func sortedUnique(ids []uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id != uuid.Nil {
			out = append(out, id)
		}
	}
	slices.SortFunc(out, func(a, b uuid.UUID) int { return bytes.Compare(a[:], b[:]) })
	return slices.Compact(out)
}
