// Package cache provides a Redis-backed cache for the task list, used in a
// cache-aside pattern by the service layer. The cache is an optional,
// best-effort collaborator: the service must work identically (minus the
// acceleration) when no cache is configured.
package cache

import (
	"context"
	"time"

	"github.com/phrazzld/tasktrack-api/internal/domain"
)

// Task list cache settings
const (
	// TaskListKey is the fixed key under which the full unfiltered task
	// list snapshot is stored. Filtered listings are never cached.
	TaskListKey = "tasks:all"

	// DefaultTaskListTTL bounds how stale a cached snapshot may be.
	DefaultTaskListTTL = 30 * time.Second
)

// ListCache is the capability the service layer needs from a cache: get,
// set with TTL, and delete for the single well-known task-list key. A nil
// ListCache means no cache is configured.
type ListCache interface {
	// GetList retrieves the cached task-list snapshot.
	// The second return value reports whether the key was present; an
	// intentionally cached empty list is a hit with zero tasks, not a miss.
	GetList(ctx context.Context) ([]*domain.Task, bool, error)

	// SetList stores a task-list snapshot under the fixed key with the
	// configured TTL, replacing any previous snapshot.
	SetList(ctx context.Context, tasks []*domain.Task) error

	// Invalidate removes the task-list snapshot. Deleting an absent key
	// is not an error.
	Invalidate(ctx context.Context) error
}
