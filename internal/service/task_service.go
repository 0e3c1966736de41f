// Package service contains the application services that mediate between
// the HTTP layer and the persistence and caching collaborators.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/tasktrack-api/internal/cache"
	"github.com/phrazzld/tasktrack-api/internal/domain"
	"github.com/phrazzld/tasktrack-api/internal/store"
)

// TaskService provides task-related operations. It is the single mediator
// between the HTTP handlers and the two backing collaborators: the
// relational store (source of truth) and the optional list cache.
type TaskService interface {
	// List retrieves tasks matching the filter, newest first.
	// cacheable marks a request with no query parameters at all; only such
	// requests may be served from (and repopulate) the list cache. The
	// returned bool reports whether the result came from the cache.
	List(ctx context.Context, filter store.ListFilter, cacheable bool) ([]*domain.Task, bool, error)

	// Create validates the payload, applies creation defaults, persists a
	// new task and invalidates the list cache.
	Create(ctx context.Context, payload map[string]any) (*domain.Task, error)

	// Get retrieves a task by its ID. Single-item reads never touch the cache.
	Get(ctx context.Context, id int64) (*domain.Task, error)

	// Update applies a partial update to an existing task and invalidates
	// the list cache. Fields absent from the payload are left unchanged.
	Update(ctx context.Context, id int64, payload map[string]any) (*domain.Task, error)

	// Delete removes a task permanently and invalidates the list cache.
	Delete(ctx context.Context, id int64) error
}

// Common sentinel errors for TaskService
var (
	// ErrTaskNotFound indicates that the task does not exist
	ErrTaskNotFound = errors.New("task not found")
)

// taskService is the production TaskService implementation.
type taskService struct {
	tasks     store.TaskStore
	listCache cache.ListCache
	logger    *slog.Logger
}

// NewTaskService creates a TaskService backed by the given store and an
// optional list cache. A nil listCache disables caching entirely; every
// list read then goes to the store.
func NewTaskService(tasks store.TaskStore, listCache cache.ListCache, logger *slog.Logger) TaskService {
	if tasks == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("tasks store cannot be nil for TaskService")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TaskService")
	}

	return &taskService{
		tasks:     tasks,
		listCache: listCache,
		logger:    logger.With(slog.String("component", "task_service")),
	}
}

// List implements TaskService.List using the cache-aside pattern: on a
// cacheable request, try the cache first, fall back to the store on a miss
// and write the snapshot back with the configured TTL. A cache read failure
// is treated the same as a miss rather than failing the request.
func (s *taskService) List(
	ctx context.Context,
	filter store.ListFilter,
	cacheable bool,
) ([]*domain.Task, bool, error) {
	useCache := s.listCache != nil && cacheable && filter.Empty()

	if useCache {
		tasks, hit, err := s.listCache.GetList(ctx)
		if err != nil {
			s.logger.Warn("task list cache read failed, falling back to store",
				slog.Any("error", err))
		} else if hit {
			return tasks, true, nil
		}
	}

	tasks, err := s.tasks.List(ctx, filter)
	if err != nil {
		return nil, false, fmt.Errorf("failed to list tasks: %w", err)
	}

	if useCache {
		if err := s.listCache.SetList(ctx, tasks); err != nil {
			// Best-effort write-back; the next cacheable read retries.
			s.logger.Warn("task list cache write failed", slog.Any("error", err))
		}
	}

	return tasks, false, nil
}

// Create implements TaskService.Create
func (s *taskService) Create(ctx context.Context, payload map[string]any) (*domain.Task, error) {
	patch, err := domain.ParseTaskPatch(payload, false)
	if err != nil {
		return nil, err
	}

	task := domain.NewTask()
	patch.ApplyTo(task)

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.invalidateListCache(ctx)

	s.logger.Debug("task created", slog.Int64("task_id", task.ID))
	return task, nil
}

// Get implements TaskService.Get
func (s *taskService) Get(ctx context.Context, id int64) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return task, nil
}

// Update implements TaskService.Update
func (s *taskService) Update(ctx context.Context, id int64, payload map[string]any) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task for update: %w", err)
	}

	patch, err := domain.ParseTaskPatch(payload, true)
	if err != nil {
		return nil, err
	}

	patch.ApplyTo(task)

	if err := s.tasks.Update(ctx, task); err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	s.invalidateListCache(ctx)

	s.logger.Debug("task updated", slog.Int64("task_id", task.ID))
	return task, nil
}

// Delete implements TaskService.Delete
func (s *taskService) Delete(ctx context.Context, id int64) error {
	if err := s.tasks.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}

	s.invalidateListCache(ctx)

	s.logger.Debug("task deleted", slog.Int64("task_id", id))
	return nil
}

// invalidateListCache unconditionally deletes the fixed list-cache key after
// a store mutation has committed. A cache failure here is non-fatal: the
// mutation succeeded and the cache is self-healing, so the error is logged
// and swallowed.
func (s *taskService) invalidateListCache(ctx context.Context) {
	if s.listCache == nil {
		return
	}

	if err := s.listCache.Invalidate(ctx); err != nil {
		s.logger.Warn("task list cache invalidation failed", slog.Any("error", err))
	}
}
