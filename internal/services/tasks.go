package services

import (
	"context"
	"fmt"
	"strings"

	"mockadmin/internal/collection"
	"mockadmin/internal/common"
	"mockadmin/internal/logging"
	"mockadmin/internal/models"
	"mockadmin/internal/query"
	"mockadmin/internal/storage"
)

// ListTasksParams is the list descriptor for tasks. A nil Done means the
// field is not filtered.
type ListTasksParams struct {
	query.Params
	Done *bool
}

var taskSchema = query.Schema[models.Task]{
	SearchText: func(t models.Task) string { return t.Name },
	SortFields: map[string]func(a, b models.Task) int{
		"name": func(a, b models.Task) int { return query.CompareStrings(a.Name, b.Name) },
		"done": func(a, b models.Task) int { return query.CompareBools(a.Done, b.Done) },
	},
}

// Tasks exposes the CRUD operations of the task collection. Task names carry
// no uniqueness constraint.
type Tasks struct {
	col   *collection.Store[models.Task]
	delay *Latency
	log   logging.Logger
}

// NewTasks binds the task collection to a storage medium.
func NewTasks(st storage.Store, delay *Latency, log logging.Logger) *Tasks {
	return &Tasks{
		col:   collection.NewStore(st, tasksKey, SeedTasks),
		delay: delay,
		log:   log,
	}
}

// List returns one page of the collection after search, filtering, and
// sorting.
func (s *Tasks) List(ctx context.Context, p ListTasksParams) (*query.Result[models.Task], error) {
	s.delay.Wait()

	tasks, err := s.col.Load(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to load tasks", "error", err.Error())
		return nil, err
	}

	var statusFilter func(models.Task) bool
	if p.Done != nil {
		want := *p.Done
		statusFilter = func(t models.Task) bool { return t.Done == want }
	}

	res := query.Run(tasks, p.Params, taskSchema, statusFilter)
	return &res, nil
}

// Create persists a new task with a freshly allocated id; Done defaults to
// false.
func (s *Tasks) Create(ctx context.Context, in models.TaskCreate) (*models.Task, error) {
	s.delay.Wait()

	if err := validateTaskName(in.Name); err != nil {
		return nil, err
	}

	tasks, err := s.col.Load(ctx)
	if err != nil {
		return nil, err
	}

	task := models.Task{
		ID:   nextID(tasks, taskID),
		Name: in.Name,
		Done: false,
	}

	tasks = append(tasks, task)
	if err := s.col.Save(ctx, tasks); err != nil {
		s.log.Error(ctx, "failed to save tasks", "error", err.Error())
		return nil, err
	}

	s.log.Info(ctx, "task created", "id", task.ID)
	return &task, nil
}

// Update applies a patch to an existing record, keeping its id.
func (s *Tasks) Update(ctx context.Context, id int, patch models.TaskPatch) (*models.Task, error) {
	s.delay.Wait()

	if patch.Name != nil {
		if err := validateTaskName(*patch.Name); err != nil {
			return nil, err
		}
	}

	tasks, err := s.col.Load(ctx)
	if err != nil {
		return nil, err
	}

	idx := indexByID(tasks, taskID, id)
	if idx < 0 {
		return nil, fmt.Errorf("task %d: %w", id, common.ErrorNotFound)
	}

	if patch.Name != nil {
		tasks[idx].Name = *patch.Name
	}
	if patch.Done != nil {
		tasks[idx].Done = *patch.Done
	}

	if err := s.col.Save(ctx, tasks); err != nil {
		s.log.Error(ctx, "failed to save tasks", "error", err.Error())
		return nil, err
	}

	s.log.Info(ctx, "task updated", "id", id)

	task := tasks[idx]
	return &task, nil
}

// ToggleStatus flips the record's done flag.
func (s *Tasks) ToggleStatus(ctx context.Context, id int) (*models.Task, error) {
	s.delay.Wait()

	tasks, err := s.col.Load(ctx)
	if err != nil {
		return nil, err
	}

	idx := indexByID(tasks, taskID, id)
	if idx < 0 {
		return nil, fmt.Errorf("task %d: %w", id, common.ErrorNotFound)
	}

	tasks[idx].Done = !tasks[idx].Done

	if err := s.col.Save(ctx, tasks); err != nil {
		s.log.Error(ctx, "failed to save tasks", "error", err.Error())
		return nil, err
	}

	task := tasks[idx]
	return &task, nil
}

// Delete removes the record; its id is permanently retired.
func (s *Tasks) Delete(ctx context.Context, id int) error {
	s.delay.Wait()

	tasks, err := s.col.Load(ctx)
	if err != nil {
		return err
	}

	idx := indexByID(tasks, taskID, id)
	if idx < 0 {
		return fmt.Errorf("task %d: %w", id, common.ErrorNotFound)
	}

	tasks = append(tasks[:idx], tasks[idx+1:]...)
	if err := s.col.Save(ctx, tasks); err != nil {
		s.log.Error(ctx, "failed to save tasks", "error", err.Error())
		return err
	}

	s.log.Info(ctx, "task deleted", "id", id)
	return nil
}

func taskID(t models.Task) int { return t.ID }

func validateTaskName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: task name must not be empty", common.ErrorValidation)
	}
	return nil
}
