package services

import (
	"context"
	"log/slog"

	model "task-manager-api.com/task-manager-api/internal/models"
	"task-manager-api.com/task-manager-api/internal/pagination"
	repository "task-manager-api.com/task-manager-api/internal/repositories"
)

// TaskQuery is a parsed listing request. Search is matched literally against
// title and description; an empty Search lists everything.
type TaskQuery struct {
	Search string
	Params pagination.Params
	URLs   pagination.URLBuilder
}

type TaskService struct {
	repo *repository.TaskRepository
}

func NewTaskService(repo *repository.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

func (s *TaskService) ListTasks(ctx context.Context, q TaskQuery) (pagination.Page[model.Task], error) {
	tasks, total, err := s.repo.Search(ctx, q.Search, q.Params.Offset(), q.Params.Limit())
	if err != nil {
		return pagination.Page[model.Task]{}, err
	}

	return pagination.New(tasks, total, q.Params, q.URLs), nil
}

func (s *TaskService) CreateTask(ctx context.Context, title, description string) (*model.Task, error) {
	return s.repo.CreateTask(ctx, title, description)
}

func (s *TaskService) GetTask(ctx context.Context, id uint) (*model.Task, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *TaskService) UpdateTask(ctx context.Context, id uint, title, description string) (*model.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	task.Title = title
	task.Description = description
	if err := s.repo.Update(ctx, task); err != nil {
		return nil, err
	}

	return s.repo.FindByID(ctx, id)
}

// DeleteTask fails only when the task does not exist at lookup time; a row
// that disappears between lookup and delete still counts as deleted.
func (s *TaskService) DeleteTask(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		slog.DebugContext(ctx, "task vanished before delete", "task_id", id)
	}

	return nil
}
