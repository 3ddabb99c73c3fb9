package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	apperrors "task-manager-api.com/task-manager-api/internal/errors"
	model "task-manager-api.com/task-manager-api/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) CreateTask(ctx context.Context, title, description string) (*model.Task, error) {
	task := &model.Task{
		Title:       title,
		Description: description,
	}

	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	return task, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id uint) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("find task %d: %w", id, err)
	}
	return &task, nil
}

// Search returns one window of the tasks matching term, in insertion order,
// together with the total number of matches.
func (r *TaskRepository) Search(ctx context.Context, term string, offset, limit int) ([]model.Task, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Scopes(matching(term)).
		Count(&total).Error
	if err != nil {
		return nil, 0, fmt.Errorf("count tasks: %w", err)
	}

	tasks := []model.Task{}
	if total == 0 {
		return tasks, 0, nil
	}

	err = r.db.WithContext(ctx).
		Scopes(matching(term)).
		Order("id asc").
		Offset(offset).
		Limit(limit).
		Find(&tasks).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list tasks: %w", err)
	}

	return tasks, total, nil
}

func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	res := r.db.WithContext(ctx).Model(task).
		Updates(map[string]interface{}{
			"title":       task.Title,
			"description": task.Description,
		})

	if res.Error != nil {
		return fmt.Errorf("update task %d: %w", task.ID, res.Error)
	}

	if res.RowsAffected == 0 {
		return apperrors.ErrTaskNotFound
	}

	return nil
}

// Delete reports whether a row was actually removed.
func (r *TaskRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.Task{}, id)
	if res.Error != nil {
		return false, fmt.Errorf("delete task %d: %w", id, res.Error)
	}
	return res.RowsAffected > 0, nil
}

func matching(term string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if term == "" {
			return db
		}
		pattern := "%" + EscapeLike(term) + "%"
		return db.Where(`title LIKE ? ESCAPE '\' OR description LIKE ? ESCAPE '\'`, pattern, pattern)
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike makes LIKE wildcards in s match literally.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}
