package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "task-manager-api.com/task-manager-api/internal/errors"
	model "task-manager-api.com/task-manager-api/internal/models"
	"task-manager-api.com/task-manager-api/internal/testdb"
)

func titles(tasks []model.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, task.Title)
	}
	return out
}

func TestTaskRepository_CreateAndFind(t *testing.T) {
	repo := NewTaskRepository(testdb.New(t))
	ctx := context.Background()

	task, err := repo.CreateTask(ctx, "Write report", "Quarterly numbers")
	require.NoError(t, err)
	assert.NotZero(t, task.ID)
	assert.False(t, task.CreatedAt.IsZero())

	found, err := repo.FindByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Write report", found.Title)
	assert.Equal(t, "Quarterly numbers", found.Description)

	_, err = repo.FindByID(ctx, task.ID+100)
	assert.ErrorIs(t, err, apperrors.ErrTaskNotFound)
}

func TestTaskRepository_IDsIncrease(t *testing.T) {
	repo := NewTaskRepository(testdb.New(t))
	ctx := context.Background()

	first, err := repo.CreateTask(ctx, "a", "a")
	require.NoError(t, err)
	second, err := repo.CreateTask(ctx, "b", "b")
	require.NoError(t, err)

	assert.Greater(t, second.ID, first.ID)
}

func TestTaskRepository_SearchMatchesTitleOrDescription(t *testing.T) {
	repo := NewTaskRepository(testdb.New(t))
	ctx := context.Background()

	for _, pair := range [][2]string{
		{"Test Task 1", "First task description"},
		{"Another Task", "Mentions Test in the body"},
		{"Unrelated", "Nothing here"},
	} {
		_, err := repo.CreateTask(ctx, pair[0], pair[1])
		require.NoError(t, err)
	}

	tasks, total, err := repo.Search(ctx, "Test", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, []string{"Test Task 1", "Another Task"}, titles(tasks))
}

func TestTaskRepository_SearchIsCaseSensitive(t *testing.T) {
	repo := NewTaskRepository(testdb.New(t))
	ctx := context.Background()

	_, err := repo.CreateTask(ctx, "Test upper", "x")
	require.NoError(t, err)
	_, err = repo.CreateTask(ctx, "test lower", "x")
	require.NoError(t, err)

	tasks, total, err := repo.Search(ctx, "Test", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, []string{"Test upper"}, titles(tasks))
}

func TestTaskRepository_SearchTreatsWildcardsLiterally(t *testing.T) {
	repo := NewTaskRepository(testdb.New(t))
	ctx := context.Background()

	_, err := repo.CreateTask(ctx, "100% done", "finished")
	require.NoError(t, err)
	_, err = repo.CreateTask(ctx, "snake_case", "naming")
	require.NoError(t, err)
	_, err = repo.CreateTask(ctx, "plain", `back\slash`)
	require.NoError(t, err)

	tests := []struct {
		term string
		want []string
	}{
		{"%", []string{"100% done"}},
		{"_", []string{"snake_case"}},
		{`\`, []string{"plain"}},
		{"e_c", []string{"snake_case"}},
		{"0%", []string{"100% done"}},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			tasks, total, err := repo.Search(ctx, tt.term, 0, 10)
			require.NoError(t, err)
			assert.Equal(t, int64(len(tt.want)), total)
			assert.Equal(t, tt.want, titles(tasks))
		})
	}
}

func TestTaskRepository_SearchPagesInInsertionOrder(t *testing.T) {
	repo := NewTaskRepository(testdb.New(t))
	ctx := context.Background()

	for i := 1; i <= 12; i++ {
		_, err := repo.CreateTask(ctx, fmt.Sprintf("Task %02d", i), "body")
		require.NoError(t, err)
	}

	tasks, total, err := repo.Search(ctx, "", 5, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(12), total)
	assert.Equal(t, []string{"Task 06", "Task 07", "Task 08", "Task 09", "Task 10"}, titles(tasks))

	tasks, _, err = repo.Search(ctx, "", 10, 5)
	require.NoError(t, err)
	assert.Len(t, tasks, 2)

	tasks, total, err = repo.Search(ctx, "missing", 0, 5)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

func TestTaskRepository_UpdateAdvancesUpdatedAt(t *testing.T) {
	clock := testdb.NewClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	repo := NewTaskRepository(testdb.NewWithClock(t, clock.Now))
	ctx := context.Background()

	task, err := repo.CreateTask(ctx, "Old", "old body")
	require.NoError(t, err)

	clock.Advance(time.Minute)
	task.Title = "New"
	task.Description = "new body"
	require.NoError(t, repo.Update(ctx, task))

	found, err := repo.FindByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "New", found.Title)
	assert.Equal(t, "new body", found.Description)
	assert.True(t, found.UpdatedAt.After(found.CreatedAt))
}

func TestTaskRepository_UpdateMissing(t *testing.T) {
	repo := NewTaskRepository(testdb.New(t))

	err := repo.Update(context.Background(), &model.Task{ID: 99, Title: "x", Description: "y"})
	assert.ErrorIs(t, err, apperrors.ErrTaskNotFound)
}

func TestTaskRepository_Delete(t *testing.T) {
	repo := NewTaskRepository(testdb.New(t))
	ctx := context.Background()

	task, err := repo.CreateTask(ctx, "Doomed", "soon gone")
	require.NoError(t, err)

	deleted, err := repo.Delete(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, task.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = repo.FindByID(ctx, task.ID)
	assert.ErrorIs(t, err, apperrors.ErrTaskNotFound)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\%`, EscapeLike("50%"))
	assert.Equal(t, `a\_b`, EscapeLike("a_b"))
	assert.Equal(t, `c:\\dir`, EscapeLike(`c:\dir`))
	assert.Equal(t, "plain", EscapeLike("plain"))
}

func TestUserRepository(t *testing.T) {
	repo := NewUserRepository(testdb.New(t))
	ctx := context.Background()

	user := &model.User{Name: "Ada", Email: "ada@example.com", Password: "hash"}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotZero(t, user.ID)

	exists, err := repo.EmailExists(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	err = repo.Create(ctx, &model.User{Name: "Other", Email: "ada@example.com", Password: "hash"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	found, err := repo.FindByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	found, err = repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", found.Name)

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
