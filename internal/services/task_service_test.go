package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sAlyon228/youz-api/internal/dto"
	"github.com/sAlyon228/youz-api/internal/repositories"
	"github.com/sAlyon228/youz-api/internal/store"
	"github.com/sAlyon228/youz-api/pkg/constants"
	apperrors "github.com/sAlyon228/youz-api/pkg/errors"
	"github.com/sAlyon228/youz-api/pkg/utils"
)

func newTestStorage(t *testing.T) *store.Store {
	t.Helper()
	return store.Open(filepath.Join(t.TempDir(), "db.json"), zap.NewNop())
}

func newTaskService(t *testing.T) *TaskService {
	t.Helper()
	return NewTaskService(repositories.NewTaskRepository(newTestStorage(t)), zap.NewNop())
}

// Жизненный цикл задачи: создание без статуса, затем выполнение.
func TestTaskService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	service := newTaskService(t)

	task, err := service.CreateTask(ctx, dto.CreateTaskDTO{
		Title: "Починить стол",
	}, 1)
	require.NoError(t, err)

	assert.Equal(t, constants.TaskStatusPending, task.Status)
	assert.EqualValues(t, 1, task.CreatedByUserID)
	assert.Nil(t, task.CompletedAt)

	completed, err := service.UpdateTask(ctx, task.ID, dto.UpdateTaskDTO{
		Status: utils.ToPtr(constants.TaskStatusCompleted),
	})
	require.NoError(t, err)

	assert.Equal(t, constants.TaskStatusCompleted, completed.Status)
	require.NotNil(t, completed.CompletedAt)
	assert.GreaterOrEqual(t, *completed.CompletedAt, task.CreatedAt)
}

func TestTaskService_CreateRequiresTitle(t *testing.T) {
	service := newTaskService(t)

	_, err := service.CreateTask(context.Background(), dto.CreateTaskDTO{}, 1)

	var invalid *apperrors.InvalidInputError
	assert.ErrorAs(t, err, &invalid)
}

func TestTaskService_CreateKeepsExplicitStatus(t *testing.T) {
	ctx := context.Background()
	service := newTaskService(t)

	task, err := service.CreateTask(ctx, dto.CreateTaskDTO{
		Title:  "Уже сделано",
		Status: utils.ToPtr(constants.TaskStatusCompleted),
	}, 1)
	require.NoError(t, err)
	assert.Equal(t, constants.TaskStatusCompleted, task.Status)
}

func TestTaskService_UpdateMissingTask(t *testing.T) {
	service := newTaskService(t)

	_, err := service.UpdateTask(context.Background(), 42, dto.UpdateTaskDTO{
		Title: utils.ToPtr("Нет такой"),
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
