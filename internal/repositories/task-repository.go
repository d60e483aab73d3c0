package repositories

import (
	"context"

	"github.com/sAlyon228/youz-api/internal/dto"
	"github.com/sAlyon228/youz-api/internal/entities"
	"github.com/sAlyon228/youz-api/internal/store"
	"github.com/sAlyon228/youz-api/pkg/constants"
	apperrors "github.com/sAlyon228/youz-api/pkg/errors"
	"github.com/sAlyon228/youz-api/pkg/utils"
)

type TaskRepositoryInterface interface {
	GetTasks(ctx context.Context) ([]entities.Task, error)
	FindTask(ctx context.Context, id int64) (*entities.Task, error)
	CreateTask(ctx context.Context, task entities.Task) (int64, error)
	UpdateTask(ctx context.Context, id int64, payload dto.UpdateTaskDTO) (int64, error)
	DeleteTask(ctx context.Context, id int64) (int64, error)
	GetTasksByUser(ctx context.Context, userID int64) ([]entities.Task, error)
	GetTasksByPoint(ctx context.Context, pointID int64) ([]entities.Task, error)
}

type TaskRepository struct {
	storage *store.Store
}

func NewTaskRepository(storage *store.Store) TaskRepositoryInterface {
	return &TaskRepository{
		storage: storage,
	}
}

func taskFromRow(r store.Row) *entities.Task {
	return &entities.Task{
		ID:               rowInt64(r, "id"),
		Title:            rowString(r, "title"),
		Description:      rowStringPtr(r, "description"),
		OrderNumber:      rowStringPtr(r, "orderNumber"),
		AssignedToUserID: rowInt64Ptr(r, "assignedToUserId"),
		AssignedToRole:   rowStringPtr(r, "assignedToRole"),
		PointID:          rowInt64Ptr(r, "pointId"),
		CreatedByUserID:  rowInt64(r, "createdByUserId"),
		Status:           rowString(r, "status"),
		TemplateID:       rowInt64Ptr(r, "templateId"),
		DueDate:          rowInt64Ptr(r, "dueDate"),
		CompletedAt:      rowInt64Ptr(r, "completedAt"),
		CreatedAt:        rowInt64(r, "createdAt"),
	}
}

func (r *TaskRepository) GetTasks(ctx context.Context) ([]entities.Task, error) {
	rows := r.storage.Select(store.TableTasks, store.Filter{}, store.OrderByIDDesc, store.NoLimit)
	tasks := make([]entities.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, *taskFromRow(row))
	}
	return tasks, nil
}

func (r *TaskRepository) FindTask(ctx context.Context, id int64) (*entities.Task, error) {
	row := r.storage.SelectOne(store.TableTasks, store.ByID(id))
	if row == nil {
		return nil, apperrors.ErrNotFound
	}
	return taskFromRow(row), nil
}

func (r *TaskRepository) CreateTask(ctx context.Context, task entities.Task) (int64, error) {
	id := r.storage.Insert(store.TableTasks,
		[]string{"title", "description", "orderNumber", "assignedToUserId", "assignedToRole", "pointId", "createdByUserId", "status", "templateId", "dueDate"},
		[]any{task.Title, optString(task.Description), optString(task.OrderNumber), optInt64(task.AssignedToUserID), optString(task.AssignedToRole), optInt64(task.PointID), task.CreatedByUserID, task.Status, optInt64(task.TemplateID), optInt64(task.DueDate)},
	)
	return id, nil
}

// UpdateTask — частичное обновление. Переход статуса в COMPLETED проставляет
// completedAt тем же вызовом: читатель не увидит одно изменение без другого.
func (r *TaskRepository) UpdateTask(ctx context.Context, id int64, payload dto.UpdateTaskDTO) (int64, error) {
	fields := []string{}
	values := []any{}

	if payload.Title != nil {
		fields, values = append(fields, "title"), append(values, *payload.Title)
	}
	if payload.Description != nil {
		fields, values = append(fields, "description"), append(values, *payload.Description)
	}
	if payload.OrderNumber != nil {
		fields, values = append(fields, "orderNumber"), append(values, *payload.OrderNumber)
	}
	if payload.AssignedToUserID != nil {
		fields, values = append(fields, "assignedToUserId"), append(values, *payload.AssignedToUserID)
	}
	if payload.AssignedToRole != nil {
		fields, values = append(fields, "assignedToRole"), append(values, *payload.AssignedToRole)
	}
	if payload.PointID != nil {
		fields, values = append(fields, "pointId"), append(values, *payload.PointID)
	}
	if payload.Status != nil {
		fields, values = append(fields, "status"), append(values, *payload.Status)
		if *payload.Status == constants.TaskStatusCompleted {
			fields, values = append(fields, "completedAt"), append(values, utils.NowMillis())
		}
	}
	if payload.DueDate != nil {
		fields, values = append(fields, "dueDate"), append(values, *payload.DueDate)
	}

	if len(fields) == 0 {
		return 0, nil
	}
	return r.storage.Update(store.TableTasks, fields, values, id), nil
}

func (r *TaskRepository) DeleteTask(ctx context.Context, id int64) (int64, error) {
	return r.storage.Delete(store.TableTasks, id), nil
}

func (r *TaskRepository) GetTasksByUser(ctx context.Context, userID int64) ([]entities.Task, error) {
	rows := r.storage.Select(store.TableTasks, store.ByField("assignedToUserId", userID), store.OrderByIDDesc, store.NoLimit)
	tasks := make([]entities.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, *taskFromRow(row))
	}
	return tasks, nil
}

func (r *TaskRepository) GetTasksByPoint(ctx context.Context, pointID int64) ([]entities.Task, error) {
	rows := r.storage.Select(store.TableTasks, store.ByField("pointId", pointID), store.OrderByIDDesc, store.NoLimit)
	tasks := make([]entities.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, *taskFromRow(row))
	}
	return tasks, nil
}
