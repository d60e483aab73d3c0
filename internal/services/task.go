package services

import (
	"context"

	"github.com/sAlyon228/youz-api/internal/dto"
	"github.com/sAlyon228/youz-api/internal/entities"
	"github.com/sAlyon228/youz-api/internal/repositories"
	"github.com/sAlyon228/youz-api/pkg/constants"
	apperrors "github.com/sAlyon228/youz-api/pkg/errors"
	"github.com/sAlyon228/youz-api/pkg/utils"
	"go.uber.org/zap"
)

type TaskService struct {
	taskRepository repositories.TaskRepositoryInterface
	logger         *zap.Logger
}

func NewTaskService(taskRepository repositories.TaskRepositoryInterface,
	logger *zap.Logger,
) *TaskService {
	return &TaskService{
		taskRepository: taskRepository,
		logger:         logger,
	}
}

func (s *TaskService) GetTasks(ctx context.Context) ([]entities.Task, error) {
	return s.taskRepository.GetTasks(ctx)
}

func (s *TaskService) FindTask(ctx context.Context, id int64) (*entities.Task, error) {
	return s.taskRepository.FindTask(ctx, id)
}

// CreateTask создаёт задачу от имени createdBy. Статус по умолчанию PENDING.
func (s *TaskService) CreateTask(ctx context.Context, payload dto.CreateTaskDTO, createdBy int64) (*entities.Task, error) {
	if payload.Title == "" {
		return nil, apperrors.NewInvalidInputError("укажите название задачи")
	}

	task := entities.Task{
		Title:            payload.Title,
		Description:      payload.Description,
		OrderNumber:      payload.OrderNumber,
		AssignedToUserID: payload.AssignedToUserID,
		AssignedToRole:   payload.AssignedToRole,
		PointID:          payload.PointID,
		CreatedByUserID:  createdBy,
		Status:           utils.SafeDeref(payload.Status),
		TemplateID:       payload.TemplateID,
		DueDate:          payload.DueDate,
	}
	if task.Status == "" {
		task.Status = constants.TaskStatusPending
	}

	id, err := s.taskRepository.CreateTask(ctx, task)
	if err != nil {
		s.logger.Error("Ошибка при создании задачи", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Задача создана", zap.Int64("id", id), zap.String("title", task.Title))
	return s.taskRepository.FindTask(ctx, id)
}

func (s *TaskService) UpdateTask(ctx context.Context, id int64, payload dto.UpdateTaskDTO) (*entities.Task, error) {
	if _, err := s.taskRepository.UpdateTask(ctx, id, payload); err != nil {
		return nil, err
	}
	return s.taskRepository.FindTask(ctx, id)
}

func (s *TaskService) DeleteTask(ctx context.Context, id int64) error {
	_, err := s.taskRepository.DeleteTask(ctx, id)
	return err
}

func (s *TaskService) GetTasksByUser(ctx context.Context, userID int64) ([]entities.Task, error) {
	return s.taskRepository.GetTasksByUser(ctx, userID)
}

func (s *TaskService) GetTasksByPoint(ctx context.Context, pointID int64) ([]entities.Task, error) {
	return s.taskRepository.GetTasksByPoint(ctx, pointID)
}
