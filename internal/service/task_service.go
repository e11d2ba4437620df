package service

import (
	"context"
	"strings"

	"todo-ai-be/internal/dto"
	"todo-ai-be/internal/entity"
	"todo-ai-be/internal/pkg/apperror"
	"todo-ai-be/internal/repository/specification"
	"todo-ai-be/internal/repository/unitofwork"
)

type ITaskService interface {
	Create(ctx context.Context, userId string, req *dto.CreateTaskRequest) (*dto.TaskResponse, error)
	List(ctx context.Context, userId string, status string) ([]*dto.TaskResponse, error)
	GetById(ctx context.Context, userId string, id uint) (*dto.TaskResponse, error)
	Update(ctx context.Context, userId string, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error)
	Complete(ctx context.Context, userId string, id uint) (*dto.TaskResponse, error)
	Delete(ctx context.Context, userId string, id uint) (*dto.TaskResponse, error)
}

type taskService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewTaskService(uowFactory unitofwork.RepositoryFactory) ITaskService {
	return &taskService{
		uowFactory: uowFactory,
	}
}

func taskToResponse(task *entity.Task) *dto.TaskResponse {
	return &dto.TaskResponse{
		Id:          task.Id,
		UserId:      task.UserId,
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

func (s *taskService) Create(ctx context.Context, userId string, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, apperror.NewValidation("Task title cannot be empty")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	task := entity.Task{
		UserId:      userId,
		Title:       title,
		Description: req.Description,
		Completed:   false,
	}
	if err := uow.TaskRepository().Create(ctx, &task); err != nil {
		return nil, err
	}
	return taskToResponse(&task), nil
}

func (s *taskService) List(ctx context.Context, userId string, status string) ([]*dto.TaskResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	tasks, err := uow.TaskRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.CompletionStatus{Status: status},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.TaskResponse, len(tasks))
	for i, task := range tasks {
		responses[i] = taskToResponse(task)
	}
	return responses, nil
}

func (s *taskService) GetById(ctx context.Context, userId string, id uint) (*dto.TaskResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	task, err := uow.TaskRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, nil // Not found is not an error for lookups
	}
	return taskToResponse(task), nil
}

func (s *taskService) Update(ctx context.Context, userId string, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	task, err := uow.TaskRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, apperror.NewNotFound("Task", req.Id, userId)
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, apperror.NewValidation("Task title cannot be empty")
		}
		task.Title = title
	}
	if req.Description != nil {
		task.Description = req.Description
	}

	if err := uow.TaskRepository().Update(ctx, task); err != nil {
		return nil, err
	}
	return taskToResponse(task), nil
}

func (s *taskService) Complete(ctx context.Context, userId string, id uint) (*dto.TaskResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	task, err := uow.TaskRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, apperror.NewNotFound("Task", id, userId)
	}

	task.Completed = true
	if err := uow.TaskRepository().Update(ctx, task); err != nil {
		return nil, err
	}
	return taskToResponse(task), nil
}

func (s *taskService) Delete(ctx context.Context, userId string, id uint) (*dto.TaskResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	task, err := uow.TaskRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, apperror.NewNotFound("Task", id, userId)
	}

	if err := uow.TaskRepository().Delete(ctx, id); err != nil {
		return nil, err
	}
	return taskToResponse(task), nil
}
