package agent

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"todo-ai-be/internal/dto"
	"todo-ai-be/internal/pkg/apperror"
)

// TaskService is the slice of the task service the tools need.
type TaskService interface {
	Create(ctx context.Context, userId string, req *dto.CreateTaskRequest) (*dto.TaskResponse, error)
	List(ctx context.Context, userId string, status string) ([]*dto.TaskResponse, error)
	GetById(ctx context.Context, userId string, id uint) (*dto.TaskResponse, error)
	Update(ctx context.Context, userId string, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error)
	Complete(ctx context.Context, userId string, id uint) (*dto.TaskResponse, error)
	Delete(ctx context.Context, userId string, id uint) (*dto.TaskResponse, error)
}

// Executor dispatches tool calls to the task service. Failures become
// structured error results; they never abort the turn or sibling calls.
type Executor struct {
	taskService TaskService
}

func NewExecutor(taskService TaskService) *Executor {
	return &Executor{
		taskService: taskService,
	}
}

func (e *Executor) Execute(ctx context.Context, name string, args map[string]interface{}) map[string]interface{} {
	switch KindOf(name) {
	case ToolAddTask:
		return e.addTask(ctx, args)
	case ToolListTasks:
		return e.listTasks(ctx, args)
	case ToolCompleteTask:
		return e.completeTask(ctx, args)
	case ToolDeleteTask:
		return e.deleteTask(ctx, args)
	case ToolUpdateTask:
		return e.updateTask(ctx, args)
	default:
		return errorResult(fmt.Errorf("Unknown tool: %s", name))
	}
}

func (e *Executor) addTask(ctx context.Context, args map[string]interface{}) map[string]interface{} {
	req := &dto.CreateTaskRequest{
		Title: stringArg(args, "title"),
	}
	if description := stringArg(args, "description"); description != "" {
		req.Description = &description
	}

	task, err := e.taskService.Create(ctx, stringArg(args, "user_id"), req)
	if err != nil {
		return errorResult(err)
	}
	return map[string]interface{}{
		"task_id": task.Id,
		"status":  "created",
		"title":   task.Title,
	}
}

func (e *Executor) listTasks(ctx context.Context, args map[string]interface{}) map[string]interface{} {
	status := stringArg(args, "status")
	if status == "" {
		status = "all"
	}

	tasks, err := e.taskService.List(ctx, stringArg(args, "user_id"), status)
	if err != nil {
		return errorResult(err)
	}

	taskList := make([]map[string]interface{}, len(tasks))
	for i, task := range tasks {
		var description string
		if task.Description != nil {
			description = *task.Description
		}
		taskList[i] = map[string]interface{}{
			"id":          task.Id,
			"user_id":     task.UserId,
			"title":       task.Title,
			"description": description,
			"completed":   task.Completed,
			"created_at":  task.CreatedAt.Format(time.RFC3339),
			"updated_at":  task.UpdatedAt.Format(time.RFC3339),
		}
	}
	return map[string]interface{}{
		"tasks": taskList,
	}
}

func (e *Executor) completeTask(ctx context.Context, args map[string]interface{}) map[string]interface{} {
	taskId, ok := uintArg(args, "task_id")
	if !ok {
		return errorResult(apperror.NewValidation("task_id must be a positive integer"))
	}

	task, err := e.taskService.Complete(ctx, stringArg(args, "user_id"), taskId)
	if err != nil {
		return errorResult(err)
	}
	return map[string]interface{}{
		"status":  "completed",
		"task_id": task.Id,
		"title":   task.Title,
	}
}

func (e *Executor) deleteTask(ctx context.Context, args map[string]interface{}) map[string]interface{} {
	taskId, ok := uintArg(args, "task_id")
	if !ok {
		return errorResult(apperror.NewValidation("task_id must be a positive integer"))
	}

	task, err := e.taskService.Delete(ctx, stringArg(args, "user_id"), taskId)
	if err != nil {
		return errorResult(err)
	}
	return map[string]interface{}{
		"status":  "deleted",
		"task_id": task.Id,
		"title":   task.Title,
	}
}

func (e *Executor) updateTask(ctx context.Context, args map[string]interface{}) map[string]interface{} {
	taskId, ok := uintArg(args, "task_id")
	if !ok {
		return errorResult(apperror.NewValidation("task_id must be a positive integer"))
	}

	req := &dto.UpdateTaskRequest{Id: taskId}
	if title, found := args["title"]; found {
		s := asString(title)
		req.Title = &s
	}
	if description, found := args["description"]; found {
		s := asString(description)
		req.Description = &s
	}

	task, err := e.taskService.Update(ctx, stringArg(args, "user_id"), req)
	if err != nil {
		return errorResult(err)
	}
	return map[string]interface{}{
		"status":  "updated",
		"task_id": task.Id,
		"title":   task.Title,
	}
}

func errorResult(err error) map[string]interface{} {
	return map[string]interface{}{
		"status":  "error",
		"message": err.Error(),
	}
}

// Argument helpers. Model-emitted args are untyped JSON and may be garbled;
// coerce what we can and reject the rest at the tool level.

func stringArg(args map[string]interface{}, key string) string {
	value, found := args[key]
	if !found || value == nil {
		return ""
	}
	return asString(value)
}

func asString(value interface{}) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", value)
}

func uintArg(args map[string]interface{}, key string) (uint, bool) {
	value, found := args[key]
	if !found || value == nil {
		return 0, false
	}
	switch v := value.(type) {
	case float64:
		if v > 0 && v == float64(uint(v)) {
			return uint(v), true
		}
	case int:
		if v > 0 {
			return uint(v), true
		}
	case int64:
		if v > 0 {
			return uint(v), true
		}
	case string:
		if parsed, err := strconv.ParseUint(v, 10, 64); err == nil && parsed > 0 {
			return uint(parsed), true
		}
	}
	return 0, false
}
