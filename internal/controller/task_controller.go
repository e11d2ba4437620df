package controller

import (
	"strconv"

	"todo-ai-be/internal/dto"
	"todo-ai-be/internal/pkg/apperror"
	"todo-ai-be/internal/pkg/serverutils"
	"todo-ai-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ITaskController interface {
	RegisterRoutes(r fiber.Router, middleware ...fiber.Handler)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Complete(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type taskController struct {
	taskService service.ITaskService
}

func NewTaskController(taskService service.ITaskService) ITaskController {
	return &taskController{
		taskService: taskService,
	}
}

func (c *taskController) RegisterRoutes(r fiber.Router, middleware ...fiber.Handler) {
	h := r.Group("/:userId/tasks")
	for _, m := range middleware {
		h.Use(m)
	}
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Patch(":id/complete", c.Complete)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *taskController) Create(ctx *fiber.Ctx) error {
	userId := ctx.Params("userId")

	var req dto.CreateTaskRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.NewValidation("invalid request payload")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.taskService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success create task", res))
}

func (c *taskController) List(ctx *fiber.Ctx) error {
	userId := ctx.Params("userId")
	status := ctx.Query("status", "all")

	res, err := c.taskService.List(ctx.Context(), userId, status)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list tasks", res))
}

func (c *taskController) Complete(ctx *fiber.Ctx) error {
	userId := ctx.Params("userId")
	id, err := taskIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.taskService.Complete(ctx.Context(), userId, id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success complete task", res))
}

func (c *taskController) Update(ctx *fiber.Ctx) error {
	userId := ctx.Params("userId")
	id, err := taskIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateTaskRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.NewValidation("invalid request payload")
	}
	req.Id = id

	res, err := c.taskService.Update(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update task", res))
}

func (c *taskController) Delete(ctx *fiber.Ctx) error {
	userId := ctx.Params("userId")
	id, err := taskIdParam(ctx)
	if err != nil {
		return err
	}

	if _, err := c.taskService.Delete(ctx.Context(), userId, id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete task", nil))
}

func taskIdParam(ctx *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(ctx.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, apperror.NewValidation("task id must be a positive integer")
	}
	return uint(id), nil
}
