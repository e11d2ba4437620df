package controller

import (
	"net/http"
	"testing"

	"todo-ai-be/internal/dto"
	"todo-ai-be/internal/pkg/serverutils"
	"todo-ai-be/pkg/llm"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (f *apiFixture) createTask(t *testing.T, userId, title string) *dto.TaskResponse {
	t.Helper()
	res := f.request(t, fiber.MethodPost, "/api/"+userId+"/tasks", fiber.Map{"title": title})
	require.Equal(t, http.StatusOK, res.StatusCode)
	var body serverutils.Response[*dto.TaskResponse]
	decodeBody(t, res, &body)
	return body.Data
}

func TestTaskEndpoints_CRUD(t *testing.T) {
	f := newAPIFixture(t, &scriptedProvider{result: &llm.ChatResult{Text: "unused"}})

	task := f.createTask(t, "alice", "buy milk")
	assert.NotZero(t, task.Id)
	assert.Equal(t, "alice", task.UserId)
	assert.False(t, task.Completed)

	t.Run("missing title is rejected", func(t *testing.T) {
		res := f.request(t, fiber.MethodPost, "/api/alice/tasks", fiber.Map{"description": "no title"})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})

	t.Run("list filters by status", func(t *testing.T) {
		done := f.createTask(t, "alice", "already done")
		res := f.request(t, fiber.MethodPatch, "/api/alice/tasks/"+itoa(done.Id)+"/complete", nil)
		require.Equal(t, http.StatusOK, res.StatusCode)

		res = f.request(t, fiber.MethodGet, "/api/alice/tasks?status=pending", nil)
		require.Equal(t, http.StatusOK, res.StatusCode)
		var body serverutils.Response[[]*dto.TaskResponse]
		decodeBody(t, res, &body)
		require.Len(t, body.Data, 1)
		assert.Equal(t, "buy milk", body.Data[0].Title)

		res = f.request(t, fiber.MethodGet, "/api/alice/tasks?status=completed", nil)
		require.Equal(t, http.StatusOK, res.StatusCode)
		decodeBody(t, res, &body)
		require.Len(t, body.Data, 1)
		assert.Equal(t, "already done", body.Data[0].Title)
	})

	t.Run("update renames the task", func(t *testing.T) {
		res := f.request(t, fiber.MethodPut, "/api/alice/tasks/"+itoa(task.Id), fiber.Map{"title": "buy oat milk"})
		require.Equal(t, http.StatusOK, res.StatusCode)
		var body serverutils.Response[*dto.TaskResponse]
		decodeBody(t, res, &body)
		assert.Equal(t, "buy oat milk", body.Data.Title)
	})

	t.Run("delete removes the task", func(t *testing.T) {
		res := f.request(t, fiber.MethodDelete, "/api/alice/tasks/"+itoa(task.Id), nil)
		require.Equal(t, http.StatusOK, res.StatusCode)

		res = f.request(t, fiber.MethodDelete, "/api/alice/tasks/"+itoa(task.Id), nil)
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
	})

	t.Run("bad id params are rejected", func(t *testing.T) {
		for _, path := range []string{
			"/api/alice/tasks/abc",
			"/api/alice/tasks/0",
		} {
			res := f.request(t, fiber.MethodDelete, path, nil)
			assert.Equal(t, http.StatusBadRequest, res.StatusCode, path)
		}
	})

	t.Run("other users cannot touch the task", func(t *testing.T) {
		victim := f.createTask(t, "alice", "private")
		res := f.request(t, fiber.MethodPatch, "/api/bob/tasks/"+itoa(victim.Id)+"/complete", nil)
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
	})
}

func TestTaskEndpoints_WithAuth(t *testing.T) {
	f := newAPIFixture(t, &scriptedProvider{result: &llm.ChatResult{Text: "unused"}},
		serverutils.JwtMiddleware, serverutils.RequireUserMatch)

	token, err := serverutils.CreateAccessToken("alice")
	require.NoError(t, err)

	t.Run("no token", func(t *testing.T) {
		res := f.request(t, fiber.MethodGet, "/api/alice/tasks", nil)
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	})

	t.Run("garbage token", func(t *testing.T) {
		res := f.request(t, fiber.MethodGet, "/api/alice/tasks", nil,
			"Authorization", "Bearer not.a.token")
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	})

	t.Run("token for another user", func(t *testing.T) {
		res := f.request(t, fiber.MethodGet, "/api/bob/tasks", nil,
			"Authorization", "Bearer "+token)
		assert.Equal(t, http.StatusForbidden, res.StatusCode)
	})

	t.Run("matching token", func(t *testing.T) {
		res := f.request(t, fiber.MethodGet, "/api/alice/tasks", nil,
			"Authorization", "Bearer "+token)
		assert.Equal(t, http.StatusOK, res.StatusCode)
	})
}
