package agent

import "todo-ai-be/pkg/llm"

// Toolset returns the static tool contract handed to the model. Parameter
// names match the executor's argument names exactly; arguments flow through
// without renaming.
func Toolset() []llm.Tool {
	userIdProp := llm.Property{
		Type:        "string",
		Description: "The user's ID",
	}

	return []llm.Tool{
		{
			Name:        "add_task",
			Description: "Add a new task for the user",
			Parameters: llm.Schema{
				Type: "object",
				Properties: map[string]llm.Property{
					"user_id": userIdProp,
					"title": {
						Type:        "string",
						Description: "The task title",
					},
					"description": {
						Type:        "string",
						Description: "Optional task description",
					},
				},
				Required: []string{"user_id", "title"},
			},
		},
		{
			Name:        "list_tasks",
			Description: "List tasks for the user with optional status filtering",
			Parameters: llm.Schema{
				Type: "object",
				Properties: map[string]llm.Property{
					"user_id": userIdProp,
					"status": {
						Type:        "string",
						Description: "Filter by status: 'all', 'completed', or 'pending'",
						Enum:        []string{"all", "completed", "pending"},
					},
				},
				Required: []string{"user_id"},
			},
		},
		{
			Name:        "complete_task",
			Description: "Mark a task as completed",
			Parameters: llm.Schema{
				Type: "object",
				Properties: map[string]llm.Property{
					"user_id": userIdProp,
					"task_id": {
						Type:        "integer",
						Description: "The ID of the task to complete",
					},
				},
				Required: []string{"user_id", "task_id"},
			},
		},
		{
			Name:        "delete_task",
			Description: "Delete a task",
			Parameters: llm.Schema{
				Type: "object",
				Properties: map[string]llm.Property{
					"user_id": userIdProp,
					"task_id": {
						Type:        "integer",
						Description: "The ID of the task to delete",
					},
				},
				Required: []string{"user_id", "task_id"},
			},
		},
		{
			Name:        "update_task",
			Description: "Update a task",
			Parameters: llm.Schema{
				Type: "object",
				Properties: map[string]llm.Property{
					"user_id": userIdProp,
					"task_id": {
						Type:        "integer",
						Description: "The ID of the task to update",
					},
					"title": {
						Type:        "string",
						Description: "New title for the task (optional)",
					},
					"description": {
						Type:        "string",
						Description: "New description for the task (optional)",
					},
				},
				Required: []string{"user_id", "task_id"},
			},
		},
	}
}
