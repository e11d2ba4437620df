package agent

import (
	"fmt"
	"strings"
)

// DefaultAcknowledgement is used when the model returned neither tool calls
// nor text.
const DefaultAcknowledgement = "I've processed your request. Is there anything else I can help you with?"

// Narrate builds the assistant reply from tool results with fixed templates,
// one sentence per call in execution order. Tool outputs are never sent back
// to the model for a second pass; that would double the provider round-trip
// per turn.
func Narrate(toolCalls []ToolCall) string {
	if len(toolCalls) == 0 {
		return DefaultAcknowledgement
	}

	sentences := make([]string, 0, len(toolCalls))
	for _, call := range toolCalls {
		switch KindOf(call.Name) {
		case ToolAddTask:
			if resultStatus(call) == "created" {
				title := asString(call.Arguments["title"])
				if title == "" {
					title = "unknown task"
				}
				sentences = append(sentences, fmt.Sprintf("I've added the task '%s' for you!", title))
			} else {
				sentences = append(sentences, fmt.Sprintf("I couldn't add that task. %s", resultMessage(call)))
			}

		case ToolListTasks:
			titles := taskTitles(call)
			switch {
			case len(titles) == 1:
				sentences = append(sentences, fmt.Sprintf("Here is your task: %s", titles[0]))
			case len(titles) > 1:
				sentences = append(sentences, fmt.Sprintf("Here are your tasks: %s", strings.Join(titles, ", ")))
			default:
				sentences = append(sentences, "You don't have any tasks at the moment.")
			}

		case ToolCompleteTask:
			if resultStatus(call) == "completed" {
				sentences = append(sentences, "I've marked that task as completed!")
			} else {
				sentences = append(sentences, fmt.Sprintf("I couldn't complete that task. %s", resultMessage(call)))
			}

		case ToolDeleteTask:
			if resultStatus(call) == "deleted" {
				sentences = append(sentences, "I've deleted that task for you.")
			} else {
				sentences = append(sentences, fmt.Sprintf("I couldn't delete that task. %s", resultMessage(call)))
			}

		case ToolUpdateTask:
			if resultStatus(call) == "updated" {
				sentences = append(sentences, "I've updated that task for you.")
			} else {
				sentences = append(sentences, fmt.Sprintf("I couldn't update that task. %s", resultMessage(call)))
			}

		default:
			sentences = append(sentences, "I've processed your request.")
		}
	}

	return strings.Join(sentences, " ")
}

func resultStatus(call ToolCall) string {
	if status, ok := call.Result["status"].(string); ok {
		return status
	}
	return "unknown"
}

func resultMessage(call ToolCall) string {
	if message, ok := call.Result["message"].(string); ok && message != "" {
		return message
	}
	return "Unknown error"
}

func taskTitles(call ToolCall) []string {
	tasks, ok := call.Result["tasks"].([]map[string]interface{})
	if !ok {
		return nil
	}
	titles := make([]string, 0, len(tasks))
	for _, task := range tasks {
		title, ok := task["title"].(string)
		if !ok || title == "" {
			title = "unknown"
		}
		titles = append(titles, title)
	}
	return titles
}
