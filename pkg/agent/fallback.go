package agent

import "strings"

// Canned replies for the degraded mode: no provider is configured, so the
// agent keyword-matches intent and points the user at the manual UI.
const (
	fallbackGreeting = "Hello! I'm your Todo AI assistant. Unfortunately, I'm currently unable to connect to the AI service. You can still manage your tasks manually through the UI."
	fallbackAdd      = "I understand you'd like to add a task. Unfortunately, I'm currently unable to connect to the AI service. You can still add tasks manually through the UI."
	fallbackList     = "I understand you'd like to see your tasks. Unfortunately, I'm currently unable to connect to the AI service. You can still view your tasks manually through the UI."
	fallbackGeneric  = "I'm currently unable to connect to the AI service. Please check the API configuration or try again later. You can still manage your tasks manually through the UI."
)

func fallbackResponse(userInput string) string {
	input := strings.ToLower(userInput)

	if containsAny(input, "hello", "hi", "hey") {
		return fallbackGreeting
	}
	if containsAny(input, "add", "create", "new", "task") {
		return fallbackAdd
	}
	if containsAny(input, "list", "show", "see", "view") {
		return fallbackList
	}
	return fallbackGeneric
}

func containsAny(input string, words ...string) bool {
	for _, word := range words {
		if strings.Contains(input, word) {
			return true
		}
	}
	return false
}
