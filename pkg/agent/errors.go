package agent

import "strings"

// Canned apology strings for provider failures. The raw provider error is
// logged server-side only; callers get exactly one of these.
const (
	ErrMsgQuota         = "I'm currently experiencing high demand and need a moment to process your request. This is a temporary issue with the AI service. Please try again in a few minutes."
	ErrMsgRateLimit     = "I'm currently experiencing high demand and need a moment to process your request. Please wait a few seconds and try again."
	ErrMsgAuth          = "There seems to be an issue with my connection to the AI service. Please contact the administrator to check the API configuration."
	ErrMsgMalformedCall = "I had trouble processing your request. Could you please rephrase it? For example, instead of 'add task buy milk', you could say 'I want to add a task to buy milk'."
	ErrMsgModelNotFound = "I'm having trouble connecting to the AI service. Please contact the administrator to check if the correct model is configured."
	ErrMsgGeneric       = "I encountered an error processing your request. Please try again."
)

// ClassifyProviderError maps a provider failure onto one of the fixed
// user-facing strings. Order matters: quota before rate limit, both before
// the auth match ("invalid" appears in many provider messages).
func ClassifyProviderError(err error) string {
	if err == nil {
		return ErrMsgGeneric
	}
	message := err.Error()
	lower := strings.ToLower(message)

	switch {
	case strings.Contains(lower, "quota") || strings.Contains(lower, "exceeded") || strings.Contains(message, "429"):
		return ErrMsgQuota
	case strings.Contains(lower, "rate_limit") || strings.Contains(message, "Too Many Requests"):
		return ErrMsgRateLimit
	case strings.Contains(lower, "invalid") || strings.Contains(lower, "auth") || strings.Contains(lower, "api_key") || strings.Contains(lower, "api key"):
		return ErrMsgAuth
	case strings.Contains(lower, "function_call") || strings.Contains(lower, "malformed"):
		return ErrMsgMalformedCall
	case strings.Contains(message, "models/") && strings.Contains(message, "is not found"):
		return ErrMsgModelNotFound
	default:
		return ErrMsgGeneric
	}
}
