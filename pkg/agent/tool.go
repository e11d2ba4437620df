package agent

// ToolKind is the closed set of tools the executor can dispatch. Unknown
// names stay representable so a newer schema degrades to a tool-level error
// instead of aborting the turn.
type ToolKind int

const (
	ToolUnknown ToolKind = iota
	ToolAddTask
	ToolListTasks
	ToolCompleteTask
	ToolDeleteTask
	ToolUpdateTask
)

func KindOf(name string) ToolKind {
	switch name {
	case "add_task":
		return ToolAddTask
	case "list_tasks":
		return ToolListTasks
	case "complete_task":
		return ToolCompleteTask
	case "delete_task":
		return ToolDeleteTask
	case "update_task":
		return ToolUpdateTask
	default:
		return ToolUnknown
	}
}

// ToolCall records one executed call: the name the model used, the
// arguments after user scoping, and the structured result.
type ToolCall struct {
	Name      string
	Arguments map[string]interface{}
	Result    map[string]interface{}
}
