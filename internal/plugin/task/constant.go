package task

import "regexp"

// Plugin metadata
const (
	PluginName        = "task"
	PluginDescription = "Manage personal tasks and to-do items"
	PluginVersion     = "1.0.0"
)

// Log prefixes
const (
	LogPrefixExecute = "internal.plugin.task.Execute"
)

// Words that make the plugin accept an input.
var handleKeywords = []string{"task", "todo", "to-do", "remind", "remember"}

var (
	reAdd      = regexp.MustCompile(`(?i)add task (.+)`)
	reComplete = regexp.MustCompile(`(?i)complete task (\d+)`)
	reRemove   = regexp.MustCompile(`(?i)remove task (\d+)`)
)

// Replies
const (
	MsgAdded            = "✅ Added task: %s (id %d)"
	MsgCompleted        = "✅ Completed task: %s"
	MsgRemoved          = "🗑️ Removed task: %s"
	MsgNotFound         = "❌ Task %d not found"
	MsgAlreadyCompleted = "✅ Task %d is already completed"
	MsgLimitReached     = "⚠️ Task limit reached (%d). Complete or remove a task first."
	MsgNoTasks          = "📝 No tasks found. Add a task with 'add task [description]'"
	MsgAddUsage         = "Please provide a task description. Example: 'add task buy groceries'"
	MsgCompleteUsage    = "Please specify a task ID. Example: 'complete task 1'"
	MsgRemoveUsage      = "Please specify a task ID. Example: 'remove task 1'"

	listHeader          = "📝 **Your Tasks:**\n"
	listActiveHeader    = "**Active Tasks:**\n"
	listCompletedHeader = "**Completed Tasks:**\n"
	listRow             = "  [%s] %d. %s\n"
)

var commands = []string{
	"add task [description]",
	"list tasks",
	"complete task [id]",
	"remove task [id]",
}

const helpText = "I can help you manage tasks! Try:\n" +
	"• 'add task [description]' - Add a new task\n" +
	"• 'list tasks' - Show all tasks\n" +
	"• 'complete task [id]' - Mark task as done\n" +
	"• 'remove task [id]' - Delete a task"
