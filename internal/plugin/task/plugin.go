package task

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"personal-assistant/internal/plugin"
)

func (p *Plugin) Descriptor() plugin.Descriptor {
	return plugin.Descriptor{
		Name:         PluginName,
		Description:  PluginDescription,
		Version:      PluginVersion,
		Capabilities: []string{"add", "list", "complete", "remove"},
		Commands:     p.Commands(),
	}
}

// CanHandle accepts any input mentioning tasks, todos or reminders.
func (p *Plugin) CanHandle(input string) bool {
	lower := strings.ToLower(input)
	for _, kw := range handleKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// Execute runs the first matching command. Unrecognised input gets the help text.
func (p *Plugin) Execute(ctx context.Context, input string, ec plugin.ExecContext) (string, error) {
	lower := strings.ToLower(input)
	hasTask := strings.Contains(lower, "task")

	switch {
	case hasTask && strings.Contains(lower, "add"):
		return p.add(ctx, input), nil
	case hasTask && strings.Contains(lower, "list"):
		return p.list(), nil
	case hasTask && strings.Contains(lower, "complete"):
		return p.complete(ctx, input), nil
	case hasTask && strings.Contains(lower, "remove"):
		return p.remove(ctx, input), nil
	default:
		return p.Help(), nil
	}
}

func (p *Plugin) Commands() []string {
	out := make([]string, len(commands))
	copy(out, commands)
	return out
}

func (p *Plugin) Help() string {
	return helpText
}

// Tasks returns a snapshot of the task list.
func (p *Plugin) Tasks() []Task {
	return p.store.list()
}

func (p *Plugin) add(ctx context.Context, input string) string {
	m := reAdd.FindStringSubmatch(input)
	if m == nil {
		return MsgAddUsage
	}

	t, err := p.store.add(m[1])
	switch {
	case errors.Is(err, ErrEmptyDescription):
		return MsgAddUsage
	case errors.Is(err, ErrLimitReached):
		p.l.Warnf(ctx, "%s: task limit %d reached", LogPrefixExecute, p.store.limit)
		return fmt.Sprintf(MsgLimitReached, p.store.limit)
	}

	p.l.Debugf(ctx, "%s: added task %d", LogPrefixExecute, t.ID)
	return fmt.Sprintf(MsgAdded, t.Description, t.ID)
}

func (p *Plugin) list() string {
	tasks := p.store.list()
	if len(tasks) == 0 {
		return MsgNoTasks
	}

	var active, done []Task
	for _, t := range tasks {
		if t.Done {
			done = append(done, t)
		} else {
			active = append(active, t)
		}
	}

	var b strings.Builder
	b.WriteString(listHeader)
	if len(active) > 0 {
		b.WriteString("\n")
		b.WriteString(listActiveHeader)
		for _, t := range active {
			fmt.Fprintf(&b, listRow, " ", t.ID, t.Description)
		}
	}
	if len(done) > 0 {
		b.WriteString("\n")
		b.WriteString(listCompletedHeader)
		for _, t := range done {
			fmt.Fprintf(&b, listRow, "x", t.ID, t.Description)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (p *Plugin) complete(ctx context.Context, input string) string {
	id, ok := parseID(reComplete, input)
	if !ok {
		return MsgCompleteUsage
	}

	t, err := p.store.complete(id)
	switch {
	case errors.Is(err, ErrNotFound):
		return fmt.Sprintf(MsgNotFound, id)
	case errors.Is(err, ErrAlreadyCompleted):
		return fmt.Sprintf(MsgAlreadyCompleted, id)
	}

	p.l.Debugf(ctx, "%s: completed task %d", LogPrefixExecute, id)
	return fmt.Sprintf(MsgCompleted, t.Description)
}

func (p *Plugin) remove(ctx context.Context, input string) string {
	id, ok := parseID(reRemove, input)
	if !ok {
		return MsgRemoveUsage
	}

	t, err := p.store.remove(id)
	if errors.Is(err, ErrNotFound) {
		return fmt.Sprintf(MsgNotFound, id)
	}

	p.l.Debugf(ctx, "%s: removed task %d", LogPrefixExecute, id)
	return fmt.Sprintf(MsgRemoved, t.Description)
}

func parseID(re *regexp.Regexp, input string) (int, bool) {
	m := re.FindStringSubmatch(input)
	if m == nil {
		return 0, false
	}
	id, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return id, true
}
