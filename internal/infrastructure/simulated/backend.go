package simulated

import (
	"context"
	"fmt"

	"ppa-agent/internal/application/port/output"
	"ppa-agent/internal/domain/entity"
)

const bodySnippetLen = 50

var _ output.ProductivityPort = (*Backend)(nil)

// Backend ничего не отправляет наружу: только форматирует подтверждение.
type Backend struct{}

func NewBackend() *Backend {
	return &Backend{}
}

func (b *Backend) ScheduleEvent(ctx context.Context, event entity.CalendarEvent) (string, error) {
	return fmt.Sprintf("SUCCESS: Event '%s' simulated scheduled from %s to %s.",
		event.Title, event.StartTime, event.EndTime), nil
}

func (b *Backend) AddTask(ctx context.Context, task entity.TodoTask) (string, error) {
	priority := task.Priority
	if priority == "" {
		priority = entity.DefaultTaskPriority
	}

	dueInfo := ""
	if task.DueDate != "" {
		dueInfo = " Due: " + task.DueDate
	}

	return fmt.Sprintf("SUCCESS: Task '%s' simulated added with %s priority.%s",
		task.TaskName, priority, dueInfo), nil
}

func (b *Backend) DraftEmail(ctx context.Context, draft entity.EmailDraft) (string, error) {
	return fmt.Sprintf("SUCCESS: Email draft simulated saved. To: %s, Subject: %s. Body snippet: %s...",
		draft.Recipient, draft.Subject, snippet(draft.Body, bodySnippetLen)), nil
}

func snippet(s string, maxRunes int) string {
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes])
}
