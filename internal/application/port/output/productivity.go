package output

import (
	"context"

	"ppa-agent/internal/domain/entity"
)

// ProductivityPort — граница между инструментами и бэкендом действий.
// Сейчас единственная реализация симулирует успех; настоящий календарь
// или почта подключаются сюда же.
type ProductivityPort interface {
	ScheduleEvent(ctx context.Context, event entity.CalendarEvent) (string, error)
	AddTask(ctx context.Context, task entity.TodoTask) (string, error)
	DraftEmail(ctx context.Context, draft entity.EmailDraft) (string, error)
}
