package tool

import (
	"context"
	"encoding/json"
	"fmt"

	"ppa-agent/internal/application/port/output"
	"ppa-agent/internal/domain/entity"
)

type baseTool struct {
	spec      entity.ToolSpec
	validator *argValidator
}

func newBaseTool(spec entity.ToolSpec) baseTool {
	return baseTool{spec: spec, validator: newArgValidator(spec)}
}

func (t *baseTool) Name() entity.ToolName              { return t.spec.Name }
func (t *baseTool) Description() string                { return t.spec.Description }
func (t *baseTool) Parameters() map[string]interface{} { return t.spec.Schema() }

func (t *baseTool) decode(args string, v any) error {
	if err := t.validator.Validate(args); err != nil {
		return err
	}
	if args == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(args), v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidArguments, t.spec.Name, err)
	}
	return nil
}

type LogActionTool struct {
	baseTool
	audit output.AuditPort
}

func NewLogActionTool(audit output.AuditPort) *LogActionTool {
	return &LogActionTool{baseTool: newBaseTool(LogActionSpec), audit: audit}
}

func (t *LogActionTool) Execute(ctx context.Context, args string) (string, error) {
	var input struct {
		AgentThought   string `json:"agent_thought"`
		ToolName       string `json:"tool_name"`
		OutcomeSummary string `json:"outcome_summary"`
	}
	if err := t.decode(args, &input); err != nil {
		return "", err
	}
	return t.audit.Log(input.AgentThought, input.ToolName, input.OutcomeSummary), nil
}

type ScheduleEventTool struct {
	baseTool
	backend output.ProductivityPort
}

func NewScheduleEventTool(backend output.ProductivityPort) *ScheduleEventTool {
	return &ScheduleEventTool{baseTool: newBaseTool(ScheduleEventSpec), backend: backend}
}

func (t *ScheduleEventTool) Execute(ctx context.Context, args string) (string, error) {
	var event entity.CalendarEvent
	if err := t.decode(args, &event); err != nil {
		return "", err
	}
	return t.backend.ScheduleEvent(ctx, event)
}

type AddTaskTool struct {
	baseTool
	backend output.ProductivityPort
}

func NewAddTaskTool(backend output.ProductivityPort) *AddTaskTool {
	return &AddTaskTool{baseTool: newBaseTool(AddTaskSpec), backend: backend}
}

func (t *AddTaskTool) Execute(ctx context.Context, args string) (string, error) {
	var task entity.TodoTask
	if err := t.decode(args, &task); err != nil {
		return "", err
	}
	return t.backend.AddTask(ctx, task)
}

type DraftEmailTool struct {
	baseTool
	backend output.ProductivityPort
}

func NewDraftEmailTool(backend output.ProductivityPort) *DraftEmailTool {
	return &DraftEmailTool{baseTool: newBaseTool(DraftEmailSpec), backend: backend}
}

func (t *DraftEmailTool) Execute(ctx context.Context, args string) (string, error) {
	var draft entity.EmailDraft
	if err := t.decode(args, &draft); err != nil {
		return "", err
	}
	return t.backend.DraftEmail(ctx, draft)
}

// Register добавляет в реестр все инструменты ассистента.
func Register(registry output.ToolRegistry, audit output.AuditPort, backend output.ProductivityPort) error {
	tools := []output.ToolPort{
		NewLogActionTool(audit),
		NewScheduleEventTool(backend),
		NewAddTaskTool(backend),
		NewDraftEmailTool(backend),
	}
	for _, t := range tools {
		if err := registry.Register(t); err != nil {
			return err
		}
	}
	return nil
}
