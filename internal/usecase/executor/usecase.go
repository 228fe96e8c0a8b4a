package executor

import (
	"context"
	"errors"
	"fmt"

	"ppa-agent/internal/application/port/output"
	"ppa-agent/internal/domain/entity"
)

var _ output.RemoteAgentPort = (*UseCase)(nil)

const maxObservationLen = 20000

var ErrMaxIterations = errors.New("max iterations exceeded")

// UseCase — рантайм удалённого агента: модель сама выбирает инструменты,
// здесь только исполняем вызовы и возвращаем ей результаты.
type UseCase struct {
	llm    output.LLMPort
	tools  output.ToolRegistry
	logger output.LoggerPort
}

func New(
	llm output.LLMPort,
	tools output.ToolRegistry,
	logger output.LoggerPort,
) *UseCase {
	return &UseCase{
		llm:    llm,
		tools:  tools,
		logger: logger,
	}
}

func (uc *UseCase) Run(ctx context.Context, req entity.AgentRequest) (*entity.AgentResponse, error) {
	messages := []entity.Message{
		{Role: entity.RoleSystem, Content: req.SystemInstruction},
		{Role: entity.RoleUser, Content: req.Prompt},
	}

	maxIterations := req.MaxIterations
	if maxIterations <= 0 {
		maxIterations = entity.DefaultMaxIterations
	}

	tracker := &auditTracker{}
	toolCalls := 0

	for iteration := 1; iteration <= maxIterations; iteration++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		uc.logger.Debug("Starting iteration", "iteration", iteration)

		resp, err := uc.llm.Chat(ctx, output.ChatRequest{
			Messages:    messages,
			Tools:       req.Tools,
			Temperature: req.Temperature,
		})
		if err != nil {
			return nil, fmt.Errorf("llm request failed: %w", err)
		}

		messages = append(messages, resp.Message)

		if len(resp.Message.ToolCalls) == 0 {
			uc.logger.Info("Final answer received", "iterations", iteration, "toolCalls", toolCalls)
			return &entity.AgentResponse{
				FinalAnswer: resp.Message.Content,
				Iterations:  iteration,
				ToolCalls:   toolCalls,
			}, nil
		}

		for _, tc := range resp.Message.ToolCalls {
			observation := uc.executeTool(ctx, tc, tracker)
			toolCalls++

			messages = append(messages, entity.Message{
				Role:       entity.RoleTool,
				ToolCallID: tc.ID,
				Name:       tc.Name,
				Content:    observation,
			})
		}
	}

	return nil, fmt.Errorf("%w (%d)", ErrMaxIterations, maxIterations)
}

func (uc *UseCase) executeTool(ctx context.Context, tc entity.ToolCall, tracker *auditTracker) string {
	name := entity.ToolName(tc.Name)

	tool, err := uc.tools.Lookup(name)
	if err != nil {
		uc.logger.Warn("Unknown tool called", "name", tc.Name)
		return "Error: " + err.Error()
	}

	if !tracker.observe(name) {
		uc.logger.Warn("Tool executed without preceding audit entry", "name", tc.Name)
	}

	uc.logger.Info("Executing tool", "name", tc.Name, "args", tc.Arguments)

	result, err := tool.Execute(ctx, tc.Arguments)
	if err != nil {
		uc.logger.Error("Tool execution failed", "name", tc.Name, "error", err)
		return "Error: " + err.Error()
	}

	result = truncateObservation(result, maxObservationLen)

	uc.logger.Debug("Tool completed", "name", tc.Name, "resultLen", len(result))
	return result
}

// truncateObservation режет по границе руны, чтобы не отдать модели битый UTF-8.
func truncateObservation(s string, maxRunes int) string {
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes]) + "\n... (truncated)"
}

// auditTracker следит, что каждому вызову инструмента предшествует запись в аудит.
// Нарушение только логируется: порядок задаёт инструкция модели.
type auditTracker struct {
	logged bool
}

func (t *auditTracker) observe(name entity.ToolName) bool {
	if name == entity.ToolLogAgentAction {
		t.logged = true
		return true
	}
	ok := t.logged
	t.logged = false
	return ok
}
