package assistant

import (
	"context"
	"errors"
	"fmt"

	"ppa-agent/internal/application/port/input"
	"ppa-agent/internal/application/port/output"
	"ppa-agent/internal/domain/entity"
)

var _ input.RequestRunner = (*UseCase)(nil)

// UseCase — оболочка агента. Планирования здесь нет: всё решает удалённый агент.
type UseCase struct {
	cfg    entity.AgentConfig
	tools  output.ToolRegistry
	agent  output.RemoteAgentPort
	audit  output.AuditPort
	logger output.LoggerPort
}

func New(
	cfg entity.AgentConfig,
	tools output.ToolRegistry,
	agent output.RemoteAgentPort,
	audit output.AuditPort,
	logger output.LoggerPort,
) (*UseCase, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if tools == nil || agent == nil || audit == nil || logger == nil {
		return nil, errors.New("assistant: tools, agent, audit and logger are required")
	}

	return &UseCase{
		cfg:    cfg,
		tools:  tools,
		agent:  agent,
		audit:  audit,
		logger: logger,
	}, nil
}

func (uc *UseCase) Model() string {
	return uc.cfg.Model
}

func (uc *UseCase) RunRequest(ctx context.Context, prompt string) (string, error) {
	thought := fmt.Sprintf("Received user request: '%s'. Beginning analysis and planning.", prompt)
	uc.audit.Log(thought, entity.AuditToolSystemInput, entity.OutcomePending)

	resp, err := uc.agent.Run(ctx, entity.AgentRequest{
		SystemInstruction: uc.cfg.SystemInstruction,
		Tools:             uc.tools.Definitions(),
		Prompt:            prompt,
		MaxIterations:     uc.cfg.MaxIterations,
		Temperature:       uc.cfg.Temperature,
	})
	if err != nil {
		uc.logger.Error("Agent run failed", "error", err)
		return "", fmt.Errorf("agent run: %w", err)
	}

	uc.logger.Info("Agent run completed",
		"iterations", resp.Iterations,
		"toolCalls", resp.ToolCalls,
	)

	return resp.FinalAnswer, nil
}
