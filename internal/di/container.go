package di

import (
	"context"
	"fmt"
	"io"

	"ppa-agent/internal/adapter/tool"
	"ppa-agent/internal/application/port/input"
	"ppa-agent/internal/application/port/output"
	"ppa-agent/internal/application/service"
	"ppa-agent/internal/domain/entity"
	"ppa-agent/internal/infrastructure/audit"
	"ppa-agent/internal/infrastructure/config"
	"ppa-agent/internal/infrastructure/llm/gemini"
	"ppa-agent/internal/infrastructure/llm/openaicompat"
	"ppa-agent/internal/infrastructure/logger"
	"ppa-agent/internal/infrastructure/prompts"
	"ppa-agent/internal/infrastructure/simulated"
	"ppa-agent/internal/usecase/assistant"
	"ppa-agent/internal/usecase/executor"
	"ppa-agent/internal/usecase/session"

	"github.com/google/uuid"
)

type Container struct {
	SessionID string
	Logger    output.LoggerPort
	Audit     output.AuditPort
	Tools     output.ToolRegistry
	Assistant input.RequestRunner

	logFile *logger.LoggerAdapter
}

// NewContainer проверяет конфиг до создания чего-либо, поэтому при отсутствии
// ключа в консоль ничего не попадает.
func NewContainer(ctx context.Context, cfg config.Config, out io.Writer) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	sessionID := uuid.NewString()

	logFile, err := logger.NewLoggerAdapter(logger.Config{
		Dir:     cfg.LogDir,
		Session: "ppaa_" + sessionID[:8],
		Level:   cfg.LogLevel,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	log := logFile.WithFields(map[string]any{
		"session_id": sessionID,
		"provider":   string(cfg.Provider),
		"model":      cfg.Model,
	})

	auditLog := audit.NewConsoleAuditLogger(out, log)

	tools, err := NewToolRegistry(auditLog)
	if err != nil {
		logFile.Close()
		return nil, fmt.Errorf("failed to register tools: %w", err)
	}

	llm, err := newLLM(ctx, cfg, log)
	if err != nil {
		logFile.Close()
		return nil, fmt.Errorf("failed to create llm client: %w", err)
	}

	promptTemplate := cfg.SystemPrompt
	if promptTemplate == "" {
		promptTemplate = prompts.SystemPromptTemplate
	}
	systemPrompt, err := prompts.GenerateSystemPrompt(promptTemplate, tools)
	if err != nil {
		logFile.Close()
		return nil, fmt.Errorf("failed to generate system prompt: %w", err)
	}

	agent := executor.New(llm, tools, log)

	shell, err := assistant.New(entity.AgentConfig{
		Model:             cfg.Model,
		SystemInstruction: systemPrompt,
		MaxIterations:     cfg.MaxIterations,
		Temperature:       cfg.Temperature,
	}, tools, agent, auditLog, log)
	if err != nil {
		logFile.Close()
		return nil, fmt.Errorf("failed to create assistant: %w", err)
	}

	log.Info("Container initialized", "agent", entity.AgentName, "logFile", logFile.Path())

	return &Container{
		SessionID: sessionID,
		Logger:    log,
		Audit:     auditLog,
		Tools:     tools,
		Assistant: shell,
		logFile:   logFile,
	}, nil
}

// NewToolRegistry не требует ключа: его же использует команда `tools`.
func NewToolRegistry(auditLog output.AuditPort) (*service.ToolRegistryImpl, error) {
	registry := service.NewToolRegistry()
	if err := tool.Register(registry, auditLog, simulated.NewBackend()); err != nil {
		return nil, err
	}
	return registry, nil
}

func (c *Container) NewSession(in io.Reader, out io.Writer) *session.Loop {
	return session.New(c.Assistant, c.Audit, c.Logger, in, out)
}

func (c *Container) Close() {
	if c.logFile != nil {
		c.logFile.Close()
	}
}

func newLLM(ctx context.Context, cfg config.Config, log output.LoggerPort) (output.LLMPort, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		llmCfg := openaicompat.DefaultConfig(cfg.APIKey, cfg.Model, cfg.BaseURL)
		llmCfg.Logger = log
		return openaicompat.NewAdapter(llmCfg), nil
	case config.ProviderGemini:
		return gemini.NewAdapter(ctx, gemini.Config{
			APIKey: cfg.APIKey,
			Model:  cfg.Model,
			Logger: log,
		})
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownProvider, cfg.Provider)
	}
}
