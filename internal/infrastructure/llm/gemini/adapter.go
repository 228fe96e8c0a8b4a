package gemini

import (
	"context"
	"fmt"

	"ppa-agent/internal/application/port/output"
	"ppa-agent/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

var _ output.LLMPort = (*Adapter)(nil)

// contentGenerator — та часть llms.Model, которой пользуется адаптер.
type contentGenerator interface {
	GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error)
}

// Adapter работает с Gemini через нативный API (langchaingo googleai).
type Adapter struct {
	llm    contentGenerator
	model  string
	logger output.LoggerPort
}

type Config struct {
	APIKey string
	Model  string
	Logger output.LoggerPort
}

func NewAdapter(ctx context.Context, cfg Config) (*Adapter, error) {
	client, err := googleai.New(ctx,
		googleai.WithAPIKey(cfg.APIKey),
		googleai.WithDefaultModel(cfg.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return newAdapter(client, cfg.Model, cfg.Logger), nil
}

func newAdapter(llm contentGenerator, model string, logger output.LoggerPort) *Adapter {
	return &Adapter{
		llm:    llm,
		model:  model,
		logger: logger,
	}
}

func (a *Adapter) Chat(ctx context.Context, req output.ChatRequest) (*output.ChatResponse, error) {
	opts := []llms.CallOption{
		llms.WithModel(a.model),
		llms.WithTemperature(float64(req.Temperature)),
	}
	if len(req.Tools) > 0 {
		opts = append(opts, llms.WithTools(convertTools(req.Tools)))
	}

	if a.logger != nil {
		a.logger.Debug("Generating content",
			"model", a.model,
			"messagesCount", len(req.Messages),
			"toolsCount", len(req.Tools),
		)
	}

	resp, err := a.llm.GenerateContent(ctx, convertMessages(req.Messages), opts...)
	if err != nil {
		return nil, fmt.Errorf("generate content failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no choices in response")
	}

	choice := resp.Choices[0]
	if a.logger != nil {
		a.logger.Debug("Content generated",
			"stopReason", choice.StopReason,
			"toolCallsCount", len(choice.ToolCalls),
			"contentLength", len(choice.Content),
		)
	}

	return &output.ChatResponse{
		Message: convertChoice(choice),
	}, nil
}

func convertMessages(messages []entity.Message) []llms.MessageContent {
	result := make([]llms.MessageContent, 0, len(messages))
	for _, msg := range messages {
		switch msg.Role {
		case entity.RoleSystem:
			result = append(result, llms.TextParts(llms.ChatMessageTypeSystem, msg.Content))

		case entity.RoleUser:
			result = append(result, llms.TextParts(llms.ChatMessageTypeHuman, msg.Content))

		case entity.RoleAssistant:
			mc := llms.MessageContent{Role: llms.ChatMessageTypeAI}
			if msg.Content != "" {
				mc.Parts = append(mc.Parts, llms.TextContent{Text: msg.Content})
			}
			for _, tc := range msg.ToolCalls {
				mc.Parts = append(mc.Parts, llms.ToolCall{
					ID:   tc.ID,
					Type: "function",
					FunctionCall: &llms.FunctionCall{
						Name:      tc.Name,
						Arguments: tc.Arguments,
					},
				})
			}
			result = append(result, mc)

		case entity.RoleTool:
			part := llms.ToolCallResponse{
				ToolCallID: msg.ToolCallID,
				Name:       msg.Name,
				Content:    msg.Content,
			}
			// Gemini ждёт один ход с ответами на все вызовы предыдущего хода модели.
			if n := len(result); n > 0 && result[n-1].Role == llms.ChatMessageTypeTool {
				result[n-1].Parts = append(result[n-1].Parts, part)
				continue
			}
			result = append(result, llms.MessageContent{
				Role:  llms.ChatMessageTypeTool,
				Parts: []llms.ContentPart{part},
			})
		}
	}
	return result
}

func convertTools(tools []entity.ToolDefinition) []llms.Tool {
	result := make([]llms.Tool, 0, len(tools))
	for _, t := range tools {
		result = append(result, llms.Tool{
			Type: "function",
			Function: &llms.FunctionDefinition{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.Parameters,
			},
		})
	}
	return result
}

// Gemini не всегда присылает id вызова, а исполнителю он нужен для связи с ответом.
func convertChoice(choice *llms.ContentChoice) entity.Message {
	result := entity.Message{
		Role:    entity.RoleAssistant,
		Content: choice.Content,
	}

	for _, tc := range choice.ToolCalls {
		if tc.FunctionCall == nil {
			continue
		}
		id := tc.ID
		if id == "" {
			id = "call_" + uuid.NewString()
		}
		result.ToolCalls = append(result.ToolCalls, entity.ToolCall{
			ID:        id,
			Name:      tc.FunctionCall.Name,
			Arguments: tc.FunctionCall.Arguments,
		})
	}

	return result
}
