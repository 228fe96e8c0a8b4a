package entity

import (
	"errors"
	"fmt"
)

const (
	AgentName            = "Personal_Productivity_Agent"
	DefaultMaxIterations = 50
)

var ErrInvalidAgentConfig = errors.New("invalid agent config")

// AgentConfig задаётся один раз при старте и дальше не меняется.
type AgentConfig struct {
	Model             string
	SystemInstruction string
	MaxIterations     int
	Temperature       float32
}

func (c AgentConfig) Validate() error {
	if c.Model == "" {
		return fmt.Errorf("%w: model is required", ErrInvalidAgentConfig)
	}
	if c.SystemInstruction == "" {
		return fmt.Errorf("%w: system instruction is required", ErrInvalidAgentConfig)
	}
	if c.MaxIterations <= 0 {
		return fmt.Errorf("%w: max iterations must be positive, got %d", ErrInvalidAgentConfig, c.MaxIterations)
	}
	return nil
}

type AgentRequest struct {
	SystemInstruction string
	Tools             []ToolDefinition
	Prompt            string
	MaxIterations     int
	Temperature       float32
}

type AgentResponse struct {
	FinalAnswer string
	Iterations  int
	ToolCalls   int
}
