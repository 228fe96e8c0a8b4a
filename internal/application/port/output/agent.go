package output

import (
	"context"

	"ppa-agent/internal/domain/entity"
)

// RemoteAgentPort — внешний агент: инструкция, инструменты и запрос на входе, текст на выходе.
type RemoteAgentPort interface {
	Run(ctx context.Context, req entity.AgentRequest) (*entity.AgentResponse, error)
}
