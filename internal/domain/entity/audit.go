package entity

import "time"

// AuditTimeLayout — локальное время в ISO-8601 с микросекундами, без зоны.
const AuditTimeLayout = "2006-01-02T15:04:05.000000"

const (
	AuditToolDecision     = "Decision"
	AuditToolSystemInput  = "System/Input"
	AuditToolSystemOutput = "System/Output"
)

const (
	OutcomePending   = "Pending"
	OutcomeCompleted = "Completed"
	OutcomeError     = "Error"
)

type AuditLogEntry struct {
	Timestamp    string `json:"timestamp"`
	AgentThought string `json:"agent_thought"`
	ToolName     string `json:"tool_name"`
	Outcome      string `json:"outcome"`
}

func NewAuditLogEntry(at time.Time, thought, toolName, outcome string) AuditLogEntry {
	return AuditLogEntry{
		Timestamp:    at.Format(AuditTimeLayout),
		AgentThought: thought,
		ToolName:     toolName,
		Outcome:      outcome,
	}
}
