package executor

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"ppa-agent/internal/adapter/tool"
	"ppa-agent/internal/application/port/output"
	"ppa-agent/internal/application/service"
	"ppa-agent/internal/domain/entity"
	"ppa-agent/internal/infrastructure/simulated"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedLLM struct {
	responses []entity.Message
	requests  []output.ChatRequest
	err       error
}

func (s *scriptedLLM) Chat(ctx context.Context, req output.ChatRequest) (*output.ChatResponse, error) {
	s.requests = append(s.requests, req)
	if s.err != nil {
		return nil, s.err
	}
	if len(s.responses) == 0 {
		return nil, errors.New("script exhausted")
	}
	msg := s.responses[0]
	s.responses = s.responses[1:]
	return &output.ChatResponse{Message: msg}, nil
}

type logRecord struct {
	level, msg string
}

type recordingLogger struct {
	records *[]logRecord
}

func newRecordingLogger() *recordingLogger {
	return &recordingLogger{records: &[]logRecord{}}
}

func (l *recordingLogger) add(level, msg string) {
	*l.records = append(*l.records, logRecord{level, msg})
}

func (l *recordingLogger) Debug(msg string, args ...any) { l.add("DEBUG", msg) }
func (l *recordingLogger) Info(msg string, args ...any)  { l.add("INFO", msg) }
func (l *recordingLogger) Warn(msg string, args ...any)  { l.add("WARN", msg) }
func (l *recordingLogger) Error(msg string, args ...any) { l.add("ERROR", msg) }

func (l *recordingLogger) WithField(key string, value any) output.LoggerPort {
	return l
}

func (l *recordingLogger) WithFields(fields map[string]any) output.LoggerPort {
	return l
}

func (l *recordingLogger) Close() error { return nil }

func (l *recordingLogger) has(level, msg string) bool {
	for _, r := range *l.records {
		if r.level == level && r.msg == msg {
			return true
		}
	}
	return false
}

type countingAudit struct {
	outcomes []string
}

func (a *countingAudit) Log(thought, toolName, outcome string) string {
	a.outcomes = append(a.outcomes, outcome)
	return "Action logged successfully: " + outcome
}

func newRegistry(t *testing.T, audit output.AuditPort) *service.ToolRegistryImpl {
	t.Helper()
	registry := service.NewToolRegistry()
	require.NoError(t, tool.Register(registry, audit, simulated.NewBackend()))
	return registry
}

func call(id, name, args string) entity.ToolCall {
	return entity.ToolCall{ID: id, Name: name, Arguments: args}
}

func TestRun_ExecutesToolsAndReturnsFinalAnswer(t *testing.T) {
	audit := &countingAudit{}
	llm := &scriptedLLM{responses: []entity.Message{
		{Role: entity.RoleAssistant, ToolCalls: []entity.ToolCall{
			call("c1", "log_agent_action", `{"agent_thought":"add task","tool_name":"add_todo_task","outcome_summary":"Success"}`),
			call("c2", "add_todo_task", `{"task_name":"Buy milk","priority":"High"}`),
		}},
		{Role: entity.RoleAssistant, Content: "Your task 'Buy milk' was added."},
	}}
	log := newRecordingLogger()
	uc := New(llm, newRegistry(t, audit), log)

	resp, err := uc.Run(context.Background(), entity.AgentRequest{
		SystemInstruction: "system",
		Prompt:            "add buy milk, high priority",
		MaxIterations:     5,
	})
	require.NoError(t, err)

	assert.Equal(t, "Your task 'Buy milk' was added.", resp.FinalAnswer)
	assert.Equal(t, 2, resp.Iterations)
	assert.Equal(t, 2, resp.ToolCalls)
	assert.Equal(t, []string{"Success"}, audit.outcomes)

	require.Len(t, llm.requests, 2)
	second := llm.requests[1].Messages
	require.Len(t, second, 5)
	assert.Equal(t, entity.RoleSystem, second[0].Role)
	assert.Equal(t, "system", second[0].Content)
	assert.Equal(t, entity.RoleTool, second[4].Role)
	assert.Equal(t, "c2", second[4].ToolCallID)
	assert.Equal(t, "SUCCESS: Task 'Buy milk' simulated added with High priority.", second[4].Content)

	assert.False(t, log.has("WARN", "Tool executed without preceding audit entry"))
}

func TestRun_UnknownToolIsReportedToModel(t *testing.T) {
	llm := &scriptedLLM{responses: []entity.Message{
		{Role: entity.RoleAssistant, ToolCalls: []entity.ToolCall{call("c1", "send_fax", `{}`)}},
		{Role: entity.RoleAssistant, Content: "I cannot send faxes."},
	}}
	log := newRecordingLogger()
	uc := New(llm, newRegistry(t, &countingAudit{}), log)

	resp, err := uc.Run(context.Background(), entity.AgentRequest{Prompt: "fax it", MaxIterations: 3})
	require.NoError(t, err)
	assert.Equal(t, "I cannot send faxes.", resp.FinalAnswer)

	observation := llm.requests[1].Messages[3].Content
	assert.True(t, strings.HasPrefix(observation, "Error: "))
	assert.Contains(t, observation, service.ErrUnknownTool.Error())
	assert.True(t, log.has("WARN", "Unknown tool called"))
}

func TestRun_InvalidArgumentsAreReportedToModel(t *testing.T) {
	llm := &scriptedLLM{responses: []entity.Message{
		{Role: entity.RoleAssistant, ToolCalls: []entity.ToolCall{
			call("c1", "log_agent_action", `{"agent_thought":"t","tool_name":"draft_email","outcome_summary":"Success"}`),
			call("c2", "draft_email", `{"recipient":"a@b.com"}`),
		}},
		{Role: entity.RoleAssistant, Content: "Need a subject and body."},
	}}
	log := newRecordingLogger()
	uc := New(llm, newRegistry(t, &countingAudit{}), log)

	_, err := uc.Run(context.Background(), entity.AgentRequest{Prompt: "email", MaxIterations: 3})
	require.NoError(t, err)

	observation := llm.requests[1].Messages[4].Content
	assert.Contains(t, observation, tool.ErrInvalidArguments.Error())
	assert.True(t, log.has("ERROR", "Tool execution failed"))
}

func TestRun_WarnsWhenToolRunsWithoutAudit(t *testing.T) {
	llm := &scriptedLLM{responses: []entity.Message{
		{Role: entity.RoleAssistant, ToolCalls: []entity.ToolCall{
			call("c1", "schedule_calendar_event", `{"title":"Sync","start_time":"a","end_time":"b"}`),
		}},
		{Role: entity.RoleAssistant, Content: "Scheduled."},
	}}
	log := newRecordingLogger()
	uc := New(llm, newRegistry(t, &countingAudit{}), log)

	_, err := uc.Run(context.Background(), entity.AgentRequest{Prompt: "schedule", MaxIterations: 3})
	require.NoError(t, err)
	assert.True(t, log.has("WARN", "Tool executed without preceding audit entry"))
}

func TestRun_MaxIterations(t *testing.T) {
	loop := entity.Message{Role: entity.RoleAssistant, ToolCalls: []entity.ToolCall{
		call("c", "log_agent_action", `{"agent_thought":"t","tool_name":"Decision","outcome_summary":"Pending"}`),
	}}
	llm := &scriptedLLM{responses: []entity.Message{loop, loop, loop}}
	uc := New(llm, newRegistry(t, &countingAudit{}), newRecordingLogger())

	_, err := uc.Run(context.Background(), entity.AgentRequest{Prompt: "spin", MaxIterations: 2})
	assert.ErrorIs(t, err, ErrMaxIterations)
	assert.Len(t, llm.requests, 2)
}

func TestRun_LLMError(t *testing.T) {
	llm := &scriptedLLM{err: errors.New("503 service unavailable")}
	uc := New(llm, newRegistry(t, &countingAudit{}), newRecordingLogger())

	_, err := uc.Run(context.Background(), entity.AgentRequest{Prompt: "hi"})
	assert.ErrorContains(t, err, "503 service unavailable")
}

func TestRun_CancelledContext(t *testing.T) {
	llm := &scriptedLLM{}
	uc := New(llm, newRegistry(t, &countingAudit{}), newRecordingLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uc.Run(ctx, entity.AgentRequest{Prompt: "hi"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, llm.requests)
}

func TestAuditTracker(t *testing.T) {
	tr := &auditTracker{}

	assert.False(t, tr.observe(entity.ToolAddTodoTask))
	assert.True(t, tr.observe(entity.ToolLogAgentAction))
	assert.True(t, tr.observe(entity.ToolAddTodoTask))
	assert.False(t, tr.observe(entity.ToolDraftEmail))
}

func TestTruncateObservation(t *testing.T) {
	assert.Equal(t, "short", truncateObservation("short", 10))

	got := truncateObservation(strings.Repeat("я", 12), 10)
	assert.Equal(t, strings.Repeat("я", 10)+"\n... (truncated)", got)
	assert.True(t, utf8.ValidString(got))
}
