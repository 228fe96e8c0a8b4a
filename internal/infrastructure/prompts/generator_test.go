package prompts

import (
	"context"
	"strings"
	"testing"

	"ppa-agent/internal/application/port/output"
	"ppa-agent/internal/domain/entity"
)

type mockTool struct {
	name        entity.ToolName
	description string
}

func (m *mockTool) Name() entity.ToolName { return m.name }
func (m *mockTool) Description() string   { return m.description }
func (m *mockTool) Parameters() map[string]interface{} {
	return map[string]interface{}{"type": "object"}
}
func (m *mockTool) Execute(ctx context.Context, arguments string) (string, error) {
	return "", nil
}

type mockToolRegistry struct {
	tools []output.ToolPort
}

func (r *mockToolRegistry) Register(tool output.ToolPort) error {
	r.tools = append(r.tools, tool)
	return nil
}

func (r *mockToolRegistry) Get(name entity.ToolName) (output.ToolPort, bool) {
	for _, tool := range r.tools {
		if tool.Name() == name {
			return tool, true
		}
	}
	return nil, false
}

func (r *mockToolRegistry) Lookup(name entity.ToolName) (output.ToolPort, error) {
	tool, _ := r.Get(name)
	return tool, nil
}

func (r *mockToolRegistry) All() []output.ToolPort {
	return r.tools
}

func (r *mockToolRegistry) Definitions() []entity.ToolDefinition {
	return nil
}

func TestGenerateSystemPrompt(t *testing.T) {
	registry := &mockToolRegistry{}
	registry.Register(&mockTool{name: entity.ToolLogAgentAction, description: "Logs decisions"})
	registry.Register(&mockTool{name: entity.ToolAddTodoTask, description: "Adds a task"})

	template := `Audit with {{.AuditTool}}.

{{range .Tools -}}
- {{.Name}}: {{.Description}}
{{end}}`

	result, err := GenerateSystemPrompt(template, registry)
	if err != nil {
		t.Fatalf("GenerateSystemPrompt failed: %v", err)
	}

	if !strings.Contains(result, "Audit with log_agent_action.") {
		t.Error("Result should name the audit tool")
	}

	if !strings.Contains(result, "- log_agent_action: Logs decisions") {
		t.Error("Result should contain audit tool description")
	}

	if !strings.Contains(result, "- add_todo_task: Adds a task") {
		t.Error("Result should contain task tool description")
	}

	if strings.Index(result, "log_agent_action: ") > strings.Index(result, "add_todo_task: ") {
		t.Error("Tools should keep registration order")
	}
}

func TestGenerateSystemPromptDefaultTemplate(t *testing.T) {
	registry := &mockToolRegistry{}
	registry.Register(&mockTool{name: entity.ToolDraftEmail, description: "Drafts an email"})

	result, err := GenerateSystemPrompt(SystemPromptTemplate, registry)
	if err != nil {
		t.Fatalf("GenerateSystemPrompt failed: %v", err)
	}

	if !strings.Contains(result, "Personal Productivity & Automation Agent") {
		t.Error("Default prompt should introduce the agent")
	}

	if !strings.Contains(result, "call `log_agent_action`") {
		t.Error("Default prompt should require audit logging first")
	}

	if !strings.Contains(result, "- draft_email: Drafts an email") {
		t.Error("Default prompt should list registered tools")
	}
}

func TestGenerateSystemPromptInvalidTemplate(t *testing.T) {
	registry := &mockToolRegistry{}

	_, err := GenerateSystemPrompt(`Test {{.InvalidField}}`, registry)
	if err == nil {
		t.Error("Expected error for invalid template, got nil")
	}
}
