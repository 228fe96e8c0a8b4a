package entity

type ToolName string

const (
	ToolLogAgentAction        ToolName = "log_agent_action"
	ToolScheduleCalendarEvent ToolName = "schedule_calendar_event"
	ToolAddTodoTask           ToolName = "add_todo_task"
	ToolDraftEmail            ToolName = "draft_email"
)

func (t ToolName) String() string {
	return string(t)
}

type FieldType string

const FieldString FieldType = "string"

// ToolField описывает один входной параметр инструмента.
type ToolField struct {
	Name        string
	Type        FieldType
	Description string
	Required    bool
}

// ToolSpec — имя, описание и упорядоченный список полей инструмента.
type ToolSpec struct {
	Name        ToolName
	Description string
	Fields      []ToolField
}

// Schema строит JSON Schema объекта аргументов в порядке объявления полей.
func (s ToolSpec) Schema() map[string]interface{} {
	properties := make(map[string]interface{}, len(s.Fields))
	required := make([]string, 0, len(s.Fields))

	for _, f := range s.Fields {
		properties[f.Name] = map[string]interface{}{
			"type":        string(f.Type),
			"description": f.Description,
		}
		if f.Required {
			required = append(required, f.Name)
		}
	}

	schema := map[string]interface{}{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func (s ToolSpec) Definition() ToolDefinition {
	return ToolDefinition{
		Name:        s.Name.String(),
		Description: s.Description,
		Parameters:  s.Schema(),
	}
}
