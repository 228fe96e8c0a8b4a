package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToolSpec_Schema(t *testing.T) {
	spec := ToolSpec{
		Name:        ToolAddTodoTask,
		Description: "adds a task",
		Fields: []ToolField{
			{Name: "task_name", Type: FieldString, Description: "name", Required: true},
			{Name: "priority", Type: FieldString, Description: "priority"},
		},
	}

	schema := spec.Schema()
	assert.Equal(t, "object", schema["type"])
	assert.Equal(t, []string{"task_name"}, schema["required"])

	props := schema["properties"].(map[string]interface{})
	assert.Equal(t, map[string]interface{}{"type": "string", "description": "priority"}, props["priority"])
}

func TestToolSpec_SchemaWithoutRequired(t *testing.T) {
	spec := ToolSpec{
		Name:   "noop",
		Fields: []ToolField{{Name: "note", Type: FieldString}},
	}

	_, ok := spec.Schema()["required"]
	assert.False(t, ok)
}

func TestToolSpec_Definition(t *testing.T) {
	spec := ToolSpec{Name: ToolDraftEmail, Description: "drafts"}

	def := spec.Definition()
	assert.Equal(t, "draft_email", def.Name)
	assert.Equal(t, "drafts", def.Description)
	assert.Equal(t, "object", def.Parameters["type"])
}

func TestAgentConfig_Validate(t *testing.T) {
	valid := AgentConfig{Model: "gemini-2.5-flash", SystemInstruction: "be useful", MaxIterations: 5}
	assert.NoError(t, valid.Validate())

	noModel := valid
	noModel.Model = ""
	assert.ErrorIs(t, noModel.Validate(), ErrInvalidAgentConfig)

	noPrompt := valid
	noPrompt.SystemInstruction = ""
	assert.ErrorIs(t, noPrompt.Validate(), ErrInvalidAgentConfig)

	noIterations := valid
	noIterations.MaxIterations = 0
	assert.ErrorIs(t, noIterations.Validate(), ErrInvalidAgentConfig)
}
