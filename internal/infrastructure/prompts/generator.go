package prompts

import (
	"bytes"
	"text/template"

	"ppa-agent/internal/application/port/output"
	"ppa-agent/internal/domain/entity"
)

type ToolInfo struct {
	Name        string
	Description string
}

type SystemPromptData struct {
	AuditTool string
	Tools     []ToolInfo
}

// GenerateSystemPrompt подставляет в шаблон список инструментов в порядке регистрации.
func GenerateSystemPrompt(baseTemplate string, registry output.ToolRegistry) (string, error) {
	tools := registry.All()
	infos := make([]ToolInfo, 0, len(tools))

	for _, tool := range tools {
		infos = append(infos, ToolInfo{
			Name:        tool.Name().String(),
			Description: tool.Description(),
		})
	}

	data := SystemPromptData{
		AuditTool: entity.ToolLogAgentAction.String(),
		Tools:     infos,
	}

	tmpl, err := template.New("system").Option("missingkey=error").Parse(baseTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}
