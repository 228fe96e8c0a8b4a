package tool

import "ppa-agent/internal/domain/entity"

var LogActionSpec = entity.ToolSpec{
	Name:        entity.ToolLogAgentAction,
	Description: "MANDATORY TOOL: Logs agent decisions and actions to the central audit log. Call it before any other tool, or with tool_name 'Decision' when no tool is needed.",
	Fields: []entity.ToolField{
		{Name: "agent_thought", Type: entity.FieldString, Required: true,
			Description: "The internal reasoning or decision made by the agent."},
		{Name: "tool_name", Type: entity.FieldString, Required: true,
			Description: "The name of the tool called, or 'Decision' if no tool was used."},
		{Name: "outcome_summary", Type: entity.FieldString, Required: true,
			Description: "A brief summary of the action outcome (e.g., 'Success', 'Failure', 'ClarificationNeeded')."},
	},
}

var ScheduleEventSpec = entity.ToolSpec{
	Name:        entity.ToolScheduleCalendarEvent,
	Description: "Creates a calendar event and returns a success confirmation.",
	Fields: []entity.ToolField{
		{Name: "title", Type: entity.FieldString, Required: true,
			Description: "The title of the calendar event."},
		{Name: "start_time", Type: entity.FieldString, Required: true,
			Description: "The start time of the event (e.g., 'YYYY-MM-DDTHH:MM:SS')."},
		{Name: "end_time", Type: entity.FieldString, Required: true,
			Description: "The end time of the event (e.g., 'YYYY-MM-DDTHH:MM:SS')."},
	},
}

var AddTaskSpec = entity.ToolSpec{
	Name:        entity.ToolAddTodoTask,
	Description: "Adds a new task to the user's to-do list.",
	Fields: []entity.ToolField{
		{Name: "task_name", Type: entity.FieldString, Required: true,
			Description: "The name or description of the task."},
		{Name: "due_date", Type: entity.FieldString,
			Description: "The due date for the task (optional, use ISO format if provided)."},
		{Name: "priority", Type: entity.FieldString,
			Description: "The task priority (e.g., 'High', 'Medium', 'Low'). Defaults to 'Medium'."},
	},
}

var DraftEmailSpec = entity.ToolSpec{
	Name:        entity.ToolDraftEmail,
	Description: "Composes and saves an email draft.",
	Fields: []entity.ToolField{
		{Name: "recipient", Type: entity.FieldString, Required: true,
			Description: "The email address of the recipient."},
		{Name: "subject", Type: entity.FieldString, Required: true,
			Description: "The subject line of the email."},
		{Name: "body", Type: entity.FieldString, Required: true,
			Description: "The main body content of the email."},
	},
}
