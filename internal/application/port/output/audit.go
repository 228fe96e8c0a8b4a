package output

type AuditPort interface {
	Log(thought, toolName, outcome string) string
}
