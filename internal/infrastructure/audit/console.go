package audit

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"ppa-agent/internal/application/port/output"
	"ppa-agent/internal/domain/entity"

	"github.com/fatih/color"
)

const (
	headerBanner = "--- PPAA AUDIT LOG ---"
	footerBanner = "----------------------"
)

var _ output.AuditPort = (*ConsoleAuditLogger)(nil)

// ConsoleAuditLogger печатает каждую запись аудита в консоль и ничего не хранит.
type ConsoleAuditLogger struct {
	out    io.Writer
	logger output.LoggerPort
	now    func() time.Time
	banner *color.Color
}

func NewConsoleAuditLogger(out io.Writer, logger output.LoggerPort) *ConsoleAuditLogger {
	if out == nil {
		out = os.Stdout
	}
	return &ConsoleAuditLogger{
		out:    out,
		logger: logger,
		now:    time.Now,
		banner: color.New(color.FgMagenta, color.Bold),
	}
}

func (a *ConsoleAuditLogger) Log(thought, toolName, outcome string) string {
	entry := entity.NewAuditLogEntry(a.now(), thought, toolName, outcome)

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		// запасной вариант: печатаем запись как есть
		data = []byte(fmt.Sprintf("%+v", entry))
	}

	fmt.Fprintln(a.out)
	a.banner.Fprintln(a.out, headerBanner)
	fmt.Fprintln(a.out, string(data))
	a.banner.Fprintln(a.out, footerBanner)
	fmt.Fprintln(a.out)

	if a.logger != nil {
		a.logger.Info("Audit entry",
			"agent_thought", entry.AgentThought,
			"tool_name", entry.ToolName,
			"outcome", entry.Outcome,
		)
	}

	return "Action logged successfully: " + outcome
}
