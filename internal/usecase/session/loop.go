package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"ppa-agent/internal/application/port/input"
	"ppa-agent/internal/application/port/output"
	"ppa-agent/internal/domain/entity"

	"github.com/fatih/color"
	"github.com/google/uuid"
)

type State int

const (
	StateAwaitingInput State = iota
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateAwaitingInput:
		return "awaiting_input"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

const prompt = "User Request: "

// Loop — интерактивный цикл: читаем строку, отдаём агенту, печатаем ответ.
type Loop struct {
	runner input.RequestRunner
	audit  output.AuditPort
	logger output.LoggerPort

	in    *bufio.Reader
	out   io.Writer
	state State
}

func New(
	runner input.RequestRunner,
	audit output.AuditPort,
	logger output.LoggerPort,
	in io.Reader,
	out io.Writer,
) *Loop {
	return &Loop{
		runner: runner,
		audit:  audit,
		logger: logger,
		in:     bufio.NewReader(in),
		out:    out,
		state:  StateAwaitingInput,
	}
}

func (l *Loop) State() State {
	return l.state
}

func (l *Loop) Run(ctx context.Context) error {
	l.printBanner()

	for l.state == StateAwaitingInput {
		if ctx.Err() != nil {
			l.terminate()
			return nil
		}

		fmt.Fprint(l.out, prompt)

		line, err := l.in.ReadString('\n')
		if line != "" {
			l.Step(ctx, line)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				l.terminate()
				return nil
			}
			return fmt.Errorf("read input: %w", err)
		}
	}

	return nil
}

// Step обрабатывает одну введённую строку.
func (l *Loop) Step(ctx context.Context, line string) {
	if l.state == StateTerminated {
		return
	}

	request := strings.TrimSpace(line)

	switch strings.ToLower(request) {
	case "quit", "exit":
		l.terminate()
		return
	case "":
		return
	}

	turnLog := l.logger.WithField("turn_id", uuid.NewString())
	turnLog.Info("Turn started", "request", request)

	response, err := l.runTurn(ctx, request)
	if err != nil {
		turnLog.Error("Turn failed", "error", err)
		l.audit.Log(
			fmt.Sprintf("Failed processing request: '%s'. Error reported to user.", request),
			entity.AuditToolSystemOutput,
			entity.OutcomeError,
		)
		fmt.Fprintf(l.out, "\nERROR: An unexpected error occurred: %v\n\n", err)
		return
	}

	l.audit.Log(
		fmt.Sprintf("Completed processing request: '%s'. Final response provided to user.", request),
		entity.AuditToolSystemOutput,
		entity.OutcomeCompleted,
	)
	turnLog.Info("Turn completed", "responseLen", len(response))

	fmt.Fprintf(l.out, "\nPPAA Response: %s\n\n", response)
}

// runTurn превращает панику внутри агента в обычную ошибку хода.
func (l *Loop) runTurn(ctx context.Context, request string) (response string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return l.runner.RunRequest(ctx, request)
}

func (l *Loop) terminate() {
	if l.state == StateTerminated {
		return
	}
	l.state = StateTerminated
	l.logger.Info("Session ended")
	fmt.Fprintln(l.out, "\nPPAA session ended. Goodbye!")
}

func (l *Loop) printBanner() {
	header := color.New(color.FgCyan, color.Bold)
	header.Fprintln(l.out, "--- Personal Productivity & Automation Agent (PPAA) Initialized ---")
	fmt.Fprintf(l.out, "Model: %s\n", l.runner.Model())
	fmt.Fprintln(l.out, "Enter 'quit' or 'exit' to end the session.")
	header.Fprintln(l.out, "------------------------------------------------------------------")
	fmt.Fprintln(l.out)
}
