package cli

import (
	"bufio"
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"task-manager/internal/config"
	"task-manager/internal/services"
	"task-manager/internal/validation"
)

// maxLineBytes bounds one line of typed input. Descriptions are TEXT, so
// the limit is generous; a longer line is discarded and reported.
const maxLineBytes = 1 << 20

// App represents the interactive menu application
type App struct {
	service       services.TaskService
	config        *config.Config
	taskValidator *validation.TaskValidator
	input         *bufio.Reader
	output        io.Writer
	registry      *CommandRegistry
	errorHandler  *ErrorHandler
}

// NewApp creates a menu application reading choices from in and writing
// everything the user sees to out.
func NewApp(service services.TaskService, cfg *config.Config, in io.Reader, out io.Writer) *App {
	app := &App{
		service:       service,
		config:        cfg,
		taskValidator: validation.NewTaskValidator(cfg),
		input:         bufio.NewReader(in),
		output:        out,
		errorHandler:  NewErrorHandler(),
	}
	app.registry = NewCommandRegistry(app)
	return app
}

// Run shows the menu and dispatches choices until the user exits or input
// ends. Failed actions are reported and the loop carries on.
func (a *App) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		a.println(a.registry.Menu())
		choice, err := a.prompt(a.registry.Prompt())
		if err == nil {
			a.println()
			err = a.registry.Execute(ctx, choice)
		}

		var readErr *readError
		switch {
		case err == nil:
		case stderrors.Is(err, errExit), stderrors.Is(err, io.EOF), stderrors.As(err, &readErr):
			return a.finish(err)
		default:
			a.errorHandler.Report(a.output, err)
		}
	}
}

func (a *App) finish(err error) error {
	if stderrors.Is(err, io.EOF) {
		a.println()
	}
	if stderrors.Is(err, errExit) || stderrors.Is(err, io.EOF) {
		a.println("Goodbye.")
		return nil
	}
	return fmt.Errorf("failed to read input: %w", err)
}

// prompt prints label and reads one trimmed line. io.EOF signals the end of
// input; an over-long line is a validation error and the session goes on.
func (a *App) prompt(label string) (string, error) {
	fmt.Fprint(a.output, label)
	line, err := a.readLine()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// readLine returns the next line without its terminator. A final line with
// no newline is still returned; io.EOF comes only when nothing is left.
func (a *App) readLine() (string, error) {
	var buf bytes.Buffer
	tooLong := false
	for {
		chunk, err := a.input.ReadSlice('\n')
		if !tooLong {
			if buf.Len()+len(chunk) > maxLineBytes+1 {
				tooLong = true
				buf.Reset()
			} else {
				buf.Write(chunk)
			}
		}

		switch {
		case err == nil:
			if tooLong {
				return "", validation.NewInputTooLongError(maxLineBytes)
			}
			return strings.TrimSuffix(strings.TrimSuffix(buf.String(), "\n"), "\r"), nil
		case stderrors.Is(err, bufio.ErrBufferFull):
			continue
		case stderrors.Is(err, io.EOF):
			if tooLong {
				return "", validation.NewInputTooLongError(maxLineBytes)
			}
			if buf.Len() == 0 {
				return "", io.EOF
			}
			return buf.String(), nil
		default:
			return "", &readError{err: err}
		}
	}
}

// readError marks a failure of the input stream itself, which ends the
// session.
type readError struct {
	err error
}

func (e *readError) Error() string { return e.err.Error() }
func (e *readError) Unwrap() error { return e.err }

func (a *App) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.output, format, args...)
}

func (a *App) println(args ...interface{}) {
	fmt.Fprintln(a.output, args...)
}
