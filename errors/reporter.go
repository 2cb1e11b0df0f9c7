package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Level is the severity of a diagnostic.
type Level string

const (
	Error   Level = "error"
	Warning Level = "warning"
	Note    Level = "note"
	Help    Level = "help"
)

// CompilerError is a structured diagnostic: an error code, a message,
// and an optional source position for the script frontend.
type CompilerError struct {
	Level    Level
	Code     string
	Message  string
	Position Position
	Length   int
	Notes    []string
	HelpText string
}

func (e *CompilerError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s[%s]: %s", e.Level, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Level, e.Message)
}

// New builds a plain error-level CompilerError with no source position.
func New(code, message string) *CompilerError {
	return &CompilerError{Level: Error, Code: code, Message: message}
}

// At attaches a source position and span length.
func (e *CompilerError) At(pos Position, length int) *CompilerError {
	e.Position = pos
	e.Length = length
	return e
}

// WithNote appends a note line to the diagnostic.
func (e *CompilerError) WithNote(note string) *CompilerError {
	e.Notes = append(e.Notes, note)
	return e
}

// WithHelp sets the diagnostic's help text.
func (e *CompilerError) WithHelp(help string) *CompilerError {
	e.HelpText = help
	return e
}

// Reporter renders CompilerErrors against a source file, Rust-style,
// using github.com/fatih/color the way the teacher's CLI renders
// parse errors with a caret under the offending column.
type Reporter struct {
	filename string
	lines    []string
}

// NewReporter builds a reporter for filename/source. source may be
// empty when there is no script text (programmatic-API errors).
func NewReporter(filename, source string) *Reporter {
	return &Reporter{filename: filename, lines: strings.Split(source, "\n")}
}

// Format renders err as a multi-line diagnostic string.
func (r *Reporter) Format(err *CompilerError) string {
	var b strings.Builder

	levelColor := r.levelColor(err.Level)
	dim := color.New(color.Faint).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	if err.Code != "" {
		fmt.Fprintf(&b, "%s[%s]: %s\n", levelColor(string(err.Level)), err.Code, err.Message)
	} else {
		fmt.Fprintf(&b, "%s: %s\n", levelColor(string(err.Level)), err.Message)
	}

	if !err.Position.HasPosition() {
		for _, note := range err.Notes {
			fmt.Fprintf(&b, "  %s %s\n", color.New(color.FgBlue).Sprint("note:"), note)
		}
		if err.HelpText != "" {
			fmt.Fprintf(&b, "  %s %s\n", color.New(color.FgGreen).Sprint("help:"), err.HelpText)
		}
		return b.String()
	}

	width := r.lineNumberWidth(err.Position.Line)
	indent := strings.Repeat(" ", width)

	fmt.Fprintf(&b, "%s %s %s:%s\n", indent, dim("-->"), r.filename, err.Position)
	fmt.Fprintf(&b, "%s %s\n", indent, dim("│"))

	if err.Position.Line > 0 && err.Position.Line <= len(r.lines) {
		line := r.lines[err.Position.Line-1]
		fmt.Fprintf(&b, "%s %s %s\n", bold(fmt.Sprintf("%*d", width, err.Position.Line)), dim("│"), line)
		fmt.Fprintf(&b, "%s %s %s\n", indent, dim("│"), r.marker(err.Position.Column, err.Length))
	}

	for _, note := range err.Notes {
		fmt.Fprintf(&b, "%s %s %s %s\n", indent, dim("│"), color.New(color.FgBlue).Sprint("note:"), note)
	}
	if err.HelpText != "" {
		fmt.Fprintf(&b, "%s %s %s %s\n", indent, dim("│"), color.New(color.FgGreen).Sprint("help:"), err.HelpText)
	}

	return b.String()
}

func (r *Reporter) levelColor(level Level) func(...interface{}) string {
	switch level {
	case Error:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	case Warning:
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	case Note:
		return color.New(color.FgBlue, color.Bold).SprintFunc()
	case Help:
		return color.New(color.FgGreen, color.Bold).SprintFunc()
	default:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	}
}

func (r *Reporter) marker(column, length int) string {
	if length <= 0 {
		length = 1
	}
	lead := column - 1
	if lead < 0 {
		lead = 0
	}
	markerColor := color.New(color.FgRed, color.Bold).SprintFunc()
	return strings.Repeat(" ", lead) + markerColor(strings.Repeat("^", length))
}

func (r *Reporter) lineNumberWidth(line int) int {
	width := len(fmt.Sprintf("%d", line))
	if width < 3 {
		return 3
	}
	return width
}
