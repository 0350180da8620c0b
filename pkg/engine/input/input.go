// Package input turns raw keyboard, mouse and line input into high-level
// actions shared by every front end.
package input

import (
	"bufio"
	"io"
	"os"
	"sort"
	"strings"
)

// Action represents a high-level intent of the person driving the viewer.
type Action int

const (
	ActionNone Action = iota
	ActionRegenerate
	ActionQuit
)

// bindings maps raw codes to actions. Multiple codes may point to the same
// Action.
var bindings = map[string]Action{
	// An empty line is a bare Enter press.
	"":           ActionRegenerate,
	"enter":      ActionRegenerate,
	"r":          ActionRegenerate,
	"regenerate": ActionRegenerate,
	"mouse_left": ActionRegenerate,

	"q":      ActionQuit,
	"quit":   ActionQuit,
	"escape": ActionQuit,
}

// MapToAction applies the bindings to a raw code. Codes are matched
// case-insensitively after trimming surrounding whitespace.
func MapToAction(code string) Action {
	if act, ok := bindings[strings.ToLower(strings.TrimSpace(code))]; ok {
		return act
	}
	return ActionNone
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionRegenerate:
		return "Regenerate"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// CodesFor returns the codes bound to an action in a stable order.
func CodesFor(a Action) []string {
	var codes []string
	for code, act := range bindings {
		if act == a && code != "" {
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)
	return codes
}

// LineReader reads line-based commands, one per Enter press.
type LineReader struct {
	r *bufio.Reader
}

// NewLineReader wraps r. A nil reader means stdin.
func NewLineReader(r io.Reader) *LineReader {
	if r == nil {
		r = os.Stdin
	}
	return &LineReader{r: bufio.NewReader(r)}
}

// ReadAction blocks for the next line and maps it to an action. At end of
// input it returns ActionQuit together with io.EOF.
func (l *LineReader) ReadAction() (Action, error) {
	line, err := l.r.ReadString('\n')
	if err != nil {
		if err == io.EOF && strings.TrimSpace(line) != "" {
			return MapToAction(line), nil
		}
		return ActionQuit, err
	}
	return MapToAction(strings.TrimRight(line, "\r\n")), nil
}
