package input

import (
	"io"
	"strings"
	"testing"
)

func TestMapToAction(t *testing.T) {
	cases := map[string]Action{
		"":           ActionRegenerate,
		"r":          ActionRegenerate,
		" R ":        ActionRegenerate,
		"mouse_left": ActionRegenerate,
		"q":          ActionQuit,
		"Quit":       ActionQuit,
		"escape":     ActionQuit,
		"x":          ActionNone,
	}
	for code, want := range cases {
		if got := MapToAction(code); got != want {
			t.Errorf("MapToAction(%q) = %v, want %v", code, got, want)
		}
	}
}

func TestActionName(t *testing.T) {
	if ActionName(ActionRegenerate) != "Regenerate" || ActionName(ActionQuit) != "Quit" || ActionName(ActionNone) != "None" {
		t.Error("unexpected action names")
	}
}

func TestCodesFor(t *testing.T) {
	got := strings.Join(CodesFor(ActionQuit), ",")
	if got != "escape,q,quit" {
		t.Errorf("CodesFor(ActionQuit) = %q", got)
	}
}

func TestLineReader(t *testing.T) {
	l := NewLineReader(strings.NewReader("\nr\r\nq\nlast"))
	want := []Action{ActionRegenerate, ActionRegenerate, ActionQuit, ActionNone}
	for i, w := range want {
		got, err := l.ReadAction()
		if err != nil {
			t.Fatalf("read %d: %v", i, err)
		}
		if got != w {
			t.Errorf("read %d = %v, want %v", i, got, w)
		}
	}
	got, err := l.ReadAction()
	if err != io.EOF || got != ActionQuit {
		t.Errorf("at EOF got (%v, %v), want (ActionQuit, io.EOF)", got, err)
	}
}
