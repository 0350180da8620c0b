// Package renderer holds the backend-neutral rendering surface: the mesh
// generator contract and the translated status text every backend shows.
package renderer

import (
	"errors"
	"fmt"

	"github.com/leonelquinteros/gotext"

	"cavegen/pkg/game/generator"
)

var (
	// ErrNoRenderer is returned when no backend has been registered.
	ErrNoRenderer = errors.New("no renderer configured")
	// ErrInvalidScale is returned for a non-positive scale.
	ErrInvalidScale = errors.New("scale must be positive")
	// ErrNilGrid is returned when asked to mesh nothing.
	ErrNilGrid = errors.New("grid is nil")
)

// Title returns the translated window and banner title
func Title() string {
	return gotext.Get("Cave Generator")
}

// StatusLines describes a finished map in the current language
func StatusLines(m *generator.Map) []string {
	if m == nil {
		return nil
	}
	mainSize := 0
	if mainRoom := m.MainRoom(); mainRoom != nil {
		mainSize = mainRoom.Size()
	}
	return []string{
		gotext.Get("Seed: %s", m.Seed),
		gotext.Get("Size: %d x %d", m.Config.Width, m.Config.Height),
		gotext.Get("Rooms: %d (main room %d tiles)", len(m.Rooms), mainSize),
		gotext.Get("Passages: %d", len(m.Passages)),
	}
}

// HelpLine tells the user how to regenerate or leave
func HelpLine() string {
	return gotext.Get("Enter or R: regenerate, Q: quit")
}

// ErrorMessage translates a generation failure into something to show the user
func ErrorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, generator.ErrNoSurvivingRooms):
		return gotext.Get("No room survived filtering; try a lower fill percentage or room threshold.")
	case errors.Is(err, generator.ErrUnreachableRoom):
		return gotext.Get("A room could not be connected to the main room.")
	case errors.Is(err, generator.ErrInvalidConfig):
		return gotext.Get("Invalid configuration: %v", err)
	default:
		return fmt.Sprintf("%s: %v", gotext.Get("Generation failed"), err)
	}
}
