package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"cavegen/pkg/engine/input"
)

// pollAction converts this frame's key and mouse presses into an action
func pollAction() input.Action {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return input.MapToAction("mouse_left")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		return input.MapToAction("r")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyKPEnter) {
		return input.MapToAction("enter")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return input.MapToAction("escape")
	}
	return input.ActionNone
}
