package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/arcade/ecs/component"
)

const stickDeadzone = 0.3

var keyBindings = []struct {
	action component.Action
	keys   []ebiten.Key
}{
	{component.ActionUp, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
	{component.ActionDown, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}},
	{component.ActionLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{component.ActionRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
	{component.ActionFire, []ebiten.Key{ebiten.KeySpace, ebiten.KeyJ}},
	{component.ActionConfirm, []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter}},
}

// readActions snapshots keyboard and first-gamepad state. The engine
// derives presses from consecutive snapshots.
func readActions() component.Actions {
	var actions component.Actions
	for _, b := range keyBindings {
		for _, k := range b.keys {
			if ebiten.IsKeyPressed(k) {
				actions = actions.With(b.action)
				break
			}
		}
	}

	gamepads := ebiten.AppendGamepadIDs(nil)
	if len(gamepads) == 0 {
		return actions
	}
	id := gamepads[0]
	if !ebiten.IsStandardGamepadLayoutAvailable(id) {
		return actions
	}

	x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
	y := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
	switch {
	case x < -stickDeadzone || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftLeft):
		actions = actions.With(component.ActionLeft)
	case x > stickDeadzone || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftRight):
		actions = actions.With(component.ActionRight)
	}
	switch {
	case y < -stickDeadzone || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftTop):
		actions = actions.With(component.ActionUp)
	case y > stickDeadzone || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftBottom):
		actions = actions.With(component.ActionDown)
	}
	if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom) {
		actions = actions.With(component.ActionFire)
	}
	if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonCenterRight) {
		actions = actions.With(component.ActionConfirm)
	}
	return actions
}
