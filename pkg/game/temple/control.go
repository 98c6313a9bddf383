package temple

import (
	"templewatch/pkg/engine/input"
	"templewatch/pkg/engine/world"
)

// Handle applies a control action. Objects is what the host currently reports, used to
// resweep. It returns false for actions the engine does not own (quit, copy).
func (e *Engine) Handle(a input.Action, objects []world.Object) bool {
	s := e.settings
	switch a {
	case input.ActionToggleOverlay:
		s.Enable = !s.Enable
	case input.ActionToggleCircles:
		s.ShowCircles = !s.ShowCircles
	case input.ActionToggleConnections:
		s.ShowConnections = !s.ShowConnections
	case input.ActionToggleNumbers:
		s.ShowNumbers = !s.ShowNumbers
	case input.ActionToggleRewards:
		s.ShowRewards = !s.ShowRewards
	case input.ActionToggleUpgradeLines:
		s.ShowUpgradeLines = !s.ShowUpgradeLines
	case input.ActionToggleMultiColor:
		s.UseMultiColorUpgrades = !s.UseMultiColorUpgrades
	case input.ActionAreaChange:
		e.AreaChanged()
	case input.ActionResweep:
		e.tracked.Reset()
		e.Initialise(objects)
	default:
		return false
	}
	e.log.Debug("control", "action", input.ActionName(a))
	return true
}
