// Package input turns key presses from the viewers into overlay control actions. Input is
// layered: a device emits RawInput, a Debouncer drops key repeats, and the bindings map
// what is left to an Intent.
package input

import (
	"sort"
	"strings"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
)

// Action is what a key asks the overlay to do.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionToggleOverlay
	ActionToggleCircles
	ActionToggleConnections
	ActionToggleNumbers
	ActionToggleRewards
	ActionToggleUpgradeLines
	ActionToggleMultiColor
	// ActionAreaChange simulates leaving the area: everything tracked is dropped.
	ActionAreaChange
	// ActionResweep feeds the scene's objects through the engine again.
	ActionResweep
	ActionCopy
)

// Intent is the high-level description of what the user wants.
type Intent struct {
	Action Action
}

// RawInput is emitted directly by a device. Code is a lowercase key name ("escape",
// "q", "f5").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is a RawInput that survived repeat suppression.
type DebouncedInput struct {
	Device Device
	Code   string
}

// DefaultRepeatWindow is how long a repeat of the same code is ignored.
const DefaultRepeatWindow = 150 * time.Millisecond

// Debouncer drops a code repeated within Window of its last accepted press.
type Debouncer struct {
	Window time.Duration
	last   map[string]time.Time
}

// NewDebouncer returns a debouncer with the given window; zero uses DefaultRepeatWindow.
func NewDebouncer(window time.Duration) *Debouncer {
	if window <= 0 {
		window = DefaultRepeatWindow
	}
	return &Debouncer{Window: window, last: make(map[string]time.Time)}
}

// Accept reports whether raw should be acted on.
func (d *Debouncer) Accept(raw RawInput) (DebouncedInput, bool) {
	code := strings.ToLower(raw.Code)
	if code == "" {
		return DebouncedInput{}, false
	}
	if prev, ok := d.last[code]; ok && raw.Timestamp.Sub(prev) < d.Window {
		return DebouncedInput{}, false
	}
	d.last[code] = raw.Timestamp
	return DebouncedInput{Device: raw.Device, Code: code}, true
}

// bindings maps codes to actions. Multiple codes may point to the same Action.
var bindings = map[string]Action{
	"q":      ActionQuit,
	"escape": ActionQuit,

	"o":     ActionToggleOverlay,
	"space": ActionToggleOverlay,

	"c": ActionToggleCircles,
	"l": ActionToggleConnections,
	"n": ActionToggleNumbers,
	"r": ActionToggleRewards,
	"u": ActionToggleUpgradeLines,
	"m": ActionToggleMultiColor,

	"a":  ActionAreaChange,
	"f5": ActionResweep,
	"s":  ActionResweep,

	"y": ActionCopy,
}

// MapToIntent applies the bindings to a debounced input.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionQuit:
		return "Quit"
	case ActionToggleOverlay:
		return "Toggle Overlay"
	case ActionToggleCircles:
		return "Toggle Circles"
	case ActionToggleConnections:
		return "Toggle Connections"
	case ActionToggleNumbers:
		return "Toggle Numbers"
	case ActionToggleRewards:
		return "Toggle Rewards"
	case ActionToggleUpgradeLines:
		return "Toggle Upgrade Lines"
	case ActionToggleMultiColor:
		return "Toggle Multi-Color Upgrades"
	case ActionAreaChange:
		return "Area Change"
	case ActionResweep:
		return "Resweep"
	case ActionCopy:
		return "Copy Listing"
	default:
		return "None"
	}
}

// BindingsByAction returns the bindings grouped by action, codes sorted.
func BindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
