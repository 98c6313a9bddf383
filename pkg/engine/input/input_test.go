package input

import (
	"testing"
	"time"
)

func TestDebouncer(t *testing.T) {
	d := NewDebouncer(100 * time.Millisecond)
	t0 := time.Unix(0, 0)

	steps := []struct {
		code   string
		at     time.Duration
		accept bool
	}{
		{"Q", 0, true},
		{"q", 50 * time.Millisecond, false},
		{"o", 60 * time.Millisecond, true},
		{"q", 100 * time.Millisecond, true},
		{"", 500 * time.Millisecond, false},
	}
	for i, s := range steps {
		ev, ok := d.Accept(RawInput{Device: DeviceKeyboard, Code: s.code, Timestamp: t0.Add(s.at)})
		if ok != s.accept {
			t.Errorf("step %d (%q): accepted = %v, want %v", i, s.code, ok, s.accept)
		}
		if ok && ev.Code == "Q" {
			t.Errorf("step %d: code not lowercased", i)
		}
	}
}

func TestMapToIntent(t *testing.T) {
	tests := []struct {
		code string
		want Action
	}{
		{"escape", ActionQuit},
		{"space", ActionToggleOverlay},
		{"u", ActionToggleUpgradeLines},
		{"f5", ActionResweep},
		{"z", ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := MapToIntent(DebouncedInput{Code: tt.code}).Action; got != tt.want {
				t.Errorf("MapToIntent(%q) = %s, want %s", tt.code, ActionName(got), ActionName(tt.want))
			}
		})
	}
}

func TestBindingsByAction(t *testing.T) {
	keys := BindingsByAction()
	if got := keys[ActionQuit]; len(got) != 2 || got[0] != "escape" || got[1] != "q" {
		t.Errorf("quit bindings = %v, want [escape q]", got)
	}
	if got := keys[ActionResweep]; len(got) != 2 || got[0] != "f5" || got[1] != "s" {
		t.Errorf("resweep bindings = %v, want [f5 s]", got)
	}
	if _, ok := keys[ActionNone]; ok {
		t.Error("ActionNone has bindings")
	}
	for a, codes := range keys {
		for _, code := range codes {
			if got := MapToIntent(DebouncedInput{Code: code}).Action; got != a {
				t.Errorf("%q listed under %s but maps to %s", code, ActionName(a), ActionName(got))
			}
		}
	}
}
