// Package upgrade colors upgrade relationships between the room cards on offer and the
// rooms already placed in the temple, so a card and the tiles it would upgrade share a tint.
package upgrade

import (
	"image/color"

	"templewatch/pkg/engine/palette"
	"templewatch/pkg/game/catalog"
)

// Palette is cycled through in first-seen type order when multi-color mode is on.
var Palette = []color.NRGBA{
	palette.LightGreen,
	palette.Cyan,
	palette.Yellow,
	palette.Magenta,
	palette.Orange,
	palette.Pink,
}

// SingleColor is used for every type when multi-color mode is off.
var SingleColor = palette.LightGreen

// fallbackUpgraderColor tints "Upgraded by" for a type with no card color and no rooms.
var fallbackUpgraderColor = palette.Yellow

// Presence answers whether rooms are currently placed in the temple.
type Presence interface {
	HasRoom(name string) bool
	HasType(typ string) bool
}

// Result is one frame's color assignment.
type Result struct {
	// TypeColors maps each upgrader type seen on a card to its color.
	TypeColors map[string]color.NRGBA
	// TargetColors maps present, non-max-tier target rooms to the color of the first type
	// that claimed them.
	TargetColors map[string]color.NRGBA
}

// TargetColor returns the color assigned to a target room.
func (r Result) TargetColor(name string) (color.NRGBA, bool) {
	c, ok := r.TargetColors[name]
	return c, ok
}

// Assigner computes Results against a catalog.
type Assigner struct {
	rooms *catalog.Catalog
}

// NewAssigner returns an assigner over rooms.
func NewAssigner(rooms *catalog.Catalog) *Assigner {
	return &Assigner{rooms: rooms}
}

// Assign walks the card room names in UI order. Names not in the catalog are skipped.
// The palette advances once per newly seen type, and a target keeps the first color
// written to it.
func (a *Assigner) Assign(cards []string, present Presence, multiColor bool) Result {
	res := Result{
		TypeColors:   make(map[string]color.NRGBA),
		TargetColors: make(map[string]color.NRGBA),
	}
	next := 0
	for _, name := range cards {
		typ, ok := a.rooms.Type(name)
		if !ok {
			continue
		}
		c, seen := res.TypeColors[typ]
		if !seen {
			c = SingleColor
			if multiColor {
				c = Palette[next%len(Palette)]
			}
			res.TypeColors[typ] = c
			next++
		}
		for _, target := range a.PresentTargets(typ, present) {
			if _, taken := res.TargetColors[target]; !taken {
				res.TargetColors[target] = c
			}
		}
	}
	return res
}

// PresentTargets returns the rooms that typ upgrades which are placed and can still be
// upgraded, in chain order.
func (a *Assigner) PresentTargets(typ string, present Presence) []string {
	var out []string
	for _, target := range a.rooms.Upgrades(typ) {
		if present.HasRoom(target) && !a.rooms.IsMaxTier(target) {
			out = append(out, target)
		}
	}
	return out
}

// PresentUpgrader returns the first type, in chain order, that upgrades the named room and
// has at least one room placed.
func (a *Assigner) PresentUpgrader(name string, present Presence) (string, bool) {
	for _, typ := range a.rooms.UpgraderTypes(name) {
		if present.HasType(typ) {
			return typ, true
		}
	}
	return "", false
}

// UpgraderColor picks the color for an "Upgraded by" line: the type's card color when it
// has one this frame, else the color of its first catalog room.
func (a *Assigner) UpgraderColor(res Result, typ string) color.NRGBA {
	if c, ok := res.TypeColors[typ]; ok {
		return c
	}
	if r, ok := a.rooms.FirstOfType(typ); ok {
		return r.Color
	}
	return fallbackUpgraderColor
}
