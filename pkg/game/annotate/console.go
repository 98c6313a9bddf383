package annotate

import (
	"image/color"
	"regexp"
	"strings"

	"github.com/leonelquinteros/gotext"

	"templewatch/pkg/engine/geom"
	"templewatch/pkg/engine/palette"
	"templewatch/pkg/engine/ui"
	"templewatch/pkg/game/catalog"
	"templewatch/pkg/game/tiles"
	"templewatch/pkg/game/upgrade"
)

var (
	addRoomPattern      = regexp.MustCompile(`Use to add Room:\s+([^\r\n]+)`)
	unknownAddedRoom    = palette.Orange
	defaultCardTextTint = palette.White
)

// TileIndex is what the console pass needs from the tile cache.
type TileIndex interface {
	upgrade.Presence
	Lookup(id ui.ID) (tiles.Entry, bool)
}

// ConsoleFrame is the input of the temple console overlay for one frame. The tile index
// must already be refreshed.
type ConsoleFrame struct {
	Panel  ui.Element
	Tiles  TileIndex
	Window geom.Rect
}

// cardLine is one text line drawn beside a room card. target names the room whose tiles
// the line connects to; empty means no connector.
type cardLine struct {
	text   string
	color  color.NRGBA
	target string
}

// Console composes the temple console overlay: tile labels, room card details with
// upgrade connectors, and medallion card hints. A panel without the expected sections
// yields nothing for those sections.
func (c *Composer) Console(f ConsoleFrame) []Annotation {
	if ui.IsNil(f.Panel) || f.Tiles == nil {
		return nil
	}
	grid, ok := c.layout.Find(f.Panel, ui.RoleTiles)
	if !ok {
		return nil
	}
	tileList := grid.Children()

	cards := c.roomCards(f.Panel)
	res := c.assigner.Assign(cardNames(cards), f.Tiles, c.settings.UseMultiColorUpgrades)

	hidden := c.settings.AutoHideOnHover && hoveringRoom(tileList, f.Tiles)

	var out []Annotation
	anchors := make(map[string][]geom.Vec2)
	for _, tile := range tileList {
		if ui.IsNil(tile) || !tile.IsVisible() {
			continue
		}
		e, ok := f.Tiles.Lookup(tile.ID())
		if !ok {
			continue
		}
		upColor, isTarget := res.TargetColor(e.ID)
		if e.Generic() && !isTarget {
			continue
		}
		col := e.Color
		if isTarget {
			col = upColor
		}
		text := e.Label
		if e.Destabilizes {
			text += gotext.Get(" (1-Use)")
		}

		rect := tile.Rect()
		size := c.size(text, consoleScale)
		pos := geom.V(rect.Center().X-size.X/2, rect.Bottom()-tileLabelLift)
		back := geom.R(pos.X-labelPad, pos.Y-labelPad, size.X+2*labelPad, size.Y+2*labelPad)
		if !hidden {
			out = append(out, Box(back, labelBackdrop), Text(text, pos, col, consoleScale))
		}
		if isTarget {
			anchors[e.ID] = append(anchors[e.ID], geom.V(back.Left(), back.Center().Y))
		}
	}

	out = c.cardDetails(out, cards, res, f.Tiles, anchors, hidden)
	out = c.medallionCards(out, f.Panel, f.Window)
	return out
}

// hoveringRoom reports whether the pointer rests on a tile showing a meaningful room.
func hoveringRoom(tileList []ui.Element, idx TileIndex) bool {
	for _, tile := range tileList {
		if ui.IsNil(tile) || !tile.IsVisible() || !tile.Hovered() || ui.IsNil(tile.Tooltip()) {
			continue
		}
		if e, ok := idx.Lookup(tile.ID()); ok && !e.Generic() {
			return true
		}
	}
	return false
}

type roomCard struct {
	el   ui.Element
	name string
}

// roomCards lists the visible room cards that carry a title.
func (c *Composer) roomCards(panel ui.Element) []roomCard {
	container, ok := c.layout.Find(panel, ui.RoleRoomCards)
	if !ok {
		return nil
	}
	var cards []roomCard
	for _, card := range container.Children() {
		if ui.IsNil(card) || !card.IsVisible() {
			continue
		}
		title, ok := c.layout.Find(card, ui.RoleCardTitle)
		if !ok {
			continue
		}
		name := strings.TrimSpace(title.Text())
		if name == "" {
			continue
		}
		cards = append(cards, roomCard{el: card, name: name})
	}
	return cards
}

func cardNames(cards []roomCard) []string {
	names := make([]string, len(cards))
	for i, rc := range cards {
		names[i] = rc.name
	}
	return names
}

// cardLines lists what to say about one room card.
func (c *Composer) cardLines(name string, res upgrade.Result, present upgrade.Presence) []cardLine {
	var lines []cardLine
	room, known := c.rooms.Lookup(name)
	if !known {
		return nil
	}
	if room.Label != "" {
		lines = append(lines, cardLine{text: room.Label, color: room.Color})
	}
	if typeColor, ok := res.TypeColors[room.Type]; ok {
		for _, target := range c.assigner.PresentTargets(room.Type, present) {
			lines = append(lines, cardLine{
				text:   gotext.Get("Upgrades: %s", target),
				color:  typeColor,
				target: target,
			})
		}
	}
	if typ, ok := c.assigner.PresentUpgrader(name, present); ok {
		lines = append(lines, cardLine{
			text:  gotext.Get("Upgraded by: %s", typ),
			color: c.assigner.UpgraderColor(res, typ),
		})
	}
	return lines
}

// cardDetails stacks each card's lines to its right, vertically centered on the card, and
// connects upgrade lines to the anchors of their target tiles.
func (c *Composer) cardDetails(out []Annotation, cards []roomCard, res upgrade.Result, present upgrade.Presence, anchors map[string][]geom.Vec2, hidden bool) []Annotation {
	drawConnectors := c.settings.ShowUpgradeLines && !hidden
	for _, rc := range cards {
		lines := c.cardLines(rc.name, res, present)
		if len(lines) == 0 {
			continue
		}
		sizes := make([]geom.Vec2, len(lines))
		var total float32
		for i, l := range lines {
			sizes[i] = c.size(l.text, consoleScale)
			total += sizes[i].Y + labelPad
		}
		total -= labelPad

		rect := rc.el.Rect()
		y := rect.Center().Y - total/2
		x := rect.Right() + cardGap
		for i, l := range lines {
			var back geom.Rect
			out, back = labelAt(out, l.text, geom.V(x, y), sizes[i], l.color, labelBackdrop, consoleScale, labelPad)
			if drawConnectors && l.target != "" {
				from := geom.V(back.Right(), back.Center().Y)
				for _, to := range anchors[l.target] {
					out = append(out, Line(from, to, upgradeLineW, palette.WithAlpha(l.color, upgradeLineA)))
				}
			}
			y += sizes[i].Y + labelPad
		}
	}
	return out
}

// medallionCards labels each medallion card with what it does, to the right of the card
// or to its left when the label would leave the window.
func (c *Composer) medallionCards(out []Annotation, panel ui.Element, window geom.Rect) []Annotation {
	container, ok := c.layout.Find(panel, ui.RoleMedallionCards)
	if !ok {
		return out
	}
	for _, card := range container.Children() {
		if ui.IsNil(card) || !card.IsVisible() {
			continue
		}
		text := ui.CollectText(card)
		if tip := card.Tooltip(); !ui.IsNil(tip) {
			text += "\n" + ui.CollectText(tip)
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		desc, col, ok := c.describeMedallion(text)
		if !ok {
			continue
		}

		rect := card.Rect()
		size := c.size(desc, consoleScale)
		pos := geom.V(rect.Right()+cardGap, rect.Center().Y-size.Y/2)
		if !window.Empty() && pos.X+size.X > window.W-windowMargin {
			pos.X = rect.Left() - cardGap - size.X
		}
		out, _ = labelAt(out, desc, pos, size, col, labelBackdrop, consoleScale, labelPad)
	}
	return out
}

// describeMedallion explains a medallion card: the room it adds, else the effect of the
// first medallion it names.
func (c *Composer) describeMedallion(text string) (string, color.NRGBA, bool) {
	if m := addRoomPattern.FindStringSubmatch(text); m != nil {
		name := strings.TrimSpace(m[1])
		col := unknownAddedRoom
		if r, ok := c.rooms.FindFold(name); ok {
			col = r.Color
		}
		return gotext.Get("Adds: %s", name), col, true
	}
	if m, ok := catalog.MedallionIn(c.medallions, text); ok {
		return dynamicGet(m.Description), m.Color, true
	}
	return "", defaultCardTextTint, false
}
