// Package tiles identifies the room behind each tile of the temple layout grid from its
// tooltip text, and caches the result per tile so the analysis runs about once a second
// instead of every frame.
package tiles

import (
	"image/color"
	"regexp"
	"strings"

	"templewatch/pkg/engine/palette"
	"templewatch/pkg/engine/ui"
	"templewatch/pkg/game/catalog"
)

// UniqueID is the Entry.ID of tiles that hold a unique item rather than a catalog room.
const UniqueID = "Unique"

const uniqueMarker = "Contains Unique Item:"

var (
	uniqueNamePattern  = regexp.MustCompile(`<unique>\{(.*?)\}`)
	destabilizeMarkers = []string{"Destabilises", "IncursionDestabilization"}
	uniqueDisplayColor = palette.Orange
)

// Entry is what the analyzer learned about one tile.
type Entry struct {
	// ID is the catalog room name, or UniqueID.
	ID    string
	Label string
	Color color.NRGBA
	// Destabilizes is set when the tooltip warns the room is consumed on use.
	Destabilizes bool
}

// Generic reports whether the entry is a filler room with nothing worth labelling.
func (e Entry) Generic() bool {
	return e.Color == catalog.GenericColor && e.Label == ""
}

// Analyzer turns tooltip subtrees into entries.
type Analyzer struct {
	rooms *catalog.Catalog
}

// NewAnalyzer returns an analyzer matching against rooms.
func NewAnalyzer(rooms *catalog.Catalog) *Analyzer {
	return &Analyzer{rooms: rooms}
}

// Analyze reads all text under tooltip and identifies the tile. ok is false when nothing
// in the text is recognized.
func (a *Analyzer) Analyze(tooltip ui.Element) (Entry, bool) {
	return a.AnalyzeText(ui.CollectText(tooltip))
}

// AnalyzeText is Analyze over already collected text.
func (a *Analyzer) AnalyzeText(text string) (Entry, bool) {
	if text == "" {
		return Entry{}, false
	}

	if strings.Contains(text, uniqueMarker) {
		if m := uniqueNamePattern.FindStringSubmatch(text); m != nil {
			return Entry{
				ID:           UniqueID,
				Label:        m[1],
				Color:        uniqueDisplayColor,
				Destabilizes: destabilizes(text),
			}, true
		}
	}

	for _, r := range a.rooms.Rooms() {
		if strings.Contains(text, r.Name) {
			return Entry{
				ID:           r.Name,
				Label:        r.Label,
				Color:        r.Color,
				Destabilizes: destabilizes(text),
			}, true
		}
	}
	return Entry{}, false
}

func destabilizes(text string) bool {
	for _, m := range destabilizeMarkers {
		if strings.Contains(text, m) {
			return true
		}
	}
	return false
}
