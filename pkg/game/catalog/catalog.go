// Package catalog holds the static room data: the room table, the upgrade chains between
// room types, and the lookup indices derived from them. A Catalog is built once at startup,
// validated, and shared read-only by everything that needs it.
package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/zyedidia/generic/mapset"
)

var (
	ErrEmptyRoom      = errors.New("room has no name or type")
	ErrDuplicateRoom  = errors.New("duplicate room name")
	ErrDuplicateChain = errors.New("duplicate upgrade chain")
	ErrUnknownType    = errors.New("upgrade chain for a type with no rooms")
	ErrUnknownTarget  = errors.New("upgrade target is not a room")
)

// Catalog is the validated, indexed room table.
type Catalog struct {
	rooms  []RoomDef
	byName map[string]int
	byType map[string][]int

	maxTier mapset.Set[string]

	chains   []Chain
	upgrades map[string][]string
	// upgraderTypes maps a room name to the types whose chains list it, in chain order.
	upgraderTypes map[string][]string
	// upgraders maps a room type to the names of rooms able to upgrade some room of it.
	upgraders map[string]mapset.Set[string]
}

// Default builds the catalog from the compiled-in tables.
func Default() (*Catalog, error) {
	return New(DefaultRooms, DefaultUpgrades)
}

// New validates rooms and chains and builds the lookup indices. Every defect found is
// reported, joined into one error.
func New(rooms []RoomDef, chains []Chain) (*Catalog, error) {
	c := &Catalog{
		rooms:         append([]RoomDef(nil), rooms...),
		byName:        make(map[string]int, len(rooms)),
		byType:        make(map[string][]int),
		maxTier:       mapset.New[string](),
		chains:        append([]Chain(nil), chains...),
		upgrades:      make(map[string][]string, len(chains)),
		upgraderTypes: make(map[string][]string),
		upgraders:     make(map[string]mapset.Set[string]),
	}

	var errs []error
	for i, r := range c.rooms {
		if r.Name == "" || r.Type == "" {
			errs = append(errs, fmt.Errorf("row %d: %w", i, ErrEmptyRoom))
			continue
		}
		if _, dup := c.byName[r.Name]; dup {
			errs = append(errs, fmt.Errorf("%q: %w", r.Name, ErrDuplicateRoom))
			continue
		}
		c.byName[r.Name] = i
		c.byType[r.Type] = append(c.byType[r.Type], i)
		if r.IsMaxTier {
			c.maxTier.Put(r.Name)
		}
	}

	for _, ch := range c.chains {
		if _, dup := c.upgrades[ch.Type]; dup {
			errs = append(errs, fmt.Errorf("%q: %w", ch.Type, ErrDuplicateChain))
			continue
		}
		if len(c.byType[ch.Type]) == 0 {
			errs = append(errs, fmt.Errorf("%q: %w", ch.Type, ErrUnknownType))
		}
		for _, target := range ch.Targets {
			if _, ok := c.byName[target]; !ok {
				errs = append(errs, fmt.Errorf("%q -> %q: %w", ch.Type, target, ErrUnknownTarget))
			}
		}
		c.upgrades[ch.Type] = ch.Targets
	}

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("invalid room catalog: %w", err)
	}

	c.buildReverseIndex()
	return c, nil
}

func (c *Catalog) buildReverseIndex() {
	for _, ch := range c.chains {
		upgraderNames := c.byType[ch.Type]
		for _, target := range ch.Targets {
			if !slices.Contains(c.upgraderTypes[target], ch.Type) {
				c.upgraderTypes[target] = append(c.upgraderTypes[target], ch.Type)
			}

			targetType := c.rooms[c.byName[target]].Type
			set, ok := c.upgraders[targetType]
			if !ok {
				set = mapset.New[string]()
				c.upgraders[targetType] = set
			}
			for _, i := range upgraderNames {
				set.Put(c.rooms[i].Name)
			}
		}
	}
}

// Rooms returns the room table in authored order. The slice must not be modified.
func (c *Catalog) Rooms() []RoomDef {
	return c.rooms
}

// Lookup returns the room with the exact given name.
func (c *Catalog) Lookup(name string) (RoomDef, bool) {
	i, ok := c.byName[name]
	if !ok {
		return RoomDef{}, false
	}
	return c.rooms[i], true
}

// Type returns the type of the named room.
func (c *Catalog) Type(name string) (string, bool) {
	r, ok := c.Lookup(name)
	return r.Type, ok
}

// IsMaxTier reports whether the named room cannot be upgraded further.
func (c *Catalog) IsMaxTier(name string) bool {
	return c.maxTier.Has(name)
}

// FirstOfType returns the first room in table order with the given type.
func (c *Catalog) FirstOfType(typ string) (RoomDef, bool) {
	idx := c.byType[typ]
	if len(idx) == 0 {
		return RoomDef{}, false
	}
	return c.rooms[idx[0]], true
}

// FindFold looks s up case-insensitively, first as a room name, then as a room type.
func (c *Catalog) FindFold(s string) (RoomDef, bool) {
	for _, r := range c.rooms {
		if strings.EqualFold(r.Name, s) {
			return r, true
		}
	}
	for _, r := range c.rooms {
		if strings.EqualFold(r.Type, s) {
			return r, true
		}
	}
	return RoomDef{}, false
}

// Upgrades returns the names of the rooms that rooms of type typ upgrade, in chain order.
func (c *Catalog) Upgrades(typ string) []string {
	return c.upgrades[typ]
}

// UpgraderTypes returns the types whose chains list the named room, in chain order.
func (c *Catalog) UpgraderTypes(name string) []string {
	return c.upgraderTypes[name]
}

// UpgradersOf returns the names of all rooms whose type upgrades at least one room of
// type typ. The returned set is shared and must not be modified.
func (c *Catalog) UpgradersOf(typ string) mapset.Set[string] {
	if set, ok := c.upgraders[typ]; ok {
		return set
	}
	return mapset.New[string]()
}
