package ui

// Path is a sequence of child indices leading from a root element to a descendant.
type Path []int

// Resolve follows p from root. It fails on the first missing or nil child rather than
// panicking, so an unexpected UI shape only costs the caller that one lookup.
func Resolve(root Element, p Path) (Element, bool) {
	if IsNil(root) {
		return nil, false
	}
	cur := root
	for _, i := range p {
		next, ok := Child(cur, i)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// Role names a logical section of a panel that the host only exposes positionally.
type Role int

const (
	// RoleTiles is the container whose children are the room tiles of the layout grid.
	RoleTiles Role = iota
	// RoleRoomCards is the container of room cards offered for placement.
	RoleRoomCards
	// RoleMedallionCards is the container of medallion cards.
	RoleMedallionCards
	// RoleCardTitle is the room-name text inside a single room card (relative to the card).
	RoleCardTitle
)

// Layout maps roles to positions. When the host layout shifts, this table is the only
// thing that changes.
type Layout map[Role]Path

// TempleConsoleLayout is the positional layout of the temple console panel.
var TempleConsoleLayout = Layout{
	RoleTiles:          {5},
	RoleRoomCards:      {9, 2},
	RoleMedallionCards: {11, 2},
	RoleCardTitle:      {3},
}

// Find resolves role r from root. Unknown roles resolve to nothing.
func (l Layout) Find(root Element, r Role) (Element, bool) {
	p, ok := l[r]
	if !ok {
		return nil, false
	}
	return Resolve(root, p)
}
