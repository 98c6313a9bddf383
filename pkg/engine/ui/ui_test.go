package ui

import (
	"strings"
	"testing"
)

func TestCollectText_DepthFirst(t *testing.T) {
	root := &Node{Label: "a", Kids: []*Node{
		{Label: "b", Kids: []*Node{{Label: "c"}}},
		{Label: ""},
		{Label: "d"},
	}}
	if got, want := CollectText(root), "a\nb\nc\nd\n"; got != want {
		t.Errorf("CollectText = %q, want %q", got, want)
	}
}

func TestCollectText_DepthCap(t *testing.T) {
	// Build a chain deeper than the cap; only the first MaxTextDepth+1 levels are read.
	root := &Node{Label: "0"}
	cur := root
	for i := 1; i <= MaxTextDepth+5; i++ {
		next := &Node{Label: "x"}
		cur.Kids = []*Node{next}
		cur = next
	}
	got := strings.Count(CollectText(root), "\n")
	if got != MaxTextDepth+1 {
		t.Errorf("CollectText read %d levels, want %d", got, MaxTextDepth+1)
	}
}

func TestCollectText_Nil(t *testing.T) {
	var n *Node
	if got := CollectText(n); got != "" {
		t.Errorf("CollectText(nil node) = %q, want empty", got)
	}
	if got := CollectText(nil); got != "" {
		t.Errorf("CollectText(nil) = %q, want empty", got)
	}
}

func TestResolve(t *testing.T) {
	leaf := &Node{Label: "leaf"}
	root := &Node{Kids: []*Node{{}, {Kids: []*Node{{}, {}, leaf}}}}

	if got, ok := Resolve(root, Path{1, 2}); !ok || got.Text() != "leaf" {
		t.Errorf("Resolve({1,2}) = %v, %v; want leaf", got, ok)
	}
	for _, p := range []Path{{2}, {1, 3}, {0, 0}, {-1}} {
		if _, ok := Resolve(root, p); ok {
			t.Errorf("Resolve(%v) ok = true, want false", p)
		}
	}
}

func TestLayoutFind(t *testing.T) {
	kids := make([]*Node, 12)
	for i := range kids {
		kids[i] = &Node{}
	}
	tiles := &Node{Label: "tiles"}
	kids[5] = tiles
	panel := &Node{Kids: kids}

	got, ok := TempleConsoleLayout.Find(panel, RoleTiles)
	if !ok || got != Element(tiles) {
		t.Errorf("Find(RoleTiles) = %v, %v; want tiles container", got, ok)
	}
	// Child 9 exists but has no grandchildren, so the card container is absent.
	if _, ok := TempleConsoleLayout.Find(panel, RoleRoomCards); ok {
		t.Error("Find(RoleRoomCards) ok = true on a panel without cards")
	}
	if _, ok := TempleConsoleLayout.Find(panel, Role(99)); ok {
		t.Error("Find(unknown role) ok = true")
	}
}

func TestAssignIDs(t *testing.T) {
	root := &Node{Tip: &Node{}, Kids: []*Node{{NodeID: 50}, {}}}
	next := root.AssignIDs(1)
	if root.NodeID != 1 || root.Tip.NodeID != 2 || root.Kids[0].NodeID != 50 || root.Kids[1].NodeID != 3 {
		t.Errorf("ids = %d %d %d %d", root.NodeID, root.Tip.NodeID, root.Kids[0].NodeID, root.Kids[1].NodeID)
	}
	if next != 4 {
		t.Errorf("next = %d, want 4", next)
	}
}
