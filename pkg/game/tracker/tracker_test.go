package tracker

import (
	"testing"

	"templewatch/pkg/engine/world"
	"templewatch/pkg/game/catalog"
)

func newSet() *Set {
	return New(catalog.DefaultRewards, nil)
}

func ent(id world.ObjectID, meta string) *world.Entity {
	return &world.Entity{EntityID: id, Path: meta}
}

func TestAppeared_Classification(t *testing.T) {
	s := newSet()
	s.Appeared(ent(1, PedestalPrefix+"3"))
	s.Appeared(ent(2, "Metadata/Something/"+AltarMarker+"Big"))
	s.Appeared(ent(3, BenchPrefix+"Regal"))
	s.Appeared(ent(4, "Metadata/Monsters/Zombie"))
	s.Appeared(ent(5, ""))

	if len(s.Pedestals()) != 1 || s.Pedestals()[0].Number != 3 {
		t.Errorf("Pedestals() = %v, want one pedestal numbered 3", s.Pedestals())
	}
	if a, ok := s.Altar(); !ok || a.ID() != 2 {
		t.Errorf("Altar() = %v, %v; want object 2", a, ok)
	}
	if len(s.Rewards()) != 1 || s.Rewards()[0].Info.Title != "Regal Bench" {
		t.Errorf("Rewards() = %v, want Regal Bench", s.Rewards())
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
}

func TestAppeared_IgnoresMalformed(t *testing.T) {
	s := newSet()
	s.Appeared(ent(1, PedestalPrefix+"x"))
	s.Appeared(ent(2, PedestalPrefix))
	s.Appeared(ent(3, BenchPrefix+"NoSuchBench"))

	if len(s.Pedestals()) != 0 || len(s.Rewards()) != 0 || s.Len() != 0 {
		t.Errorf("malformed objects tracked: %d pedestals, %d rewards", len(s.Pedestals()), len(s.Rewards()))
	}
}

func TestDisappeared(t *testing.T) {
	s := newSet()
	p1 := ent(1, PedestalPrefix+"1")
	p2 := ent(2, PedestalPrefix+"2")
	altar := ent(3, AltarMarker)
	bench := ent(4, BenchPrefix+"Doctor")
	for _, e := range []*world.Entity{p1, p2, altar, bench} {
		s.Appeared(e)
	}

	s.Disappeared(p1)
	if len(s.Pedestals()) != 1 || s.Pedestals()[0].Number != 2 {
		t.Errorf("after removing p1, Pedestals() = %v", s.Pedestals())
	}

	s.Disappeared(altar)
	if _, ok := s.Altar(); ok {
		t.Error("altar still tracked after Disappeared")
	}

	s.Disappeared(bench)
	if len(s.Rewards()) != 0 {
		t.Error("bench still tracked after Disappeared")
	}

	// Untracked identities are a no-op.
	s.Disappeared(ent(99, "anything"))
	s.Disappeared(nil)
	if len(s.Pedestals()) != 1 {
		t.Errorf("untracked removal changed pedestals: %v", s.Pedestals())
	}
}

func TestReset(t *testing.T) {
	s := newSet()
	s.Appeared(ent(1, PedestalPrefix+"1"))
	s.Appeared(ent(2, AltarMarker))
	s.Appeared(ent(3, BenchPrefix+"Regal"))

	s.Reset()
	if len(s.Pedestals()) != 0 || len(s.Rewards()) != 0 || s.Len() != 0 {
		t.Error("Reset left tracked objects")
	}
	if _, ok := s.Altar(); ok {
		t.Error("Reset left the altar")
	}
}
