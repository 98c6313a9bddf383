// Package tracker keeps the set of world objects the overlay cares about: numbered
// pedestals, the sequencing altar, and reward benches. It is fed by the host's
// appear/disappear notifications and cleared on area change.
package tracker

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"templewatch/pkg/engine/world"
	"templewatch/pkg/game/catalog"
	"templewatch/pkg/game/pedestal"
)

// Metadata patterns used to classify objects.
const (
	PedestalPrefix = "Metadata/MiscellaneousObjects/LeagueIncursionNew/IncursionPedestalCrystal_"
	AltarMarker    = "IncursionPedestalEncounter"
	BenchPrefix    = "Metadata/MiscellaneousObjects/LeagueIncursionNew/IncursionBench"
)

// Reward is a tracked reward bench.
type Reward struct {
	Object world.Object
	Info   catalog.Reward
}

// Set holds the tracked objects of the current area.
type Set struct {
	rewardTable map[string]catalog.Reward
	log         *slog.Logger

	tracked   mapset.Set[world.ObjectID]
	pedestals []*pedestal.Pedestal
	rewards   []Reward
	altar     world.Object
}

// New returns an empty set that resolves bench suffixes with rewards.
func New(rewards map[string]catalog.Reward, logger *slog.Logger) *Set {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Set{rewardTable: rewards, log: logger, tracked: mapset.New[world.ObjectID]()}
}

// Appeared classifies o and starts tracking it if it is one of the known kinds. Anything
// unrecognized or malformed is ignored.
func (s *Set) Appeared(o world.Object) {
	if o == nil {
		return
	}
	meta := o.Metadata()
	if meta == "" {
		return
	}

	switch {
	case strings.HasPrefix(meta, PedestalPrefix):
		n, ok := pedestalNumber(meta)
		if !ok {
			s.log.Debug("ignoring pedestal with malformed ordinal", "metadata", meta)
			return
		}
		s.pedestals = append(s.pedestals, &pedestal.Pedestal{Object: o, Number: n})
	case strings.Contains(meta, AltarMarker):
		if s.altar != nil {
			s.tracked.Remove(s.altar.ID())
		}
		s.altar = o
	case strings.HasPrefix(meta, BenchPrefix):
		suffix := strings.TrimPrefix(meta, BenchPrefix)
		info, ok := s.rewardTable[suffix]
		if !ok {
			s.log.Debug("ignoring unknown reward bench", "suffix", suffix)
			return
		}
		s.rewards = append(s.rewards, Reward{Object: o, Info: info})
	default:
		return
	}
	s.tracked.Put(o.ID())
}

// pedestalNumber extracts the integer after the last underscore.
func pedestalNumber(meta string) (int, bool) {
	i := strings.LastIndexByte(meta, '_')
	if i < 0 {
		return 0, false
	}
	n, err := strconv.Atoi(meta[i+1:])
	if err != nil {
		return 0, false
	}
	return n, true
}

// Disappeared stops tracking every entry whose identity matches o.
func (s *Set) Disappeared(o world.Object) {
	if o == nil {
		return
	}
	id := o.ID()
	if !s.tracked.Has(id) {
		return
	}
	s.tracked.Remove(id)

	peds := s.pedestals[:0]
	for _, p := range s.pedestals {
		if p.Object.ID() != id {
			peds = append(peds, p)
		}
	}
	clear(s.pedestals[len(peds):])
	s.pedestals = peds

	rewards := s.rewards[:0]
	for _, r := range s.rewards {
		if r.Object.ID() != id {
			rewards = append(rewards, r)
		}
	}
	clear(s.rewards[len(rewards):])
	s.rewards = rewards

	if s.altar != nil && s.altar.ID() == id {
		s.altar = nil
	}
}

// Reset forgets everything; called on area change.
func (s *Set) Reset() {
	s.tracked = mapset.New[world.ObjectID]()
	s.pedestals = nil
	s.rewards = nil
	s.altar = nil
}

// Len returns the number of tracked objects.
func (s *Set) Len() int { return s.tracked.Size() }

// Pedestals returns the tracked pedestals in arrival order.
func (s *Set) Pedestals() []*pedestal.Pedestal { return s.pedestals }

// Rewards returns the tracked reward benches in arrival order.
func (s *Set) Rewards() []Reward { return s.rewards }

// Altar returns the sequencing altar, if one is present.
func (s *Set) Altar() (world.Object, bool) {
	return s.altar, s.altar != nil
}
