package pedestal

import (
	"cmp"
	"slices"

	"templewatch/pkg/engine/geom"
	"templewatch/pkg/engine/world"
)

// Progress summarizes one frame of the activation sequence.
type Progress struct {
	// Activated holds the activated pedestals ordered by activation sequence number.
	Activated []*Pedestal
	Total     int
	// Next is the queued pedestal that follows the last activation, if any.
	Next *Pedestal
}

// Count returns how many pedestals are activated.
func (pr Progress) Count() int { return len(pr.Activated) }

// Complete reports whether every tracked pedestal has been activated.
func (pr Progress) Complete() bool {
	return pr.Total > 0 && len(pr.Activated) == pr.Total
}

// LastSeq returns the highest activation sequence number, or 0.
func (pr Progress) LastSeq() int64 {
	if len(pr.Activated) == 0 {
		return 0
	}
	return pr.Activated[len(pr.Activated)-1].ActivatedSeq
}

// Update refreshes every pedestal from its live readout and computes the frame's progress.
func Update(peds []*Pedestal, cam world.Camera) Progress {
	for _, p := range peds {
		p.Update(cam)
	}
	return Summarize(peds)
}

// Summarize computes progress from already-updated pedestals.
func Summarize(peds []*Pedestal) Progress {
	pr := Progress{Total: len(peds)}
	for _, p := range peds {
		if p.State == Activated {
			pr.Activated = append(pr.Activated, p)
		}
	}
	slices.SortStableFunc(pr.Activated, func(a, b *Pedestal) int {
		return cmp.Compare(a.ActivatedSeq, b.ActivatedSeq)
	})
	pr.Next = NextUp(peds, pr.LastSeq())
	return pr
}

// NextUp returns the queued pedestal whose queue position directly follows lastSeq.
func NextUp(peds []*Pedestal, lastSeq int64) *Pedestal {
	for _, p := range peds {
		if p.State == Queued && p.QueuePosition == lastSeq+1 {
			return p
		}
	}
	return nil
}

// Link is a connection between two pedestals' screen centers.
type Link struct {
	From, To *Pedestal
}

// Chain rebuilds the activation chain from the counters alone: every queued-for pedestal
// links back to the pedestal whose activation number equals its queue position. Pedestals
// off screen at either end are skipped.
func Chain(peds []*Pedestal) []Link {
	var links []Link
	for _, p := range peds {
		if p.QueuePosition <= 0 || !p.OnScreen() {
			continue
		}
		for _, prev := range peds {
			if prev.ActivatedSeq == p.QueuePosition {
				if prev.OnScreen() {
					links = append(links, Link{From: prev, To: p})
				}
				break
			}
		}
	}
	return links
}

// Preview suggests the remaining path: from the most advanced pedestal already in the
// sequence through every untouched pedestal in ordinal order.
func Preview(peds []*Pedestal) []Link {
	var tip *Pedestal
	for _, p := range peds {
		if p.State == NotActivated {
			continue
		}
		if tip == nil || p.QueuePosition > tip.QueuePosition ||
			(p.QueuePosition == tip.QueuePosition && p.ActivatedSeq > tip.ActivatedSeq) {
			tip = p
		}
	}

	var rest []*Pedestal
	for _, p := range peds {
		if p.State == NotActivated {
			rest = append(rest, p)
		}
	}
	slices.SortStableFunc(rest, func(a, b *Pedestal) int {
		return cmp.Compare(a.Number, b.Number)
	})

	var links []Link
	cur := tip
	for _, next := range rest {
		if cur != nil && cur.OnScreen() && next.OnScreen() {
			links = append(links, Link{From: cur, To: next})
		}
		cur = next
	}
	return links
}

// Segment returns the screen endpoints of l.
func (l Link) Segment() (geom.Vec2, geom.Vec2) {
	return l.From.Screen, l.To.Screen
}
