package annotate

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/leonelquinteros/gotext"

	"templewatch/pkg/engine/geom"
	"templewatch/pkg/engine/palette"
	"templewatch/pkg/engine/ui"
	"templewatch/pkg/engine/world"
	"templewatch/pkg/game/catalog"
	"templewatch/pkg/game/pedestal"
	"templewatch/pkg/game/tracker"
)

// medallionMarker marks ground labels worth framing.
const medallionMarker = "Medallion"

var defaultMedallionFrame = palette.Aqua

// WorldFrame is the input of the in-world overlay for one frame. Pedestals must already
// be updated against Camera.
type WorldFrame struct {
	Camera       world.Camera
	Pedestals    []*pedestal.Pedestal
	Progress     pedestal.Progress
	Altar        world.Object
	Rewards      []tracker.Reward
	GroundLabels []ui.Element
}

// World composes the in-world overlay: pedestal circles, connections and numbers while
// the sequence is incomplete, the altar counter, and reward and medallion highlights.
func (c *Composer) World(f WorldFrame) []Annotation {
	s := c.settings
	var out []Annotation

	if !f.Progress.Complete() {
		if s.ShowCircles {
			out = c.circles(out, f.Pedestals)
		}
		if s.ShowConnections {
			out = c.connections(out, f.Pedestals)
		}
		if s.ShowNumbers {
			out = c.numbers(out, f.Pedestals, f.Progress.Next)
		}
	}

	out = c.counter(out, f)

	if s.ShowRewards {
		out = c.rewards(out, f.Rewards, f.Camera)
		out = c.groundMedallions(out, f.GroundLabels)
	}
	return out
}

func (c *Composer) stateColor(st pedestal.State) color.NRGBA {
	switch st {
	case pedestal.Activated:
		return c.settings.ActivatedColor.NRGBA
	case pedestal.Queued:
		return c.settings.QueuedColor.NRGBA
	default:
		return c.settings.NotActivatedColor.NRGBA
	}
}

func (c *Composer) circles(out []Annotation, peds []*pedestal.Pedestal) []Annotation {
	s := c.settings
	for _, p := range peds {
		if !p.OnScreen() {
			continue
		}
		pts := geom.Circle(p.Screen, s.CircleRadius, s.CircleSegments)
		out = Polyline(out, pts, float32(s.CircleThickness), c.stateColor(p.State))
	}
	return out
}

func (c *Composer) connections(out []Annotation, peds []*pedestal.Pedestal) []Annotation {
	s := c.settings
	for _, l := range pedestal.Chain(peds) {
		out = c.connect(out, l, s.ActivatedColor.NRGBA)
	}
	for _, l := range pedestal.Preview(peds) {
		out = c.connect(out, l, s.NotActivatedColor.NRGBA)
	}
	return out
}

// connect draws l between the circle edges, bent by the arc multiplier.
func (c *Composer) connect(out []Annotation, l pedestal.Link, col color.NRGBA) []Annotation {
	s := c.settings
	a, b := l.Segment()
	from, to, ok := geom.ClipEdges(a, b, s.CircleRadius)
	if !ok {
		return out
	}
	return Polyline(out, geom.Arc(from, to, s.ArcMultiplier, arcSteps), float32(s.CircleThickness), col)
}

func (c *Composer) numberText(p, next *pedestal.Pedestal) string {
	switch p.State {
	case pedestal.Activated:
		return strconv.FormatInt(p.ActivatedSeq, 10)
	case pedestal.Queued:
		if p == next {
			return gotext.Get("NEXT")
		}
		return gotext.Get("Q%d", p.QueuePosition)
	default:
		return strconv.Itoa(p.Number)
	}
}

func (c *Composer) numbers(out []Annotation, peds []*pedestal.Pedestal, next *pedestal.Pedestal) []Annotation {
	s := c.settings
	for _, p := range peds {
		if !p.OnScreen() {
			continue
		}
		text := c.numberText(p, next)
		size := c.size(text, s.NumberScale)
		pos := geom.V(p.Screen.X-size.X/2, p.Screen.Y-(s.CircleRadius+size.Y+numberGap))

		fg, bg := s.NumberColor.NRGBA, numberBackdrop
		if p == next {
			fg, bg = s.NextUpColor.NRGBA, nextBackdrop
		}
		out, _ = labelAt(out, text, pos, size, fg, bg, s.NumberScale, numberPad)
	}
	return out
}

// counter labels the altar with the sequence progress.
func (c *Composer) counter(out []Annotation, f WorldFrame) []Annotation {
	if f.Altar == nil || f.Camera == nil {
		return out
	}
	at := f.Camera.WorldToScreen(f.Altar.Pos())
	if at.IsZero() {
		return out
	}

	text := gotext.Get("Incursion: %d/%d", f.Progress.Count(), f.Progress.Total)
	fg := palette.White
	if f.Progress.Complete() {
		text = gotext.Get("COMPLETE")
		fg = palette.LimeGreen
	}
	size := c.size(text, 1)
	pos := at.Sub(size.Scale(0.5))
	out, _ = labelAt(out, text, pos, size, fg, counterBackdrop, 1, counterPad)
	return out
}

func (c *Composer) rewards(out []Annotation, rewards []tracker.Reward, cam world.Camera) []Annotation {
	if cam == nil {
		return out
	}
	s := c.settings
	scale := s.RewardTextScale
	for _, r := range rewards {
		o := r.Object
		if o == nil || !o.IsValid() || !o.IsTargetable() {
			continue
		}
		at := cam.WorldToScreen(o.Pos())
		if at.IsZero() {
			continue
		}

		title := dynamicGet(r.Info.Title)
		titleSize := c.size(title, scale)
		titlePos := geom.V(at.X-titleSize.X/2, at.Y-rewardLift)
		out, _ = labelAt(out, title, titlePos, titleSize, s.RewardTitleColor.NRGBA, rewardBackdrop, scale, labelPad)

		desc := dynamicGet(r.Info.Description)
		descSize := c.size(desc, scale)
		descPos := geom.V(at.X-descSize.X/2, titlePos.Y+titleSize.Y+labelPad)
		out, _ = labelAt(out, desc, descPos, descSize, s.RewardDescColor.NRGBA, rewardBackdrop, scale, labelPad)
	}
	return out
}

// groundMedallions frames item labels on the ground that name a medallion.
func (c *Composer) groundMedallions(out []Annotation, labels []ui.Element) []Annotation {
	for _, l := range labels {
		if ui.IsNil(l) || !l.IsVisible() {
			continue
		}
		text := ui.CollectText(l)
		if !strings.Contains(text, medallionMarker) {
			continue
		}
		col := defaultMedallionFrame
		if m, ok := catalog.MedallionIn(c.medallions, text); ok {
			col = m.Color
		}
		out = append(out, Frame(l.Rect(), col, medallionFrame))
	}
	return out
}
