package planner

import (
	"math"

	"github.com/backmassage/splitscreen/internal/config"
	"github.com/backmassage/splitscreen/internal/probe"
)

// Output canvas bounds (H.264 level-friendly, both axes forced even).
const (
	maxOutputWidth  = 1920
	maxOutputHeight = 1080
)

// PlanGeometry computes the canvas size and each input's scale/pad transform
// for the given layout.
//
// Each input is fitted independently into its half box preserving aspect
// ratio: the scale factor is min(boxW/srcW, boxH/srcH), clamped to 1 so a
// source is never enlarged beyond its native resolution. Scaled dimensions
// are rounded and then forced even (decrement), and the remainder of the box
// is split into symmetric black padding.
func PlanGeometry(meta1, meta2 probe.VideoMeta, layout config.Layout) (CanvasPlan, ScalePlan, ScalePlan, error) {
	if meta1.Width <= 0 || meta1.Height <= 0 {
		return CanvasPlan{}, ScalePlan{}, ScalePlan{}, &GeometryError{Input: InputVideo1, Width: meta1.Width, Height: meta1.Height}
	}
	if meta2.Width <= 0 || meta2.Height <= 0 {
		return CanvasPlan{}, ScalePlan{}, ScalePlan{}, &GeometryError{Input: InputVideo2, Width: meta2.Width, Height: meta2.Height}
	}

	box := HalfBoxFor(layout)
	s1 := fitToBox(meta1, box)
	s2 := fitToBox(meta2, box)

	return canvasFor(layout, box), s1, s2, nil
}

// HalfBoxFor returns the region one input occupies before composition:
// 960x1080 for side-by-side, 1920x540 for top-bottom. Both halves of the
// canvas are identical, so the full canvas is always 1920x1080.
func HalfBoxFor(layout config.Layout) HalfBox {
	if layout == config.LayoutTopBottom {
		return HalfBox{Width: maxOutputWidth, Height: evenDown(maxOutputHeight / 2)}
	}
	return HalfBox{Width: evenDown(maxOutputWidth / 2), Height: maxOutputHeight}
}

func canvasFor(layout config.Layout, box HalfBox) CanvasPlan {
	c := CanvasPlan{Width: box.Width * 2, Height: box.Height}
	if layout == config.LayoutTopBottom {
		c = CanvasPlan{Width: box.Width, Height: box.Height * 2}
	}
	if c.Width > maxOutputWidth {
		c.Width = evenDown(maxOutputWidth)
	}
	if c.Height > maxOutputHeight {
		c.Height = evenDown(maxOutputHeight)
	}
	return c
}

// fitToBox scales one source into the half box. A source that already
// matches the box exactly yields an identity ScalePlan (no pad offsets,
// target equals source), which the assembler turns into zero stages.
func fitToBox(m probe.VideoMeta, box HalfBox) ScalePlan {
	scale := math.Min(float64(box.Width)/float64(m.Width), float64(box.Height)/float64(m.Height))
	if scale > 1 {
		// Only scale when necessary: never enlarge beyond native resolution.
		scale = 1
	}

	tw := evenDown(int(math.Round(float64(m.Width) * scale)))
	th := evenDown(int(math.Round(float64(m.Height) * scale)))

	// Degenerate tiny sources still need a valid encoder dimension.
	if tw < 2 {
		tw = 2
	}
	if th < 2 {
		th = 2
	}

	return ScalePlan{
		TargetWidth:  tw,
		TargetHeight: th,
		PadLeft:      (box.Width - tw) / 2,
		PadTop:       (box.Height - th) / 2,
	}
}

// evenDown forces a dimension even by decrementing, as required by the
// H.264 encoder.
func evenDown(v int) int {
	if v%2 != 0 {
		return v - 1
	}
	return v
}
