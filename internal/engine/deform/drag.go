// Package deform applies weighted drag displacement to a live position
// buffer against a snapshotted base pose.
package deform

import "github.com/Faultbox/meshedit/pkg/math"

// minWeight is the influence below which a vertex is treated as unselected.
const minWeight = 0.001

// Drag owns the base-pose snapshot of one in-progress drag. Only one drag
// may be active per mesh; BeginDrag for a new one discards the prior
// snapshot. The drag never picks a base-pose policy itself: a fixed pose
// keeps the snapshot from drag start, a dynamic pose calls Rebase each frame
// so incremental deltas stack on the already-deformed shape.
type Drag struct {
	snapshot []float32
}

// BeginDrag snapshots the position buffer at drag start.
func BeginDrag(positions []float32) *Drag {
	d := &Drag{snapshot: make([]float32, len(positions))}
	copy(d.snapshot, positions)
	return d
}

// Snapshot exposes the base pose, e.g. to recompute weights against the
// original shape. Callers must not mutate it.
func (d *Drag) Snapshot() []float32 {
	return d.snapshot
}

// Rebase rolls the snapshot forward to the current positions.
func (d *Drag) Rebase(positions []float32) {
	if d.snapshot == nil {
		return
	}
	copy(d.snapshot, positions)
}

// Apply writes the dragged pose into positions. With a weight field every
// vertex gets snapshot + delta*weight (weights below minWeight restore the
// snapshot); without one, only the seed vertices receive the full delta.
func (d *Drag) Apply(positions []float32, weights []float32, delta math.Vec3, seeds []int) {
	if d.snapshot == nil {
		return
	}

	if weights == nil {
		copy(positions, d.snapshot)
		for _, v := range seeds {
			math.FromSlice(d.snapshot, v).Add(delta).ToSlice(positions, v)
		}
		return
	}

	vertexCount := len(positions) / 3
	for v := 0; v < vertexCount; v++ {
		base := math.FromSlice(d.snapshot, v)
		if w := weights[v]; w > minWeight {
			base = base.Add(delta.Scale(w))
		}
		base.ToSlice(positions, v)
	}
}

// End finishes the drag and releases the snapshot.
func (d *Drag) End() {
	d.snapshot = nil
}
