package dirty

import (
	"sort"

	"github.com/joshuapare/schemakit/pkg/types"
)

// defaultRangeCapacity is the pre-allocated capacity for per-object marks.
const defaultRangeCapacity = 16

// Range represents a dirty byte range relative to the object base.
type Range struct {
	Off int64
	Len int64
}

// Tracker records dirty marks per object handle.
//
// NOT thread-safe. Only one goroutine should use it at a time.
type Tracker struct {
	marks       map[types.Handle][]Range
	calls       int
	granularity int64
}

// NewTracker creates a tracker. granularity <= 0 selects byte granularity.
func NewTracker(granularity int) *Tracker {
	if granularity <= 0 {
		granularity = 1
	}
	return &Tracker{
		marks:       make(map[types.Handle][]Range),
		granularity: int64(granularity),
	}
}

// SetStateChanged implements schema.StateMarker. It records one byte at
// offset as dirty for obj.
func (t *Tracker) SetStateChanged(obj types.Handle, offset int32) {
	t.Add(obj, int(offset), 1)
}

// Add records a dirty range for obj.
func (t *Tracker) Add(obj types.Handle, off, length int) {
	rs, ok := t.marks[obj]
	if !ok {
		rs = make([]Range, 0, defaultRangeCapacity)
	}
	t.marks[obj] = append(rs, Range{Off: int64(off), Len: int64(length)})
	t.calls++
}

// Calls returns the total number of marks across all objects.
func (t *Tracker) Calls() int { return t.calls }

// Count returns the number of marks recorded against obj.
func (t *Tracker) Count(obj types.Handle) int { return len(t.marks[obj]) }

// Marked reports whether any mark of obj covers offset.
func (t *Tracker) Marked(obj types.Handle, offset int32) bool {
	off := int64(offset)
	for _, r := range t.marks[obj] {
		if off >= r.Off && off < r.Off+r.Len {
			return true
		}
	}
	return false
}

// Objects returns the handles with at least one mark, sorted.
func (t *Tracker) Objects() []types.Handle {
	out := make([]types.Handle, 0, len(t.marks))
	for h := range t.marks {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Reset clears all marks.
func (t *Tracker) Reset() {
	clear(t.marks)
	t.calls = 0
}

// DebugMarks returns the raw, uncoalesced marks of obj (for testing/debugging).
func (t *Tracker) DebugMarks(obj types.Handle) []Range {
	result := make([]Range, len(t.marks[obj]))
	copy(result, t.marks[obj])
	return result
}

// Ranges returns the coalesced dirty ranges of obj: aligned to the
// granularity, sorted, and merged when overlapping or adjacent.
func (t *Tracker) Ranges(obj types.Handle) []Range {
	marks := t.marks[obj]
	if len(marks) == 0 {
		return nil
	}

	g := t.granularity
	aligned := make([]Range, len(marks))
	for i, r := range marks {
		// Round down start
		start := floorDiv(r.Off, g) * g

		// Round up end
		end := r.Off + r.Len
		if rem := end - floorDiv(end, g)*g; rem != 0 {
			end += g - rem
		}

		aligned[i] = Range{Off: start, Len: end - start}
	}

	sort.Slice(aligned, func(i, j int) bool {
		return aligned[i].Off < aligned[j].Off
	})

	merged := make([]Range, 0, len(aligned))
	current := aligned[0]
	for _, next := range aligned[1:] {
		if next.Off <= current.Off+current.Len {
			end := current.Off + current.Len
			if nextEnd := next.Off + next.Len; nextEnd > end {
				end = nextEnd
			}
			current.Len = end - current.Off
			continue
		}
		merged = append(merged, current)
		current = next
	}
	return append(merged, current)
}

// floorDiv divides rounding toward negative infinity so negative offsets
// (chain-relative marks) align the same way positive ones do.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
