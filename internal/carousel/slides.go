package carousel

import (
	"slices"
	"sort"

	"github.com/five82/glide/internal/event"
)

// SlideRecord describes one rendered slide. Clones carry negative indices
// (head) or indices at or past the real count (tail).
type SlideRecord struct {
	Index      int
	SlideIndex int
	IsClone    bool
	// CloneOf is the real index a clone copies, or -1.
	CloneOf int
}

// Real returns the index of the real slide the record shows.
func (r SlideRecord) Real() int {
	if r.IsClone {
		return r.CloneOf
	}
	return r.Index
}

// Slides keeps the ordered record set, clones included.
type Slides struct {
	s       *Slider
	records []SlideRecord
	lookup  map[int]int
	active  int
}

func (sl *Slides) setup() {
	sl.active = -1
	sl.build()
}

// build recreates the real records from the slider's natural sizes and drops
// every clone.
func (sl *Slides) build() {
	sl.records = sl.records[:0]
	for i := range sl.s.sizes {
		sl.records = append(sl.records, SlideRecord{Index: i, CloneOf: -1})
	}
	sl.reindex()
}

func (sl *Slides) register(recs ...SlideRecord) {
	sl.records = append(sl.records, recs...)
	sl.reindex()
}

func (sl *Slides) reindex() {
	sort.SliceStable(sl.records, func(i, j int) bool {
		return sl.records[i].Index < sl.records[j].Index
	})
	sl.lookup = make(map[int]int, len(sl.records))
	for pos := range sl.records {
		sl.records[pos].SlideIndex = pos
		sl.lookup[sl.records[pos].Index] = pos
	}
}

func (sl *Slides) mount() {
	scope := sl.s.scope("slides")
	listen(scope, EventMove, func(MoveEvent) {
		if sl.s.opts.UpdateOnMove {
			sl.update()
		}
	})
	listen(scope, EventMoved, func(MoveEvent) { sl.update() })
	listen(scope, EventScrolled, func(event.None) { sl.update() })
	sl.update()
}

// update marks the slide at the controller index active and emits the
// change.
func (sl *Slides) update() {
	next := sl.s.Controller.Index()
	if next == sl.active || len(sl.s.sizes) == 0 {
		return
	}
	prev := sl.active
	sl.active = next
	if rec, ok := sl.At(prev); ok && prev >= 0 {
		emit(sl.s, EventInactive, rec)
	}
	if rec, ok := sl.At(next); ok {
		emit(sl.s, EventActive, rec)
	}
}

// Active returns the index of the slide currently marked active, or -1.
func (sl *Slides) Active() int {
	return sl.active
}

// IsActive reports whether a record shows the active slide. Clones count
// only when clones of the active slide are highlighted too.
func (sl *Slides) IsActive(r SlideRecord) bool {
	return r.Real() == sl.active
}

// Len returns the number of records, or of real slides with excludeClones.
func (sl *Slides) Len(excludeClones bool) int {
	if excludeClones {
		return len(sl.s.sizes)
	}
	return len(sl.records)
}

// Get returns a copy of the records in DOM order.
func (sl *Slides) Get(excludeClones bool) []SlideRecord {
	if !excludeClones {
		return slices.Clone(sl.records)
	}
	out := make([]SlideRecord, 0, len(sl.s.sizes))
	for _, r := range sl.records {
		if !r.IsClone {
			out = append(out, r)
		}
	}
	return out
}

// At returns the record with the given index.
func (sl *Slides) At(index int) (SlideRecord, bool) {
	pos, ok := sl.lookup[index]
	if !ok {
		return SlideRecord{}, false
	}
	return sl.records[pos], true
}

// position returns the DOM position of index.
func (sl *Slides) position(index int) (int, bool) {
	pos, ok := sl.lookup[index]
	return pos, ok
}

// InPage returns the records shown on page.
func (sl *Slides) InPage(page int) []SlideRecord {
	c := sl.s.Controller
	index := c.ToIndex(page)
	span := sl.s.opts.PerPage
	if c.HasFocus() {
		span = 1
	}
	var out []SlideRecord
	for _, r := range sl.records {
		if between(r.Index, index, index+span-1, false) {
			out = append(out, r)
		}
	}
	return out
}

// IsEnough reports whether there are more slides than fit on one page.
func (sl *Slides) IsEnough() bool {
	return sl.Len(false) > sl.s.opts.PerPage
}

// IsVisible reports whether the record with index lies fully inside the
// track. For fade sliders only the active slide is visible.
func (sl *Slides) IsVisible(index int) bool {
	if sl.s.Is(TypeFade) {
		rec, ok := sl.At(index)
		return ok && sl.IsActive(rec)
	}
	if _, ok := sl.At(index); !ok {
		return false
	}
	l := sl.s.Layout
	start := l.SlideOffset(index)
	end := start + l.SlideSize(index, true)
	return start >= -0.5 && end <= l.TrackSize()+0.5
}

// Add inserts slides with the given natural sizes before index at. An
// out-of-range at appends.
func (sl *Slides) Add(at int, sizes ...Size) {
	if len(sizes) == 0 {
		return
	}
	if at < 0 || at > len(sl.s.sizes) {
		at = len(sl.s.sizes)
	}
	sl.s.sizes = slices.Insert(slices.Clone(sl.s.sizes), at, sizes...)
	sl.s.Refresh()
}

// Remove deletes the real slides at the given indices.
func (sl *Slides) Remove(indices ...int) {
	drop := make(map[int]bool, len(indices))
	for _, i := range indices {
		drop[i] = true
	}
	kept := make([]Size, 0, len(sl.s.sizes))
	for i, size := range sl.s.sizes {
		if !drop[i] {
			kept = append(kept, size)
		}
	}
	if len(kept) == len(sl.s.sizes) {
		return
	}
	sl.s.sizes = kept
	sl.active = -1
	sl.s.Refresh()
}
