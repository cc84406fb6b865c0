package ui

import "time"

// Screen layout in terminal cells.
const (
	// TrackMargin is the blank border left and right of the track.
	TrackMargin = 1

	// MinTrackHeight is the smallest track the cards still render in.
	MinTrackHeight = 3

	// ThumbHeight is the height of the thumbnail strip cards.
	ThumbHeight = 3

	// JournalHeight is the number of journal lines shown, borders excluded.
	JournalHeight = 8

	// CompactWidth is the width below which the header drops detail.
	CompactWidth = 70
)

// Journal limits.
const (
	// JournalLines is the number of log lines read per refresh.
	JournalLines = 200
)

// Timing constants.
const (
	// FrameInterval is the delay between animation frames.
	FrameInterval = time.Second / 60

	// JournalRefresh is the delay between journal reads while it is shown.
	JournalRefresh = 500 * time.Millisecond
)

// rect is a screen region.
type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// screenLayout places the panels for a terminal size.
type screenLayout struct {
	header   rect
	track    rect
	progress rect
	thumbs   rect
	journal  rect
	footer   rect
}

// computeLayout stacks header, track, progress bar, thumbnails, journal and
// footer. The track takes what is left, capped at the tallest card.
func computeLayout(width, height, tallest int, thumbs, journal bool) screenLayout {
	var l screenLayout
	inner := max(width-2*TrackMargin, 1)

	fixed := 1 + 1 + 1 + 1 // header, gap, progress, footer
	if thumbs {
		fixed += ThumbHeight + 1
	}
	if journal {
		fixed += JournalHeight + 2
	}
	trackH := max(min(height-fixed, tallest), MinTrackHeight)

	y := 0
	l.header = rect{0, y, width, 1}
	y += 2
	l.track = rect{TrackMargin, y, inner, trackH}
	y += trackH
	l.progress = rect{TrackMargin, y, inner, 1}
	y++
	if thumbs {
		y++
		l.thumbs = rect{TrackMargin, y, inner, ThumbHeight}
		y += ThumbHeight
	}
	if journal {
		l.journal = rect{0, y, width, JournalHeight + 2}
		y += JournalHeight + 2
	}
	l.footer = rect{0, max(y, height-1), width, 1}
	return l
}
