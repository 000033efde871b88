package transcript

// MinQuoteTokens is the smallest selection span that can become a quote.
// Shorter drags are treated as accidental and discarded.
const MinQuoteTokens = 3

// SelectionState tracks where a drag selection is in its lifecycle.
type SelectionState int

const (
	SelectionIdle SelectionState = iota
	SelectionDragging
	SelectionReady
)

// Point is a pointer position, used to distinguish clicks from drags.
type Point struct {
	X float64
	Y float64
}

// Range is an inclusive token index range.
type Range struct {
	Start int
	End   int
}

// Span returns the number of tokens the range covers.
func (r Range) Span() int {
	return r.End - r.Start + 1
}

// SelectionEngine implements drag-to-select over a token sequence. Events
// arrive as pointer down, enter, and up over token indexes; the engine
// normalizes backwards drags and rejects selections below MinQuoteTokens.
// It is not safe for concurrent use.
type SelectionEngine struct {
	tokenCount int
	state      SelectionState
	anchor     int
	current    Range
	anchorPos  Point
	moved      bool
}

// NewSelectionEngine returns an engine over a sequence of tokenCount tokens.
func NewSelectionEngine(tokenCount int) *SelectionEngine {
	return &SelectionEngine{tokenCount: tokenCount, state: SelectionIdle}
}

// State reports the engine's current lifecycle state.
func (e *SelectionEngine) State() SelectionState {
	return e.state
}

// Current returns the selection range so far and whether one exists.
func (e *SelectionEngine) Current() (Range, bool) {
	if e.state == SelectionIdle {
		return Range{}, false
	}
	return e.current, true
}

// PointerDown anchors a new drag at token index i. Indexes outside the
// sequence are ignored.
func (e *SelectionEngine) PointerDown(i int, pos Point) {
	if i < 0 || i >= e.tokenCount {
		return
	}
	e.state = SelectionDragging
	e.anchor = i
	e.current = Range{Start: i, End: i}
	e.anchorPos = pos
	e.moved = false
}

// PointerEnter extends the drag to token index j. Entering a token before
// the anchor swaps the endpoints so Start <= End always holds.
func (e *SelectionEngine) PointerEnter(j int) {
	if e.state != SelectionDragging {
		return
	}
	if j < 0 || j >= e.tokenCount {
		return
	}
	if j != e.anchor {
		e.moved = true
	}
	if j < e.anchor {
		e.current = Range{Start: j, End: e.anchor}
	} else {
		e.current = Range{Start: e.anchor, End: j}
	}
}

// PointerUp finishes the drag. It reports whether a selection is ready for
// extraction and whether the gesture was a plain click that should seek
// playback instead.
func (e *SelectionEngine) PointerUp(pos Point) (ready, seek bool) {
	if e.state != SelectionDragging {
		return false, false
	}
	if !e.moved && pos == e.anchorPos {
		e.reset()
		return false, true
	}
	if e.current.Span() >= MinQuoteTokens {
		e.state = SelectionReady
		return true, false
	}
	e.reset()
	return false, false
}

// Extract consumes a ready selection, returning its range and resetting the
// engine. It reports false when no selection is ready.
func (e *SelectionEngine) Extract() (Range, bool) {
	if e.state != SelectionReady {
		return Range{}, false
	}
	r := e.current
	e.reset()
	return r, true
}

// Cancel abandons any in-progress or ready selection.
func (e *SelectionEngine) Cancel() {
	e.reset()
}

func (e *SelectionEngine) reset() {
	e.state = SelectionIdle
	e.anchor = 0
	e.current = Range{}
	e.anchorPos = Point{}
	e.moved = false
}
