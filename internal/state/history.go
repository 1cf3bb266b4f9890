package state

// DefaultHistorySize is the number of undo steps kept when no size is given.
const DefaultHistorySize = 50

// History keeps linear undo/redo stacks of CanvasState snapshots on top of a
// Store. A new edit discards the redo branch.
type History struct {
	store   *Store
	past    []CanvasState
	future  []CanvasState
	maxSize int
}

// NewHistory wraps store. A maxSize below one selects DefaultHistorySize.
func NewHistory(store *Store, maxSize int) *History {
	if maxSize < 1 {
		maxSize = DefaultHistorySize
	}
	return &History{store: store, maxSize: maxSize}
}

// Store returns the store whose state is being tracked.
func (h *History) Store() *Store {
	return h.store
}

// SaveToHistory records the current state as the next undo target and clears
// the redo stack.
func (h *History) SaveToHistory() {
	h.pushPast(h.store.Current().Clone())
	h.future = nil
}

// Undo restores the most recent snapshot. It reports false when there is
// nothing to undo.
func (h *History) Undo() bool {
	n := len(h.past)
	if n == 0 {
		return false
	}
	previous := h.past[n-1]
	h.past = h.past[:n-1]

	future := make([]CanvasState, 0, len(h.future)+1)
	future = append(future, h.store.Current())
	h.future = append(future, h.future...)

	h.store.Replace(previous)
	return true
}

// Redo re-applies the first snapshot of the redo stack. It reports false when
// there is nothing to redo.
func (h *History) Redo() bool {
	if len(h.future) == 0 {
		return false
	}
	next := h.future[0]
	h.future = h.future[1:]
	if len(h.future) == 0 {
		h.future = nil
	}

	h.pushPast(h.store.Current())
	h.store.Replace(next)
	return true
}

func (h *History) CanUndo() bool { return len(h.past) > 0 }
func (h *History) CanRedo() bool { return len(h.future) > 0 }

func (h *History) PastLen() int   { return len(h.past) }
func (h *History) FutureLen() int { return len(h.future) }
func (h *History) MaxSize() int   { return h.maxSize }

func (h *History) pushPast(cs CanvasState) {
	past := append(h.past, cs)
	if over := len(past) - h.maxSize; over > 0 {
		past = append([]CanvasState(nil), past[over:]...)
	}
	h.past = past
}
