// Package diff computes the edit script between two lists that are only
// accessible through an index based comparison Callback.
//
// The engine follows the classic Myers shortest edit script on item identity,
// checks content equality for every matched pair and optionally pairs removals
// with insertions of the same identity into moves.
package diff

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Realm is the logging realm of this package.
const Realm = "diff"

var ErrInvalidCallback = errors.New("invalid diff callback")

// Callback gives the engine access to the two lists.
// Implementations must not mutate either list while a diff is calculated.
type Callback interface {
	// OldSize is the number of items in the old list.
	OldSize() int
	// NewSize is the number of items in the new list.
	NewSize() int
	// SameIdentity reports whether two items refer to the same logical entity.
	SameIdentity(oldIndex, newIndex int) bool
	// SameContent reports whether two items with the same identity render identically.
	// It is only called for pairs for which SameIdentity returned true.
	SameContent(oldIndex, newIndex int) bool
}

// Op is the kind of an edit.
type Op int

const (
	// Keep retains an old item at its new index unchanged.
	Keep Op = iota
	// Update retains an old item whose content changed.
	Update
	// Remove drops an old item.
	Remove
	// Insert adds a new item.
	Insert
	// Move relocates an old item to a non-adjacent new index.
	Move
)

func (o Op) String() string {
	switch o {
	case Keep:
		return "keep"
	case Update:
		return "update"
	case Remove:
		return "remove"
	case Insert:
		return "insert"
	case Move:
		return "move"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// Edit relates an item of the old list to an item of the new list.
// OldIndex is -1 for Insert, NewIndex is -1 for Remove.
type Edit struct {
	Op       Op
	OldIndex int
	NewIndex int
	// Changed is set when the content of a kept or moved item differs.
	Changed bool
}

// Options configure Calculate.
type Options struct {
	DetectMoves bool
}

type Option func(*Options)

// WithDetectMoves enables or disables pairing removals and insertions of the
// same identity into moves. It is enabled by default.
func WithDetectMoves(detect bool) Option {
	return func(o *Options) {
		o.DetectMoves = detect
	}
}

// Result is a calculated diff.
type Result struct {
	oldSize, newSize int
	edits            []Edit
}

// OldSize is the size of the old list the result was calculated for.
func (r *Result) OldSize() int { return r.oldSize }

// NewSize is the size of the new list the result was calculated for.
func (r *Result) NewSize() int { return r.newSize }

// Edits returns the index level edits in old list order. Moves appear at the
// position of the item in the old list.
func (r *Result) Edits() []Edit {
	out := make([]Edit, len(r.edits))
	copy(out, r.edits)
	return out
}

// Calculate computes the diff between the lists behind cb.
// The context is checked once per edit distance step.
func Calculate(ctx context.Context, cb Callback, opts ...Option) (*Result, error) {
	if cb == nil {
		return nil, fmt.Errorf("callback is nil: %w", ErrInvalidCallback)
	}
	options := Options{DetectMoves: true}
	for _, opt := range opts {
		opt(&options)
	}

	n, m := cb.OldSize(), cb.NewSize()
	if n < 0 || m < 0 {
		return nil, fmt.Errorf("negative list size (old=%d, new=%d): %w", n, m, ErrInvalidCallback)
	}

	edits, distance, err := shortestEditScript(ctx, n, m, cb.SameIdentity)
	if err != nil {
		return nil, fmt.Errorf("calculating edit script failed: %w", err)
	}

	for i, e := range edits {
		if e.Op == Keep && !cb.SameContent(e.OldIndex, e.NewIndex) {
			edits[i].Op = Update
			edits[i].Changed = true
		}
	}

	moves := 0
	if options.DetectMoves {
		edits, moves = detectMoves(cb, edits)
	}

	slog.DebugContext(ctx, "calculated list diff", "realm", Realm,
		"old", n, "new", m, "distance", distance, "moves", moves)

	return &Result{oldSize: n, newSize: m, edits: edits}, nil
}

// detectMoves pairs every removal with the first unpaired insertion of the same
// identity. The insertion is dropped from the script and the removal becomes a move.
func detectMoves(cb Callback, edits []Edit) ([]Edit, int) {
	var inserts []int
	for i, e := range edits {
		if e.Op == Insert {
			inserts = append(inserts, i)
		}
	}
	if len(inserts) == 0 {
		return edits, 0
	}

	paired := make(map[int]bool, len(inserts))
	moves := 0
	for i, e := range edits {
		if e.Op != Remove {
			continue
		}
		for _, ins := range inserts {
			if paired[ins] {
				continue
			}
			newIndex := edits[ins].NewIndex
			if !cb.SameIdentity(e.OldIndex, newIndex) {
				continue
			}
			paired[ins] = true
			edits[i] = Edit{
				Op:       Move,
				OldIndex: e.OldIndex,
				NewIndex: newIndex,
				Changed:  !cb.SameContent(e.OldIndex, newIndex),
			}
			moves++
			break
		}
	}
	if moves == 0 {
		return edits, 0
	}

	out := edits[:0]
	for i, e := range edits {
		if !paired[i] {
			out = append(out, e)
		}
	}
	return out, moves
}
