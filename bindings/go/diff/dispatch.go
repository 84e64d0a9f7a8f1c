package diff

import (
	"fmt"
	"slices"
)

// ListUpdateCallback receives positional list updates. Positions always refer to
// the list as it is after all previously dispatched updates were applied.
type ListUpdateCallback interface {
	OnInserted(position, count int)
	OnRemoved(position, count int)
	OnMoved(from, to int)
	OnChanged(position, count int)
}

// Operation is a positional list update. For Move, Position is the source and
// To the target position, Count is always 1. Op is never Keep.
type Operation struct {
	Op       Op
	Position int
	Count    int
	To       int
}

func (o Operation) String() string {
	if o.Op == Move {
		return fmt.Sprintf("move %d -> %d", o.Position, o.To)
	}
	return fmt.Sprintf("%s %d+%d", o.Op, o.Position, o.Count)
}

// Operations returns the positional updates that turn the old list into the
// new one when applied in order: removals from the end of the list towards the
// start, then one move per moved item, then insertions front to back and
// finally content changes at their final positions.
func (r *Result) Operations() []Operation {
	source := make([]int, r.newSize)
	changed := make([]bool, r.newSize)
	var removed, moved []int
	for _, e := range r.edits {
		switch e.Op {
		case Keep, Update, Move:
			source[e.NewIndex] = e.OldIndex
			changed[e.NewIndex] = e.Changed
			if e.Op == Move {
				moved = append(moved, e.NewIndex)
			}
		case Insert:
			source[e.NewIndex] = -1
		case Remove:
			removed = append(removed, e.OldIndex)
		}
	}

	var b opBuilder
	slices.Sort(removed)
	gone := make(map[int]bool, len(removed))
	for i := len(removed) - 1; i >= 0; i-- {
		b.add(Operation{Op: Remove, Position: removed[i], Count: 1})
		gone[removed[i]] = true
	}

	current := make([]int, 0, r.oldSize)
	for i := range r.oldSize {
		if !gone[i] {
			current = append(current, i)
		}
	}

	// Kept items are already in new list order. A moved item is placed right
	// behind the closest preceding item of the new list that is already in place.
	slices.Sort(moved)
	for _, target := range moved {
		src := source[target]
		from := slices.Index(current, src)
		current = slices.Delete(current, from, from+1)
		to := 0
		for j := target - 1; j >= 0; j-- {
			if source[j] >= 0 {
				to = slices.Index(current, source[j]) + 1
				break
			}
		}
		current = slices.Insert(current, to, src)
		if from != to {
			b.add(Operation{Op: Move, Position: from, Count: 1, To: to})
		}
	}

	for j, src := range source {
		if src < 0 {
			b.add(Operation{Op: Insert, Position: j, Count: 1})
		}
	}
	for j, c := range changed {
		if c {
			b.add(Operation{Op: Update, Position: j, Count: 1})
		}
	}
	return b.ops
}

// Dispatch sends the positional updates of Operations to cb.
func (r *Result) Dispatch(cb ListUpdateCallback) {
	for _, op := range r.Operations() {
		switch op.Op {
		case Insert:
			cb.OnInserted(op.Position, op.Count)
		case Remove:
			cb.OnRemoved(op.Position, op.Count)
		case Move:
			cb.OnMoved(op.Position, op.To)
		case Update:
			cb.OnChanged(op.Position, op.Count)
		}
	}
}

// opBuilder coalesces adjacent updates of the same kind into ranges.
type opBuilder struct {
	ops []Operation
}

func (b *opBuilder) add(op Operation) {
	if len(b.ops) > 0 {
		last := &b.ops[len(b.ops)-1]
		if last.Op == op.Op {
			switch op.Op {
			case Insert, Update:
				if op.Position == last.Position+last.Count {
					last.Count += op.Count
					return
				}
			case Remove:
				if op.Position+op.Count == last.Position {
					last.Position = op.Position
					last.Count += op.Count
					return
				}
			}
		}
	}
	b.ops = append(b.ops, op)
}
