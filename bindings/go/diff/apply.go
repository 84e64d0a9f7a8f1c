package diff

import (
	"fmt"
	"slices"
)

type tracked[E any] struct {
	value E
	fresh bool
}

// Apply replays positional operations on a copy of old. Inserted and changed
// positions take their value from updated at the position they end up at.
// It returns an error if an operation is out of range or the resulting list
// does not have the length of updated.
func Apply[E any](old, updated []E, ops []Operation) ([]E, error) {
	list := make([]tracked[E], len(old))
	for i, v := range old {
		list[i] = tracked[E]{value: v}
	}

	for i, op := range ops {
		switch op.Op {
		case Insert:
			if op.Position < 0 || op.Position > len(list) || op.Count < 1 {
				return nil, fmt.Errorf("operation %d (%s) out of range for length %d", i, op, len(list))
			}
			list = slices.Insert(list, op.Position, make([]tracked[E], op.Count)...)
			for p := op.Position; p < op.Position+op.Count; p++ {
				list[p].fresh = true
			}
		case Remove:
			if op.Position < 0 || op.Count < 1 || op.Position+op.Count > len(list) {
				return nil, fmt.Errorf("operation %d (%s) out of range for length %d", i, op, len(list))
			}
			list = slices.Delete(list, op.Position, op.Position+op.Count)
		case Move:
			if op.Position < 0 || op.Position >= len(list) || op.To < 0 || op.To >= len(list) {
				return nil, fmt.Errorf("operation %d (%s) out of range for length %d", i, op, len(list))
			}
			item := list[op.Position]
			list = slices.Delete(list, op.Position, op.Position+1)
			list = slices.Insert(list, op.To, item)
		case Update:
			if op.Position < 0 || op.Count < 1 || op.Position+op.Count > len(list) {
				return nil, fmt.Errorf("operation %d (%s) out of range for length %d", i, op, len(list))
			}
			for p := op.Position; p < op.Position+op.Count; p++ {
				list[p].fresh = true
			}
		default:
			return nil, fmt.Errorf("operation %d has unsupported kind %s", i, op.Op)
		}
	}

	if len(list) != len(updated) {
		return nil, fmt.Errorf("applying %d operations produced %d items, expected %d", len(ops), len(list), len(updated))
	}
	out := make([]E, len(list))
	for i, t := range list {
		if t.fresh {
			out[i] = updated[i]
		} else {
			out[i] = t.value
		}
	}
	return out, nil
}
