package diff

import (
	"context"
	"slices"
)

// shortestEditScript runs the greedy Myers algorithm over two sequences of
// length n and m and returns Keep, Remove and Insert edits in list order
// together with the edit distance.
func shortestEditScript(ctx context.Context, n, m int, eq func(oldIndex, newIndex int) bool) ([]Edit, int, error) {
	limit := n + m
	offset := limit + 1
	v := make([]int, 2*limit+3)
	var trace [][]int

	for d := 0; d <= limit; d++ {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}
		trace = append(trace, slices.Clone(v))
		for k := -d; k <= d; k += 2 {
			var x int
			if k == -d || (k != d && v[offset+k-1] < v[offset+k+1]) {
				x = v[offset+k+1]
			} else {
				x = v[offset+k-1] + 1
			}
			y := x - k
			for x < n && y < m && eq(x, y) {
				x++
				y++
			}
			v[offset+k] = x
			if x >= n && y >= m {
				return backtrack(trace, offset, n, m), d, nil
			}
		}
	}
	// unreachable: d == n+m always reaches the end of both lists
	return backtrack(trace, offset, n, m), limit, nil
}

// backtrack walks the recorded frontiers from (n, m) back to the origin.
// trace[d] holds the frontier before step d was computed.
func backtrack(trace [][]int, offset, n, m int) []Edit {
	edits := make([]Edit, 0, max(n, m))
	x, y := n, m
	for d := len(trace) - 1; d > 0; d-- {
		v := trace[d]
		k := x - y
		var prevK int
		if k == -d || (k != d && v[offset+k-1] < v[offset+k+1]) {
			prevK = k + 1
		} else {
			prevK = k - 1
		}
		prevX := v[offset+prevK]
		prevY := prevX - prevK
		for x > prevX && y > prevY {
			edits = append(edits, Edit{Op: Keep, OldIndex: x - 1, NewIndex: y - 1})
			x--
			y--
		}
		if x == prevX {
			edits = append(edits, Edit{Op: Insert, OldIndex: -1, NewIndex: y - 1})
		} else {
			edits = append(edits, Edit{Op: Remove, OldIndex: x - 1, NewIndex: -1})
		}
		x, y = prevX, prevY
	}
	for x > 0 && y > 0 {
		edits = append(edits, Edit{Op: Keep, OldIndex: x - 1, NewIndex: y - 1})
		x--
		y--
	}
	slices.Reverse(edits)
	return edits
}
