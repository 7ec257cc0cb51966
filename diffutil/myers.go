// Package diffutil implements the Diff Engine: binary detection, a Myers
// LCS line differ, and unified-diff text assembly with add/delete counts
// (spec §4.6).
package diffutil

import "slices"

// Change is one non-equal span produced by MyersDiff: Del lines starting
// at P1 in the old sequence are replaced by Ins lines starting at P2 in
// the new sequence.
type Change struct {
	P1, P2   int
	Del, Ins int
}

// MyersDiff computes the minimal edit script between seq1 and seq2 using
// the Myers O(ND) algorithm: walk increasing edit distances d, tracking
// the furthest-reaching point on each diagonal k = x - y, until the
// diagonal containing (len(seq1), len(seq2)) is reached, then walk the
// recorded snake chain back to front to emit the changes in order.
func MyersDiff[E comparable](seq1, seq2 []E) []Change {
	if len(seq1) == 0 && len(seq2) == 0 {
		return nil
	}
	if len(seq1) == 0 {
		return []Change{{Ins: len(seq2)}}
	}
	if len(seq2) == 0 {
		return []Change{{Del: len(seq1)}}
	}

	follow := func(x, y int) int {
		for x < len(seq1) && y < len(seq2) && seq1[x] == seq2[y] {
			x++
			y++
		}
		return x
	}

	v := newDiagArray()
	paths := newDiagPaths()
	v.set(0, follow(0, 0))
	if v.get(0) == 0 {
		paths.set(0, nil)
	} else {
		paths.set(0, &snake{x: 0, y: 0, length: v.get(0)})
	}

	k := 0
outer:
	for d := 1; ; d++ {
		lower := -min(d, len(seq2)+(d%2))
		upper := min(d, len(seq1)+(d%2))
		for k = lower; k <= upper; k += 2 {
			top, left := -1, -1
			if k != upper {
				top = v.get(k + 1)
			}
			if k != lower {
				left = v.get(k-1) + 1
			}
			x := min(max(top, left), len(seq1))
			y := x - k
			if x > len(seq1) || y > len(seq2) {
				continue
			}
			newX := follow(x, y)
			v.set(k, newX)

			var prev *snake
			if x == top {
				prev = paths.get(k + 1)
			} else {
				prev = paths.get(k - 1)
			}
			if newX != x {
				paths.set(k, &snake{pre: prev, x: x, y: y, length: newX - x})
			} else {
				paths.set(k, prev)
			}

			if v.get(k) == len(seq1) && v.get(k)-k == len(seq2) {
				break outer
			}
		}
	}

	path := paths.get(k)
	endX, endY := len(seq1), len(seq2)
	var changes []Change
	for {
		var snakeX, snakeY int
		if path != nil {
			snakeX = path.x + path.length
			snakeY = path.y + path.length
		}
		if snakeX != endX || snakeY != endY {
			changes = append(changes, Change{P1: snakeX, P2: snakeY, Del: endX - snakeX, Ins: endY - snakeY})
		}
		if path == nil {
			break
		}
		endX, endY = path.x, path.y
		path = path.pre
	}
	slices.Reverse(changes)
	return changes
}

// snake is one diagonal run recorded while searching for the shortest
// edit script; pre chains back to the snake the path was extended from.
type snake struct {
	pre          *snake
	x, y, length int
}

// diagArray is an int array indexable by negative diagonal numbers,
// growing on demand, used to track the furthest-reaching x per diagonal.
type diagArray struct {
	pos, neg []int
}

func newDiagArray() *diagArray {
	return &diagArray{pos: make([]int, 8), neg: make([]int, 8)}
}

func (a *diagArray) get(i int) int {
	if i < 0 {
		return a.neg[-i-1]
	}
	return a.pos[i]
}

func (a *diagArray) set(i, v int) {
	if i < 0 {
		i = -i - 1
		for i >= len(a.neg) {
			a.neg = append(a.neg, make([]int, len(a.neg)+1)...)
		}
		a.neg[i] = v
		return
	}
	for i >= len(a.pos) {
		a.pos = append(a.pos, make([]int, len(a.pos)+1)...)
	}
	a.pos[i] = v
}

// diagPaths mirrors diagArray but holds the snake chain per diagonal.
type diagPaths struct {
	pos, neg map[int]*snake
}

func newDiagPaths() *diagPaths {
	return &diagPaths{pos: map[int]*snake{}, neg: map[int]*snake{}}
}

func (p *diagPaths) get(i int) *snake {
	if i < 0 {
		return p.neg[-i-1]
	}
	return p.pos[i]
}

func (p *diagPaths) set(i int, s *snake) {
	if i < 0 {
		p.neg[-i-1] = s
		return
	}
	p.pos[i] = s
}
