package domain

import "fmt"

// line is a run of n cells from origin, advancing by step.
type line struct {
    origin Vec
    step   Vec
    n      int
}

// LineHasRun walks from origin towards bound (exclusive) by step and reports
// whether WinLength consecutive cells hold p. The number of steps is the
// distance from origin to bound along step; a visited cell outside the board
// yields ErrOutOfBounds.
func (b *Board) LineHasRun(origin, step, bound Vec, p Piece) (bool, error) {
    if step.IsZero() {
        return false, ErrZeroStep
    }
    n := stepsBetween(origin, bound, step)
    run := 0
    for i, at := 0, origin; i < n; i, at = i+1, at.Add(step) {
        c, err := b.Get(at.X, at.Y)
        if err != nil {
            return false, fmt.Errorf("line from %v by %v: %w", origin, step, err)
        }
        if c == Occupied(p) {
            run++
            if run >= b.cfg.WinLength {
                return true, nil
            }
        } else {
            run = 0
        }
    }
    return false, nil
}

// IsWon reports whether some row, column or diagonal holds WinLength
// consecutive p pieces.
func (b *Board) IsWon(p Piece) bool {
    for _, ln := range b.lines() {
        if ln.n < b.cfg.WinLength {
            continue
        }
        bound := ln.origin.Add(ln.step.Scale(ln.n))
        // Lines are clipped to the board, so LineHasRun cannot fail here.
        if ok, _ := b.LineHasRun(ln.origin, ln.step, bound, p); ok {
            return true
        }
    }
    return false
}

// lines enumerates every candidate line. Diagonals are seeded from the top
// row and from the left (down-right) or right (down-left) column, so the
// corner diagonals appear twice.
func (b *Board) lines() []line {
    w, h := b.cfg.Width, b.cfg.Height
    out := make([]line, 0, 3*w+3*h)
    for y := 0; y < h; y++ {
        out = append(out, line{Vec{0, y}, Right, w})
    }
    for x := 0; x < w; x++ {
        out = append(out, line{Vec{x, 0}, Down, h})
    }
    for x := 0; x < w; x++ {
        out = append(out, b.clipped(Vec{x, 0}, DownRight))
    }
    for y := 0; y < h; y++ {
        out = append(out, b.clipped(Vec{0, y}, DownRight))
    }
    for x := w - 1; x >= 0; x-- {
        out = append(out, b.clipped(Vec{x, 0}, DownLeft))
    }
    for y := 0; y < h; y++ {
        out = append(out, b.clipped(Vec{w - 1, y}, DownLeft))
    }
    return out
}

// clipped returns the line from origin by step up to the board edge.
func (b *Board) clipped(origin, step Vec) line {
    n := 0
    for at := origin; b.InBounds(at.X, at.Y); at = at.Add(step) {
        n++
    }
    return line{origin, step, n}
}

// stepsBetween counts how many steps it takes to go from origin to bound.
// Each non-zero axis of step gives a ceiling distance; the largest wins.
func stepsBetween(origin, bound, step Vec) int {
    n := 0
    d := bound.Sub(origin)
    if step.X != 0 {
        n = max(n, ceilDiv(d.X, step.X))
    }
    if step.Y != 0 {
        n = max(n, ceilDiv(d.Y, step.Y))
    }
    return n
}

func ceilDiv(a, b int) int {
    q := a / b
    if a%b != 0 && (a < 0) == (b < 0) {
        q++
    }
    return q
}
