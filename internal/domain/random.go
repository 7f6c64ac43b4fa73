package domain

import (
    "errors"
    "fmt"
)

// Source picks an index in [0, n). *math/rand/v2.Rand satisfies it.
type Source interface {
    IntN(n int) int
}

// RandomMove places p on an empty cell chosen uniformly by src and returns
// where it went.
func (b *Board) RandomMove(p Piece, src Source) (Vec, error) {
    empty := b.EmptyCells()
    if len(empty) == 0 {
        return Vec{}, ErrBoardFull
    }
    at := empty[src.IntN(len(empty))]
    if err := b.Place(at.X, at.Y, p); err != nil {
        if errors.Is(err, ErrOccupied) {
            // EmptyCells was stale.
            return Vec{}, fmt.Errorf("%w: %v", ErrBoardFull, err)
        }
        return Vec{}, err
    }
    return at, nil
}
