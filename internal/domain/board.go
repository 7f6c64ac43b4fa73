package domain

import (
    "errors"
    "fmt"
)

// Piece is a player's mark.
type Piece uint8

const (
    X Piece = iota + 1
    O
)

func (p Piece) String() string {
    switch p {
    case X:
        return "X"
    case O:
        return "O"
    default:
        return fmt.Sprintf("Piece(%d)", uint8(p))
    }
}

// Valid reports whether p is X or O.
func (p Piece) Valid() bool { return p == X || p == O }

// Opponent returns the other piece.
func (p Piece) Opponent() Piece {
    if p == X {
        return O
    }
    return X
}

// Cell represents a board cell state. The zero value is Empty.
type Cell uint8

// Empty is an unoccupied cell.
const Empty Cell = 0

// Occupied returns the cell holding p.
func Occupied(p Piece) Cell { return Cell(p) }

// Piece returns the occupant, if any.
func (c Cell) Piece() (Piece, bool) {
    if c == Empty {
        return 0, false
    }
    return Piece(c), true
}

// IsEmpty reports whether no piece occupies the cell.
func (c Cell) IsEmpty() bool { return c == Empty }

const (
    // MinWinLength is the shortest run that may be required to win.
    MinWinLength = 2
    // DefaultWinLength is used when only the board size is given.
    DefaultWinLength = 3
)

// Errors returned by domain operations.
var (
    ErrInvalidConfig = errors.New("invalid configuration")
    ErrOutOfBounds   = errors.New("out of bounds")
    ErrOccupied      = errors.New("cell occupied")
    ErrBoardFull     = errors.New("board full")
    ErrZeroStep      = errors.New("zero step")
    ErrInvalidPiece  = errors.New("invalid piece")
)

// Config fixes the board dimensions and the run length needed to win.
type Config struct {
    Width     int
    Height    int
    WinLength int
}

// Validate checks that a winning line can exist on the configured board.
func (c Config) Validate() error {
    if c.Width < 1 || c.Height < 1 {
        return fmt.Errorf("%w: board must be at least 1 by 1, got %d by %d", ErrInvalidConfig, c.Width, c.Height)
    }
    if c.WinLength < MinWinLength {
        return fmt.Errorf("%w: win length must be at least %d, got %d", ErrInvalidConfig, MinWinLength, c.WinLength)
    }
    if c.Width < c.WinLength && c.Height < c.WinLength {
        return fmt.Errorf("%w: width or height must be at least the win length %d, got %d by %d",
            ErrInvalidConfig, c.WinLength, c.Width, c.Height)
    }
    return nil
}

// Board is a Width x Height grid stored row-major.
type Board struct {
    cfg   Config
    cells []Cell
    moves int
}

// NewBoard returns an empty board for cfg.
func NewBoard(cfg Config) (*Board, error) {
    if err := cfg.Validate(); err != nil {
        return nil, err
    }
    return &Board{cfg: cfg, cells: make([]Cell, cfg.Width*cfg.Height)}, nil
}

// Width is the number of columns.
func (b *Board) Width() int { return b.cfg.Width }

// Height is the number of rows.
func (b *Board) Height() int { return b.cfg.Height }

// WinLength is the run length needed to win.
func (b *Board) WinLength() int { return b.cfg.WinLength }

// Moves returns the number of successful placements.
func (b *Board) Moves() int { return b.moves }

// InBounds reports whether (x, y) addresses a cell.
func (b *Board) InBounds(x, y int) bool {
    return x >= 0 && x < b.cfg.Width && y >= 0 && y < b.cfg.Height
}

func (b *Board) index(x, y int) (int, error) {
    if !b.InBounds(x, y) {
        return 0, fmt.Errorf("%w: (%d, %d) on %d by %d board", ErrOutOfBounds, x, y, b.cfg.Width, b.cfg.Height)
    }
    return y*b.cfg.Width + x, nil
}

// Get returns the cell at (x, y).
func (b *Board) Get(x, y int) (Cell, error) {
    i, err := b.index(x, y)
    if err != nil {
        return Empty, err
    }
    return b.cells[i], nil
}

// Place puts p at (x, y). A cell can only be filled once.
func (b *Board) Place(x, y int, p Piece) error {
    if !p.Valid() {
        return fmt.Errorf("%w: %v", ErrInvalidPiece, p)
    }
    i, err := b.index(x, y)
    if err != nil {
        return err
    }
    if b.cells[i] != Empty {
        return fmt.Errorf("%w: (%d, %d)", ErrOccupied, x, y)
    }
    b.cells[i] = Occupied(p)
    b.moves++
    return nil
}

// IsFull reports whether every cell is occupied.
func (b *Board) IsFull() bool {
    return b.moves == len(b.cells)
}

// EmptyCells lists the empty cells in row-major order.
func (b *Board) EmptyCells() []Vec {
    out := make([]Vec, 0, len(b.cells)-b.moves)
    for i, c := range b.cells {
        if c == Empty {
            out = append(out, Vec{i % b.cfg.Width, i / b.cfg.Width})
        }
    }
    return out
}

// Row returns a copy of row y, or nil if y is off the board.
func (b *Board) Row(y int) []Cell {
    if y < 0 || y >= b.cfg.Height {
        return nil
    }
    row := make([]Cell, b.cfg.Width)
    copy(row, b.cells[y*b.cfg.Width:(y+1)*b.cfg.Width])
    return row
}
