package console

import (
    "errors"
    "fmt"
    "io"

    "github.com/jaminalder/tictactoe-kline/internal/app"
    "github.com/jaminalder/tictactoe-kline/internal/domain"
    "github.com/rs/zerolog"
    "github.com/rs/zerolog/log"
)

// Terminal is an app.View writing plain text.
type Terminal struct {
    w   io.Writer
    log zerolog.Logger
}

// NewTerminal returns a Terminal writing to w.
func NewTerminal(w io.Writer) *Terminal { return &Terminal{w: w, log: log.Logger} }

// ShowBoard renders the board.
func (t *Terminal) ShowBoard(b *domain.Board) { t.render(b) }

// RejectMove explains why (x, y) could not be played.
func (t *Terminal) RejectMove(b *domain.Board, x, y int, err error) {
    switch {
    case errors.Is(err, domain.ErrOutOfBounds):
        _, _ = fmt.Fprintf(t.w, "Those coordinates are invalid, the board size is %d by %d.\n", b.Width(), b.Height())
        _, _ = fmt.Fprintf(t.w, "Legal values for x are 0 to %d.\n", b.Width()-1)
        _, _ = fmt.Fprintf(t.w, "Legal values for y are 0 to %d.\n", b.Height()-1)
    case errors.Is(err, domain.ErrOccupied):
        _, _ = fmt.Fprintf(t.w, "A piece has already been placed at x: %d, y: %d.\n", x, y)
    default:
        _, _ = fmt.Fprintf(t.w, "Invalid move: %v\n", err)
    }
}

// Announce prints the result followed by the final board.
func (t *Terminal) Announce(o app.Outcome, b *domain.Board) {
    if o == app.Draw {
        _, _ = fmt.Fprintln(t.w, o)
    } else {
        _, _ = fmt.Fprintf(t.w, "\n%s\n", o)
    }
    t.render(b)
}

func (t *Terminal) render(b *domain.Board) {
    if err := Render(t.w, b); err != nil {
        t.log.Debug().Err(err).Msg("render board")
    }
}
