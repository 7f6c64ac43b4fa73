package console

import (
    "io"
    "strings"

    "github.com/jaminalder/tictactoe-kline/internal/domain"
)

func cellSymbol(c domain.Cell) string {
    if p, ok := c.Piece(); ok {
        return p.String()
    }
    return " "
}

// Render writes the board as text followed by a blank line. Columns are
// separated by '|' and rows by a dashed line as wide as a row.
func Render(w io.Writer, b *domain.Board) error {
    rows := make([]string, b.Height())
    for y := range rows {
        cells := b.Row(y)
        syms := make([]string, len(cells))
        for x, c := range cells {
            syms[x] = cellSymbol(c)
        }
        rows[y] = strings.Join(syms, "|")
    }
    sep := "\n" + strings.Repeat("-", len(rows[0])) + "\n"
    _, err := io.WriteString(w, strings.Join(rows, sep)+"\n\n")
    return err
}
