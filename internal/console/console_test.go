package console

import (
    "bytes"
    "context"
    "errors"
    "fmt"
    "strings"
    "testing"

    "github.com/jaminalder/tictactoe-kline/internal/app"
    "github.com/jaminalder/tictactoe-kline/internal/domain"
    "github.com/rs/zerolog"
)

func newBoard(t *testing.T, w, h, k int) *domain.Board {
    t.Helper()
    b, err := domain.NewBoard(domain.Config{Width: w, Height: h, WinLength: k})
    if err != nil {
        t.Fatalf("NewBoard error: %v", err)
    }
    return b
}

func TestRenderEmptyBoard(t *testing.T) {
    var buf bytes.Buffer
    if err := Render(&buf, newBoard(t, 3, 2, 3)); err != nil {
        t.Fatalf("Render error: %v", err)
    }
    want := " | | \n-----\n | | \n\n"
    if buf.String() != want {
        t.Fatalf("unexpected render:\n got %q\nwant %q", buf.String(), want)
    }
}

func TestRenderPieces(t *testing.T) {
    b := newBoard(t, 3, 3, 3)
    _ = b.Place(0, 0, domain.X)
    _ = b.Place(2, 1, domain.O)
    _ = b.Place(1, 2, domain.X)
    var buf bytes.Buffer
    _ = Render(&buf, b)
    want := "X| | \n-----\n | |O\n-----\n |X| \n\n"
    if buf.String() != want {
        t.Fatalf("unexpected render:\n got %q\nwant %q", buf.String(), want)
    }
}

func TestRenderSingleColumn(t *testing.T) {
    var buf bytes.Buffer
    _ = Render(&buf, newBoard(t, 1, 3, 3))
    if want := " \n-\n \n-\n \n\n"; buf.String() != want {
        t.Fatalf("got %q, want %q", buf.String(), want)
    }
}

func TestReadMove(t *testing.T) {
    var out bytes.Buffer
    p := NewPrompter(strings.NewReader(" 2\n1 \n"), &out)
    x, y, err := p.ReadMove()
    if err != nil || x != 2 || y != 1 {
        t.Fatalf("expected (2, 1), got (%d, %d) err=%v", x, y, err)
    }
    want := "Please enter the x coordinate for your piece: Please enter the y coordinate for your piece: "
    if out.String() != want {
        t.Fatalf("unexpected prompts %q", out.String())
    }
}

func TestReadMoveErrors(t *testing.T) {
    cases := []struct {
        in   string
        want error
    }{
        {"a\n", ErrParse},
        {"1\n1.5\n", ErrParse},
        {"", ErrInputClosed},
        {"3\n", ErrInputClosed},
    }
    for _, tc := range cases {
        p := NewPrompter(strings.NewReader(tc.in), &bytes.Buffer{})
        if _, _, err := p.ReadMove(); !errors.Is(err, tc.want) {
            t.Fatalf("input %q: expected %v, got %v", tc.in, tc.want, err)
        }
    }
}

func TestReadDimensionRetries(t *testing.T) {
    var out bytes.Buffer
    p := NewPrompter(strings.NewReader("wide\n0\n-3\n7\n"), &out)
    n, err := p.ReadDimension("width")
    if err != nil || n != 7 {
        t.Fatalf("expected 7, got %d err=%v", n, err)
    }
    if got := strings.Count(out.String(), "Please enter board width: "); got != 4 {
        t.Fatalf("expected 4 prompts, got %d in %q", got, out.String())
    }
    if got := strings.Count(out.String(), "must be a positive whole number"); got != 3 {
        t.Fatalf("expected 3 complaints, got %d", got)
    }
}

func TestReadDimensionInputClosed(t *testing.T) {
    p := NewPrompter(strings.NewReader("x\n"), &bytes.Buffer{})
    if _, err := p.ReadDimension("height"); !errors.Is(err, ErrInputClosed) {
        t.Fatalf("expected ErrInputClosed, got %v", err)
    }
}

func TestTerminalRejectMove(t *testing.T) {
    b := newBoard(t, 4, 3, 3)
    var buf bytes.Buffer
    term := NewTerminal(&buf)

    term.RejectMove(b, 9, 0, fmt.Errorf("wrapped: %w", domain.ErrOutOfBounds))
    want := "Those coordinates are invalid, the board size is 4 by 3.\n" +
        "Legal values for x are 0 to 3.\n" +
        "Legal values for y are 0 to 2.\n"
    if buf.String() != want {
        t.Fatalf("got %q, want %q", buf.String(), want)
    }

    buf.Reset()
    term.RejectMove(b, 1, 2, domain.ErrOccupied)
    if want := "A piece has already been placed at x: 1, y: 2.\n"; buf.String() != want {
        t.Fatalf("got %q, want %q", buf.String(), want)
    }
}

func TestTerminalAnnounce(t *testing.T) {
    b := newBoard(t, 2, 1, 2)
    _ = b.Place(0, 0, domain.X)
    _ = b.Place(1, 0, domain.X)
    board := "X|X\n\n"
    cases := map[app.Outcome]string{
        app.PlayerWon:   "\nPLAYER HAS WON!!!\n" + board,
        app.OpponentWon: "\nOPPONENT HAS WON!!!\n" + board,
        app.Draw:        "Game is a tie!\n" + board,
    }
    for o, want := range cases {
        var buf bytes.Buffer
        NewTerminal(&buf).Announce(o, b)
        if buf.String() != want {
            t.Fatalf("%v: got %q, want %q", o, buf.String(), want)
        }
    }
}

func TestTerminalPlaysFullGame(t *testing.T) {
    var out bytes.Buffer
    in := strings.NewReader("0\n2\n1\n2\n2\n2\n")
    s, err := app.NewSessionWithView(domain.Config{Width: 3, Height: 3, WinLength: 3},
        NewPrompter(in, &out), firstEmpty{}, NewTerminal(&out))
    if err != nil {
        t.Fatalf("NewSessionWithView error: %v", err)
    }
    o, err := s.Run(context.Background())
    if err != nil || o != app.PlayerWon {
        t.Fatalf("expected PlayerWon, got %v err=%v", o, err)
    }
    final := "O|O| \n-----\n | | \n-----\nX|X|X\n\n"
    if !strings.HasSuffix(out.String(), "\nPLAYER HAS WON!!!\n"+final) {
        t.Fatalf("unexpected transcript tail: %q", out.String())
    }
}

type firstEmpty struct{}

func (firstEmpty) IntN(int) int { return 0 }

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("stdout closed") }

func TestTerminalLogsRenderFailure(t *testing.T) {
    var logs bytes.Buffer
    term := NewTerminal(brokenWriter{})
    term.log = zerolog.New(&logs).Level(zerolog.DebugLevel)

    b := newBoard(t, 3, 3, 3)
    term.ShowBoard(b)
    term.Announce(app.Draw, b)
    if got := strings.Count(logs.String(), "stdout closed"); got != 2 {
        t.Fatalf("expected 2 logged render failures, got %d in %q", got, logs.String())
    }
}
