package app

import (
    "context"
    "errors"
    "fmt"
    "time"

    "github.com/google/uuid"
    "github.com/jaminalder/tictactoe-kline/internal/domain"
    "github.com/rs/zerolog"
    "github.com/rs/zerolog/log"
)

// Outcome is how a finished game ended.
type Outcome int

const (
    PlayerWon Outcome = iota + 1
    OpponentWon
    Draw
)

func (o Outcome) String() string {
    switch o {
    case PlayerWon:
        return "PLAYER HAS WON!!!"
    case OpponentWon:
        return "OPPONENT HAS WON!!!"
    case Draw:
        return "Game is a tie!"
    default:
        return "game in progress"
    }
}

// MoveReader supplies the human's next move.
type MoveReader interface {
    ReadMove() (x, y int, err error)
}

// View shows the game to the human.
type View interface {
    ShowBoard(b *domain.Board)
    // RejectMove reports a placement the player may retry.
    RejectMove(b *domain.Board, x, y int, err error)
    // Announce shows the final result and board.
    Announce(o Outcome, b *domain.Board)
}

type nopView struct{}

func (nopView) ShowBoard(*domain.Board)                    {}
func (nopView) RejectMove(*domain.Board, int, int, error) {}
func (nopView) Announce(Outcome, *domain.Board)            {}

// Move is one placement in a session's history.
type Move struct {
    Piece domain.Piece
    At    domain.Vec
}

// Session is one game between a human (X) and a random opponent (O).
type Session struct {
    ID       string
    Board    *domain.Board
    Player   domain.Piece
    Opponent domain.Piece
    Created  time.Time
    Updated  time.Time

    human   MoveReader
    view    View
    src     domain.Source
    log     zerolog.Logger
    history []Move
}

// NewSession creates a game on an empty board with the human to move.
func NewSession(cfg domain.Config, human MoveReader, src domain.Source) (*Session, error) {
    return NewSessionWithView(cfg, human, src, nil)
}

// NewSessionWithView allows injecting the view the session renders to.
func NewSessionWithView(cfg domain.Config, human MoveReader, src domain.Source, view View) (*Session, error) {
    if human == nil || src == nil {
        return nil, errors.New("session needs a move reader and a random source")
    }
    board, err := domain.NewBoard(cfg)
    if err != nil {
        return nil, err
    }
    if view == nil {
        view = nopView{}
    }
    id := uuid.NewString()
    now := time.Now()
    return &Session{
        ID:       id,
        Board:    board,
        Player:   domain.X,
        Opponent: domain.O,
        Created:  now,
        Updated:  now,
        human:    human,
        view:     view,
        src:      src,
        log:      log.With().Str("game", id).Logger(),
    }, nil
}

// SetView replaces the view.
func (s *Session) SetView(view View) {
    if view == nil {
        view = nopView{}
    }
    s.view = view
}

// History returns a copy of the moves played so far. It is a read-only
// record for logs and tests; moves cannot be taken back.
func (s *Session) History() []Move {
    out := make([]Move, len(s.history))
    copy(out, s.history)
    return out
}

// Run alternates human and opponent moves until the game ends.
func (s *Session) Run(ctx context.Context) (Outcome, error) {
    s.log.Info().
        Int("width", s.Board.Width()).
        Int("height", s.Board.Height()).
        Int("winLength", s.Board.WinLength()).
        Msg("game started")
    for {
        if err := ctx.Err(); err != nil {
            return 0, err
        }
        s.view.ShowBoard(s.Board)

        if err := s.playerTurn(); err != nil {
            return 0, err
        }
        if o, over := s.finished(s.Player, PlayerWon); over {
            return o, nil
        }

        at, err := s.Board.RandomMove(s.Opponent, s.src)
        if err != nil {
            return 0, fmt.Errorf("opponent move: %w", err)
        }
        s.record(s.Opponent, at)
        if o, over := s.finished(s.Opponent, OpponentWon); over {
            return o, nil
        }
    }
}

// playerTurn prompts until the human makes a legal placement.
func (s *Session) playerTurn() error {
    if s.Board.IsFull() {
        return fmt.Errorf("player move: %w", domain.ErrBoardFull)
    }
    for {
        x, y, err := s.human.ReadMove()
        if err != nil {
            return fmt.Errorf("read move: %w", err)
        }
        err = s.Board.Place(x, y, s.Player)
        switch {
        case err == nil:
            s.record(s.Player, domain.Vec{X: x, Y: y})
            return nil
        case errors.Is(err, domain.ErrOutOfBounds), errors.Is(err, domain.ErrOccupied):
            s.log.Debug().Err(err).Int("x", x).Int("y", y).Msg("move rejected")
            s.view.RejectMove(s.Board, x, y, err)
        default:
            return err
        }
    }
}

// finished checks the terminal predicates after p has moved; a win for p
// takes precedence over a full board.
func (s *Session) finished(p domain.Piece, win Outcome) (Outcome, bool) {
    var o Outcome
    switch {
    case s.Board.IsWon(p):
        o = win
    case s.Board.IsFull():
        o = Draw
    default:
        return 0, false
    }
    s.log.Info().Stringer("outcome", o).Int("moves", s.Board.Moves()).Msg("game over")
    s.view.Announce(o, s.Board)
    return o, true
}

func (s *Session) record(p domain.Piece, at domain.Vec) {
    s.history = append(s.history, Move{Piece: p, At: at})
    s.Updated = time.Now()
    s.log.Debug().Stringer("piece", p).Int("x", at.X).Int("y", at.Y).Msg("move")
}
