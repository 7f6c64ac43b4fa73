package main

import (
    "context"
    "errors"
    "fmt"
    "math/rand/v2"
    "os"
    "time"

    "github.com/jaminalder/tictactoe-kline/internal/app"
    "github.com/jaminalder/tictactoe-kline/internal/config"
    "github.com/jaminalder/tictactoe-kline/internal/console"
    "github.com/jaminalder/tictactoe-kline/internal/domain"
    "github.com/rs/zerolog"
    "github.com/rs/zerolog/log"
)

func main() {
    env, err := config.FromEnv()
    InitializeLogger(env.LogLevel)
    if err != nil {
        log.Warn().Err(err).Msg("ignoring bad environment setting")
    }

    cfg, interactive, err := config.FromArgs(os.Args[1:])
    if err != nil {
        fmt.Fprintf(os.Stderr, "%v\n%s\n", err, config.Usage)
        os.Exit(1)
    }

    prompter := console.NewPrompter(os.Stdin, os.Stdout)
    if interactive {
        if cfg.Width, err = prompter.ReadDimension("width"); err != nil {
            fatal(err)
        }
        if cfg.Height, err = prompter.ReadDimension("height"); err != nil {
            fatal(err)
        }
    }

    seed := uint64(time.Now().UnixNano())
    if env.Seed != nil {
        seed = *env.Seed
    }
    src := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

    s, err := app.NewSessionWithView(cfg, prompter, src, console.NewTerminal(os.Stdout))
    if err != nil {
        if errors.Is(err, domain.ErrInvalidConfig) {
            fmt.Fprintf(os.Stderr, "%v\n%s\n", err, config.Usage)
            os.Exit(1)
        }
        fatal(err)
    }
    log.Debug().Str("game", s.ID).Uint64("seed", seed).Msg("opponent seeded")

    if _, err := s.Run(context.Background()); err != nil {
        fatal(err)
    }
}

// InitializeLogger sends diagnostics to stderr so they stay out of the game text.
func InitializeLogger(level zerolog.Level) {
    log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
        With().Timestamp().Logger()
    zerolog.SetGlobalLevel(level)
}

func fatal(err error) {
    log.Debug().Err(err).Msg("game aborted")
    fmt.Fprintln(os.Stderr, err)
    os.Exit(1)
}
