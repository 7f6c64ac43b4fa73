package config

import (
    "errors"
    "fmt"
    "os"
    "strconv"

    "github.com/jaminalder/tictactoe-kline/internal/domain"
    "github.com/rs/zerolog"
)

// Usage describes the accepted command line.
const Usage = "Usage: tictactoe [width height winLength]\n" +
    "TICTACTOE_LOG_LEVEL and TICTACTOE_SEED only affect logging and the opponent's seed, never the rules."

// ErrUsage is returned for a malformed command line.
var ErrUsage = errors.New("invalid arguments")

// FromArgs reads width, height and win length from the positional
// arguments. With no arguments it returns interactive=true and the default
// win length; the caller asks for the board size.
func FromArgs(args []string) (cfg domain.Config, interactive bool, err error) {
    switch len(args) {
    case 0:
        return domain.Config{WinLength: domain.DefaultWinLength}, true, nil
    case 3:
    default:
        return domain.Config{}, false, fmt.Errorf("%w: expected 0 or 3 arguments, got %d", ErrUsage, len(args))
    }
    var vals [3]int
    for i, a := range args {
        n, err := strconv.Atoi(a)
        if err != nil {
            return domain.Config{}, false, fmt.Errorf("%w: %q is not a whole number", ErrUsage, a)
        }
        vals[i] = n
    }
    return domain.Config{Width: vals[0], Height: vals[1], WinLength: vals[2]}, false, nil
}

// Env holds diagnostics settings read from the environment.
type Env struct {
    LogLevel zerolog.Level
    // Seed is nil when the opponent should be seeded from the clock.
    Seed *uint64
}

// FromEnv reads TICTACTOE_LOG_LEVEL and TICTACTOE_SEED. Neither changes the
// board, the win length or the turn order; board settings come only from
// FromArgs or the prompts.
func FromEnv() (Env, error) {
    env := Env{LogLevel: zerolog.WarnLevel}
    if v := getEnv("TICTACTOE_LOG_LEVEL", ""); v != "" {
        lvl, err := zerolog.ParseLevel(v)
        if err != nil {
            return env, fmt.Errorf("TICTACTOE_LOG_LEVEL: %w", err)
        }
        env.LogLevel = lvl
    }
    if v := getEnv("TICTACTOE_SEED", ""); v != "" {
        seed, err := strconv.ParseUint(v, 10, 64)
        if err != nil {
            return env, fmt.Errorf("TICTACTOE_SEED: %w", err)
        }
        env.Seed = &seed
    }
    return env, nil
}

func getEnv(key, fallback string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return fallback
}
