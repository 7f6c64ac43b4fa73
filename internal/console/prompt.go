package console

import (
    "bufio"
    "errors"
    "fmt"
    "io"
    "strconv"
    "strings"
)

// Errors returned by Prompter.
var (
    ErrParse       = errors.New("not a whole number")
    ErrInputClosed = errors.New("input closed")
)

// Prompter asks questions on out and reads one answer per line from in.
type Prompter struct {
    in  *bufio.Scanner
    out io.Writer
}

// NewPrompter returns a Prompter reading from in and prompting on out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
    return &Prompter{in: bufio.NewScanner(in), out: out}
}

func (p *Prompter) line(prompt string) (string, error) {
    _, _ = io.WriteString(p.out, prompt)
    if !p.in.Scan() {
        if err := p.in.Err(); err != nil {
            return "", err
        }
        return "", ErrInputClosed
    }
    return strings.TrimSpace(p.in.Text()), nil
}

func (p *Prompter) readInt(prompt string) (int, error) {
    s, err := p.line(prompt)
    if err != nil {
        return 0, err
    }
    n, err := strconv.Atoi(s)
    if err != nil {
        return 0, fmt.Errorf("%w: %q", ErrParse, s)
    }
    return n, nil
}

// ReadMove reads the x and then the y coordinate of the player's move.
// Input that is not a whole number is an error.
func (p *Prompter) ReadMove() (int, int, error) {
    x, err := p.readInt("Please enter the x coordinate for your piece: ")
    if err != nil {
        return 0, 0, err
    }
    y, err := p.readInt("Please enter the y coordinate for your piece: ")
    if err != nil {
        return 0, 0, err
    }
    return x, y, nil
}

// ReadDimension asks for a board dimension until a positive integer is given.
func (p *Prompter) ReadDimension(label string) (int, error) {
    for {
        n, err := p.readInt("Please enter board " + label + ": ")
        switch {
        case err == nil && n > 0:
            return n, nil
        case err == nil, errors.Is(err, ErrParse):
            _, _ = fmt.Fprintf(p.out, "The board %s must be a positive whole number.\n", label)
        default:
            return 0, err
        }
    }
}
