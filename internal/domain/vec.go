package domain

// Vec is a board coordinate or a step between coordinates.
type Vec struct {
    X, Y int
}

// Step vectors for the four line families.
var (
    Right     = Vec{1, 0}
    Down      = Vec{0, 1}
    DownRight = Vec{1, 1}
    DownLeft  = Vec{-1, 1}
)

// Add returns v + o.
func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }

// Scale returns v multiplied by n on both axes.
func (v Vec) Scale(n int) Vec { return Vec{v.X * n, v.Y * n} }

// IsZero reports whether v is (0, 0).
func (v Vec) IsZero() bool { return v.X == 0 && v.Y == 0 }
