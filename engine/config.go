package engine

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/breakout/parameter"
)

// ErrInvalidConfig is returned by NewSession for configurations that make Tick's invariants unsatisfiable
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the board geometry and round rules for a session
// Zero values are invalid; start from DefaultConfig
type Config struct {
	BoardWidth  float64 `toml:"board_width"`
	BoardHeight float64 `toml:"board_height"`

	BallRadius    float64 `toml:"ball_radius"`
	BallVX        float64 `toml:"ball_vx"` // Units per second
	BallVY        float64 `toml:"ball_vy"`
	SpeedUpFactor float64 `toml:"speed_up_factor"`

	PaddleWidth        float64 `toml:"paddle_width"`
	PaddleHeight       float64 `toml:"paddle_height"`
	PaddleBottomOffset float64 `toml:"paddle_bottom_offset"`

	TargetCount      int     `toml:"target_count"`
	TargetColumns    int     `toml:"target_columns"`
	TargetWidth      float64 `toml:"target_width"`
	TargetHeight     float64 `toml:"target_height"`
	TargetTopMargin  float64 `toml:"target_top_margin"`
	TargetRowSpacing float64 `toml:"target_row_spacing"`

	BottomHitsToLose int `toml:"bottom_hits_to_lose"`

	// Seed drives target kind selection
	Seed uint64 `toml:"seed"`
}

// DefaultConfig returns the 400×600 board with the stock round rules
func DefaultConfig() Config {
	return Config{
		BoardWidth:         parameter.BoardWidth,
		BoardHeight:        parameter.BoardHeight,
		BallRadius:         parameter.BallRadius,
		BallVX:             parameter.BallInitialVX,
		BallVY:             parameter.BallInitialVY,
		SpeedUpFactor:      parameter.BallSpeedUpFactor,
		PaddleWidth:        parameter.PaddleWidth,
		PaddleHeight:       parameter.PaddleHeight,
		PaddleBottomOffset: parameter.PaddleBottomOffset,
		TargetCount:        parameter.TargetCount,
		TargetColumns:      parameter.TargetColumns,
		TargetWidth:        parameter.TargetWidth,
		TargetHeight:       parameter.TargetHeight,
		TargetTopMargin:    parameter.TargetTopMargin,
		TargetRowSpacing:   parameter.TargetRowSpacing,
		BottomHitsToLose:   parameter.BottomHitsToLose,
	}
}

// GridRows returns the number of target rows for the configured count and columns
func (c Config) GridRows() int {
	if c.TargetColumns <= 0 {
		return 0
	}
	return (c.TargetCount + c.TargetColumns - 1) / c.TargetColumns
}

// PaddleY returns the fixed vertical center of the paddle
func (c Config) PaddleY() float64 {
	return c.BoardHeight - c.PaddleBottomOffset
}

// Validate reports the first violated constraint wrapped in ErrInvalidConfig
func (c Config) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...)
	}

	for _, f := range []struct {
		name string
		v    float64
	}{
		{"board_width", c.BoardWidth},
		{"board_height", c.BoardHeight},
		{"ball_radius", c.BallRadius},
		{"ball_vx", c.BallVX},
		{"ball_vy", c.BallVY},
		{"speed_up_factor", c.SpeedUpFactor},
		{"paddle_width", c.PaddleWidth},
		{"paddle_height", c.PaddleHeight},
		{"paddle_bottom_offset", c.PaddleBottomOffset},
		{"target_width", c.TargetWidth},
		{"target_height", c.TargetHeight},
		{"target_top_margin", c.TargetTopMargin},
		{"target_row_spacing", c.TargetRowSpacing},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return invalid("%s must be finite, got %v", f.name, f.v)
		}
	}

	switch {
	case c.BallRadius <= 0:
		return invalid("ball radius must be positive, got %v", c.BallRadius)
	case c.BoardWidth < 2*c.BallRadius || c.BoardHeight < 2*c.BallRadius:
		return invalid("board %vx%v smaller than ball diameter %v", c.BoardWidth, c.BoardHeight, 2*c.BallRadius)
	case c.BallVX == 0 && c.BallVY == 0:
		return invalid("initial ball velocity must be non-zero")
	case c.SpeedUpFactor <= 1:
		return invalid("speed-up factor must exceed 1, got %v", c.SpeedUpFactor)
	case c.BottomHitsToLose <= 0:
		return invalid("bottom hits to lose must be positive, got %d", c.BottomHitsToLose)
	case c.PaddleWidth <= 0 || c.PaddleHeight <= 0:
		return invalid("paddle size must be positive, got %vx%v", c.PaddleWidth, c.PaddleHeight)
	case c.PaddleWidth > c.BoardWidth:
		return invalid("paddle width %v exceeds board width %v", c.PaddleWidth, c.BoardWidth)
	case c.PaddleBottomOffset < 0 || c.PaddleBottomOffset > c.BoardHeight:
		return invalid("paddle offset %v outside board height %v", c.PaddleBottomOffset, c.BoardHeight)
	case c.TargetCount <= 0:
		return invalid("target count must be positive, got %d", c.TargetCount)
	case c.TargetColumns <= 0:
		return invalid("target columns must be positive, got %d", c.TargetColumns)
	case c.TargetWidth <= 0 || c.TargetHeight <= 0:
		return invalid("target size must be positive, got %vx%v", c.TargetWidth, c.TargetHeight)
	case c.TargetWidth > c.BoardWidth/float64(c.TargetColumns):
		return invalid("target width %v exceeds column width %v", c.TargetWidth, c.BoardWidth/float64(c.TargetColumns))
	case c.TargetTopMargin < 0 || c.TargetRowSpacing < c.TargetHeight:
		return invalid("target rows overlap: margin %v, spacing %v, height %v", c.TargetTopMargin, c.TargetRowSpacing, c.TargetHeight)
	}

	gridBottom := c.TargetTopMargin + float64(c.GridRows()-1)*c.TargetRowSpacing + c.TargetHeight
	paddleTop := c.PaddleY() - c.PaddleHeight/2
	if gridBottom > paddleTop {
		return invalid("target grid bottom %v reaches paddle top %v", gridBottom, paddleTop)
	}

	return nil
}
