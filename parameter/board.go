package parameter

// Board
const (
	// BoardWidth is the default board width in board units
	BoardWidth = 400

	// BoardHeight is the default board height in board units
	BoardHeight = 600
)

// Ball
const (
	BallRadius = 8

	// BallInitialVX and BallInitialVY are in board units per second (down-right)
	BallInitialVX = 100.0
	BallInitialVY = 100.0

	// BallSpeedUpFactor scales velocity on every target hit
	BallSpeedUpFactor = 1.1
)

// Paddle
const (
	PaddleWidth  = 100
	PaddleHeight = 5

	// PaddleBottomOffset is the distance from the board bottom to the paddle center
	PaddleBottomOffset = 60

	// PaddleNudgeStep is the keyboard steering distance per key press
	PaddleNudgeStep = 20
)

// Target Grid
const (
	TargetCount      = 16
	TargetColumns    = 4
	TargetWidth      = 60
	TargetHeight     = 40
	TargetTopMargin  = 20
	TargetRowSpacing = 80
)

// Round Rules
const (
	// BottomHitsToLose is the number of bottom-wall hits that ends a round
	BottomHitsToLose = 5
)
