package config

const (
	WindowWidth  = 1024
	WindowHeight = 512

	// Terminal cells map onto this many logical pixels
	CellWidth  = 8
	CellHeight = 16

	FrameRate = 60

	// Emitter defaults
	DefaultBirthRate     = 4
	DefaultMaxCount      = 2000
	DefaultLifeTime      = 1000 // ms
	DefaultLifeTimeRange = 100
	DefaultSize          = 4
	DefaultSizeRange     = 2
	DefaultPositionRange = 10
	DefaultAngle         = 0 // degrees
	DefaultAngleRange    = 360
	DefaultSpeed         = 100 // px per second
	DefaultSpeedRange    = 10

	// Audio-reactive emission
	VisualRingSize  = 8192
	LevelWindow     = 2048
	SmoothingFactor = 0.6
	AudioBoost      = 4.0

	// HUD
	HUDX           = 12
	HUDY           = 20
	HUDLineSpacing = 16
	BirthRateStep  = 1
)
