package pong

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spaghettifunk/pong/engine"
	"github.com/spaghettifunk/pong/engine/core"
	"github.com/spaghettifunk/pong/engine/math"
)

type Config struct {
	Application ApplicationConfig `toml:"application"`
	Camera      CameraConfig      `toml:"camera"`
	Physics     PhysicsConfig     `toml:"physics"`
	Ball        BallConfig        `toml:"ball"`
	LeftPaddle  PaddleConfig      `toml:"left_paddle"`
	RightPaddle PaddleConfig      `toml:"right_paddle"`
	Match       MatchConfig       `toml:"match"`
}

type ApplicationConfig struct {
	Name      string `toml:"name"`
	X         uint32 `toml:"x"`
	Y         uint32 `toml:"y"`
	Width     uint32 `toml:"width"`
	Height    uint32 `toml:"height"`
	LogLevel  string `toml:"log_level"`
	Frontend  string `toml:"frontend"`
	TargetFPS uint32 `toml:"target_fps"`
}

type CameraConfig struct {
	Left   float32    `toml:"left"`
	Right  float32    `toml:"right"`
	Bottom float32    `toml:"bottom"`
	Top    float32    `toml:"top"`
	Near   float32    `toml:"near"`
	Far    float32    `toml:"far"`
	Eye    [3]float32 `toml:"eye"`
	Target [3]float32 `toml:"target"`
	Up     [3]float32 `toml:"up"`
}

type PhysicsConfig struct {
	PaddleAcceleration float32 `toml:"paddle_acceleration"`
	BounceGain         float32 `toml:"bounce_gain"`
	OffsetGain         float32 `toml:"offset_gain"`
	SpinTransfer       float32 `toml:"spin_transfer"`
}

type BallConfig struct {
	Offset         [2]float32 `toml:"offset"`
	Extent         [2]float32 `toml:"extent"`
	LaunchVelocity [2]float32 `toml:"launch_velocity"`
	ResetVelocity  [2]float32 `toml:"reset_velocity"`
}

type PaddleConfig struct {
	Offset  [2]float32 `toml:"offset"`
	Extent  [2]float32 `toml:"extent"`
	Damping float32    `toml:"damping"`
}

type MatchConfig struct {
	// Points needed to win; 0 plays forever.
	WinScore int `toml:"win_score"`
}

// DefaultConfig matches the classic game: a 1600x900 window, paddles at the
// edges of the [-1, 1] playfield and the ball launched towards the left player.
func DefaultConfig() *Config {
	return &Config{
		Application: ApplicationConfig{
			Name:     "pong",
			X:        100,
			Y:        100,
			Width:    1600,
			Height:   900,
			LogLevel: "info",
			Frontend: engine.FrontendWindow,
		},
		Camera: CameraConfig{
			Left:   -1,
			Right:  1,
			Bottom: -1,
			Top:    1,
			Near:   0,
			Far:    2,
			Eye:    [3]float32{0, 0, 1},
			Target: [3]float32{0, 0, 0},
			Up:     [3]float32{0, 1, 0},
		},
		Physics: PhysicsConfig{
			PaddleAcceleration: 50,
			BounceGain:         1.01,
			OffsetGain:         2,
			SpinTransfer:       0.75,
		},
		Ball: BallConfig{
			Offset:         [2]float32{0, 0},
			Extent:         [2]float32{0.02, 0.04},
			LaunchVelocity: [2]float32{-0.7, 0},
			ResetVelocity:  [2]float32{-1, 0},
		},
		LeftPaddle: PaddleConfig{
			Offset:  [2]float32{-0.95, 0},
			Extent:  [2]float32{0.04, 0.65},
			Damping: 10,
		},
		RightPaddle: PaddleConfig{
			Offset:  [2]float32{0.95, 0},
			Extent:  [2]float32{0.04, 0.65},
			Damping: 5,
		},
		Match: MatchConfig{
			WinScore: 0,
		},
	}
}

// ParseConfig decodes TOML on top of the defaults. Unknown keys are rejected.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("%w: %s", core.ErrInvalidConfig, strict.String())
		}
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			return nil, fmt.Errorf("%w: line %d column %d: %s", core.ErrInvalidConfig, row, col, decodeErr.Error())
		}
		return nil, fmt.Errorf("%w: %w", core.ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig reads the file at path. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		core.LogWarn("config file %s not found, using defaults", path)
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}
	return ParseConfig(data)
}

func (c *Config) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", core.ErrInvalidConfig, fmt.Sprintf(format, args...))
	}

	switch c.Application.Frontend {
	case engine.FrontendWindow, engine.FrontendTerminal:
	default:
		return invalid("application.frontend must be %q or %q, got %q", engine.FrontendWindow, engine.FrontendTerminal, c.Application.Frontend)
	}
	if c.Application.Width == 0 || c.Application.Height == 0 {
		return invalid("application window size must be positive")
	}
	if c.Camera.Left == c.Camera.Right || c.Camera.Bottom == c.Camera.Top || c.Camera.Near == c.Camera.Far {
		return invalid("camera volume is degenerate")
	}
	if c.Camera.Eye == c.Camera.Target {
		return invalid("camera eye and target must differ")
	}
	rects := map[string][2]float32{
		"ball.extent":         c.Ball.Extent,
		"left_paddle.extent":  c.LeftPaddle.Extent,
		"right_paddle.extent": c.RightPaddle.Extent,
	}
	for name, extent := range rects {
		if extent[0] <= 0 || extent[1] <= 0 {
			return invalid("%s must be positive, got %v", name, extent)
		}
	}
	if c.LeftPaddle.Damping < 0 || c.RightPaddle.Damping < 0 {
		return invalid("paddle damping must not be negative")
	}
	if c.Match.WinScore < 0 {
		return invalid("match.win_score must not be negative")
	}
	return nil
}

// Tuning extracts the constants the physics step reads every frame.
func (c *Config) Tuning() Tuning {
	return Tuning{
		PaddleAcceleration: c.Physics.PaddleAcceleration,
		BounceGain:         c.Physics.BounceGain,
		OffsetGain:         c.Physics.OffsetGain,
		SpinTransfer:       c.Physics.SpinTransfer,
		ResetVelocity:      vec2(c.Ball.ResetVelocity),
	}
}

// EngineConfig converts the [application] and [camera] sections for the engine.
func (c *Config) EngineConfig(assetsDir string) *engine.ApplicationConfig {
	return &engine.ApplicationConfig{
		StartPosX:   c.Application.X,
		StartPosY:   c.Application.Y,
		StartWidth:  c.Application.Width,
		StartHeight: c.Application.Height,
		Name:        c.Application.Name,
		LogLevel:    c.Application.LogLevel,
		Frontend:    c.Application.Frontend,
		AssetsDir:   assetsDir,
		TargetFPS:   c.Application.TargetFPS,
		Camera: &engine.CameraConfig{
			Left:   c.Camera.Left,
			Right:  c.Camera.Right,
			Bottom: c.Camera.Bottom,
			Top:    c.Camera.Top,
			Near:   c.Camera.Near,
			Far:    c.Camera.Far,
			Eye:    vec3(c.Camera.Eye),
			Target: vec3(c.Camera.Target),
			Up:     vec3(c.Camera.Up),
		},
	}
}

func vec2(v [2]float32) math.Vec2 {
	return math.NewVec2(v[0], v[1])
}

func vec3(v [3]float32) math.Vec3 {
	return math.NewVec3(v[0], v[1], v[2])
}
