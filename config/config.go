package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/doomdash/parameter"
)

// EnvPrefix namespaces every environment override, e.g. DOOMDASH_GESTURE_DASH_MAX_DISTANCE
const EnvPrefix = "DOOMDASH_"

type Config struct {
	Gesture Gesture `yaml:"gesture" envPrefix:"GESTURE_"`
	Input   Input   `yaml:"input" envPrefix:"INPUT_"`
	Physics Physics `yaml:"physics" envPrefix:"PHYSICS_"`
	Audio   Audio   `yaml:"audio" envPrefix:"AUDIO_"`
	Logging Logging `yaml:"logging" envPrefix:"LOG_"`
}

// Gesture holds the per-actor tunables of the hand gesture controllers
// Values are not validated; negative distances or speeds produce degenerate but finite motion
type Gesture struct {
	// Speed is shared by dash, uppercut and slam
	Speed    float64  `yaml:"speed" env:"SPEED"`
	Dash     Dash     `yaml:"dash" envPrefix:"DASH_"`
	Uppercut Uppercut `yaml:"uppercut" envPrefix:"UPPERCUT_"`
	Slam     Slam     `yaml:"slam" envPrefix:"SLAM_"`
}

type Dash struct {
	MinDistance   float64 `yaml:"min_distance" env:"MIN_DISTANCE"`
	MaxDistance   float64 `yaml:"max_distance" env:"MAX_DISTANCE"`
	MaxChargeTime float64 `yaml:"max_charge_time" env:"MAX_CHARGE_TIME"`
	MinPunchSpeed float64 `yaml:"min_punch_speed" env:"MIN_PUNCH_SPEED"`
	// HeadBlend is 0 for pure hand direction, 1 for pure head direction
	HeadBlend float64 `yaml:"head_blend" env:"HEAD_BLEND"`
}

type Uppercut struct {
	Distance       float64 `yaml:"distance" env:"DISTANCE"`
	SpeedThreshold float64 `yaml:"speed_threshold" env:"SPEED_THRESHOLD"`
}

type Slam struct {
	Distance       float64 `yaml:"distance" env:"DISTANCE"`
	SpeedThreshold float64 `yaml:"speed_threshold" env:"SPEED_THRESHOLD"`
}

type Input struct {
	PressThreshold float64 `yaml:"press_threshold" env:"PRESS_THRESHOLD"`
}

type Physics struct {
	Gravity     Vec3    `yaml:"gravity" envPrefix:"GRAVITY_"`
	GroundY     float64 `yaml:"ground_y" env:"GROUND_Y"`
	Capsule     Capsule `yaml:"capsule" envPrefix:"CAPSULE_"`
	ArenaExtent float64 `yaml:"arena_extent" env:"ARENA_EXTENT"`
}

type Capsule struct {
	Radius    float64 `yaml:"radius" env:"RADIUS"`
	Height    float64 `yaml:"height" env:"HEIGHT"`
	SkinWidth float64 `yaml:"skin_width" env:"SKIN_WIDTH"`
}

type Audio struct {
	Enabled      bool    `yaml:"enabled" env:"ENABLED"`
	MasterVolume float64 `yaml:"master_volume" env:"MASTER_VOLUME"`
	SampleRate   int     `yaml:"sample_rate" env:"SAMPLE_RATE"`
	Volumes      Volumes `yaml:"volumes" envPrefix:"VOLUME_"`
}

type Volumes struct {
	Charge   float64 `yaml:"charge" env:"CHARGE"`
	Dash     float64 `yaml:"dash" env:"DASH"`
	Uppercut float64 `yaml:"uppercut" env:"UPPERCUT"`
	Slam     float64 `yaml:"slam" env:"SLAM"`
}

type Logging struct {
	Debug     bool   `yaml:"debug" env:"DEBUG"`
	Dir       string `yaml:"dir" env:"DIR"`
	File      string `yaml:"file" env:"FILE"`
	SentryDSN string `yaml:"sentry_dsn" env:"SENTRY_DSN"`
}

// Vec3 is the YAML/env friendly form of a vector
type Vec3 struct {
	X float64 `yaml:"x" env:"X"`
	Y float64 `yaml:"y" env:"Y"`
	Z float64 `yaml:"z" env:"Z"`
}

func (v Vec3) Vec() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// Default returns the built-in tuning
func Default() *Config {
	return &Config{
		Gesture: Gesture{
			Speed: parameter.GestureSpeed,
			Dash: Dash{
				MinDistance:   parameter.DashMinDistance,
				MaxDistance:   parameter.DashMaxDistance,
				MaxChargeTime: parameter.DashMaxChargeTime,
				MinPunchSpeed: parameter.DashMinPunchSpeed,
				HeadBlend:     parameter.DashHeadBlend,
			},
			Uppercut: Uppercut{
				Distance:       parameter.UppercutDistance,
				SpeedThreshold: parameter.UppercutSpeedThreshold,
			},
			Slam: Slam{
				Distance:       parameter.SlamDistance,
				SpeedThreshold: parameter.SlamSpeedThreshold,
			},
		},
		Input: Input{
			PressThreshold: parameter.PressThreshold,
		},
		Physics: Physics{
			Gravity: Vec3{X: parameter.GravityX, Y: parameter.GravityY, Z: parameter.GravityZ},
			GroundY: parameter.GroundY,
			Capsule: Capsule{
				Radius:    parameter.CapsuleRadius,
				Height:    parameter.CapsuleHeight,
				SkinWidth: parameter.CapsuleSkinWidth,
			},
			ArenaExtent: parameter.ArenaExtent,
		},
		Audio: Audio{
			Enabled:      true,
			MasterVolume: parameter.AudioMasterVolume,
			SampleRate:   parameter.AudioSampleRate,
			Volumes: Volumes{
				Charge:   parameter.ChargeCueVolume,
				Dash:     parameter.DashCueVolume,
				Uppercut: parameter.UppercutCueVolume,
				Slam:     parameter.SlamCueVolume,
			},
		},
		Logging: Logging{
			Dir:  "logs",
			File: "doomdash.log",
		},
	}
}

// Load layers defaults, the YAML file at path (skipped when empty) and DOOMDASH_* environment overrides
// Unknown YAML keys are rejected so typos in tuning files surface instead of silently keeping defaults
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := decodeYAML(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
