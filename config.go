package popup

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Animation names accepted in YAML options.
const (
	AnimationFallFade = "fallFade"
	AnimationNone     = "none"
)

// optionsFile is the YAML shape of Options.
type optionsFile struct {
	Draggable        bool    `yaml:"draggable"`
	DraggableHeight  float64 `yaml:"draggableHeight"`
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	Position         string  `yaml:"position"`
	AffectBodyScroll bool    `yaml:"affectBodyScroll"`
	Shield           bool    `yaml:"shield"`
	ShieldColor      Color   `yaml:"shieldColor"`
	StartX           float64 `yaml:"startX"`
	StartY           float64 `yaml:"startY"`
	Animation        string  `yaml:"animation"`
	Duration         string  `yaml:"duration"`
	Name             string  `yaml:"name"`
}

// LoadOptions decodes YAML popup options. Keys that are absent keep their
// DefaultOptions value.
func LoadOptions(data []byte) (Options, error) {
	def := DefaultOptions()
	f := optionsFile{
		Position:    def.Position.String(),
		Shield:      def.Shield,
		ShieldColor: def.ShieldColor,
		StartX:      def.StartX,
		StartY:      def.StartY,
		Animation:   AnimationFallFade,
		Duration:    def.Duration.String(),
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Options{}, fmt.Errorf("parse popup options: %w", err)
	}

	opts := def
	opts.Draggable = f.Draggable
	opts.DraggableHeight = f.DraggableHeight
	opts.AffectBodyScroll = f.AffectBodyScroll
	opts.Shield = f.Shield
	opts.ShieldColor = f.ShieldColor
	opts.Name = f.Name

	if f.Width < 0 || f.Height < 0 || f.DraggableHeight < 0 {
		return Options{}, fmt.Errorf("parse popup options: negative size %vx%v (handle %v)",
			f.Width, f.Height, f.DraggableHeight)
	}
	opts.Width = f.Width
	opts.Height = f.Height

	if f.StartX < 0 || f.StartX > 1 || f.StartY < 0 || f.StartY > 1 {
		return Options{}, fmt.Errorf("parse popup options: start (%v, %v) outside [0, 1]", f.StartX, f.StartY)
	}
	opts.StartX = f.StartX
	opts.StartY = f.StartY

	switch f.Position {
	case "fixed":
		opts.Position = PositionFixed
	case "absolute":
		opts.Position = PositionAbsolute
	default:
		return Options{}, fmt.Errorf("parse popup options: unknown position %q", f.Position)
	}

	switch f.Animation {
	case AnimationFallFade:
		opts.Animation = FallFade{}
	case AnimationNone:
		opts.Animation = NoAnimation
	default:
		return Options{}, fmt.Errorf("parse popup options: unknown animation %q", f.Animation)
	}

	d, err := time.ParseDuration(f.Duration)
	if err != nil {
		return Options{}, fmt.Errorf("parse popup options: duration: %w", err)
	}
	if d <= 0 {
		return Options{}, fmt.Errorf("parse popup options: duration %v must be positive", d)
	}
	opts.Duration = d

	return opts, nil
}

// LoadOptionsFile reads and decodes a YAML options file.
func LoadOptionsFile(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("read popup options: %w", err)
	}
	return LoadOptions(data)
}
