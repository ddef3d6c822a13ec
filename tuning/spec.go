// Package tuning loads author-configured movement values from YAML, with
// embedded defaults and optional hot reload for tuning sessions.
package tuning

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/bluebolt/motion"
)

// MovementSpec mirrors movement.yaml.
type MovementSpec struct {
	Height    float64 `yaml:"height"`
	Radius    float64 `yaml:"radius"`
	MoveSpeed float64 `yaml:"move_speed"`
	DashSpeed float64 `yaml:"dash_speed"`
	JumpForce float64 `yaml:"jump_force"`
	Gravity   float64 `yaml:"gravity"`
}

// LoadMovementSpec returns the embedded default tuning.
func LoadMovementSpec() (*MovementSpec, error) {
	return unmarshalSpec("movement.yaml", defaultMovement)
}

// LoadMovementSpecFile loads tuning from a file on disk.
func LoadMovementSpecFile(path string) (*MovementSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tuning: load %s: %w", path, err)
	}
	return unmarshalSpec(path, data)
}

func unmarshalSpec(name string, data []byte) (*MovementSpec, error) {
	var spec MovementSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("tuning: unmarshal %s: %w", name, err)
	}
	if err := spec.validate(); err != nil {
		return nil, fmt.Errorf("tuning: %s: %w", name, err)
	}
	return &spec, nil
}

func (s *MovementSpec) validate() error {
	if s.Height <= 0 || s.Radius <= 0 {
		return fmt.Errorf("height and radius must be positive (got %g, %g)", s.Height, s.Radius)
	}
	if s.Radius*2 > s.Height {
		return fmt.Errorf("radius %g too large for height %g", s.Radius, s.Height)
	}
	return nil
}

// Config maps the spec onto the default movement-plane basis.
func (s *MovementSpec) Config() motion.Config {
	cfg := motion.DefaultConfig()
	cfg.Height = s.Height
	cfg.Radius = s.Radius
	cfg.MoveSpeed = s.MoveSpeed
	cfg.DashSpeed = s.DashSpeed
	cfg.JumpForce = s.JumpForce
	cfg.GravityScale = s.Gravity
	return cfg
}
