// internal/config/tuning.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning holds the combat policy knobs that may be overridden from a YAML
// file without a rebuild. Zero values fall back to the compiled defaults.
type Tuning struct {
	RotationSpeed      float64 `yaml:"rotation_speed"`
	SnapThreshold      float64 `yaml:"snap_threshold"`
	MinFacingAccuracy  float64 `yaml:"min_facing_accuracy"`
	ProjectileLifetime float64 `yaml:"projectile_lifetime"`
}

func DefaultTuning() Tuning {
	return Tuning{
		RotationSpeed:      RotationSpeed,
		SnapThreshold:      SnapThreshold,
		MinFacingAccuracy:  MinFacingAccuracy,
		ProjectileLifetime: ProjectileLifetime,
	}
}

// LoadTuning reads a YAML tuning file. A missing file is not an error: the
// defaults are returned. A malformed file is.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return t, nil
		}
		return t, fmt.Errorf("failed to read tuning file: %w", err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("failed to unmarshal tuning file: %w", err)
	}
	def := DefaultTuning()
	if t.RotationSpeed <= 0 {
		t.RotationSpeed = def.RotationSpeed
	}
	if t.SnapThreshold <= 0 {
		t.SnapThreshold = def.SnapThreshold
	}
	if t.MinFacingAccuracy <= 0 {
		t.MinFacingAccuracy = def.MinFacingAccuracy
	}
	if t.ProjectileLifetime <= 0 {
		t.ProjectileLifetime = def.ProjectileLifetime
	}
	return t, nil
}
