// internal/system/rotation.go
package system

import (
	"math"

	"go-corn-defense/internal/config"
	"go-corn-defense/internal/entity"
	"go-corn-defense/internal/utils"
)

// RotationSystem turns towers toward their targets. Below the snap
// threshold the facing snaps exactly onto the bearing, which stops the
// micro-oscillation a pure interpolation would produce.
type RotationSystem struct {
	ecs    *entity.ECS
	tuning config.Tuning
}

func NewRotationSystem(ecs *entity.ECS, tuning config.Tuning) *RotationSystem {
	return &RotationSystem{ecs: ecs, tuning: tuning}
}

func (s *RotationSystem) Update(deltaTime float64) {
	for id := range s.ecs.Towers {
		target, ok := s.ecs.Targets.Get(id)
		if !ok {
			continue
		}
		towerTr := s.ecs.Transforms[id]
		targetTr := s.ecs.Transforms[target]
		if towerTr == nil || targetTr == nil {
			// Target may have just been invalidated; skip this tick.
			continue
		}

		dir := targetTr.Position.Sub(towerTr.Position)
		if math.Hypot(dir.X, dir.Z) < 1e-9 {
			continue
		}
		bearing := math.Atan2(dir.X, dir.Z)

		if math.Abs(utils.AngleDiff(towerTr.Yaw, bearing)) < s.tuning.SnapThreshold {
			towerTr.Yaw = bearing
		} else {
			towerTr.Yaw = utils.RotateToward(towerTr.Yaw, bearing, s.tuning.RotationSpeed*deltaTime)
		}
	}
}
