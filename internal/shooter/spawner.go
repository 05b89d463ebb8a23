package shooter

import (
	"math/rand"

	"github.com/vovakirdan/star-shooter/internal/theme"
)

// Spawner creates enemies at random positions along the top of the field.
type Spawner struct {
	rng      *rand.Rand
	variants []theme.Variant
}

// NewSpawner creates a spawner drawing from rng.
// Variants are picked uniformly; with none, enemies get theme.VariantDefault.
func NewSpawner(rng *rand.Rand, variants ...theme.Variant) *Spawner {
	return &Spawner{
		rng:      rng,
		variants: append([]theme.Variant(nil), variants...),
	}
}

// Spawn returns a new enemy just above the visible area.
func (s *Spawner) Spawn() Enemy {
	return Enemy{
		X:       SpawnMargin + s.rng.Float64()*(FieldWidth-2*SpawnMargin),
		Y:       SpawnY,
		R:       s.uniform(EnemyMinRadius, EnemyMaxRadius),
		Speed:   s.uniform(EnemyMinSpeed, EnemyMaxSpeed),
		Sway:    s.uniform(EnemyMinSway, EnemyMaxSway),
		Variant: s.variant(),
	}
}

// uniform returns a value in [lo, hi).
func (s *Spawner) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

func (s *Spawner) variant() theme.Variant {
	switch len(s.variants) {
	case 0:
		return theme.VariantDefault
	case 1:
		return s.variants[0]
	default:
		return s.variants[s.rng.Intn(len(s.variants))]
	}
}
