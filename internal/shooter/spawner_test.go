package shooter

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/star-shooter/internal/theme"
)

func TestSpawnRanges(t *testing.T) {
	s := NewSpawner(rand.New(rand.NewSource(7)))

	for i := range 2000 {
		en := s.Spawn()
		if en.X < SpawnMargin || en.X >= FieldWidth-SpawnMargin {
			t.Fatalf("spawn %d: x = %v outside [%d, %d)", i, en.X, SpawnMargin, FieldWidth-SpawnMargin)
		}
		if en.Y != SpawnY {
			t.Fatalf("spawn %d: y = %v, expected %d", i, en.Y, SpawnY)
		}
		if en.R < EnemyMinRadius || en.R >= EnemyMaxRadius {
			t.Fatalf("spawn %d: r = %v outside range", i, en.R)
		}
		if en.Speed < EnemyMinSpeed || en.Speed >= EnemyMaxSpeed {
			t.Fatalf("spawn %d: speed = %v outside range", i, en.Speed)
		}
		if en.Sway < EnemyMinSway || en.Sway >= EnemyMaxSway {
			t.Fatalf("spawn %d: sway = %v outside range", i, en.Sway)
		}
	}
}

func TestSpawnVariants(t *testing.T) {
	tests := []struct {
		name     string
		variants []theme.Variant
		expected []theme.Variant
	}{
		{"none", nil, []theme.Variant{theme.VariantDefault}},
		{"single", []theme.Variant{"saucer"}, []theme.Variant{"saucer"}},
		{"two", []theme.Variant{"crab", "parrot"}, []theme.Variant{"crab", "parrot"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSpawner(rand.New(rand.NewSource(3)), tt.variants...)
			seen := make(map[theme.Variant]int)
			for range 500 {
				seen[s.Spawn().Variant]++
			}

			if len(seen) != len(tt.expected) {
				t.Errorf("saw %d variants, expected %d: %v", len(seen), len(tt.expected), seen)
			}
			for _, v := range tt.expected {
				if seen[v] == 0 {
					t.Errorf("variant %q never spawned", v)
				}
			}
		})
	}
}

func TestSpawnerDeterministic(t *testing.T) {
	a := NewSpawner(rand.New(rand.NewSource(99)), "crab", "parrot")
	b := NewSpawner(rand.New(rand.NewSource(99)), "crab", "parrot")

	for i := range 50 {
		ea, eb := a.Spawn(), b.Spawn()
		if ea != eb {
			t.Fatalf("spawn %d differs: %+v vs %+v", i, ea, eb)
		}
	}
}
