package ecs

import (
	"testing"

	"github.com/younwookim/nightlight/internal/domain/entity"
	"github.com/younwookim/nightlight/internal/physics"
)

func populate(n int) *World {
	w := NewWorld()
	for i := 0; i < n; i++ {
		w.AddEnemy(&entity.Enemy{ID: w.NewEntity(), Body: physics.Handle(i + 1), Health: float64(i % 10)})
	}
	return w
}

// Sorted iteration is what every stage pays for determinism; compare it
// with ranging over the map directly.

func BenchmarkEnemyIDs_Sorted(b *testing.B) {
	w := populate(200)
	var sum float64
	for n := 0; n < b.N; n++ {
		sum = 0
		for _, id := range w.EnemyIDs() {
			sum += w.Enemies[id].Health
		}
	}
	_ = sum
}

func BenchmarkEnemyIDs_Map(b *testing.B) {
	w := populate(200)
	var sum float64
	for n := 0; n < b.N; n++ {
		sum = 0
		for _, e := range w.Enemies {
			sum += e.Health
		}
	}
	_ = sum
}

func BenchmarkEnemyByBody(b *testing.B) {
	w := populate(200)
	for n := 0; n < b.N; n++ {
		w.EnemyByBody(physics.Handle(n%200 + 1))
	}
}
