// Package ecs is the entity registry of one level. Each entity kind lives in
// its own map keyed by a never-recycled ID, and physics bodies are indexed
// back to the entity that owns them.
package ecs

import (
	"slices"

	"github.com/younwookim/nightlight/internal/domain/entity"
	"github.com/younwookim/nightlight/internal/physics"
)

// EntityID is a unique identifier for an entity (never recycled)
type EntityID = entity.EntityID

// World holds the entities of one level and the next entity ID
type World struct {
	nextID EntityID

	Enemies map[EntityID]*entity.Enemy
	Mirrors map[EntityID]*entity.Mirror
	Torches map[EntityID]*entity.Torch

	// Singletons
	Player *entity.Player
	Beam   entity.ReflectedBeam

	bodies map[physics.Handle]EntityID
}

// NewWorld creates a new empty world
func NewWorld() *World {
	return &World{
		nextID:  1, // 0 is "nil"
		Enemies: make(map[EntityID]*entity.Enemy),
		Mirrors: make(map[EntityID]*entity.Mirror),
		Torches: make(map[EntityID]*entity.Torch),
		bodies:  make(map[physics.Handle]EntityID),
	}
}

// NewEntity returns a new unique entity ID
func (w *World) NewEntity() EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// AddPlayer registers the player singleton, replacing any previous one.
func (w *World) AddPlayer(p *entity.Player) {
	if w.Player != nil {
		delete(w.bodies, w.Player.Body)
	}
	w.Player = p
	w.bodies[p.Body] = p.ID
}

// AddEnemy registers an enemy.
func (w *World) AddEnemy(e *entity.Enemy) {
	w.Enemies[e.ID] = e
	w.bodies[e.Body] = e.ID
}

// AddMirror registers a mirror.
func (w *World) AddMirror(m *entity.Mirror) {
	w.Mirrors[m.ID] = m
	w.bodies[m.Body] = m.ID
}

// AddTorch registers a torch. Torches have no body.
func (w *World) AddTorch(t *entity.Torch) {
	w.Torches[t.ID] = t
}

// DestroyEntity removes an entity of any kind
func (w *World) DestroyEntity(id EntityID) {
	if e, ok := w.Enemies[id]; ok {
		delete(w.bodies, e.Body)
		delete(w.Enemies, id)
	}
	if m, ok := w.Mirrors[id]; ok {
		delete(w.bodies, m.Body)
		delete(w.Mirrors, id)
	}
	delete(w.Torches, id)
	if w.Player != nil && w.Player.ID == id {
		delete(w.bodies, w.Player.Body)
		w.Player = nil
	}
}

// Exists checks if any entity kind holds id
func (w *World) Exists(id EntityID) bool {
	if _, ok := w.Enemies[id]; ok {
		return true
	}
	if _, ok := w.Mirrors[id]; ok {
		return true
	}
	if _, ok := w.Torches[id]; ok {
		return true
	}
	return w.Player != nil && w.Player.ID == id
}

// Owner returns the entity owning a physics body.
func (w *World) Owner(h physics.Handle) (EntityID, bool) {
	id, ok := w.bodies[h]
	return id, ok
}

// EnemyByBody returns the enemy owning a physics body.
func (w *World) EnemyByBody(h physics.Handle) (*entity.Enemy, bool) {
	id, ok := w.bodies[h]
	if !ok {
		return nil, false
	}
	e, ok := w.Enemies[id]
	return e, ok
}

// MirrorByBody returns the mirror owning a physics body.
func (w *World) MirrorByBody(h physics.Handle) (*entity.Mirror, bool) {
	id, ok := w.bodies[h]
	if !ok {
		return nil, false
	}
	m, ok := w.Mirrors[id]
	return m, ok
}

// EnemyIDs returns live enemy IDs in ascending order so systems iterate
// deterministically.
func (w *World) EnemyIDs() []EntityID {
	ids := make([]EntityID, 0, len(w.Enemies))
	for id := range w.Enemies {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// TorchIDs returns torch IDs in ascending order.
func (w *World) TorchIDs() []EntityID {
	ids := make([]EntityID, 0, len(w.Torches))
	for id := range w.Torches {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// EnemyCount returns the number of live enemies.
func (w *World) EnemyCount() int {
	return len(w.Enemies)
}
