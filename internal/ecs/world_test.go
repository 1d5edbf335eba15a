package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/nightlight/internal/domain/entity"
)

func TestNewWorld(t *testing.T) {
	w := NewWorld()

	assert.NotNil(t, w)
	assert.Equal(t, EntityID(1), w.nextID)
	assert.NotNil(t, w.Enemies)
	assert.Nil(t, w.Player)
	assert.False(t, w.Beam.Visible)
}

func TestNewEntity(t *testing.T) {
	w := NewWorld()

	id1 := w.NewEntity()
	id2 := w.NewEntity()
	id3 := w.NewEntity()

	assert.Equal(t, EntityID(1), id1)
	assert.Equal(t, EntityID(2), id2)
	assert.Equal(t, EntityID(3), id3)
	assert.Equal(t, EntityID(4), w.nextID)
}

func TestEntityIDNeverRecycled(t *testing.T) {
	w := NewWorld()

	id1 := w.NewEntity()
	w.AddEnemy(entity.NewEnemy(id1, 10, 1, 10, 1, entity.DefaultSizeCurve))

	w.DestroyEntity(id1)

	id2 := w.NewEntity()
	assert.NotEqual(t, id1, id2, "Entity IDs should never be recycled")
	assert.Equal(t, EntityID(2), id2)
}

func TestDestroyEntity(t *testing.T) {
	w := NewWorld()
	id := w.NewEntity()
	w.AddEnemy(entity.NewEnemy(id, 10, 1, 10, 1, entity.DefaultSizeCurve))

	require.True(t, w.Exists(id))
	owner, ok := w.Owner(10)
	require.True(t, ok)
	assert.Equal(t, id, owner)

	w.DestroyEntity(id)

	assert.False(t, w.Exists(id))
	_, ok = w.Owner(10)
	assert.False(t, ok, "body index is cleared with the entity")
	assert.Zero(t, w.EnemyCount())

	// destroying twice is harmless
	w.DestroyEntity(id)
}

func TestBodyLookups(t *testing.T) {
	w := NewWorld()

	player := entity.NewPlayer(w.NewEntity(), 1, 3, 100)
	w.AddPlayer(player)
	enemy := entity.NewEnemy(w.NewEntity(), 2, 1, 10, 1, entity.DefaultSizeCurve)
	w.AddEnemy(enemy)
	mirror := &entity.Mirror{ID: w.NewEntity(), Body: 3}
	w.AddMirror(mirror)

	got, ok := w.EnemyByBody(2)
	require.True(t, ok)
	assert.Same(t, enemy, got)

	_, ok = w.EnemyByBody(3)
	assert.False(t, ok, "a mirror body is not an enemy")

	m, ok := w.MirrorByBody(3)
	require.True(t, ok)
	assert.Same(t, mirror, m)

	_, ok = w.MirrorByBody(99)
	assert.False(t, ok)

	w.DestroyEntity(player.ID)
	assert.Nil(t, w.Player)
	_, ok = w.Owner(1)
	assert.False(t, ok)
}

func TestEnemyIDs_Sorted(t *testing.T) {
	w := NewWorld()
	for i := 0; i < 20; i++ {
		id := w.NewEntity()
		w.AddEnemy(entity.NewEnemy(id, 0, 1, 10, 1, entity.DefaultSizeCurve))
	}
	w.DestroyEntity(5)

	ids := w.EnemyIDs()
	require.Len(t, ids, 19)
	for i := 1; i < len(ids); i++ {
		assert.Less(t, ids[i-1], ids[i])
	}
	assert.NotContains(t, ids, EntityID(5))
}

func TestTorches(t *testing.T) {
	w := NewWorld()
	b := &entity.Torch{ID: 4}
	a := &entity.Torch{ID: 2}
	w.AddTorch(b)
	w.AddTorch(a)

	assert.Equal(t, []EntityID{2, 4}, w.TorchIDs())
	assert.True(t, w.Exists(4))
	w.DestroyEntity(4)
	assert.Equal(t, []EntityID{2}, w.TorchIDs())
}
