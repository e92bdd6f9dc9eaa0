package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Carmen-Shannon/spaces/simulation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const earthRecord = `{
  "name": "earth",
  "compute values": {
    "mass": 5.97,
    "radius": 6371.0
  },
  "enter simulation values": {
    "enter speed": [0.0, 29.8, 0.0],
    "enter position": [149.6, 0.0, 0.0]
  }
}`

func TestLoadBody(t *testing.T) {
	path := filepath.Join(t.TempDir(), "earth.json")
	require.NoError(t, os.WriteFile(path, []byte(earthRecord), 0o644))

	store := NewStore(WithWorkers(1))
	body, err := store.LoadBody(path)
	require.NoError(t, err)

	assert.Equal(t, "earth", body.Name)
	assert.Equal(t, float32(5.97), body.Physics.Mass)
	assert.Equal(t, float32(6371.0), body.Physics.Radius)
	assert.Equal(t, [3]float32{0, 29.8, 0}, body.Entry.Speed)
	assert.Equal(t, [3]float32{149.6, 0, 0}, body.Entry.Position)
}

func TestLoadBodyMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store := NewStore(WithWorkers(1))
	_, err := store.LoadBody(path)
	assert.Error(t, err)
}

func TestLoadDirOrdersByFileName(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(WithWorkers(4))

	names := []string{"venus", "mars", "earth"}
	for _, name := range names {
		body := simulation.Body{
			Name:    name,
			Physics: simulation.PhysicsProperties{Mass: 1, Radius: 1},
		}
		require.NoError(t, store.SaveBody(filepath.Join(dir, name+".json"), body))
	}
	// Non-record files are skipped.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore"), 0o644))

	bodies, err := store.LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, bodies, 3)

	assert.Equal(t, "earth", bodies[0].Name)
	assert.Equal(t, "mars", bodies[1].Name)
	assert.Equal(t, "venus", bodies[2].Name)
}

func TestLoadDirPropagatesDecodeFailure(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("???"), 0o644))

	store := NewStore(WithWorkers(2))
	_, err := store.LoadDir(dir)
	assert.Error(t, err)
}

func TestLoadDirMissingDirectory(t *testing.T) {
	store := NewStore(WithWorkers(1))
	_, err := store.LoadDir(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}

func TestSaveBodyRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "luna.json")
	store := NewStore(WithWorkers(1))

	in := simulation.Body{
		Name:    "luna",
		Physics: simulation.PhysicsProperties{Mass: 0.073, Radius: 1737.4},
		Entry: simulation.EntryConfiguration{
			Speed:    [3]float32{1.02, 0, 0},
			Position: [3]float32{0, 0.384, 0},
		},
	}
	require.NoError(t, store.SaveBody(path, in))

	out, err := store.LoadBody(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	// The on-disk format keeps the stable field names.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"compute values"`)
	assert.Contains(t, string(data), `"enter simulation values"`)
	assert.Contains(t, string(data), `"enter speed"`)
	assert.Contains(t, string(data), `"enter position"`)
}
