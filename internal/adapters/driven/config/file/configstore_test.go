package file

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/blast-util/internal/core/domain"
)

const sampleConfig = `
[search]
database = "refseq_rna"
limit = 25
matrix = "BLOSUM45"
e_value = 0.5
output_folder = "results"

[ncbi]
email = "dev@example.org"
request_interval = "3s"
poll_interval = "20s"
max_initial_wait = "bogus"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blast.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestNewConfigStore_EmptyPath(t *testing.T) {
	store, err := NewConfigStore("")

	require.NoError(t, err)
	assert.Equal(t, "", store.Path())
	_, ok := store.Get("search.database")
	assert.False(t, ok)
}

func TestNewConfigStore_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")

	_, err := NewConfigStore(path)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), path)
}

func TestNewConfigStore_InvalidTOML(t *testing.T) {
	path := writeConfig(t, "[search\ndatabase = ")

	_, err := NewConfigStore(path)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	path := writeConfig(t, sampleConfig)
	store, err := NewConfigStore(path)
	require.NoError(t, err)

	assert.Equal(t, path, store.Path())
	assert.Equal(t, "refseq_rna", store.GetString("search.database"))
	assert.Equal(t, 25, store.GetInt("search.limit"))
	assert.Equal(t, "BLOSUM45", store.GetString("search.matrix"))
	assert.InDelta(t, 0.5, store.GetFloat("search.e_value"), 1e-12)
	assert.Equal(t, "results", store.GetString("search.output_folder"))
	assert.Equal(t, "dev@example.org", store.GetString("ncbi.email"))
	assert.Equal(t, 3*time.Second, store.GetDuration("ncbi.request_interval"))
	assert.Equal(t, 20*time.Second, store.GetDuration("ncbi.poll_interval"))
}

func TestConfigStore_WrongTypesReadAsZero(t *testing.T) {
	store, err := NewConfigStore(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "", store.GetString("search.limit"))
	assert.Equal(t, 0, store.GetInt("search.database"))
	assert.Equal(t, float64(0), store.GetFloat("search.matrix"))
	assert.Equal(t, time.Duration(0), store.GetDuration("ncbi.max_initial_wait"))
	assert.Equal(t, time.Duration(0), store.GetDuration("ncbi.missing"))
}

func TestConfigStore_GetFloatWidensIntegers(t *testing.T) {
	store, err := NewConfigStore(writeConfig(t, "[search]\ne_value = 10\n"))
	require.NoError(t, err)

	assert.Equal(t, 10.0, store.GetFloat("search.e_value"))
}

func TestConfigStore_Reload(t *testing.T) {
	path := writeConfig(t, "[search]\ndatabase = \"nt\"\n")
	store, err := NewConfigStore(path)
	require.NoError(t, err)
	assert.Equal(t, "nt", store.GetString("search.database"))

	require.NoError(t, os.WriteFile(path, []byte("[search]\ndatabase = \"nr\"\n"), 0600))
	require.NoError(t, store.Load())

	assert.Equal(t, "nr", store.GetString("search.database"))
}

func TestFlattenMap(t *testing.T) {
	nested := map[string]any{
		"a": map[string]any{
			"b": int64(1),
			"c": map[string]any{"d": "deep"},
		},
		"top": true,
	}

	flat := flattenMap(nested, "")

	assert.Equal(t, map[string]any{
		"a.b":   int64(1),
		"a.c.d": "deep",
		"top":   true,
	}, flat)
}
