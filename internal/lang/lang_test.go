package lang

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_FallsBackToKey(t *testing.T) {
	table := Default()

	assert.Equal(t, "Task", table.Get(Task))
	assert.Equal(t, "boards_unknown", table.Get("boards_unknown"))
}

func TestLoad_EmptyPath(t *testing.T) {
	table, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), table)
}

func TestLoad_MergesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "es.yaml")
	content := "boards_task: Tarea\nboards_addTask: Agregar tarea\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	table, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Tarea", table.Get(Task))
	assert.Equal(t, "Agregar tarea", table.Get(AddTask))
	assert.Equal(t, "Edit Task", table.Get(EditTask), "untouched keys keep defaults")
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- not\n- a map\n"), 0o644))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestMerge_DoesNotMutate(t *testing.T) {
	base := Table{"a": "1"}
	merged := base.Merge(Table{"a": "2", "b": "3"})

	assert.Equal(t, "1", base["a"])
	assert.Equal(t, Table{"a": "2", "b": "3"}, merged)
}
