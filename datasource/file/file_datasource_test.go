package file

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateSources(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.csv", "a.csv", "c.txt"} {
		require.Nil(t, ioutil.WriteFile(filepath.Join(dir, name), []byte(name), 0644))
	}
	sources, err := CreateSources(filepath.Join(dir, "*.csv"), filepath.Join(dir, "c.txt"))
	require.Nil(t, err)
	require.Len(t, sources, 3)
	names := make([]string, len(sources))
	for i, s := range sources {
		names[i] = filepath.Base(s.Name())
	}
	require.Equal(t, []string{"a.csv", "b.csv", "c.txt"}, names)

	r, err := sources[0].Open()
	require.Nil(t, err)
	data, err := ioutil.ReadAll(r)
	require.Nil(t, err)
	require.Nil(t, r.Close())
	require.Equal(t, "a.csv", string(data))
}

func TestCreateSourcesWithoutMatches(t *testing.T) {
	_, err := CreateSources(filepath.Join(t.TempDir(), "*.csv"))
	require.NotNil(t, err)

	_, err = CreateSources("[")
	require.NotNil(t, err)
}

func TestOpenMissingFile(t *testing.T) {
	_, err := CreateSource(filepath.Join(t.TempDir(), "missing.csv")).Open()
	require.NotNil(t, err)
}
