package rootio

import (
	"errors"
	"path/filepath"
	"testing"

	"histview/internal/hist"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go-hep.org/x/hep/groot"
	"go-hep.org/x/hep/groot/rbase"
	"go-hep.org/x/hep/groot/rhist"
	"go-hep.org/x/hep/groot/riofs"
	"go-hep.org/x/hep/hbook"
)

func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.root")

	f, err := groot.Create(path)
	require.NoError(t, err)

	h1 := hbook.NewH1D(3, 0, 3)
	h1.Fill(0.5, 2)
	h1.Fill(1.5, 10)

	h2 := hbook.NewH2D(2, 0, 2, 1, 0, 1)
	h2.Fill(0.5, 0.5, 3)
	h2.Fill(1.5, 0.5, 5)

	run, err := riofs.Dir(f).Mkdir("Run1")
	require.NoError(t, err)
	require.NoError(t, run.Put("energy", rhist.NewH1DFrom(h1)))
	require.NoError(t, run.Put("map", rhist.NewH2DFrom(h2)))

	require.NoError(t, f.Put("energy", rhist.NewH1DFrom(h1)))
	require.NoError(t, f.Put("note", rbase.NewObjString("not a histogram")))

	require.NoError(t, f.Close())
	return path
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.root"))

	var openErr *OpenError
	require.True(t, errors.As(err, &openErr))
	assert.Contains(t, openErr.Path, "missing.root")
}

func TestKeysAndLookup(t *testing.T) {
	f, err := Open(writeFixture(t))
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Run1", "energy", "note"}, hist.CanonicalNames(f.Keys()))
	assert.NotZero(t, f.Handle())

	node, err := f.Lookup("Run1")
	require.NoError(t, err)
	dir, ok := node.(*hist.Directory)
	require.True(t, ok)
	assert.Equal(t, []string{"energy", "map"}, hist.CanonicalNames(dir.Keys))

	node, err = f.Lookup("note")
	require.NoError(t, err)
	assert.Equal(t, hist.KindOpaque, node.Kind())
	assert.Equal(t, "TObjString", node.ClassName())
}

func TestLookupHist1D(t *testing.T) {
	f, err := Open(writeFixture(t))
	require.NoError(t, err)
	defer f.Close()

	for _, path := range []string{"energy", "Run1/energy"} {
		node, err := f.Lookup(path)
		require.NoError(t, err, path)

		h, ok := node.(*hist.Hist1D)
		require.True(t, ok, path)
		assert.True(t, hist.Is1DClass(h.ClassName()), h.ClassName())
		assert.Equal(t, []float64{0, 1, 2, 3}, h.Edges)
		assert.Equal(t, []float64{2, 10, 0}, h.Counts)
		assert.NoError(t, h.Validate())
	}
}

func TestLookupHist2D(t *testing.T) {
	f, err := Open(writeFixture(t))
	require.NoError(t, err)
	defer f.Close()

	node, err := f.Lookup("Run1/map")
	require.NoError(t, err)

	h, ok := node.(*hist.Hist2D)
	require.True(t, ok)
	assert.True(t, hist.Is2DClass(h.ClassName()), h.ClassName())
	assert.Equal(t, []float64{0, 1, 2}, h.XEdges)
	assert.Equal(t, []float64{0, 1}, h.YEdges)
	assert.Equal(t, [][]float64{{3}, {5}}, h.Values)
}

func TestLookupFailures(t *testing.T) {
	f, err := Open(writeFixture(t))
	require.NoError(t, err)
	defer f.Close()

	for _, path := range []string{"", "missing", "Run1/missing", "energy/child"} {
		_, err := f.Lookup(path)
		var resErr *ResolutionError
		assert.True(t, errors.As(err, &resErr), path)
	}
}
