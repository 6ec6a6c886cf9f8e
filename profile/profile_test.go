package profile

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"gioui.org/layout"
	"gioui.org/op"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartNone(t *testing.T) {
	for _, o := range []Opt{"", None} {
		dir := t.TempDir()
		pf, err := o.Start(dir)
		require.NoError(t, err)
		require.NotNil(t, pf)
		pf.Record(layout.Context{Ops: new(op.Ops)})
		pf.Stop()
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	}
}

func TestStartUnknown(t *testing.T) {
	_, err := Opt("gpu").Start("")
	require.ErrorContains(t, err, `unknown profile "gpu"`)
	require.ErrorContains(t, err, "gio")
}

func TestStartCPU(t *testing.T) {
	dir := t.TempDir()
	pf, err := CPU.Start(dir)
	require.NoError(t, err)
	pf.Stop()
	// A second stop is harmless.
	pf.Stop()
	_, err = os.Stat(filepath.Join(dir, "cpu.pprof"))
	require.NoError(t, err)
}

func TestStartGio(t *testing.T) {
	dir := t.TempDir()
	pf, err := Gio.Start(dir)
	require.NoError(t, err)
	for ii := 0; ii < 3; ii++ {
		pf.Record(layout.Context{
			Ops:         new(op.Ops),
			Constraints: layout.Exact(image.Pt(10, 10)),
		})
	}
	pf.Stop()
	pf.Stop()
	data, err := os.ReadFile(filepath.Join(dir, GioFile))
	require.NoError(t, err)
	assert.NotEmpty(t, data, "the csv header is always written")
}

func TestStopNil(t *testing.T) {
	var pf *Profiler
	pf.Stop()
	pf.Record(layout.Context{})
}
