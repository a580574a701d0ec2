package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decibelcooper/pionsel/cuttable"
	"github.com/decibelcooper/pionsel/histstore"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute(), "pionsel %v", args)
	return out.String()
}

func TestEndToEnd(t *testing.T) {
	dir := t.TempDir()
	path := func(name string) string { return filepath.Join(dir, name) }

	cfg := []byte(`
scale: 0.5
binning:
  recoT: {bins: 20, low: 0, high: 1}
  muonP: {bins: 20, low: 0, high: 4}
stages:
  - name: muonID
    criteria: [muonID]
  - name: pid
    criteria: [muonID, pionID]
`)
	require.NoError(t, os.WriteFile(path("pionsel.yaml"), cfg, 0o644))

	execute(t, "toy", "-n", "2000", "--seed", "5", "--mc", path("mc.root"), "--data", path("data.root"))
	execute(t, "run", "--config", path("pionsel.yaml"),
		"--mc", path("mc.root"), "--data", path("data.root"),
		"--out", path("out.root"), "--db", path("cuts.sqlite"), "--label", "e2e",
		"--workers", "2")

	r, err := histstore.Open(path("out.root"))
	require.NoError(t, err)
	assert.Contains(t, r.Names(), "pid/signal/recoT")
	assert.Contains(t, r.Names(), "pid/efficiency/muonP")
	h, err := r.Get("truth/data/recoT")
	require.NoError(t, err)
	assert.Equal(t, 20, h.Len())
	require.NoError(t, r.Close())

	st, err := cuttable.NewStore(path("cuts.sqlite"))
	require.NoError(t, err)
	defer st.Close()
	id, err := st.LatestRun(context.Background(), "e2e")
	require.NoError(t, err)
	rows, err := st.Rows(context.Background(), id)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "pid", rows[2].Stage)
	assert.InDelta(t, 2000*0.5, rows[0].TotalMC, 1e-9)
	assert.InDelta(t, 2000, rows[0].Data, 1e-9)

	execute(t, "plot", "--in", path("out.root"), "--stage", "pid", "--out", path("pid.png"))
	info, err := os.Stat(path("pid.png"))
	require.NoError(t, err)
	assert.NotZero(t, info.Size())

	out := execute(t, "config", "--config", path("pionsel.yaml"))
	assert.Contains(t, out, "scale: 0.5")
	assert.Contains(t, execute(t, "version"), "pionsel dev")
}
