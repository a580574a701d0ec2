package histstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decibelcooper/pionsel/hist"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "pid__signal__recoT", Key("pid/signal/recoT"))
	assert.Equal(t, "pid/signal/recoT", Name(Key("pid/signal/recoT")))
}

func TestRoundTrip(t *testing.T) {
	b := hist.Binning{N: 5, Low: 0, High: 1}
	raw, err := hist.NewRaw("pid/signal/recoT", b)
	require.NoError(t, err)
	for _, x := range []float64{0.1, 0.1, 0.3, 0.9, 1.2} {
		raw.Fill(x, 1)
	}
	require.NoError(t, raw.Scale(0.5))
	h := raw.Poisson()

	other, err := hist.NewRaw("pid/data/recoT", b)
	require.NoError(t, err)
	other.Fill(0.5, 1)

	path := filepath.Join(t.TempDir(), "out.root")
	w, err := Create(path)
	require.NoError(t, err)
	require.NoError(t, w.PutAll(map[string]*hist.Hist{h.Name: h, other.Name: other.Poisson()}))
	require.NoError(t, w.Close())

	r, err := Open(path)
	require.NoError(t, err)
	defer r.Close()

	assert.Equal(t, []string{"pid/data/recoT", "pid/signal/recoT"}, r.Names())

	got, err := r.Get("pid/signal/recoT")
	require.NoError(t, err)
	assert.Equal(t, b.N, got.Len())
	for i := 0; i < h.Len(); i++ {
		assert.InDelta(t, h.Bin(i).Content, got.Bin(i).Content, 1e-9)
		assert.InDelta(t, h.Bin(i).Err, got.Bin(i).Err, 1e-9)
	}
	assert.InDelta(t, h.Overflow().Content, got.Overflow().Content, 1e-9)

	_, err = r.Get("missing")
	assert.Error(t, err)
}
