package pionsel

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloatList(t *testing.T) {
	f := NewFloatList(1, 2, 3)
	assert.False(t, f.Changed())
	assert.Equal(t, "[1,2,3]", f.String())

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Var(f, "beam", "beam direction")
	require.NoError(t, fs.Parse([]string{"--beam", "0, 0.5", "--beam", "1"}))

	assert.True(t, f.Changed())
	assert.Equal(t, []float64{0, 0.5, 1}, f.Values)
	assert.Equal(t, "floats", f.Type())

	assert.Error(t, f.Set("north"))
}

func TestPreciseTicks(t *testing.T) {
	ticks := PreciseTicks{NSuggestedTicks: 5}.Ticks(0, 0.4)

	var labels []string
	for _, tk := range ticks {
		if tk.Label != "" {
			labels = append(labels, tk.Label)
		}
	}
	assert.Equal(t, []string{"0", "0.1", "0.2", "0.3", "0.4"}, labels)
	assert.Len(t, ticks, 9)
	for _, tk := range ticks {
		assert.GreaterOrEqual(t, tk.Value, 0.0)
		assert.LessOrEqual(t, tk.Value, 0.4)
	}

	assert.Nil(t, PreciseTicks{}.Ticks(1, 1))
	assert.NotEmpty(t, PreciseTicks{}.Ticks(-3, 180))
}
