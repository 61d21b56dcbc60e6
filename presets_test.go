package trajectory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresets_Valid(t *testing.T) {
	names := PresetNames()
	assert.Equal(t, []string{PresetCubes, PresetTrioTop, PresetTrioTrain, PresetTrioValid}, names)

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			cfg, err := Preset(name)
			require.NoError(t, err)
			assert.Equal(t, name, cfg.Name)
			assert.NoError(t, cfg.Validate())
		})
	}
}

func TestPreset_Unknown(t *testing.T) {
	_, err := Preset("spheres")
	require.ErrorIs(t, err, ErrUnknownPreset)
	assert.Contains(t, err.Error(), "trio-valid")
}

func TestPreset_FreshCopies(t *testing.T) {
	a, err := Preset(PresetTrioValid)
	require.NoError(t, err)
	a.Entities[0].Handles[0][0] = 99
	a.Entities[0].Times.Frequency = 99

	b, err := Preset(PresetTrioValid)
	require.NoError(t, err)
	assert.Equal(t, 0.044713765382766724, b.Entities[0].Handles[0][0])
	assert.Equal(t, trioValidBunnyFreq, b.Entities[0].Times.Frequency)
}

func TestTrioScene_Frequencies(t *testing.T) {
	freqs := func(cfg *SceneConfig) []float64 {
		out := make([]float64, 0, 3)
		for _, e := range cfg.Entities[:3] {
			out = append(out, e.Times.Frequency)
		}
		return out
	}
	assert.Equal(t, []float64{3.33, 3.33, 3.33}, freqs(TrioScene(SplitTrain)))
	assert.Equal(t, []float64{3.33, 2.13, 4.11}, freqs(TrioScene(SplitValid)))

	train, valid := TrioScene(SplitTrain), TrioScene(SplitValid)
	assert.NotEqual(t, train.Entities[3].World.Rows(), valid.Entities[3].World.Rows())
	assert.True(t, train.Entities[3].Times.Squared)
}

func TestCubesScene(t *testing.T) {
	cfg := CubesScene()
	require.Len(t, cfg.Entities, 3)
	for i, e := range cfg.Entities {
		assert.Equal(t, PathOscillator, e.Path)
		assert.Equal(t, float64(i-1), e.Oscillator.Base[1])
		assert.Equal(t, DomainFullPi, e.Times.Domain)
	}
	assert.Equal(t, "cube-1", cfg.Entities[0].Name)
}
