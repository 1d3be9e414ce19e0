package colorutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Chandra179/web-utils/pkg/random"
	randommock "github.com/Chandra179/web-utils/tools/mock/pkg/random"
)

func TestHexToRGBA_WhenHashOptional_ShouldProduceIdenticalOutput(t *testing.T) {
	with := HexToRGBA("#ae951e", 1)
	without := HexToRGBA("ae951e", 1)

	assert.Equal(t, with, without)
	assert.Equal(t, "rgba(174,149,30,1)", with)
}

func TestHexToRGBA_WhenInputMalformed_ShouldReturnEmptyString(t *testing.T) {
	for _, in := range []string{"zzzzzz", "#12345", "1234567", "", "#ae95"} {
		assert.Equal(t, "", HexToRGBA(in, 1), "input %q", in)
	}
}

func TestHexToRGBA_WhenAlphaInRange_ShouldKeepIt(t *testing.T) {
	out := HexToRGBA("ae951e", 0.5)

	assert.Equal(t, "rgba(174,149,30,0.5)", out)
}

func TestHexToRGBA_WhenAlphaOutOfRange_ShouldDefaultToOne(t *testing.T) {
	assert.Equal(t, "rgba(174,149,30,1)", HexToRGBA("ae951e", 2))
	assert.Equal(t, "rgba(174,149,30,1)", HexToRGBA("ae951e", -0.1))
}

func TestRandomPastels_WhenCountInRange_ShouldReturnDistinctPaletteMembers(t *testing.T) {
	gen := random.NewRandom()
	palette := PastelPalette()
	members := make(map[string]bool, len(palette))
	for _, c := range palette {
		members[c] = true
	}

	for n := 1; n <= len(palette); n++ {
		out, err := RandomPastels(gen, n)

		assert.NoError(t, err)
		assert.Len(t, out, n)

		seen := make(map[string]bool)
		for _, c := range out {
			assert.True(t, members[c], "color %s not in palette", c)
			assert.False(t, seen[c], "color %s drawn twice", c)
			seen[c] = true
		}
	}
}

func TestRandomPastels_WhenCountOutOfRange_ShouldClamp(t *testing.T) {
	gen := random.NewRandom()

	low, err := RandomPastels(gen, 0)
	assert.NoError(t, err)
	assert.Len(t, low, 1)

	high, err := RandomPastels(gen, 999)
	assert.NoError(t, err)
	assert.Len(t, high, len(PastelPalette()))
}

func TestRandomPastels_WhenGeneratorChoosesIndexes_ShouldDrawWithoutReplacement(t *testing.T) {
	mockGen := &randommock.MockIntGenerator{}
	palette := PastelPalette()

	mockGen.On("IntInRange", float64(0), float64(len(palette)-1)).Return(int64(3), nil).Once()
	mockGen.On("IntInRange", float64(1), float64(len(palette)-1)).Return(int64(1), nil).Once()

	out, err := RandomPastels(mockGen, 2)

	assert.NoError(t, err)
	assert.Equal(t, []string{palette[3], palette[1]}, out)
	mockGen.AssertExpectations(t)
}

func TestPastelPalette_WhenMutated_ShouldNotAffectTheSource(t *testing.T) {
	first := PastelPalette()
	first[0] = "#000000"

	assert.NotEqual(t, "#000000", PastelPalette()[0])
}
