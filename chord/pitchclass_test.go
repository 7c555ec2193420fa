package chord

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPitchClassFromInt(t *testing.T) {
	assert := assert.New(t)

	for i := 0; i < PitchClassCount; i++ {
		p, ok := PitchClassFromInt(i)
		assert.True(ok)
		assert.Equal(i, p.Index())
	}

	_, ok := PitchClassFromInt(-1)
	assert.False(ok)
	_, ok = PitchClassFromInt(10)
	assert.False(ok)
}

func TestPitchClassLetterOffsets(t *testing.T) {
	assert := assert.New(t)

	// compound degrees land on the same letter as their simple forms
	assert.Equal(N2.ToInt(), N9.ToInt())
	assert.Equal(N4.ToInt(), N11.ToInt())
	assert.Equal(N6.ToInt(), N13.ToInt())

	assert.Equal(0, N1.ToInt())
	assert.Equal(2, N3.ToInt())
	assert.Equal(4, N5.ToInt())
	assert.Equal(6, N7.ToInt())
}

func TestPitchClassRelativeDifferences(t *testing.T) {
	want := map[PitchClass]int{
		N1: 0, N2: 2, N3: 4, N4: 5, N5: 7,
		N6: 9, N7: 11, N9: 14, N11: 17, N13: 21,
	}

	assert := assert.New(t)
	for class, difference := range want {
		assert.Equal(difference, class.ToRelativeDifference())
	}
}

func TestExtendedIntervals(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([]ChordComponent{{N7, 0}}, N7.ExtendedIntervals())
	assert.Equal([]ChordComponent{{N7, 0}, {N9, 0}}, N9.ExtendedIntervals())
	assert.Equal([]ChordComponent{{N7, 0}, {N9, 0}, {N11, 0}}, N11.ExtendedIntervals())
	assert.Equal([]ChordComponent{{N7, 0}, {N9, 0}, {N11, 0}, {N13, 0}}, N13.ExtendedIntervals())

	for _, class := range []PitchClass{N1, N2, N3, N4, N5, N6} {
		assert.Empty(class.ExtendedIntervals())
	}
}
