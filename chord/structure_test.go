package chord

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewChordStructureHasUnison(t *testing.T) {
	assert := assert.New(t)
	s := NewChordStructure()

	offset, ok := s.Offset(N1)
	assert.True(ok)
	assert.Equal(PitchOffset(0), offset)

	for i := 1; i < PitchClassCount; i++ {
		class, _ := PitchClassFromInt(i)
		_, ok := s.Offset(class)
		assert.False(ok)
	}
}

func TestInsertOverwrites(t *testing.T) {
	assert := assert.New(t)

	s := NewChordStructure().
		Insert(ChordComponent{N5, 1}).
		Insert(ChordComponent{N5, -1})

	offset, ok := s.Offset(N5)
	assert.True(ok)
	assert.Equal(PitchOffset(-1), offset)
}

func TestInsertManyLaterDuplicateWins(t *testing.T) {
	assert := assert.New(t)

	s := NewChordStructure().InsertMany([]ChordComponent{
		{N3, 0},
		{N7, 1},
		{N7, -1},
	})

	offset, ok := s.Offset(N7)
	assert.True(ok)
	assert.Equal(PitchOffset(-1), offset)
}

func TestInsertLeavesReceiverUntouched(t *testing.T) {
	assert := assert.New(t)

	base := NewChordStructure()
	altered := base.Insert(ChordComponent{N3, -1})

	_, ok := base.Offset(N3)
	assert.False(ok)
	_, ok = altered.Offset(N3)
	assert.True(ok)
}

func TestMergeIsRightBiased(t *testing.T) {
	assert := assert.New(t)

	a := NewChordStructure().InsertMany([]ChordComponent{{N3, 0}, {N5, 0}})
	b := StructureFromComponent(ChordComponent{N5, 1})

	merged := a.Merge(b)

	offset, ok := merged.Offset(N5)
	assert.True(ok)
	assert.Equal(PitchOffset(1), offset)

	// degrees absent from the right side are untouched
	offset, ok = merged.Offset(N3)
	assert.True(ok)
	assert.Equal(PitchOffset(0), offset)
}

func TestMergeWithEmptyIsNoOp(t *testing.T) {
	assert := assert.New(t)

	a := NewChordStructure().InsertMany([]ChordComponent{{N3, -1}, {N7, 1}})
	assert.Equal(a, a.Merge(ChordStructure{}))
}
