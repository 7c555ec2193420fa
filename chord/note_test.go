package chord

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoteClassDifferenceBounds(t *testing.T) {
	assert := assert.New(t)
	for x := 0; x < NoteClassCount; x++ {
		for y := 0; y < NoteClassCount; y++ {
			a, ok := NoteClassFromInt(x)
			assert.True(ok)
			b, ok := NoteClassFromInt(y)
			assert.True(ok)

			d := a.Difference(b)
			assert.GreaterOrEqual(d, 0)
			assert.Less(d, 12)
			if x == y {
				assert.Equal(0, d)
			}
		}
	}
}

func TestNoteClassDifference(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(2, A.Difference(B))
	assert.Equal(0, A.Difference(A))
	assert.Equal(10, B.Difference(A))
	assert.Equal(1, B.Difference(C))
}

func TestNoteClassFromChar(t *testing.T) {
	assert := assert.New(t)

	for _, c := range []byte("ABCDEFG") {
		n, ok := NoteClassFromChar(c)
		assert.True(ok)
		assert.Equal(string(c), n.String())
	}

	_, ok := NoteClassFromChar('H')
	assert.False(ok)
	_, ok = NoteClassFromChar('a')
	assert.False(ok)
}

func TestNoteClassFromInt(t *testing.T) {
	assert := assert.New(t)

	for i := 0; i < NoteClassCount; i++ {
		n, ok := NoteClassFromInt(i)
		assert.True(ok)
		assert.Equal(i, n.ToInt())
	}

	_, ok := NoteClassFromInt(-1)
	assert.False(ok)
	_, ok = NoteClassFromInt(7)
	assert.False(ok)
}

func TestOffsetCalculation(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(NewNote(E, 0), NewNote(A, 0).GetRelative(ChordComponent{N5, 0}))
	assert.Equal(NewNote(E, -1), NewNote(A, 0).GetRelative(ChordComponent{N5, -1}))
	assert.Equal(NewNote(G, -3), NewNote(F, -1).GetRelative(ChordComponent{N2, -2}))
	assert.Equal(NewNote(F, 1), NewNote(D, 0).GetRelative(ChordComponent{N3, 0}))
	assert.Equal(NewNote(C, 1), NewNote(A, 0).GetRelative(ChordComponent{N3, 0}))
}

func TestGetRelativeExactDistance(t *testing.T) {
	// the resolved note always sits exactly the degree's natural semitone
	// count (plus the explicit alteration) above the root
	assert := assert.New(t)
	root := NewNote(D, 1)
	for i := 0; i < PitchClassCount; i++ {
		class, _ := PitchClassFromInt(i)
		for _, alteration := range []PitchOffset{-2, -1, 0, 1, 2} {
			t.Run(fmt.Sprintf("degree %v alteration %v", i, alteration), func(t *testing.T) {
				rel := root.GetRelative(ChordComponent{class, alteration})

				rootVal := noteClassOffsets[root.Root.ToInt()] + int(root.Offset)
				relVal := noteClassOffsets[rel.Root.ToInt()] + int(rel.Offset)
				want := class.ToRelativeDifference() + int(alteration)
				assert.Equal(want%12, ((relVal-rootVal)%12+12)%12)
			})
		}
	}
}

func TestNoteString(t *testing.T) {
	cases := []struct {
		note Note
		want string
	}{
		{NewNote(C, 0), "C"},
		{NewNote(A, 1), "A#"},
		{NewNote(B, -1), "Bb"},
		{NewNote(G, -3), "Gbbb"},
		{NewNote(F, 2), "F##"},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("formats %v", c.want), func(t *testing.T) {
			if c.note.String() != c.want {
				t.Errorf("got %v, want %v", c.note.String(), c.want)
			}
		})
	}
}
