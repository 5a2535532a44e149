package grid

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordAddVector(t *testing.T) {
	assert.Equal(t, C(27, -3), C(14, 5).Add(V(13, -8)))
}

func TestVectorAddVector(t *testing.T) {
	assert.Equal(t, V(27, -3), V(14, 5).Add(V(13, -8)))
	assert.Equal(t, V(-6, 9), V(-2, 3).Scale(3))
}

func TestCoordOrdering(t *testing.T) {
	cs := []Coord{C(2, 1), C(1, 5), C(1, -2), C(0, 9)}
	slices.SortFunc(cs, Coord.Compare)
	assert.Equal(t, []Coord{C(0, 9), C(1, -2), C(1, 5), C(2, 1)}, cs)

	assert.True(t, C(1, 1).Less(C(1, 2)))
	assert.False(t, C(1, 1).Less(C(1, 1)))
	assert.Equal(t, 0, C(3, 4).Compare(C(3, 4)))
}

func TestCoordSubAndDist(t *testing.T) {
	a, b := C(1, 2), C(-3, 7)
	assert.Equal(t, V(4, -5), a.Sub(b))
	assert.Equal(t, a, b.Add(a.Sub(b)))
	assert.Equal(t, 9, a.MDist(b))
	assert.Equal(t, 9, b.MDist(a))
}

func TestDirections(t *testing.T) {
	var got []Direction
	for d := range Directions() {
		got = append(got, d)
	}
	assert.Equal(t, []Direction{Up, Left, Down, Right}, got)

	assert.Equal(t, V(0, 1), Up.Vector())
	assert.Equal(t, V(0, -1), Down.Vector())
	assert.Equal(t, V(-1, 0), Left.Vector())
	assert.Equal(t, V(1, 0), Right.Vector())
}

func TestTurns(t *testing.T) {
	assert.Equal(t, Right, Up.TurnRight())
	assert.Equal(t, Down, Right.TurnRight())
	assert.Equal(t, Left, Down.TurnRight())
	assert.Equal(t, Up, Left.TurnRight())
	for d := range Directions() {
		assert.Equal(t, d, d.TurnLeft().TurnRight())
		assert.Equal(t, d.Reverse(), d.TurnLeft().TurnLeft())
		assert.Equal(t, V(0, 0), d.Vector().Add(d.Reverse().Vector()))
	}
}

func TestParseDirection(t *testing.T) {
	for r, want := range map[rune]Direction{
		'^': Up, 'v': Down, '<': Left, '>': Right,
		'U': Up, 'D': Down, 'L': Left, 'R': Right,
	} {
		d, ok := ParseDirection(r)
		assert.True(t, ok, "%q", r)
		assert.Equal(t, want, d, "%q", r)
	}
	_, ok := ParseDirection('x')
	assert.False(t, ok)
}
