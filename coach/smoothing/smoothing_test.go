package smoothing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistoryEvictsOldest(t *testing.T) {
	h := NewHistory[int](3)
	assert.Equal(t, 3, h.Cap())
	assert.Empty(t, h.Values())

	h.Push(1)
	h.Push(2)
	assert.Equal(t, []int{1, 2}, h.Values())
	assert.False(t, h.IsFull())

	h.Push(3)
	h.Push(4)
	h.Push(5)
	assert.Equal(t, []int{3, 4, 5}, h.Values())
	assert.Equal(t, 3, h.Len())
	assert.True(t, h.IsFull())

	h.Reset()
	assert.Zero(t, h.Len())
	h.Push(9)
	assert.Equal(t, []int{9}, h.Values())
}

func TestHistoryMinimumCapacity(t *testing.T) {
	h := NewHistory[string](0)
	h.Push("a")
	h.Push("b")
	assert.Equal(t, []string{"b"}, h.Values())
}

func TestMajorityVote(t *testing.T) {
	h := NewHistory[string](DefaultLabelWindow)

	assert.Equal(t, "neutral", MajorityVote(h, "neutral"))
	// tie: neutral entered the window first
	assert.Equal(t, "neutral", MajorityVote(h, "happy"))
	assert.Equal(t, "happy", MajorityVote(h, "happy"))
	assert.Equal(t, "happy", MajorityVote(h, "fear"))
}

func TestMajorityVoteFollowsWindow(t *testing.T) {
	h := NewHistory[string](3)
	for _, label := range []string{"sad", "sad", "sad"} {
		MajorityVote(h, label)
	}

	assert.Equal(t, "sad", MajorityVote(h, "happy"))
	assert.Equal(t, "happy", MajorityVote(h, "happy"))
}

func TestRollingMean(t *testing.T) {
	h := NewHistory[float64](DefaultScoreWindow)
	assert.Equal(t, 60.0, RollingMean(h, 60))
	assert.Equal(t, 70.0, RollingMean(h, 80))

	small := NewHistory[float64](2)
	RollingMean(small, 10)
	RollingMean(small, 20)
	assert.Equal(t, 25.0, RollingMean(small, 30))
}

func TestSeparateHistoriesDoNotShareState(t *testing.T) {
	a := NewHistory[float64](5)
	b := NewHistory[float64](5)

	RollingMean(a, 100)
	assert.Equal(t, 0.0, RollingMean(b, 0))
	assert.Equal(t, 1, a.Len())
}
