package jumprand

import (
	"testing"

	"github.com/zeebo/assert"
)

func TestJumpThunkNamesCallSite(t *testing.T) {
	var th JumpThunk
	assert.Equal(t, th.Name(), "")

	func() {
		timer := th.Start()
		timer.Stop()
	}()

	assert.That(t, th.Name() != "")
	assert.Equal(t, th.Calls(), int64(1))
}

func TestJumpThunkAccumulatesAcrossStarts(t *testing.T) {
	var th JumpThunk

	for i := 0; i < 5; i++ {
		timer := th.Start()
		timer.Stop()
	}

	assert.Equal(t, th.Calls(), int64(5))
	assert.That(t, th.Nanos() >= 0)
}

func TestJumpThunkInstrumentsGeneratorJumps(t *testing.T) {
	var th JumpThunk
	k, err := NewKiss(kissSeed())
	assert.NoError(t, err)

	timer := th.Start()
	k.JumpAhead(1000)
	timer.Stop()

	assert.Equal(t, th.Calls(), int64(1))
}
