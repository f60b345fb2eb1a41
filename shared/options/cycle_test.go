package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type difficulty int

const (
	easy difficulty = iota
	normal
	hard
)

func TestStepCycle(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		forward bool
		want    int
	}{
		{"forward inside range", 3, true, 4},
		{"forward wraps at max", 5, true, 1},
		{"backward inside range", 3, false, 2},
		{"backward wraps at min", 1, false, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StepCycle(tt.value, 1, 5, tt.forward))
		})
	}
}

func TestStepCycleEnum(t *testing.T) {
	assert.Equal(t, normal, StepCycle(easy, easy, hard, true))
	assert.Equal(t, easy, StepCycle(hard, easy, hard, true))
	assert.Equal(t, hard, StepCycle(easy, easy, hard, false))
}

func TestStepCycleClosure(t *testing.T) {
	const min, max = -2, 6
	for start := min; start <= max; start++ {
		v := start
		for i := 0; i < max-min+1; i++ {
			v = StepCycle(v, min, max, true)
		}
		assert.Equal(t, start, v, "start %d", start)

		for i := 0; i < max-min+1; i++ {
			v = StepCycle(v, min, max, false)
		}
		assert.Equal(t, start, v, "start %d backward", start)
	}
}

func TestPow2CycleForward(t *testing.T) {
	assert.Equal(t, 2, Pow2Cycle(0, 0, 16, true))
	assert.Equal(t, 4, Pow2Cycle(2, 0, 16, true))
	assert.Equal(t, 16, Pow2Cycle(8, 0, 16, true))
	assert.Equal(t, 0, Pow2Cycle(16, 0, 16, true))
	assert.Equal(t, 128, Pow2Cycle(2048, 128, 2048, true))
}

func TestPow2CycleBackward(t *testing.T) {
	assert.Equal(t, 8, Pow2Cycle(16, 0, 16, false))
	assert.Equal(t, 2, Pow2Cycle(4, 0, 16, false))
	assert.Equal(t, 0, Pow2Cycle(2, 0, 16, false))
	assert.Equal(t, 16, Pow2Cycle(0, 0, 16, false))
	assert.Equal(t, 2048, Pow2Cycle(128, 128, 2048, false))
	assert.Equal(t, 128, Pow2Cycle(256, 128, 2048, false))
}

func TestPow2CycleVisitsEveryPower(t *testing.T) {
	var seen []int
	v := 128
	for i := 0; i < 5; i++ {
		seen = append(seen, v)
		v = Pow2Cycle(v, 128, 2048, true)
	}
	assert.Equal(t, []int{128, 256, 512, 1024, 2048}, seen)
	assert.Equal(t, 128, v)
}
