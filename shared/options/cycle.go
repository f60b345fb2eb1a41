// Package options holds the stepping rules behind every "click to change"
// menu control: linear steps over a bounded range, power-of-two steps and
// display mode stepping.
package options

// Ordered is any discrete ordered type a setting can be expressed in,
// including named enum types.
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// StepCycle moves value one step through the inclusive range [min, max],
// wrapping to the opposite bound at either end.
func StepCycle[T Ordered](value, min, max T, forward bool) T {
	if forward {
		if value < max {
			return value + 1
		}
		return min
	}
	if value > min {
		return value - 1
	}
	return max
}

// Pow2Cycle moves a value that is zero or a power of two one doubling or
// halving through [min, max]. Zero doubles to 2 and halving below 2 gives 0.
func Pow2Cycle[T Ordered](value, min, max T, forward bool) T {
	if forward {
		if value < max {
			if value < 1 {
				value = 1
			}
			return value * 2
		}
		return min
	}
	if value > min {
		if half := value / 2; half > 1 {
			return half
		}
		return 0
	}
	return max
}
