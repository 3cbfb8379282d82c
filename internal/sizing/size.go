// Package sizing provides overflow-checked size arithmetic for pack stream
// sizes and stream positions.
package sizing

// AddUint64 adds two uint64 values, returning (result, false) on overflow.
func AddUint64(a, b uint64) (uint64, bool) {
	sum := a + b
	if sum < a {
		return 0, false
	}
	return sum, true
}

// SumUint64 adds all values, returning (sum, false) on overflow.
func SumUint64(values ...uint64) (uint64, bool) {
	var sum uint64
	for _, v := range values {
		var ok bool
		if sum, ok = AddUint64(sum, v); !ok {
			return 0, false
		}
	}
	return sum, true
}
