package util

func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Scale linearly maps v from the range [srcLo, srcHi) onto [dstLo, dstHi).
func Scale(v, srcLo, srcHi, dstLo, dstHi float64) float64 {
	return (v-srcLo)/(srcHi-srcLo)*(dstHi-dstLo) + dstLo
}
