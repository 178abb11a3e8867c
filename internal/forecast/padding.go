package forecast

// padSparse builds a chart series of length totalLen where every slot is nil
// except sub-sampled future points. Future step s (1-based) lands at index
// lastIdx+s; only steps on the stride, plus the final horizon step, are
// written. Indexes past totalLen are dropped.
func padSparse(totalLen, lastIdx int, future []float64, horizon, targetPoints int) []*float64 {
	out := make([]*float64, totalLen)

	stride := 1
	if targetPoints > 0 && horizon/targetPoints > 1 {
		stride = horizon / targetPoints
	}

	for s := 1; s <= horizon; s++ {
		k := lastIdx + s
		if k >= totalLen {
			break
		}
		if s%stride == 0 || s == horizon {
			v := future[s-1]
			out[k] = &v
		}
	}
	return out
}

// clampFloor copies prices with every value raised to at least floor, so the
// log transform never sees zero or negative input.
func clampFloor(prices []float64, floor float64) []float64 {
	out := make([]float64, len(prices))
	for i, p := range prices {
		if p < floor {
			p = floor
		}
		out[i] = p
	}
	return out
}
