package mathutil

import "math"

// ARPALogZero is the log10 value ARPA files use to represent log(0).
const ARPALogZero = -99.0

// Log10ToLn converts a base-10 log probability to natural log.
// ARPALogZero and anything below it maps to -Inf.
func Log10ToLn(lp float64) float64 {
	if lp <= ARPALogZero {
		return math.Inf(-1)
	}
	return lp * math.Ln10
}

// LnToLog10 converts a natural log probability to base 10, clamping -Inf to ARPALogZero.
func LnToLog10(lp float64) float64 {
	if math.IsInf(lp, -1) {
		return ARPALogZero
	}
	v := lp / math.Ln10
	if v < ARPALogZero {
		return ARPALogZero
	}
	return v
}

// Perplexity returns exp(-logProb/tokens).
// tokens == 0 is not guarded: the result is NaN or +Inf.
func Perplexity(logProb float64, tokens int) float64 {
	return math.Exp(-logProb / float64(tokens))
}

// SumLogs returns the sum of natural logs of ps.
// A zero probability makes the result -Inf.
func SumLogs(ps []float64) float64 {
	total := 0.0
	for _, p := range ps {
		total += math.Log(p)
	}
	return total
}
