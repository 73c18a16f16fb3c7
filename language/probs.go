package language

// TokenProbs holds one probability per token of a sentence, in the order the
// producing model walked the sentence. Values[j] of a RightToLeft sequence
// belongs to sentence position len(Values)-1-j.
type TokenProbs struct {
	Values    []float64
	Direction Direction
}

// Len returns the number of tokens scored.
func (p TokenProbs) Len() int {
	return len(p.Values)
}

// At returns the probability for sentence position pos (left-to-right),
// regardless of the traversal direction.
func (p TokenProbs) At(pos int) float64 {
	if p.Direction == RightToLeft {
		return p.Values[len(p.Values)-1-pos]
	}
	return p.Values[pos]
}

// Aligned returns a copy of the values in left-to-right sentence order.
func (p TokenProbs) Aligned() []float64 {
	out := make([]float64, len(p.Values))
	for i := range out {
		out[i] = p.At(i)
	}
	return out
}
