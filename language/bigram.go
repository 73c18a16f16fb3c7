package language

import (
	"math"
	"sort"
)

// Default interpolation weights between the unigram and bigram estimates.
const (
	DefaultUnigramWeight = 0.1
	DefaultBigramWeight  = 0.9
)

// BigramModel is a bigram language model smoothed by fixed-weight interpolation
// with a unigram model. Direction selects which neighbour a token is
// conditioned on: a LeftToRight model is the usual forward bigram model, a
// RightToLeft model generates the sentence from its end towards its start.
type BigramModel struct {
	Direction     Direction
	UnigramWeight float64
	BigramWeight  float64

	unigrams map[string]float64    // token -> P(token)
	bigrams  map[[2]string]float64 // (context, token) -> P(token | context)
	trained  bool
}

// BigramOption configures a BigramModel.
type BigramOption func(*BigramModel)

// WithInterpolation sets the unigram and bigram weights. They are used as
// given; nothing checks that they sum to 1.
func WithInterpolation(unigram, bigram float64) BigramOption {
	return func(m *BigramModel) {
		m.UnigramWeight = unigram
		m.BigramWeight = bigram
	}
}

// NewBigramModel creates an untrained model walking sentences in direction d.
func NewBigramModel(d Direction, opts ...BigramOption) *BigramModel {
	m := &BigramModel{
		Direction:     d,
		UnigramWeight: DefaultUnigramWeight,
		BigramWeight:  DefaultBigramWeight,
		unigrams:      make(map[string]float64),
		bigrams:       make(map[[2]string]float64),
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// Train estimates the model from sentences, replacing anything learned before.
//
// The first occurrence of every token is counted as <unk> so that words never
// seen in training still receive probability mass at test time.
func (m *BigramModel) Train(sentences [][]string) {
	first, last := m.Direction.boundaries()

	unigrams := map[string]float64{first: 0, last: 0, UnknownToken: 0}
	bigrams := make(map[[2]string]float64)
	var total float64

	for _, sentence := range sentences {
		prev := first
		unigrams[first]++
		total++
		for _, w := range m.Direction.orient(sentence) {
			if _, seen := unigrams[w]; !seen {
				unigrams[w] = 0
				w = UnknownToken
			}
			unigrams[w]++
			total++
			bigrams[[2]string{prev, w}]++
			prev = w
		}
		unigrams[last]++
		total++
		bigrams[[2]string{prev, last}]++
	}

	for key, c := range bigrams {
		bigrams[key] = c / unigrams[key[0]]
	}
	for w, c := range unigrams {
		if c == 0 {
			delete(unigrams, w)
			continue
		}
		unigrams[w] = c / total
	}

	m.unigrams = unigrams
	m.bigrams = bigrams
	m.trained = true
}

// Trained reports whether Train or LoadARPA populated the model.
func (m *BigramModel) Trained() bool {
	return m.trained
}

// TokenProbs returns the interpolated probability of every token of sentence,
// in traversal order. The result has one value per token and carries the
// model's Direction.
func (m *BigramModel) TokenProbs(sentence []string) TokenProbs {
	first, _ := m.Direction.boundaries()
	probs := make([]float64, 0, len(sentence))
	prev := first
	for _, w := range m.Direction.orient(sentence) {
		w = m.known(w)
		probs = append(probs, m.interpolated(prev, w))
		prev = w
	}
	return TokenProbs{Values: probs, Direction: m.Direction}
}

// EndProb returns the probability of the closing sentinel after the last token
// of sentence in traversal order.
func (m *BigramModel) EndProb(sentence []string) float64 {
	first, last := m.Direction.boundaries()
	prev := first
	if n := len(sentence); n > 0 {
		if m.Direction == RightToLeft {
			prev = m.known(sentence[0])
		} else {
			prev = m.known(sentence[n-1])
		}
	}
	return m.interpolated(prev, last)
}

// SentenceLogProb returns the natural log probability of sentence including
// the prediction of the closing sentinel.
func (m *BigramModel) SentenceLogProb(sentence []string) float64 {
	return m.ObservedLogProb(sentence) + math.Log(m.EndProb(sentence))
}

// ObservedLogProb returns the natural log probability of the tokens of
// sentence, without predicting the closing sentinel.
func (m *BigramModel) ObservedLogProb(sentence []string) float64 {
	total := 0.0
	for _, p := range m.TokenProbs(sentence).Values {
		total += math.Log(p)
	}
	return total
}

// Unigram returns P(token), 0 if token is not in the vocabulary.
func (m *BigramModel) Unigram(token string) float64 {
	return m.unigrams[token]
}

// Bigram returns the unsmoothed P(token | context), 0 if the pair was never seen.
func (m *BigramModel) Bigram(context, token string) float64 {
	return m.bigrams[[2]string{context, token}]
}

// Vocab returns all tokens with non-zero unigram probability, sorted.
func (m *BigramModel) Vocab() []string {
	words := make([]string, 0, len(m.unigrams))
	for w := range m.unigrams {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// Bigrams returns the keys (see BigramKey) of all seen bigrams, sorted.
func (m *BigramModel) Bigrams() []string {
	keys := make([]string, 0, len(m.bigrams))
	for k := range m.bigrams {
		keys = append(keys, BigramKey(k[0], k[1]))
	}
	sort.Strings(keys)
	return keys
}

func (m *BigramModel) known(w string) string {
	if _, ok := m.unigrams[w]; ok {
		return w
	}
	return UnknownToken
}

func (m *BigramModel) interpolated(context, token string) float64 {
	return m.UnigramWeight*m.unigrams[token] + m.BigramWeight*m.bigrams[[2]string{context, token}]
}
