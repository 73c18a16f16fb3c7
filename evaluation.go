package bidilm

import (
	"fmt"

	"github.com/ieee0824/bidilm/internal/mathutil"
	"github.com/montanaflynn/stats"
	"go.uber.org/zap"
)

// Evaluation summarizes how well a model predicts a set of sentences.
// Only the observed tokens are counted; no end-of-sentence prediction is
// scored.
type Evaluation struct {
	Sentences  int
	Tokens     int
	LogProb    float64 // natural log, summed over all sentences
	Perplexity float64 // exp(-LogProb / Tokens)

	// Per-sentence perplexity distribution over non-empty sentences.
	SentencePerplexity SentenceStats
}

// SentenceStats describes a distribution of per-sentence perplexities.
type SentenceStats struct {
	Mean   float64
	Median float64
	StdDev float64
	Min    float64
	Max    float64
}

// Evaluate scores every sentence. With no tokens at all the perplexity is
// NaN; callers should not evaluate an empty set.
func (m *Model) Evaluate(sentences [][]string) Evaluation {
	ev := evaluate(m.SentenceLogProb, sentences)
	m.logger.Debug("evaluated",
		zap.Int("sentences", ev.Sentences),
		zap.Int("tokens", ev.Tokens),
		zap.Float64("log_prob", ev.LogProb),
		zap.Float64("perplexity", ev.Perplexity))
	return ev
}

// CorpusPerplexity returns the word perplexity of sentences and writes a
// "Word Perplexity = <value>" line to the report writer.
func (m *Model) CorpusPerplexity(sentences [][]string) float64 {
	perplexity := m.Evaluate(sentences).Perplexity
	fmt.Fprintf(m.report, "Word Perplexity = %v\n", perplexity)
	return perplexity
}

// ModelPerplexity returns the word perplexity of sentences under a single
// sub-model, counting tokens the same way as Model.Evaluate.
func ModelPerplexity(sub SubModel, sentences [][]string) float64 {
	return evaluate(func(s []string) float64 {
		return mathutil.SumLogs(sub.TokenProbs(s).Values)
	}, sentences).Perplexity
}

func evaluate(score func([]string) float64, sentences [][]string) Evaluation {
	ev := Evaluation{Sentences: len(sentences)}
	perSentence := make([]float64, 0, len(sentences))
	for _, s := range sentences {
		lp := score(s)
		ev.LogProb += lp
		ev.Tokens += len(s)
		if len(s) > 0 {
			perSentence = append(perSentence, mathutil.Perplexity(lp, len(s)))
		}
	}
	ev.Perplexity = mathutil.Perplexity(ev.LogProb, ev.Tokens)
	ev.SentencePerplexity = describe(perSentence)
	return ev
}

// describe leaves fields zero when data is too small for them.
func describe(data []float64) SentenceStats {
	var s SentenceStats
	if len(data) == 0 {
		return s
	}
	s.Mean, _ = stats.Mean(data)
	s.Median, _ = stats.Median(data)
	s.Min, _ = stats.Min(data)
	s.Max, _ = stats.Max(data)
	if len(data) > 1 {
		s.StdDev, _ = stats.StdDevS(data)
	}
	return s
}
