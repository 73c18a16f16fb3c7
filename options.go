package bidilm

import (
	"io"

	"github.com/ieee0824/bidilm/language"
	"go.uber.org/zap"
)

// Option configures a Model.
type Option func(*Model)

// WithWeights sets the forward/backward interpolation weights.
func WithWeights(w Weights) Option {
	return func(m *Model) {
		m.weights = w
	}
}

// WithSmoothing sets the unigram/bigram weights of the sub-models built by New.
func WithSmoothing(unigram, bigram float64) Option {
	return func(m *Model) {
		m.bigramOpts = append(m.bigramOpts, language.WithInterpolation(unigram, bigram))
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithReportWriter sets where CorpusPerplexity writes its report line.
// The default is os.Stdout.
func WithReportWriter(w io.Writer) Option {
	return func(m *Model) {
		m.report = w
	}
}

// WithScoreCache memoizes SentenceLogProb for up to size sentences.
// size <= 0 disables the cache.
func WithScoreCache(size int) Option {
	return func(m *Model) {
		m.cacheSize = size
	}
}
