// Package bidilm scores sentences with a bidirectional bigram language model:
// a forward model predicting each token from its left neighbour and a
// backward model predicting it from its right neighbour, combined by
// fixed-weight linear interpolation.
package bidilm

import (
	"io"
	"math"
	"os"

	"github.com/ieee0824/bidilm/corpus"
	"github.com/ieee0824/bidilm/language"
	"go.uber.org/zap"
)

// SubModel is a directional language model the engine interpolates.
// TokenProbs must return one value per token of sentence, tagged with the
// order the values are stored in.
type SubModel interface {
	Train(sentences [][]string)
	TokenProbs(sentence []string) language.TokenProbs
}

// Weights are the interpolation weights of the forward and backward models.
// They are used as given; nothing checks that they sum to 1.
type Weights struct {
	Forward  float64
	Backward float64
}

// DefaultWeights gives both directions equal weight.
var DefaultWeights = Weights{Forward: 0.5, Backward: 0.5}

// Model is the interpolation and evaluation engine. It must be trained once
// before scoring. After training it is read-only and may be shared between
// goroutines; to retrain concurrently with scoring, build a new Model.
//
// The sub-models and weights are fixed at construction. Retrain through
// Model.Train only, so that cached scores are dropped.
type Model struct {
	forward  SubModel
	backward SubModel
	weights  Weights

	bigramOpts []language.BigramOption
	logger     *zap.Logger
	report     io.Writer
	cache      *scoreCache
	cacheSize  int
}

// New creates an untrained model with a forward and a backward
// language.BigramModel.
func New(opts ...Option) *Model {
	m := newModel(opts)
	m.forward = language.NewBigramModel(language.LeftToRight, m.bigramOpts...)
	m.backward = language.NewBigramModel(language.RightToLeft, m.bigramOpts...)
	return m
}

// NewWithSubModels creates a model interpolating the given sub-models.
// WithSmoothing has no effect here.
func NewWithSubModels(forward, backward SubModel, opts ...Option) *Model {
	m := newModel(opts)
	m.forward = forward
	m.backward = backward
	return m
}

func newModel(opts []Option) *Model {
	m := &Model{
		weights: DefaultWeights,
		logger:  zap.NewNop(),
		report:  os.Stdout,
	}
	for _, o := range opts {
		o(m)
	}
	if m.cacheSize > 0 {
		m.cache = newScoreCache(m.cacheSize)
	}
	return m
}

// Train trains both sub-models on the same sentences.
func (m *Model) Train(sentences [][]string) {
	m.logger.Info("training",
		zap.Int("sentences", len(sentences)),
		zap.Int("tokens", corpus.WordCount(sentences)))
	m.forward.Train(sentences)
	m.backward.Train(sentences)
	if m.cache != nil {
		m.cache.purge()
	}
}

// SentenceLogProb returns the natural log probability of sentence, the sum
// over its tokens of log(λf·Pf + λb·Pb), where both probabilities refer to
// the same sentence position. The end of the sentence is not predicted.
//
// The model must be trained. An empty sentence scores 0; a token both
// sub-models give probability 0 makes the result -Inf.
func (m *Model) SentenceLogProb(sentence []string) float64 {
	if m.cache != nil {
		if lp, ok := m.cache.get(sentence); ok {
			return lp
		}
	}

	fwd := m.forward.TokenProbs(sentence)
	bwd := m.backward.TokenProbs(sentence)
	total := 0.0
	for i := range sentence {
		total += math.Log(m.interpolated(fwd.At(i), bwd.At(i)))
	}

	if m.cache != nil {
		m.cache.add(sentence, total)
	}
	return total
}

func (m *Model) interpolated(forward, backward float64) float64 {
	return m.weights.Forward*forward + m.weights.Backward*backward
}

// Forward returns the left-to-right sub-model.
func (m *Model) Forward() SubModel {
	return m.forward
}

// Backward returns the right-to-left sub-model.
func (m *Model) Backward() SubModel {
	return m.backward
}

// Weights returns the interpolation weights.
func (m *Model) Weights() Weights {
	return m.weights
}
