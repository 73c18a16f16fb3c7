package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	arg "github.com/alexflint/go-arg"
	"github.com/ieee0824/bidilm"
	"github.com/ieee0824/bidilm/config"
	"github.com/ieee0824/bidilm/corpus"
	"github.com/ieee0824/bidilm/internal/logging"
	"github.com/ieee0824/bidilm/language"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type args struct {
	Inputs    []string `arg:"positional,required" help:"corpus files or directories, optionally followed by the test fraction (0 <= f < 1)"`
	Config    string   `arg:"-c,--config" help:"YAML configuration file"`
	Format    string   `arg:"-f,--format" help:"corpus format: pos or text (overrides config)"`
	Normalize bool     `arg:"--normalize" help:"NFC-normalize tokens"`
	Forward   *float64 `arg:"--forward-weight" help:"forward model interpolation weight (overrides config)"`
	Backward  *float64 `arg:"--backward-weight" help:"backward model interpolation weight (overrides config)"`
	SaveARPA  string   `arg:"--save-arpa" help:"directory to write forward.arpa and backward.arpa to"`
}

func (args) Description() string {
	return "Trains a bidirectional bigram model on the leading part of a corpus and reports word perplexity on the training and test parts."
}

func main() {
	var a args
	arg.MustParse(&a)

	if err := run(a, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "bidilm: %v\n", err)
		os.Exit(1)
	}
}

func run(a args, stdout io.Writer) error {
	cfg, err := loadConfig(a)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer logger.Sync()

	paths, testFraction, err := splitInputs(a.Inputs, cfg.TestFraction)
	if err != nil {
		return err
	}

	format, err := corpus.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	var loadOpts []corpus.Option
	if cfg.Normalize {
		loadOpts = append(loadOpts, corpus.WithNormalization())
	}
	sentences, err := corpus.Load(paths, format, loadOpts...)
	if err != nil {
		return err
	}
	logger.Info("corpus loaded", zap.Strings("paths", paths), zap.Int("sentences", len(sentences)))

	train, test := corpus.Split(sentences, testFraction)
	fmt.Fprintf(stdout, "# Train Sentences = %d (# words = %d) \n# Test Sentences = %d (# words = %d)\n",
		len(train), corpus.WordCount(train), len(test), corpus.WordCount(test))

	model := bidilm.New(
		bidilm.WithWeights(bidilm.Weights{Forward: cfg.Weights.Forward, Backward: cfg.Weights.Backward}),
		bidilm.WithSmoothing(cfg.Smoothing.Unigram, cfg.Smoothing.Bigram),
		bidilm.WithScoreCache(cfg.CacheSize),
		bidilm.WithLogger(logger),
		bidilm.WithReportWriter(stdout),
	)

	fmt.Fprintln(stdout, "Training...")
	model.Train(train)
	report(model, train, stdout, logger)

	fmt.Fprintln(stdout, "Testing...")
	report(model, test, stdout, logger)

	if a.SaveARPA != "" {
		if err := saveARPA(model, a.SaveARPA); err != nil {
			return err
		}
		logger.Info("models written", zap.String("dir", a.SaveARPA))
	}
	return nil
}

// report prints the word perplexity of sentences, or a notice when there is
// nothing to score.
func report(model *bidilm.Model, sentences [][]string, stdout io.Writer, logger *zap.Logger) {
	if corpus.WordCount(sentences) == 0 {
		fmt.Fprintln(stdout, "No tokens to evaluate")
		return
	}
	model.CorpusPerplexity(sentences)
	if ce := logger.Check(zap.DebugLevel, "sub-model perplexity"); ce != nil {
		ce.Write(
			zap.Float64("forward", bidilm.ModelPerplexity(model.Forward(), sentences)),
			zap.Float64("backward", bidilm.ModelPerplexity(model.Backward(), sentences)))
	}
}

func loadConfig(a args) (*config.Config, error) {
	cfg := config.Default()
	if a.Config != "" {
		var err error
		if cfg, err = config.Load(a.Config); err != nil {
			return nil, err
		}
	}
	if a.Format != "" {
		cfg.Format = a.Format
	}
	if a.Normalize {
		cfg.Normalize = true
	}
	if a.Forward != nil {
		cfg.Weights.Forward = *a.Forward
	}
	if a.Backward != nil {
		cfg.Weights.Backward = *a.Backward
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// splitInputs separates the trailing test fraction from the corpus paths.
// Without a numeric last argument every input is a path and def is used.
func splitInputs(inputs []string, def float64) ([]string, float64, error) {
	paths, frac := inputs, def
	if n := len(inputs); n > 0 {
		if f, err := strconv.ParseFloat(inputs[n-1], 64); err == nil {
			paths, frac = inputs[:n-1], f
		}
	}
	if len(paths) == 0 {
		return nil, 0, errors.New("no corpus paths given")
	}
	if frac < 0 || frac >= 1 {
		return nil, 0, errors.Errorf("test fraction %g outside [0, 1)", frac)
	}
	return paths, frac, nil
}

func saveARPA(model *bidilm.Model, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "create %s", dir)
	}
	for name, sub := range map[string]bidilm.SubModel{"forward.arpa": model.Forward(), "backward.arpa": model.Backward()} {
		bm, ok := sub.(*language.BigramModel)
		if !ok {
			return errors.Errorf("%s: sub-model %T cannot be written as ARPA", name, sub)
		}
		if err := writeARPA(filepath.Join(dir, name), bm); err != nil {
			return err
		}
	}
	return nil
}

func writeARPA(path string, m *language.BigramModel) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	if err := m.WriteARPA(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "write %s", path)
	}
	return errors.Wrapf(f.Close(), "close %s", path)
}
