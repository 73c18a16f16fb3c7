package main

import (
	"fmt"
	"io"
	"os"

	arg "github.com/alexflint/go-arg"
	"github.com/ieee0824/bidilm/config"
	"github.com/ieee0824/bidilm/corpus"
	"github.com/ieee0824/bidilm/internal/logging"
	"github.com/ieee0824/bidilm/language"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type args struct {
	Inputs    []string `arg:"positional,required" help:"corpus files or directories"`
	Direction string   `arg:"-d,--direction" default:"forward" help:"forward or backward"`
	Format    string   `arg:"-f,--format" default:"text" help:"corpus format: pos or text"`
	Unigram   float64  `arg:"--unigram-weight" default:"0.1" help:"unigram interpolation weight"`
	Bigram    float64  `arg:"--bigram-weight" default:"0.9" help:"bigram interpolation weight"`
	Output    string   `arg:"-o,--output" help:"output file (default: stdout)"`
}

func (args) Description() string {
	return "Builds a directional ARPA bigram language model from tokenized text."
}

func main() {
	var a args
	arg.MustParse(&a)

	logger, err := logging.New(config.Default().Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if _, err := build(a, os.Stdout, logger); err != nil {
		logger.Error("build failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

// build trains the model and writes it to a.Output, or to stdout if unset.
// It returns the number of training sentences.
func build(a args, stdout io.Writer, logger *zap.Logger) (int, error) {
	dir, err := language.ParseDirection(a.Direction)
	if err != nil {
		return 0, err
	}
	format, err := corpus.ParseFormat(a.Format)
	if err != nil {
		return 0, err
	}
	sentences, err := corpus.Load(a.Inputs, format)
	if err != nil {
		return 0, err
	}

	m := language.NewBigramModel(dir, language.WithInterpolation(a.Unigram, a.Bigram))
	m.Train(sentences)

	w := stdout
	if a.Output != "" {
		f, err := os.Create(a.Output)
		if err != nil {
			return 0, errors.Wrapf(err, "create %s", a.Output)
		}
		defer f.Close()
		w = f
	}
	if err := m.WriteARPA(w); err != nil {
		return 0, err
	}
	logger.Info("built bigram model",
		zap.Stringer("direction", dir),
		zap.Int("sentences", len(sentences)),
		zap.Int("vocab", len(m.Vocab())))
	return len(sentences), nil
}
