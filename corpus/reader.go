package corpus

import (
	"bufio"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/unicode/norm"
)

const maxLineSize = 1024 * 1024

type options struct {
	normalize bool
}

// Option configures Load.
type Option func(*options)

// WithNormalization makes Load NFC-normalize every token, so that visually
// identical words with different code point sequences count as one type.
func WithNormalization() Option {
	return func(o *options) {
		o.normalize = true
	}
}

// ReadText reads one sentence per line with whitespace separated tokens.
// Blank lines are skipped.
func ReadText(r io.Reader) ([][]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, maxLineSize), maxLineSize)
	var sentences [][]string
	for scanner.Scan() {
		words := strings.Fields(scanner.Text())
		if len(words) > 0 {
			sentences = append(sentences, words)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read text corpus")
	}
	return sentences, nil
}

// ReadPOSTagged reads LDC part-of-speech tagged text and returns the words of
// each sentence, tags stripped.
//
// Tokens have the form word/TAG, with "\/" standing for a literal slash in
// the word. Chunk brackets "[" and "]" and lines starting with "*x*" are
// ignored. A line starting with "=====" or a token tagged "." ends the
// current sentence.
func ReadPOSTagged(r io.Reader) ([][]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, maxLineSize), maxLineSize)

	var sentences [][]string
	var sentence []string
	flush := func() {
		if len(sentence) > 0 {
			sentences = append(sentences, sentence)
			sentence = nil
		}
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "*x*") {
			continue
		}
		if strings.HasPrefix(line, "=====") {
			flush()
			continue
		}
		for _, tok := range strings.Fields(line) {
			if tok == "[" || tok == "]" {
				continue
			}
			word, tag := splitTagged(tok)
			if word == "" {
				continue
			}
			sentence = append(sentence, word)
			if tag == "." {
				flush()
			}
		}
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read POS tagged corpus")
	}
	return sentences, nil
}

// splitTagged splits word/TAG at the last unescaped slash. A token without a
// tag is returned whole.
func splitTagged(tok string) (word, tag string) {
	i := len(tok) - 1
	for ; i >= 0; i-- {
		if tok[i] == '/' && (i == 0 || tok[i-1] != '\\') {
			break
		}
	}
	if i < 0 {
		return strings.ReplaceAll(tok, "\\/", "/"), ""
	}
	return strings.ReplaceAll(tok[:i], "\\/", "/"), tok[i+1:]
}

// Read parses r in the given format.
func Read(r io.Reader, format Format) ([][]string, error) {
	switch format {
	case Text:
		return ReadText(r)
	case POS:
		return ReadPOSTagged(r)
	}
	return nil, errors.Errorf("unknown corpus format %q", format)
}

// Load reads every path in order. A directory contributes all regular files
// below it, in lexical order; entries whose name starts with "." are skipped.
func Load(paths []string, format Format, opts ...Option) ([][]string, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var sentences [][]string
	for _, path := range paths {
		files, err := expand(path)
		if err != nil {
			return nil, err
		}
		for _, file := range files {
			s, err := loadFile(file, format)
			if err != nil {
				return nil, err
			}
			sentences = append(sentences, s...)
		}
	}

	if o.normalize {
		for _, s := range sentences {
			for i, w := range s {
				s[i] = norm.NFC.String(w)
			}
		}
	}
	return sentences, nil
}

func loadFile(path string, format Format) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	s, err := Read(f, format)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return s, nil
}

func expand(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, "stat %s", path)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p != path && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "walk %s", path)
	}
	sort.Strings(files)
	return files, nil
}
