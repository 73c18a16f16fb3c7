package language

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/ieee0824/bidilm/internal/mathutil"
	"github.com/pkg/errors"
)

const (
	directionHeader     = "# direction:"
	interpolationHeader = "# interpolation:"
)

// WriteARPA writes the trained model in ARPA format (log10 probabilities).
// Bigram entries are the unsmoothed conditional probabilities; the
// interpolation weights and the direction are recorded as comment lines
// before the \data\ section, where ARPA readers ignore them.
func (m *BigramModel) WriteARPA(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%s %s\n", directionHeader, m.Direction)
	fmt.Fprintf(bw, "%s %g %g\n", interpolationHeader, m.UnigramWeight, m.BigramWeight)
	fmt.Fprintln(bw)

	vocab := m.Vocab()
	bis := make([][2]string, 0, len(m.bigrams))
	for key := range m.bigrams {
		bis = append(bis, key)
	}
	sort.Slice(bis, func(i, j int) bool {
		if bis[i][0] != bis[j][0] {
			return bis[i][0] < bis[j][0]
		}
		return bis[i][1] < bis[j][1]
	})

	fmt.Fprintln(bw, "\\data\\")
	fmt.Fprintf(bw, "ngram 1=%d\n", len(vocab))
	fmt.Fprintf(bw, "ngram 2=%d\n", len(bis))
	fmt.Fprintln(bw)

	fmt.Fprintln(bw, "\\1-grams:")
	for _, word := range vocab {
		fmt.Fprintf(bw, "%.6f\t%s\n", mathutil.LnToLog10(math.Log(m.unigrams[word])), word)
	}
	fmt.Fprintln(bw)

	fmt.Fprintln(bw, "\\2-grams:")
	for _, key := range bis {
		fmt.Fprintf(bw, "%.6f\t%s %s\n", mathutil.LnToLog10(math.Log(m.bigrams[key])), key[0], key[1])
	}
	fmt.Fprintln(bw)

	fmt.Fprintln(bw, "\\end\\")
	return errors.Wrap(bw.Flush(), "write ARPA")
}

// LoadARPA reads a bigram model written by WriteARPA, or any ARPA file of
// order at most 2. Backoff weights are ignored; models without the comment
// headers default to LeftToRight with the default interpolation weights.
func LoadARPA(r io.Reader) (*BigramModel, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	model := NewBigramModel(LeftToRight)

	// Header comments, until \data\
	sawData := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "\\data\\" {
			sawData = true
			break
		}
		if err := parseHeaderLine(model, line); err != nil {
			return nil, err
		}
	}

	if !sawData {
		if err := scanner.Err(); err != nil {
			return nil, errors.Wrap(err, "read ARPA")
		}
		return nil, errors.New("missing \\data\\ section")
	}

	// ngram counts
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "ngram ") {
			parts := strings.SplitN(line[6:], "=", 2)
			if len(parts) == 2 {
				order, err := strconv.Atoi(strings.TrimSpace(parts[0]))
				if err != nil {
					return nil, errors.Wrapf(err, "parse ngram count line %q", line)
				}
				if order > 2 {
					return nil, errors.Errorf("unsupported n-gram order %d", order)
				}
			}
			continue
		}
		break
	}

	// n-gram sections
	for {
		line := strings.TrimSpace(scanner.Text())
		if line == "\\end\\" {
			break
		}

		if strings.HasPrefix(line, "\\") && strings.HasSuffix(line, "-grams:") {
			orderStr := strings.TrimSuffix(strings.TrimPrefix(line, "\\"), "-grams:")
			order, err := strconv.Atoi(orderStr)
			if err != nil {
				return nil, errors.Wrapf(err, "parse section header %q", line)
			}
			for scanner.Scan() {
				entry := strings.TrimSpace(scanner.Text())
				if entry == "" {
					continue
				}
				if strings.HasPrefix(entry, "\\") {
					break
				}
				if err := parseNGramLine(model, order, entry); err != nil {
					return nil, errors.Wrapf(err, "parse n-gram line %q", entry)
				}
			}
			continue
		}

		if !scanner.Scan() {
			break
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read ARPA")
	}

	model.trained = true
	return model, nil
}

func parseHeaderLine(model *BigramModel, line string) error {
	switch {
	case strings.HasPrefix(line, directionHeader):
		d, err := ParseDirection(strings.TrimPrefix(line, directionHeader))
		if err != nil {
			return err
		}
		model.Direction = d
	case strings.HasPrefix(line, interpolationHeader):
		fields := strings.Fields(strings.TrimPrefix(line, interpolationHeader))
		if len(fields) != 2 {
			return errors.Errorf("malformed interpolation header %q", line)
		}
		uni, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return errors.Wrap(err, "parse unigram weight")
		}
		bi, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return errors.Wrap(err, "parse bigram weight")
		}
		model.UnigramWeight, model.BigramWeight = uni, bi
	}
	return nil
}

func parseNGramLine(model *BigramModel, order int, line string) error {
	fields := strings.Fields(line)
	if len(fields) < order+1 {
		return errors.Errorf("too few fields for %d-gram", order)
	}

	logProb, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return errors.Wrap(err, "parse log prob")
	}
	prob := math.Exp(mathutil.Log10ToLn(logProb))

	switch order {
	case 1:
		model.unigrams[fields[1]] = prob
	case 2:
		model.bigrams[[2]string{fields[1], fields[2]}] = prob
	default:
		return errors.Errorf("unsupported n-gram order %d", order)
	}
	return nil
}
