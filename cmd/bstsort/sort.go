package main

import (
	"bufio"
	"io"
	"strconv"

	stderr "github.com/pkg/errors"

	"github.com/suzuneyagi/bsts-lab/container/tree"
	errs "github.com/suzuneyagi/bsts-lab/errors"
)

// sorted is the result of sorting one input
type sorted struct {
	// Line is the rendering of the values in ascending order
	Line string

	// Count is the number of values read
	Count int

	// Height is the height of the tree that sorted the values
	Height int
}

// readTokens splits the input in whitespace separated tokens
func readTokens(r io.Reader) ([]string, error) {
	var tokens []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	scanner.Split(bufio.ScanWords)

	for scanner.Scan() {
		tokens = append(tokens, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, stderr.Wrap(err, "failed to scan input")
	}

	return tokens, nil
}

func sortInput(r io.Reader, valueType ValueType, iterative bool) (sorted, error) {
	tokens, err := readTokens(r)
	if err != nil {
		return sorted{}, err
	}

	switch valueType {
	case ValueTypeInt:
		return sortTokens(tokens, valueType, iterative, func(s string) (int64, error) {
			return strconv.ParseInt(s, 10, 64)
		})
	case ValueTypeFloat:
		return sortTokens(tokens, valueType, iterative, func(s string) (float64, error) {
			return strconv.ParseFloat(s, 64)
		})
	case ValueTypeString:
		return sortTokens(tokens, valueType, iterative, func(s string) (string, error) {
			return s, nil
		})
	}

	return sorted{}, errs.New(errs.ErrCodeInvalidType, "unsupported value type %q", valueType)
}

func sortTokens[T int64 | float64 | string](
	tokens []string,
	valueType ValueType,
	iterative bool,
	parse func(string) (T, error),
) (sorted, error) {
	t := tree.NewWithOpts(tree.Opts[T]{
		Lesser:    tree.OrderedLesser[T]{},
		Iterative: iterative,
	})

	for _, token := range tokens {
		v, err := parse(token)
		if err != nil {
			return sorted{}, errs.New(errs.ErrCodeInvalidValue,
				"invalid %s value %q", valueType, token)
		}

		t.Insert(v)
	}

	return sorted{
		Line:   t.String(),
		Count:  t.Len(),
		Height: t.Height(),
	}, nil
}
