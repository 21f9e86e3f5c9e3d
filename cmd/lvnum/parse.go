// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvnum"
	"github.com/katalvlaran/lvnum/matrix"
	"github.com/katalvlaran/lvnum/value"
)

var (
	// errSyntax marks input that is neither a literal nor a call.
	errSyntax = errors.New("lvnum: syntax error")

	// errUnbalanced marks a bracket or quote left open.
	errUnbalanced = errors.New("lvnum: unbalanced brackets or quotes")
)

// parseCall reads one input line of the form `op(arg, arg, ...)`.
// A bare `op arg` with a single argument is accepted as well.
func parseCall(e *lvnum.Engine, line string) (string, []value.Value, error) {
	line = strings.TrimSpace(line)
	open := strings.IndexByte(line, '(')
	if open < 0 {
		name, rest, _ := strings.Cut(line, " ")
		if !isIdent(name) {
			return "", nil, fmt.Errorf("%q: %w", line, errSyntax)
		}
		if strings.TrimSpace(rest) == "" {
			return name, nil, nil
		}
		v, err := parseLiteral(e, rest)
		if err != nil {
			return "", nil, err
		}
		return name, []value.Value{v}, nil
	}

	name := strings.TrimSpace(line[:open])
	if !isIdent(name) || !strings.HasSuffix(line, ")") {
		return "", nil, fmt.Errorf("%q: %w", line, errSyntax)
	}
	parts, err := splitTop(line[open+1 : len(line)-1])
	if err != nil {
		return "", nil, err
	}
	args := make([]value.Value, 0, len(parts))
	for _, p := range parts {
		v, err := parseLiteral(e, p)
		if err != nil {
			return "", nil, err
		}
		args = append(args, v)
	}
	return name, args, nil
}

// parseLiteral turns one literal into a value:
//
//	3  2.5  1e20        Number
//	1.25d               BigNumber
//	1+4i  2i            Complex
//	3/4                 Fraction
//	true  false  null   Boolean, Null
//	"text"              String
//	5 cm  cm            Unit
//	[[1, 2], [3, 4]]    Array
//	matrix[[1, 2]]      DenseMatrix
//	sparse[[1, 0]]      SparseMatrix
func parseLiteral(e *lvnum.Engine, s string) (value.Value, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return nil, fmt.Errorf("empty literal: %w", errSyntax)
	case s == "true":
		return value.Boolean(true), nil
	case s == "false":
		return value.Boolean(false), nil
	case s == "null":
		return value.Null{}, nil
	case s[0] == '"':
		str, err := strconv.Unquote(s)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s, errUnbalanced)
		}
		return value.String(str), nil
	case s[0] == '[':
		return parseArray(e, s)
	case strings.HasPrefix(s, "matrix["):
		a, err := parseArray(e, s[len("matrix"):])
		if err != nil {
			return nil, err
		}
		m, err := matrix.NewDenseFromArray(a)
		if err != nil {
			return nil, err
		}
		return m, nil
	case strings.HasPrefix(s, "sparse["):
		a, err := parseArray(e, s[len("sparse"):])
		if err != nil {
			return nil, err
		}
		m, err := e.Sparse(a)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
	return parseScalar(s)
}

func parseScalar(s string) (value.Value, error) {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return value.Number(f), nil
	}
	if digits, ok := strings.CutSuffix(s, "d"); ok {
		if b, err := value.ParseBigNumber(digits); err == nil {
			return b, nil
		}
	}
	if strings.HasSuffix(s, "i") {
		if c, err := strconv.ParseComplex(s, 128); err == nil {
			return value.Complex(c), nil
		}
	}
	if num, den, ok := strings.Cut(s, "/"); ok {
		n, errN := strconv.ParseInt(strings.TrimSpace(num), 10, 64)
		d, errD := strconv.ParseInt(strings.TrimSpace(den), 10, 64)
		if errN == nil && errD == nil {
			return value.NewFraction(n, d)
		}
	}
	fields := strings.Fields(s)
	switch len(fields) {
	case 1:
		def, p, err := value.LookupUnit(fields[0])
		if err == nil {
			return value.PlainUnit(def, p), nil
		}
	case 2:
		if f, err := strconv.ParseFloat(fields[0], 64); err == nil {
			return value.ParseUnit(f, fields[1])
		}
	}
	return nil, fmt.Errorf("%q: %w", s, errSyntax)
}

func parseArray(e *lvnum.Engine, s string) (value.Array, error) {
	if !strings.HasSuffix(s, "]") {
		return nil, fmt.Errorf("%s: %w", s, errUnbalanced)
	}
	parts, err := splitTop(s[1 : len(s)-1])
	if err != nil {
		return nil, err
	}
	out := make(value.Array, 0, len(parts))
	for _, p := range parts {
		v, err := parseLiteral(e, p)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if _, err = value.Size(out); err != nil {
		return nil, err
	}
	return out, nil
}

// splitTop splits s on commas outside brackets and quotes.
// An all-blank s yields no parts.
func splitTop(s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var (
		parts   []string
		depth   int
		quoted  bool
		escaped bool
		start   int
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if quoted {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				quoted = false
			}
			continue
		}
		switch c {
		case '"':
			quoted = true
		case '[', '(':
			depth++
		case ']', ')':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("%s: %w", s, errUnbalanced)
			}
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 || quoted {
		return nil, fmt.Errorf("%s: %w", s, errUnbalanced)
	}
	return append(parts, s[start:]), nil
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
