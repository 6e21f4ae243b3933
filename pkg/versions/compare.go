package versions

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/dotdoctor/pkg/errors"
)

// Ordering is the result of comparing two versions
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Greater:
		return "greater"
	default:
		return "equal"
	}
}

// Compare orders a against b.
// Both operands may carry a leading letter tag ("v", "go") and a trailing
// non-numeric suffix; neither affects the result. A malformed operand yields
// an ErrMalformedVersion error.
func Compare(a, b string) (Ordering, error) {
	as, err := Segments(a)
	if err != nil {
		return Equal, err
	}
	bs, err := Segments(b)
	if err != nil {
		return Equal, err
	}

	n := len(as)
	if len(bs) > n {
		n = len(bs)
	}
	for i := 0; i < n; i++ {
		av, bv := segmentAt(as, i), segmentAt(bs, i)
		switch {
		case av < bv:
			return Less, nil
		case av > bv:
			return Greater, nil
		}
	}
	return Equal, nil
}

// AtLeast reports whether installed satisfies the minimum required
func AtLeast(installed, required string) (bool, error) {
	ord, err := Compare(installed, required)
	if err != nil {
		return false, err
	}
	return ord != Less, nil
}

// Segments returns the numeric segments of v after stripping its letter
// prefix and any non-numeric suffix
func Segments(v string) ([]uint64, error) {
	numeric := numericPart(StripPrefix(strings.TrimSpace(v)))
	if numeric == "" {
		return nil, errors.Newf(errors.ErrMalformedVersion, "no numeric version in %q", v).
			WithDetail("version", v)
	}

	parts := strings.Split(numeric, ".")
	segments := make([]uint64, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			return nil, errors.Newf(errors.ErrMalformedVersion, "empty segment in %q", v).
				WithDetail("version", v)
		}
		n, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrMalformedVersion, "segment %q of %q is not numeric", part, v).
				WithDetail("version", v)
		}
		segments = append(segments, n)
	}
	return segments, nil
}

// StripPrefix removes a leading run of ASCII letters ("v", "go", "V")
func StripPrefix(v string) string {
	i := 0
	for i < len(v) && isLetter(v[i]) {
		i++
	}
	return v[i:]
}

// numericPart returns the longest prefix of digits and dots. A suffix that
// directly follows a dot ("1.2.x") leaves a trailing empty segment, which
// Segments rejects.
func numericPart(v string) string {
	i := 0
	for i < len(v) && (isDigit(v[i]) || v[i] == '.') {
		i++
	}
	return v[:i]
}

func segmentAt(s []uint64, i int) uint64 {
	if i < len(s) {
		return s[i]
	}
	return 0
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
