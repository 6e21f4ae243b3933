package manifest

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// entry is one data line split into key and optional value
type entry struct {
	key      string
	value    string
	hasValue bool
	line     int
}

// scanEntries reads data lines, splitting each on the first sep.
// Blank lines and lines whose first non-space character is # are skipped.
// Lines of any length are accepted.
func scanEntries(r io.Reader, sep string) ([]entry, error) {
	var entries []entry
	reader := bufio.NewReader(r)
	lineNo := 0
	for {
		raw, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		if raw == "" && err == io.EOF {
			break
		}
		lineNo++

		text := strings.TrimSpace(raw)
		if lineNo == 1 {
			text = strings.TrimSpace(strings.TrimPrefix(text, "\ufeff"))
		}
		if text != "" && !strings.HasPrefix(text, "#") {
			e := entry{line: lineNo}
			if i := strings.Index(text, sep); i >= 0 {
				e.key = strings.TrimSpace(text[:i])
				e.value = strings.TrimSpace(text[i+len(sep):])
				e.hasValue = true
			} else {
				e.key = text
			}
			entries = append(entries, e)
		}

		if err == io.EOF {
			break
		}
	}
	return entries, nil
}

// ordered keeps declaration order while letting later keys overwrite
// earlier ones in place
type ordered[T any] struct {
	index map[string]int
	items []T
}

func newOrdered[T any]() *ordered[T] {
	return &ordered[T]{index: map[string]int{}}
}

func (o *ordered[T]) set(key string, item T) (replaced bool) {
	if i, ok := o.index[key]; ok {
		o.items[i] = item
		return true
	}
	o.index[key] = len(o.items)
	o.items = append(o.items, item)
	return false
}

func warnf(line int, format string, args ...interface{}) string {
	return fmt.Sprintf("line %d: %s", line, fmt.Sprintf(format, args...))
}
