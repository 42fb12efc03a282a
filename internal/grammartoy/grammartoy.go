// Package grammartoy validates the toy "Length: N[ v1,v2,...]" format
// the original's embedded exercise grammar accepted by single-pass,
// in-place cursor rewriting (bruh.rs's CheckOne/CheckOneC1 states
// walk back over the digits it already consumed to compare them
// against the declared length, mutating the buffer as a scratch
// pad). That trick is reimplemented here as what it's actually
// checking: parse the declared length, parse the array, compare
// counts.
package grammartoy

import (
	"fmt"
	"strconv"
	"strings"
)

// Match reports whether s is a well-formed "Length: N[ v1,v2,...,vN]"
// literal whose element count equals N.
func Match(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// Parse validates s and returns its declared array, or an error
// describing the first mismatch.
func Parse(s string) ([]int, error) {
	const prefix = "Length: "
	if !strings.HasPrefix(s, prefix) {
		return nil, fmt.Errorf("grammartoy: missing %q prefix", prefix)
	}
	rest := s[len(prefix):]

	bracket := strings.IndexByte(rest, '[')
	if bracket < 0 {
		return nil, fmt.Errorf("grammartoy: missing '['")
	}

	length, err := strconv.Atoi(rest[:bracket])
	if err != nil {
		return nil, fmt.Errorf("grammartoy: invalid length %q: %w", rest[:bracket], err)
	}
	if length < 0 {
		return nil, fmt.Errorf("grammartoy: negative length %d", length)
	}

	body := rest[bracket+1:]
	if !strings.HasSuffix(body, "]") {
		return nil, fmt.Errorf("grammartoy: missing closing ']'")
	}
	body = strings.TrimSuffix(body, "]")

	if length == 0 {
		if body != " " {
			return nil, fmt.Errorf("grammartoy: empty array must be \"[ ]\"")
		}
		return []int{}, nil
	}

	body = strings.TrimPrefix(body, " ")
	parts := strings.Split(body, ",")
	values := make([]int, len(parts))
	for i, part := range parts {
		v, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("grammartoy: invalid element %q: %w", part, err)
		}
		values[i] = v
	}

	if len(values) != length {
		return nil, fmt.Errorf("grammartoy: declared length %d but array has %d element(s)", length, len(values))
	}
	return values, nil
}
