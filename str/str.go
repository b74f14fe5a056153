package str

import "strings"

// Position selects the side Pad fills.
type Position int

const (
	Before Position = iota
	After
)

// Ellipsis is appended by Shorten when Options.Ellipsis is set.
const Ellipsis = "…"

// LastN returns the last n runes of s, or all of s when it is shorter.
func LastN(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if n >= len(r) {
		return s
	}
	return string(r[len(r)-n:])
}

// Pad adds n copies of fill to s on the given side. n is a count of fill
// copies, not a target length.
func Pad(s string, n int, pos Position, fill string) string {
	if n <= 0 {
		return s
	}
	padding := strings.Repeat(fill, n)
	if pos == Before {
		return padding + s
	}
	return s + padding
}

// PadSlice is Pad for slices; it returns a new slice.
func PadSlice[T any](items []T, n int, pos Position, fill T) []T {
	n = max(n, 0)
	out := make([]T, 0, len(items)+n)
	if pos == After {
		out = append(out, items...)
	}
	for range n {
		out = append(out, fill)
	}
	if pos == Before {
		out = append(out, items...)
	}
	return out
}

// Options tunes Shorten.
type Options struct {
	// Ellipsis appends "…" to shortened text.
	Ellipsis bool

	// WordTruncate cuts at exactly the limit, possibly inside a word.
	// Otherwise the cut falls on the last Delimiter starting at or before
	// the limit, or on the limit itself when there is none.
	WordTruncate bool

	// Delimiter separates words. Defaults to a single space.
	Delimiter string
}

// Shorten trims text and, when it is longer than limit runes, cuts it down
// per opts. Text that fits is returned trimmed and without an ellipsis.
func Shorten(text string, limit int, opts Options) string {
	text = strings.TrimSpace(text)
	r := []rune(text)
	if len(r) <= limit {
		return text
	}
	limit = max(limit, 0)

	suffix := ""
	if opts.Ellipsis {
		suffix = Ellipsis
	}
	cut := string(r[:limit])
	if !opts.WordTruncate {
		delim := opts.Delimiter
		if delim == "" {
			delim = " "
		}
		window := string(r[:min(len(r), limit+len([]rune(delim)))])
		if i := strings.LastIndex(window, delim); i >= 0 {
			cut = window[:i]
		}
	}
	return strings.TrimSpace(cut) + suffix
}
