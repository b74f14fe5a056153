package str

import (
	"regexp"
	"strings"
)

// Default segmentation delimiters.
const (
	SegmentPrefix = "{{"
	SegmentSuffix = "}}"
)

// SegmentKey pairs a word to find with its replacement under a shared name.
type SegmentKey struct {
	Name    string
	Find    string
	Replace string
}

// DefaultSegmentKeys is the built-in segmentation table.
var DefaultSegmentKeys = []SegmentKey{
	{Name: "KEY_A", Find: "find_1", Replace: "replace_1"},
	{Name: "KEY_B", Find: "find_2", Replace: "replace_2"},
}

// SegmentKeys returns the entries of table with the given names, in the
// order the names are given. Unknown names are skipped.
func SegmentKeys(table []SegmentKey, names ...string) []SegmentKey {
	out := make([]SegmentKey, 0, len(names))
	for _, name := range names {
		for _, k := range table {
			if k.Name == name {
				out = append(out, k)
				break
			}
		}
	}
	return out
}

// Segment replaces every whole-word occurrence of each key's Find in text
// with prefix + Replace + suffix. Keys are applied in order; matching is
// case-sensitive.
//
//	Segment("a find_1 b", DefaultSegmentKeys, "<", ">") // "a <replace_1> b"
func Segment(text string, keys []SegmentKey, prefix, suffix string) string {
	if text == "" || len(keys) == 0 {
		return text
	}
	for _, k := range keys {
		if k.Find == "" {
			continue
		}
		word := regexp.MustCompile(`\b` + regexp.QuoteMeta(k.Find) + `\b`)
		text = word.ReplaceAllLiteralString(text, prefix+k.Replace+suffix)
	}
	return text
}

// Unsegment reverses Segment for the given keys.
func Unsegment(text string, keys []SegmentKey, prefix, suffix string) string {
	for _, k := range keys {
		if k.Find == "" {
			continue
		}
		text = strings.ReplaceAll(text, prefix+k.Replace+suffix, k.Find)
	}
	return text
}
