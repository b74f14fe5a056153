package str_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-shaping-utils/str"
)

func TestLastN(t *testing.T) {
	assert.Equal(t, "1111", str.LastN("4111111111111111", 4))
	assert.Equal(t, "abc", str.LastN("abc", 5))
	assert.Equal(t, "", str.LastN("abc", 0))
	assert.Equal(t, "éü", str.LastN("aéü", 2))
}

func TestPad(t *testing.T) {
	assert.Equal(t, "007", str.Pad("7", 2, str.Before, "0"))
	assert.Equal(t, "7--", str.Pad("7", 2, str.After, "-"))
	assert.Equal(t, "7", str.Pad("7", -1, str.After, "-"))
}

func TestPadSlice(t *testing.T) {
	assert.Equal(t, []int{0, 0, 1, 2}, str.PadSlice([]int{1, 2}, 2, str.Before, 0))
	assert.Equal(t, []int{1, 2, 9}, str.PadSlice([]int{1, 2}, 1, str.After, 9))
	assert.Equal(t, []int{1}, str.PadSlice([]int{1}, 0, str.After, 9))
}

func TestShorten(t *testing.T) {
	const text = "  the quick brown fox  "
	tests := []struct {
		name  string
		limit int
		opts  str.Options
		want  string
	}{
		{"fits", 40, str.Options{Ellipsis: true}, "the quick brown fox"},
		{"word boundary", 12, str.Options{}, "the quick"},
		{"word boundary with ellipsis", 12, str.Options{Ellipsis: true}, "the quick…"},
		{"delimiter right at limit", 9, str.Options{}, "the quick"},
		{"hard cut", 12, str.Options{WordTruncate: true}, "the quick br"},
		{"hard cut trims", 10, str.Options{WordTruncate: true, Ellipsis: true}, "the quick…"},
		{"custom delimiter", 12, str.Options{Delimiter: "q"}, "the"},
		{"no delimiter", 3, str.Options{Delimiter: "|"}, "the"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, str.Shorten(text, tt.limit, tt.opts))
		})
	}
	assert.Equal(t, "", str.Shorten("   ", 3, str.Options{Ellipsis: true}))
	assert.Equal(t, "ñañ…", str.Shorten("ñañaña", 3, str.Options{WordTruncate: true, Ellipsis: true}))
}

func TestSegment(t *testing.T) {
	text := "a find_1 b find_2 c find_10 find_1"
	got := str.Segment(text, str.DefaultSegmentKeys, str.SegmentPrefix, str.SegmentSuffix)
	assert.Equal(t, "a {{replace_1}} b {{replace_2}} c find_10 {{replace_1}}", got)
	assert.Equal(t, text, str.Unsegment(got, str.DefaultSegmentKeys, str.SegmentPrefix, str.SegmentSuffix))

	assert.Equal(t, "x $1 y", str.Segment("x find_1 y", []str.SegmentKey{{Find: "find_1", Replace: "$1"}}, "", ""))
	assert.Equal(t, "", str.Segment("", str.DefaultSegmentKeys, "<", ">"))
	assert.Equal(t, "find_1", str.Segment("find_1", nil, "<", ">"))
}

func TestSegmentKeys(t *testing.T) {
	keys := str.SegmentKeys(str.DefaultSegmentKeys, "KEY_B", "KEY_Z")
	assert.Equal(t, []str.SegmentKey{{Name: "KEY_B", Find: "find_2", Replace: "replace_2"}}, keys)
	assert.Equal(t, "a find_1 <replace_2>", str.Segment("a find_1 find_2", keys, "<", ">"))
}

func ExampleShorten() {
	fmt.Println(str.Shorten("the quick brown fox", 12, str.Options{Ellipsis: true}))
	// Output: the quick…
}

func ExampleSegment() {
	fmt.Println(str.Segment("see find_1 now", str.DefaultSegmentKeys, str.SegmentPrefix, str.SegmentSuffix))
	// Output: see {{replace_1}} now
}
