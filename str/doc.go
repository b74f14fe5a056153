// Package str holds rune-safe string helpers: tail slicing, padding,
// truncation with an optional ellipsis, and templated segmentation of
// known keys.
//
//	str.LastN("4111111111111111", 4)                          // "1111"
//	str.Pad("7", 2, str.Before, "0")                           // "007"
//	str.Shorten("the quick brown fox", 12, str.Options{Ellipsis: true}) // "the quick…"
//	str.Segment("see find_1 now", str.DefaultSegmentKeys, str.SegmentPrefix, str.SegmentSuffix)
//	// "see {{replace_1}} now"
package str
