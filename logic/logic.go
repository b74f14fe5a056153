// Package logic holds boolean gate helpers for flipping or keeping a
// condition depending on another one.
//
//	visible := logic.Reverse(item.Hidden, showHidden)
package logic

// AreDifferent reports whether exactly one of a and b is true (XOR).
func AreDifferent(a, b bool) bool { return a != b }

// AreEqual reports whether a and b are both true or both false (XNOR).
func AreEqual(a, b bool) bool { return a == b }

// Reverse returns the negation of value when cond is true, and value
// otherwise.
func Reverse(value, cond bool) bool { return AreDifferent(value, cond) }

// Uphold returns value when cond is true, and its negation otherwise.
func Uphold(value, cond bool) bool { return AreEqual(value, cond) }
