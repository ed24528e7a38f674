// Package ident classifies code points against the ECMAScript identifier grammar.
//
// Both tables are flattened, sorted lists of inclusive [lo, hi] pairs; lookups
// are a binary search over pairs and never allocate.
package ident

import "unicode/utf8"

// IsIDStart reports whether r may begin an identifier.
func IsIDStart(r rune) bool {
	if r < 0 {
		return false
	}
	if r < utf8.RuneSelf {
		return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
	}
	return lookup(uint32(r), idStartTable[:])
}

// IsIDPart reports whether r may continue an identifier.
func IsIDPart(r rune) bool {
	if r < 0 {
		return false
	}
	if r < utf8.RuneSelf {
		return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || '0' <= r && r <= '9' || r == '_'
	}
	return lookup(uint32(r), idPartTable[:])
}

// IsIdent reports whether s is a non-empty identifier.
func IsIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !IsIDStart(r) {
				return false
			}
			continue
		}
		if !IsIDPart(r) {
			return false
		}
	}
	return true
}

// lookup searches a flattened range table. Every probe is snapped to the even
// (range start) index of its pair.
func lookup(code uint32, table []uint32) bool {
	if len(table) == 0 || code < table[0] {
		return false
	}
	lo, hi := 0, len(table)
	for lo+1 < hi {
		mid := lo + (hi-lo)/2
		mid -= mid % 2
		if table[mid] <= code && code <= table[mid+1] {
			return true
		}
		if code < table[mid] {
			hi = mid
		} else {
			lo = mid + 2
		}
	}
	return false
}
