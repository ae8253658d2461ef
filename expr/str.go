// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

// A String is an immutable, length-prefixed byte sequence. Unlike a C
// string it is not NUL-terminated; embedded NUL bytes are legal. String
// values are handles: every operation that appears to mutate a String
// returns a new one and leaves the receiver untouched.
type String struct {
	b []byte
}

// NewString wraps b as a String. The caller must not mutate b afterward;
// callers that need to retain their own copy should clone before calling.
func NewString(b []byte) String {
	return String{b: b}
}

// NewStringFromGo wraps a Go string as a String.
func NewStringFromGo(s string) String {
	return String{b: []byte(s)}
}

// Len returns the number of bytes in s.
func (s String) Len() int {
	return len(s.b)
}

// Bytes returns the raw bytes backing s. Callers must not mutate the
// returned slice.
func (s String) Bytes() []byte {
	return s.b
}

// Go returns s as a Go string.
func (s String) Go() string {
	return string(s.b)
}

// ByteAt returns the byte at index i.
func (s String) ByteAt(i int) byte {
	return s.b[i]
}

// SubString returns the length-byte substring starting at offset start.
// An end past Len is clamped to Len, and a start at or past Len yields
// the empty string; a negative start or length is not checked.
func (s String) SubString(start, length int) String {
	if start >= len(s.b) {
		return String{}
	}
	end := start + length
	if end > len(s.b) {
		end = len(s.b)
	}
	return String{b: s.b[start:end]}
}

// Concat returns s followed by other.
func (s String) Concat(other String) String {
	b := make([]byte, 0, len(s.b)+len(other.b))
	b = append(b, s.b...)
	b = append(b, other.b...)
	return String{b: b}
}

// Repeat returns s repeated n times. Repeat(0) is the empty string.
func (s String) Repeat(n int) String {
	if n <= 0 || len(s.b) == 0 {
		return String{}
	}
	b := make([]byte, 0, len(s.b)*n)
	for i := 0; i < n; i++ {
		b = append(b, s.b...)
	}
	return String{b: b}
}

// Upper returns an ASCII-uppercased copy of s. Non-ASCII bytes pass
// through unchanged; there is no locale-aware case mapping.
func (s String) Upper() String {
	b := make([]byte, len(s.b))
	for i, c := range s.b {
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		b[i] = c
	}
	return String{b: b}
}

// Lower returns an ASCII-lowercased copy of s.
func (s String) Lower() String {
	b := make([]byte, len(s.b))
	for i, c := range s.b {
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		b[i] = c
	}
	return String{b: b}
}

// compareStrings compares two strings lexicographically over unsigned
// bytes, returning -1, 0 or +1.
func compareStrings(a, b String) int {
	n := len(a.b)
	if len(b.b) < n {
		n = len(b.b)
	}
	for i := 0; i < n; i++ {
		if a.b[i] != b.b[i] {
			if a.b[i] < b.b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a.b) < len(b.b):
		return -1
	case len(a.b) > len(b.b):
		return 1
	default:
		return 0
	}
}
