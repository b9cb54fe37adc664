// Copyright 2026 The Hasm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

// A Field is a contiguous run of non-whitespace, non-comma characters
// extracted from a source line, along with its inclusive column range
// within that line. Columns are 0-based.
type Field struct {
	Text  string
	Start int
	End   int
}

func isFieldDelim(c byte) bool {
	return c == ' ' || c == '\t' || c == ','
}

// Tokenize splits a line into an ordered sequence of Fields, using space,
// tab, and comma as delimiters. It never fails; an empty or all-delimiter
// line yields an empty sequence. Tokenize does not interpret commas as
// semantic separators; comma discipline between fields is checked later
// by scanning the raw text between adjacent Fields (see betweenFields).
func Tokenize(line string) []Field {
	var fields []Field
	i := 0
	for i < len(line) {
		for i < len(line) && isFieldDelim(line[i]) {
			i++
		}
		if i >= len(line) {
			break
		}
		start := i
		for i < len(line) && !isFieldDelim(line[i]) {
			i++
		}
		fields = append(fields, Field{Text: line[start:i], Start: start, End: i - 1})
	}
	return fields
}

// betweenFields returns the raw text of line strictly between the end of
// field a and the start of field b, used by the diagnostic pass to count
// commas without relying on Tokenize having interpreted them.
func betweenFields(line string, a, b Field) string {
	if a.End+1 >= b.Start {
		return ""
	}
	return line[a.End+1 : b.Start]
}

// afterField returns the raw text of line following the end of field f.
func afterField(line string, f Field) string {
	if f.End+1 >= len(line) {
		return ""
	}
	return line[f.End+1:]
}
