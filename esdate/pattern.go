// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package esdate

import (
	"fmt"
	"strings"
)

// jodaLetterToGo translates the subset of Joda-Time pattern letters
// Elasticsearch mapping formats actually use into a time.Time reference
// layout. This is not a general Joda interpreter — only the letters below
// are recognized, matching what spec.md's date-format table documents; any
// other letter is rejected by NewPatternFormat, while non-letter characters
// (-, :, /, spaces, ...) are copied through as literals, as in Joda.
var jodaLetterToGo = map[byte]string{
	'y': "2006",
	'M': "01",
	'd': "02",
	'H': "15",
	'm': "04",
	's': "05",
	'S': "000",
	'Z': "Z0700",
	'X': "Z07:00",
}

// PatternFormat is a Format derived from a Joda-style date pattern string
// (Elasticsearch's own mapping "format" option uses Joda syntax).
type PatternFormat struct {
	layoutFormat
	pattern string
}

// NewPatternFormat translates joda into a Go reference layout and returns
// the Format wrapping it. Literal text in single quotes (Joda's escape
// convention, e.g. 'T') is copied through verbatim.
func NewPatternFormat(name, joda string) (*PatternFormat, error) {
	var layout strings.Builder
	i := 0
	for i < len(joda) {
		c := joda[i]
		if c == '\'' {
			end := strings.IndexByte(joda[i+1:], '\'')
			if end == -1 {
				return nil, fmt.Errorf("pattern %q: unterminated literal starting at %d", joda, i)
			}
			layout.WriteString(joda[i+1 : i+1+end])
			i += end + 2
			continue
		}
		if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z') {
			layout.WriteByte(c)
			i++
			continue
		}
		goToken, ok := jodaLetterToGo[c]
		if !ok {
			return nil, fmt.Errorf("pattern %q: unsupported joda letter %q at %d", joda, c, i)
		}
		run := 1
		for i+run < len(joda) && joda[i+run] == c {
			run++
		}
		// A run of the same letter (yyyy, SSS, ...) is one logical Joda
		// field; Go's reference layout has a single token per field, so
		// the run collapses to one emission regardless of its length.
		layout.WriteString(goToken)
		i += run
	}
	return &PatternFormat{
		layoutFormat: layoutFormat{name: name, layout: layout.String()},
		pattern:      joda,
	}, nil
}

// Pattern returns the original Joda pattern string this Format was built from.
func (f *PatternFormat) Pattern() string { return f.pattern }

// MustNewPatternFormat is NewPatternFormat for callers with a pattern known
// at compile time — generated code and package-level var initializers,
// where a malformed pattern is a build-time bug, not a runtime condition to
// handle. Mirrors the standard library's own regexp.MustCompile.
func MustNewPatternFormat(name, joda string) *PatternFormat {
	f, err := NewPatternFormat(name, joda)
	if err != nil {
		panic(err)
	}
	return f
}
