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

package docgen

import (
	"fmt"
	"strings"
)

// directivePrefix marks a struct's doc comment as a document to generate
// from. Attributes follow as space-separated key=value tokens; a value
// containing spaces (an expression fragment) is backtick-quoted:
//
//	elastic:document mapping=ArticleMapping index=articles id.expr=`strconv.Itoa(self.ID)`
const directivePrefix = "elastic:document"

// parseDirectiveAttrs tokenizes the text following directivePrefix.
func parseDirectiveAttrs(s string) (map[string]string, error) {
	attrs := map[string]string{}
	i := 0
	for i < len(s) {
		for i < len(s) && s[i] == ' ' {
			i++
		}
		if i >= len(s) {
			break
		}
		start := i
		for i < len(s) && s[i] != '=' && s[i] != ' ' {
			i++
		}
		if i >= len(s) || s[i] != '=' {
			return nil, fmt.Errorf("malformed attribute near %q: expected '='", s[start:])
		}
		key := s[start:i]
		i++ // skip '='

		var value string
		if i < len(s) && s[i] == '`' {
			i++
			vstart := i
			for i < len(s) && s[i] != '`' {
				i++
			}
			if i >= len(s) {
				return nil, fmt.Errorf("attribute %q: unterminated backtick-quoted value", key)
			}
			value = s[vstart:i]
			i++ // skip closing backtick
		} else {
			vstart := i
			for i < len(s) && s[i] != ' ' {
				i++
			}
			value = s[vstart:i]
		}
		if value == "" {
			return nil, fmt.Errorf("attribute %q: empty value", key)
		}
		attrs[key] = value
	}
	return attrs, nil
}

// parseFieldTag splits an `elastic:"..."` struct tag into its skip/id
// markers and remaining key=value options.
func parseFieldTag(s string) (skip, isID bool, opts map[string]string, err error) {
	opts = map[string]string{}
	s = strings.TrimSpace(s)
	if s == "" {
		return false, false, opts, nil
	}
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if tok == "-" {
			skip = true
			continue
		}
		if tok == "id" {
			isID = true
			continue
		}
		parts := strings.SplitN(tok, "=", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return false, false, nil, fmt.Errorf("malformed elastic tag token %q", tok)
		}
		opts[parts[0]] = parts[1]
	}
	return skip, isID, opts, nil
}

// directiveLine finds the "elastic:document..." line within a doc comment's
// text, if any, and returns the attribute text following the prefix.
func directiveLine(doc string) (string, bool) {
	for _, line := range strings.Split(doc, "\n") {
		line = strings.TrimSpace(line)
		if line == directivePrefix {
			return "", true
		}
		if strings.HasPrefix(line, directivePrefix+" ") {
			return strings.TrimSpace(line[len(directivePrefix):]), true
		}
	}
	return "", false
}
