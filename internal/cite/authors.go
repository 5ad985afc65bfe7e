// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cite

import (
	"regexp"
	"strings"

	"github.com/pdiddy/apacite/pkg/types"
)

// authorRe matches one "LastName, F. M." entry: a last name of one or more
// hyphen/word tokens separated by single spaces, then a comma, then one or
// more single uppercase initials with optional periods.
var authorRe = regexp.MustCompile(`([\w-]+(?:\s+[\w-]+)*),\s*([A-Z](?:\.\s*[A-Z])*\.?)`)

// ParseAuthors scans an author-list substring ("Smith, J. K., Doe, A., &
// Roe, B.") and returns one Author per matched entry, in input order.
// Connector text between entries ("and", "&", stray punctuation) is
// skipped. Returns an empty slice when nothing matches.
func ParseAuthors(s string) []types.Author {
	authors := []types.Author{}
	for _, m := range authorRe.FindAllStringSubmatch(s, -1) {
		authors = append(authors, types.Author{
			LastName:  strings.TrimSpace(m[1]),
			FirstName: strings.TrimSpace(m[2]),
		})
	}
	return authors
}
