// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cite

import (
	"strings"

	"github.com/pdiddy/apacite/pkg/types"
)

// parseStandardBook extracts a whole-book citation. It is also the
// fallback for citations matching no classifier cue, so it must tolerate
// arbitrary text and return an all-default record when nothing matches.
func (p *Parser) parseStandardBook(citation string) types.CitationRecord {
	rec := newRecord(types.SourceBook)

	leadAuthorsYear(&rec, citation)

	if m := bookTailRe.FindStringSubmatch(citation); m != nil {
		rec.Title = strings.TrimSpace(m[1])
		rec.Publisher = strings.TrimSpace(m[2])
		if m[3] != "" {
			rec.PageRange = m[3]
		}
	}

	return rec
}

// parseEditedBook extracts an edited-volume citation, where the head reads
// "<editors> (Ed.). (<year>)." and the tail is title, optional volume
// marker, and publisher.
func (p *Parser) parseEditedBook(citation string) types.CitationRecord {
	rec := newRecord(types.SourceBook)

	offset := -1
	if m := editedHeadRe.FindStringSubmatchIndex(citation); m != nil {
		rec.Authors = ParseAuthors(citation[m[2]:m[3]])
		rec.Year = citation[m[6]:m[7]]
		offset = m[1]
	}
	remaining := remainderFrom(citation, offset)

	if m := volMarkRe.FindStringSubmatch(remaining); m != nil {
		rec.Volume = m[1]
		parts := volSplitRe.Split(remaining, -1)
		if len(parts) == 2 {
			rec.Title = strings.TrimSpace(parts[0])
			rec.Publisher = strings.TrimSpace(parts[1])
		}
	} else if title, publisher, ok := splitLastPeriod(remaining); ok {
		rec.Title = title
		rec.Publisher = publisher
	} else {
		rec.Title = strings.TrimSpace(remaining)
	}

	rec.Title = strings.TrimRight(rec.Title, ".")
	rec.Publisher = strings.TrimRight(rec.Publisher, ".")

	// The publisher gets folded into the title when the tail carries no
	// volume marker and ends without a separating period; re-split on the
	// title's last internal period.
	if rec.Publisher == "" && strings.Contains(rec.Title, ".") {
		if title, publisher, ok := splitLastPeriod(rec.Title); ok {
			rec.Title = title
			rec.Publisher = publisher
		}
	}

	return rec
}

// parseBookSection extracts a "title (pp. N-M). Publisher." citation.
func (p *Parser) parseBookSection(citation string) types.CitationRecord {
	rec := newRecord(types.SourceBook)

	offset := leadAuthorsYear(&rec, citation)
	remaining := remainderFrom(citation, offset)

	if m := p.sectionSplitRe.FindStringSubmatchIndex(remaining); m != nil {
		rec.Title = strings.TrimSpace(remaining[:m[0]])
		rec.PageRange = remaining[m[2]:m[3]]
		rec.Publisher = strings.TrimRight(strings.TrimSpace(remaining[m[1]:]), ".")
	} else if title, publisher, ok := splitLastPeriod(strings.TrimSuffix(remaining, ".")); ok {
		// No page marker: fall back to splitting title from publisher on
		// the last period.
		rec.Title = title
		rec.Publisher = strings.TrimRight(publisher, ".")
	}

	return rec
}

// parseBookChapter extracts a chapter-in-collection citation: "<authors>
// (<year>). <chapter>. In <collection> (Vol. N, pp. N-M). Location:
// Publisher." This variant reports no source type and never fills the
// issue or journal-name fields.
func (p *Parser) parseBookChapter(citation string) types.CitationRecord {
	rec := newRecord("")

	leadAuthorsYear(&rec, citation)

	if m := p.chapterInfoRe.FindStringSubmatch(citation); m != nil {
		rec.Title = strings.TrimRight(strings.TrimSpace(m[1]), " (")
		if m[2] != "" {
			rec.Volume = strings.TrimSpace(m[2])
		}
		if m[3] != "" {
			rec.PageRange = m[3]
		}
	}

	if m := p.chapterPubRe.FindStringSubmatch(citation); m != nil {
		pub := strings.TrimSpace(m[1])
		rec.Publisher = locPrefixRe.ReplaceAllString(pub, "")
	}

	return rec
}

// splitLastPeriod splits s on its last period into trimmed halves. ok is
// false when s contains no period.
func splitLastPeriod(s string) (title, publisher string, ok bool) {
	idx := strings.LastIndex(s, ".")
	if idx < 0 {
		return "", "", false
	}
	return strings.TrimSpace(s[:idx]), strings.TrimSpace(s[idx+1:]), true
}
