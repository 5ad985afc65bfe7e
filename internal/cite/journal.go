// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cite

import (
	"strings"

	"github.com/pdiddy/apacite/pkg/types"
)

// parseJournal extracts a journal-article citation. Each step is
// independent: a step that finds no match leaves its own fields empty and
// the other steps still run.
func (p *Parser) parseJournal(citation string) types.CitationRecord {
	rec := newRecord(types.SourceJournal)

	leadAuthorsYear(&rec, citation)

	if m := titleRe.FindStringSubmatch(citation); m != nil {
		rec.Title = strings.TrimSpace(m[1])
	}

	// Journal name, volume, issue and pages come in three shapes, tried
	// from most to least specific.
	if m := p.journalFullRe.FindStringSubmatch(citation); m != nil {
		rec.JournalName = strings.TrimSpace(m[1])
		rec.Volume = m[2]
		rec.Issue = m[3]
		rec.PageRange = m[4]
	} else if m := p.journalVolRe.FindStringSubmatch(citation); m != nil {
		rec.JournalName = strings.TrimSpace(m[1])
		rec.Volume = m[2]
		rec.PageRange = m[3]
	} else if m := p.journalPagesRe.FindStringSubmatch(citation); m != nil {
		rec.JournalName = strings.TrimSpace(m[1])
		rec.PageRange = m[2]
	}

	applyDOI(&rec, citation)

	return rec
}

// applyDOI searches the citation for a doi.org URL and, when found, sets
// both the bare DOI and the derived URL. URL is non-empty iff DOI is.
func applyDOI(rec *types.CitationRecord, citation string) {
	if m := doiRe.FindStringSubmatch(citation); m != nil {
		rec.DOI = m[1]
		rec.URL = "https://doi.org/" + rec.DOI
	}
}
