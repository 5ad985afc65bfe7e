// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cite extracts structured bibliographic fields from free-text
// APA-style citation strings. A citation is classified into one of five
// structural variants (journal article, standard book, edited book, book
// section, book chapter-in-collection) by cheap substring cues checked in
// priority order, then handed to the matching field extractor.
//
// Extraction is best-effort: every step is independently optional, and a
// pattern that finds no match leaves its target fields at their empty
// defaults. Parsing never returns an error.
package cite

import (
	"regexp"
	"strings"

	"github.com/pdiddy/apacite/pkg/types"
)

// Variant names reported by ParseTrace.
const (
	VariantChapter = "book-chapter"
	VariantJournal = "journal"
	VariantEdited  = "edited-book"
	VariantSection = "book-section"
	VariantBook    = "standard-book"
)

// DefaultDashes is the default page-range dash set: ASCII hyphen plus
// en-dash. Reference lists pasted from PDFs mix the two freely.
const DefaultDashes = "-–"

// Patterns that do not depend on the dash set.
var (
	// authorYearRe matches the leading author block up to the first
	// 4-digit year in parentheses: "Smith, J. (2020)".
	authorYearRe = regexp.MustCompile(`^(.*?)\s*\((\d{4})\)`)

	// editedHeadRe matches the author/editor/year head of an edited-book
	// citation: "Lee, K. (Ed.). (2018)".
	editedHeadRe = regexp.MustCompile(`^(.*?)\s*\((Ed\.?|Eds\.?)\)\.\s*\((\d{4})\)`)

	// titleRe captures a single-sentence title after the year parenthesis.
	titleRe = regexp.MustCompile(`\)\.\s*(.*?)\.\s`)

	// bookTailRe captures "<title>. <publisher>[, <page>]." anchored at the
	// end of a standard book citation.
	bookTailRe = regexp.MustCompile(`\)\.\s*(.*?)\.\s*(.*?)(?:,\s*(\d+))?\.$`)

	// doiRe captures a bare DOI from a doi.org URL anywhere in the string.
	doiRe = regexp.MustCompile(`https?://doi\.org/(10\.\d{4,}[\w.\-/]+)`)

	volMarkRe  = regexp.MustCompile(`\(Vol\.\s*(\d+)\)`)
	volSplitRe = regexp.MustCompile(`\s*\(Vol\.\s*\d+\)\.\s*`)

	// chapterCueRe detects the ". In " marker of a chapter-in-collection.
	chapterCueRe = regexp.MustCompile(`\.\s+In\s+`)

	// editorCueRe detects the "(Ed.)" / "(Eds.)" editor marker.
	editorCueRe = regexp.MustCompile(`\((Ed\.?|Eds\.?)\)`)

	// volIssueCueRe detects the "5(2)," volume-issue shape of a journal.
	volIssueCueRe = regexp.MustCompile(`\d+\(\d+\),`)

	// locPrefixRe strips a "Location: " prefix from a publisher.
	locPrefixRe = regexp.MustCompile(`^.*?:\s*`)
)

// Parser holds the compiled pattern set for one dash configuration and
// dispatches citations to the variant extractors. A Parser is stateless
// after construction and safe for concurrent use.
type Parser struct {
	// Dash-dependent patterns.
	journalFullRe  *regexp.Regexp
	journalVolRe   *regexp.Regexp
	journalPagesRe *regexp.Regexp
	sectionSplitRe *regexp.Regexp
	chapterInfoRe  *regexp.Regexp
	chapterPubRe   *regexp.Regexp
	volPagesCueRe  *regexp.Regexp
	pagesCueRe     *regexp.Regexp
	ppCueRe        *regexp.Regexp

	// variants is the classifier: (cue, extractor) pairs evaluated in
	// order, first match wins. Cues are not mutually exclusive, so the
	// order is load-bearing: chapter/editor/section markers must be
	// checked before the looser journal heuristics.
	variants []variantRule
}

type variantRule struct {
	name    string
	matches func(string) bool
	extract func(string) types.CitationRecord
}

// NewParser compiles the pattern set. cfg.Dashes lists the characters
// accepted inside page ranges; empty falls back to DefaultDashes.
func NewParser(cfg types.ParserConfig) *Parser {
	dashes := cfg.Dashes
	if dashes == "" {
		dashes = DefaultDashes
	}
	body := dashClassBody(dashes)
	dc := "[" + body + "]"
	pages := `(\d+(?:` + dc + `\d+)?)`
	span := `(\d+` + dc + `\d+)`

	p := &Parser{
		journalFullRe:  regexp.MustCompile(`([\w\s&]+?),\s*(\d+)\((\d+)\),\s*` + pages),
		journalVolRe:   regexp.MustCompile(`([\w\s&]+?),\s*(\d+),\s*` + pages),
		journalPagesRe: regexp.MustCompile(`([\w\s&]+?),\s*` + pages),
		sectionSplitRe: regexp.MustCompile(`\s*\(pp\.\s*` + span + `\)\.\s*`),
		chapterInfoRe:  regexp.MustCompile(`In\s+(.*?)\s*(?:\(((?:Vol\.|Vols\.)\s*\d+[,` + body + `]*\d*)\s*,?)?\s*(?:pp\.\s*` + span + `\))`),
		chapterPubRe:   regexp.MustCompile(`(?:pp\.\s*\d+` + dc + `\d+\))\.?\s*(.*?)\.$`),
		volPagesCueRe:  regexp.MustCompile(`,\s*\d+,\s*\d+` + dc + `\d+`),
		pagesCueRe:     regexp.MustCompile(`[\w\s]+,\s*\d+` + dc + `\d+`),
		ppCueRe:        regexp.MustCompile(`\(pp\.\s*\d+` + dc + `\d+\)`),
	}

	p.variants = []variantRule{
		{VariantChapter, chapterCueRe.MatchString, p.parseBookChapter},
		{VariantJournal, func(c string) bool {
			return volIssueCueRe.MatchString(c) ||
				p.volPagesCueRe.MatchString(c) ||
				p.pagesCueRe.MatchString(c)
		}, p.parseJournal},
		{VariantEdited, editorCueRe.MatchString, p.parseEditedBook},
		{VariantSection, p.ppCueRe.MatchString, p.parseBookSection},
	}

	return p
}

// dashClassBody orders the dash set for use inside a character class,
// keeping a literal hyphen at the end so it cannot be read as a range.
func dashClassBody(dashes string) string {
	rest := strings.ReplaceAll(dashes, "-", "")
	if rest != dashes {
		rest += "-"
	}
	return rest
}

// Parse classifies the citation and runs the matching extractor. Citations
// matching no cue fall through to the standard book extractor.
func (p *Parser) Parse(citation string) types.CitationRecord {
	rec, _ := p.ParseTrace(citation)
	return rec
}

// ParseTrace is Parse plus the name of the selected variant. The variant
// name is informational only; callers must not depend on it for
// correctness.
func (p *Parser) ParseTrace(citation string) (types.CitationRecord, string) {
	for _, v := range p.variants {
		if v.matches(citation) {
			return v.extract(citation), v.name
		}
	}
	return p.parseStandardBook(citation), VariantBook
}

// newRecord is the shared empty-record constructor. Every extractor starts
// from it and overrides only the fields it derives, so the field set cannot
// drift between variants.
func newRecord(st types.SourceType) types.CitationRecord {
	return types.CitationRecord{
		SourceType: st,
		Authors:    []types.Author{},
	}
}

// leadAuthorsYear runs the author-year match on the citation head. It fills
// Authors and Year on rec when the match succeeds and returns the offset
// just past the closing year parenthesis, or -1 when there is no match.
// Extractors slice "remaining text" from this offset rather than
// re-searching the string for the year, which could hit an earlier
// occurrence of the same digits.
func leadAuthorsYear(rec *types.CitationRecord, citation string) int {
	m := authorYearRe.FindStringSubmatchIndex(citation)
	if m == nil {
		return -1
	}
	rec.Authors = ParseAuthors(citation[m[2]:m[3]])
	rec.Year = citation[m[4]:m[5]]
	return m[1]
}

// remainderFrom returns the citation text after offset, with the period
// that closes the year sentence stripped. A negative offset (no author-year
// match) yields the whole citation.
func remainderFrom(citation string, offset int) string {
	if offset < 0 {
		return strings.TrimSpace(citation)
	}
	rest := strings.TrimPrefix(citation[offset:], ".")
	return strings.TrimSpace(rest)
}
