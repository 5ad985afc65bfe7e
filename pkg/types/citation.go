// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the shared data structures exchanged between the
// citation parser and the CLI surface.
package types

// SourceType classifies which family of extractor produced a record.
type SourceType string

const (
	SourceJournal SourceType = "journal"
	SourceBook    SourceType = "book"
)

// Author identifies one entry in a citation's author list.
type Author struct {
	// LastName is the family name as written in the citation.
	LastName string `json:"last_name" yaml:"last_name"`

	// FirstName holds the initials string as written (e.g. "J. K."),
	// not an expanded given name.
	FirstName string `json:"first_name" yaml:"first_name"`
}

// CitationRecord is the uniform result of parsing one citation string.
// Every field defaults to an empty string (or empty slice for Authors) when
// the corresponding pattern finds no match; extraction never fails a whole
// record, it only leaves fields unpopulated.
type CitationRecord struct {
	// SourceType is "journal" or "book". The chapter-in-collection
	// variant leaves it empty.
	SourceType SourceType `json:"source_type" yaml:"source_type"`

	// Authors lists the work's authors in citation order.
	Authors []Author `json:"authors" yaml:"authors"`

	// Title is the work or chapter title with trailing periods stripped.
	Title string `json:"title" yaml:"title"`

	// Year is the 4-digit publication year.
	Year string `json:"year" yaml:"year"`

	// Publisher is the publisher name, location prefix stripped.
	Publisher string `json:"publisher" yaml:"publisher"`

	// Volume is the journal volume or book-series volume number.
	Volume string `json:"volume" yaml:"volume"`

	// Issue is the journal issue number.
	Issue string `json:"issue" yaml:"issue"`

	// PageRange is "start-end" or a single page token.
	PageRange string `json:"page_range" yaml:"page_range"`

	// JournalName is populated only for the journal variant.
	JournalName string `json:"journal_name" yaml:"journal_name"`

	// URL is the DOI URL, non-empty iff DOI is non-empty.
	URL string `json:"url" yaml:"url"`

	// DOI is the bare DOI identifier if present.
	DOI string `json:"doi" yaml:"doi"`
}
