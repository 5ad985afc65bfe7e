// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cite

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/apacite/pkg/types"
)

// CSLItem represents a bibliographic entry in CSL (Citation Style Language)
// format. The field names and structure follow the CSL-JSON/CSL-YAML schema
// so that output is consumable by Pandoc and reference managers.
type CSLItem struct {
	ID             string    `yaml:"id"`
	Type           string    `yaml:"type"`
	Title          string    `yaml:"title"`
	Author         []CSLName `yaml:"author,omitempty"`
	ContainerTitle string    `yaml:"container-title,omitempty"`
	Publisher      string    `yaml:"publisher,omitempty"`
	Volume         string    `yaml:"volume,omitempty"`
	Issue          string    `yaml:"issue,omitempty"`
	Page           string    `yaml:"page,omitempty"`
	Issued         *CSLDate  `yaml:"issued,omitempty"`
	DOI            string    `yaml:"DOI,omitempty"`
	URL            string    `yaml:"URL,omitempty"`
}

// CSLName represents a person's name in CSL format.
type CSLName struct {
	Family string `yaml:"family,omitempty"`
	Given  string `yaml:"given,omitempty"`
}

// CSLDate represents a date in CSL format using date-parts.
type CSLDate struct {
	DateParts [][]int `yaml:"date-parts"`
}

// FormatCSL writes parsed records as a CSL-YAML list to w.
func FormatCSL(records []types.CitationRecord, w io.Writer) error {
	items := make([]CSLItem, len(records))
	for i, r := range records {
		items[i] = toCSLItem(r, i)
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(items)
}

// toCSLItem converts a CitationRecord to a CSLItem. seq disambiguates the
// generated ID when author and year collide or are both absent.
func toCSLItem(r types.CitationRecord, seq int) CSLItem {
	item := CSLItem{
		ID:        cslID(r, seq),
		Type:      cslType(r),
		Title:     r.Title,
		Publisher: r.Publisher,
		Volume:    r.Volume,
		Issue:     r.Issue,
		Page:      r.PageRange,
		DOI:       r.DOI,
		URL:       r.URL,
	}

	if r.SourceType == types.SourceJournal {
		item.ContainerTitle = r.JournalName
	}

	for _, a := range r.Authors {
		item.Author = append(item.Author, CSLName{
			Family: a.LastName,
			Given:  a.FirstName,
		})
	}

	if y, err := strconv.Atoi(r.Year); err == nil {
		item.Issued = &CSLDate{DateParts: [][]int{{y}}}
	}

	return item
}

// cslType maps the record's source type to a CSL item type. Records from
// the chapter-in-collection extractor carry no source type and map to
// "chapter".
func cslType(r types.CitationRecord) string {
	switch r.SourceType {
	case types.SourceJournal:
		return "article-journal"
	case types.SourceBook:
		return "book"
	default:
		return "chapter"
	}
}

// cslID builds a citation key like "smith2020" from the first author and
// year, falling back to a sequence number when neither is available.
func cslID(r types.CitationRecord, seq int) string {
	var b strings.Builder
	if len(r.Authors) > 0 {
		b.WriteString(strings.ToLower(strings.ReplaceAll(r.Authors[0].LastName, " ", "")))
	}
	b.WriteString(r.Year)
	if b.Len() == 0 {
		return fmt.Sprintf("ref%d", seq+1)
	}
	return b.String()
}
