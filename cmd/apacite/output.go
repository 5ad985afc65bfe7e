// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/apacite/internal/cite"
	"github.com/pdiddy/apacite/pkg/types"
)

func validFormat(f types.OutputFormat) error {
	switch f {
	case types.OutputText, types.OutputJSON, types.OutputYAML, types.OutputCSL:
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want text, json, yaml, or csl)", f)
	}
}

// formatRecords renders parsed records to w in the selected format. A
// single record is rendered as one document; multiple records as a list.
func formatRecords(w io.Writer, records []types.CitationRecord, format types.OutputFormat) error {
	switch format {
	case types.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if len(records) == 1 {
			return enc.Encode(records[0])
		}
		return enc.Encode(records)
	case types.OutputYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		if len(records) == 1 {
			return enc.Encode(records[0])
		}
		return enc.Encode(records)
	case types.OutputCSL:
		return cite.FormatCSL(records, w)
	default:
		for i, rec := range records {
			if i > 0 {
				fmt.Fprintln(w)
			}
			writeTextRecord(w, rec)
		}
		return nil
	}
}

// writeTextRecord prints one record as an indented key-value listing. All
// fields are printed, empty ones included, so the shape is uniform across
// variants.
func writeTextRecord(w io.Writer, rec types.CitationRecord) {
	fmt.Fprintf(w, "source_type:  %s\n", rec.SourceType)
	fmt.Fprintf(w, "authors:\n")
	for _, a := range rec.Authors {
		fmt.Fprintf(w, "  - %s, %s\n", a.LastName, a.FirstName)
	}
	fmt.Fprintf(w, "year:         %s\n", rec.Year)
	fmt.Fprintf(w, "title:        %s\n", rec.Title)
	fmt.Fprintf(w, "journal_name: %s\n", rec.JournalName)
	fmt.Fprintf(w, "publisher:    %s\n", rec.Publisher)
	fmt.Fprintf(w, "volume:       %s\n", rec.Volume)
	fmt.Fprintf(w, "issue:        %s\n", rec.Issue)
	fmt.Fprintf(w, "page_range:   %s\n", rec.PageRange)
	fmt.Fprintf(w, "doi:          %s\n", rec.DOI)
	fmt.Fprintf(w, "url:          %s\n", rec.URL)
}
