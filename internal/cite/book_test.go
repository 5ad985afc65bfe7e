// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cite

import (
	"testing"

	"github.com/pdiddy/apacite/pkg/types"
)

func TestParseStandardBook(t *testing.T) {
	p := defaultParser()

	tests := []struct {
		name          string
		citation      string
		wantTitle     string
		wantPublisher string
		wantPages     string
		wantYear      string
	}{
		{
			name:          "plain book",
			citation:      "Doe, A. (2019). A Great Book. Acme Press.",
			wantTitle:     "A Great Book",
			wantPublisher: "Acme Press",
			wantYear:      "2019",
		},
		{
			name:          "book with page count",
			citation:      "Doe, A. (2019). A Great Book. Acme Press, 250.",
			wantTitle:     "A Great Book",
			wantPublisher: "Acme Press",
			wantPages:     "250",
			wantYear:      "2019",
		},
		{
			name:     "no recognizable structure",
			citation: "Just some unstructured text.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := p.parseStandardBook(tt.citation)
			if rec.SourceType != types.SourceBook {
				t.Errorf("SourceType = %q, want book", rec.SourceType)
			}
			if rec.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", rec.Title, tt.wantTitle)
			}
			if rec.Publisher != tt.wantPublisher {
				t.Errorf("Publisher = %q, want %q", rec.Publisher, tt.wantPublisher)
			}
			if rec.PageRange != tt.wantPages {
				t.Errorf("PageRange = %q, want %q", rec.PageRange, tt.wantPages)
			}
			if rec.Year != tt.wantYear {
				t.Errorf("Year = %q, want %q", rec.Year, tt.wantYear)
			}
		})
	}
}

func TestParseEditedBook(t *testing.T) {
	p := defaultParser()

	tests := []struct {
		name          string
		citation      string
		wantAuthors   []types.Author
		wantYear      string
		wantVolume    string
		wantTitle     string
		wantPublisher string
	}{
		{
			name:          "with volume marker",
			citation:      "Lee, K. (Ed.). (2018). (Vol. 2). Big Publisher.",
			wantAuthors:   []types.Author{{LastName: "Lee", FirstName: "K."}},
			wantYear:      "2018",
			wantVolume:    "2",
			wantTitle:     "",
			wantPublisher: "Big Publisher",
		},
		{
			name:          "title and volume marker",
			citation:      "Lee, K. (Ed.). (2018). Handbook of Stuff (Vol. 3). Big Publisher.",
			wantAuthors:   []types.Author{{LastName: "Lee", FirstName: "K."}},
			wantYear:      "2018",
			wantVolume:    "3",
			wantTitle:     "Handbook of Stuff",
			wantPublisher: "Big Publisher",
		},
		{
			name:          "no volume marker",
			citation:      "Lee, K. (Ed.). (2018). Handbook of Stuff. Big Publisher.",
			wantAuthors:   []types.Author{{LastName: "Lee", FirstName: "K."}},
			wantYear:      "2018",
			wantTitle:     "Handbook of Stuff",
			wantPublisher: "Big Publisher",
		},
		{
			name:          "plural editors",
			citation:      "Lee, K., & Park, S. (Eds.). (2021). Collected Essays. Small House.",
			wantAuthors:   []types.Author{{LastName: "Lee", FirstName: "K."}, {LastName: "Park", FirstName: "S."}},
			wantYear:      "2021",
			wantTitle:     "Collected Essays",
			wantPublisher: "Small House",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := p.parseEditedBook(tt.citation)
			if rec.SourceType != types.SourceBook {
				t.Errorf("SourceType = %q, want book", rec.SourceType)
			}
			if len(rec.Authors) != len(tt.wantAuthors) {
				t.Fatalf("Authors = %+v, want %+v", rec.Authors, tt.wantAuthors)
			}
			for i := range tt.wantAuthors {
				if rec.Authors[i] != tt.wantAuthors[i] {
					t.Errorf("Authors[%d] = %+v, want %+v", i, rec.Authors[i], tt.wantAuthors[i])
				}
			}
			if rec.Year != tt.wantYear {
				t.Errorf("Year = %q, want %q", rec.Year, tt.wantYear)
			}
			if rec.Volume != tt.wantVolume {
				t.Errorf("Volume = %q, want %q", rec.Volume, tt.wantVolume)
			}
			if rec.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", rec.Title, tt.wantTitle)
			}
			if rec.Publisher != tt.wantPublisher {
				t.Errorf("Publisher = %q, want %q", rec.Publisher, tt.wantPublisher)
			}
		})
	}
}

func TestParseBookSection(t *testing.T) {
	p := defaultParser()

	rec := p.parseBookSection("Doe, A. (2019). A chapter title (pp. 10-20). Acme Press.")
	if rec.SourceType != types.SourceBook {
		t.Errorf("SourceType = %q, want book", rec.SourceType)
	}
	if rec.Title != "A chapter title" {
		t.Errorf("Title = %q, want %q", rec.Title, "A chapter title")
	}
	if rec.PageRange != "10-20" {
		t.Errorf("PageRange = %q, want 10-20", rec.PageRange)
	}
	if rec.Publisher != "Acme Press" {
		t.Errorf("Publisher = %q, want Acme Press", rec.Publisher)
	}
}

func TestParseBookSectionNoMarker(t *testing.T) {
	p := defaultParser()

	// Without a page marker the remainder splits on its last period into
	// title and publisher, and the page range stays empty.
	rec := p.parseBookSection("Doe, A. (2019). A chapter title. Acme Press.")
	if rec.Title != "A chapter title" {
		t.Errorf("Title = %q, want %q", rec.Title, "A chapter title")
	}
	if rec.Publisher != "Acme Press" {
		t.Errorf("Publisher = %q, want Acme Press", rec.Publisher)
	}
	if rec.PageRange != "" {
		t.Errorf("PageRange = %q, want empty", rec.PageRange)
	}
}

func TestParseBookChapter(t *testing.T) {
	p := defaultParser()

	tests := []struct {
		name          string
		citation      string
		wantTitle     string
		wantVolume    string
		wantPages     string
		wantPublisher string
	}{
		{
			name:          "collection with location prefix",
			citation:      "Doe, A. (2019). Chapter title. In Great Collection (pp. 15-30). New York: Acme Press.",
			wantTitle:     "Great Collection",
			wantPages:     "15-30",
			wantPublisher: "Acme Press",
		},
		{
			name:          "collection without location",
			citation:      "Doe, A. (2019). Chapter title. In Great Collection (pp. 15-30). Acme Press.",
			wantTitle:     "Great Collection",
			wantPages:     "15-30",
			wantPublisher: "Acme Press",
		},
		{
			name:          "volume marker inside parens",
			citation:      "Doe, A. (2019). Chapter title. In Great Collection (Vol. 2, pp. 15-30). Acme Press.",
			wantTitle:     "Great Collection",
			wantVolume:    "Vol. 2,",
			wantPages:     "15-30",
			wantPublisher: "Acme Press",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := p.parseBookChapter(tt.citation)
			if rec.SourceType != "" {
				t.Errorf("SourceType = %q, want empty for chapter records", rec.SourceType)
			}
			if rec.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", rec.Title, tt.wantTitle)
			}
			if rec.Volume != tt.wantVolume {
				t.Errorf("Volume = %q, want %q", rec.Volume, tt.wantVolume)
			}
			if rec.PageRange != tt.wantPages {
				t.Errorf("PageRange = %q, want %q", rec.PageRange, tt.wantPages)
			}
			if rec.Publisher != tt.wantPublisher {
				t.Errorf("Publisher = %q, want %q", rec.Publisher, tt.wantPublisher)
			}
			if rec.Issue != "" || rec.JournalName != "" {
				t.Errorf("Issue/JournalName = %q/%q, want empty", rec.Issue, rec.JournalName)
			}
			if len(rec.Authors) != 1 || rec.Year != "2019" {
				t.Errorf("Authors/Year = %+v/%q, want one author and 2019", rec.Authors, rec.Year)
			}
		})
	}
}
