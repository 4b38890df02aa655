// Package industry scores company text against a CSV-backed sub-industry
// taxonomy. The matcher is a lookup collaborator: the pipeline consumes
// its ranked matches and only trusts them above a confidence threshold.
package industry

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strings"
)

const topMatches = 5

// Entry is one taxonomy row.
type Entry struct {
	SubIndustry    string
	Industry       string
	Sector         string
	SICCode        string
	SICDescription string
}

// Match is a scored taxonomy row.
type Match struct {
	Entry
	Score int
}

// Matcher holds the loaded taxonomy and answers ranked-match queries.
// Safe for concurrent use after construction.
type Matcher struct {
	entries []Entry
}

// LoadCSV reads the taxonomy from a CSV file with a header row of
// sub_industry, industry, sector, sic_code, sic_description.
func LoadCSV(path string) (*Matcher, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open taxonomy: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load reads the taxonomy from any CSV stream. Rows with an empty
// sub-industry column are skipped.
func Load(r io.Reader) (*Matcher, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse taxonomy: %w", err)
	}
	if len(records) == 0 {
		return &Matcher{}, nil
	}

	var entries []Entry
	for _, rec := range records[1:] { // skip header
		e := Entry{
			SubIndustry:    field(rec, 0),
			Industry:       field(rec, 1),
			Sector:         field(rec, 2),
			SICCode:        field(rec, 3),
			SICDescription: field(rec, 4),
		}
		if e.SubIndustry == "" {
			continue
		}
		entries = append(entries, e)
	}
	return &Matcher{entries: entries}, nil
}

func field(rec []string, i int) string {
	if i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

// Len reports how many taxonomy rows are loaded.
func (m *Matcher) Len() int { return len(m.entries) }

// FindMatches returns the top 5 taxonomy rows scored against the
// combined company name, domain, and description text.
func (m *Matcher) FindMatches(description, companyName, domain string) []Match {
	searchText := strings.ToLower(companyName + " " + domain + " " + description)

	var matches []Match
	for _, entry := range m.entries {
		if score := scoreEntry(searchText, entry); score > 0 {
			matches = append(matches, Match{Entry: entry, Score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if len(matches) > topMatches {
		matches = matches[:topMatches]
	}
	return matches
}

// BestMatch returns the single highest-scoring row, or nil when nothing
// in the taxonomy matches at all.
func (m *Matcher) BestMatch(description, companyName, domain string) *Match {
	matches := m.FindMatches(description, companyName, domain)
	if len(matches) == 0 {
		return nil
	}
	return &matches[0]
}

// scoreEntry sums keyword-length scores plus fixed bonuses for direct
// sub-industry and industry name hits.
func scoreEntry(searchText string, entry Entry) int {
	score := 0
	subLower := strings.ToLower(entry.SubIndustry)

	keywords := extractKeywords(entry.SubIndustry + " " + entry.Industry + " " + entry.Sector + " " + entry.SICDescription)
	for _, kw := range keywords {
		if !strings.Contains(searchText, kw) {
			continue
		}
		score += len(kw)
		if subLower == kw {
			score += 50
		}
	}

	if strings.Contains(searchText, subLower) {
		score += 100
	}
	if entry.Industry != "" && strings.Contains(searchText, strings.ToLower(entry.Industry)) {
		score += 30
	}
	return score
}

var (
	nonWordChars = regexp.MustCompile(`[^\w\s]`)

	stopWords = map[string]bool{
		"the": true, "and": true, "or": true, "for": true, "in": true,
		"on": true, "at": true, "to": true, "a": true, "an": true,
		"is": true, "of": true, "with": true, "as": true, "by": true,
		"from": true, "that": true, "this": true, "be": true, "are": true,
		"was": true, "were": true, "been": true, "have": true, "has": true,
		"had": true, "do": true, "does": true, "did": true, "will": true,
		"would": true, "could": true, "should": true, "may": true,
		"might": true, "can": true, "other": true, "nec": true,
		"activities": true,
	}
)

// extractKeywords lowercases, strips punctuation, and drops stop words
// and short tokens, preserving first-seen order.
func extractKeywords(text string) []string {
	cleaned := nonWordChars.ReplaceAllString(strings.ToLower(text), " ")
	seen := map[string]bool{}
	var out []string
	for _, word := range strings.Fields(cleaned) {
		if len(word) <= 2 || stopWords[word] || seen[word] {
			continue
		}
		seen[word] = true
		out = append(out, word)
	}
	return out
}
