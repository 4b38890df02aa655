package extract

import (
	"strings"

	"github.com/antzucaro/matchr"

	"github.com/corpgraph/corpgraph/internal/company"
	"github.com/corpgraph/corpgraph/internal/parser"
)

// Near-identical names ("Jane Smith" vs "Jane  Smith" vs "Jane Smyth"
// from OCR-ish markup) collapse above this similarity.
const nameSimilarityThreshold = 0.95

// ExtractPeople unions per-page people candidates across the crawl,
// deduplicates by lowercase trimmed name with a fuzzy-match guard, and
// assigns each survivor a role category inferred from its title.
func ExtractPeople(pages []parser.Page) []company.Person {
	var candidates []parser.PersonCandidate
	for _, page := range pages {
		candidates = append(candidates, page.PeopleCandidates...)
	}
	return DedupePeople(candidates)
}

// DedupePeople keeps the first occurrence of each name. Exact duplicates
// are dropped outright; fuzzy duplicates keep whichever entry carries the
// longer title, since person cards often repeat a name with a truncated
// role. Idempotent.
func DedupePeople(candidates []parser.PersonCandidate) []company.Person {
	out := []company.Person{}
	keys := []string{}
	index := map[string]int{}

	for _, c := range candidates {
		name := strings.TrimSpace(c.Name)
		key := strings.ToLower(name)
		if key == "" || len(name) <= 2 {
			continue
		}

		if i, ok := index[key]; ok {
			if len(c.Title) > len(out[i].Title) {
				out[i].Title = c.Title
				out[i].Category = company.InferRole(c.Title)
			}
			continue
		}

		if i, ok := fuzzyMatch(key, keys, index); ok {
			if len(c.Title) > len(out[i].Title) {
				out[i].Title = c.Title
				out[i].Category = company.InferRole(c.Title)
			}
			continue
		}

		index[key] = len(out)
		keys = append(keys, key)
		out = append(out, company.Person{
			Name:     name,
			Title:    c.Title,
			Category: company.InferRole(c.Title),
		})
	}
	return out
}

func fuzzyMatch(key string, keys []string, index map[string]int) (int, bool) {
	for _, existing := range keys {
		if matchr.JaroWinkler(key, existing, true) >= nameSimilarityThreshold {
			return index[existing], true
		}
	}
	return 0, false
}
