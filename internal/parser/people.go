package parser

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
)

// Source tags for people candidates.
const (
	personSourceTitleMatch       = "executive-title-match"
	personSourceHeaderBody       = "header-body"
	personSourceStructured       = "structured"
	personSourceList             = "list"
	personSourceHeadingParagraph = "heading-paragraph"
)

// Executive titles recognized by the full-text regex strategy.
var executiveTitles = []string{
	"Chief Executive Officer", "CEO", "Chief Technology Officer", "CTO",
	"Chief Financial Officer", "CFO", "Chief Operating Officer", "COO",
	"Chief Marketing Officer", "CMO", "Chief Product Officer", "CPO",
	"Chief Revenue Officer", "CRO", "Chief Information Officer", "CIO",
	"Chief Human Resources Officer", "CHRO", "Chief Strategy Officer", "CSO",
	"Founder", "Co-Founder", "President", "Vice President", "VP",
	"Managing Director", "Director", "Head of", "Senior Vice President", "SVP",
}

// One compiled pattern per executive title: a 2-4 token capitalized name
// immediately followed by the title. The name shape stays case-sensitive
// so running text does not match; only the title is case-folded.
var executivePatterns = func() []struct {
	title   string
	pattern *regexp.Regexp
} {
	out := make([]struct {
		title   string
		pattern *regexp.Regexp
	}, 0, len(executiveTitles))
	for _, title := range executiveTitles {
		re := regexp.MustCompile(`([A-Z][a-z]+(?:\s+[A-Z][a-z]+){1,3})[,\s\-]+(?i:` + regexp.QuoteMeta(title) + `)`)
		out = append(out, struct {
			title   string
			pattern *regexp.Regexp
		}{title, re})
	}
	return out
}()

var personCardSelectors = []string{
	".team-member, .person, .leader, .executive, .founder",
	`[class*="team"], [class*="person"], [class*="leader"], [class*="member"]`,
	"article.bio, .bio-card, .profile-card",
	`[itemtype*="Person"]`,
}

// ExtractPeopleCandidates unions five independent strategies, each a pure
// function of the document, deduplicated by case-insensitive name.
func ExtractPeopleCandidates(doc *goquery.Document, cfg Config) []PersonCandidate {
	var out []PersonCandidate
	seen := make(map[string]struct{})

	keep := func(name, title, source string) {
		name = strings.TrimSpace(name)
		key := strings.ToLower(name)
		if name == "" {
			return
		}
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		out = append(out, PersonCandidate{Name: name, Title: strings.TrimSpace(title), Source: source})
	}

	executiveTitleMatches(doc, keep)
	headerBodyMatches(doc, keep)
	personCardMatches(doc, keep)
	teamListMatches(doc, keep)
	headingParagraphMatches(doc, keep)

	if cfg.MaxPeoplePerPage > 0 && len(out) > cfg.MaxPeoplePerPage {
		out = out[:cfg.MaxPeoplePerPage]
	}
	return out
}

// Strategy 1: "<Capitalized Name> <executive title>" over the full text.
func executiveTitleMatches(doc *goquery.Document, keep func(name, title, source string)) {
	text := doc.Find("body").Text()
	for _, ep := range executivePatterns {
		for _, m := range ep.pattern.FindAllStringSubmatch(text, -1) {
			name := strings.TrimSpace(m[1])
			words := strings.Fields(name)
			if len(words) >= 2 && len(words) <= 4 {
				keep(name, ep.title, personSourceTitleMatch)
			}
		}
	}
}

// Strategy 2: short header followed by a descriptive paragraph inside the
// same container, common on modern profile grids.
func headerBodyMatches(doc *goquery.Document, keep func(name, title, source string)) {
	doc.Find("section, article, div").Each(func(_ int, s *goquery.Selection) {
		header := s.Find("header > h1, header > h2, header > h3").First()
		if header.Length() == 0 {
			return
		}
		name := strings.TrimSpace(header.Text())
		title := strings.TrimSpace(s.Find("p").First().Text())
		words := strings.Fields(name)
		if name != "" && title != "" && len(words) >= 2 && len(words) <= 5 {
			keep(name, title, personSourceHeaderBody)
		}
	})
}

// Strategy 3: structural person cards with explicit name/title children.
func personCardMatches(doc *goquery.Document, keep func(name, title, source string)) {
	for _, selector := range personCardSelectors {
		doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
			name := strings.TrimSpace(s.Find(`h2, h3, h4, .name, [itemprop="name"]`).First().Text())
			title := strings.TrimSpace(s.Find(`.title, .role, .position, [itemprop="jobTitle"]`).First().Text())
			if title == "" {
				for _, line := range strings.Split(s.Text(), "\n") {
					line = strings.TrimSpace(line)
					if line != "" && line != name {
						title = line
						break
					}
				}
			}
			if len(name) > 2 && len(name) < 100 {
				keep(name, title, personSourceStructured)
			}
		})
	}
}

// Strategy 4: list items under a team/leadership heading.
func teamListMatches(doc *goquery.Document, keep func(name, title, source string)) {
	doc.Find("ul, ol").Each(func(_ int, list *goquery.Selection) {
		prevHeading := strings.ToLower(list.PrevAllFiltered("h1, h2, h3, h4").First().Text())
		isPeopleList := strings.Contains(prevHeading, "team") ||
			strings.Contains(prevHeading, "leadership") ||
			strings.Contains(prevHeading, "management") ||
			strings.Contains(prevHeading, "founder") ||
			strings.Contains(prevHeading, "executive")
		if !isPeopleList {
			return
		}
		list.Find("li").Each(func(_ int, item *goquery.Selection) {
			heading := strings.TrimSpace(item.Find("h2, h3, h4, h5, strong, b").First().Text())
			rest := strings.TrimSpace(strings.Replace(item.Text(), heading, "", 1))
			words := strings.Fields(heading)
			if heading != "" && len(words) >= 2 && len(words) <= 5 {
				keep(heading, capString(rest, 200), personSourceList)
			}
		})
	})
}

// Strategy 5: a heading whose word shape resembles a human name,
// immediately followed by a paragraph used as the title.
func headingParagraphMatches(doc *goquery.Document, keep func(name, title, source string)) {
	doc.Find("h2, h3, h4").Each(func(_ int, heading *goquery.Selection) {
		name := strings.TrimSpace(heading.Text())
		words := strings.Fields(name)
		if len(words) < 2 || len(words) > 4 || !allCapitalized(words) {
			return
		}
		paragraph := strings.TrimSpace(heading.NextFiltered("p").Text())
		if paragraph == "" {
			return
		}
		title := capString(strings.SplitN(paragraph, ".", 2)[0], 200)
		if title != "" {
			keep(name, title, personSourceHeadingParagraph)
		}
	})
}

func allCapitalized(words []string) bool {
	for _, w := range words {
		r := []rune(w)[0]
		if unicode.IsLetter(r) && !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}
