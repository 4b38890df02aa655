package industry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const taxonomyCSV = `sub_industry,industry,sector,sic_code,sic_description
E-Commerce,Retail,Consumer Discretionary,5961,Catalog and Mail-Order Houses
Cloud Computing,Software,Information Technology,7372,Prepackaged Software
Investment Banking,Financial Services,Financials,6211,Security Brokers and Dealers
,Orphan Industry,Financials,0000,Row without sub-industry is skipped
Freight Logistics,Transportation,Industrials,4731,Freight Transportation Arrangement
`

func loadTestMatcher(t *testing.T) *Matcher {
	t.Helper()
	m, err := Load(strings.NewReader(taxonomyCSV))
	require.NoError(t, err)
	return m
}

func TestLoadSkipsHeaderAndEmptyRows(t *testing.T) {
	t.Parallel()

	m := loadTestMatcher(t)
	require.Equal(t, 4, m.Len())
}

func TestFindMatchesRanksDirectSubIndustryHitFirst(t *testing.T) {
	t.Parallel()

	m := loadTestMatcher(t)
	matches := m.FindMatches(
		"We run an e-commerce marketplace for retail shoppers.",
		"ShopCo", "https://shopco.com",
	)
	require.NotEmpty(t, matches)
	require.Equal(t, "E-Commerce", matches[0].SubIndustry)
	require.Greater(t, matches[0].Score, 100, "direct sub-industry mention carries the 100 bonus")
}

func TestFindMatchesKeywordOverlapOnly(t *testing.T) {
	t.Parallel()

	m := loadTestMatcher(t)
	matches := m.FindMatches("We arrange freight shipments worldwide.", "MoveIt", "https://moveit.io")
	require.NotEmpty(t, matches)
	require.Equal(t, "Freight Logistics", matches[0].SubIndustry)
}

func TestFindMatchesNoOverlap(t *testing.T) {
	t.Parallel()

	m := loadTestMatcher(t)
	require.Empty(t, m.FindMatches("zzz qqq xxx", "", ""))
	require.Nil(t, m.BestMatch("zzz qqq xxx", "", ""))
}

func TestFindMatchesCapsAtFive(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	b.WriteString("sub_industry,industry,sector,sic_code,sic_description\n")
	for _, s := range []string{"Alpha Software", "Beta Software", "Gamma Software", "Delta Software", "Epsilon Software", "Zeta Software", "Eta Software"} {
		b.WriteString(s + ",Software,Information Technology,7372,Prepackaged Software\n")
	}
	m, err := Load(strings.NewReader(b.String()))
	require.NoError(t, err)

	matches := m.FindMatches("we build software", "", "")
	require.Len(t, matches, 5)
}

func TestBestMatch(t *testing.T) {
	t.Parallel()

	m := loadTestMatcher(t)
	best := m.BestMatch("A cloud computing platform for developers building software.", "Nimbus", "https://nimbus.dev")
	require.NotNil(t, best)
	require.Equal(t, "Cloud Computing", best.SubIndustry)
	require.Equal(t, "Software", best.Industry)
	require.Equal(t, "7372", best.SICCode)
}

func TestExtractKeywords(t *testing.T) {
	t.Parallel()

	got := extractKeywords("Freight Transportation Arrangement, and other activities for the freight trade")
	require.Equal(t, []string{"freight", "transportation", "arrangement", "trade"}, got)
}

func TestLoadMalformedCSV(t *testing.T) {
	t.Parallel()

	_, err := Load(strings.NewReader("a,\"unterminated\n"))
	require.Error(t, err)
}
