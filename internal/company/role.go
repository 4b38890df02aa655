package company

import "regexp"

// Ordered role vocabularies. The first matching category wins, so a
// "Founder & CTO" title lands in Leadership, not Engineering.
var roleVocabularies = []struct {
	category RoleCategory
	pattern  *regexp.Regexp
}{
	{RoleLeadership, regexp.MustCompile(`(?i)ceo|chief executive|president|founder|co-founder|managing director|chairman`)},
	{RoleEngineering, regexp.MustCompile(`(?i)cto|chief technology|engineer|developer|architect|technical|vp.*engineering|head.*engineering`)},
	{RoleSales, regexp.MustCompile(`(?i)sales|business development|account|revenue|cro|chief revenue`)},
	{RoleMarketing, regexp.MustCompile(`(?i)marketing|cmo|chief marketing|brand|communications|pr|public relations`)},
}

// InferRole maps a free-text job title onto a role category.
func InferRole(title string) RoleCategory {
	if title == "" {
		return RoleOther
	}
	for _, v := range roleVocabularies {
		if v.pattern.MatchString(title) {
			return v.category
		}
	}
	return RoleOther
}
