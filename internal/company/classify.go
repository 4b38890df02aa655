package company

import (
	"regexp"
	"strings"
)

// Type is a coarse business-model classification inferred from page text.
// It only steers fallback synthesis; it is never exposed as extraction
// output.
type Type string

// Recognized company types.
const (
	TypeMarketplace      Type = "B2C_MARKETPLACE"
	TypeConsumerPlatform Type = "CONSUMER_PLATFORM"
	TypeB2BSaaS          Type = "B2B_SAAS"
	TypeContentMedia     Type = "CONTENT_MEDIA"
	TypeEnterpriseTech   Type = "ENTERPRISE_TECH"
	TypeOther            Type = "OTHER"
)

// minTypeScore is the floor below which classification falls back to OTHER.
const minTypeScore = 5

var (
	marketplaceStrong = regexp.MustCompile(`\b(marketplace|shop|buy|sell|cart|checkout|sellers|vendors|products|categories|deals|offers|browse|add to cart)\b`)
	marketplaceGoods  = regexp.MustCompile(`\b(fashion|electronics|grocery|home|kitchen|books|toys|beauty|accessories)\b`)
	marketplaceOps    = regexp.MustCompile(`\b(delivery|shipping|order|track order|returns|refund)\b`)

	platformStrong = regexp.MustCompile(`\b(delivery|rides?|drivers?|restaurants?|food|menu|book now|track|live tracking)\b`)
	platformWeak   = regexp.MustCompile(`\b(customers?|users?|order now|get started|download app)\b`)

	saasStrong = regexp.MustCompile(`\b(api|integration|enterprise|business|solution|platform|dashboard|analytics|workspace|collaboration|management|automation)\b`)
	saasMid    = regexp.MustCompile(`\b(pricing|plans|features|documentation|developers|free trial|sign up|demo)\b`)
	saasWeak   = regexp.MustCompile(`\b(teams?|organizations?|companies|businesses)\b`)

	mediaStrong = regexp.MustCompile(`\b(watch|stream|video|news|article|blog|content|media|entertainment|shows?)\b`)
	mediaWeak   = regexp.MustCompile(`\b(subscribe|channel|playlist|episodes?)\b`)

	enterpriseStrong = regexp.MustCompile(`\b(infrastructure|cloud|security|compliance|scalable|deployment|kubernetes|database|server)\b`)
	enterpriseWeak   = regexp.MustCompile(`\b(enterprise|mission critical|high availability|disaster recovery)\b`)
)

// InferType scores business-model signals over the combined page text and
// crawled URLs and returns the highest-scoring type, or OTHER when every
// score stays below the confidence floor.
func InferType(text string, urls []string) Type {
	combined := strings.ToLower(text) + " " + strings.ToLower(strings.Join(urls, " "))

	scores := map[Type]int{
		TypeMarketplace:      2*count(marketplaceStrong, combined) + count(marketplaceGoods, combined) + count(marketplaceOps, combined),
		TypeConsumerPlatform: 2*count(platformStrong, combined) + count(platformWeak, combined),
		TypeB2BSaaS:          2*count(saasStrong, combined) + count(saasMid, combined) + count(saasWeak, combined),
		TypeContentMedia:     2*count(mediaStrong, combined) + count(mediaWeak, combined),
		TypeEnterpriseTech:   2*count(enterpriseStrong, combined) + count(enterpriseWeak, combined),
	}

	best, bestScore := TypeOther, 0
	// Fixed evaluation order keeps ties deterministic.
	for _, t := range []Type{TypeMarketplace, TypeConsumerPlatform, TypeB2BSaaS, TypeContentMedia, TypeEnterpriseTech} {
		if scores[t] > bestScore {
			best, bestScore = t, scores[t]
		}
	}
	if bestScore < minTypeScore {
		return TypeOther
	}
	return best
}

func count(re *regexp.Regexp, s string) int {
	return len(re.FindAllString(s, -1))
}
