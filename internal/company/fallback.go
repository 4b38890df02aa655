package company

import (
	"fmt"
	"regexp"
	"strings"
)

// SourceFallback tags synthesized products so they stay distinguishable
// from observed extraction output.
const SourceFallback = "fallback"

// PageContext carries the crawl-derived signals the fallback generators
// need: combined visible text, crawled URLs, navigation categories, and
// the first meta description seen.
type PageContext struct {
	Text            string
	URLs            []string
	NavCategories   []string
	MetaDescription string
}

// Finalize enforces the non-empty invariants on a merged document:
// products, people, and both descriptions are synthesized deterministically
// when extraction produced nothing. It never fails; the document is always
// valid for graph assembly afterwards.
func Finalize(doc *Document, pc PageContext) {
	typ := InferType(pc.Text, pc.URLs)

	if typ == TypeMarketplace {
		if err := ValidateMarketplaceProducts(doc.Products, doc.Company.SubIndustry); err != nil {
			doc.Products = FallbackProducts(typ, pc, doc.Company)
		}
	}
	if len(doc.Products) == 0 {
		doc.Products = FallbackProducts(typ, pc, doc.Company)
	}
	if len(doc.People) == 0 {
		doc.People = FallbackPeople(typ, pc.Text)
	}
	if len(strings.TrimSpace(doc.Company.ShortDescription)) < 10 {
		doc.Company.ShortDescription = FallbackShortDescription(doc.Company.Name, typ, pc.MetaDescription)
	}
	if len(strings.TrimSpace(doc.Company.LongDescription)) < 50 {
		doc.Company.LongDescription = FallbackLongDescription(doc.Company.Name, doc.Company.Domain, typ, doc.Company.ShortDescription)
	}
}

// ValidateMarketplaceProducts rejects marketplace product lists that are
// too small or that leaked the industry taxonomy label in as a product.
func ValidateMarketplaceProducts(products []Product, subIndustry string) error {
	if len(products) == 0 {
		return fmt.Errorf("no products found")
	}
	label := strings.ToLower(strings.TrimSpace(subIndustry))
	if label != "" && len(products) == 1 {
		name := strings.ToLower(products[0].Name)
		if name == label || strings.Contains(name, label) {
			return fmt.Errorf("single product matches industry taxonomy label %q", subIndustry)
		}
	}
	if len(products) < 3 {
		return fmt.Errorf("marketplace needs at least 3 product categories, found %d", len(products))
	}
	return nil
}

var categoryWords = regexp.MustCompile(`(?i)\b(fashion|electronics|mobile|laptop|home|kitchen|beauty|grocery|books|toys|sports|appliances|clothing|footwear|accessories|furniture)\b`)

// FallbackProducts synthesizes a minimally useful product list for the
// inferred company type. Always returns at least one entry.
func FallbackProducts(typ Type, pc PageContext, id Identity) []Product {
	var products []Product

	switch typ {
	case TypeMarketplace:
		if len(pc.NavCategories) >= 3 {
			for _, cat := range pc.NavCategories {
				products = append(products, Product{
					Name:        cat,
					Description: fmt.Sprintf("Wide range of %s products available for online shopping and delivery", strings.ToLower(cat)),
					Source:      SourceFallback,
				})
			}
		} else {
			for _, cat := range uniqueTitleCase(categoryWords.FindAllString(pc.Text, -1), 5) {
				products = append(products, Product{
					Name:        cat,
					Description: fmt.Sprintf("Wide range of %s products available for online shopping", strings.ToLower(cat)),
					Source:      SourceFallback,
				})
			}
		}
		products = append(products,
			Product{
				Name:        "Online Shopping Platform",
				Description: "E-commerce marketplace enabling customers to browse, purchase, and receive products with secure payment and delivery options",
				Source:      SourceFallback,
			},
			Product{
				Name:        "Seller Marketplace Services",
				Description: "Platform enabling sellers to list products, manage inventory, and reach customers across the region",
				Source:      SourceFallback,
			},
		)

	case TypeConsumerPlatform:
		text := strings.ToLower(pc.Text)
		if strings.Contains(text, "food") || strings.Contains(text, "restaurant") || strings.Contains(text, "delivery") {
			products = append(products, Product{
				Name:        "Food Delivery Service",
				Description: "Platform connecting customers with restaurants for online food ordering and delivery",
				Source:      SourceFallback,
			})
		}
		if strings.Contains(text, "ride") || strings.Contains(text, "cab") || strings.Contains(text, "driver") {
			products = append(products, Product{
				Name:        "Ride Booking Service",
				Description: "Platform for booking rides and connecting with drivers for transportation",
				Source:      SourceFallback,
			})
		}
		if strings.Contains(text, "grocery") {
			products = append(products, Product{
				Name:        "Grocery Delivery",
				Description: "Online grocery shopping and home delivery service",
				Source:      SourceFallback,
			})
		}

	default:
		name := id.Name
		if name == "" {
			name = "Platform Service"
		}
		desc := id.ShortDescription
		if desc == "" {
			desc = id.LongDescription
		}
		if desc == "" {
			desc = "Digital platform providing services to customers"
		}
		products = append(products, Product{Name: name, Description: desc, Source: SourceFallback})
	}

	if len(products) == 0 {
		products = []Product{{
			Name:        "Core Platform",
			Description: "Main service offering of the company",
			Source:      SourceFallback,
		}}
	}
	return products
}

// FallbackPeople synthesizes role-only placeholder entries (empty Name)
// so the people collection is never empty. Tiering: leadership-page
// signals first, then company-type functional roles, then an explicit
// "not disclosed" entry.
func FallbackPeople(typ Type, text string) []Person {
	lower := strings.ToLower(text)
	hasLeadershipSignal := strings.Contains(lower, "leadership") ||
		strings.Contains(lower, "our team") ||
		strings.Contains(lower, "management") ||
		strings.Contains(lower, "board of directors")

	if hasLeadershipSignal {
		return []Person{
			{Title: "Chief Executive Officer", Category: RoleLeadership},
			{Title: "Leadership Team", Category: RoleLeadership},
		}
	}

	switch typ {
	case TypeMarketplace:
		return []Person{
			{Title: "Platform Operations Team", Category: RoleOperations},
			{Title: "Seller Management & Support", Category: RoleOther},
			{Title: "Engineering & Technology", Category: RoleEngineering},
		}
	case TypeConsumerPlatform:
		return []Person{
			{Title: "Operations & Service Delivery", Category: RoleOperations},
			{Title: "Technology & Product", Category: RoleEngineering},
		}
	case TypeB2BSaaS:
		return []Person{
			{Title: "Product & Engineering", Category: RoleEngineering},
			{Title: "Sales & Customer Success", Category: RoleSales},
		}
	default:
		return []Person{
			{Title: "Leadership information not publicly disclosed", Category: RoleOther},
		}
	}
}

// FallbackShortDescription prefers the page meta description and falls
// back to a type-templated one-liner.
func FallbackShortDescription(name string, typ Type, metaDescription string) string {
	meta := strings.TrimSpace(metaDescription)
	if len(meta) >= 20 && len(meta) <= 200 {
		return meta
	}
	if name == "" {
		name = "This company"
	}
	switch typ {
	case TypeMarketplace:
		return fmt.Sprintf("%s is an online marketplace platform connecting buyers and sellers.", name)
	case TypeConsumerPlatform:
		return fmt.Sprintf("%s is a consumer platform providing digital services to users.", name)
	case TypeB2BSaaS:
		return fmt.Sprintf("%s provides software solutions for businesses.", name)
	case TypeContentMedia:
		return fmt.Sprintf("%s is a media and content platform.", name)
	default:
		return fmt.Sprintf("%s is a company providing products and services to customers.", name)
	}
}

// FallbackLongDescription expands the short description with
// type-templated context.
func FallbackLongDescription(name, domain string, typ Type, short string) string {
	if name == "" {
		name = "This company"
	}
	if domain == "" {
		domain = "their website"
	}

	var b strings.Builder
	b.WriteString(short)
	b.WriteString(" ")
	switch typ {
	case TypeMarketplace:
		fmt.Fprintf(&b, "The platform enables users to discover and purchase products from multiple sellers in one convenient location. %s focuses on providing a seamless shopping experience with secure transactions and reliable delivery services. ", name)
	case TypeConsumerPlatform:
		fmt.Fprintf(&b, "Through their digital platform, %s delivers convenient services directly to consumers, leveraging technology to enhance user experience. The company operates in the consumer services sector, focusing on meeting customer needs efficiently. ", name)
	case TypeB2BSaaS:
		fmt.Fprintf(&b, "%s offers cloud-based software solutions designed to help businesses streamline their operations and improve productivity. Their platform serves companies looking to digitize and optimize their business processes. ", name)
	default:
		fmt.Fprintf(&b, "%s operates in their industry sector, serving customers through %s. The company is committed to delivering quality products and services to meet market demands. ", name, domain)
	}
	fmt.Fprintf(&b, "For more information about %s and their offerings, visit their official website.", name)
	return b.String()
}

func uniqueTitleCase(words []string, limit int) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0, limit)
	for _, w := range words {
		w = strings.ToLower(w)
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, strings.ToUpper(w[:1])+w[1:])
		if len(out) == limit {
			break
		}
	}
	return out
}
