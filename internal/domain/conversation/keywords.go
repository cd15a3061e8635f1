package conversation

import "strings"

// Fixed vocabularies used by the heuristics. Order matters wherever the first or
// last hit decides the outcome.
var (
	furnitureTopics = []string{
		"sofa", "chair", "table", "desk", "bed", "couch", "dining", "coffee table",
		"bookshelf", "cabinet", "wardrobe", "dresser", "nightstand", "ottoman",
		"outdoor", "patio", "cushion", "leather", "fabric", "wood", "metal", "glass",
	}

	officeTopics = []string{
		"office", "workspace", "cubicle", "workstation", "conference", "meeting room",
		"ergonomic", "corporate", "professional", "business", "commercial",
		"reception", "lobby", "executive", "employee", "co-working", "open plan",
	}

	productTypes = []string{
		"sofa", "chair", "table", "bed", "desk", "couch", "dining table",
		"coffee table", "bookshelf", "cabinet",
	}

	furnitureItems = []string{
		"sofa", "chair", "table", "desk", "bed", "couch", "dining", "coffee table",
		"bookshelf", "cabinet", "wardrobe", "dresser", "nightstand", "ottoman",
	}

	colors    = []string{"black", "white", "brown", "gray", "blue", "red", "green", "yellow", "purple", "orange"}
	materials = []string{"leather", "fabric", "wood", "metal", "glass", "plastic"}

	lowPriceTerms  = []string{"cheap", "affordable", "inexpensive"}
	highPriceTerms = []string{"expensive", "premium", "high-end"}

	companyKeywords = []string{
		"tcs", "tata", "infosys", "wipro", "google", "microsoft", "amazon",
		"apple", "facebook", "corporate", "enterprise", "startup",
		"company", "business", "firm", "organization", "corporation",
	}

	officeTypes = []string{
		"open plan", "cubicle", "private office", "corner office", "executive",
		"coworking", "home office", "remote", "hybrid", "flexible",
	}

	referencePhrases = []string{
		"same as", "like i said", "as i mentioned", "for the same", "for that",
		"this", "that", "those", "these", "it", "above", "previous", "before",
		"aforementioned", "earlier", "last message", "for it", "from before",
		"what i just said", "what i mentioned", "what i was talking about",
		"as stated", "already told you", "just told you",
	}

	importanceMarkers = []string{"important", "key", "note", "remember", "consider", "recommend"}
)

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

func hasCompanyKeyword(text string) bool {
	return containsAny(text, companyKeywords)
}

func hasFurnitureKeyword(text string) bool {
	return containsAny(text, furnitureItems)
}
