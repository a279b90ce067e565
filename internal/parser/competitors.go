package parser

import (
	"regexp"
	"strings"

	"github.com/grabgifts/seo-analyst/internal/models"
)

// competitorSectionPattern matches the numbered competitor headings of the
// analysis document, e.g. "#### 1. Hamster Kombat".
var competitorSectionPattern = regexp.MustCompile(`(?m)^#### \d+\. (.+)$`)

// knownDomains maps competitor display names to their real domains. Names
// not listed here fall back to a synthesized .com domain.
var knownDomains = map[string]string{
	"Hamster Kombat": "hamsterkombat.io",
	"Notcoin":        "notcoin.io",
	"X Empire":       "xempire.io",
	"TapSwap":        "tapswap.club",
	"Catizen":        "catizen.ai",
	"CSGOFast":       "csgofast.com",
	"CSGOEmpire":     "csgoempire.com",
	"VK Play":        "vkplay.ru",
}

// ParseCompetitors extracts the competitor roster from an analysis markdown
// document. Metrics live in external tools, so records start zeroed; the
// research providers fill in keyword data later.
func ParseCompetitors(content string) []models.CompetitorRecord {
	competitors := []models.CompetitorRecord{}

	for _, match := range competitorSectionPattern.FindAllStringSubmatch(content, -1) {
		name := strings.TrimSpace(match[1])
		if name == "" {
			continue
		}
		competitors = append(competitors, models.CompetitorRecord{
			Domain:      DomainFromName(name),
			TopKeywords: []models.KeywordRecord{},
			ContentGaps: []string{},
		})
	}

	return competitors
}

// DomainFromName resolves a competitor display name to a domain. Known
// names match by substring so headings like "Hamster Kombat (лидер)" still
// resolve.
func DomainFromName(name string) string {
	for key, domain := range knownDomains {
		if strings.Contains(name, key) {
			return domain
		}
	}
	return strings.ReplaceAll(strings.ToLower(name), " ", "") + ".com"
}
