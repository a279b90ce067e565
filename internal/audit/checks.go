package audit

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/grabgifts/seo-analyst/internal/models"
)

// Heuristic ceilings for the page-weight check. Russian mobile connections
// outside the big cities are still slow; pages past these numbers feel it.
const (
	maxScripts = 25
	maxImages  = 40
)

func checkCyrillic(doc *html.Node, body string) models.CheckResult {
	result := models.CheckResult{
		Status: models.StatusPass,
		Issues: []string{},
		Recommendations: []string{
			"Ensure UTF-8 encoding is properly declared",
			"Test Cyrillic fonts across different devices",
			"Validate HTML entities are not used for Cyrillic text",
		},
	}

	if !hasUTF8Charset(doc) {
		result.Status = models.StatusFail
		result.Issues = append(result.Issues, "No UTF-8 charset declaration found")
	}

	// Numeric entities in the Cyrillic range mean the content was escaped
	// instead of encoded; Yandex indexes it but snippets degrade.
	if strings.Contains(body, "&#10") && strings.Contains(body, ";") {
		for _, entity := range []string{"&#1072;", "&#1080;", "&#1086;"} {
			if strings.Contains(body, entity) {
				result.Status = models.StatusFail
				result.Issues = append(result.Issues, "Cyrillic text encoded as HTML entities")
				break
			}
		}
	}

	return result
}

func checkYandex(doc *html.Node, body string) models.CheckResult {
	result := models.CheckResult{
		Status: models.StatusPass,
		Issues: []string{},
		Recommendations: []string{
			"Install Yandex.Metrica for better analytics",
			"Add Yandex.Webmaster verification meta tag",
			"Optimize for Yandex mobile ranking factors",
		},
	}

	if !strings.Contains(body, "mc.yandex.ru") {
		result.Status = models.StatusWarning
		result.Issues = append(result.Issues, "Missing Yandex.Metrica counter")
	}
	if !hasMetaName(doc, "yandex-verification") {
		result.Status = models.StatusWarning
		result.Issues = append(result.Issues, "Yandex.Webmaster verification not found")
	}

	return result
}

func checkMobile(doc *html.Node, _ string) models.CheckResult {
	result := models.CheckResult{
		Status: models.StatusPass,
		Issues: []string{},
		Recommendations: []string{
			"Test on popular Russian mobile devices",
			"Optimize for slower mobile connections",
			"Ensure touch targets are appropriately sized",
		},
	}

	if !hasMetaName(doc, "viewport") {
		result.Status = models.StatusFail
		result.Issues = append(result.Issues, "No viewport meta tag found")
	}

	return result
}

func checkSchema(_ *html.Node, body string) models.CheckResult {
	result := models.CheckResult{
		Status: models.StatusPass,
		Issues: []string{},
		Recommendations: []string{
			"Implement VideoGame schema for game listings",
			"Add Organization schema with Russian contact info",
			"Create FAQ schema for common user questions",
		},
	}

	if !strings.Contains(body, "application/ld+json") {
		result.Status = models.StatusFail
		result.Issues = append(result.Issues, "No structured data (JSON-LD) found")
		return result
	}

	for _, schema := range []struct{ name, issue string }{
		{"VideoGame", "No VideoGame schema found"},
		{"Organization", "Missing Organization schema"},
		{"FAQPage", "No FAQ schema for common questions"},
	} {
		if !strings.Contains(body, schema.name) {
			result.Status = models.StatusWarning
			result.Issues = append(result.Issues, schema.issue)
		}
	}

	return result
}

func checkPageSpeed(doc *html.Node, _ string) models.CheckResult {
	result := models.CheckResult{
		Status: models.StatusPass,
		Issues: []string{},
		Recommendations: []string{
			"Implement Russian CDN endpoints",
			"Optimize images for mobile connections",
			"Enable browser caching for static assets",
		},
	}

	scripts := countElements(doc, "script")
	images := countElements(doc, "img")

	if scripts > maxScripts {
		result.Status = models.StatusWarning
		result.Issues = append(result.Issues, "Too many script tags for slow connections")
	}
	if images > maxImages {
		result.Status = models.StatusWarning
		result.Issues = append(result.Issues, "Large number of images on the page")
	}

	return result
}

// hasUTF8Charset accepts both <meta charset="utf-8"> and the legacy
// http-equiv Content-Type form.
func hasUTF8Charset(doc *html.Node) bool {
	found := false
	walkElements(doc, "meta", func(n *html.Node) {
		for _, attr := range n.Attr {
			switch strings.ToLower(attr.Key) {
			case "charset":
				if strings.EqualFold(attr.Val, "utf-8") {
					found = true
				}
			case "content":
				if strings.Contains(strings.ToLower(attr.Val), "charset=utf-8") {
					found = true
				}
			}
		}
	})
	return found
}

func hasMetaName(doc *html.Node, name string) bool {
	found := false
	walkElements(doc, "meta", func(n *html.Node) {
		for _, attr := range n.Attr {
			if strings.ToLower(attr.Key) == "name" && strings.EqualFold(attr.Val, name) {
				found = true
			}
		}
	})
	return found
}

func countElements(doc *html.Node, tag string) int {
	count := 0
	walkElements(doc, tag, func(*html.Node) { count++ })
	return count
}

func walkElements(n *html.Node, tag string, visit func(*html.Node)) {
	if n.Type == html.ElementNode && n.Data == tag {
		visit(n)
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		walkElements(child, tag, visit)
	}
}
