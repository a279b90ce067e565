package research

import (
	"strings"

	"github.com/grabgifts/seo-analyst/internal/models"
)

// Marker words for Russian search-intent classification. Checked in order:
// transactional wins over commercial wins over navigational.
var (
	transactionalMarkers = []string{"купить", "скачать", "играть", "регистрация", "бесплатно"}
	commercialMarkers    = []string{"лучшие", "топ", "сравнение", "выбрать", "рейтинг"}
	navigationalMarkers  = []string{"сайт", "официальный", "войти", "логин"}
)

// DetectIntent classifies a Russian keyword by its marker words.
// Keywords without any marker default to informational.
func DetectIntent(keyword string) models.Intent {
	lower := strings.ToLower(keyword)

	if containsAny(lower, transactionalMarkers) {
		return models.IntentTransactional
	}
	if containsAny(lower, commercialMarkers) {
		return models.IntentCommercial
	}
	if containsAny(lower, navigationalMarkers) {
		return models.IntentNavigational
	}
	return models.IntentInformational
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
