package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const MaxSlugLength = 60

// GOST-style transliteration used across Russian SEO tooling.
var translitMap = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'е': "e", 'ё': "yo",
	'ж': "zh", 'з': "z", 'и': "i", 'й': "y", 'к': "k", 'л': "l", 'м': "m",
	'н': "n", 'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t", 'у': "u",
	'ф': "f", 'х': "kh", 'ц': "ts", 'ч': "ch", 'ш': "sh", 'щ': "shch",
	'ъ': "", 'ы': "y", 'ь': "", 'э': "e", 'ю': "yu", 'я': "ya",
}

var slugCleanup = regexp.MustCompile(`[^a-z0-9]+`)

// Transliterate converts Cyrillic text to its Latin form, leaving
// non-Cyrillic runes untouched.
func Transliterate(text string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(text) {
		if latin, ok := translitMap[r]; ok {
			b.WriteString(latin)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Slug builds a URL-safe kebab-case slug from a (possibly Cyrillic) phrase.
// Example: "телеграм игры" -> "telegram-igry" style output via transliteration.
func Slug(text string) string {
	if text == "" {
		return ""
	}

	translit := Transliterate(text)

	// Strip diacritics left over from mixed Latin input.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	normalized, _, _ := transform.String(t, translit)
	normalized = strings.ToLower(normalized)

	slug := slugCleanup.ReplaceAllString(normalized, "-")
	slug = strings.Trim(slug, "-")

	if len(slug) > MaxSlugLength {
		slug = slug[:MaxSlugLength]
		if lastHyphen := strings.LastIndex(slug, "-"); lastHyphen > 0 {
			slug = slug[:lastHyphen]
		}
	}

	return slug
}

// URLVariations returns the alternate slug forms tried for a keyword:
// the transliterated slug and the hyphenated lowercase original.
func URLVariations(keyword string) []string {
	if keyword == "" {
		return nil
	}

	variations := make([]string, 0, 2)

	if slug := Slug(keyword); slug != "" {
		variations = append(variations, slug)
	}

	hyphenated := strings.ToLower(strings.Join(strings.Fields(keyword), "-"))
	if hyphenated != "" && (len(variations) == 0 || hyphenated != variations[0]) {
		variations = append(variations, hyphenated)
	}

	return variations
}
