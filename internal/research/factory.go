package research

import (
	"context"
	"log"
	"time"

	"google.golang.org/genai"

	"github.com/grabgifts/seo-analyst/internal/config"
)

// ProvidersFromConfig assembles the keyword provider chain for the
// configured mode. Live mode degrades piecewise: a missing Wordstat token
// or Gemini key drops that provider, and when nothing live is usable the
// synthetic provider steps in so runs never come back empty-handed.
func ProvidersFromConfig(ctx context.Context, cfg *config.Config) []KeywordProvider {
	if cfg.ProviderMode != config.ProviderModeLive {
		return []KeywordProvider{NewSyntheticProvider()}
	}

	providers := []KeywordProvider{}

	if cfg.YandexWordstatToken != "" {
		providers = append(providers, NewWordstatProvider(cfg.YandexWordstatToken, 15*time.Second))
	}

	if cfg.GeminiAPIKey != "" {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.GeminiAPIKey})
		if err != nil {
			log.Printf("research: gemini client init failed: %v", err)
		} else {
			providers = append(providers, NewGeminiProvider(client, cfg.GeminiChatModel))
		}
	}

	if len(providers) == 0 {
		log.Println("research: no live providers configured, falling back to synthetic data")
		providers = append(providers, NewSyntheticProvider())
	}

	return providers
}

// ProviderNames lists the chain for health reporting.
func ProviderNames(providers []KeywordProvider) []string {
	names := make([]string, len(providers))
	for i, p := range providers {
		names[i] = p.Name()
	}
	return names
}
