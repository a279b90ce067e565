package research

import (
	"context"

	"github.com/grabgifts/seo-analyst/internal/models"
)

// KeywordProvider is the capability every research source exposes. Variants
// are selected by the caller at construction time: SyntheticProvider for
// offline/deterministic runs, the HTTP and Gemini providers for live data.
//
// Implementations must not fail just because credentials are absent; they
// return an empty (or synthetic) result so the pipeline degrades instead
// of aborting.
type KeywordProvider interface {
	// Name identifies the source in logs and reports.
	Name() string

	// Suggest returns candidate keywords expanded from the seed terms.
	Suggest(ctx context.Context, seeds []string) ([]models.KeywordRecord, error)

	// CompetitorKeywords returns the keywords a competitor domain ranks for.
	CompetitorKeywords(ctx context.Context, domain string) ([]models.KeywordRecord, error)
}
