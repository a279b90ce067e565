package models

// Intent classifies what a searcher is trying to do with a query.
type Intent string

const (
	IntentTransactional Intent = "transactional"
	IntentCommercial    Intent = "commercial"
	IntentInformational Intent = "informational"
	IntentNavigational  Intent = "navigational"
)

// IsValid reports whether the intent is one of the known values.
func (i Intent) IsValid() bool {
	switch i {
	case IntentTransactional, IntentCommercial, IntentInformational, IntentNavigational:
		return true
	}
	return false
}

// CompetitionLevel is the coarse paid-competition estimate for a keyword.
type CompetitionLevel string

const (
	CompetitionLow    CompetitionLevel = "low"
	CompetitionMedium CompetitionLevel = "medium"
	CompetitionHigh   CompetitionLevel = "high"
)

// KeywordRecord is the canonical keyword unit flowing through the pipeline.
// Records are value types: built once by NewKeywordRecord and never mutated.
type KeywordRecord struct {
	Term             string           `json:"term"`
	Volume           int              `json:"volume"`
	Difficulty       int              `json:"difficulty"`
	CostPerClick     float64          `json:"cpc"`
	Intent           Intent           `json:"intent"`
	LocalRelevance   float64          `json:"local_relevance"`
	URLVariations    []string         `json:"url_variations"`
	CurrentRanking   *int             `json:"current_ranking"`
	CompetitionLevel CompetitionLevel `json:"competition_level"`
}

// NewKeywordRecord builds a record, clamping out-of-range values instead of
// failing: inputs come from best-effort text parsing and provider payloads.
func NewKeywordRecord(term string, volume, difficulty int, cpc float64, intent Intent, localRelevance float64) KeywordRecord {
	if volume < 0 {
		volume = 0
	}
	if difficulty < 0 {
		difficulty = 0
	}
	if difficulty > 100 {
		difficulty = 100
	}
	if cpc < 0 {
		cpc = 0
	}
	if localRelevance < 0 {
		localRelevance = 0
	}
	if localRelevance > 1 {
		localRelevance = 1
	}
	if !intent.IsValid() {
		intent = IntentInformational
	}

	return KeywordRecord{
		Term:             term,
		Volume:           volume,
		Difficulty:       difficulty,
		CostPerClick:     cpc,
		Intent:           intent,
		LocalRelevance:   localRelevance,
		CompetitionLevel: CompetitionMedium,
	}
}

// WithURLVariations returns a copy of the record with slug variations attached.
func (k KeywordRecord) WithURLVariations(variations []string) KeywordRecord {
	k.URLVariations = variations
	return k
}

// WithRanking returns a copy of the record with the current search position set.
func (k KeywordRecord) WithRanking(position int) KeywordRecord {
	if position > 0 {
		k.CurrentRanking = &position
	}
	return k
}
