package models

// CheckStatus is the outcome of a single technical check.
type CheckStatus string

const (
	StatusPass    CheckStatus = "pass"
	StatusWarning CheckStatus = "warning"
	StatusFail    CheckStatus = "fail"
)

// Audit areas checked for every Russian-market domain.
const (
	AreaCyrillicSupport    = "cyrillic_support"
	AreaYandexOptimization = "yandex_optimization"
	AreaMobilePerformance  = "mobile_performance"
	AreaSchemaMarkup       = "schema_markup"
	AreaPageSpeedRussia    = "page_speed_russia"
)

// CheckResult is what one auditor check returns for one area.
type CheckResult struct {
	Status          CheckStatus `json:"status"`
	Issues          []string    `json:"issues"`
	Recommendations []string    `json:"recommendations"`
}

// TechnicalFix is a prioritized remediation derived from a failing check.
type TechnicalFix struct {
	Area            string   `json:"area"`
	Issues          []string `json:"issues"`
	Recommendations []string `json:"recommendations"`
	Priority        int      `json:"priority"`
}

// AuditReport aggregates all check results for a domain.
type AuditReport struct {
	Domain        string                 `json:"domain"`
	Results       map[string]CheckResult `json:"results"`
	OverallScore  int                    `json:"overall_score"`
	PriorityFixes []TechnicalFix         `json:"priority_fixes"`
}
