package models

import "errors"

var (
	ErrSeedsRequired      = errors.New("at least one seed term is required")
	ErrDomainRequired     = errors.New("domain is required")
	ErrNoCompetitors      = errors.New("no competitor domains given")
	ErrProviderUnavailable = errors.New("keyword provider unavailable")
	ErrStrategyNotFound   = errors.New("strategy file not found")
)
