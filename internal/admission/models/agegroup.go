package models

import (
	id "touchline/pkg/domain"
)

// AgeGroup is a pre-existing classification (U10, U12, ...). Read-only from
// the admission pipeline's perspective.
type AgeGroup struct {
	ID     id.AgeGroupID `json:"id"`
	Name   string        `json:"name"`
	MinAge int           `json:"min_age"`
	MaxAge int           `json:"max_age"`
}
