package service

import (
	"strings"

	"github.com/spoiledshruu/SaaS-contracts-dashboard/model"
)

// FilterCriteria is the combined search/status/risk selector state driving
// the visible subset of contracts. The zero selectors ("all", empty search)
// never exclude a record.
type FilterCriteria struct {
	SearchTerm string `json:"searchTerm"`
	Status     string `json:"status"`
	RiskScore  string `json:"riskScore"`
}

// FilterAll is the selector value that matches every record.
const FilterAll = "all"

// DefaultCriteria returns the unfiltered criteria.
func DefaultCriteria() FilterCriteria {
	return FilterCriteria{
		SearchTerm: "",
		Status:     FilterAll,
		RiskScore:  FilterAll,
	}
}

// Filter returns the subset of contracts matching the criteria, preserving
// the input order. A nil or empty collection yields an empty result.
func Filter(contracts []model.Contract, criteria FilterCriteria) []model.Contract {
	result := make([]model.Contract, 0, len(contracts))
	term := strings.ToLower(strings.TrimSpace(criteria.SearchTerm))

	for _, contract := range contracts {
		if criteria.Status != FilterAll && criteria.Status != "" && contract.Status != criteria.Status {
			continue
		}
		if criteria.RiskScore != FilterAll && criteria.RiskScore != "" && contract.RiskScore != criteria.RiskScore {
			continue
		}
		if term != "" && !matchesSearch(contract, term) {
			continue
		}
		result = append(result, contract)
	}

	return result
}

// matchesSearch reports whether the lower-cased term is a substring of the
// contract's name, type, or any party name.
func matchesSearch(contract model.Contract, term string) bool {
	if strings.Contains(strings.ToLower(contract.Name), term) {
		return true
	}
	if strings.Contains(strings.ToLower(contract.Type), term) {
		return true
	}
	for _, party := range contract.Parties {
		if strings.Contains(strings.ToLower(party), term) {
			return true
		}
	}
	return false
}
