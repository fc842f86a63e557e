package service

import "github.com/spoiledshruu/SaaS-contracts-dashboard/model"

// Page is one window of a filtered collection plus its display metadata.
// StartIndex and EndIndex are 1-indexed and inclusive; both are 0 when the
// collection is empty.
type Page struct {
	Items      []model.Contract `json:"items"`
	StartIndex int              `json:"startIndex"`
	EndIndex   int              `json:"endIndex"`
	TotalItems int              `json:"totalItems"`
	TotalPages int              `json:"totalPages"`
	// Page is the effective (clamped) page number actually served.
	Page int `json:"page"`
}

// Paginate computes the page window for a filtered collection. The requested
// page is clamped to [1, max(1, totalPages)], so a stale cursor left over
// from a larger result set degrades to the nearest valid page.
func Paginate(contracts []model.Contract, page, itemsPerPage int) Page {
	totalItems := len(contracts)

	totalPages := 0
	if itemsPerPage > 0 {
		totalPages = (totalItems + itemsPerPage - 1) / itemsPerPage
	}

	effective := page
	if effective < 1 {
		effective = 1
	}
	if totalPages > 0 && effective > totalPages {
		effective = totalPages
	}

	if totalItems == 0 || itemsPerPage <= 0 {
		return Page{
			Items:      []model.Contract{},
			TotalItems: totalItems,
			TotalPages: totalPages,
			Page:       effective,
		}
	}

	start := (effective - 1) * itemsPerPage
	end := start + itemsPerPage
	if end > totalItems {
		end = totalItems
	}

	return Page{
		Items:      contracts[start:end],
		StartIndex: start + 1,
		EndIndex:   end,
		TotalItems: totalItems,
		TotalPages: totalPages,
		Page:       effective,
	}
}
