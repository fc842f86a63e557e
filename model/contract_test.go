package model

import (
	"encoding/json"
	"testing"
)

func TestValidStatus(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{StatusActive, true},
		{StatusExpired, true},
		{StatusRenewalDue, true},
		{"RenewalDue", false},
		{"active", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidStatus(tt.status); got != tt.want {
			t.Errorf("ValidStatus(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestValidRisk(t *testing.T) {
	tests := []struct {
		risk string
		want bool
	}{
		{RiskLow, true},
		{RiskMedium, true},
		{RiskHigh, true},
		{"low", false},
		{"Critical", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidRisk(tt.risk); got != tt.want {
			t.Errorf("ValidRisk(%q) = %v, want %v", tt.risk, got, tt.want)
		}
	}
}

func TestContractDetailJSONShape(t *testing.T) {
	raw := `{
		"id": "c-1",
		"name": "MSA with Acme Corp",
		"parties": ["Acme Corp", "Beta LLC"],
		"startDate": "2024-01-01",
		"expiryDate": "2025-12-31",
		"status": "Renewal Due",
		"riskScore": "High",
		"value": "$1,200,000",
		"type": "MSA",
		"clauses": [
			{"id": "cl-1", "title": "Termination", "summary": "90 day notice", "confidenceScore": 88, "type": "Risk"}
		],
		"insights": [
			{"id": "in-1", "type": "Risk", "severity": "High", "title": "Auto-renewal", "description": "Renews silently"}
		],
		"evidence": [
			{"id": "ev-1", "source": "Section 12.3", "snippet": "This agreement shall renew...", "relevanceScore": 91, "page": 14}
		]
	}`

	var detail ContractDetail
	if err := json.Unmarshal([]byte(raw), &detail); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if detail.ID != "c-1" {
		t.Errorf("expected id c-1, got %s", detail.ID)
	}
	if detail.Status != StatusRenewalDue {
		t.Errorf("expected status %q, got %q", StatusRenewalDue, detail.Status)
	}
	if len(detail.Parties) != 2 {
		t.Errorf("expected 2 parties, got %d", len(detail.Parties))
	}
	if len(detail.Clauses) != 1 || detail.Clauses[0].Type != ClauseRisk {
		t.Errorf("unexpected clauses: %+v", detail.Clauses)
	}
	if len(detail.Insights) != 1 || detail.Insights[0].Severity != RiskHigh {
		t.Errorf("unexpected insights: %+v", detail.Insights)
	}
	if len(detail.Evidence) != 1 || detail.Evidence[0].Page != 14 {
		t.Errorf("unexpected evidence: %+v", detail.Evidence)
	}
}
