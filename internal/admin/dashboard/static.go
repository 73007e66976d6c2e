package dashboard

import (
	"context"
	"time"
)

// StaticService provides canned responses for development and tests.
type StaticService struct {
	KPIs   []KPI
	Agents []AgentStatus
	Claims []Claim
}

// NewStaticService returns a StaticService populated with sample data.
func NewStaticService() *StaticService {
	now := time.Now()
	return &StaticService{
		KPIs: []KPI{
			{
				ID:        "claims-processed",
				Label:     "Claims Processed",
				Value:     "2,847",
				DeltaText: "+18.2%",
				Trend:     TrendUp,
				Footnote:  "AI agents processing efficiently",
			},
			{
				ID:        "active-policies",
				Label:     "Active Policies",
				Value:     "45,678",
				DeltaText: "+5.4%",
				Trend:     TrendUp,
				Footnote:  "Steady growth in coverage",
			},
			{
				ID:        "fraud-detection",
				Label:     "Fraud Detection Rate",
				Value:     "12.8%",
				DeltaText: "-2.1%",
				Trend:     TrendDown,
				Footnote:  "Fewer suspicious claims this month",
			},
			{
				ID:        "average-settlement",
				Label:     "Average Settlement",
				Value:     "$8,450",
				DeltaText: "0.0%",
				Trend:     TrendFlat,
				Footnote:  "Settlement amounts stable",
			},
		},
		Agents: []AgentStatus{
			{Slug: "claim-assessor", Name: "Claim Assessor", State: AgentBusy, ClaimsHandled: 1243, AverageSeconds: 42.5, LastActive: now.Add(-1 * time.Minute)},
			{Slug: "policy-checker", Name: "Policy Checker", State: AgentIdle, ClaimsHandled: 1198, AverageSeconds: 18.2, LastActive: now.Add(-6 * time.Minute)},
			{Slug: "risk-analyst", Name: "Risk Analyst", State: AgentBusy, ClaimsHandled: 1102, AverageSeconds: 55.0, LastActive: now.Add(-30 * time.Second)},
			{Slug: "communication-agent", Name: "Communication Agent", State: AgentOffline, ClaimsHandled: 987, AverageSeconds: 12.7, LastActive: now.Add(-3 * time.Hour)},
		},
		Claims: []Claim{
			{ID: "CLM-2024-0193", Claimant: "John Smith", PolicyType: "Auto", Amount: 12500, Stage: "Assessment", Priority: "high", Submitted: now.Add(-2 * time.Hour)},
			{ID: "CLM-2024-0192", Claimant: "Maria Garcia", PolicyType: "Home", Amount: 48200, Stage: "Policy Check", Priority: "medium", Submitted: now.Add(-5 * time.Hour)},
			{ID: "CLM-2024-0191", Claimant: "Wei Chen", PolicyType: "Health", Amount: 3150, Stage: "Risk Analysis", Priority: "low", Submitted: now.Add(-9 * time.Hour)},
			{ID: "CLM-2024-0190", Claimant: "Aisha Khan", PolicyType: "Auto", Amount: 7800, Stage: "Communication", Priority: "medium", Submitted: now.Add(-26 * time.Hour)},
			{ID: "CLM-2024-0189", Claimant: "Lucas Müller", PolicyType: "Travel", Amount: 1290, Stage: "Assessment", Priority: "low", Submitted: now.Add(-30 * time.Hour)},
		},
	}
}

// FetchKPIs implements Service.
func (s *StaticService) FetchKPIs(ctx context.Context) ([]KPI, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]KPI(nil), s.KPIs...), nil
}

// FetchAgentStatuses implements Service.
func (s *StaticService) FetchAgentStatuses(ctx context.Context) ([]AgentStatus, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]AgentStatus(nil), s.Agents...), nil
}

// FetchActiveClaims implements Service.
func (s *StaticService) FetchActiveClaims(ctx context.Context, limit int) ([]Claim, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	claims := s.Claims
	if limit > 0 && len(claims) > limit {
		claims = claims[:limit]
	}
	return append([]Claim(nil), claims...), nil
}
