package dashboard

import (
	"context"
	"time"
)

// Service exposes data retrieval for the live dashboard.
type Service interface {
	// FetchKPIs returns the summary metric cards.
	FetchKPIs(ctx context.Context) ([]KPI, error)
	// FetchAgentStatuses returns the current state of each claims agent.
	FetchAgentStatuses(ctx context.Context) ([]AgentStatus, error)
	// FetchActiveClaims returns at most limit claims currently in the workflow.
	FetchActiveClaims(ctx context.Context, limit int) ([]Claim, error)
}

// KPI represents a dashboard metric card.
type KPI struct {
	ID        string
	Label     string
	Value     string
	DeltaText string
	Trend     Trend
	Footnote  string
}

// Trend describes the direction of a KPI delta.
type Trend string

const (
	// TrendFlat indicates no significant change.
	TrendFlat Trend = "flat"
	// TrendUp indicates a positive change.
	TrendUp Trend = "up"
	// TrendDown indicates a negative change.
	TrendDown Trend = "down"
)

// AgentState is the activity state reported for an agent.
type AgentState string

const (
	AgentIdle    AgentState = "idle"
	AgentBusy    AgentState = "processing"
	AgentOffline AgentState = "offline"
)

// AgentStatus summarises one agent of the claims workflow.
type AgentStatus struct {
	Slug           string
	Name           string
	State          AgentState
	ClaimsHandled  int
	AverageSeconds float64
	LastActive     time.Time
}

// Claim is a row of the active claims table.
type Claim struct {
	ID         string
	Claimant   string
	PolicyType string
	Amount     float64
	Stage      string
	Priority   string
	Submitted  time.Time
}
