package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/trykin/spark/ent"
	"github.com/trykin/spark/ent/conversation"
	"github.com/trykin/spark/ent/lead"
)

// metricsRowCap bounds how many rows a single metrics request will
// aggregate. Tenants past the cap get approximate numbers and a log
// line, not an error.
const metricsRowCap = 10000

// DashboardSummary aggregates the KPI cards.
type DashboardSummary struct {
	TotalConversations       int      `json:"total_conversations"`
	TotalLeads               int      `json:"total_leads"`
	ConversionRate           float64  `json:"conversion_rate"`
	AvgTurns                 float64  `json:"avg_turns"`
	AvgDurationSeconds       *float64 `json:"avg_duration_seconds"`
	ConversationsWithDuration int     `json:"conversations_with_duration"`
}

// TimeseriesPoint is one day in the daily activity chart.
type TimeseriesPoint struct {
	Date          string `json:"date"`
	Conversations int    `json:"conversations"`
	Leads         int    `json:"leads"`
}

// Bucket is one slice of a distribution chart.
type Bucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// DashboardTimeseries is the daily chart plus distributions.
type DashboardTimeseries struct {
	Daily      []TimeseriesPoint `json:"daily"`
	Outcomes   []Bucket          `json:"outcomes"`
	Sentiments []Bucket          `json:"sentiments"`
}

// DashboardService computes tenant metrics for the admin portal.
type DashboardService struct {
	client *ent.Client
	logger *slog.Logger
	now    func() time.Time
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(client *ent.Client, logger *slog.Logger) *DashboardService {
	return &DashboardService{client: client, logger: logger, now: time.Now}
}

// clampDays holds the metrics window to [1, 90] days.
func clampDays(days int) int {
	if days < 1 {
		return 1
	}
	if days > 90 {
		return 90
	}
	return days
}

func (s *DashboardService) windowRows(ctx context.Context, clientID string, days int) ([]*ent.Conversation, []*ent.Lead, error) {
	since := s.now().UTC().AddDate(0, 0, -days)

	convs, err := s.client.Conversation.Query().
		Where(
			conversation.ClientID(clientID),
			conversation.CreatedAtGTE(since),
		).
		Limit(metricsRowCap).
		All(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query conversations for metrics: %w", err)
	}
	if len(convs) == metricsRowCap {
		s.logger.Warn("Metrics conversation window truncated",
			"client_id", clientID, "cap", metricsRowCap)
	}

	leads, err := s.client.Lead.Query().
		Where(
			lead.ClientID(clientID),
			lead.CreatedAtGTE(since),
		).
		Limit(metricsRowCap).
		All(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query leads for metrics: %w", err)
	}
	if len(leads) == metricsRowCap {
		s.logger.Warn("Metrics lead window truncated",
			"client_id", clientID, "cap", metricsRowCap)
	}

	return convs, leads, nil
}

// Summary computes the KPI cards over the last `days` days.
func (s *DashboardService) Summary(ctx context.Context, clientID string, days int) (*DashboardSummary, error) {
	days = clampDays(days)
	convs, leads, err := s.windowRows(ctx, clientID, days)
	if err != nil {
		return nil, err
	}

	summary := &DashboardSummary{
		TotalConversations: len(convs),
		TotalLeads:         len(leads),
	}

	if len(convs) > 0 {
		totalTurns := 0
		var totalDuration float64
		for _, c := range convs {
			totalTurns += c.TurnCount
			if c.EndedAt != nil {
				totalDuration += c.EndedAt.Sub(c.CreatedAt).Seconds()
				summary.ConversationsWithDuration++
			}
		}
		summary.AvgTurns = float64(totalTurns) / float64(len(convs))
		summary.ConversionRate = float64(len(leads)) / float64(len(convs))
		if summary.ConversationsWithDuration > 0 {
			avg := totalDuration / float64(summary.ConversationsWithDuration)
			summary.AvgDurationSeconds = &avg
		}
	}

	return summary, nil
}

// Timeseries computes the daily activity chart and the outcome and
// sentiment distributions over the last `days` days. Days with no
// activity appear as zero points, so charts have no gaps.
func (s *DashboardService) Timeseries(ctx context.Context, clientID string, days int) (*DashboardTimeseries, error) {
	days = clampDays(days)
	convs, leads, err := s.windowRows(ctx, clientID, days)
	if err != nil {
		return nil, err
	}

	convByDay := make(map[string]int)
	outcomes := make(map[string]int)
	sentiments := make(map[string]int)
	for _, c := range convs {
		convByDay[c.CreatedAt.UTC().Format("2006-01-02")]++
		if c.Outcome != nil {
			outcomes[string(*c.Outcome)]++
		}
		if c.Sentiment != nil && *c.Sentiment != "" {
			sentiments[*c.Sentiment]++
		}
	}
	leadByDay := make(map[string]int)
	for _, l := range leads {
		leadByDay[l.CreatedAt.UTC().Format("2006-01-02")]++
	}

	// Gap-fill: one point per day, oldest first.
	today := s.now().UTC()
	daily := make([]TimeseriesPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := today.AddDate(0, 0, -i).Format("2006-01-02")
		daily = append(daily, TimeseriesPoint{
			Date:          date,
			Conversations: convByDay[date],
			Leads:         leadByDay[date],
		})
	}

	ts := &DashboardTimeseries{Daily: daily}
	for _, label := range []string{"completed", "abandoned", "terminated", "lead_captured"} {
		if n := outcomes[label]; n > 0 {
			ts.Outcomes = append(ts.Outcomes, Bucket{Label: label, Count: n})
		}
	}
	for _, label := range []string{"positive", "neutral", "negative"} {
		if n := sentiments[label]; n > 0 {
			ts.Sentiments = append(ts.Sentiments, Bucket{Label: label, Count: n})
		}
	}
	return ts, nil
}
