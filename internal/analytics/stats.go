package analytics

import (
	"context"
	"fmt"
	"time"
)

// SubjectCount is a count of interactions with one tab or project.
type SubjectCount struct {
	Subject string `json:"subject"`
	Count   int64  `json:"count"`
}

// Stats summarizes recorded traffic.
type Stats struct {
	TotalViews     int64          `json:"total_views"`
	UniqueVisitors int64          `json:"unique_visitors"`
	ViewsToday     int64          `json:"views_today"`
	ViewsThisWeek  int64          `json:"views_this_week"`
	TabSelections  []SubjectCount `json:"tab_selections"`
	TopProjects    []SubjectCount `json:"top_projects"`
	GeneratedAt    time.Time      `json:"generated_at"`
}

// Stats computes the traffic summary. topN bounds the project list.
func (t *Tracker) Stats(ctx context.Context, topN int) (*Stats, error) {
	now := t.now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	stats := &Stats{GeneratedAt: now}

	counts := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{&stats.TotalViews, `SELECT COUNT(*) FROM events WHERE kind = 'view'`, nil},
		{&stats.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM events`, nil},
		{&stats.ViewsToday, `SELECT COUNT(*) FROM events WHERE kind = 'view' AND timestamp >= ?`, []any{dayStart}},
		{&stats.ViewsThisWeek, `SELECT COUNT(*) FROM events WHERE kind = 'view' AND timestamp >= ?`, []any{now.Add(-7 * 24 * time.Hour)}},
	}
	for _, c := range counts {
		if err := t.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("computing stats: %w", err)
		}
	}

	var err error
	stats.TabSelections, err = t.subjectCounts(ctx, KindTab, -1)
	if err != nil {
		return nil, err
	}
	stats.TopProjects, err = t.subjectCounts(ctx, KindProject, topN)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (t *Tracker) subjectCounts(ctx context.Context, kind Kind, limit int) ([]SubjectCount, error) {
	rows, err := t.db.QueryContext(ctx, `
		SELECT subject, COUNT(*) AS n
		FROM events
		WHERE kind = ?
		GROUP BY subject
		ORDER BY n DESC, subject ASC
		LIMIT ?
	`, string(kind), limit)
	if err != nil {
		return nil, fmt.Errorf("counting %s events: %w", kind, err)
	}
	defer rows.Close()

	out := []SubjectCount{}
	for rows.Next() {
		var sc SubjectCount
		if err := rows.Scan(&sc.Subject, &sc.Count); err != nil {
			return nil, fmt.Errorf("scanning %s count: %w", kind, err)
		}
		out = append(out, sc)
	}
	return out, rows.Err()
}
