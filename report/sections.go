package report

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/bitmark-inc/cityworks-api/schema"
)

const worstIntersectionsLimit = 5

type sectionBuilder func(ctx context.Context, g *Generator, p schema.ReportParameters) ([]schema.ReportSection, error)

var builders = map[schema.ReportType]sectionBuilder{
	schema.ReportInfrastructure: infrastructureSections,
	schema.ReportTasks:          taskSections,
	schema.ReportTraffic:        trafficSections,
	schema.ReportProperty:       propertySections,
}

// Sections runs the aggregations of a report type one after another
func (g *Generator) Sections(ctx context.Context, t schema.ReportType, p schema.ReportParameters) ([]schema.ReportSection, error) {
	build, ok := builders[t]
	if !ok {
		return nil, ErrUnknownReportType
	}
	return build(ctx, g, p)
}

type countSection struct {
	name       string
	title      string
	collection string
	field      string
	timeField  string
}

func (g *Generator) countSections(ctx context.Context, p schema.ReportParameters, specs []countSection) ([]schema.ReportSection, error) {
	sections := make([]schema.ReportSection, 0, len(specs))
	for _, s := range specs {
		buckets, err := g.store.CountByField(ctx, s.collection, s.field, s.timeField, p.From, p.To)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.name, err)
		}
		sections = append(sections, schema.ReportSection{
			Name:    s.name,
			Title:   s.title,
			Metrics: bucketMetrics(buckets),
		})
	}
	return sections, nil
}

func infrastructureSections(ctx context.Context, g *Generator, p schema.ReportParameters) ([]schema.ReportSection, error) {
	sections, err := g.countSections(ctx, p, []countSection{
		{"issues_by_status", "Issues by status", schema.IssueCollection, "status", "created_at"},
		{"issues_by_type", "Issues by type", schema.IssueCollection, "type", "created_at"},
		{"issues_by_severity", "Issues by severity", schema.IssueCollection, "severity", "created_at"},
		{"roads_by_condition", "Roads by condition", schema.RoadCollection, "condition", ""},
	})
	if err != nil {
		return nil, err
	}

	average, err := g.store.AverageRoadCondition(ctx)
	if err != nil {
		return nil, fmt.Errorf("road_condition: %w", err)
	}

	return append(sections, schema.ReportSection{
		Name:  "road_condition",
		Title: "Road condition",
		Metrics: []schema.ReportMetric{
			{Key: "average_score", Label: "Average condition score", Value: round2(average)},
		},
	}), nil
}

func taskSections(ctx context.Context, g *Generator, p schema.ReportParameters) ([]schema.ReportSection, error) {
	sections, err := g.countSections(ctx, p, []countSection{
		{"tasks_by_status", "Tasks by status", schema.TaskCollection, "status", "created_at"},
		{"tasks_by_priority", "Tasks by priority", schema.TaskCollection, "priority", "created_at"},
	})
	if err != nil {
		return nil, err
	}

	perf, err := g.store.TaskPerformance(ctx, p.From, p.To, g.now())
	if err != nil {
		return nil, fmt.Errorf("task_performance: %w", err)
	}

	rate := 0.0
	if perf.Total > 0 {
		rate = float64(perf.Completed) / float64(perf.Total) * 100
	}

	return append(sections, schema.ReportSection{
		Name:  "task_performance",
		Title: "Task performance",
		Metrics: []schema.ReportMetric{
			{Key: "total", Label: "Total tasks", Value: float64(perf.Total)},
			{Key: "completed", Label: "Completed tasks", Value: float64(perf.Completed)},
			{Key: "completion_rate", Label: "Completion rate (%)", Value: round2(rate)},
			{Key: "average_completion_hours", Label: "Average completion time (hours)", Value: round2(perf.AverageCompletionHours)},
			{Key: "overdue", Label: "Overdue tasks", Value: float64(perf.Overdue)},
		},
	}), nil
}

func trafficSections(ctx context.Context, g *Generator, p schema.ReportParameters) ([]schema.ReportSection, error) {
	sections, err := g.countSections(ctx, p, []countSection{
		{"intersections_by_los", "Intersections by level of service", schema.IntersectionCollection, "latest_los", ""},
		{"analyses_by_congestion", "Analyses by congestion level", schema.IntersectionAnalysisCollection, "congestion_level", "created_at"},
		{"plans_by_status", "Decongestion plans by status", schema.DecongestionPlanCollection, "status", "created_at"},
	})
	if err != nil {
		return nil, err
	}

	ranks, err := g.store.WorstIntersections(ctx, worstIntersectionsLimit)
	if err != nil {
		return nil, fmt.Errorf("worst_intersections: %w", err)
	}

	metrics := make([]schema.ReportMetric, 0, len(ranks))
	for _, r := range ranks {
		metrics = append(metrics, schema.ReportMetric{
			Key:   r.IntersectionID.Hex(),
			Label: fmt.Sprintf("%s (LOS %s)", r.Name, r.LevelOfService),
			Value: r.CongestionIndex,
		})
	}

	return append(sections, schema.ReportSection{
		Name:    "worst_intersections",
		Title:   "Most congested intersections",
		Metrics: metrics,
	}), nil
}

func propertySections(ctx context.Context, g *Generator, p schema.ReportParameters) ([]schema.ReportSection, error) {
	sales, err := g.store.NeighborhoodSales(ctx, p.From, p.To, p.NeighborhoodID)
	if err != nil {
		return nil, fmt.Errorf("neighborhood_sales: %w", err)
	}

	count := schema.ReportSection{Name: "sales_count", Title: "Sales per neighborhood", Metrics: []schema.ReportMetric{}}
	price := schema.ReportSection{Name: "average_price", Title: "Average sale price", Metrics: []schema.ReportMetric{}}
	sqft := schema.ReportSection{Name: "average_price_per_sqft", Title: "Average price per square foot", Metrics: []schema.ReportMetric{}}

	for _, s := range sales {
		key := s.NeighborhoodID.Hex()
		count.Metrics = append(count.Metrics, schema.ReportMetric{Key: key, Label: s.Name, Value: float64(s.Count)})
		price.Metrics = append(price.Metrics, schema.ReportMetric{Key: key, Label: s.Name, Value: round2(s.AveragePrice)})
		sqft.Metrics = append(sqft.Metrics, schema.ReportMetric{Key: key, Label: s.Name, Value: round2(s.AveragePricePerSqft)})
	}

	return []schema.ReportSection{count, price, sqft}, nil
}

func bucketMetrics(buckets []schema.Bucket) []schema.ReportMetric {
	metrics := make([]schema.ReportMetric, 0, len(buckets))
	for _, b := range buckets {
		key := b.Key
		if key == "" {
			key = "unknown"
		}
		metrics = append(metrics, schema.ReportMetric{
			Key:   key,
			Label: bucketLabel(key),
			Value: float64(b.Count),
		})
	}
	return metrics
}

// bucketLabel turns a stored value such as "in_progress" into "In progress"
func bucketLabel(key string) string {
	label := strings.ReplaceAll(key, "_", " ")
	r, size := utf8.DecodeRuneInString(label)
	if r == utf8.RuneError {
		return label
	}
	return string(unicode.ToUpper(r)) + label[size:]
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// DefaultWindow is the reporting window used when none is given: the last 30 days
func DefaultWindow(now time.Time) (time.Time, time.Time) {
	return now.AddDate(0, 0, -30), now
}
