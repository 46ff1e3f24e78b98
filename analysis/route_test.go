package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bitmark-inc/cityworks-api/schema"
)

func newRouteTask(title string, priority schema.Priority, loc *schema.Location) schema.Task {
	t := schema.Task{
		ID:       primitive.NewObjectID(),
		Title:    title,
		Priority: priority,
	}
	if loc != nil {
		t.Location = schema.NewPoint(*loc)
	}
	return t
}

func TestOptimizeRoute(t *testing.T) {
	startAt := time.Date(2022, 5, 1, 8, 0, 0, 0, time.UTC)
	tasks := []schema.Task{
		newRouteTask("A", schema.PriorityLow, &schema.Location{Longitude: 0.01}),
		newRouteTask("B", schema.PriorityCritical, &schema.Location{Longitude: 0.05}),
		newRouteTask("C", schema.PriorityCritical, &schema.Location{Longitude: 0.02}),
		newRouteTask("D", schema.PriorityHigh, nil),
		newRouteTask("E", schema.PriorityHigh, &schema.Location{Longitude: 0.03}),
	}

	route := OptimizeRoute(schema.Location{}, startAt, tasks)

	titles := make([]string, 0)
	for _, s := range route.Stops {
		titles = append(titles, s.Title)
	}
	assert.Equal(t, []string{"C", "B", "E", "D", "A"}, titles)

	assert.Equal(t, 1, route.Stops[0].Sequence)
	assert.Equal(t, 15, route.Stops[0].ArrivalMinutes)
	assert.Equal(t, 45, route.Stops[0].CompletionMinutes)
	assert.Equal(t, startAt.Add(15*time.Minute), route.Stops[0].ArriveAt)
	assert.Equal(t, 60, route.Stops[1].ArrivalMinutes)
	assert.Nil(t, route.Stops[3].Location)
	assert.Equal(t, float64(0), route.Stops[3].LegDistanceKm)

	assert.Equal(t, 225, route.TotalMinutes)
	assert.InDelta(t, 10.008, route.TotalDistanceKm, 0.01)
}

func TestOptimizeRouteEstimatedMinutes(t *testing.T) {
	task := newRouteTask("A", schema.PriorityMedium, &schema.Location{Latitude: 1, Longitude: 1})
	task.EstimatedMinutes = 90

	route := OptimizeRoute(schema.Location{Latitude: 1, Longitude: 1}, time.Time{}, []schema.Task{task})

	assert.Len(t, route.Stops, 1)
	assert.Equal(t, 15, route.Stops[0].ArrivalMinutes)
	assert.Equal(t, 105, route.TotalMinutes)
	assert.Equal(t, float64(0), route.TotalDistanceKm)
}

func TestOptimizeRouteEmpty(t *testing.T) {
	route := OptimizeRoute(schema.Location{}, time.Time{}, nil)

	assert.Empty(t, route.Stops)
	assert.Equal(t, 0, route.TotalMinutes)
}
