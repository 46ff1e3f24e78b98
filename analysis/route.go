package analysis

import (
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bitmark-inc/cityworks-api/schema"
)

// TravelPaddingMinutes is the constant travel time added for every leg
const TravelPaddingMinutes = 15

// RouteStop is one visit of an optimized route
type RouteStop struct {
	Sequence          int                `json:"sequence"`
	TaskID            primitive.ObjectID `json:"task_id"`
	Title             string             `json:"title"`
	Priority          schema.Priority    `json:"priority"`
	Location          *schema.Location   `json:"location,omitempty"`
	LegDistanceKm     float64            `json:"leg_distance_km"`
	ArrivalMinutes    int                `json:"arrival_minutes"`
	CompletionMinutes int                `json:"completion_minutes"`
	ArriveAt          time.Time          `json:"arrive_at"`
	FinishAt          time.Time          `json:"finish_at"`
}

type Route struct {
	Start           schema.Location `json:"start"`
	StartAt         time.Time       `json:"start_at"`
	Stops           []RouteStop     `json:"stops"`
	TotalDistanceKm float64         `json:"total_distance_km"`
	TotalMinutes    int             `json:"total_minutes"`
}

// OptimizeRoute orders tasks by priority weight, highest first. Within a
// priority the next stop is the nearest one from the current position, and
// tasks without a location close their priority band.
func OptimizeRoute(start schema.Location, startAt time.Time, tasks []schema.Task) Route {
	bands := map[int][]schema.Task{}
	weights := make([]int, 0)
	for _, t := range tasks {
		w := t.Priority.Weight()
		if _, ok := bands[w]; !ok {
			weights = append(weights, w)
		}
		bands[w] = append(bands[w], t)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(weights)))

	route := Route{
		Start:   start,
		StartAt: startAt,
		Stops:   make([]RouteStop, 0, len(tasks)),
	}

	current := start
	elapsed := 0
	distance := 0.0

	visit := func(t schema.Task, loc *schema.Location) {
		leg := 0.0
		if loc != nil {
			leg = HaversineKm(current, *loc)
			current = *loc
		}

		minutes := t.EstimatedMinutes
		if minutes <= 0 {
			minutes = schema.DefaultTaskMinutes
		}

		arrival := elapsed + TravelPaddingMinutes
		elapsed = arrival + minutes
		distance += leg

		route.Stops = append(route.Stops, RouteStop{
			Sequence:          len(route.Stops) + 1,
			TaskID:            t.ID,
			Title:             t.Title,
			Priority:          t.Priority,
			Location:          loc,
			LegDistanceKm:     round(leg, 3),
			ArrivalMinutes:    arrival,
			CompletionMinutes: elapsed,
			ArriveAt:          startAt.Add(time.Duration(arrival) * time.Minute),
			FinishAt:          startAt.Add(time.Duration(elapsed) * time.Minute),
		})
	}

	for _, w := range weights {
		located := make([]schema.Task, 0)
		unlocated := make([]schema.Task, 0)
		for _, t := range bands[w] {
			if t.Location.Location() != nil {
				located = append(located, t)
			} else {
				unlocated = append(unlocated, t)
			}
		}

		for len(located) > 0 {
			nearest := 0
			best := HaversineKm(current, *located[0].Location.Location())
			for i := 1; i < len(located); i++ {
				if d := HaversineKm(current, *located[i].Location.Location()); d < best {
					nearest, best = i, d
				}
			}

			t := located[nearest]
			located = append(located[:nearest], located[nearest+1:]...)
			visit(t, t.Location.Location())
		}

		for _, t := range unlocated {
			visit(t, nil)
		}
	}

	route.TotalDistanceKm = round(distance, 3)
	route.TotalMinutes = elapsed

	return route
}
