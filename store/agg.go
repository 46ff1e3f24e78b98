package store

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/cityworks-api/schema"
)

type pager interface {
	Skip() int64
	Normalize() schema.Page
}

var sortNewest = bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}

// returnUpdated makes FindOneAndUpdate return the document after the update
func returnUpdated() *options.FindOneAndUpdateOptions {
	return options.FindOneAndUpdate().SetReturnDocument(options.After)
}

func matchWindow(field string, from, to time.Time) bson.M {
	window := bson.M{}
	if !from.IsZero() {
		window["$gte"] = from
	}
	if !to.IsZero() {
		window["$lt"] = to
	}
	if len(window) == 0 {
		return bson.M{}
	}
	return bson.M{field: window}
}

func aggStageMatch(query bson.M) bson.M {
	return bson.M{"$match": query}
}

func aggStageGroupCount(field string) bson.M {
	return bson.M{
		"$group": bson.M{
			"_id":   "$" + field,
			"count": bson.M{"$sum": 1},
		},
	}
}

func aggStageSortBy(field string, order int) bson.M {
	return bson.M{"$sort": bson.D{{Key: field, Value: order}}}
}

// nearSphere is a $nearSphere query against a 2dsphere indexed field
func nearSphere(loc schema.Location, meters int) bson.M {
	return bson.M{
		"$nearSphere": bson.M{
			"$geometry": bson.M{
				"type":        "Point",
				"coordinates": bson.A{loc.Longitude, loc.Latitude},
			},
			"$maxDistance": meters,
		},
	}
}

// geoWithinRadius is the count-friendly form of nearSphere. $nearSphere is
// not allowed in countDocuments, $centerSphere is.
func geoWithinRadius(loc schema.Location, meters int) bson.M {
	const earthRadiusMeters = 6378100.0
	return bson.M{
		"$geoWithin": bson.M{
			"$centerSphere": bson.A{
				bson.A{loc.Longitude, loc.Latitude},
				float64(meters) / earthRadiusMeters,
			},
		},
	}
}

func objectIDs(ids []primitive.ObjectID) bson.A {
	a := make(bson.A, 0, len(ids))
	for _, id := range ids {
		a = append(a, id)
	}
	return a
}
