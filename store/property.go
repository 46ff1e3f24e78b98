package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/cityworks-api/schema"
)

var (
	ErrNeighborhoodNotFound = fmt.Errorf("neighborhood not found")
	ErrNeighborhoodExists   = fmt.Errorf("neighborhood name has been taken")
	ErrPropertyNotFound     = fmt.Errorf("property not found")
)

type PropertyStore interface {
	CreateNeighborhood(ctx context.Context, neighborhood *schema.Neighborhood) error
	GetNeighborhood(ctx context.Context, id primitive.ObjectID) (*schema.Neighborhood, error)
	ListNeighborhoods(ctx context.Context) ([]schema.Neighborhood, error)
	NeighborhoodStats(ctx context.Context, id primitive.ObjectID, since time.Time) (*schema.NeighborhoodStats, error)

	CreateProperty(ctx context.Context, property *schema.Property) error
	GetProperty(ctx context.Context, id primitive.ObjectID) (*schema.Property, error)
	ListProperties(ctx context.Context, filter schema.PropertyFilter) ([]schema.Property, int64, error)
	UpdateProperty(ctx context.Context, id primitive.ObjectID, update schema.PropertyUpdate) (*schema.Property, error)
	DeleteProperty(ctx context.Context, id primitive.ObjectID) error

	CreatePropertyTransaction(ctx context.Context, transaction *schema.PropertyTransaction) error
	ListPropertyTransactions(ctx context.Context, propertyID primitive.ObjectID) ([]schema.PropertyTransaction, error)
	ComparableSales(ctx context.Context, query schema.ComparableQuery) ([]schema.ComparableSale, error)
}

func (m *mongoDB) CreateNeighborhood(ctx context.Context, neighborhood *schema.Neighborhood) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	neighborhood.ID = primitive.NewObjectID()
	neighborhood.CreatedAt = now
	neighborhood.UpdatedAt = now

	if _, err := m.collection(schema.NeighborhoodCollection).InsertOne(ctx, neighborhood); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrNeighborhoodExists
		}
		return err
	}

	return nil
}

func (m *mongoDB) GetNeighborhood(ctx context.Context, id primitive.ObjectID) (*schema.Neighborhood, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var neighborhood schema.Neighborhood
	if err := m.collection(schema.NeighborhoodCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&neighborhood); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNeighborhoodNotFound
		}
		return nil, err
	}

	return &neighborhood, nil
}

func (m *mongoDB) ListNeighborhoods(ctx context.Context) ([]schema.Neighborhood, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := m.collection(schema.NeighborhoodCollection).Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}

	neighborhoods := make([]schema.Neighborhood, 0)
	if err := cursor.All(ctx, &neighborhoods); err != nil {
		return nil, err
	}

	return neighborhoods, nil
}

// NeighborhoodStats summarizes the sales of a neighborhood since a given time.
// The yearly trend is returned in ascending year order without change rates.
func (m *mongoDB) NeighborhoodStats(ctx context.Context, id primitive.ObjectID, since time.Time) (*schema.NeighborhoodStats, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.collection(schema.PropertyTransactionCollection)
	match := matchWindow("sale_date", since, time.Time{})
	match["neighborhood_id"] = id

	cursor, err := c.Aggregate(ctx, []bson.M{
		aggStageMatch(match),
		{"$group": bson.M{
			"_id":           nil,
			"count":         bson.M{"$sum": 1},
			"average_price": bson.M{"$avg": "$sale_price"},
			"min_price":     bson.M{"$min": "$sale_price"},
			"max_price":     bson.M{"$max": "$sale_price"},
			"average_price_per_sqft": bson.M{"$avg": bson.M{
				"$cond": bson.A{
					bson.M{"$gt": bson.A{"$square_feet", 0}},
					bson.M{"$divide": bson.A{"$sale_price", "$square_feet"}},
					nil,
				},
			}},
		}},
	})
	if err != nil {
		return nil, err
	}

	var summaries []schema.NeighborhoodStats
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, err
	}

	stats := schema.NeighborhoodStats{}
	if len(summaries) > 0 {
		stats = summaries[0]
	}
	stats.NeighborhoodID = id

	cursor, err = c.Aggregate(ctx, []bson.M{
		aggStageMatch(match),
		{"$group": bson.M{
			"_id":           bson.M{"$year": "$sale_date"},
			"count":         bson.M{"$sum": 1},
			"average_price": bson.M{"$avg": "$sale_price"},
		}},
		aggStageSortBy("_id", 1),
	})
	if err != nil {
		return nil, err
	}

	stats.Trend = make([]schema.YearlyPrice, 0)
	if err := cursor.All(ctx, &stats.Trend); err != nil {
		return nil, err
	}

	return &stats, nil
}

func (m *mongoDB) CreateProperty(ctx context.Context, property *schema.Property) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	property.ID = primitive.NewObjectID()
	property.CreatedAt = now
	property.UpdatedAt = now

	_, err := m.collection(schema.PropertyCollection).InsertOne(ctx, property)
	return err
}

func (m *mongoDB) GetProperty(ctx context.Context, id primitive.ObjectID) (*schema.Property, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var property schema.Property
	if err := m.collection(schema.PropertyCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&property); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}

	return &property, nil
}

func (m *mongoDB) ListProperties(ctx context.Context, filter schema.PropertyFilter) ([]schema.Property, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.NeighborhoodID != nil {
		query["neighborhood_id"] = *filter.NeighborhoodID
	}
	if filter.Type != "" {
		query["type"] = filter.Type
	}

	properties := make([]schema.Property, 0)
	total, err := findPage(ctx, m.collection(schema.PropertyCollection), query, filter.Page,
		bson.D{{Key: "address", Value: 1}}, &properties)
	if err != nil {
		return nil, 0, err
	}

	return properties, total, nil
}

func (m *mongoDB) UpdateProperty(ctx context.Context, id primitive.ObjectID, update schema.PropertyUpdate) (*schema.Property, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updated_at": time.Now().UTC()}
	if update.Address != nil {
		set["address"] = *update.Address
	}
	if update.Location != nil {
		set["location"] = schema.NewPoint(*update.Location)
	}
	if update.Type != nil {
		set["type"] = *update.Type
	}
	if update.SquareFeet != nil {
		set["square_feet"] = *update.SquareFeet
	}
	if update.LotSize != nil {
		set["lot_size"] = *update.LotSize
	}
	if update.Bedrooms != nil {
		set["bedrooms"] = *update.Bedrooms
	}
	if update.Bathrooms != nil {
		set["bathrooms"] = *update.Bathrooms
	}
	if update.YearBuilt != nil {
		set["year_built"] = *update.YearBuilt
	}
	if update.AssessedValue != nil {
		set["assessed_value"] = *update.AssessedValue
	}

	var property schema.Property
	if err := m.collection(schema.PropertyCollection).
		FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, returnUpdated()).
		Decode(&property); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}

	return &property, nil
}

// DeleteProperty removes a property and its sale history
func (m *mongoDB) DeleteProperty(ctx context.Context, id primitive.ObjectID) error {
	if err := deleteByID(ctx, m.collection(schema.PropertyCollection), id, ErrPropertyNotFound); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := m.collection(schema.PropertyTransactionCollection).DeleteMany(ctx, bson.M{"property_id": id})
	return err
}

func (m *mongoDB) CreatePropertyTransaction(ctx context.Context, transaction *schema.PropertyTransaction) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	transaction.ID = primitive.NewObjectID()
	transaction.CreatedAt = time.Now().UTC()

	_, err := m.collection(schema.PropertyTransactionCollection).InsertOne(ctx, transaction)
	return err
}

func (m *mongoDB) ListPropertyTransactions(ctx context.Context, propertyID primitive.ObjectID) ([]schema.PropertyTransaction, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := m.collection(schema.PropertyTransactionCollection).Find(ctx,
		bson.M{"property_id": propertyID},
		options.Find().SetSort(bson.D{{Key: "sale_date", Value: -1}}))
	if err != nil {
		return nil, err
	}

	transactions := make([]schema.PropertyTransaction, 0)
	if err := cursor.All(ctx, &transactions); err != nil {
		return nil, err
	}

	return transactions, nil
}

// ComparableSales finds the most recent sales of similar properties in the
// same neighborhood, joined with the characteristics of the sold property.
func (m *mongoDB) ComparableSales(ctx context.Context, query schema.ComparableQuery) ([]schema.ComparableSale, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	match := matchWindow("sale_date", query.Since, time.Time{})
	match["neighborhood_id"] = query.NeighborhoodID
	match["property_type"] = query.PropertyType
	if !query.ExcludePropertyID.IsZero() {
		match["property_id"] = bson.M{"$ne": query.ExcludePropertyID}
	}

	pipeline := []bson.M{
		aggStageMatch(match),
		aggStageSortBy("sale_date", -1),
	}
	if query.Limit > 0 {
		pipeline = append(pipeline, bson.M{"$limit": query.Limit})
	}
	pipeline = append(pipeline,
		bson.M{"$lookup": bson.M{
			"from":         schema.PropertyCollection,
			"localField":   "property_id",
			"foreignField": "_id",
			"as":           "property",
		}},
		bson.M{"$unwind": "$property"},
		bson.M{"$project": bson.M{
			"property_id": 1,
			"sale_price":  1,
			"sale_date":   1,
			"square_feet": bson.M{"$cond": bson.A{
				bson.M{"$gt": bson.A{"$square_feet", 0}},
				"$square_feet",
				"$property.square_feet",
			}},
			"bedrooms":   "$property.bedrooms",
			"bathrooms":  "$property.bathrooms",
			"year_built": "$property.year_built",
		}},
	)

	cursor, err := m.collection(schema.PropertyTransactionCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	sales := make([]schema.ComparableSale, 0)
	if err := cursor.All(ctx, &sales); err != nil {
		return nil, err
	}

	return sales, nil
}
