package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	NeighborhoodCollection        = "neighborhoods"
	PropertyCollection            = "properties"
	PropertyTransactionCollection = "property_transactions"
)

type PropertyType string

const (
	PropertyResidential PropertyType = "residential"
	PropertyCommercial  PropertyType = "commercial"
	PropertyIndustrial  PropertyType = "industrial"
	PropertyMixedUse    PropertyType = "mixed_use"
)

func (t PropertyType) Valid() bool {
	switch t {
	case PropertyResidential, PropertyCommercial, PropertyIndustrial, PropertyMixedUse:
		return true
	}
	return false
}

// Neighborhood - a named area properties belong to
type Neighborhood struct {
	ID          primitive.ObjectID `json:"id" bson:"_id"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description" bson:"description"`
	Boundary    *Polygon           `json:"boundary,omitempty" bson:"boundary,omitempty"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

// Property - a parcel with its building characteristics
type Property struct {
	ID             primitive.ObjectID `json:"id" bson:"_id"`
	Address        string             `json:"address" bson:"address"`
	NeighborhoodID primitive.ObjectID `json:"neighborhood_id" bson:"neighborhood_id"`
	Location       *GeoJSON           `json:"location,omitempty" bson:"location,omitempty"`
	Type           PropertyType       `json:"type" bson:"type"`
	SquareFeet     float64            `json:"square_feet" bson:"square_feet"`
	LotSize        float64            `json:"lot_size" bson:"lot_size"`
	Bedrooms       int                `json:"bedrooms" bson:"bedrooms"`
	Bathrooms      float64            `json:"bathrooms" bson:"bathrooms"`
	YearBuilt      int                `json:"year_built" bson:"year_built"`
	AssessedValue  float64            `json:"assessed_value" bson:"assessed_value"`
	CreatedAt      time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at" bson:"updated_at"`
}

type PropertyFilter struct {
	NeighborhoodID *primitive.ObjectID
	Type           PropertyType
	Page
}

type PropertyUpdate struct {
	Address       *string
	Location      *Location
	Type          *PropertyType
	SquareFeet    *float64
	LotSize       *float64
	Bedrooms      *int
	Bathrooms     *float64
	YearBuilt     *int
	AssessedValue *float64
}

// PropertyTransaction - a recorded sale of a property
type PropertyTransaction struct {
	ID             primitive.ObjectID `json:"id" bson:"_id"`
	PropertyID     primitive.ObjectID `json:"property_id" bson:"property_id"`
	NeighborhoodID primitive.ObjectID `json:"neighborhood_id" bson:"neighborhood_id"`
	PropertyType   PropertyType       `json:"property_type" bson:"property_type"`
	SquareFeet     float64            `json:"square_feet" bson:"square_feet"`
	SalePrice      float64            `json:"sale_price" bson:"sale_price"`
	SaleDate       time.Time          `json:"sale_date" bson:"sale_date"`
	CreatedAt      time.Time          `json:"created_at" bson:"created_at"`
}

// ComparableQuery selects sales comparable to a subject property
type ComparableQuery struct {
	NeighborhoodID    primitive.ObjectID
	PropertyType      PropertyType
	ExcludePropertyID primitive.ObjectID
	Since             time.Time
	Limit             int64
}

// ComparableSale is a transaction joined with the sold property's characteristics
type ComparableSale struct {
	TransactionID primitive.ObjectID `json:"transaction_id" bson:"_id"`
	PropertyID    primitive.ObjectID `json:"property_id" bson:"property_id"`
	SalePrice     float64            `json:"sale_price" bson:"sale_price"`
	SaleDate      time.Time          `json:"sale_date" bson:"sale_date"`
	SquareFeet    float64            `json:"square_feet" bson:"square_feet"`
	Bedrooms      int                `json:"bedrooms" bson:"bedrooms"`
	Bathrooms     float64            `json:"bathrooms" bson:"bathrooms"`
	YearBuilt     int                `json:"year_built" bson:"year_built"`
}

type YearlyPrice struct {
	Year         int     `json:"year" bson:"_id"`
	Count        int64   `json:"count" bson:"count"`
	AveragePrice float64 `json:"average_price" bson:"average_price"`
	ChangeRate   float64 `json:"change_rate" bson:"-"`
}

// NeighborhoodStats summarizes sales in a neighborhood
type NeighborhoodStats struct {
	NeighborhoodID      primitive.ObjectID `json:"neighborhood_id" bson:"-"`
	Count               int64              `json:"count" bson:"count"`
	AveragePrice        float64            `json:"average_price" bson:"average_price"`
	MinPrice            float64            `json:"min_price" bson:"min_price"`
	MaxPrice            float64            `json:"max_price" bson:"max_price"`
	AveragePricePerSqft float64            `json:"average_price_per_sqft" bson:"average_price_per_sqft"`
	Trend               []YearlyPrice      `json:"trend" bson:"-"`
}
