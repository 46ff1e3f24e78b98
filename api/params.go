package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bitmark-inc/cityworks-api/schema"
)

type pageQuery struct {
	Page  int64 `form:"page" binding:"omitempty,min=1"`
	Limit int64 `form:"limit" binding:"omitempty,min=1,max=100"`
}

func (q pageQuery) toPage() schema.Page {
	return schema.Page{Page: q.Page, Limit: q.Limit}.Normalize()
}

type locationRequest struct {
	Latitude  *float64 `json:"latitude" form:"lat" binding:"required,min=-90,max=90"`
	Longitude *float64 `json:"longitude" form:"lng" binding:"required,min=-180,max=180"`
}

func (l *locationRequest) toLocation() *schema.Location {
	if l == nil {
		return nil
	}
	return &schema.Location{
		Latitude:  *l.Latitude,
		Longitude: *l.Longitude,
	}
}

// currentUser returns the user attached by recognizeUserMiddleware
func currentUser(c *gin.Context) *schema.User {
	if u, ok := c.Get("user"); ok {
		if user, ok := u.(*schema.User); ok {
			return user
		}
	}
	return &schema.User{}
}

// paramObjectID reads an object id from the path. It aborts the request and
// returns false when the id is malformed.
func paramObjectID(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return primitive.NilObjectID, false
	}
	return id, true
}

// optionalObjectID parses an optional hex id from a query or body field
func optionalObjectID(c *gin.Context, hex string) (*primitive.ObjectID, bool) {
	if hex == "" {
		return nil, true
	}
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return nil, false
	}
	return &id, true
}

func objectIDs(c *gin.Context, hexes []string) ([]primitive.ObjectID, bool) {
	ids := make([]primitive.ObjectID, 0, len(hexes))
	for _, h := range hexes {
		id, err := primitive.ObjectIDFromHex(h)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
			return nil, false
		}
		ids = append(ids, id)
	}
	return ids, true
}
