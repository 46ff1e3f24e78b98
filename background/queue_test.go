package background

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestReportSignature(t *testing.T) {
	id := primitive.NewObjectID()
	signature := reportSignature(id)

	assert.Equal(t, TaskGenerateReport, signature.Name)
	assert.Equal(t, 0, signature.RetryCount)
	if assert.Len(t, signature.Args, 1) {
		assert.Equal(t, id.Hex(), signature.Args[0].Value)
	}
}
