package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/cityworks-api/schema"
)

func TestLoadBundledFixtures(t *testing.T) {
	f, err := loadFixtures("fixtures.yaml")
	assert.NoError(t, err)

	assert.Len(t, f.Users, 4)
	assert.Len(t, f.Roads, 3)
	assert.Len(t, f.Intersections, 2)
	assert.Len(t, f.Neighborhoods, 2)
	assert.Len(t, f.Properties, 4)
	assert.Len(t, f.Issues, 3)

	assert.Equal(t, schema.Location{Latitude: 27.7, Longitude: 85.3}, f.Roads[0].Points[0].location())
	assert.Len(t, f.Properties[0].Sales, 2)
}

func TestParseFixturesRejectsUnknownReferences(t *testing.T) {
	_, err := parseFixtures([]byte(`
roads:
  - name: A Road
    points: [[1, 1], [1, 2]]
intersections:
  - name: Lonely
    location: [1, 1]
    control_type: signal
    capacity: 100
    roads: [B Road]
`))
	assert.EqualError(t, err, `intersection "Lonely" refers to unknown road "B Road"`)

	_, err = parseFixtures([]byte(`
issues:
  - title: Nobody reported this
    type: pothole
    location: [1, 1]
    reporter: ghost@example.com
`))
	assert.EqualError(t, err, `issue "Nobody reported this" refers to unknown reporter "ghost@example.com"`)
}

func TestParseFixturesRejectsInvalidValues(t *testing.T) {
	_, err := parseFixtures([]byte(`
users:
  - email: someone@example.com
    password: secret
    role: mayor
`))
	assert.EqualError(t, err, `invalid user "someone@example.com"`)

	_, err = parseFixtures([]byte(`
neighborhoods:
  - name: Somewhere
properties:
  - address: 1 Some Street
    neighborhood: Somewhere
    type: residential
    sales:
      - {price: 1000, date: "yesterday"}
`))
	assert.EqualError(t, err, `invalid sale of property "1 Some Street"`)

	_, err = parseFixtures([]byte(`unknown_section: []`))
	assert.Error(t, err)
}
