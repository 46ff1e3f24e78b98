package main

import (
	"context"
	"flag"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/cityworks-api/schema"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("cityworks")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

// importBoundaries sets the boundary of every named neighborhood, creating
// the neighborhoods which do not exist yet
func importBoundaries(ctx context.Context, c *mongo.Collection, boundaries []boundary) (int64, int64, error) {
	var created, updated int64
	for _, b := range boundaries {
		now := time.Now().UTC()
		result, err := c.UpdateOne(ctx,
			bson.M{"name": b.Name},
			bson.M{
				"$set": bson.M{
					"boundary":   b.Polygon,
					"updated_at": now,
				},
				"$setOnInsert": bson.M{
					"_id":         primitive.NewObjectID(),
					"description": "",
					"created_at":  now,
				},
			},
			options.Update().SetUpsert(true))
		if err != nil {
			return created, updated, err
		}

		if result.UpsertedCount > 0 {
			created++
		} else {
			updated++
		}
	}
	return created, updated, nil
}

func main() {
	var file, nameField string
	flag.StringVar(&file, "f", "boundary.geojson", "geojson feature collection of neighborhoods")
	flag.StringVar(&nameField, "name-field", "name", "feature property holding the neighborhood name")
	flag.Parse()

	f, err := os.Open(file)
	if err != nil {
		log.WithError(err).Fatal("cannot open the boundary file")
	}
	defer f.Close()

	boundaries, skipped, err := parseBoundaries(f, nameField)
	if err != nil {
		log.WithError(err).Fatal("cannot parse the boundary file")
	}
	for _, s := range skipped {
		log.WithField("prefix", "import").Warnf("skip %s", s)
	}

	ctx := context.Background()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(viper.GetString("mongo.conn")))
	if err != nil {
		log.WithError(err).Fatal("cannot connect to mongo")
	}
	defer client.Disconnect(ctx)

	c := client.Database(viper.GetString("mongo.database")).Collection(schema.NeighborhoodCollection)
	created, updated, err := importBoundaries(ctx, c, boundaries)
	if err != nil {
		log.WithError(err).Fatal("import stopped")
	}

	log.WithField("prefix", "import").
		WithField("created", created).
		WithField("updated", updated).
		WithField("skipped", len(skipped)).
		Info("neighborhood boundaries imported")
}
