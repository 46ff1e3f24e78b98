package main

import (
	"context"
	"errors"
	"flag"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"github.com/bitmark-inc/cityworks-api/analysis"
	"github.com/bitmark-inc/cityworks-api/schema"
	"github.com/bitmark-inc/cityworks-api/store"
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

// seeder inserts fixtures and remembers the ids of what it inserted or found
type seeder struct {
	db    *mongo.Database
	store store.MongoStore

	users         map[string]primitive.ObjectID
	roads         map[string]primitive.ObjectID
	neighborhoods map[string]primitive.ObjectID
}

func newSeeder(db *mongo.Database, s store.MongoStore) *seeder {
	return &seeder{
		db:            db,
		store:         s,
		users:         map[string]primitive.ObjectID{},
		roads:         map[string]primitive.ObjectID{},
		neighborhoods: map[string]primitive.ObjectID{},
	}
}

// existing returns the id of a document matching the query
func (s *seeder) existing(ctx context.Context, collection string, query bson.M) (primitive.ObjectID, bool, error) {
	var doc struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	err := s.db.Collection(collection).FindOne(ctx, query).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return primitive.NilObjectID, false, nil
	}
	if err != nil {
		return primitive.NilObjectID, false, err
	}
	return doc.ID, true, nil
}

func (s *seeder) seedUsers(ctx context.Context, users []userFixture) error {
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		user := &schema.User{
			Name:         u.Name,
			Email:        u.Email,
			PasswordHash: string(hash),
			Role:         u.Role,
			Department:   u.Department,
			Active:       true,
		}
		err = s.store.CreateUser(ctx, user)
		switch {
		case err == nil:
			log.WithField("email", user.Email).Info("user created")
		case errors.Is(err, store.ErrEmailTaken):
			existing, err := s.store.GetUserByEmail(ctx, u.Email)
			if err != nil {
				return err
			}
			user = existing
			log.WithField("email", user.Email).Info("user exists, skipped")
		default:
			return err
		}
		s.users[u.Email] = user.ID
	}
	return nil
}

func (s *seeder) seedRoads(ctx context.Context, roads []roadFixture) error {
	for _, r := range roads {
		id, found, err := s.existing(ctx, schema.RoadCollection, bson.M{"name": r.Name})
		if err != nil {
			return err
		}
		if found {
			s.roads[r.Name] = id
			log.WithField("road", r.Name).Info("road exists, skipped")
			continue
		}

		points := locations(r.Points)
		road := &schema.Road{
			Name:           r.Name,
			Code:           r.Code,
			Geometry:       schema.NewLineString(points),
			LengthKm:       analysis.PathLengthKm(points),
			Lanes:          r.Lanes,
			Surface:        r.Surface,
			ConditionScore: r.ConditionScore,
			Condition:      analysis.RoadCondition(r.ConditionScore),
			DailyTraffic:   r.DailyTraffic,
			SpeedLimit:     r.SpeedLimit,
		}
		if road.Surface == "" {
			road.Surface = schema.SurfaceAsphalt
		}
		if err := s.store.CreateRoad(ctx, road); err != nil {
			return err
		}
		s.roads[r.Name] = road.ID
		log.WithField("road", r.Name).Info("road created")
	}
	return nil
}

func (s *seeder) seedIntersections(ctx context.Context, intersections []intersectionFixture) error {
	for _, i := range intersections {
		_, found, err := s.existing(ctx, schema.IntersectionCollection, bson.M{"name": i.Name})
		if err != nil {
			return err
		}
		if found {
			log.WithField("intersection", i.Name).Info("intersection exists, skipped")
			continue
		}

		roads := make([]primitive.ObjectID, 0, len(i.Roads))
		for _, name := range i.Roads {
			roads = append(roads, s.roads[name])
		}

		if err := s.store.CreateIntersection(ctx, &schema.Intersection{
			Name:        i.Name,
			Location:    schema.NewPoint(i.Location.location()),
			Roads:       roads,
			ControlType: i.ControlType,
			Capacity:    i.Capacity,
		}); err != nil {
			return err
		}
		log.WithField("intersection", i.Name).Info("intersection created")
	}
	return nil
}

func (s *seeder) seedNeighborhoods(ctx context.Context, neighborhoods []neighborhoodFixture) error {
	for _, n := range neighborhoods {
		neighborhood := &schema.Neighborhood{
			Name:        n.Name,
			Description: n.Description,
		}
		if len(n.Boundary) > 0 {
			neighborhood.Boundary = schema.NewPolygon(locations(n.Boundary))
		}

		err := s.store.CreateNeighborhood(ctx, neighborhood)
		switch {
		case err == nil:
			s.neighborhoods[n.Name] = neighborhood.ID
			log.WithField("neighborhood", n.Name).Info("neighborhood created")
		case errors.Is(err, store.ErrNeighborhoodExists):
			id, _, err := s.existing(ctx, schema.NeighborhoodCollection, bson.M{"name": n.Name})
			if err != nil {
				return err
			}
			s.neighborhoods[n.Name] = id
			log.WithField("neighborhood", n.Name).Info("neighborhood exists, skipped")
		default:
			return err
		}
	}
	return nil
}

// seedProperties inserts properties with their sales history. Sales of an
// existing property are not inserted again.
func (s *seeder) seedProperties(ctx context.Context, properties []propertyFixture) error {
	for _, p := range properties {
		_, found, err := s.existing(ctx, schema.PropertyCollection, bson.M{"address": p.Address})
		if err != nil {
			return err
		}
		if found {
			log.WithField("address", p.Address).Info("property exists, skipped")
			continue
		}

		property := &schema.Property{
			Address:        p.Address,
			NeighborhoodID: s.neighborhoods[p.Neighborhood],
			Type:           p.Type,
			SquareFeet:     p.SquareFeet,
			LotSize:        p.LotSize,
			Bedrooms:       p.Bedrooms,
			Bathrooms:      p.Bathrooms,
			YearBuilt:      p.YearBuilt,
			AssessedValue:  p.AssessedValue,
		}
		if p.Location != nil {
			property.Location = schema.NewPoint(p.Location.location())
		}
		if err := s.store.CreateProperty(ctx, property); err != nil {
			return err
		}

		for _, sale := range p.Sales {
			date, _ := sale.date()
			if err := s.store.CreatePropertyTransaction(ctx, &schema.PropertyTransaction{
				PropertyID:     property.ID,
				NeighborhoodID: property.NeighborhoodID,
				PropertyType:   property.Type,
				SquareFeet:     property.SquareFeet,
				SalePrice:      sale.Price,
				SaleDate:       date,
			}); err != nil {
				return err
			}
		}
		log.WithField("address", p.Address).WithField("sales", len(p.Sales)).Info("property created")
	}
	return nil
}

func (s *seeder) seedIssues(ctx context.Context, issues []issueFixture) error {
	for _, i := range issues {
		_, found, err := s.existing(ctx, schema.IssueCollection, bson.M{"title": i.Title})
		if err != nil {
			return err
		}
		if found {
			log.WithField("issue", i.Title).Info("issue exists, skipped")
			continue
		}

		issue := &schema.Issue{
			Type:        i.Type,
			Title:       i.Title,
			Description: i.Description,
			Location:    schema.NewPoint(i.Location.location()),
			Address:     i.Address,
			Severity:    i.Severity,
			ReportedBy:  s.users[i.Reporter],
		}
		if issue.Severity == "" {
			issue.Severity = schema.SeverityMedium
		}
		if i.Road != "" {
			roadID := s.roads[i.Road]
			issue.RoadID = &roadID
		}
		if err := s.store.CreateIssue(ctx, issue); err != nil {
			return err
		}
		log.WithField("issue", i.Title).Info("issue created")
	}
	return nil
}

func (s *seeder) seed(ctx context.Context, f *Fixtures) error {
	steps := []struct {
		name string
		run  func() error
	}{
		{"users", func() error { return s.seedUsers(ctx, f.Users) }},
		{"roads", func() error { return s.seedRoads(ctx, f.Roads) }},
		{"intersections", func() error { return s.seedIntersections(ctx, f.Intersections) }},
		{"neighborhoods", func() error { return s.seedNeighborhoods(ctx, f.Neighborhoods) }},
		{"properties", func() error { return s.seedProperties(ctx, f.Properties) }},
		{"issues", func() error { return s.seedIssues(ctx, f.Issues) }},
	}

	for _, step := range steps {
		if err := step.run(); err != nil {
			log.WithError(err).Errorf("fail to seed %s", step.name)
			return err
		}
	}
	return nil
}

func main() {
	var fixtureFile string
	flag.StringVar(&fixtureFile, "f", "./schema/command/seed/fixtures.yaml", "path of the fixture file")
	flag.Parse()

	fixtures, err := loadFixtures(fixtureFile)
	if err != nil {
		log.Panicf("load fixtures with error: %s", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(1)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		log.Panicf("connect mongo database with error: %s", err)
	}
	defer client.Disconnect(context.Background())

	database := viper.GetString("mongo.database")
	s := newSeeder(client.Database(database), store.NewMongoStore(client, database))
	if err := s.seed(ctx, fixtures); err != nil {
		log.Panic(err)
	}

	log.Info("seeding finished")
}
