package main

import (
	"fmt"
	"io/ioutil"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/bitmark-inc/cityworks-api/schema"
)

// point is written as [latitude, longitude] in fixture files
type point [2]float64

func (p point) location() schema.Location {
	return schema.Location{Latitude: p[0], Longitude: p[1]}
}

type userFixture struct {
	Name       string      `yaml:"name"`
	Email      string      `yaml:"email"`
	Password   string      `yaml:"password"`
	Role       schema.Role `yaml:"role"`
	Department string      `yaml:"department"`
}

type roadFixture struct {
	Name           string         `yaml:"name"`
	Code           string         `yaml:"code"`
	Lanes          int            `yaml:"lanes"`
	Surface        schema.Surface `yaml:"surface"`
	ConditionScore float64        `yaml:"condition_score"`
	DailyTraffic   int            `yaml:"daily_traffic"`
	SpeedLimit     int            `yaml:"speed_limit"`
	Points         []point        `yaml:"points"`
}

type intersectionFixture struct {
	Name        string             `yaml:"name"`
	Location    point              `yaml:"location"`
	ControlType schema.ControlType `yaml:"control_type"`
	Capacity    int                `yaml:"capacity"`
	Roads       []string           `yaml:"roads"`
}

type issueFixture struct {
	Title       string           `yaml:"title"`
	Description string           `yaml:"description"`
	Type        schema.IssueType `yaml:"type"`
	Severity    schema.Severity  `yaml:"severity"`
	Location    point            `yaml:"location"`
	Address     string           `yaml:"address"`
	Road        string           `yaml:"road"`
	Reporter    string           `yaml:"reporter"`
}

type neighborhoodFixture struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Boundary    []point `yaml:"boundary"`
}

type saleFixture struct {
	Price float64 `yaml:"price"`
	Date  string  `yaml:"date"`
}

type propertyFixture struct {
	Address       string              `yaml:"address"`
	Neighborhood  string              `yaml:"neighborhood"`
	Type          schema.PropertyType `yaml:"type"`
	Location      *point              `yaml:"location"`
	SquareFeet    float64             `yaml:"square_feet"`
	LotSize       float64             `yaml:"lot_size"`
	Bedrooms      int                 `yaml:"bedrooms"`
	Bathrooms     float64             `yaml:"bathrooms"`
	YearBuilt     int                 `yaml:"year_built"`
	AssessedValue float64             `yaml:"assessed_value"`
	Sales         []saleFixture       `yaml:"sales"`
}

// Fixtures is the content of a seed file
type Fixtures struct {
	Users         []userFixture         `yaml:"users"`
	Roads         []roadFixture         `yaml:"roads"`
	Intersections []intersectionFixture `yaml:"intersections"`
	Neighborhoods []neighborhoodFixture `yaml:"neighborhoods"`
	Properties    []propertyFixture     `yaml:"properties"`
	Issues        []issueFixture        `yaml:"issues"`
}

func loadFixtures(file string) (*Fixtures, error) {
	data, err := ioutil.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return parseFixtures(data)
}

func parseFixtures(data []byte) (*Fixtures, error) {
	var f Fixtures
	if err := yaml.UnmarshalStrict(data, &f); err != nil {
		return nil, err
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// validate checks the enums and the references between fixtures
func (f *Fixtures) validate() error {
	users := map[string]bool{}
	for _, u := range f.Users {
		if u.Email == "" || u.Password == "" || !u.Role.Valid() {
			return fmt.Errorf("invalid user %q", u.Email)
		}
		users[u.Email] = true
	}

	roads := map[string]bool{}
	for _, r := range f.Roads {
		if r.Name == "" || len(r.Points) < 2 || (r.Surface != "" && !r.Surface.Valid()) {
			return fmt.Errorf("invalid road %q", r.Name)
		}
		roads[r.Name] = true
	}

	for _, i := range f.Intersections {
		if i.Name == "" || !i.ControlType.Valid() || i.Capacity <= 0 {
			return fmt.Errorf("invalid intersection %q", i.Name)
		}
		for _, r := range i.Roads {
			if !roads[r] {
				return fmt.Errorf("intersection %q refers to unknown road %q", i.Name, r)
			}
		}
	}

	neighborhoods := map[string]bool{}
	for _, n := range f.Neighborhoods {
		if n.Name == "" {
			return fmt.Errorf("neighborhood without name")
		}
		neighborhoods[n.Name] = true
	}

	for _, p := range f.Properties {
		if p.Address == "" || !p.Type.Valid() {
			return fmt.Errorf("invalid property %q", p.Address)
		}
		if !neighborhoods[p.Neighborhood] {
			return fmt.Errorf("property %q refers to unknown neighborhood %q", p.Address, p.Neighborhood)
		}
		for _, s := range p.Sales {
			if _, err := s.date(); err != nil || s.Price <= 0 {
				return fmt.Errorf("invalid sale of property %q", p.Address)
			}
		}
	}

	for _, i := range f.Issues {
		if i.Title == "" || !i.Type.Valid() || (i.Severity != "" && !i.Severity.Valid()) {
			return fmt.Errorf("invalid issue %q", i.Title)
		}
		if i.Road != "" && !roads[i.Road] {
			return fmt.Errorf("issue %q refers to unknown road %q", i.Title, i.Road)
		}
		if !users[i.Reporter] {
			return fmt.Errorf("issue %q refers to unknown reporter %q", i.Title, i.Reporter)
		}
	}

	return nil
}

func (s saleFixture) date() (time.Time, error) {
	return time.Parse("2006-01-02", s.Date)
}

func locations(points []point) []schema.Location {
	l := make([]schema.Location, 0, len(points))
	for _, p := range points {
		l = append(l, p.location())
	}
	return l
}
