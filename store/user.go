package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bitmark-inc/cityworks-api/schema"
)

var (
	ErrUserNotFound = fmt.Errorf("user not found")
	ErrEmailTaken   = fmt.Errorf("email has been registered")
)

type UserStore interface {
	CreateUser(ctx context.Context, user *schema.User) error
	GetUser(ctx context.Context, id primitive.ObjectID) (*schema.User, error)
	GetUserByEmail(ctx context.Context, email string) (*schema.User, error)
	ListUsers(ctx context.Context, filter schema.UserFilter) ([]schema.User, int64, error)
	UpdateUser(ctx context.Context, id primitive.ObjectID, update schema.UserUpdate) (*schema.User, error)
	TouchUserLogin(ctx context.Context, id primitive.ObjectID) error
}

// NormalizeEmail lowercases and trims an email address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateUser inserts a new user. The email must be unique.
func (m *mongoDB) CreateUser(ctx context.Context, user *schema.User) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	user.ID = primitive.NewObjectID()
	user.Email = NormalizeEmail(user.Email)
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := m.collection(schema.UserCollection).InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrEmailTaken
		}
		return err
	}

	return nil
}

func (m *mongoDB) GetUser(ctx context.Context, id primitive.ObjectID) (*schema.User, error) {
	return m.findUser(ctx, bson.M{"_id": id})
}

func (m *mongoDB) GetUserByEmail(ctx context.Context, email string) (*schema.User, error) {
	return m.findUser(ctx, bson.M{"email": NormalizeEmail(email)})
}

func (m *mongoDB) findUser(ctx context.Context, query bson.M) (*schema.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var user schema.User
	if err := m.collection(schema.UserCollection).FindOne(ctx, query).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

func (m *mongoDB) ListUsers(ctx context.Context, filter schema.UserFilter) ([]schema.User, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Role != "" {
		query["role"] = filter.Role
	}
	if filter.Active != nil {
		query["active"] = *filter.Active
	}

	users := make([]schema.User, 0)
	total, err := findPage(ctx, m.collection(schema.UserCollection), query, filter.Page,
		bson.D{{Key: "name", Value: 1}}, &users)
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

func (m *mongoDB) UpdateUser(ctx context.Context, id primitive.ObjectID, update schema.UserUpdate) (*schema.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updated_at": time.Now().UTC()}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Department != nil {
		set["department"] = *update.Department
	}
	if update.Role != nil {
		set["role"] = *update.Role
	}
	if update.Active != nil {
		set["active"] = *update.Active
	}
	if update.PasswordHash != nil {
		set["password_hash"] = *update.PasswordHash
	}

	var user schema.User
	if err := m.collection(schema.UserCollection).
		FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, returnUpdated()).
		Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// TouchUserLogin records the time of a successful login
func (m *mongoDB) TouchUserLogin(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := m.collection(schema.UserCollection).UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"last_login_at": time.Now().UTC()}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrUserNotFound
	}

	return nil
}
