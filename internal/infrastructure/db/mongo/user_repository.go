package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/atypikhouse/atypikhouse-api/internal/core/domain"
	"github.com/atypikhouse/atypikhouse-api/internal/core/ports"
)

const usersCollection = "users"

// UserRepository persists directory entries in the users collection.
type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

type userDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password_hash,omitempty"`
	FirstName    string             `bson:"first_name"`
	LastName     string             `bson:"last_name"`
	Phone        string             `bson:"phone,omitempty"`
	Avatar       string             `bson:"avatar,omitempty"`
	Role         string             `bson:"role"`

	HostStatus          string   `bson:"host_status,omitempty"`
	CompanyName         string   `bson:"company_name,omitempty"`
	Siret               string   `bson:"siret,omitempty"`
	BusinessDescription string   `bson:"business_description,omitempty"`
	BusinessDocuments   []string `bson:"business_documents,omitempty"`

	IsActive   bool `bson:"is_active"`
	IsVerified bool `bson:"is_verified"`

	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// redactPassword excludes the hash from reads that never need it.
var redactPassword = bson.M{"password_hash": 0}

func (d *userDoc) toDomain() *domain.User {
	return &domain.User{
		ID:                  d.ID.Hex(),
		Email:               d.Email,
		PasswordHash:        d.PasswordHash,
		FirstName:           d.FirstName,
		LastName:            d.LastName,
		Phone:               d.Phone,
		Avatar:              d.Avatar,
		Role:                domain.Role(d.Role),
		HostStatus:          domain.HostStatus(d.HostStatus),
		CompanyName:         d.CompanyName,
		Siret:               d.Siret,
		BusinessDescription: d.BusinessDescription,
		BusinessDocuments:   d.BusinessDocuments,
		IsActive:            d.IsActive,
		IsVerified:          d.IsVerified,
		CreatedAt:           d.CreatedAt,
		UpdatedAt:           d.UpdatedAt,
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := userDoc{
		Email:               user.Email,
		PasswordHash:        user.PasswordHash,
		FirstName:           user.FirstName,
		LastName:            user.LastName,
		Phone:               user.Phone,
		Avatar:              user.Avatar,
		Role:                string(user.Role),
		HostStatus:          string(user.HostStatus),
		CompanyName:         user.CompanyName,
		Siret:               user.Siret,
		BusinessDescription: user.BusinessDescription,
		BusinessDocuments:   user.BusinessDocuments,
		IsActive:            user.IsActive,
		IsVerified:          user.IsVerified,
		CreatedAt:           user.CreatedAt,
		UpdatedAt:           user.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := *user
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

// FindByEmail includes the password hash; it backs credential checks only.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc userDoc
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	var doc userDoc
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}, options.FindOne().SetProjection(redactPassword)).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return doc.toDomain(), nil
}

// UpdateHostStatus sets hostStatus and isActive in one document-level atomic
// update and returns the post-image without the password hash.
func (r *UserRepository) UpdateHostStatus(ctx context.Context, id string, status domain.HostStatus, active bool) (*domain.User, error) {
	return r.findOneAndUpdate(ctx, id, bson.M{
		"host_status": string(status),
		"is_active":   active,
	})
}

// SetActive sets isActive only, leaving the approval decision untouched.
func (r *UserRepository) SetActive(ctx context.Context, id string, active bool) (*domain.User, error) {
	return r.findOneAndUpdate(ctx, id, bson.M{"is_active": active})
}

func (r *UserRepository) findOneAndUpdate(ctx context.Context, id string, set bson.M) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	set["updated_at"] = time.Now().UTC()
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(redactPassword)

	var doc userDoc
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return doc.toDomain(), nil
}

// searchFields are the directory free-text match targets.
var searchFields = []string{"first_name", "last_name", "email", "company_name"}

func userFilterQuery(f ports.UserFilter) bson.M {
	filter := bson.M{}
	if f.Role != "" {
		filter["role"] = string(f.Role)
	}
	if f.HostStatus != "" {
		filter["host_status"] = string(f.HostStatus)
	}
	if f.Active != nil {
		filter["is_active"] = *f.Active
	}
	if f.Search != "" {
		re := primitive.Regex{Pattern: regexEscape(f.Search), Options: "i"}
		or := make(bson.A, 0, len(searchFields))
		for _, field := range searchFields {
			or = append(or, bson.M{field: re})
		}
		filter["$or"] = or
	}
	return filter
}

func (r *UserRepository) List(ctx context.Context, f ports.UserFilter) ([]*domain.User, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := userFilterQuery(f)

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	opts := options.Find().
		SetProjection(redactPassword).
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((f.Page - 1) * f.Limit)).
		SetLimit(int64(f.Limit))

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	defer cur.Close(ctx)

	var users []*domain.User
	for cur.Next(ctx) {
		var doc userDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode user: %w", err)
		}
		users = append(users, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	return users, total, nil
}

func (r *UserRepository) Count(ctx context.Context, f ports.UserFilter) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, userFilterQuery(f))
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

// EnsureIndexes creates the unique email index.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "role", Value: 1}, {Key: "host_status", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
