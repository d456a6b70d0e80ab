package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tu-usuario/crm-ventas/internal/domain"
	"github.com/tu-usuario/crm-ventas/internal/domain/entity"
	"github.com/tu-usuario/crm-ventas/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación de UserRepository sobre MongoDB.
type UserRepo struct {
	coll *mongo.Collection
}

// NewUserRepository construye el adaptador.
func NewUserRepository(db *mongo.Database) *UserRepo {
	return &UserRepo{coll: db.Collection(collUsers)}
}

type userDoc struct {
	ID           string    `bson:"_id"`
	Name         string    `bson:"name"`
	LastName     string    `bson:"last_name"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password_hash"`
	CreatedAt    time.Time `bson:"created_at"`
}

func toUserDoc(u *entity.User) userDoc {
	return userDoc{
		ID:           u.ID,
		Name:         u.Name,
		LastName:     u.LastName,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
	}
}

func (d userDoc) toEntity() *entity.User {
	return &entity.User{
		ID:           d.ID,
		Name:         d.Name,
		LastName:     d.LastName,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		CreatedAt:    d.CreatedAt,
	}
}

// Create persiste un nuevo usuario. Email duplicado -> ErrEmailAlreadyExists.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	_, err := r.coll.InsertOne(ctx, toUserDoc(user))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID. Devuelve (nil, nil) si no existe.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var d userDoc
	err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return d.toEntity(), nil
}

// FindByEmail busca un usuario por email. Devuelve (nil, nil) si no existe.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var d userDoc
	err := r.coll.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return d.toEntity(), nil
}
