// Package repository selects and opens the durable store behind the
// communication, prompt and chat repositories.
package repository

import (
	"context"
	"errors"

	"socialrobot-be/internal/config"
	"socialrobot-be/internal/repository/contract"
	"socialrobot-be/internal/repository/implementation"
	"socialrobot-be/internal/repository/memory"
	"socialrobot-be/internal/repository/mongodb"
	"socialrobot-be/pkg/database"

	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// Driver names the durable store backend.
type Driver string

const (
	DriverMongo    Driver = "mongo"
	DriverPostgres Driver = "postgres"
	DriverMemory   Driver = "memory"
)

var (
	ErrInvalidDriver = errors.New("invalid store driver")
	ErrInvalidConfig = errors.New("invalid store configuration")
)

type Store interface {
	Communications() contract.CommunicationRepository
	Prompts() contract.PromptRepository
	ChatMessages() contract.ChatMessageRepository
	Close(ctx context.Context) error
}

// NewStore opens the backend named by cfg.Driver.
func NewStore(ctx context.Context, cfg config.DatabaseConfig, debug bool) (Store, error) {
	switch Driver(cfg.Driver) {
	case DriverMongo:
		if cfg.MongoURL == "" || cfg.Name == "" {
			return nil, ErrInvalidConfig
		}
		client, err := database.NewMongoClient(ctx, cfg.MongoURL)
		if err != nil {
			return nil, err
		}
		return NewMongoStore(client, client.Database(cfg.Name)), nil

	case DriverPostgres:
		if cfg.Connection == "" {
			return nil, ErrInvalidConfig
		}
		db, err := database.NewGormDBFromDSN(cfg.Connection, debug)
		if err != nil {
			return nil, err
		}
		return NewGormStore(db), nil

	case DriverMemory:
		return NewMemoryStore(), nil

	default:
		return nil, ErrInvalidDriver
	}
}

type repositories struct {
	communications contract.CommunicationRepository
	prompts        contract.PromptRepository
	chatMessages   contract.ChatMessageRepository
}

func (r *repositories) Communications() contract.CommunicationRepository { return r.communications }
func (r *repositories) Prompts() contract.PromptRepository               { return r.prompts }
func (r *repositories) ChatMessages() contract.ChatMessageRepository     { return r.chatMessages }

type mongoStore struct {
	repositories
	client *mongo.Client
}

func NewMongoStore(client *mongo.Client, db *mongo.Database) Store {
	return &mongoStore{
		repositories: repositories{
			communications: mongodb.NewCommunicationRepository(db),
			prompts:        mongodb.NewPromptRepository(db),
			chatMessages:   mongodb.NewChatMessageRepository(db),
		},
		client: client,
	}
}

func (s *mongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

type gormStore struct {
	repositories
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) Store {
	return &gormStore{
		repositories: repositories{
			communications: implementation.NewCommunicationRepository(db),
			prompts:        implementation.NewPromptRepository(db),
			chatMessages:   implementation.NewChatMessageRepository(db),
		},
		db: db,
	}
}

func (s *gormStore) Close(ctx context.Context) error {
	return database.CloseGormDB(s.db)
}

type memoryStore struct {
	repositories
}

// NewMemoryStore keeps everything in process memory. Intended for local
// development and tests.
func NewMemoryStore() Store {
	return &memoryStore{
		repositories: repositories{
			communications: memory.NewCommunicationRepository(),
			prompts:        memory.NewPromptRepository(),
			chatMessages:   memory.NewChatMessageRepository(),
		},
	}
}

func (s *memoryStore) Close(ctx context.Context) error { return nil }
