package store

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	mongoLogPrefix = "mongo"
	defaultTimeout = 5 * time.Second

	// DuplicateKeyCode is the mongodb server error code of a unique
	// index violation
	DuplicateKeyCode = 11000
)

// earthRadiusKM is the mean radius of Earth, used to convert a radius in
// kilometers into radians for $centerSphere queries.
const earthRadiusKM = 6371.0

// MongoStore - interface for mongodb operations
type MongoStore interface {
	Identity
	ListingStore
	ClaimLedger
	NotificationStore
	ChatStore
	Statistics
	ExpiryOperator
	Closer
	Pinger
}

// Closer - close db connection
type Closer interface {
	Close()
}

// Pinger - ping database
type Pinger interface {
	Ping() error
}

type mongoDB struct {
	client   *mongo.Client
	database string
}

// Ping - ping mongo db
func (m *mongoDB) Ping() error {
	return m.client.Ping(context.Background(), nil)
}

// Close - close mongo db connections
func (m *mongoDB) Close() {
	log.WithField("prefix", mongoLogPrefix).Info("closing mongo db connections")
	_ = m.client.Disconnect(context.Background())
}

// NewMongoStore - return mongo db operations
func NewMongoStore(client *mongo.Client, database string) MongoStore {
	return &mongoDB{
		client:   client,
		database: database,
	}
}
