package schema

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBIndexer struct {
	ctx      context.Context
	dbName   string
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDBIndexer(connectionString, dbName string) *MongoDBIndexer {
	ctx := context.Background()
	opts := options.Client().ApplyURI(connectionString)
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}

	return &MongoDBIndexer{
		ctx:      ctx,
		dbName:   dbName,
		Client:   client,
		Database: client.Database(dbName),
	}
}

func (m *MongoDBIndexer) createIndex(collection string, index mongo.IndexModel) error {
	c := m.Database.Collection(collection)
	_, err := c.Indexes().CreateOne(m.ctx, index)
	return err
}

func panicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

func (m *MongoDBIndexer) IndexAll() {
	panicIfError(m.IndexProfileCollections())
	panicIfError(m.IndexListingCollection())
	panicIfError(m.IndexClaimCollection())
	panicIfError(m.IndexNotificationCollection())
	panicIfError(m.IndexMessageCollection())
}

func (m *MongoDBIndexer) IndexProfileCollections() error {
	for _, collection := range []string{IndividualCollection, NGOCollection, SocialWorkerCollection} {
		if err := m.createIndex(collection, mongo.IndexModel{
			Keys: bson.M{
				"identity": 1,
			},
			Options: options.Index().SetUnique(true),
		}); err != nil {
			return err
		}
	}
	return nil
}

func (m *MongoDBIndexer) IndexListingCollection() error {
	if err := m.createIndex(ListingCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "is_active", Value: 1},
			{Key: "status", Value: 1},
		},
	}); err != nil {
		return err
	}

	if err := m.createIndex(ListingCollection, mongo.IndexModel{
		Keys: bson.M{
			"created_at": -1,
		},
	}); err != nil {
		return err
	}

	return m.createIndex(ListingCollection, mongo.IndexModel{
		Keys: bson.M{
			"geo": "2dsphere",
		},
	})
}

func (m *MongoDBIndexer) IndexClaimCollection() error {
	if err := m.createIndex(ClaimCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "listing_id", Value: 1},
			{Key: "claimant_id", Value: 1},
		},
	}); err != nil {
		return err
	}

	return m.createIndex(ClaimCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "claimant_id", Value: 1},
			{Key: "created_at", Value: -1},
		},
	})
}

func (m *MongoDBIndexer) IndexNotificationCollection() error {
	return m.createIndex(NotificationCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "user_id", Value: 1},
			{Key: "created_at", Value: -1},
		},
	})
}

func (m *MongoDBIndexer) IndexMessageCollection() error {
	return m.createIndex(MessageCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "listing_id", Value: 1},
			{Key: "created_at", Value: 1},
		},
	})
}
