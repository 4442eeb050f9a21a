package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/foodbridge-inc/foodbridge-api/schema"
)

type NotificationTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewNotificationTestSuite(connURI, dbName string) *NotificationTestSuite {
	return &NotificationTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *NotificationTestSuite) SetupSuite() {
	if s.connURI == "" || s.testDBName == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	if err = mongoClient.Connect(context.Background()); nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)

	// make sure the test suite is run with a clean environment
	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}
	schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll()
}

// CleanMongoDB drop the whole test mongodb
func (s *NotificationTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *NotificationTestSuite) insert(userID string, read bool) *schema.Notification {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	n, err := store.InsertNotification(&schema.Notification{
		UserID:   userID,
		Title:    "test notice",
		Body:     "something happened",
		Type:     schema.NotificationSystem,
		Read:     read,
		Priority: schema.PriorityMedium,
	})
	s.Require().NoError(err)
	return n
}

// TestListNotifications tests the total and unread counters
func (s *NotificationTestSuite) TestListNotifications() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	s.insert("user-list-test", false)
	s.insert("user-list-test", false)
	s.insert("user-list-test", true)
	s.insert("user-other", false)

	notifications, total, unread, err := store.ListNotifications("user-list-test", 1, 20)
	s.NoError(err)
	s.Equal(int64(3), total)
	s.Equal(int64(2), unread)
	s.Len(notifications, 3)
}

// TestMarkNotificationRead tests the per-user ownership filter on
// acknowledgment
func (s *NotificationTestSuite) TestMarkNotificationRead() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	n := s.insert("user-ack-test", false)

	err := store.MarkNotificationRead(n.ID, "user-somebody-else")
	s.EqualError(err, ErrNotificationNotFound.Error())

	s.NoError(store.MarkNotificationRead(n.ID, "user-ack-test"))

	_, _, unread, err := store.ListNotifications("user-ack-test", 1, 20)
	s.NoError(err)
	s.Equal(int64(0), unread)

	err = store.MarkNotificationRead(primitive.NewObjectID(), "user-ack-test")
	s.EqualError(err, ErrNotificationNotFound.Error())
}

// TestMarkAllNotificationsRead tests the bulk acknowledgment and its
// idempotency
func (s *NotificationTestSuite) TestMarkAllNotificationsRead() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	s.insert("user-bulk-test", false)
	s.insert("user-bulk-test", false)
	s.insert("user-bulk-test", true)

	updated, err := store.MarkAllNotificationsRead("user-bulk-test")
	s.NoError(err)
	s.Equal(int64(2), updated)

	updated, err = store.MarkAllNotificationsRead("user-bulk-test")
	s.NoError(err)
	s.Equal(int64(0), updated)
}

// In order for 'go test' to run this suite, we need to create
// a normal test function and pass our suite to s.Run
func TestNotificationTestSuite(t *testing.T) {
	suite.Run(t, NewNotificationTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-db"))
}
