package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/foodbridge-inc/foodbridge-api/schema"
)

var claimFixtureListingID = primitive.NewObjectID()
var claimFixtureOtherListingID = primitive.NewObjectID()

type ClaimTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewClaimTestSuite(connURI, dbName string) *ClaimTestSuite {
	return &ClaimTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *ClaimTestSuite) SetupSuite() {
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
	if err := s.LoadMongoDBFixtures(); err != nil {
		s.T().Fatal(err)
	}
}

// LoadMongoDBFixtures will preload fixtures into test mongodb
func (s *ClaimTestSuite) LoadMongoDBFixtures() error {
	ctx := context.Background()
	base := time.Now().UTC().Add(-time.Hour)

	fixtures := []interface{}{
		schema.Claim{
			ListingID:  claimFixtureListingID,
			ClaimantID: "claimant-a",
			Kind:       schema.ClaimKindReserved,
			Status:     schema.ClaimCancelled,
			CreatedAt:  base,
		},
		schema.Claim{
			ListingID:  claimFixtureListingID,
			ClaimantID: "claimant-a",
			Kind:       schema.ClaimKindReserved,
			Status:     schema.ClaimPending,
			CreatedAt:  base.Add(10 * time.Minute),
		},
		schema.Claim{
			ListingID:  claimFixtureOtherListingID,
			ClaimantID: "claimant-a",
			Kind:       schema.ClaimKindClaimed,
			Status:     schema.ClaimPickedUp,
			CreatedAt:  base.Add(20 * time.Minute),
		},
		schema.Claim{
			ListingID:  claimFixtureOtherListingID,
			ClaimantID: "claimant-b",
			Kind:       schema.ClaimKindReserved,
			Status:     schema.ClaimConfirmed,
			CreatedAt:  base.Add(30 * time.Minute),
		},
	}

	_, err := s.testDatabase.Collection(schema.ClaimCollection).InsertMany(ctx, fixtures)
	return err
}

// CleanMongoDB drop the whole test mongodb
func (s *ClaimTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

// TestGetLiveClaim tests that only pending/confirmed claims count as
// live; cancelled and picked up ones are history
func (s *ClaimTestSuite) TestGetLiveClaim() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	claim, err := store.GetLiveClaim(claimFixtureListingID, "claimant-a")
	s.NoError(err)
	s.Equal(schema.ClaimPending, claim.Status)

	_, err = store.GetLiveClaim(claimFixtureOtherListingID, "claimant-a")
	s.EqualError(err, ErrClaimNotFound.Error())

	_, err = store.GetLiveClaim(claimFixtureListingID, "claimant-nobody")
	s.EqualError(err, ErrClaimNotFound.Error())
}

// TestGetLiveClaimByListing tests resolving the current holder of a
// listing regardless of claimant
func (s *ClaimTestSuite) TestGetLiveClaimByListing() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	claim, err := store.GetLiveClaimByListing(claimFixtureOtherListingID)
	s.NoError(err)
	s.Equal("claimant-b", claim.ClaimantID)
	s.Equal(schema.ClaimConfirmed, claim.Status)
}

// TestListClaimsByClaimant tests the newest-first ordering and the
// status filter
func (s *ClaimTestSuite) TestListClaimsByClaimant() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	claims, total, err := store.ListClaimsByClaimant("claimant-a", "", 1, 20)
	s.NoError(err)
	s.Equal(int64(3), total)
	s.Require().Len(claims, 3)
	s.Equal(schema.ClaimPickedUp, claims[0].Status)

	claims, total, err = store.ListClaimsByClaimant("claimant-a", schema.ClaimPending, 1, 20)
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Require().Len(claims, 1)
	s.Equal(claimFixtureListingID, claims[0].ListingID)

	claims, total, err = store.ListClaimsByClaimant("claimant-a", "", 2, 2)
	s.NoError(err)
	s.Equal(int64(3), total)
	s.Len(claims, 1)
}

// TestListClaimsByListing tests the oldest-first full history of one
// listing
func (s *ClaimTestSuite) TestListClaimsByListing() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	claims, err := store.ListClaimsByListing(claimFixtureListingID)
	s.NoError(err)
	s.Require().Len(claims, 2)
	s.Equal(schema.ClaimCancelled, claims[0].Status)
	s.Equal(schema.ClaimPending, claims[1].Status)
}

// In order for 'go test' to run this suite, we need to create
// a normal test function and pass our suite to s.Run
func TestClaimTestSuite(t *testing.T) {
	suite.Run(t, NewClaimTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-db"))
}
