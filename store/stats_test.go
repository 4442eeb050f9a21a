package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/foodbridge-inc/foodbridge-api/schema"
)

type StatsTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewStatsTestSuite(connURI, dbName string) *StatsTestSuite {
	return &StatsTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *StatsTestSuite) SetupSuite() {
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
func (s *StatsTestSuite) LoadMongoDBFixtures() error {
	ctx := context.Background()
	now := time.Now().UTC()

	fixtures := []interface{}{
		// inside the window
		schema.Listing{
			Title: "stats fresh a", Category: schema.FoodFresh, Status: schema.ListingAvailable,
			DonorID: "stats-donor-1", DonorName: "Donor One", IsActive: true,
			CreatedAt: now.Add(-24 * time.Hour),
		},
		schema.Listing{
			Title: "stats fresh b", Category: schema.FoodFresh, Status: schema.ListingClaimed,
			DonorID: "stats-donor-1", DonorName: "Donor One", IsActive: true,
			CreatedAt: now.Add(-48 * time.Hour),
		},
		schema.Listing{
			Title: "stats cooked", Category: schema.FoodCooked, Status: schema.ListingReserved,
			DonorID: "stats-donor-2", DonorName: "Donor Two", IsActive: true,
			CreatedAt: now.Add(-24 * time.Hour),
		},
		// outside a 7 day window
		schema.Listing{
			Title: "stats ancient", Category: schema.FoodPackaged, Status: schema.ListingAvailable,
			DonorID: "stats-donor-2", DonorName: "Donor Two", IsActive: true,
			CreatedAt: now.Add(-30 * 24 * time.Hour),
		},
		// soft-deleted, never counted
		schema.Listing{
			Title: "stats deleted", Category: schema.FoodFresh, Status: schema.ListingAvailable,
			DonorID: "stats-donor-1", DonorName: "Donor One", IsActive: false,
			CreatedAt: now.Add(-24 * time.Hour),
		},
	}

	_, err := s.testDatabase.Collection(schema.ListingCollection).InsertMany(ctx, fixtures)
	return err
}

// CleanMongoDB drop the whole test mongodb
func (s *StatsTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

// TestListingStatsWindow tests that only active listings created inside
// the window are aggregated
func (s *StatsTestSuite) TestListingStatsWindow() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	stats, err := store.ListingStats(time.Now().UTC().AddDate(0, 0, -7), "")
	s.NoError(err)
	s.Equal(int64(3), stats.Total)
	s.Equal(int64(1), stats.Available)
	s.Equal(int64(1), stats.Reserved)
	s.Equal(int64(1), stats.Claimed)

	s.Require().NotEmpty(stats.ByCategory)
	s.Equal(schema.FoodFresh, stats.ByCategory[0].Category)
	s.Equal(int64(2), stats.ByCategory[0].Count)

	// two distinct creation days inside the window
	s.Len(stats.Daily, 2)

	s.Require().Len(stats.TopDonors, 2)
	s.Equal("stats-donor-1", stats.TopDonors[0].DonorID)
	s.Equal("Donor One", stats.TopDonors[0].DonorName)
	s.Equal(int64(2), stats.TopDonors[0].Count)
}

// TestListingStatsWiderWindow tests that widening the window picks up
// the older listing
func (s *StatsTestSuite) TestListingStatsWiderWindow() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	stats, err := store.ListingStats(time.Now().UTC().AddDate(0, 0, -90), "")
	s.NoError(err)
	s.Equal(int64(4), stats.Total)
	s.Equal(int64(2), stats.Available)
}

// TestListingStatsDonorFilter tests narrowing the aggregation to a
// single donor
func (s *StatsTestSuite) TestListingStatsDonorFilter() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	stats, err := store.ListingStats(time.Now().UTC().AddDate(0, 0, -7), "stats-donor-2")
	s.NoError(err)
	s.Equal(int64(1), stats.Total)
	s.Equal(int64(1), stats.Reserved)
	s.Require().Len(stats.TopDonors, 1)
	s.Equal("stats-donor-2", stats.TopDonors[0].DonorID)
}

// In order for 'go test' to run this suite, we need to create
// a normal test function and pass our suite to s.Run
func TestStatsTestSuite(t *testing.T) {
	suite.Run(t, NewStatsTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-db"))
}
