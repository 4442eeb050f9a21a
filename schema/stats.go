package schema

// CategoryCount - number of listings of one food category
type CategoryCount struct {
	Category string `bson:"_id" json:"category"`
	Count    int64  `bson:"count" json:"count"`
}

// DailyCount - number of listings created on one day
type DailyCount struct {
	Date  string `bson:"_id" json:"date"`
	Count int64  `bson:"count" json:"count"`
}

// DonorCount - listing count of one donor, used for the leaderboard
type DonorCount struct {
	DonorID   string `bson:"_id" json:"donor_id"`
	DonorName string `bson:"donor_name" json:"donor_name"`
	Count     int64  `bson:"count" json:"count"`
}

// ListingStats - aggregate statistics of listings created within a window
type ListingStats struct {
	Total      int64           `json:"total"`
	Available  int64           `json:"available"`
	Reserved   int64           `json:"reserved"`
	Claimed    int64           `json:"claimed"`
	ByCategory []CategoryCount `json:"by_category"`
	Daily      []DailyCount    `json:"daily"`
	TopDonors  []DonorCount    `json:"top_donors"`
}
