package venue

// Venue is a ground. VenueID is the provider id, kept as text because the feed mixes numbers and strings.
type Venue struct {
	ID       int64
	VenueID  string
	Name     string
	Location string
	Country  string
	Timezone string
}

// Usage pairs a venue with the number of imported matches played there.
type Usage struct {
	Venue      Venue
	MatchCount int64
}
