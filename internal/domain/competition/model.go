package competition

// Competition is the tournament edition the fixtures belong to. CID is the provider id.
type Competition struct {
	ID           int64
	CID          int64
	Title        string
	Abbr         string
	Season       string
	TotalMatches int
	TotalTeams   int
}
