package wagonwheel

// ZoneNames indexes fielding zones by the provider's zone id.
var ZoneNames = []string{"Fine Leg", "Square Leg", "Mid Wicket", "Long on", "Long of", "Cover", "Point", "3rd man"}

// UnknownZone labels a zone id outside ZoneNames on the read side.
const UnknownZone = "Unknown"

// Shot is one scoring stroke plotted on a wagon wheel. BatsmanID and BowlerID are provider pids.
type Shot struct {
	ID         int64
	MatchID    int64
	InningsID  int64
	Sequence   int
	BatsmanID  int64
	BowlerID   int64
	Over       float64
	BatRun     int
	TeamRun    int
	X          float64
	Y          float64
	ZoneID     int
	ZoneName   *string
	EventName  string
	UniqueOver float64
}

// ZoneName resolves a zone id for storage. Out-of-range ids have no name.
func ZoneName(zoneID int) *string {
	if zoneID < 0 || zoneID >= len(ZoneNames) {
		return nil
	}
	name := ZoneNames[zoneID]
	return &name
}

// ZoneLabel resolves a zone id for display.
func ZoneLabel(zoneID int) string {
	if name := ZoneName(zoneID); name != nil {
		return *name
	}
	return UnknownZone
}

// Filter narrows a match's shots. Zero InningsID or BatsmanID means no filter.
type Filter struct {
	MatchID   int64
	InningsID int64
	BatsmanID int64
}
