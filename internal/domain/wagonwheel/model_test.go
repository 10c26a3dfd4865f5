package wagonwheel

import "testing"

func TestZoneName(t *testing.T) {
	t.Parallel()

	if name := ZoneName(0); name == nil || *name != "Fine Leg" {
		t.Fatalf("unexpected zone 0: %v", name)
	}
	if name := ZoneName(7); name == nil || *name != "3rd man" {
		t.Fatalf("unexpected zone 7: %v", name)
	}
	if name := ZoneName(8); name != nil {
		t.Fatalf("expected nil for out of range zone, got %q", *name)
	}
	if label := ZoneLabel(-1); label != UnknownZone {
		t.Fatalf("unexpected label: %s", label)
	}
}
