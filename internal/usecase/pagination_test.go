package usecase

import "testing"

func TestNewPageRequest(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{name: "defaults", page: 0, limit: 0, wantPage: 1, wantLimit: 10},
		{name: "negative page", page: -3, limit: 5, wantPage: 1, wantLimit: 5},
		{name: "capped limit", page: 2, limit: 500, wantPage: 2, wantLimit: 100},
	}
	for _, tc := range cases {
		got := NewPageRequest(tc.page, tc.limit, 10, 100)
		if got.Page != tc.wantPage || got.Limit != tc.wantLimit {
			t.Fatalf("%s: got page=%d limit=%d want page=%d limit=%d", tc.name, got.Page, got.Limit, tc.wantPage, tc.wantLimit)
		}
	}
}

func TestNewPagination_TotalPages(t *testing.T) {
	t.Parallel()

	req := NewPageRequest(2, 10, 10, 100)
	if req.Offset() != 10 {
		t.Fatalf("unexpected offset: %d", req.Offset())
	}

	got := newPagination(req, 25)
	if got.TotalPages != 3 {
		t.Fatalf("unexpected total pages: got=%d want=3", got.TotalPages)
	}
	if empty := newPagination(req, 0); empty.TotalPages != 0 {
		t.Fatalf("expected zero pages for empty result, got %d", empty.TotalPages)
	}
}
