package standing

import "testing"

func TestWinPercentage(t *testing.T) {
	t.Parallel()

	cases := []struct {
		played int
		win    int
		want   float64
	}{
		{played: 14, win: 10, want: 71.4},
		{played: 3, win: 2, want: 66.7},
		{played: 0, win: 0, want: 0},
		{played: 14, win: 14, want: 100},
	}
	for _, tc := range cases {
		got := Standing{Played: tc.played, Win: tc.win}.WinPercentage()
		if got != tc.want {
			t.Fatalf("WinPercentage(%d/%d)=%v want %v", tc.win, tc.played, got, tc.want)
		}
	}
}
