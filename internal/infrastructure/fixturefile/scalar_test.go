package fixturefile

import "testing"

func TestIntUnmarshal(t *testing.T) {
	t.Parallel()

	cases := map[string]int64{
		`12`:      12,
		`"12"`:    12,
		`"12abc"`: 12,
		`"-4"`:    -4,
		`12.9`:    12,
		`"abc"`:   0,
		`null`:    0,
		`""`:      0,
		`true`:    0,
	}
	for raw, want := range cases {
		var v Int
		if err := v.UnmarshalJSON([]byte(raw)); err != nil {
			t.Fatalf("unmarshal %s: %v", raw, err)
		}
		if v.Int64() != want {
			t.Fatalf("unmarshal %s: want %d got %d", raw, want, v.Int64())
		}
	}
}

func TestFloatUnmarshal(t *testing.T) {
	t.Parallel()

	cases := map[string]float64{
		`7.25`:      7.25,
		`"7.25"`:    7.25,
		`"19.4 ov"`: 19.4,
		`"-0.125"`:  -0.125,
		`"n/a"`:     0,
		`null`:      0,
	}
	for raw, want := range cases {
		var v Float
		if err := v.UnmarshalJSON([]byte(raw)); err != nil {
			t.Fatalf("unmarshal %s: %v", raw, err)
		}
		if v.Float64() != want {
			t.Fatalf("unmarshal %s: want %v got %v", raw, want, v.Float64())
		}
	}
}

func TestFlagUnmarshal(t *testing.T) {
	t.Parallel()

	truthy := []string{`true`, `"true"`, `1`, `"1"`, `"TRUE"`}
	for _, raw := range truthy {
		var v Flag
		_ = v.UnmarshalJSON([]byte(raw))
		if !v.Bool() {
			t.Fatalf("expected %s to be true", raw)
		}
	}
	falsy := []string{`false`, `"false"`, `0`, `null`, `"yes"`}
	for _, raw := range falsy {
		var v Flag
		_ = v.UnmarshalJSON([]byte(raw))
		if v.Bool() {
			t.Fatalf("expected %s to be false", raw)
		}
	}
}

func TestTextUnmarshal(t *testing.T) {
	t.Parallel()

	var v Text
	_ = v.UnmarshalJSON([]byte(`"  Wankhede "`))
	if v != "Wankhede" {
		t.Fatalf("unexpected text: %q", v)
	}
	_ = v.UnmarshalJSON([]byte(`42`))
	if v != "42" {
		t.Fatalf("unexpected numeric text: %q", v)
	}
	_ = v.UnmarshalJSON([]byte(`null`))
	if v != "" {
		t.Fatalf("unexpected null text: %q", v)
	}
}
