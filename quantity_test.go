package staketax

import "testing"

func TestParseQuantity(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"1.5", "1.5"},
		{"2.25", "2.25"},
		{"0.01", "0.01"},
		// the source's precision is kept, no float drift
		{"0.000000000000001", "0.000000000000001"},
		{"12.745734900000001", "12.745734900000001"},
	}
	for _, tc := range testCases {
		q, err := ParseQuantity(tc.in)
		if err != nil {
			t.Fatalf("ParseQuantity(%q) returned error %v", tc.in, err)
		}
		if got := q.String(); got != tc.want {
			t.Errorf("ParseQuantity(%q).String() = %q, want %q", tc.in, got, tc.want)
		}
	}

	if _, err := ParseQuantity("not-a-number"); err == nil {
		t.Error("ParseQuantity(not-a-number) = nil error, want error")
	}
}

func TestQuantityAdd(t *testing.T) {
	a, _ := ParseQuantity("1.5")
	b, _ := ParseQuantity("2.25")
	if got := a.Add(b); !got.Equal(Q(3.75)) {
		t.Errorf("1.5 + 2.25 = %s, want 3.75", got)
	}
}
