package lending

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{name: "iso date", input: "2025-03-14", want: NewDate(2025, time.March, 14)},
		{name: "single digit month and day", input: "2025-7-1", want: NewDate(2025, time.July, 1)},
		{name: "surrounding spaces", input: " 2025-03-14 ", want: NewDate(2025, time.March, 14)},
		{name: "not a date", input: "yesterday", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDate(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseDate(%q) should fail", tc.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) failed: %v", tc.input, err)
			}
			if got != tc.want {
				t.Errorf("ParseDate(%q) = %s, want %s", tc.input, got, tc.want)
			}
		})
	}
}

func TestDate_String(t *testing.T) {
	if got := NewDate(2025, time.July, 1).String(); got != "2025-07-01" {
		t.Errorf("String() = %q, want 2025-07-01", got)
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d := NewDate(2025, time.March, 14)
	data, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() failed: %v", err)
	}
	if string(data) != `"2025-03-14"` {
		t.Errorf("MarshalJSON() = %s, want \"2025-03-14\"", data)
	}

	var back Date
	if err := back.UnmarshalJSON(data); err != nil {
		t.Fatalf("UnmarshalJSON() failed: %v", err)
	}
	if back != d {
		t.Errorf("round trip = %s, want %s", back, d)
	}
}

func TestAmount_Display(t *testing.T) {
	testCases := []struct {
		name     string
		amount   Amount
		currency string
		want     string
	}{
		{name: "usd with cents", amount: A(1234.5), currency: "USD", want: "$1,234.50"},
		{name: "usd rounds to fraction", amount: A(0.005), currency: "USD", want: "$0.01"},
		{name: "yen has no fraction", amount: A(1234), currency: "JPY", want: "¥1,234"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.amount.Display(tc.currency); got != tc.want {
				t.Errorf("Display(%s) = %q, want %q", tc.currency, got, tc.want)
			}
		})
	}
}
