package model

import "testing"

func TestIsTerminal(t *testing.T) {
	cases := []struct {
		status ApplicationStatus
		want   bool
	}{
		{ApplicationSubmitted, false},
		{ApplicationSelected, false},
		{ApplicationRejected, true},
		{ApplicationLinked, true},
	}
	for _, tc := range cases {
		a := ApplicationModel{ApplicationStatus: tc.status}
		if got := a.IsTerminal(); got != tc.want {
			t.Fatalf("IsTerminal(%q) = %v, quería %v", tc.status, got, tc.want)
		}
	}
}
