package model

import "testing"

func TestStatusForGradeBordes(t *testing.T) {
	cases := []struct {
		grade float64
		want  FollowUpStatus
	}{
		{2.9, FollowUpRejected},
		{3.0, FollowUpApproved}, // el umbral aprueba
		{3.1, FollowUpApproved},
		{0.0, FollowUpRejected},
		{5.0, FollowUpApproved},
	}
	for _, tc := range cases {
		if got := StatusForGrade(tc.grade); got != tc.want {
			t.Fatalf("StatusForGrade(%.1f) = %q, quería %q", tc.grade, got, tc.want)
		}
	}
}
