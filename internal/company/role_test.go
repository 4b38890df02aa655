package company

import "testing"

func TestInferRole(t *testing.T) {
	t.Parallel()

	tests := []struct {
		title string
		want  RoleCategory
	}{
		{"Chief Executive Officer", RoleLeadership},
		{"Co-Founder & CTO", RoleLeadership}, // leadership vocabulary tested first
		{"Senior Software Engineer", RoleEngineering},
		{"VP of Engineering", RoleEngineering},
		{"Head of Business Development", RoleSales},
		{"Chief Revenue Officer", RoleSales},
		{"Brand Manager", RoleMarketing},
		{"Public Relations Lead", RoleMarketing},
		{"Office Administrator", RoleOther},
		{"", RoleOther},
	}

	for _, tc := range tests {
		if got := InferRole(tc.title); got != tc.want {
			t.Fatalf("InferRole(%q) = %s, want %s", tc.title, got, tc.want)
		}
	}
}
