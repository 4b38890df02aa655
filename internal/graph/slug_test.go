package graph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct{ in, want string }{
		{"Acme, Inc.", "acme-inc"},
		{"acme inc", "acme-inc"},
		{"ACME  --  INC", "acme-inc"},
		{"https://acme.com", "https-acme-com"},
		{"Google Analytics", "google-analytics"},
		{"", ""},
		{"---", ""},
		{"café", "caf"},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, Slugify(tc.in), "Slugify(%q)", tc.in)
	}
}

func TestSlugifyCollidesOnPurpose(t *testing.T) {
	t.Parallel()

	require.Equal(t, Slugify("Acme, Inc."), Slugify("acme inc"))
}
