package utils

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Da Lat", "da-lat"},
		{"  Phu Quoc  ", "phu-quoc"},
		{"Hà Nội", "h-n-i"},
		{"Ho!!Chi@@Minh", "ho-chi-minh"},
		{"vung tau 2", "vung-tau-2"},
		{"---", ""},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.in), "input %q", tc.in)
	}
}

func TestBuildShareableIDFormat(t *testing.T) {
	id := BuildShareableID("Da Lat", 3)

	assert.True(t, strings.HasPrefix(id, "da-lat-3d-"), "got %s", id)
	assert.Regexp(t, regexp.MustCompile(`^da-lat-3d-\d+-[0-9a-f]{8}$`), id)
}

func TestBuildShareableIDUniqueWithinMillisecond(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := BuildShareableID("Hue", 2)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
