package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsGreater(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		// numeric, not lexicographic
		{"2.12", "2.9", true},
		{"2.9", "2.12", false},

		// the longer string wins once the shorter runs out
		{"1.47.1", "1.47", true},
		{"1.47", "1.47.1", false},
		{"1.47.0", "1.47", true},
		{"1.47.123.el6", "1.47.el6", true},
		{"1.47.el6", "1.47.123.el6", false},

		// reaching the distribution tag first is lower
		{"1.el6", "1.2", false},
		{"1.2", "1.el6", true},

		// both tagged: plain string comparison
		{"1.el7", "1.el6", true},
		{"1.el6", "1.el7", false},
		{"16.el6_5.7", "16.el6_5.4", true},

		// substring match, not anchored
		{"1.shell", "1.2", false},

		// lexicographic fallback
		{"1.0.1e", "1.0.1d", true},
		{"1.0.1d", "1.0.1e", false},
		{"1.a", "1.10", true},

		// leading zeros and very long components
		{"1.010", "1.9", true},
		{"1.00009", "1.9", false},
		{"99999999999999999999999", "99999999999999999999998", true},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, IsGreater(c.a, c.b), "IsGreater(%q, %q)", c.a, c.b)
	}
}

func TestIsGreaterTies(t *testing.T) {
	for _, v := range []string{"", "2.12", "1.47.el6", "0.9.8e", "1.00009"} {
		assert.False(t, IsGreater(v, v), "IsGreater(%q, %q)", v, v)
	}

	// numerically equal components are a tie both ways
	assert.False(t, IsGreater("1.09", "1.9"))
	assert.False(t, IsGreater("1.9", "1.09"))
}

func TestLongerWinsRegardlessOfContent(t *testing.T) {
	prefixes := []string{"1", "2.12", "1.47.el6"}
	extras := []string{"0", "999", "el7", "zzz"}

	for _, p := range prefixes {
		for _, e := range extras {
			longer := p + "." + e
			assert.True(t, IsGreater(longer, p), "IsGreater(%q, %q)", longer, p)
			assert.False(t, IsGreater(p, longer), "IsGreater(%q, %q)", p, longer)
		}
	}
}

func TestCompare(t *testing.T) {
	assert.Equal(t, 1, Compare("2.12", "2.9"))
	assert.Equal(t, -1, Compare("2.9", "2.12"))
	assert.Equal(t, 0, Compare("1.47.el6", "1.47.el6"))
}
