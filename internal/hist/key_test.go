package hist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseKey(t *testing.T) {
	cases := []struct {
		raw  string
		want Key
	}{
		{"Run1", Key{Name: "Run1"}},
		{"Run1;2", Key{Name: "Run1", Cycle: 2}},
		{"Run1;x", Key{Name: "Run1"}},
		{"a;1;2", Key{Name: "a"}},
		{"", Key{}},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ParseKey(c.raw), c.raw)
	}
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "h1;3", Key{Name: "h1", Cycle: 3}.String())
}

func TestCanonicalNamesDeduplicatesAndSorts(t *testing.T) {
	got := CanonicalNames([]string{"Run1;1", "Run1;2", "Run2;1"})
	assert.Equal(t, []string{"Run1", "Run2"}, got)

	got = CanonicalNames([]string{"zeta;1", "alpha;4", "zeta;7", "Mid", "alpha;2"})
	assert.Equal(t, []string{"Mid", "alpha", "zeta"}, got)
}

func TestCanonicalNamesEmpty(t *testing.T) {
	got := CanonicalNames(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestLatestPicksHighestCycle(t *testing.T) {
	keys := []Key{{"h", 1}, {"g", 9}, {"h", 3}, {"h", 2}}

	k, ok := Latest(keys, "h")
	assert.True(t, ok)
	assert.Equal(t, Key{"h", 3}, k)

	_, ok = Latest(keys, "missing")
	assert.False(t, ok)
}
