package hist

import (
	"sort"
	"strconv"
	"strings"
)

// CycleSeparator splits a key into its canonical name and cycle number.
const CycleSeparator = ";"

// Key is a parsed hierarchy key of the form "name;cycle".
type Key struct {
	Name  string
	Cycle int
}

// ParseKey splits raw at the first separator. A missing or malformed cycle
// parses as zero.
func ParseKey(raw string) Key {
	name, cycle, found := strings.Cut(raw, CycleSeparator)
	if !found {
		return Key{Name: raw}
	}
	n, err := strconv.Atoi(cycle)
	if err != nil {
		n = 0
	}
	return Key{Name: name, Cycle: n}
}

func (k Key) String() string {
	return k.Name + CycleSeparator + strconv.Itoa(k.Cycle)
}

// CanonicalName strips the cycle suffix from raw.
func CanonicalName(raw string) string {
	return ParseKey(raw).Name
}

// CanonicalNames strips cycle suffixes, drops duplicates and sorts ascending.
// The result is never nil.
func CanonicalNames(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	names := make([]string, 0, len(raw))
	for _, r := range raw {
		name := CanonicalName(r)
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Latest returns the key with the highest cycle among those named name.
// Ties on the cycle number keep the first key seen.
func Latest(keys []Key, name string) (Key, bool) {
	var (
		best  Key
		found bool
	)
	for _, k := range keys {
		if k.Name != name {
			continue
		}
		if !found || k.Cycle > best.Cycle {
			best = k
			found = true
		}
	}
	return best, found
}
