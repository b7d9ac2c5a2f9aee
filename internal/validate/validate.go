package validate

import (
	"regexp"
	"strconv"
	"strings"

	"toystore/internal/domain"
)

var (
	reID      = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	reLeadInt = regexp.MustCompile(`^[+-]?[0-9]+`)
)

// ID checks the shape of a path identifier. Whether it names a real
// record, or parses in the store's id format, is up to the store.
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Limit coerces a limit parameter from its leading integer, so "10abc"
// reads as 10 and "3.7" as 3. Absent, unparseable and negative values mean
// unbounded and come back as nil.
func Limit(s string) *int {
	n, err := strconv.Atoi(reLeadInt.FindString(strings.TrimSpace(s)))
	if err != nil || n < 0 {
		return nil
	}
	return &n
}

// Sort maps a direction token onto a price ordering. Unknown tokens leave
// the store's natural order in place.
func Sort(s string) domain.Direction {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc", "ascending", "1":
		return domain.DirAsc
	case "desc", "descending", "-1":
		return domain.DirDesc
	}
	return domain.DirNone
}

// Flag reports whether a query parameter was given a value. Any non-empty
// value, "false" included, turns it on.
func Flag(s string) bool {
	return s != ""
}
