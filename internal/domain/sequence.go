package domain

import (
	"fmt"
	"regexp"
	"strconv"
)

const maxProblemCounter = 999

var problemIDPattern = regexp.MustCompile(`^([a-zA-Z0-9]+)_([0-9]+)_([0-9]{3})$`)

// ValidProblemID reports whether id has the <prefix>_<group>_<NNN> shape
func ValidProblemID(id string) bool {
	return problemIDPattern.MatchString(id)
}

// NextProblemID returns the id following id within its group.
// Malformed ids and a counter of 999 have no successor.
func NextProblemID(id string) (string, bool) {
	m := problemIDPattern.FindStringSubmatch(id)
	if m == nil {
		return "", false
	}
	count, err := strconv.Atoi(m[3])
	if err != nil || count >= maxProblemCounter {
		return "", false
	}
	return fmt.Sprintf("%s_%s_%03d", m[1], m[2], count+1), true
}
