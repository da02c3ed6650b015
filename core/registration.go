package core

import (
	"errors"
	"fmt"
	"regexp"
	"sync"
)

var ErrRegistrationFormatInvalid = errors.New("invalid registration format")

var (
	patternLock sync.RWMutex
	patterns    = make(map[string]*regexp.Regexp)
)

// registrationPattern returns the anchored pattern <ID>-DD-DDDD/DDDD for a course id.
func registrationPattern(courseID string) *regexp.Regexp {
	patternLock.RLock()
	re, ok := patterns[courseID]
	patternLock.RUnlock()
	if ok {
		return re
	}

	re = regexp.MustCompile(`^` + regexp.QuoteMeta(courseID) + `-[0-9]{2}-[0-9]{4}/[0-9]{4}$`)

	patternLock.Lock()
	patterns[courseID] = re
	patternLock.Unlock()

	return re
}

// ValidateRegistration reports whether candidate is a registration number for course.
// Digit groups are only checked for length, so "BSE-99-0000/0000" is accepted.
func ValidateRegistration(candidate string, course *Course) bool {
	if !inCatalog(course) {
		return false
	}
	return registrationPattern(course.id).MatchString(candidate)
}

// CheckRegistration is ValidateRegistration with an error that names the expected format.
func CheckRegistration(candidate string, course *Course) error {
	if !inCatalog(course) {
		return fmt.Errorf("%w: no catalog course selected", ErrRegistrationFormatInvalid)
	}
	if !ValidateRegistration(candidate, course) {
		return fmt.Errorf("%w: expected %s, got %q", ErrRegistrationFormatInvalid, course.RegistrationFormat(), candidate)
	}
	return nil
}
