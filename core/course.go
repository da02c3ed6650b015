package core

import (
	"errors"
	"strings"
)

var ErrCourseNotFound = errors.New("course not found")

// Course is only ever obtained from the catalog; its fields cannot be changed
// by callers.
type Course struct {
	id    string
	units []string
}

func (c *Course) ID() string {
	return c.id
}

// Units returns a copy of the course units in catalog order.
func (c *Course) Units() []string {
	units := make([]string, len(c.units))
	copy(units, c.units)
	return units
}

func (c *Course) UnitCount() int {
	return len(c.units)
}

// RegistrationFormat is the human readable form of the registration pattern,
// e.g. BSE-XX-YYYY/ZZZZ.
func (c *Course) RegistrationFormat() string {
	return c.id + "-XX-YYYY/ZZZZ"
}

func (c *Course) String() string {
	return c.id
}

// catalog is ordered by selection code: index 0 is code 1.
var catalog = []*Course{
	{
		id: "BSE",
		units: []string{
			"Calculus", "Programming", "Data Structures",
			"Operating Systems", "Electronics", "Linear Algebra",
		},
	},
	{
		id: "BCS",
		units: []string{
			"Programming", "Database Systems",
			"Networking", "Software Engineering",
			"Computer Architecture",
		},
	},
	{
		id: "BSCIT",
		units: []string{
			"Web Development", "Networking", "Database",
			"Cyber Security", "Cloud Computing", "Data Analysis",
		},
	},
}

// ResolveCourse maps a menu selection code (1-based) to its course.
func ResolveCourse(code int) (*Course, error) {
	if code < 1 || code > len(catalog) {
		return nil, ErrCourseNotFound
	}
	return catalog[code-1], nil
}

// ParseSelection accepts only the literal selection codes shown in the menu.
// Anything else, "01" and "+1" included, is reported as ErrCourseNotFound.
func ParseSelection(raw string) (*Course, error) {
	switch strings.TrimSpace(raw) {
	case "1":
		return ResolveCourse(1)
	case "2":
		return ResolveCourse(2)
	case "3":
		return ResolveCourse(3)
	}
	return nil, ErrCourseNotFound
}

// CourseByID looks a course up by its identifier. Matching is case-sensitive.
func CourseByID(id string) (*Course, error) {
	for _, c := range catalog {
		if c.id == id {
			return c, nil
		}
	}
	return nil, ErrCourseNotFound
}

// inCatalog reports whether course is one of the catalog entries, not merely
// a value that looks like one.
func inCatalog(course *Course) bool {
	for _, c := range catalog {
		if c == course {
			return true
		}
	}
	return false
}

// Courses lists the catalog in menu order.
func Courses() []*Course {
	courses := make([]*Course, len(catalog))
	copy(courses, catalog)
	return courses
}
