package core

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNameRequired     = errors.New("student name is required")
	ErrStageOrder       = errors.New("record stage out of order")
	ErrRecordIncomplete = errors.New("record is incomplete")
)

type UnitMark struct {
	Unit string `json:"unit" validate:"required"`
	Mark int    `json:"mark" validate:"min=0,max=100"`
}

// StudentRecord is only ever handed out fully populated, by RecordBuilder.Build.
type StudentRecord struct {
	Name               string     `json:"name" validate:"required"`
	RegistrationNumber string     `json:"registration_number" validate:"required"`
	Course             *Course    `json:"-" validate:"required"`
	Marks              []UnitMark `json:"marks" validate:"required,dive"`
}

// RecordBuilder collects a StudentRecord in the order name, course,
// registration number, then one mark per unit.
type RecordBuilder struct {
	name         string
	course       *Course
	registration string
	marks        []UnitMark
	validator    Validator
}

func NewRecordBuilder(name string) (*RecordBuilder, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	return &RecordBuilder{
		name:      name,
		validator: NewRecordValidator(),
	}, nil
}

func (b *RecordBuilder) SetValidator(v Validator) {
	b.validator = v
}

func (b *RecordBuilder) SelectCourse(course *Course) error {
	if !inCatalog(course) {
		return ErrCourseNotFound
	}
	if b.course != nil {
		return fmt.Errorf("%w: course already selected (%s)", ErrStageOrder, b.course.ID())
	}

	b.course = course
	b.marks = make([]UnitMark, 0, course.UnitCount())
	return nil
}

func (b *RecordBuilder) Course() *Course {
	return b.course
}

func (b *RecordBuilder) SetRegistration(candidate string) error {
	if b.course == nil {
		return fmt.Errorf("%w: select a course before the registration number", ErrStageOrder)
	}
	if b.registration != "" {
		return fmt.Errorf("%w: registration number already set", ErrStageOrder)
	}
	if err := CheckRegistration(candidate, b.course); err != nil {
		return err
	}

	b.registration = candidate
	return nil
}

// NextUnit returns the unit whose mark is expected next. ok is false once
// every unit has a mark or before the registration number is set.
func (b *RecordBuilder) NextUnit() (unit string, ok bool) {
	if b.registration == "" || len(b.marks) >= b.course.UnitCount() {
		return "", false
	}
	return b.course.units[len(b.marks)], true
}

// AddMark records the mark for the unit returned by NextUnit. A rejected
// mark leaves the builder unchanged so the same unit can be asked again.
func (b *RecordBuilder) AddMark(mark int) error {
	unit, ok := b.NextUnit()
	if !ok {
		if b.registration == "" {
			return fmt.Errorf("%w: set the registration number before marks", ErrStageOrder)
		}
		return fmt.Errorf("%w: all %d marks already entered", ErrStageOrder, b.course.UnitCount())
	}

	accepted, err := AcceptMark(mark)
	if err != nil {
		return fmt.Errorf("%s: %w", unit, err)
	}

	b.marks = append(b.marks, UnitMark{Unit: unit, Mark: accepted})
	return nil
}

func (b *RecordBuilder) Build() (*StudentRecord, error) {
	if b.course == nil || b.registration == "" {
		return nil, fmt.Errorf("%w: missing course or registration number", ErrRecordIncomplete)
	}
	if len(b.marks) != b.course.UnitCount() {
		return nil, fmt.Errorf("%w: %d of %d marks entered", ErrRecordIncomplete, len(b.marks), b.course.UnitCount())
	}

	marks := make([]UnitMark, len(b.marks))
	copy(marks, b.marks)

	rec := &StudentRecord{
		Name:               b.name,
		RegistrationNumber: b.registration,
		Course:             b.course,
		Marks:              marks,
	}

	if err := b.validator.ValidateRecord(rec); err != nil {
		return nil, err
	}

	return rec, nil
}
