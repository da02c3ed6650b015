package core

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

type Validator interface {
	ValidateRecord(*StudentRecord) error
}

// RecordValidator checks the field tags on StudentRecord plus the rules that
// tie marks and registration number to the selected course.
type RecordValidator struct {
	validate *validator.Validate
}

func NewRecordValidator() *RecordValidator {
	v := validator.New()
	v.RegisterStructValidation(studentRecordStructLevel, StudentRecord{})

	return &RecordValidator{
		validate: v,
	}
}

func (v *RecordValidator) ValidateRecord(rec *StudentRecord) error {
	if rec == nil {
		return fmt.Errorf("%w: nil record", ErrRecordIncomplete)
	}
	if rec.Course != nil && !inCatalog(rec.Course) {
		return fmt.Errorf("invalid student record: %w", ErrCourseNotFound)
	}
	if err := v.validate.Struct(rec); err != nil {
		return fmt.Errorf("invalid student record: %w", err)
	}
	return nil
}

func studentRecordStructLevel(sl validator.StructLevel) {
	rec := sl.Current().Interface().(StudentRecord)
	if rec.Course == nil {
		return
	}
	if !inCatalog(rec.Course) {
		sl.ReportError(rec.Course, "Course", "Course", "catalog", "")
		return
	}

	units := rec.Course.units
	if len(rec.Marks) != len(units) {
		sl.ReportError(rec.Marks, "Marks", "Marks", "unitcount", fmt.Sprint(len(units)))
	} else {
		for i, m := range rec.Marks {
			if m.Unit != units[i] {
				sl.ReportError(m.Unit, "Marks", "Marks", "unitorder", units[i])
				break
			}
		}
	}

	if !ValidateRegistration(rec.RegistrationNumber, rec.Course) {
		sl.ReportError(rec.RegistrationNumber, "RegistrationNumber", "RegistrationNumber", "registration", rec.Course.RegistrationFormat())
	}
}
