package core

type Status string

const (
	StatusPass Status = "PASS"
	StatusFail Status = "FAIL"
)

type UnitResult struct {
	Unit  string `json:"unit"`
	Mark  int    `json:"mark"`
	Grade Grade  `json:"grade"`
}

type GradeReport struct {
	Name               string       `json:"name"`
	RegistrationNumber string       `json:"registration_number"`
	CourseID           string       `json:"course"`
	Results            []UnitResult `json:"results"`
	Status             Status       `json:"status"`
	Retakes            []string     `json:"retakes"`
}

// Evaluate grades every unit in course order. The student fails when any
// unit needs a retake, and Retakes lists those units in the same order.
func Evaluate(rec *StudentRecord) *GradeReport {
	report := &GradeReport{
		Name:               rec.Name,
		RegistrationNumber: rec.RegistrationNumber,
		CourseID:           rec.Course.ID(),
		Results:            make([]UnitResult, 0, len(rec.Marks)),
		Status:             StatusPass,
		Retakes:            []string{},
	}

	for _, m := range rec.Marks {
		grade := GradeFor(m.Mark)
		report.Results = append(report.Results, UnitResult{
			Unit:  m.Unit,
			Mark:  m.Mark,
			Grade: grade,
		})

		if grade.IsRetake() {
			report.Status = StatusFail
			report.Retakes = append(report.Retakes, m.Unit)
		}
	}

	return report
}

func (r *GradeReport) Passed() bool {
	return r.Status == StatusPass
}

func (r *GradeReport) Grades() []Grade {
	grades := make([]Grade, len(r.Results))
	for i, res := range r.Results {
		grades[i] = res.Grade
	}
	return grades
}
