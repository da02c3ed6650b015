package core

type Grade string

const (
	GradeA      Grade = "A"
	GradeB      Grade = "B"
	GradeC      Grade = "C"
	GradeD      Grade = "D"
	GradeRetake Grade = "RETAKE"
)

// RetakeThreshold is the lowest mark that does not require a retake.
const RetakeThreshold = 40

// GradeFor maps a mark to its letter grade. Each band includes its lower bound.
func GradeFor(mark int) Grade {
	switch {
	case mark < RetakeThreshold:
		return GradeRetake
	case mark < 50:
		return GradeD
	case mark < 70:
		return GradeC
	case mark < 90:
		return GradeB
	default:
		return GradeA
	}
}

func (g Grade) IsRetake() bool {
	return g == GradeRetake
}
