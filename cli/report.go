package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/deauthe/student_results_go/core"
)

// RenderReport writes the human readable result report.
func RenderReport(w io.Writer, r *core.GradeReport) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "\n========== RESULT REPORT ==========")
	fmt.Fprintf(bw, "Name: %s\n", r.Name)
	fmt.Fprintf(bw, "Reg No: %s\n", r.RegistrationNumber)
	fmt.Fprintf(bw, "Course: %s\n", r.CourseID)
	fmt.Fprintln(bw, "-----------------------------------")

	for _, res := range r.Results {
		fmt.Fprintf(bw, "%s : %d (%s)\n", res.Unit, res.Mark, res.Grade)
	}

	fmt.Fprintln(bw, "-----------------------------------")
	fmt.Fprintf(bw, "FINAL STATUS: %s\n", r.Status)

	if r.Passed() {
		fmt.Fprintln(bw, "You can register for the next semester.")
	} else {
		fmt.Fprintln(bw, "\nKindly register for retake unit(s) below:")
		for i, unit := range r.Retakes {
			fmt.Fprintf(bw, "%d. %s\n", i+1, unit)
		}
	}

	fmt.Fprintln(bw, "==================================")

	return bw.Flush()
}
