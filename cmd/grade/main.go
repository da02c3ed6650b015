package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/deauthe/student_results_go/cli"
	"github.com/deauthe/student_results_go/core"
	"github.com/deauthe/student_results_go/types"
)

var errUsage = errors.New("usage")

type jsonReport struct {
	*core.GradeReport
	Digest string `json:"digest,omitempty"`
}

type options struct {
	name     string
	course   string
	reg      string
	marks    string
	asJSON   bool
	pretty   bool
	digest   bool
	expected string
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("grade", flag.ContinueOnError)
	fs.SetOutput(stderr)

	// Define command line flags
	var opts options
	fs.StringVar(&opts.name, "name", "", "Student name")
	fs.StringVar(&opts.course, "course", "", "Course selection (1-3) or course id (BSE, BCS, BSCIT)")
	fs.StringVar(&opts.reg, "reg", "", "Registration number, e.g. BSE-01-0005/2026")
	fs.StringVar(&opts.marks, "marks", "", "Comma separated marks, one per unit in course order")
	fs.BoolVar(&opts.asJSON, "json", false, "Print the report as JSON")
	fs.BoolVar(&opts.pretty, "pretty", false, "Pretty print JSON output")
	fs.BoolVar(&opts.digest, "digest", false, "Print the report digest after the report")
	fs.StringVar(&opts.expected, "expect", "", "Fail unless the report digest equals this hash")

	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	// If required flags are missing, show usage
	if opts.name == "" || opts.course == "" || opts.reg == "" || opts.marks == "" {
		fs.Usage()
		return errUsage
	}

	report, err := evaluate(opts)
	if err != nil {
		return err
	}

	digest := report.Hash(core.ReportHasher{})

	if opts.asJSON {
		// The digest travels inside the document so stdout stays valid JSON.
		out := jsonReport{GradeReport: report}
		if opts.digest {
			out.Digest = digest.String()
		}

		var jsonData []byte
		if opts.pretty {
			jsonData, err = json.MarshalIndent(out, "", "  ")
		} else {
			jsonData, err = json.Marshal(out)
		}
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		fmt.Fprintln(stdout, string(jsonData))
	} else {
		if err := cli.RenderReport(stdout, report); err != nil {
			return err
		}
		if opts.digest {
			fmt.Fprintf(stdout, "Digest: %s\n", digest)
		}
	}

	if opts.expected != "" {
		want, err := types.HashFromString(opts.expected)
		if err != nil {
			return err
		}
		if want != digest {
			return fmt.Errorf("report digest mismatch: expected %s, got %s", want, digest)
		}
	}

	return nil
}

func evaluate(opts options) (*core.GradeReport, error) {
	b, err := core.NewRecordBuilder(opts.name)
	if err != nil {
		return nil, err
	}

	course, err := resolveCourse(opts.course)
	if err != nil {
		return nil, fmt.Errorf("course %q: %w", opts.course, err)
	}
	if err := b.SelectCourse(course); err != nil {
		return nil, err
	}

	if err := b.SetRegistration(opts.reg); err != nil {
		return nil, err
	}

	fields := strings.Split(opts.marks, ",")
	if len(fields) != course.UnitCount() {
		return nil, fmt.Errorf("%s has %d units, got %d marks", course.ID(), course.UnitCount(), len(fields))
	}
	for _, field := range fields {
		mark, err := core.ParseMark(field)
		if err != nil {
			return nil, err
		}
		if err := b.AddMark(mark); err != nil {
			return nil, err
		}
	}

	rec, err := b.Build()
	if err != nil {
		return nil, err
	}

	return core.Evaluate(rec), nil
}

// resolveCourse accepts the same selection codes as the interactive menu,
// or a course id.
func resolveCourse(raw string) (*core.Course, error) {
	if course, err := core.ParseSelection(raw); err == nil {
		return course, nil
	}
	return core.CourseByID(raw)
}
