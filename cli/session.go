package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/deauthe/student_results_go/core"
	"github.com/deauthe/student_results_go/util"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

var ErrInputClosed = errors.New("input closed before the session finished")

type SessionOpts struct {
	In     io.Reader
	Out    io.Writer
	Logger log.Logger
}

// Session drives one interactive run: it prompts for each input, re-prompts
// on anything core rejects, and prints the report at the end.
type Session struct {
	SessionOpts
	scanner *bufio.Scanner
}

func NewSession(opts SessionOpts) *Session {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Logger == nil {
		opts.Logger = log.NewNopLogger()
	}

	return &Session{
		SessionOpts: opts,
		scanner:     bufio.NewScanner(opts.In),
	}
}

func (s *Session) Run() (*core.GradeReport, error) {
	fmt.Fprintln(s.Out, "===== UNIVERSITY MANAGEMENT SYSTEM =====")

	b, err := s.collectName()
	if err != nil {
		return nil, err
	}
	if err := s.collectCourse(b); err != nil {
		return nil, err
	}
	if err := s.collectRegistration(b); err != nil {
		return nil, err
	}
	if err := s.collectMarks(b); err != nil {
		return nil, err
	}

	rec, err := b.Build()
	if err != nil {
		return nil, err
	}

	startTime := time.Now()
	report := core.Evaluate(rec)
	util.LogWithTiming(s.Logger, startTime, "Evaluated %s", report.RegistrationNumber)

	level.Info(s.Logger).Log(
		"msg", "report ready",
		"course", report.CourseID,
		"status", report.Status,
		"retakes", len(report.Retakes),
		"digest", report.Hash(core.ReportHasher{}).Short(),
	)

	if err := RenderReport(s.Out, report); err != nil {
		return nil, fmt.Errorf("failed to write report: %w", err)
	}

	return report, nil
}

func (s *Session) readLine() (string, error) {
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", ErrInputClosed
	}
	return s.scanner.Text(), nil
}

func (s *Session) collectName() (*core.RecordBuilder, error) {
	for {
		fmt.Fprint(s.Out, "Enter Student Name: ")
		line, err := s.readLine()
		if err != nil {
			return nil, err
		}

		b, err := core.NewRecordBuilder(line)
		if err == nil {
			return b, nil
		}
		level.Debug(s.Logger).Log("msg", "name rejected", "err", err)
		fmt.Fprintln(s.Out, "❌ Name cannot be empty! Try again.")
	}
}

func (s *Session) collectCourse(b *core.RecordBuilder) error {
	for {
		fmt.Fprintln(s.Out, "\nSelect Course:")
		for i, c := range core.Courses() {
			fmt.Fprintf(s.Out, "%d. %s\n", i+1, c.ID())
		}
		fmt.Fprint(s.Out, "Enter choice (1-3): ")

		line, err := s.readLine()
		if err != nil {
			return err
		}

		course, err := core.ParseSelection(line)
		if err != nil {
			level.Debug(s.Logger).Log("msg", "course selection rejected", "input", line, "err", err)
			fmt.Fprintln(s.Out, "❌ Course not found! Kindly select from the listed options.")
			continue
		}

		level.Debug(s.Logger).Log("msg", "course selected", "course", course.ID())
		return b.SelectCourse(course)
	}
}

func (s *Session) collectRegistration(b *core.RecordBuilder) error {
	for {
		fmt.Fprintf(s.Out, "Enter Registration Number (Format: %s )\n", b.Course().RegistrationFormat())

		line, err := s.readLine()
		if err != nil {
			return err
		}

		err = b.SetRegistration(line)
		if err == nil {
			return nil
		}
		if !errors.Is(err, core.ErrRegistrationFormatInvalid) {
			return err
		}
		level.Debug(s.Logger).Log("msg", "registration rejected", "err", err)
		fmt.Fprintln(s.Out, "❌ Invalid Registration Format! Try again.")
	}
}

func (s *Session) collectMarks(b *core.RecordBuilder) error {
	for unit, ok := b.NextUnit(); ok; unit, ok = b.NextUnit() {
		fmt.Fprintf(s.Out, "Enter marks for %s (0-100): ", unit)

		line, err := s.readLine()
		if err != nil {
			return err
		}

		mark, err := core.ParseMark(line)
		if err == nil {
			err = b.AddMark(mark)
		}

		switch {
		case err == nil:
		case errors.Is(err, core.ErrMarkNotInteger):
			level.Debug(s.Logger).Log("msg", "mark rejected", "unit", unit, "err", err)
			fmt.Fprintln(s.Out, "Invalid marks! Must be a whole number.")
		case errors.Is(err, core.ErrMarkOutOfRange):
			level.Debug(s.Logger).Log("msg", "mark rejected", "unit", unit, "err", err)
			fmt.Fprintln(s.Out, "Invalid marks! Must be between 0 and 100.")
		default:
			return err
		}
	}
	return nil
}
