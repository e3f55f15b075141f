package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alem-hub/school-tools/internal/application/command"
	"github.com/alem-hub/school-tools/internal/domain/student"
	"github.com/alem-hub/school-tools/pkg/logger"
)

// TrackerOptions carries settings that come from configuration rather than flags.
type TrackerOptions struct {
	// SubjectsFile is used when --subjects is not given.
	SubjectsFile string

	// Catalog controls how the subjects file is read.
	Catalog student.CatalogOptions
}

// scoreList collects repeated "Subject=value" flags.
type scoreList []command.Score

func (l *scoreList) String() string {
	parts := make([]string, len(*l))
	for i, s := range *l {
		parts[i] = s.Subject + "=" + strconv.FormatFloat(s.Value, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}

func (l *scoreList) Set(v string) error {
	subject, value, ok := strings.Cut(v, "=")
	subject = strings.TrimSpace(subject)
	if !ok || subject == "" {
		return fmt.Errorf("expected Subject=value, got %q", v)
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return fmt.Errorf("invalid number in %q", v)
	}
	*l = append(*l, command.Score{Subject: subject, Value: f})
	return nil
}

// RunTracker builds a student, records the given scores and prints a report.
// args excludes the program name.
func RunTracker(ctx context.Context, args []string, stdout, stderr io.Writer, log *logger.Logger, opts TrackerOptions) int {
	fs := flag.NewFlagSet("tracker", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		name     string
		subjects string
		grades   scoreList
		tests    scoreList
	)
	fs.StringVar(&name, "name", "", "student full name, e.g. \"Ivan Petrov\"")
	fs.StringVar(&subjects, "subjects", opts.SubjectsFile, "path to the subjects file")
	fs.Var(&grades, "grade", "grade as Subject=value (repeatable)")
	fs.Var(&tests, "test", "test score as Subject=value (repeatable)")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		return ExitUsage
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		fs.Usage()
		return ExitUsage
	}

	s, err := command.NewOpenStudentHandler(log, opts.Catalog).Handle(ctx, command.OpenStudentCommand{
		Name:         name,
		SubjectsFile: subjects,
	})
	if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitFailure
	}

	result, err := command.NewRecordScoresHandler(log).Handle(ctx, command.RecordScoresCommand{
		Student:    s,
		Grades:     grades,
		TestScores: tests,
	})
	if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitFailure
	}

	fmt.Fprintln(stdout, s)
	for _, sub := range result.Subjects {
		fmt.Fprintf(stdout, "%s: average test score %s (%d tests, %d grades)\n",
			sub.Subject, formatScore(sub.AverageTestScore), sub.TestScores, sub.Grades)
	}
	fmt.Fprintf(stdout, "Average grade: %s\n", formatScore(result.AverageGrade))

	return ExitSuccess
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
