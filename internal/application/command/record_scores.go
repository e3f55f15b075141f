package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/alem-hub/school-tools/internal/domain/student"
	"github.com/alem-hub/school-tools/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// RECORD SCORES COMMAND
// Appends grades and test scores and reports the resulting averages.
// ══════════════════════════════════════════════════════════════════════════════

// Score is a single value recorded for a subject.
type Score struct {
	Subject string
	Value   float64
}

// RecordScoresCommand contains the scores to record.
type RecordScoresCommand struct {
	// Student receives the scores.
	Student *student.Student

	// Grades are appended in order.
	Grades []Score

	// TestScores are appended in order.
	TestScores []Score
}

// SubjectAverage is the test-score average of one subject.
type SubjectAverage struct {
	Subject          string
	AverageTestScore float64
	Grades           int
	TestScores       int
}

// RecordScoresResult contains the averages after recording.
type RecordScoresResult struct {
	// Subjects lists every catalog subject in catalog order.
	Subjects []SubjectAverage

	// AverageGrade is the mean over all recorded grades.
	AverageGrade float64
}

// RecordScoresHandler handles the RecordScoresCommand.
type RecordScoresHandler struct {
	log *logger.Logger
}

// NewRecordScoresHandler creates a new RecordScoresHandler.
func NewRecordScoresHandler(log *logger.Logger) *RecordScoresHandler {
	return &RecordScoresHandler{
		log: log.With(logger.Component("tracker")),
	}
}

// Handle records the scores. Recording stops at the first unknown subject;
// values appended before it are kept.
func (h *RecordScoresHandler) Handle(ctx context.Context, cmd RecordScoresCommand) (*RecordScoresResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if cmd.Student == nil {
		return nil, errors.New("record_scores: student is required")
	}

	s := cmd.Student
	log := h.log.With(logger.StudentID(s.ID))

	for _, g := range cmd.Grades {
		if err := s.AddGrade(g.Subject, g.Value); err != nil {
			log.Error("failed to add grade", logger.Subject(g.Subject), logger.Err(err))
			return nil, fmt.Errorf("record_scores: %w", err)
		}
		log.Debug("grade added", logger.Subject(g.Subject), logger.Float64("grade", g.Value))
	}

	for _, ts := range cmd.TestScores {
		if err := s.AddTestScore(ts.Subject, ts.Value); err != nil {
			log.Error("failed to add test score", logger.Subject(ts.Subject), logger.Err(err))
			return nil, fmt.Errorf("record_scores: %w", err)
		}
		log.Debug("test score added", logger.Subject(ts.Subject), logger.Float64("score", ts.Value))
	}

	result := &RecordScoresResult{
		Subjects:     make([]SubjectAverage, 0, len(s.Subjects())),
		AverageGrade: s.AverageGrade(),
	}

	for _, subject := range s.Subjects() {
		rec, err := s.Subject(subject)
		if err != nil {
			return nil, fmt.Errorf("record_scores: %w", err)
		}
		avg, err := s.AverageTestScore(subject)
		if err != nil {
			return nil, fmt.Errorf("record_scores: %w", err)
		}
		result.Subjects = append(result.Subjects, SubjectAverage{
			Subject:          subject,
			AverageTestScore: avg,
			Grades:           len(rec.Grades),
			TestScores:       len(rec.TestScores),
		})
	}

	log.Info("scores recorded",
		logger.Int("grades", len(cmd.Grades)),
		logger.Int("test_scores", len(cmd.TestScores)),
		logger.Float64("average_grade", result.AverageGrade),
	)

	return result, nil
}
