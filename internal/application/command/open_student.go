package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/alem-hub/school-tools/internal/domain/shared"
	"github.com/alem-hub/school-tools/internal/domain/student"
	"github.com/alem-hub/school-tools/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// OPEN STUDENT COMMAND
// Builds a student record from a name and a subjects file.
// ══════════════════════════════════════════════════════════════════════════════

// OpenStudentCommand contains the data to build a student.
type OpenStudentCommand struct {
	// Name is the student's full name.
	Name string

	// SubjectsFile is the path to the delimited subjects file.
	SubjectsFile string
}

// Validate validates the command.
func (c OpenStudentCommand) Validate() error {
	if c.SubjectsFile == "" {
		return errors.New("open_student: subjects_file is required")
	}
	return nil
}

// OpenStudentHandler handles the OpenStudentCommand.
type OpenStudentHandler struct {
	log     *logger.Logger
	catalog student.CatalogOptions
}

// NewOpenStudentHandler creates a new OpenStudentHandler.
func NewOpenStudentHandler(log *logger.Logger, opts student.CatalogOptions) *OpenStudentHandler {
	return &OpenStudentHandler{
		log:     log.With(logger.Component("tracker")),
		catalog: opts,
	}
}

// Handle loads the subject catalog and creates the student.
// Errors are logged and returned unchanged so callers can match their kind.
func (h *OpenStudentHandler) Handle(ctx context.Context, cmd OpenStudentCommand) (*student.Student, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := cmd.Validate(); err != nil {
		h.log.Error("invalid command", logger.Err(err))
		return nil, err
	}

	s, err := h.open(cmd)
	if err != nil {
		switch {
		case shared.IsFileNotFound(err):
			h.log.Error("failed to load subjects file", logger.Path(cmd.SubjectsFile), logger.Err(err))
		case shared.IsValidation(err):
			h.log.Error("invalid student name", logger.Err(err))
		default:
			h.log.Error("unexpected error", logger.Path(cmd.SubjectsFile), logger.Err(err))
		}
		return nil, err
	}

	if len(s.Subjects()) == 0 {
		h.log.Warn("subjects file has no subjects", logger.Path(cmd.SubjectsFile))
	}

	h.log.Info("student opened",
		logger.StudentID(s.ID),
		logger.Int("subjects", len(s.Subjects())),
	)
	return s, nil
}

func (h *OpenStudentHandler) open(cmd OpenStudentCommand) (s *student.Student, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("open_student: %v", r)
		}
	}()

	// The name is checked before touching the file system.
	if _, err := student.NewName(cmd.Name); err != nil {
		return nil, err
	}

	catalog, err := student.LoadCatalog(cmd.SubjectsFile, h.catalog)
	if err != nil {
		return nil, err
	}

	return student.New(cmd.Name, catalog)
}
