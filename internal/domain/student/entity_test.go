package student

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alem-hub/school-tools/internal/domain/shared"
)

func newTestStudent(t *testing.T) *Student {
	t.Helper()
	s, err := New("Ivan Petrov", Catalog{"Math", "Physics", "History"})
	require.NoError(t, err)
	return s
}

func TestNew(t *testing.T) {
	s := newTestStudent(t)

	_, err := uuid.Parse(s.ID)
	assert.NoError(t, err)
	assert.Equal(t, Name("Ivan Petrov"), s.Name())
	assert.Equal(t, []string{"Math", "Physics", "History"}, s.Subjects())
	assert.False(t, s.CreatedAt.IsZero())
}

func TestNew_InvalidName(t *testing.T) {
	for _, name := range []string{"ivan petrov", "Ivan2 Petrov"} {
		_, err := New(name, Catalog{"Math"})
		require.Error(t, err, name)
		assert.True(t, shared.IsValidation(err), name)
	}
}

func TestNew_DuplicateCatalogEntries(t *testing.T) {
	s, err := New("Anna", Catalog{"Math", "Math", "Physics"})
	require.NoError(t, err)

	assert.Equal(t, []string{"Math", "Physics"}, s.Subjects())
}

func TestSetName_RevalidatesOnEveryAssignment(t *testing.T) {
	s := newTestStudent(t)

	require.NoError(t, s.SetName("Petr Ivanov"))
	assert.Equal(t, Name("Petr Ivanov"), s.Name())

	err := s.SetName("petr ivanov")
	require.Error(t, err)
	assert.True(t, shared.IsValidation(err))
	assert.Equal(t, Name("Petr Ivanov"), s.Name(), "failed assignment must keep the previous name")
}

func TestSubject_Lookup(t *testing.T) {
	s := newTestStudent(t)

	rec, err := s.Subject("Math")
	require.NoError(t, err)
	assert.Empty(t, rec.Grades)
	assert.Empty(t, rec.TestScores)

	_, err = s.Subject("Chemistry")
	require.Error(t, err)
	assert.True(t, shared.IsNotFound(err))
	assert.Contains(t, err.Error(), "Chemistry")

	assert.True(t, s.HasSubject("Physics"))
	assert.False(t, s.HasSubject("Chemistry"))
}

func TestSubject_ReturnsCopy(t *testing.T) {
	s := newTestStudent(t)
	require.NoError(t, s.AddGrade("Math", 5))

	rec, err := s.Subject("Math")
	require.NoError(t, err)
	rec.Grades[0] = 1

	again, err := s.Subject("Math")
	require.NoError(t, err)
	assert.Equal(t, []float64{5}, again.Grades)
}

func TestAddGradeAndTestScore_UnknownSubject(t *testing.T) {
	s := newTestStudent(t)

	assert.True(t, shared.IsNotFound(s.AddGrade("Chemistry", 4)))
	assert.True(t, shared.IsNotFound(s.AddTestScore("Chemistry", 80)))
}

func TestAverageTestScore(t *testing.T) {
	s := newTestStudent(t)

	avg, err := s.AverageTestScore("Math")
	require.NoError(t, err)
	assert.Equal(t, 0.0, avg)

	require.NoError(t, s.AddTestScore("Math", 80))
	require.NoError(t, s.AddTestScore("Math", 90))
	require.NoError(t, s.AddTestScore("Math", 100))

	avg, err = s.AverageTestScore("Math")
	require.NoError(t, err)
	assert.InDelta(t, 90.0, avg, 1e-9)

	_, err = s.AverageTestScore("Chemistry")
	require.Error(t, err)
	assert.True(t, shared.IsNotFound(err))
}

func TestAverageGrade(t *testing.T) {
	s := newTestStudent(t)
	assert.Equal(t, 0.0, s.AverageGrade())

	require.NoError(t, s.AddGrade("Math", 5))
	require.NoError(t, s.AddGrade("Math", 4))
	require.NoError(t, s.AddGrade("Physics", 3))

	// History has no grades and does not drag the mean down.
	assert.InDelta(t, 4.0, s.AverageGrade(), 1e-9)
}

func TestString(t *testing.T) {
	s := newTestStudent(t)
	assert.Equal(t, "Student: Ivan Petrov\nSubjects: Math, Physics, History", s.String())
}
