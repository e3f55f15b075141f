package student

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alem-hub/school-tools/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// RECORD
// ══════════════════════════════════════════════════════════════════════════════

// Record содержит оценки и результаты тестов по одному предмету.
type Record struct {
	// Grades - оценки в порядке добавления.
	Grades []float64

	// TestScores - результаты тестов в порядке добавления.
	TestScores []float64
}

func (r *Record) clone() Record {
	return Record{
		Grades:     append([]float64(nil), r.Grades...),
		TestScores: append([]float64(nil), r.TestScores...),
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// MAIN ENTITY: STUDENT
// ══════════════════════════════════════════════════════════════════════════════

// Student - студент с каталогом предметов и его успеваемостью.
type Student struct {
	// ID - внутренний уникальный идентификатор (UUID в строковом формате).
	ID string

	// CreatedAt - время создания записи.
	CreatedAt time.Time

	// UpdatedAt - время последнего обновления.
	UpdatedAt time.Time

	name     Name
	subjects map[string]*Record
	order    []string
}

// New создаёт студента с проверкой имени и пустыми записями
// по каждому предмету каталога.
func New(name string, catalog Catalog) (*Student, error) {
	s := &Student{
		ID:       uuid.New().String(),
		subjects: make(map[string]*Record, len(catalog)),
		order:    make([]string, 0, len(catalog)),
	}

	if err := s.SetName(name); err != nil {
		return nil, err
	}

	for _, subject := range catalog {
		if _, ok := s.subjects[subject]; ok {
			continue
		}
		s.subjects[subject] = &Record{}
		s.order = append(s.order, subject)
	}

	now := time.Now().UTC()
	s.CreatedAt = now
	s.UpdatedAt = now

	return s, nil
}

// Name возвращает ФИО студента.
func (s *Student) Name() Name {
	return s.name
}

// SetName проверяет и присваивает новое ФИО.
// При ошибке прежнее значение сохраняется.
func (s *Student) SetName(name string) error {
	n, err := NewName(name)
	if err != nil {
		return err
	}
	s.name = n
	s.UpdatedAt = time.Now().UTC()
	return nil
}

// Subjects возвращает предметы в порядке каталога.
func (s *Student) Subjects() []string {
	return append([]string(nil), s.order...)
}

// HasSubject проверяет, есть ли предмет у студента.
func (s *Student) HasSubject(subject string) bool {
	_, ok := s.subjects[subject]
	return ok
}

// Subject возвращает копию записи по предмету.
func (s *Student) Subject(subject string) (Record, error) {
	rec, err := s.lookup("Subject", subject)
	if err != nil {
		return Record{}, err
	}
	return rec.clone(), nil
}

// AddGrade добавляет оценку по предмету.
func (s *Student) AddGrade(subject string, grade float64) error {
	rec, err := s.lookup("AddGrade", subject)
	if err != nil {
		return err
	}
	rec.Grades = append(rec.Grades, grade)
	s.UpdatedAt = time.Now().UTC()
	return nil
}

// AddTestScore добавляет результат теста по предмету.
func (s *Student) AddTestScore(subject string, score float64) error {
	rec, err := s.lookup("AddTestScore", subject)
	if err != nil {
		return err
	}
	rec.TestScores = append(rec.TestScores, score)
	s.UpdatedAt = time.Now().UTC()
	return nil
}

// AverageTestScore возвращает средний балл по тестам для предмета.
// Если тестов ещё нет, возвращает 0.
func (s *Student) AverageTestScore(subject string) (float64, error) {
	rec, err := s.lookup("AverageTestScore", subject)
	if err != nil {
		return 0, err
	}
	return mean(rec.TestScores), nil
}

// AverageGrade возвращает среднюю оценку по всем предметам.
// Предметы без оценок не учитываются ни в сумме, ни в количестве.
func (s *Student) AverageGrade() float64 {
	var all []float64
	for _, subject := range s.order {
		all = append(all, s.subjects[subject].Grades...)
	}
	return mean(all)
}

// String возвращает строковое представление студента.
func (s *Student) String() string {
	return fmt.Sprintf("Student: %s\nSubjects: %s", s.name, strings.Join(s.order, ", "))
}

func (s *Student) lookup(op, subject string) (*Record, error) {
	rec, ok := s.subjects[subject]
	if !ok {
		return nil, shared.NewDomainError("student", op, shared.ErrNotFound,
			fmt.Sprintf("subject %q not found", subject))
	}
	return rec, nil
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
