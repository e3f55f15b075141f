package student

import (
	"fmt"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/alem-hub/school-tools/internal/domain/shared"
)

// nameFormatMessage - текст ошибки для невалидного ФИО.
const nameFormatMessage = "name must contain only letters and spaces, and every word must start with a capital letter"

// Name представляет ФИО студента.
type Name string

// String возвращает строковое представление имени.
func (n Name) String() string {
	return string(n)
}

// IsValid проверяет, что имя состоит только из букв и пробелов
// и каждое слово начинается с заглавной буквы (остальные - строчные).
func (n Name) IsValid() bool {
	s := string(n)

	cased := 0
	for _, r := range s {
		switch {
		case r == ' ':
		case unicode.IsLetter(r):
			if unicode.IsUpper(r) || unicode.IsTitle(r) {
				cased++
			}
		default:
			return false
		}
	}
	// Нужна хотя бы одна заглавная буква: в письменностях без регистра
	// сравнение с Title-формой ниже выполняется тривиально.
	if cased == 0 {
		return false
	}

	// Caser хранит состояние, поэтому создаётся на каждый вызов.
	return cases.Title(language.Und).String(s) == s
}

// NewName создаёт Name с валидацией.
func NewName(s string) (Name, error) {
	n := Name(s)
	if !n.IsValid() {
		return "", shared.NewDomainError("student", "NewName", shared.ErrValidation,
			fmt.Sprintf("%s: %q", nameFormatMessage, s))
	}
	return n, nil
}
