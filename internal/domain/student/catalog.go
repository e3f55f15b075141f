package student

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/alem-hub/school-tools/internal/domain/shared"
)

// Catalog - упорядоченный список допустимых предметов без повторов.
type Catalog []string

// Contains проверяет, есть ли предмет в каталоге.
func (c Catalog) Contains(subject string) bool {
	for _, s := range c {
		if s == subject {
			return true
		}
	}
	return false
}

// CatalogOptions настраивает чтение файла предметов.
type CatalogOptions struct {
	// Comma - разделитель полей. По умолчанию ','.
	Comma rune
}

func (o CatalogOptions) comma() rune {
	if o.Comma == 0 {
		return ','
	}
	return o.Comma
}

// LoadCatalog читает каталог предметов из файла.
// Если файла нет, возвращается ошибка вида shared.ErrFileNotFound.
func LoadCatalog(path string, opts CatalogOptions) (Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, shared.WrapError("student", "LoadCatalog", shared.ErrFileNotFound,
				fmt.Sprintf("subjects file %q not found", path), err)
		}
		return nil, fmt.Errorf("student.LoadCatalog: open %q: %w", path, err)
	}
	defer f.Close()

	return ReadCatalog(f, opts)
}

// ReadCatalog разбирает строки CSV: первое поле каждой строки - название предмета.
// Заголовок не ожидается. Повторы игнорируются (побеждает первое вхождение),
// строки с пустым первым полем пропускаются.
// Пробелы вокруг названия предмета обрезаются: " Физика " и "Физика" -
// один и тот же предмет.
func ReadCatalog(r io.Reader, opts CatalogOptions) (Catalog, error) {
	reader := csv.NewReader(r)
	reader.Comma = opts.comma()
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	catalog := make(Catalog, 0)
	seen := make(map[string]struct{})

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, shared.WrapError("student", "ReadCatalog", shared.ErrInvalidFormat,
				"malformed subjects file", err)
		}

		subject := strings.TrimSpace(row[0])
		if subject == "" {
			continue
		}
		if _, dup := seen[subject]; dup {
			continue
		}
		seen[subject] = struct{}{}
		catalog = append(catalog, subject)
	}

	return catalog, nil
}
