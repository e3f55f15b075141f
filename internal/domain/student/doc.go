// Package student содержит доменную модель учёта успеваемости студента.
//
// Пакет определяет:
//
//   - Value Objects: Name (ФИО с проверкой формата)
//   - Сущности: Student, Record (оценки и результаты тестов по предмету)
//   - Каталог предметов: Catalog, загружаемый из CSV-файла
//
// # Архитектурные принципы
//
//  1. Имя студента проверяется при каждом присваивании, а не только в конструкторе
//  2. Доступ к предметам идёт через явные методы, возвращающие ошибку поиска
//  3. Студент единолично владеет своими записями: геттеры возвращают копии
//
// # Пример использования
//
//	catalog, err := LoadCatalog("subjects.csv", CatalogOptions{})
//	if err != nil {
//	    return err // shared.ErrFileNotFound, если файла нет
//	}
//
//	s, err := New("Ivan Petrov", catalog)
//	if err != nil {
//	    return err // shared.ErrValidation
//	}
//
//	_ = s.AddGrade("Математика", 5)
//	_ = s.AddTestScore("Математика", 87)
//
//	avg, err := s.AverageTestScore("Математика")
//	overall := s.AverageGrade()
package student
