// Package validate содержит чистые предикаты валидации пользовательского ввода.
package validate

import "regexp"

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Допускает необязательный ведущий "+", цифры и распространенные
	// разделители; от 7 до 15 значащих цифр
	phoneRe  = regexp.MustCompile(`^\+?[0-9][0-9\s\-().]{5,20}$`)
	digitsRe = regexp.MustCompile(`[0-9]`)
)

// Email проверяет, что строка похожа на адрес электронной почты
func Email(s string) bool {
	return emailRe.MatchString(s)
}

// Phone проверяет, что строка похожа на международный телефонный номер.
// Формат намеренно либеральный: точную проверку выполняет backend.
func Phone(s string) bool {
	if !phoneRe.MatchString(s) {
		return false
	}
	digits := len(digitsRe.FindAllString(s, -1))
	return digits >= 7 && digits <= 15
}
