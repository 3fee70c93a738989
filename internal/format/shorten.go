package format

import (
	"strings"
	"unicode/utf8"
)

// Ellipsis дописывается к обрезанному описанию
const Ellipsis = "..."

// Shorten сжимает пробельные последовательности и, если текст длиннее width символов,
// оставляет столько целых слов, сколько помещается вместе с Ellipsis.
// Если не помещается ни одно слово, результатом будет один Ellipsis.
func Shorten(text string, width int) string {
	words := strings.Fields(text)
	collapsed := strings.Join(words, " ")
	if utf8.RuneCountInString(collapsed) <= width {
		return collapsed
	}

	limit := width - utf8.RuneCountInString(Ellipsis)
	var b strings.Builder
	length := 0
	for _, w := range words {
		next := utf8.RuneCountInString(w)
		if length > 0 {
			next++
		}
		if length+next > limit {
			break
		}
		if length > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(w)
		length += next
	}

	return b.String() + Ellipsis
}
