package format

import "strings"

// SpanKind задает тип разметки. Значения совпадают с типами MessageEntity в Bot API.
type SpanKind string

const (
	SpanBold     SpanKind = "bold"
	SpanItalic   SpanKind = "italic"
	SpanTextLink SpanKind = "text_link"
	SpanHashtag  SpanKind = "hashtag"
)

// Span описывает участок разметки поверх текста.
// Offset и Length считаются в UTF-16 code units, как того требует Telegram.
type Span struct {
	Kind   SpanKind
	Offset int
	Length int
	URL    string
}

// Text - плоская строка и список разметки над ней. Значение неизменяемое:
// все функции ниже возвращают новый Text.
type Text struct {
	String string
	Spans  []Span
}

// Plain возвращает текст без разметки
func Plain(s string) Text {
	return Text{String: s}
}

// Bold возвращает полужирный текст
func Bold(s string) Text {
	return styled(SpanBold, s, "")
}

// Italic возвращает курсив
func Italic(s string) Text {
	return styled(SpanItalic, s, "")
}

// Link возвращает текст-ссылку
func Link(s, url string) Text {
	return styled(SpanTextLink, s, url)
}

// HashTag возвращает хэштег. Символ # должен уже быть в s.
func HashTag(s string) Text {
	return styled(SpanHashtag, s, "")
}

func styled(kind SpanKind, s, url string) Text {
	if s == "" {
		return Text{}
	}
	return Text{
		String: s,
		Spans:  []Span{{Kind: kind, Offset: 0, Length: utf16Len(s), URL: url}},
	}
}

// Concat склеивает фрагменты, сдвигая разметку каждого фрагмента на длину предыдущих
func Concat(parts ...Text) Text {
	var b strings.Builder
	var spans []Span
	offset := 0

	for _, p := range parts {
		b.WriteString(p.String)
		for _, s := range p.Spans {
			s.Offset += offset
			spans = append(spans, s)
		}
		offset += utf16Len(p.String)
	}

	return Text{String: b.String(), Spans: spans}
}

// Join склеивает фрагменты через разделитель
func Join(sep string, parts ...Text) Text {
	joined := make([]Text, 0, 2*len(parts))
	for i, p := range parts {
		if i > 0 {
			joined = append(joined, Plain(sep))
		}
		joined = append(joined, p)
	}
	return Concat(joined...)
}

// Line склеивает фрагменты через пробел и завершает строку переводом строки
func Line(parts ...Text) Text {
	return Concat(Join(" ", parts...), Plain("\n"))
}

// Len возвращает длину текста в UTF-16 code units
func (t Text) Len() int {
	return utf16Len(t.String)
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		if r >= 0x10000 {
			n += 2
		} else {
			n++
		}
	}
	return n
}
