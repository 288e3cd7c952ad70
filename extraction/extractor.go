package extraction

import (
	"fmt"
	"regexp"
	"strings"

	"specfusion/catalog"
)

// CleanText убирает невидимые символы и нормализует известные
// варианты написания единиц измерения перед сопоставлением с шаблоном
func CleanText(text string) string {
	text = strings.ReplaceAll(text, "cd/m2", "cd/m²")
	text = strings.ReplaceAll(text, "\u200b", "") // zero-width space
	return strings.TrimSpace(text)
}

// CreatePatternStructure извлекает структурированное значение из текста.
//
// Без matchTo возвращается первое полное совпадение шаблона как строка.
// С плоским matchTo шаблон должен дать ровно len(matchTo) групп, результат
// map имя поля -> значение группы. С repeated поиск повторяется по остатку
// текста после каждого совпадения, результат список таких map (записи,
// разделенные разделителем внутри одного поля).
func CreatePatternStructure(text string, pattern *regexp.Regexp, matchTo []string, repeated bool) (catalog.Value, error) {
	if len(matchTo) == 0 {
		match := pattern.FindString(text)
		if match == "" {
			return nil, fmt.Errorf("%w: no match for pattern %q in %q", ErrExtraction, pattern.String(), text)
		}
		return match, nil
	}

	if repeated {
		return findAll(text, pattern, matchTo)
	}

	groups := pattern.FindStringSubmatch(text)
	if groups == nil {
		return nil, fmt.Errorf("%w: no match for pattern %q in %q", ErrExtraction, pattern.String(), text)
	}
	if len(groups)-1 != len(matchTo) {
		return nil, fmt.Errorf("%w: pattern %q produced %d groups, want %d", ErrExtraction, pattern.String(), len(groups)-1, len(matchTo))
	}

	result := make(map[string]catalog.Value, len(matchTo))
	for i, name := range matchTo {
		result[name] = groups[i+1]
	}
	return result, nil
}

// findAll собирает все совпадения шаблона, каждый раз продолжая поиск
// с позиции после конца предыдущего совпадения
func findAll(text string, pattern *regexp.Regexp, matchTo []string) (catalog.Value, error) {
	var matches []catalog.Value
	rest := text
	for {
		loc := pattern.FindStringSubmatchIndex(rest)
		if loc == nil {
			break
		}
		if len(loc)/2-1 != len(matchTo) {
			return nil, fmt.Errorf("%w: pattern %q produced %d groups, want %d", ErrExtraction, pattern.String(), len(loc)/2-1, len(matchTo))
		}
		entry := make(map[string]catalog.Value, len(matchTo))
		for i, name := range matchTo {
			start, end := loc[2*(i+1)], loc[2*(i+1)+1]
			if start < 0 {
				entry[name] = ""
				continue
			}
			entry[name] = rest[start:end]
		}
		matches = append(matches, entry)
		rest = rest[loc[1]:]
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: no match for pattern %q in %q", ErrExtraction, pattern.String(), text)
	}
	return matches, nil
}

// CreateListing разбивает текст по запятым в список значений,
// применяя таблицу синонимов к каждому элементу
func CreateListing(text string, synonyms map[string]string) catalog.Value {
	parts := strings.Split(text, ", ")
	listing := make([]catalog.Value, 0, len(parts))
	for _, item := range parts {
		listing = append(listing, strings.TrimSpace(ApplySynonyms(strings.TrimSpace(item), synonyms)))
	}
	return listing
}

// ApplySynonyms заменяет текст каноническим значением, если он целиком
// совпадает с известным синонимом без учета регистра
func ApplySynonyms(text string, synonyms map[string]string) string {
	for key, value := range synonyms {
		if strings.EqualFold(key, text) {
			return value
		}
	}
	return text
}

// DefaultSynonyms таблица синонимов по умолчанию: варианты написания,
// которые продавцы используют для одного и того же значения
func DefaultSynonyms() map[string]string {
	return map[string]string{
		"zero frame":      "Slim Bezel",
		"schmaler Rahmen": "Slim Bezel",
		"entspiegelt":     "matt",
		"non-glare":       "matt",
	}
}
