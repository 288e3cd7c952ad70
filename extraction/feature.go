package extraction

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"specfusion/catalog"
)

// Kind способ извлечения значения признака
type Kind int

const (
	KindSynonym Kind = iota // текст как есть, с подстановкой синонимов
	KindPattern             // регулярное выражение
	KindListing             // список значений через запятую
)

// Feature привязка канонического атрибута к конфигурации извлечения
// и к правилам человекочитаемого вывода
type Feature struct {
	Property   catalog.Property
	Kind       Kind
	Pattern    *regexp.Regexp
	MatchTo    []string // имена групп шаблона; пустой список дает значение-строку
	Repeated   bool     // повторный поиск по остатку текста, результат-список
	Separators []string // разделители под-полей при выводе
	StringRepr string   // шаблон вывода вида "{1_value} {z_unit}", опционально
}

// FeatureGroup именованная группа связанных признаков.
// Используется только для форматирования вывода, не для разбора.
type FeatureGroup struct {
	Name     string
	Features []Feature
}

const groupSeparator = ", "

// defaultSeparator неразрывный пробел, как в исходных данных магазинов
const defaultSeparator = "\u00a0"

// Parse извлекает структурированное значение из очищенного текста
func (f *Feature) Parse(text string, synonyms map[string]string) (catalog.Value, error) {
	switch f.Kind {
	case KindPattern:
		return CreatePatternStructure(text, f.Pattern, f.MatchTo, f.Repeated)
	case KindListing:
		return CreateListing(text, synonyms), nil
	case KindSynonym:
		return ApplySynonyms(text, synonyms), nil
	}
	return nil, fmt.Errorf("%w: unknown feature kind %d for %q", ErrExtraction, f.Kind, f.Property)
}

// NiceOutput форматирует структурированное значение для вывода человеку
func (f *Feature) NiceOutput(data catalog.Value) (string, error) {
	switch value := data.(type) {
	case string:
		return value, nil
	case []any:
		parts := make([]string, 0, len(value))
		for _, item := range value {
			rendered, err := f.NiceOutput(item)
			if err != nil {
				return "", err
			}
			parts = append(parts, rendered)
		}
		return strings.Join(parts, groupSeparator), nil
	case map[string]any:
		return f.renderFields(value)
	}
	return "", fmt.Errorf("unsupported value type %T for %q", data, f.Property)
}

// renderFields выводит под-поля в порядке имен. Имена несут префикс
// сортировки ("1_value", "z_unit"), поэтому значение идет перед единицей.
func (f *Feature) renderFields(fields map[string]any) (string, error) {
	if f.StringRepr != "" {
		out := f.StringRepr
		for key, value := range fields {
			out = strings.ReplaceAll(out, "{"+key+"}", fmt.Sprintf("%v", value))
		}
		return out, nil
	}

	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	values := make([]string, 0, len(keys))
	for _, key := range keys {
		values = append(values, fmt.Sprintf("%v", fields[key]))
	}
	return joinWithSeparators(values, f.Separators), nil
}

// joinWithSeparators склеивает значения одним разделителем или
// поэлементным списком разделителей (на один короче списка значений)
func joinWithSeparators(values []string, separators []string) string {
	if len(separators) == 0 {
		return strings.Join(values, defaultSeparator)
	}
	if len(separators) == 1 {
		return strings.Join(values, separators[0])
	}

	var sb strings.Builder
	sb.WriteString(values[0])
	for i, sep := range separators {
		if i+1 >= len(values) {
			break
		}
		sb.WriteString(sep)
		sb.WriteString(values[i+1])
	}
	return sb.String()
}

// NiceOutput выводит все присутствующие признаки группы одной строкой
func (g *FeatureGroup) NiceOutput(specs catalog.Specifications) (string, error) {
	var parts []string
	for i := range g.Features {
		feature := &g.Features[i]
		data, ok := specs[feature.Property]
		if !ok {
			continue
		}
		rendered, err := feature.NiceOutput(data)
		if err != nil {
			return "", err
		}
		parts = append(parts, rendered)
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("no data for feature group %q", g.Name)
	}
	return strings.Join(parts, groupSeparator), nil
}
