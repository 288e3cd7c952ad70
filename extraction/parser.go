package extraction

import (
	"fmt"
	"log"
	"strings"

	"specfusion/catalog"
)

// flushEvery период сброса отчета о неразобранных значениях
const flushEvery = 1000

// Parser преобразует полуструктурированные характеристики в канонические
// структурированные значения. Держит таблицу признаков и таблицу
// синонимов; оба задаются при создании, скрытого глобального состояния нет.
type Parser struct {
	groups     []FeatureGroup
	features   map[catalog.Property]*Feature
	synonyms   map[string]string
	unparsed   *UnparsedWords
	parseCount int
}

// NewParser создает парсер по таблице групп признаков
func NewParser(groups []FeatureGroup) *Parser {
	parser := &Parser{
		groups:   groups,
		features: make(map[catalog.Property]*Feature),
		synonyms: DefaultSynonyms(),
		unparsed: NewUnparsedWords(""),
	}
	for gi := range groups {
		for fi := range groups[gi].Features {
			feature := &groups[gi].Features[fi]
			parser.features[feature.Property] = feature
		}
	}
	return parser
}

// SetSynonyms заменяет таблицу синонимов
func (p *Parser) SetSynonyms(synonyms map[string]string) {
	p.synonyms = synonyms
}

// SetUnparsedWordsFile включает запись отчета о неразобранных значениях
func (p *Parser) SetUnparsedWordsFile(path string) {
	p.unparsed = NewUnparsedWords(path)
}

// UnparsedWords возвращает копилку неразобранных значений
func (p *Parser) UnparsedWords() *UnparsedWords {
	return p.unparsed
}

// Parse разбирает значения атрибутов в структурированную форму.
// Атрибут без зарегистрированного признака или с несовпавшим шаблоном
// выпадает из результата и попадает в отчет; пакет никогда не прерывается.
func (p *Parser) Parse(specs map[catalog.Property]string) catalog.Specifications {
	result := make(catalog.Specifications)
	for property, rawValue := range specs {
		value, err := p.parseValue(property, CleanText(rawValue))
		if err != nil {
			log.Printf("Parsing of feature '%s' failed: %v", property, err)
			p.unparsed.Add(string(property), rawValue)
			continue
		}
		result[property] = value
	}

	p.parseCount++
	if p.parseCount%flushEvery == 0 {
		if err := p.unparsed.SaveToDisk(); err != nil {
			log.Printf("Failed to flush unparsed words: %v", err)
		}
	}
	return result
}

// parseValue разбирает одно значение атрибута. Для атрибута без
// зарегистрированного признака возвращается ErrNoParser.
func (p *Parser) parseValue(property catalog.Property, cleanValue string) (catalog.Value, error) {
	feature, ok := p.features[property]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoParser, property)
	}
	return feature.Parse(cleanValue, p.synonyms)
}

// NiceOutput выводит спецификации построчно по группам признаков
// в порядке объявления таблицы. Группа без данных или с ошибкой
// форматирования молча пропускается.
func (p *Parser) NiceOutput(specs catalog.Specifications) string {
	var lines []string
	for i := range p.groups {
		group := &p.groups[i]
		rendered, err := group.NiceOutput(specs)
		if err != nil {
			continue
		}
		lines = append(lines, fmt.Sprintf("%-30s %s", group.Name+":", rendered))
	}
	return strings.Join(lines, "\n")
}
