package pipeline

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"specfusion/catalog"
	"specfusion/extraction"
	"specfusion/fusion"
	"specfusion/mapping"
	"specfusion/tokenclass"
)

// checkpointEvery период промежуточного сохранения хранилища маппингов
const checkpointEvery = 1000

// valueScorePenalty штраф к сохраняемой оценке при сопоставлении по
// значению: совпадение значений слабее свидетельствует о соответствии,
// чем совпадение меток. Порог отбора проверяется по сырой оценке.
const valueScorePenalty = 5

// rawSpecPattern имена файлов сырых предложений от скрейпера
const rawSpecPattern = "offer_*_specification.json"

// Processing конвейер обработки сырых предложений: обучение маппингов,
// извлечение структурированных значений и слияние в каталог
type Processing struct {
	config        *Config
	parser        *extraction.Parser
	fieldMappings *mapping.FieldMappings
	classifier    tokenclass.Classifier
}

// ProcessingStats статистика одного прогона конвейера
type ProcessingStats struct {
	TotalOffers   int
	TotalProducts int
	TotalFailures int
}

// NewProcessing создает конвейер с таблицей признаков мониторов
func NewProcessing(config *Config) *Processing {
	parser := extraction.NewParser(extraction.MonitorFeatures())
	if config.UnparsedWordsFile != "" {
		parser.SetUnparsedWordsFile(config.UnparsedWordsFile)
	}
	return &Processing{
		config:        config,
		parser:        parser,
		fieldMappings: mapping.NewFieldMappings(config.FieldMappingsFile),
	}
}

// SetClassifier включает обогащение извлечения токен-классификатором
func (p *Processing) SetClassifier(classifier tokenclass.Classifier) {
	p.classifier = classifier
}

// FieldMappings возвращает хранилище маппингов конвейера
func (p *Processing) FieldMappings() *mapping.FieldMappings {
	return p.fieldMappings
}

// LoadRawProducts читает все сырые предложения из каталога данных
// в порядке имен файлов
func (p *Processing) LoadRawProducts() ([]*catalog.RawProduct, error) {
	paths, err := filepath.Glob(filepath.Join(p.config.RawDataDir, rawSpecPattern))
	if err != nil {
		return nil, fmt.Errorf("failed to list raw data dir: %w", err)
	}
	sort.Strings(paths)

	products := make([]*catalog.RawProduct, 0, len(paths))
	for _, path := range paths {
		product, err := catalog.LoadRawProduct(path)
		if err != nil {
			log.Printf("Skipping unreadable offer %s: %v", filepath.Base(path), err)
			continue
		}
		products = append(products, product)
	}
	return products, nil
}

// FindMappings обучает маппинги меток на корпусе сырых предложений.
// Каждая метка продавца оценивается против каждого канонического ключа:
// сначала по самой метке, затем по значению против эталонного примера
// со штрафом. Хранилище сохраняется каждые 1000 предложений и в конце.
func (p *Processing) FindMappings(products []*catalog.RawProduct) error {
	if err := p.fieldMappings.LoadFromDisk(); err != nil {
		return fmt.Errorf("failed to load field mappings: %w", err)
	}

	for i, product := range products {
		if product.ShopName == mapping.ReferenceShop {
			continue
		}
		for merchKey, merchText := range product.RawSpecifications {
			p.rateAgainstCatalog(product.ShopName, merchKey, merchText)
		}
		if (i+1)%checkpointEvery == 0 {
			if err := p.fieldMappings.SaveToDisk(); err != nil {
				log.Printf("Failed to checkpoint field mappings: %v", err)
			}
		}
	}

	return p.fieldMappings.SaveToDisk()
}

// rateAgainstCatalog оценивает одну пару (метка, текст) продавца против
// всех канонических ключей
func (p *Processing) rateAgainstCatalog(shopID, merchKey, merchText string) {
	for _, property := range catalog.Properties() {
		if keyScore := mapping.RateMapping(merchKey, string(property)); keyScore >= mapping.MinFieldMappingScore {
			p.fieldMappings.AddMapping(shopID, property, merchKey, keyScore)
			continue
		}
		example, ok := catalog.Example[property]
		if !ok {
			continue
		}
		if valueScore := mapping.RateMapping(merchText, example); valueScore >= mapping.MinFieldMappingScore {
			p.fieldMappings.AddMapping(shopID, property, merchKey, valueScore-valueScorePenalty)
		}
	}
}

// ExtractProperties извлекает структурированные характеристики одного
// предложения: метки продавца переводятся в канонические через маппинги
// магазина, значения разбираются таблицей признаков. Для магазинов кроме
// эталонного результат дополняется токен-классификатором; отказ
// классификатора деградирует до чисто шаблонного извлечения.
func (p *Processing) ExtractProperties(product *catalog.RawProduct) catalog.Specifications {
	shopMappings := p.fieldMappings.GetMappingsPerShop(product.ShopName)

	canonical := make(map[catalog.Property]string)
	for property, merchKey := range shopMappings {
		if text, ok := product.RawSpecifications[merchKey]; ok {
			canonical[property] = text
		}
	}
	specs := p.parser.Parse(canonical)

	if p.classifier != nil && product.ShopName != mapping.ReferenceShop {
		p.enrichWithClassifier(product, specs)
	}
	return specs
}

// enrichWithClassifier дополняет извлечение атрибутами, найденными
// токен-классификатором в полном тексте предложения. Шаблонное
// извлечение имеет приоритет: заполняются только отсутствующие атрибуты.
func (p *Processing) enrichWithClassifier(product *catalog.RawProduct, specs catalog.Specifications) {
	text := product.RawSpecificationsText
	if text == "" {
		text = tokenclass.SpecsToText(product.RawSpecifications)
	}

	spans, err := p.classifier.ClassifyText(text)
	if err != nil {
		log.Printf("Classifier failed for '%s' (%s), falling back to pattern extraction: %v",
			product.Name, product.ShopName, err)
		return
	}

	for property, value := range tokenclass.ConvertLabelsToSpecs(spans) {
		if _, ok := specs[property]; !ok {
			specs[property] = value
		}
	}
}

// MergeSpecs группирует сырые предложения по товарам и сливает данные
// магазинов в записи каталога. Предложения одного товара идут в корпусе
// подряд и несут одно имя эталонного файла; смена имени закрывает группу.
func (p *Processing) MergeSpecs(products []*catalog.RawProduct) (*ProcessingStats, error) {
	if err := p.fieldMappings.LoadFromDisk(); err != nil {
		return nil, fmt.Errorf("failed to load field mappings: %w", err)
	}
	if err := os.MkdirAll(p.config.ProcessedDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create processed dir: %w", err)
	}

	stats := &ProcessingStats{TotalOffers: len(products)}
	var group []*catalog.RawProduct
	for _, product := range products {
		if len(group) > 0 && product.ReferenceFile != group[0].ReferenceFile {
			p.mergeGroup(group, stats)
			group = group[:0]
		}
		group = append(group, product)
	}
	if len(group) > 0 {
		p.mergeGroup(group, stats)
	}

	log.Printf("Merged %d offers into %d catalog products (%d failures)",
		stats.TotalOffers, stats.TotalProducts, stats.TotalFailures)
	return stats, nil
}

// mergeGroup сливает предложения одного товара и сохраняет запись каталога
func (p *Processing) mergeGroup(group []*catalog.RawProduct, stats *ProcessingStats) {
	productID, err := catalog.ProductIDFromFilename(group[0].ReferenceFile)
	if err != nil {
		log.Printf("Skipping offer group: %v", err)
		stats.TotalFailures++
		return
	}

	specsPerShop := make(map[string]catalog.Specifications, len(group))
	for _, product := range group {
		specsPerShop[product.ShopName] = p.ExtractProperties(product)
	}

	merged := &catalog.CatalogProduct{
		Name:           group[0].Name,
		ID:             productID,
		Specifications: fusion.Fuse(specsPerShop),
	}
	if err := merged.SaveToJSON(p.config.CatalogPath(productID)); err != nil {
		log.Printf("Failed to save catalog product %s: %v", productID, err)
		stats.TotalFailures++
		return
	}
	stats.TotalProducts++
}
