package mapping

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/kaptinlin/jsonrepair"

	"specfusion/catalog"
)

// MinFieldMappingScore минимальная оценка схожести для автоматического
// принятия маппинга
const MinFieldMappingScore = 75

// reviewScore нижняя граница диапазона "требует ручной проверки"
const reviewScore = 50

// ReferenceShop магазин-источник ground truth: его метки совпадают
// с канонической схемой
const ReferenceShop = "geizhals"

// referenceScore оценка встроенного эталонного маппинга; выше любой
// достижимой нечеткой оценки, поэтому выученные маппинги его не перебивают
const referenceScore = 101

// mappingEntry выученное соответствие для пары (магазин, канонический ключ)
type mappingEntry struct {
	MerchantKey string
	Score       int
}

// FieldMappings хранилище соответствий меток продавцов канонической схеме.
// На пару (магазин, канонический ключ) хранится не более одной метки;
// замена возможна только кандидатом со строго большей оценкой.
type FieldMappings struct {
	mappings map[string]map[catalog.Property]mappingEntry
	path     string
}

// NewFieldMappings создает пустое хранилище с файлом персистентности path
func NewFieldMappings(path string) *FieldMappings {
	fm := &FieldMappings{
		mappings: make(map[string]map[catalog.Property]mappingEntry),
		path:     path,
	}
	fm.installReferenceMappings()
	return fm
}

// GetMappingsPerShop возвращает маппинги магазина без оценок.
// Для неизвестного магазина возвращается пустая карта.
func (fm *FieldMappings) GetMappingsPerShop(shopID string) map[catalog.Property]string {
	result := make(map[catalog.Property]string)
	for catKey, entry := range fm.mappings[shopID] {
		result[catKey] = entry.MerchantKey
	}
	return result
}

// Shops возвращает отсортированный список известных магазинов
func (fm *FieldMappings) Shops() []string {
	shops := make([]string, 0, len(fm.mappings))
	for shop := range fm.mappings {
		shops = append(shops, shop)
	}
	sort.Strings(shops)
	return shops
}

// AddMapping добавляет соответствие метки продавца каноническому ключу.
// Существующая запись заменяется только при строго большей оценке.
func (fm *FieldMappings) AddMapping(shopID string, catKey catalog.Property, merchKey string, score int) {
	shopMappings, ok := fm.mappings[shopID]
	if !ok {
		shopMappings = make(map[catalog.Property]mappingEntry)
		fm.mappings[shopID] = shopMappings
	}

	current, exists := shopMappings[catKey]
	if !exists {
		log.Printf("Add mapping for '%s': %s -> %s (score=%d)", shopID, merchKey, catKey, score)
		shopMappings[catKey] = mappingEntry{MerchantKey: merchKey, Score: score}
		return
	}
	if score > current.Score {
		log.Printf("Updated mapping for '%s': %s -> %s (score=%d)", shopID, merchKey, catKey, score)
		shopMappings[catKey] = mappingEntry{MerchantKey: merchKey, Score: score}
	}
}

// AddPossibleMapping оценивает текст продавца против эталонного значения
// атрибута и фиксирует маппинг при оценке не ниже порога. Оценки в
// диапазоне [50, 75) только логируются для ручной проверки.
func (fm *FieldMappings) AddPossibleMapping(shopID string, catKey catalog.Property, exampleValue, merchKey, merchantText string) {
	score := RateMapping(merchantText, exampleValue)
	switch {
	case score >= MinFieldMappingScore:
		fm.AddMapping(shopID, catKey, merchKey, score)
	case score >= reviewScore:
		log.Printf("Needs manual check for '%s': %s -> %s (score=%d, text=%q)", shopID, merchKey, catKey, score, merchantText)
	}
}

// LoadFromDisk читает маппинги из JSON-файла. Поддерживаются простая
// форма {shop: {key: merchant}} и форма с оценками
// {shop: {key: [merchant, score]}}; null-записи отбрасываются.
// Отсутствующий или неисправимо поврежденный файл дает пустое хранилище.
func (fm *FieldMappings) LoadFromDisk() error {
	fm.mappings = make(map[string]map[catalog.Property]mappingEntry)
	defer fm.installReferenceMappings()

	data, err := os.ReadFile(fm.path)
	if err != nil {
		if mkErr := os.MkdirAll(filepath.Dir(fm.path), 0755); mkErr != nil {
			return fmt.Errorf("failed to create mappings directory: %w", mkErr)
		}
		log.Printf("Field mappings file not found, starting empty: %s", fm.path)
		return nil
	}

	var document map[string]map[string]any
	if err := json.Unmarshal(data, &document); err != nil {
		repaired, repairErr := jsonrepair.JSONRepair(string(data))
		if repairErr != nil || json.Unmarshal([]byte(repaired), &document) != nil {
			log.Printf("Field mappings file corrupt, starting empty: %v", err)
			return nil
		}
		log.Printf("Field mappings file repaired: %s", filepath.Base(fm.path))
	}

	for shop, entries := range document {
		shopMappings := make(map[catalog.Property]mappingEntry)
		for catKey, raw := range entries {
			entry, ok := decodeEntry(raw)
			if !ok {
				continue
			}
			shopMappings[catalog.Property(catKey)] = entry
		}
		if len(shopMappings) > 0 {
			fm.mappings[shop] = shopMappings
		}
	}
	return nil
}

// decodeEntry разбирает одну запись файла маппингов в обеих формах
func decodeEntry(raw any) (mappingEntry, bool) {
	switch value := raw.(type) {
	case string:
		return mappingEntry{MerchantKey: value, Score: -1}, true
	case []any:
		if len(value) != 2 {
			return mappingEntry{}, false
		}
		merchKey, ok := value[0].(string)
		if !ok {
			return mappingEntry{}, false
		}
		score, ok := value[1].(float64)
		if !ok {
			return mappingEntry{}, false
		}
		return mappingEntry{MerchantKey: merchKey, Score: int(score)}, true
	}
	return mappingEntry{}, false
}

// SaveToDisk пишет полностью развернутую матрицу: каждый канонический
// ключ каждого магазина, null для несопоставленных. Так файл удобно
// править вручную.
func (fm *FieldMappings) SaveToDisk() error {
	document := make(map[string]map[string]any, len(fm.mappings))
	for shop, shopMappings := range fm.mappings {
		row := make(map[string]any, len(catalog.Properties()))
		for _, catKey := range catalog.Properties() {
			if entry, ok := shopMappings[catKey]; ok {
				row[string(catKey)] = []any{entry.MerchantKey, entry.Score}
			} else {
				row[string(catKey)] = nil
			}
		}
		document[shop] = row
	}

	data, err := json.MarshalIndent(document, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal field mappings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(fm.path), 0755); err != nil {
		return fmt.Errorf("failed to create mappings directory: %w", err)
	}
	if err := os.WriteFile(fm.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write field mappings: %w", err)
	}

	mapped, total := fm.MappingStats()
	log.Printf("%d/%d properties automatically mapped for %d shops", mapped, total, len(fm.mappings))
	log.Printf("Flushed mappings to %s", filepath.Base(fm.path))
	return nil
}

// MappingStats возвращает число сопоставленных ячеек и общий размер
// развернутой матрицы (магазины x канонические ключи)
func (fm *FieldMappings) MappingStats() (mapped, total int) {
	propertyCount := len(catalog.Properties())
	for _, shopMappings := range fm.mappings {
		mapped += len(shopMappings)
		total += propertyCount
	}
	return mapped, total
}

// installReferenceMappings устанавливает встроенный эталонный маппинг
// для магазина-источника ground truth: его метки тождественны канонической
// схеме. Оценка выше любой выученной, перезапись невозможна.
func (fm *FieldMappings) installReferenceMappings() {
	reference := make(map[catalog.Property]mappingEntry, len(catalog.Properties()))
	for _, catKey := range catalog.Properties() {
		reference[catKey] = mappingEntry{MerchantKey: string(catKey), Score: referenceScore}
	}
	fm.mappings[ReferenceShop] = reference
}
