package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/kaptinlin/jsonrepair"
)

// Value структурированное значение атрибута после извлечения:
// строка, map[string]any с именованными под-полями (значения строки)
// или []any из таких map. Формы совпадают с тем, что возвращает
// encoding/json, поэтому значение переживает round trip без преобразований.
type Value = any

// Specifications канонические структурированные характеристики одного товара
type Specifications map[Property]Value

// RawProduct сырые характеристики одного предложения (товар + магазин)
type RawProduct struct {
	Name                  string            `json:"name"`
	RawSpecifications     map[string]string `json:"raw_specifications"`
	RawSpecificationsText string            `json:"raw_specifications_text"`
	ShopName              string            `json:"shop_name"`
	Price                 float64           `json:"price"`
	HTMLFile              string            `json:"html_file"`
	OfferLink             string            `json:"offer_link"`
	ReferenceFile         string            `json:"reference_file"`
}

// CatalogProduct итоговая запись каталога после слияния данных магазинов
type CatalogProduct struct {
	Name           string         `json:"name"`
	ID             string         `json:"id"`
	Specifications Specifications `json:"specifications"`
}

// ReferenceProduct эталонные данные товара из источника ground truth
// (geizhals). Метки деталей совпадают с канонической схемой.
type ReferenceProduct struct {
	ProductName    string            `json:"product_name"`
	ProductDetails map[string]string `json:"product_details"`
}

var productIDPattern = regexp.MustCompile(`\d+`)

// ProductIDFromFilename извлекает числовой идентификатор товара
// из имени эталонного файла, например "reference_17.json" -> "17"
func ProductIDFromFilename(filename string) (string, error) {
	id := productIDPattern.FindString(filepath.Base(filename))
	if id == "" {
		return "", fmt.Errorf("no product id in filename %q", filename)
	}
	return id, nil
}

// CatalogFilename имя файла каталога для товара с данным идентификатором
func CatalogFilename(id string) string {
	return fmt.Sprintf("product_%s_catalog.json", id)
}

// SaveToJSON сохраняет запись каталога в файл
func (p *CatalogProduct) SaveToJSON(path string) error {
	data, err := json.MarshalIndent(p, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal catalog product %q: %w", p.ID, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write catalog product %q: %w", p.ID, err)
	}
	return nil
}

// LoadCatalogProduct читает запись каталога из файла
func LoadCatalogProduct(path string) (*CatalogProduct, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog product: %w", err)
	}
	var product CatalogProduct
	if err := unmarshalRepaired(data, &product); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog product %s: %w", filepath.Base(path), err)
	}
	return &product, nil
}

// SaveToJSON сохраняет сырые характеристики предложения в файл
func (p *RawProduct) SaveToJSON(path string) error {
	data, err := json.MarshalIndent(p, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal raw product: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write raw product: %w", err)
	}
	return nil
}

// LoadRawProduct читает сырые характеристики предложения из файла
func LoadRawProduct(path string) (*RawProduct, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read raw product: %w", err)
	}
	var product RawProduct
	if err := unmarshalRepaired(data, &product); err != nil {
		return nil, fmt.Errorf("failed to unmarshal raw product %s: %w", filepath.Base(path), err)
	}
	return &product, nil
}

// LoadReferenceProduct читает эталонные данные товара из файла
func LoadReferenceProduct(path string) (*ReferenceProduct, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read reference product: %w", err)
	}
	var product ReferenceProduct
	if err := unmarshalRepaired(data, &product); err != nil {
		return nil, fmt.Errorf("failed to unmarshal reference product %s: %w", filepath.Base(path), err)
	}
	return &product, nil
}

// unmarshalRepaired разбирает JSON, при синтаксической ошибке пытается
// починить документ (файлы приходят из скрейпера и бывают обрезанными)
func unmarshalRepaired(data []byte, v any) error {
	err := json.Unmarshal(data, v)
	if err == nil {
		return nil
	}
	repaired, repairErr := jsonrepair.JSONRepair(string(data))
	if repairErr != nil {
		return fmt.Errorf("unmarshal error: %w, repair error: %v", err, repairErr)
	}
	return json.Unmarshal([]byte(repaired), v)
}
