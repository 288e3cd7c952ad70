package pipeline

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"specfusion/catalog"
	"specfusion/mapping"
	"specfusion/tokenclass"
)

func testConfig(t *testing.T) *Config {
	t.Helper()
	dir := t.TempDir()
	return &Config{
		RawDataDir:        filepath.Join(dir, "raw"),
		ProcessedDir:      filepath.Join(dir, "processed"),
		FieldMappingsFile: filepath.Join(dir, "field_mappings.json"),
		UnparsedWordsFile: filepath.Join(dir, "unparsed.json"),
		DatabasePath:      filepath.Join(dir, "test.db"),
		MaxOpenConns:      25,
		MaxIdleConns:      5,
	}
}

func writeOffer(t *testing.T, config *Config, index int, product *catalog.RawProduct) {
	t.Helper()
	path := filepath.Join(config.RawDataDir, fmt.Sprintf("offer_%03d_specification.json", index))
	if err := os.MkdirAll(config.RawDataDir, 0755); err != nil {
		t.Fatalf("failed to create raw dir: %v", err)
	}
	if err := product.SaveToJSON(path); err != nil {
		t.Fatalf("failed to write offer fixture: %v", err)
	}
}

func TestLoadRawProducts(t *testing.T) {
	config := testConfig(t)
	writeOffer(t, config, 1, &catalog.RawProduct{Name: "Asus VG27AQ", ShopName: "alternate"})
	writeOffer(t, config, 2, &catalog.RawProduct{Name: "Asus VG27AQ", ShopName: mapping.ReferenceShop})

	processing := NewProcessing(config)
	products, err := processing.LoadRawProducts()
	if err != nil {
		t.Fatalf("LoadRawProducts() error: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("LoadRawProducts() = %d products, want 2", len(products))
	}
	if products[0].ShopName != "alternate" {
		t.Errorf("products must be ordered by filename, got %q first", products[0].ShopName)
	}
}

func TestFindMappings(t *testing.T) {
	config := testConfig(t)
	products := []*catalog.RawProduct{
		{
			Name:     "Asus VG27AQ",
			ShopName: "alternate",
			RawSpecifications: map[string]string{
				"Auflösung":  "2560 x 1440 Pixel", // точное совпадение метки
				"panel type": "IPS",               // совпадение по значению с эталоном
				"Lieferzeit": "3-5 Werktage",      // мусорная метка
			},
		},
		{
			Name:              "Asus VG27AQ",
			ShopName:          mapping.ReferenceShop,
			RawSpecifications: map[string]string{"Auflösung": "2560 x 1440"},
		},
	}

	processing := NewProcessing(config)
	if err := processing.FindMappings(products); err != nil {
		t.Fatalf("FindMappings() error: %v", err)
	}

	mappings := processing.FieldMappings().GetMappingsPerShop("alternate")
	if got := mappings[catalog.Resolution]; got != "Auflösung" {
		t.Errorf("mapping for Resolution = %q, want %q", got, "Auflösung")
	}
	if got := mappings[catalog.Panel]; got != "panel type" {
		t.Errorf("mapping for Panel = %q, want value-based %q", got, "panel type")
	}

	// Маппинги должны пережить перезагрузку с диска
	reloaded := mapping.NewFieldMappings(config.FieldMappingsFile)
	if err := reloaded.LoadFromDisk(); err != nil {
		t.Fatalf("LoadFromDisk() error: %v", err)
	}
	if got := reloaded.GetMappingsPerShop("alternate")[catalog.Resolution]; got != "Auflösung" {
		t.Errorf("persisted mapping for Resolution = %q, want %q", got, "Auflösung")
	}
}

func TestFindMappingsValueScoreAtThreshold(t *testing.T) {
	config := testConfig(t)
	// "IPS X" против эталонного примера "IPS" дает ровно пороговые 75:
	// маппинг фиксируется, сохраняется оценка со штрафом 70
	products := []*catalog.RawProduct{
		{
			Name:              "Asus VG27AQ",
			ShopName:          "alternate",
			RawSpecifications: map[string]string{"display tech": "IPS X"},
		},
	}

	processing := NewProcessing(config)
	if err := processing.FindMappings(products); err != nil {
		t.Fatalf("FindMappings() error: %v", err)
	}

	if got := processing.FieldMappings().GetMappingsPerShop("alternate")[catalog.Panel]; got != "display tech" {
		t.Fatalf("mapping for Panel = %q, want %q (raw score 75 must commit)", got, "display tech")
	}

	// Кандидат с оценкой 71 заменяет сохраненные 70
	processing.FieldMappings().AddMapping("alternate", catalog.Panel, "stronger", 71)
	if got := processing.FieldMappings().GetMappingsPerShop("alternate")[catalog.Panel]; got != "stronger" {
		t.Errorf("mapping after 71-score candidate = %q, want %q (stored score must carry the penalty)", got, "stronger")
	}
}

func TestExtractProperties(t *testing.T) {
	config := testConfig(t)
	processing := NewProcessing(config)
	processing.FieldMappings().AddMapping("alternate", catalog.Resolution, "Auflösung", 100)

	product := &catalog.RawProduct{
		Name:              "Asus VG27AQ",
		ShopName:          "alternate",
		RawSpecifications: map[string]string{"Auflösung": "2560 x 1440"},
	}

	specs := processing.ExtractProperties(product)
	want := map[string]any{"1_width": "2560", "2_height": "1440"}
	if !reflect.DeepEqual(specs[catalog.Resolution], want) {
		t.Errorf("Resolution = %v, want %v", specs[catalog.Resolution], want)
	}
}

func TestExtractPropertiesWithClassifier(t *testing.T) {
	config := testConfig(t)
	processing := NewProcessing(config)

	mock := tokenclass.NewMockClassifier()
	mock.SetResponse("2 x HDMI 2.0", tokenclass.LabeledSpans{
		"count-hdmi": "2",
		"type-hdmi":  "HDMI",
	})
	processing.SetClassifier(mock)

	product := &catalog.RawProduct{
		Name:                  "Asus VG27AQ",
		ShopName:              "alternate",
		RawSpecifications:     map[string]string{"Anschlüsse": "2 x HDMI 2.0"},
		RawSpecificationsText: "2 x HDMI 2.0",
	}

	specs := processing.ExtractProperties(product)
	want := map[string]any{"1_count": "2", "2_name": "HDMI"}
	if !reflect.DeepEqual(specs[catalog.PortsHDMI], want) {
		t.Errorf("PortsHDMI = %v, want classifier enrichment %v", specs[catalog.PortsHDMI], want)
	}
}

func TestExtractPropertiesClassifierFailureDegrades(t *testing.T) {
	config := testConfig(t)
	processing := NewProcessing(config)
	processing.FieldMappings().AddMapping("alternate", catalog.Resolution, "Auflösung", 100)

	mock := tokenclass.NewMockClassifier()
	mock.SetError("broken", errors.New("model unavailable"))
	processing.SetClassifier(mock)

	product := &catalog.RawProduct{
		Name:                  "Asus VG27AQ",
		ShopName:              "alternate",
		RawSpecifications:     map[string]string{"Auflösung": "2560 x 1440"},
		RawSpecificationsText: "broken",
	}

	specs := processing.ExtractProperties(product)
	if _, ok := specs[catalog.Resolution]; !ok {
		t.Error("pattern extraction must survive classifier failure")
	}
}

func TestExtractPropertiesSkipsClassifierForReferenceShop(t *testing.T) {
	config := testConfig(t)
	processing := NewProcessing(config)

	mock := tokenclass.NewMockClassifier()
	processing.SetClassifier(mock)

	product := &catalog.RawProduct{
		Name:              "Asus VG27AQ",
		ShopName:          mapping.ReferenceShop,
		RawSpecifications: map[string]string{"Auflösung": "2560 x 1440"},
	}
	processing.ExtractProperties(product)

	if got := mock.GetCallCount(); got != 0 {
		t.Errorf("classifier called %d times for reference shop, want 0", got)
	}
}

func TestMergeSpecs(t *testing.T) {
	config := testConfig(t)
	products := []*catalog.RawProduct{
		{
			Name:     "Asus VG27AQ",
			ShopName: mapping.ReferenceShop,
			RawSpecifications: map[string]string{
				"Auflösung": "2560 x 1440",
				"Marke":     "ASUS",
			},
			ReferenceFile: "reference_7.json",
		},
		{
			Name:              "Asus VG27AQ",
			ShopName:          "alternate",
			RawSpecifications: map[string]string{"Auflösung": "1920 x 1080"},
			ReferenceFile:     "reference_7.json",
		},
		{
			Name:              "Acer Nitro",
			ShopName:          mapping.ReferenceShop,
			RawSpecifications: map[string]string{"Marke": "Acer"},
			ReferenceFile:     "reference_9.json",
		},
	}

	processing := NewProcessing(config)
	if err := processing.FindMappings(products); err != nil {
		t.Fatalf("FindMappings() error: %v", err)
	}

	stats, err := processing.MergeSpecs(products)
	if err != nil {
		t.Fatalf("MergeSpecs() error: %v", err)
	}
	if stats.TotalProducts != 2 {
		t.Fatalf("TotalProducts = %d, want 2", stats.TotalProducts)
	}
	if stats.TotalFailures != 0 {
		t.Errorf("TotalFailures = %d, want 0", stats.TotalFailures)
	}

	merged, err := catalog.LoadCatalogProduct(config.CatalogPath("7"))
	if err != nil {
		t.Fatalf("LoadCatalogProduct(7) error: %v", err)
	}
	// Эталонный магазин богаче, его разрешение побеждает при конфликте
	wantResolution := map[string]any{"1_width": "2560", "2_height": "1440"}
	if !reflect.DeepEqual(merged.Specifications[catalog.Resolution], wantResolution) {
		t.Errorf("Resolution = %v, want %v", merged.Specifications[catalog.Resolution], wantResolution)
	}
	if merged.Specifications[catalog.Brand] != "ASUS" {
		t.Errorf("Brand = %v, want ASUS", merged.Specifications[catalog.Brand])
	}

	second, err := catalog.LoadCatalogProduct(config.CatalogPath("9"))
	if err != nil {
		t.Fatalf("LoadCatalogProduct(9) error: %v", err)
	}
	if second.Specifications[catalog.Brand] != "Acer" {
		t.Errorf("Brand = %v, want Acer", second.Specifications[catalog.Brand])
	}
}

func TestEvaluate(t *testing.T) {
	config := testConfig(t)
	products := []*catalog.RawProduct{
		{
			Name:     "Asus VG27AQ",
			ShopName: mapping.ReferenceShop,
			RawSpecifications: map[string]string{
				"Auflösung": "2560 x 1440",
				"Marke":     "ASUS",
			},
			ReferenceFile: "reference_7.json",
		},
		{
			Name:              "Acer Nitro",
			ShopName:          mapping.ReferenceShop,
			RawSpecifications: map[string]string{"Marke": "Acer"},
			ReferenceFile:     "reference_9.json",
		},
		{
			// Эталон без слитой записи должен быть пропущен
			Name:              "Dell U2722D",
			ShopName:          mapping.ReferenceShop,
			RawSpecifications: map[string]string{"Marke": "Dell"},
			ReferenceFile:     "reference_11.json",
		},
	}

	processing := NewProcessing(config)
	if err := processing.FindMappings(products); err != nil {
		t.Fatalf("FindMappings() error: %v", err)
	}
	if _, err := processing.MergeSpecs(products[:2]); err != nil {
		t.Fatalf("MergeSpecs() error: %v", err)
	}

	report, err := processing.Evaluate(products)
	if err != nil {
		t.Fatalf("Evaluate() error: %v", err)
	}

	if len(report.PerProduct) != 2 {
		t.Fatalf("evaluated %d products, want 2", len(report.PerProduct))
	}
	if report.Total.TruePositives != 3 || report.Total.FalsePositives != 0 || report.Total.FalseNegatives != 0 {
		t.Errorf("Total = %+v, want TP=3 FP=0 FN=0", report.Total)
	}
	if got := report.PerAttribute[catalog.Brand].TruePositives; got != 2 {
		t.Errorf("PerAttribute[Brand].TruePositives = %d, want 2", got)
	}
	perfect := report.PerfectProducts()
	if len(perfect) != 2 {
		t.Errorf("PerfectProducts() = %v, want both products", perfect)
	}
}
