package catalog

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestProductIDFromFilename(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
		wantErr  bool
	}{
		{"эталонный файл", "reference_17.json", "17", false},
		{"файл с путем", "data/raw/reference_5.json", "5", false},
		{"без идентификатора", "reference.json", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ProductIDFromFilename(tt.filename)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ProductIDFromFilename(%q) error = %v, wantErr %v", tt.filename, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ProductIDFromFilename(%q) = %q, want %q", tt.filename, got, tt.want)
			}
		})
	}
}

func TestCatalogFilename(t *testing.T) {
	if got := CatalogFilename("17"); got != "product_17_catalog.json" {
		t.Errorf("CatalogFilename(17) = %q", got)
	}
}

func TestCatalogProductRoundTrip(t *testing.T) {
	product := &CatalogProduct{
		Name: "Asus VG27AQ",
		ID:   "17",
		Specifications: Specifications{
			Brand:        "ASUS",
			Resolution:   map[string]any{"1_width": "2560", "2_height": "1440"},
			VariableSync: []any{"AMD FreeSync", "NVIDIA G-Sync"},
		},
	}

	path := filepath.Join(t.TempDir(), CatalogFilename(product.ID))
	if err := product.SaveToJSON(path); err != nil {
		t.Fatalf("SaveToJSON() error: %v", err)
	}

	loaded, err := LoadCatalogProduct(path)
	if err != nil {
		t.Fatalf("LoadCatalogProduct() error: %v", err)
	}
	if !reflect.DeepEqual(loaded, product) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", loaded, product)
	}
}

func TestLoadRawProductRepairsBrokenJSON(t *testing.T) {
	// Скрейпер иногда пишет JSON с висячей запятой
	broken := `{
		"name": "Asus VG27AQ",
		"shop_name": "alternate",
		"reference_file": "reference_17.json",
	}`
	path := filepath.Join(t.TempDir(), "offer_1_specification.json")
	if err := os.WriteFile(path, []byte(broken), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	product, err := LoadRawProduct(path)
	if err != nil {
		t.Fatalf("LoadRawProduct() error: %v", err)
	}
	if product.Name != "Asus VG27AQ" || product.ShopName != "alternate" {
		t.Errorf("LoadRawProduct() = %+v, fields not restored", product)
	}
}

func TestExampleCoversSchema(t *testing.T) {
	for property := range Example {
		if !IsProperty(string(property)) {
			t.Errorf("Example contains unknown property %q", property)
		}
	}
	if len(Example) < len(allProperties)*9/10 {
		t.Errorf("Example covers %d of %d properties", len(Example), len(allProperties))
	}
}

func TestIsProperty(t *testing.T) {
	if !IsProperty("Auflösung") {
		t.Error("IsProperty(Auflösung) = false")
	}
	if IsProperty("Unbekannt") {
		t.Error("IsProperty(Unbekannt) = true")
	}
}
