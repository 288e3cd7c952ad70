package evaluation

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"specfusion/catalog"
)

func TestCompareSpecifications(t *testing.T) {
	tests := []struct {
		name      string
		reference catalog.Specifications
		candidate catalog.Specifications
		want      map[catalog.Property]ConfusionMatrix
		wantTotal ConfusionMatrix
	}{
		{
			name:      "полное совпадение",
			reference: catalog.Specifications{catalog.Brand: "Asus", catalog.Panel: "IPS"},
			candidate: catalog.Specifications{catalog.Brand: "Asus", catalog.Panel: "IPS"},
			want: map[catalog.Property]ConfusionMatrix{
				catalog.Brand: {TruePositives: 1},
				catalog.Panel: {TruePositives: 1},
			},
			wantTotal: ConfusionMatrix{TruePositives: 2},
		},
		{
			name:      "атрибут только у эталона",
			reference: catalog.Specifications{catalog.Brand: "Asus", catalog.Panel: "IPS"},
			candidate: catalog.Specifications{catalog.Brand: "Asus"},
			want: map[catalog.Property]ConfusionMatrix{
				catalog.Brand: {TruePositives: 1},
				catalog.Panel: {FalseNegatives: 1},
			},
			wantTotal: ConfusionMatrix{TruePositives: 1, FalseNegatives: 1},
		},
		{
			name:      "атрибут только у кандидата",
			reference: catalog.Specifications{catalog.Brand: "Asus"},
			candidate: catalog.Specifications{catalog.Brand: "Asus", catalog.Panel: "IPS"},
			want: map[catalog.Property]ConfusionMatrix{
				catalog.Brand: {TruePositives: 1},
				catalog.Panel: {FalsePositives: 1},
			},
			wantTotal: ConfusionMatrix{TruePositives: 1, FalsePositives: 1},
		},
		{
			name:      "расхождение значений считается дважды",
			reference: catalog.Specifications{catalog.Brand: "Asus"},
			candidate: catalog.Specifications{catalog.Brand: "Acer"},
			want: map[catalog.Property]ConfusionMatrix{
				catalog.Brand: {FalsePositives: 1, FalseNegatives: 1},
			},
			wantTotal: ConfusionMatrix{FalsePositives: 1, FalseNegatives: 1},
		},
		{
			name: "структурированные значения сравниваются глубоко",
			reference: catalog.Specifications{
				catalog.Resolution: map[string]any{"1_width": "2560", "2_height": "1440"},
			},
			candidate: catalog.Specifications{
				catalog.Resolution: map[string]any{"1_width": "2560", "2_height": "1440"},
			},
			want: map[catalog.Property]ConfusionMatrix{
				catalog.Resolution: {TruePositives: 1},
			},
			wantTotal: ConfusionMatrix{TruePositives: 1},
		},
		{
			name:      "обе пустые",
			reference: catalog.Specifications{},
			candidate: catalog.Specifications{},
			want:      map[catalog.Property]ConfusionMatrix{},
			wantTotal: ConfusionMatrix{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompareSpecifications(tt.reference, tt.candidate)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("CompareSpecifications() = %+v, want %+v", got, tt.want)
			}
			if total := SumMatrices(got); total != tt.wantTotal {
				t.Errorf("SumMatrices() = %+v, want %+v", total, tt.wantTotal)
			}
		})
	}
}

func TestEvalScore(t *testing.T) {
	tests := []struct {
		name          string
		cm            ConfusionMatrix
		wantPrecision float64
		wantRecall    float64
		wantF1        float64
	}{
		{"идеальное извлечение", ConfusionMatrix{TruePositives: 4}, 1, 1, 1},
		{"смешанный результат", ConfusionMatrix{TruePositives: 2, FalsePositives: 1}, 2.0 / 3.0, 1, 0.8},
		{"пустая матрица", ConfusionMatrix{}, 0, 0, 0},
		{"только ошибки", ConfusionMatrix{FalsePositives: 3, FalseNegatives: 2}, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scores := tt.cm.EvalScore()
			if !almostEqual(scores.Precision, tt.wantPrecision) {
				t.Errorf("Precision = %v, want %v", scores.Precision, tt.wantPrecision)
			}
			if !almostEqual(scores.Recall, tt.wantRecall) {
				t.Errorf("Recall = %v, want %v", scores.Recall, tt.wantRecall)
			}
			if !almostEqual(scores.F1, tt.wantF1) {
				t.Errorf("F1 = %v, want %v", scores.F1, tt.wantF1)
			}
		})
	}
}

func TestConfusionMatrixAdd(t *testing.T) {
	cm := ConfusionMatrix{TruePositives: 1, FalsePositives: 2, FalseNegatives: 3}
	cm.Add(ConfusionMatrix{TruePositives: 4, FalsePositives: 5, FalseNegatives: 6})

	want := ConfusionMatrix{TruePositives: 5, FalsePositives: 7, FalseNegatives: 9}
	if cm != want {
		t.Errorf("Add() = %+v, want %+v", cm, want)
	}
}

func TestPerfect(t *testing.T) {
	tests := []struct {
		name string
		cm   ConfusionMatrix
		want bool
	}{
		{"без ошибок", ConfusionMatrix{TruePositives: 3}, true},
		{"пропуски не мешают", ConfusionMatrix{TruePositives: 3, FalseNegatives: 2}, true},
		{"есть лишние атрибуты", ConfusionMatrix{TruePositives: 3, FalsePositives: 1}, false},
		{"ничего не извлечено", ConfusionMatrix{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cm.Perfect(); got != tt.want {
				t.Errorf("Perfect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReport(t *testing.T) {
	report := NewReport()
	report.AddProduct("7", map[catalog.Property]ConfusionMatrix{
		catalog.Brand:      {TruePositives: 1},
		catalog.Panel:      {TruePositives: 1},
		catalog.Resolution: {TruePositives: 1},
	})
	report.AddProduct("12", map[catalog.Property]ConfusionMatrix{
		catalog.Brand:      {TruePositives: 1},
		catalog.Panel:      {TruePositives: 1},
		catalog.Resolution: {FalsePositives: 1},
	})
	report.AddProduct("3", map[catalog.Property]ConfusionMatrix{
		catalog.Brand: {TruePositives: 1},
		catalog.Panel: {FalseNegatives: 1},
	})

	want := ConfusionMatrix{TruePositives: 6, FalsePositives: 1, FalseNegatives: 1}
	if report.Total != want {
		t.Errorf("Total = %+v, want %+v", report.Total, want)
	}

	// Атрибутные счетчики копятся по всем продуктам
	if got := report.PerAttribute[catalog.Brand]; got != (ConfusionMatrix{TruePositives: 3}) {
		t.Errorf("PerAttribute[Brand] = %+v, want 3 TP", got)
	}
	if got := report.PerAttribute[catalog.Resolution]; got != (ConfusionMatrix{TruePositives: 1, FalsePositives: 1}) {
		t.Errorf("PerAttribute[Resolution] = %+v, want TP=1 FP=1", got)
	}

	perfect := report.PerfectProducts()
	if len(perfect) != 2 || perfect[0] != "3" || perfect[1] != "7" {
		t.Errorf("PerfectProducts() = %v, want [3 7]", perfect)
	}
}

func TestReportSummaryListsAttributes(t *testing.T) {
	report := NewReport()
	report.AddProduct("7", map[catalog.Property]ConfusionMatrix{
		catalog.Resolution: {TruePositives: 1},
		catalog.Panel:      {FalsePositives: 1, FalseNegatives: 1},
	})

	summary := report.Summary()
	if !strings.Contains(summary, string(catalog.Resolution)) {
		t.Errorf("Summary() = %q, want per-attribute line for %q", summary, catalog.Resolution)
	}
	if !strings.Contains(summary, string(catalog.Panel)) {
		t.Errorf("Summary() = %q, want per-attribute line for %q", summary, catalog.Panel)
	}
	// Атрибуты идут в порядке канонической схемы
	if strings.Index(summary, string(catalog.Resolution)) > strings.Index(summary, string(catalog.Panel)) {
		t.Errorf("Summary() = %q, attributes must follow schema order", summary)
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
