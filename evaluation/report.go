package evaluation

import (
	"fmt"
	"sort"
	"strings"

	"specfusion/catalog"
)

// Report накопленный результат оценки корпуса продуктов. Счетчики
// ведутся на трех уровнях: весь корпус, каждый продукт и каждый атрибут
// по всем продуктам.
type Report struct {
	Total        ConfusionMatrix
	PerProduct   map[string]ConfusionMatrix
	PerAttribute map[catalog.Property]ConfusionMatrix
}

// NewReport создает пустой отчет
func NewReport() *Report {
	return &Report{
		PerProduct:   make(map[string]ConfusionMatrix),
		PerAttribute: make(map[catalog.Property]ConfusionMatrix),
	}
}

// AddProduct фиксирует результат сравнения одного продукта: матрица
// продукта складывается из матриц его атрибутов, атрибутные счетчики
// копятся по всему корпусу
func (r *Report) AddProduct(productID string, perAttribute map[catalog.Property]ConfusionMatrix) {
	product := SumMatrices(perAttribute)
	r.PerProduct[productID] = product
	r.Total.Add(product)

	for property, cm := range perAttribute {
		accumulated := r.PerAttribute[property]
		accumulated.Add(cm)
		r.PerAttribute[property] = accumulated
	}
}

// PerfectProducts возвращает отсортированные идентификаторы продуктов,
// извлеченных без единой ошибки
func (r *Report) PerfectProducts() []string {
	var ids []string
	for id, cm := range r.PerProduct {
		if cm.Perfect() {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// Summary форматирует сводку отчета для лога и консоли: матрица каждого
// встреченного атрибута в порядке канонической схемы, затем итоги корпуса
func (r *Report) Summary() string {
	scores := r.Total.EvalScore()
	perfect := len(r.PerfectProducts())

	var b strings.Builder
	fmt.Fprintf(&b, "Evaluated %d products\n", len(r.PerProduct))
	for _, property := range catalog.Properties() {
		cm, ok := r.PerAttribute[property]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "  %-35s TP=%d FP=%d FN=%d\n",
			property, cm.TruePositives, cm.FalsePositives, cm.FalseNegatives)
	}
	fmt.Fprintf(&b, "TP=%d FP=%d FN=%d\n", r.Total.TruePositives, r.Total.FalsePositives, r.Total.FalseNegatives)
	fmt.Fprintf(&b, "Precision=%.4f Recall=%.4f F1=%.4f\n", scores.Precision, scores.Recall, scores.F1)
	fmt.Fprintf(&b, "Perfect products: %d/%d", perfect, len(r.PerProduct))
	return b.String()
}
