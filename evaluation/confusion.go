package evaluation

import (
	"reflect"

	"specfusion/catalog"
)

// ConfusionMatrix накопитель исходов сравнения атрибутов кандидата
// с эталоном
type ConfusionMatrix struct {
	TruePositives  int
	FalsePositives int
	FalseNegatives int
}

// Add прибавляет счетчики другой матрицы
func (cm *ConfusionMatrix) Add(other ConfusionMatrix) {
	cm.TruePositives += other.TruePositives
	cm.FalsePositives += other.FalsePositives
	cm.FalseNegatives += other.FalseNegatives
}

// EvaluationScores метрики качества, рассчитанные из матрицы ошибок
type EvaluationScores struct {
	Precision float64
	Recall    float64
	F1        float64
}

// EvalScore рассчитывает точность, полноту и F1. Нулевой знаменатель
// дает нулевую метрику, а не панику.
func (cm *ConfusionMatrix) EvalScore() EvaluationScores {
	var scores EvaluationScores
	if denom := cm.TruePositives + cm.FalsePositives; denom > 0 {
		scores.Precision = float64(cm.TruePositives) / float64(denom)
	}
	if denom := cm.TruePositives + cm.FalseNegatives; denom > 0 {
		scores.Recall = float64(cm.TruePositives) / float64(denom)
	}
	if scores.Precision+scores.Recall > 0 {
		scores.F1 = 2 * scores.Precision * scores.Recall / (scores.Precision + scores.Recall)
	}
	return scores
}

// Perfect истинно, когда среди извлеченных атрибутов нет ни одного
// неверного и есть хотя бы одно совпадение с эталоном
func (cm *ConfusionMatrix) Perfect() bool {
	return cm.FalsePositives == 0 && cm.TruePositives > 0
}

// CompareSpecifications сравнивает спецификации кандидата с эталонными
// и возвращает матрицу ошибок каждого атрибута из объединения ключей.
// Атрибут только у эталона дает пропуск (FN), только у кандидата
// лишнее извлечение (FP), совпадение значений TP, расхождение
// одновременно FP и FN.
func CompareSpecifications(reference, candidate catalog.Specifications) map[catalog.Property]ConfusionMatrix {
	result := make(map[catalog.Property]ConfusionMatrix)
	for property, refValue := range reference {
		var cm ConfusionMatrix
		candValue, ok := candidate[property]
		switch {
		case !ok:
			cm.FalseNegatives++
		case reflect.DeepEqual(refValue, candValue):
			cm.TruePositives++
		default:
			cm.FalsePositives++
			cm.FalseNegatives++
		}
		result[property] = cm
	}
	for property := range candidate {
		if _, ok := reference[property]; !ok {
			result[property] = ConfusionMatrix{FalsePositives: 1}
		}
	}
	return result
}

// SumMatrices складывает матрицы отдельных атрибутов в матрицу продукта
func SumMatrices(perAttribute map[catalog.Property]ConfusionMatrix) ConfusionMatrix {
	var total ConfusionMatrix
	for _, cm := range perAttribute {
		total.Add(cm)
	}
	return total
}
