package mapping

import (
	"math"
	"strings"
)

// Ratio рассчитывает схожесть двух строк в диапазоне 0..100 на основе
// взвешенного расстояния Левенштейна (замена стоит как удаление плюс
// вставка). Идентичные строки дают 100, полностью разные 0.
func Ratio(s1, s2 string) int {
	r1, r2 := []rune(s1), []rune(s2)
	lensum := len(r1) + len(r2)
	if lensum == 0 {
		return 100
	}
	distance := weightedLevenshtein(r1, r2)
	return int(math.Round(100 * float64(lensum-distance) / float64(lensum)))
}

// weightedLevenshtein рассчитывает расстояние Левенштейна со стоимостью
// замены 2 (эквивалентно числу вставок и удалений в оптимальном выравнивании)
func weightedLevenshtein(r1, r2 []rune) int {
	column := make([]int, len(r1)+1)

	for y := 1; y <= len(r1); y++ {
		column[y] = y
	}

	for x := 1; x <= len(r2); x++ {
		column[0] = x
		lastDiag := x - 1
		for y := 1; y <= len(r1); y++ {
			oldDiag := column[y]
			cost := 0
			if r1[y-1] != r2[x-1] {
				cost = 2
			}
			column[y] = min3(column[y]+1, column[y-1]+1, lastDiag+cost)
			lastDiag = oldDiag
		}
	}

	return column[len(r1)]
}

// RateMapping оценивает соответствие текста продавца каноническому
// значению. Берется максимум из оценки полного текста и оценок отдельных
// сегментов через запятую: продавцы часто перечисляют несколько фактов
// в одном поле.
func RateMapping(merchantValue, catalogValue string) int {
	maxScore := Ratio(merchantValue, catalogValue)
	for _, segment := range strings.Split(merchantValue, ",") {
		if score := Ratio(segment, catalogValue); score > maxScore {
			maxScore = score
		}
	}
	return maxScore
}

// min3 возвращает минимальное из трех чисел
func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
