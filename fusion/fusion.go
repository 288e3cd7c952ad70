package fusion

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"

	"specfusion/catalog"
)

// Fuse объединяет спецификации одного продукта от нескольких магазинов
// в одну запись. Магазины складываются по возрастанию числа атрибутов,
// поэтому при конфликте побеждает самый богатый источник; затем
// большинство голосов перебивает одиночное значение, если оно не беднее
// текущего. Результат не зависит от порядка ключей на входе.
func Fuse(specsPerShop map[string]catalog.Specifications) catalog.Specifications {
	ordered := orderedShops(specsPerShop)

	fused := make(catalog.Specifications)
	for _, shop := range ordered {
		for property, value := range specsPerShop[shop] {
			fused[property] = value
		}
	}

	applyMajorityVote(fused, specsPerShop)
	return fused
}

// orderedShops сортирует магазины по возрастанию числа атрибутов,
// при равенстве по имени, чтобы результат был детерминированным
func orderedShops(specsPerShop map[string]catalog.Specifications) []string {
	shops := make([]string, 0, len(specsPerShop))
	for shop := range specsPerShop {
		shops = append(shops, shop)
	}
	sort.Slice(shops, func(i, j int) bool {
		li, lj := len(specsPerShop[shops[i]]), len(specsPerShop[shops[j]])
		if li != lj {
			return li < lj
		}
		return shops[i] < shops[j]
	})
	return shops
}

// vote подсчет голосов за одно конкретное значение
type vote struct {
	value catalog.Value
	count int
}

// applyMajorityVote перебивает значение из самого богатого источника
// значением строгого большинства магазинов. Атрибуты, представленные
// одним магазином, не трогаются. Большинство-словарь не заменяет
// текущее значение большего размера: богатое значение не деградирует
// до усеченного популярного.
func applyMajorityVote(fused catalog.Specifications, specsPerShop map[string]catalog.Specifications) {
	for property, current := range fused {
		votes := make(map[string]*vote)
		total := 0
		for _, specs := range specsPerShop {
			value, ok := specs[property]
			if !ok {
				continue
			}
			total++
			key := voteKey(value)
			if v, seen := votes[key]; seen {
				v.count++
			} else {
				votes[key] = &vote{value: value, count: 1}
			}
		}
		if total < 2 {
			continue
		}

		limit := total/2 + 1
		for _, v := range votes {
			if v.count < limit {
				continue
			}
			if reflect.DeepEqual(v.value, current) {
				break
			}
			if majority, ok := v.value.(map[string]any); ok && sizeOf(current) > len(majority) {
				break
			}
			fused[property] = v.value
			break
		}
	}
}

// voteKey приводит значение к хешируемому виду для подсчета голосов.
// JSON-кодирование сортирует ключи словарей, поэтому равные значения
// всегда дают один ключ.
func voteKey(value catalog.Value) string {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%#v", value)
	}
	return string(data)
}

// sizeOf возвращает размер значения: число полей словаря, элементов
// списка или рун строки
func sizeOf(value catalog.Value) int {
	switch v := value.(type) {
	case map[string]any:
		return len(v)
	case []any:
		return len(v)
	case string:
		return len([]rune(v))
	}
	return 1
}
