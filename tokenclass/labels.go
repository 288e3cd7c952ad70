package tokenclass

import (
	"log"
	"regexp"
	"sort"
	"strings"

	"specfusion/catalog"
)

// LabeledSpans результат токен-классификации: метка -> распознанный текст
type LabeledSpans map[string]string

// Classifier размечает свободный текст спецификации метками атрибутов
type Classifier interface {
	ClassifyText(text string) (LabeledSpans, error)
}

// portKind описывает распознаваемый моделью вид видеовхода
type portKind struct {
	suffix   string
	property catalog.Property
	name     string
}

// portKinds порядок фиксирован, чтобы лог обработки был детерминированным
var portKinds = []portKind{
	{"hdmi", catalog.PortsHDMI, "HDMI"},
	{"displayport", catalog.PortsDP, "DisplayPort"},
	{"usb-a", catalog.PortsUSBA, "USB-A"},
	{"usb-c", catalog.PortsUSBC, "USB-C"},
}

var digitsPattern = regexp.MustCompile(`\d+`)

// SpecsToText собирает сырые атрибуты в один текст для классификатора.
// Ключи сортируются: одинаковый вход всегда дает одинаковый текст.
func SpecsToText(rawSpecs map[string]string) string {
	keys := make([]string, 0, len(rawSpecs))
	for key := range rawSpecs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(rawSpecs[key])
		b.WriteString("\n")
	}
	return b.String()
}

// ConvertLabelsToSpecs преобразует размеченные спаны в структурированные
// значения видеовходов. На каждый вид порта модель дает метки
// count-<порт>, type-<порт> и version-<порт>; из счетчика берутся только
// цифры, отсутствующий счетчик трактуется как один порт, нулевой счетчик
// отбрасывает порт целиком.
func ConvertLabelsToSpecs(spans LabeledSpans) catalog.Specifications {
	specs := make(catalog.Specifications)
	for _, kind := range portKinds {
		countText, hasCount := spans["count-"+kind.suffix]
		_, hasType := spans["type-"+kind.suffix]
		versionText, hasVersion := spans["version-"+kind.suffix]
		if !hasCount && !hasType && !hasVersion {
			continue
		}

		count := "1"
		if hasCount {
			if digits := digitsPattern.FindString(countText); digits != "" {
				count = digits
			}
		}
		if count == "0" {
			log.Printf("Dismissing port '%s' with zero count", kind.name)
			continue
		}

		value := map[string]any{
			"1_count": count,
			"2_name":  kind.name,
		}
		if hasVersion {
			value["3_version"] = strings.TrimSpace(versionText)
		}
		specs[kind.property] = value
	}
	return specs
}
