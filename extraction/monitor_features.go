package extraction

import (
	"regexp"

	"specfusion/catalog"
)

// MonitorFeatures декларативная таблица извлечения для мониторов:
// каждому каноническому атрибуту сопоставлен шаблон с именованными
// группами и правила вывода. Имена групп несут префикс сортировки,
// определяющий порядок под-полей при форматировании.
//
// Таблица строится один раз при старте процесса и не изменяется.
func MonitorFeatures() []FeatureGroup {
	return []FeatureGroup{
		{
			Name: "EAN",
			Features: []Feature{
				{
					Property: catalog.EAN,
					Kind:     KindPattern,
					Pattern:  regexp.MustCompile(`(\d{12}\d?)`),
				},
			},
		},
		{
			Name: "Diagonale",
			Features: []Feature{
				{
					Property:   catalog.DiagonalInch,
					Kind:       KindPattern,
					Pattern:    regexp.MustCompile(`(\d+[.,]*\d*)\s*("|Zoll)`), // 27 "
					MatchTo:    []string{"1_value", "z_unit"},
					Separators: []string{""},
				},
				{
					Property: catalog.DiagonalCM,
					Kind:     KindPattern,
					Pattern:  regexp.MustCompile(`(\d+[.,]*\d*)\s*(mm|cm|m)`), // 68.6 cm
					MatchTo:  []string{"1_value", "z_unit"},
				},
			},
		},
		{
			Name: "Marke",
			Features: []Feature{
				{Property: catalog.Brand, Kind: KindSynonym},
			},
		},
		{
			Name: "Auflösung",
			Features: []Feature{
				{
					Property:   catalog.Resolution,
					Kind:       KindPattern,
					Pattern:    regexp.MustCompile(`(\d+)[^\d]*[x*]\D*(\d+)`),
					MatchTo:    []string{"1_width", "2_height"},
					Separators: []string{"x"},
				},
				{
					Property:   catalog.AspectRatio,
					Kind:       KindPattern,
					Pattern:    regexp.MustCompile(`(\d+):(\d+)`),
					MatchTo:    []string{"1_width", "2_height"},
					Separators: []string{":"},
				},
			},
		},
		{
			Name: "Helligkeit",
			Features: []Feature{
				{
					Property: catalog.Brightness,
					Kind:     KindPattern,
					Pattern:  regexp.MustCompile(`(\d+)\D*(cd/m²)`),
					MatchTo:  []string{"1_value", "z_unit"},
				},
			},
		},
		{
			Name: "Kontrast",
			Features: []Feature{
				{
					Property:   catalog.Contrast,
					Kind:       KindPattern,
					Pattern:    regexp.MustCompile(`(\d+)\s?:\s?(\d+)`),
					MatchTo:    []string{"1_dividend", "2_divisor"},
					Separators: []string{":"},
				},
			},
		},
		{
			Name: "Reaktionszeit",
			Features: []Feature{
				{
					Property: catalog.ReactionTime,
					Kind:     KindPattern,
					Pattern:  regexp.MustCompile(`(\d+.?\d*)\s*\(?\S*\)?\s*(ms)`), // 0,5 (MPRT) ms
					MatchTo:  []string{"1_value", "z_unit"},
				},
			},
		},
		{
			Name: "Blickwinkel",
			Features: []Feature{
				{
					Property: catalog.ViewingAngleHor,
					Kind:     KindPattern,
					Pattern:  regexp.MustCompile(`(\d+)`),
					MatchTo:  []string{"1_value"},
				},
				{
					Property: catalog.ViewingAngleVer,
					Kind:     KindPattern,
					Pattern:  regexp.MustCompile(`(\d+)`),
					MatchTo:  []string{"1_value"},
				},
			},
		},
		{
			Name: "Panel",
			Features: []Feature{
				{Property: catalog.Panel, Kind: KindSynonym},
			},
		},
		{
			Name: "Form",
			Features: []Feature{
				{Property: catalog.Form, Kind: KindSynonym},
				{
					Property:   catalog.Curvature,
					Kind:       KindPattern,
					Pattern:    regexp.MustCompile(`(\d+)\s?R`),
					MatchTo:    []string{"1_value"},
					Separators: []string{""},
				},
			},
		},
		{
			Name: "Beschichtung",
			Features: []Feature{
				{Property: catalog.Coating, Kind: KindSynonym},
			},
		},
		{
			Name: "HDR",
			Features: []Feature{
				{
					Property: catalog.HDR,
					Kind:     KindPattern,
					Pattern:  regexp.MustCompile(`(HDR)\W*(\d+)`), // HDR 400
					MatchTo:  []string{"1_name", "2_value"},
				},
			},
		},
		{
			Name: "Farbtiefe",
			Features: []Feature{
				{
					Property: catalog.ColorDepth,
					Kind:     KindPattern,
					Pattern:  regexp.MustCompile(`(\d+)\s*(\D*[bB]it)`),
					MatchTo:  []string{"1_value", "z_unit"},
				},
			},
		},
		{
			Name:     "Farbraum",
			Features: colorSpaceFeatures(),
		},
		{
			Name: "Bildwiederholfrequenz",
			Features: []Feature{
				{
					Property: catalog.RefreshRate,
					Kind:     KindPattern,
					Pattern:  regexp.MustCompile(`(\d+)\s?(Hz)`),
					MatchTo:  []string{"1_value", "z_unit"},
				},
			},
		},
		{
			Name: "Variable Synchronisierung",
			Features: []Feature{
				{Property: catalog.VariableSync, Kind: KindListing},
			},
		},
		{
			Name:     "Anschlüsse",
			Features: portFeatures(),
		},
		{
			Name: "Anschlüsse Display Out",
			Features: []Feature{
				{
					Property:   catalog.PortsDisplayOut,
					Kind:       KindPattern,
					Pattern:    regexp.MustCompile(`(\d+)\s?x\s?(DisplayPort-?Out).?(\d.\d)`),
					MatchTo:    []string{"1_count", "2_type", "3_version"},
					Separators: []string{"x ", ""},
				},
			},
		},
		{
			Name: "Weitere Anschlüsse",
			Features: []Feature{
				{
					Property:   catalog.PortsLAN,
					Kind:       KindPattern,
					Pattern:    regexp.MustCompile(`(\d+)\s?x\s?(\w+\s?LAN)`), // 1x Gb LAN (RJ-45)
					MatchTo:    []string{"1_count", "2_type"},
					Separators: []string{"x "},
				},
			},
		},
		{
			Name: "Audio",
			Features: []Feature{
				{
					Property:   catalog.PortsAudio,
					Kind:       KindPattern,
					Pattern:    regexp.MustCompile(`(\d+)\s?x\s?(Line.Out)`),
					MatchTo:    []string{"1_count", "2_type"},
					Separators: []string{"x "},
				},
			},
		},
		{
			Name: "USB-Hub In",
			Features: []Feature{
				{
					Property:   catalog.USBHubInUSBC,
					Kind:       KindPattern,
					Pattern:    regexp.MustCompile(`(\d+)\s?x\s?(USB Typ.C|USB.C)`), // 1x USB Typ C, 2x USB-C
					MatchTo:    []string{"1_count", "2_type"},
					Separators: []string{"x "},
				},
				{
					Property:   catalog.USBHubInUSBB,
					Kind:       KindPattern,
					Pattern:    regexp.MustCompile(`(\d+)\s?x\s?(USB-B) (\d.\d)`),
					MatchTo:    []string{"1_count", "2_type", "3_version"},
					Separators: []string{"x ", " "},
				},
			},
		},
		{
			Name: "USB-Hub Out",
			Features: []Feature{
				{
					Property:   catalog.USBHubOut,
					Kind:       KindPattern,
					Pattern:    regexp.MustCompile(`(\d+)\s?x\s?(USB-?.?).?(\d.\d)`),
					MatchTo:    []string{"1_count", "2_type", "3_version"},
					Separators: []string{"x ", " "},
				},
			},
		},
		{
			Name: "Ergonomie",
			Features: []Feature{
				{
					Property: catalog.ErgonomicsHeightAdjustable,
					Kind:     KindPattern,
					Pattern:  regexp.MustCompile(`(\d+[.,]?\d*)\s?(mm|cm)`),
					MatchTo:  []string{"1_value", "2_unit"},
				},
				{
					Property:   catalog.ErgonomicsPivotAngle,
					Kind:       KindPattern,
					Pattern:    regexp.MustCompile(`([+-]?\d+)\s?-\s?([+-]?\d+)`),
					MatchTo:    []string{"1_value", "2_value"},
					Separators: []string{"/"},
				},
				{
					Property:   catalog.ErgonomicsTiltAngle,
					Kind:       KindPattern,
					Pattern:    regexp.MustCompile(`([+-]?\d+)\s?[-/]\s?([+-]?\d+)`),
					MatchTo:    []string{"1_value", "2_value"},
					Separators: []string{"/"},
				},
			},
		},
		{
			Name: "Farbe",
			Features: []Feature{
				{Property: catalog.Color, Kind: KindListing},
			},
		},
		{
			Name: "Gewicht",
			Features: []Feature{
				{
					Property: catalog.Weight,
					Kind:     KindPattern,
					Pattern:  regexp.MustCompile(`(\d+.?\d*)\s?(kg|g)`),
					MatchTo:  []string{"1_value", "z_unit"},
				},
			},
		},
		{
			Name: "VESA",
			Features: []Feature{
				{
					Property:   catalog.VESA,
					Kind:       KindPattern,
					Pattern:    regexp.MustCompile(`(\d+)\s?x\s?(\d+)`),
					MatchTo:    []string{"1_value", "2_value"},
					Separators: []string{" x "},
				},
			},
		},
		{
			Name: "Energieeffizienzklasse",
			Features: []Feature{
				{
					Property: catalog.EnergyEfficiency,
					Kind:     KindPattern,
					Pattern:  regexp.MustCompile(`[A-G][+]*`),
				},
			},
		},
		{
			Name: "Leistungsaufnahme (SDR)",
			Features: []Feature{
				{
					Property: catalog.PowerConsumptionSDR,
					Kind:     KindPattern,
					Pattern:  regexp.MustCompile(`(\d+[.,]?\d*)\s?(mW|W)`),
					MatchTo:  []string{"1_value", "2_unit"},
				},
			},
		},
		{
			Name: "Leistungsaufnahme (Sleep)",
			Features: []Feature{
				{
					Property: catalog.PowerConsumptionSleep,
					Kind:     KindPattern,
					Pattern:  regexp.MustCompile(`(\d+[.,]?\d*)\s?(mW|W)`),
					MatchTo:  []string{"1_value", "2_unit"},
				},
			},
		},
		{
			Name: "Stromversorgung",
			Features: []Feature{
				{Property: catalog.PowerSupply, Kind: KindSynonym},
			},
		},
		{
			Name: "Abmessungen",
			Features: []Feature{
				{
					Property:   catalog.Dimensions,
					Kind:       KindPattern,
					Pattern:    regexp.MustCompile(`(\d+.?\d*)\D*x\D*(\d+.?\d*)\D*x\D*(\d+.?\d*)\D*(mm|cm)`),
					MatchTo:    []string{"1_width", "2_height", "3_depth", "z_unit"},
					Separators: []string{" x ", " x ", " "},
				},
			},
		},
		{
			Name: "Rahmen",
			Features: []Feature{
				{
					Property: catalog.BezelBottom,
					Kind:     KindPattern,
					Pattern:  regexp.MustCompile(`(\d+.?\d*)\D*(mm|cm)`),
					MatchTo:  []string{"1_width", "z_unit"},
				},
				{
					Property: catalog.BezelSide,
					Kind:     KindPattern,
					Pattern:  regexp.MustCompile(`(\d+.?\d*)\D*(mm|cm)`),
					MatchTo:  []string{"1_width", "z_unit"},
				},
				{
					Property: catalog.BezelTop,
					Kind:     KindPattern,
					Pattern:  regexp.MustCompile(`(\d+.?\d*)\D*(mm|cm)`),
					MatchTo:  []string{"1_width", "z_unit"},
				},
			},
		},
		{
			Name: "Besonderheiten",
			Features: []Feature{
				{Property: catalog.Features, Kind: KindListing},
			},
		},
		{
			Name:     "Kabel im Lieferumfang",
			Features: cableFeatures(),
		},
		{
			Name: "Herstellergarantie",
			Features: []Feature{
				{
					Property: catalog.Warranty,
					Kind:     KindPattern,
					Pattern:  regexp.MustCompile(`(\d+)\s?x?\s?(Jahr|Monate)`),
					MatchTo:  []string{"1_value", "2_unit"},
				},
			},
		},
	}
}

// colorSpaceFeatures строит признаки покрытия цветовых пространств:
// один текст часто перечисляет несколько значений подряд
// ("100% (sRGB), 95% (DCI-P3)"), шаблоны различаются только именем
func colorSpaceFeatures() []Feature {
	spaces := []struct {
		property catalog.Property
		name     string
	}{
		{catalog.ColorSpaceSRGB, `sRGB`},
		{catalog.ColorSpaceARGB, `Adobe RGB`},
		{catalog.ColorSpaceDCIP3, `DCI-P3`},
		{catalog.ColorSpaceREC709, `R.. 709`},
		{catalog.ColorSpaceREC2020, `R.. 2020`},
		{catalog.ColorSpaceNTSC, `NTSC`},
	}
	features := make([]Feature, 0, len(spaces))
	for _, space := range spaces {
		features = append(features, Feature{
			Property:   space.property,
			Kind:       KindPattern,
			Pattern:    regexp.MustCompile(`(\d+)\s?(%) \(?(` + space.name + `)\)?`),
			MatchTo:    []string{"1_value", "2_unit", "z_name"},
			Separators: []string{"", " "},
		})
	}
	return features
}

// portFeatures строит признаки видеовходов: общий шаблон "N x <порт>"
func portFeatures() []Feature {
	ports := []struct {
		property catalog.Property
		pattern  string
	}{
		{catalog.PortsHDMI, `(\d+)\s?x?\s?(HDMI)`},
		{catalog.PortsDP, `(\d+)\s?x?\s?(Display[Pp]ort)`},
		{catalog.PortsMiniDP, `(\d+)\s?x?\s?(Mini Display[Pp]ort)`},
		{catalog.PortsDVI, `(\d+)\s?x?\s?(DVI)`},
		{catalog.PortsVGA, `(\d+)\s?x?\s?(VGA)`},
		{catalog.PortsUSBA, `(\d+)\s?x?\s?(USB-A)`},
		{catalog.PortsUSBC, `(\d+)\s?x?\s?(USB-C)`},
		{catalog.PortsThunderbolt, `(\d+)\s?x?\s?(Thunderbolt)`},
	}
	features := make([]Feature, 0, len(ports))
	for _, port := range ports {
		features = append(features, Feature{
			Property:   port.property,
			Kind:       KindPattern,
			Pattern:    regexp.MustCompile(port.pattern),
			MatchTo:    []string{"1_count", "2_value"},
			Separators: []string{"x "},
		})
	}
	return features
}

// cableFeatures строит признаки кабелей в комплекте поставки
func cableFeatures() []Feature {
	cables := []struct {
		property catalog.Property
		pattern  string
	}{
		{catalog.CablesHDMI, `(\d+)\s?x?\s?(HDMI-Kabel)`},
		{catalog.CablesDP, `(\d+)\s?x?\s?(DisplayPort-Kabel)`},
		{catalog.CablesDVI, `(\d+)\s?x?\s?(DVI-Kabel)`},
		{catalog.CablesVGA, `(\d+)\s?x?\s?(VGA-Kabel)`},
		{catalog.CablesACPower, `(\d+)\s?x?\s?((?:Strom|Netz|AC)-?[Kk]abel)`},
	}
	features := make([]Feature, 0, len(cables))
	for _, cable := range cables {
		features = append(features, Feature{
			Property:   cable.property,
			Kind:       KindPattern,
			Pattern:    regexp.MustCompile(cable.pattern),
			MatchTo:    []string{"1_count", "2_name"},
			Separators: []string{"x "},
		})
	}
	return features
}
