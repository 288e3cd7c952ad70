package catalog

// Property канонический атрибут спецификации монитора.
// Значение: человекочитаемая немецкая метка, она же ключ в JSON-файлах
// каталога и в файлах маппингов. Набор закрыт: новый атрибут требует
// одновременного добавления константы и записи в таблицу признаков.
type Property string

const (
	EAN                        Property = "EAN"
	DiagonalInch               Property = "Bilddiagonale (Zoll)"
	DiagonalCM                 Property = "Bilddiagonale (cm)"
	Brand                      Property = "Marke"
	Resolution                 Property = "Auflösung"
	Brightness                 Property = "Helligkeit"
	Contrast                   Property = "Kontrast"
	ReactionTime               Property = "Reaktionszeit"
	ViewingAngleHor            Property = "Blickwinkel horizontal"
	ViewingAngleVer            Property = "Blickwinkel vertikal"
	Panel                      Property = "Panel"
	Form                       Property = "Form"
	Curvature                  Property = "Krümmung"
	Coating                    Property = "Beschichtung"
	HDR                        Property = "HDR"
	AspectRatio                Property = "Seitenverhältnis"
	ColorDepth                 Property = "Farbtiefe"
	ColorSpaceSRGB             Property = "Farbraum sRGB"
	ColorSpaceDCIP3            Property = "Farbraum DCI-P3"
	ColorSpaceARGB             Property = "Farbraum Adobe RGB"
	ColorSpaceREC709           Property = "Farbraum REC 709"
	ColorSpaceREC2020          Property = "Farbraum REC 2020"
	ColorSpaceNTSC             Property = "Farbraum NTSC"
	RefreshRate                Property = "Bildwiederholfrequenz"
	VariableSync               Property = "Variable Synchronisierung"
	PortsHDMI                  Property = "Anschlüsse HDMI"
	PortsDP                    Property = "Anschlüsse DisplayPort"
	PortsMiniDP                Property = "Anschlüsse Mini DisplayPort"
	PortsDVI                   Property = "Anschlüsse DVI"
	PortsVGA                   Property = "Anschlüsse VGA"
	PortsDisplayOut            Property = "Ausgänge Display"
	PortsUSBC                  Property = "Anschlüsse USB-C"
	PortsUSBA                  Property = "Anschlüsse USB-A"
	PortsThunderbolt           Property = "Thunderbolt"
	PortsAudio                 Property = "Anschlüsse Klinke"
	PortsLAN                   Property = "Anschlüsse LAN"
	USBHubOut                  Property = "USB-Hub Ausgang"
	USBHubInUSBC               Property = "USB-Hub Eingänge USB-C"
	USBHubInUSBB               Property = "USB-Hub Eingänge USB-B"
	ErgonomicsHeightAdjustable Property = "Höhenverstellbar"
	ErgonomicsTiltAngle        Property = "Neigungswinkelbereich"
	ErgonomicsPivotAngle       Property = "Schwenkwinkelbereich"
	Color                      Property = "Farbe"
	VESA                       Property = "VESA"
	PowerConsumptionSDR        Property = "Leistungsaufnahme (SDR)"
	PowerConsumptionSleep      Property = "Leistungsaufnahme (Sleep)"
	PowerSupply                Property = "Stromversorgung"
	EnergyEfficiency           Property = "Energieeffizienzklasse"
	Weight                     Property = "Gewicht"
	Dimensions                 Property = "Abmessungen"
	BezelTop                   Property = "Rahmenstärke oben"
	BezelSide                  Property = "Rahmenstärke seitlich"
	BezelBottom                Property = "Rahmenstärke unten"
	Features                   Property = "Besonderheiten"
	CablesHDMI                 Property = "Kabel HDMI"
	CablesDP                   Property = "Kabel DisplayPort"
	CablesDVI                  Property = "Kabel DVI"
	CablesVGA                  Property = "Kabel VGA"
	CablesACPower              Property = "Kabel Strom"
	Warranty                   Property = "Herstellergarantie"
)

// allProperties фиксированный порядок объявления схемы
var allProperties = []Property{
	EAN,
	DiagonalInch,
	DiagonalCM,
	Brand,
	Resolution,
	Brightness,
	Contrast,
	ReactionTime,
	ViewingAngleHor,
	ViewingAngleVer,
	Panel,
	Form,
	Curvature,
	Coating,
	HDR,
	AspectRatio,
	ColorDepth,
	ColorSpaceSRGB,
	ColorSpaceDCIP3,
	ColorSpaceARGB,
	ColorSpaceREC709,
	ColorSpaceREC2020,
	ColorSpaceNTSC,
	RefreshRate,
	VariableSync,
	PortsHDMI,
	PortsDP,
	PortsMiniDP,
	PortsDVI,
	PortsVGA,
	PortsDisplayOut,
	PortsUSBC,
	PortsUSBA,
	PortsThunderbolt,
	PortsAudio,
	PortsLAN,
	USBHubOut,
	USBHubInUSBC,
	USBHubInUSBB,
	ErgonomicsHeightAdjustable,
	ErgonomicsTiltAngle,
	ErgonomicsPivotAngle,
	Color,
	VESA,
	PowerConsumptionSDR,
	PowerConsumptionSleep,
	PowerSupply,
	EnergyEfficiency,
	Weight,
	Dimensions,
	BezelTop,
	BezelSide,
	BezelBottom,
	Features,
	CablesHDMI,
	CablesDP,
	CablesDVI,
	CablesVGA,
	CablesACPower,
	Warranty,
}

// Properties возвращает копию списка всех канонических атрибутов
// в порядке объявления схемы
func Properties() []Property {
	out := make([]Property, len(allProperties))
	copy(out, allProperties)
	return out
}

// PropertyLabels возвращает метки всех атрибутов как строки
func PropertyLabels() []string {
	out := make([]string, len(allProperties))
	for i, p := range allProperties {
		out[i] = string(p)
	}
	return out
}

// IsProperty проверяет, что метка принадлежит канонической схеме
func IsProperty(label string) bool {
	for _, p := range allProperties {
		if string(p) == label {
			return true
		}
	}
	return false
}

func (p Property) String() string {
	return string(p)
}
