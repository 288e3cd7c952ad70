package catalog

// Example эталонные значения атрибутов в том виде, в котором они
// встречаются на страницах магазинов. Используются для автоматического
// поиска маппингов по значению: текст продавца сравнивается с эталоном
// нечетким сопоставлением.
var Example = map[Property]string{
	EAN:                        "4710886422812",
	DiagonalInch:               `27 "`,
	DiagonalCM:                 "68.6 cm",
	Brand:                      "Acer",
	Resolution:                 "2560x1440",
	Brightness:                 "250 cd/m²",
	Contrast:                   "1000:1",
	ReactionTime:               "5 ms",
	ViewingAngleHor:            "178",
	ViewingAngleVer:            "178",
	Panel:                      "IPS",
	Form:                       "gerade",
	Curvature:                  "1500R",
	Coating:                    "matt",
	HDR:                        "HDR10",
	AspectRatio:                "16:9",
	ColorDepth:                 "8 bit",
	ColorSpaceSRGB:             "100% (sRGB)",
	ColorSpaceARGB:             "100% (Adobe RGB)",
	ColorSpaceDCIP3:            "100% (DCI-P3)",
	ColorSpaceREC709:           "100% (Rec 709)",
	ColorSpaceREC2020:          "100% (Rec 2020)",
	ColorSpaceNTSC:             "72% (NTSC)",
	RefreshRate:                "144 Hz",
	VariableSync:               "AMD FreeSync",
	PortsHDMI:                  "2 x HDMI",
	PortsDP:                    "1x DisplayPort",
	PortsMiniDP:                "1x Mini DisplayPort",
	PortsDVI:                   "1x DVI",
	PortsVGA:                   "1x VGA",
	PortsUSBC:                  "1x USB-C",
	PortsThunderbolt:           "1x Thunderbolt",
	PortsUSBA:                  "2x USB-A",
	PortsDisplayOut:            " 1x DisplayPort-Out 1.2 (Daisy Chain)",
	PortsLAN:                   "1x Gb LAN (RJ-45)",
	PortsAudio:                 "1x Line-Out",
	USBHubInUSBC:               "1x USB Typ C",
	USBHubInUSBB:               "1x USB-B 3.0",
	USBHubOut:                  "1x USB-C 3.0,  2x USB-A 3.0,  1x USB-A 3.0 (Schnellladefunktion USB BC 1.2)",
	ErgonomicsHeightAdjustable: "15 cm",
	ErgonomicsTiltAngle:        "5 - 22°",
	ErgonomicsPivotAngle:       "90 - -90°",
	Color:                      "schwarz",
	VESA:                       "100 x 100 mm",
	Weight:                     "10.00 kg",
	Features:                   "Power Delivery",
	PowerConsumptionSDR:        "20 Watt",
	PowerConsumptionSleep:      "0.5 Watt",
	PowerSupply:                "AC-In (internes Netzteil)",
	EnergyEfficiency:           "E",
	Dimensions:                 "53.3 cm x 20.7 cm x 39 cm",
	CablesHDMI:                 "1x HDMI-Kabel",
	CablesDP:                   "1x DisplayPort-Kabel",
	CablesDVI:                  "1x DVI-Kabel",
	CablesVGA:                  "1x VGA-Kabel",
	CablesACPower:              "1x Strom-Kabel",
	Warranty:                   "2 Jahre",
}
