package forecast

// Forecast codes are ordered by severity: 0 is the most settled outlook,
// 26 the stormiest.
const (
	MinForecastCode = 0
	MaxForecastCode = 26
)

// descriptions holds the textual outlook for each forecast code.
var descriptions = [MaxForecastCode + 1]string{
	"Settled fine",
	"Fine weather",
	"Becoming fine",
	"Fine, becoming less settled",
	"Fine, possible showers",
	"Fairly fine, improving",
	"Fairly fine, possible showers early",
	"Fairly fine, showery later",
	"Showery early, improving",
	"Changeable, mending",
	"Fairly fine, showers likely",
	"Rather unsettled, clearing later",
	"Unsettled, probably improving",
	"Showery, bright intervals",
	"Showery, becoming less settled",
	"Changeable, some rain",
	"Unsettled, short fine intervals",
	"Unsettled, rain later",
	"Unsettled, some rain",
	"Mostly very unsettled",
	"Occasional rain, worsening",
	"Rain at times, very unsettled",
	"Rain at frequent intervals",
	"Rain, very unsettled",
	"Stormy, may improve",
	"Stormy, much rain",
	"Severe storm, much rain",
}

// Describe returns the textual outlook for a forecast code.
func Describe(code int) string {
	return descriptions[clampCode(code)]
}

// clampCode keeps a derived forecast index inside [MinForecastCode, MaxForecastCode].
// This guards derived intermediates only; user-supplied inputs are validated,
// never clamped.
func clampCode(code int) int {
	if code < MinForecastCode {
		return MinForecastCode
	}
	if code > MaxForecastCode {
		return MaxForecastCode
	}
	return code
}

// ConditionCategory is the coarse banding of a forecast code.
type ConditionCategory string

const (
	CategoryClear        ConditionCategory = "clear"
	CategoryPartlyCloudy ConditionCategory = "partly_cloudy"
	CategoryCloudy       ConditionCategory = "cloudy"
	CategoryRainy        ConditionCategory = "rainy"
	CategoryStormy       ConditionCategory = "stormy"
)

// Categorize maps a forecast code to its condition category.
func Categorize(code int) ConditionCategory {
	switch c := clampCode(code); {
	case c <= 4:
		return CategoryClear
	case c <= 10:
		return CategoryPartlyCloudy
	case c <= 17:
		return CategoryCloudy
	case c <= 22:
		return CategoryRainy
	default:
		return CategoryStormy
	}
}

// SeverityRank orders categories from driest (0) to wettest (4).
func (c ConditionCategory) SeverityRank() int {
	switch c {
	case CategoryClear:
		return 0
	case CategoryPartlyCloudy:
		return 1
	case CategoryCloudy:
		return 2
	case CategoryRainy:
		return 3
	case CategoryStormy:
		return 4
	default:
		return -1
	}
}
