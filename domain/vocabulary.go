package domain

import "slices"

// Vocabulary is the fixed option set of an enumerated tasting field.
type Vocabulary struct {
	Options []string
	Default string
	// Aliases maps accepted spellings onto an option.
	Aliases map[string]string
}

var (
	levelScale = []string{"Low", "Medium-", "Medium", "Medium+", "High"}
	lightScale = []string{"Light", "Medium", "Pronounced"}
)

// Vocabularies is keyed by the JSON name of the field.
var Vocabularies = map[string]Vocabulary{
	"clarity":   {Options: []string{"Clear", "Hazy", "Cloudy"}, Default: "Clear"},
	"intensity": {Options: []string{"Pale", "Medium", "Deep"}, Default: "Medium"},

	"condition":     {Options: []string{"Clean", "Unclean"}, Default: "Clean"},
	"noseIntensity": {Options: lightScale, Default: "Medium"},

	"sweetness": {
		Options: []string{"Dry", "Off-dry", "Medium-dry", "Medium-sweet", "Sweet", "Luscious"},
		Default: "Dry",
	},
	"acidity":         {Options: levelScale, Default: "Medium"},
	"tannin":          {Options: levelScale, Default: "Medium"},
	"alcohol":         {Options: levelScale, Default: "Medium"},
	"body":            {Options: []string{"Light", "Medium-", "Medium", "Medium+", "Full"}, Default: "Medium"},
	"flavorIntensity": {Options: lightScale, Default: "Medium"},
	"finish":          {Options: []string{"Short", "Medium", "Long"}, Default: "Medium"},

	"qualityLevel": {
		Options: []string{"Faulty", "Poor", "Acceptable", "Good", "Very Good", "Outstanding"},
		Default: "Good",
	},
	"readiness": {
		Options: []string{"Too Young", "Can Drink Now, But Better Later", "Ready to Drink", "Past Its Best"},
		Default: "Ready to Drink",
		Aliases: map[string]string{"Can Drink Now But Better Later": "Can Drink Now, But Better Later"},
	},
}

func (v Vocabulary) Allows(value string) bool {
	return slices.Contains(v.Options, value)
}

// Normalize resolves an alias to its option and substitutes the default
// for an empty value. Unknown values are returned unchanged.
func (v Vocabulary) Normalize(value string) string {
	if value == "" {
		return v.Default
	}
	if canonical, ok := v.Aliases[value]; ok {
		return canonical
	}
	return value
}
