package tasting

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"wine-diary/domain"
	"wine-diary/entities"
	"wine-diary/internal/utils"

	"github.com/go-playground/validator/v10"
)

// ApplyRequest merges the present fields of req onto t. String values and
// list elements are trimmed and blank list elements dropped. A blank
// enumerated field and an unparsable tastingDate are reported as validation
// errors.
func ApplyRequest(t *entities.Tasting, req domain.TastingRequest) error {
	setString(&t.Winery, req.Winery)
	setString(&t.WineMaker, req.WineMaker)
	setString(&t.Varietal, req.Varietal)
	setString(&t.Region, req.Region)
	setString(&t.Country, req.Country)
	if req.Vintage != nil {
		t.Vintage = *req.Vintage
	}
	if req.Price != nil {
		price := *req.Price
		t.Price = &price
	}
	if req.Rating != nil {
		rating := *req.Rating
		t.Rating = &rating
	}

	setString(&t.Color, req.Color)
	if req.Aromas != nil {
		t.Aromas = cleanList(req.Aromas)
	}
	if req.Flavors != nil {
		t.Flavors = cleanList(req.Flavors)
	}
	setString(&t.PersonalNotes, req.PersonalNotes)

	vErr := domain.NewValidationError()
	sources, targets := requestEnums(req), enumFields(t)
	for _, name := range enumNames {
		src := sources[name]
		if src == nil {
			continue
		}
		value := strings.TrimSpace(*src)
		if value == "" {
			vErr.Add(name, vocabReason(name))
			continue
		}
		*targets[name] = value
	}

	if req.TastingDate != nil {
		date, err := parseTastingDate(*req.TastingDate)
		if err != nil {
			vErr.Add("tastingDate", err.Error())
		} else {
			t.TastingDate = date
		}
	}

	if len(vErr.Fields) > 0 {
		return vErr
	}
	return nil
}

// ApplyDefaults fills every omitted enumerated field with its default,
// resolves aliases, and defaults tastingDate to now.
func ApplyDefaults(t *entities.Tasting, now time.Time) {
	targets := enumFields(t)
	for _, name := range enumNames {
		*targets[name] = domain.Vocabularies[name].Normalize(*targets[name])
	}
	if t.Aromas == nil {
		t.Aromas = []string{}
	}
	if t.Flavors == nil {
		t.Flavors = []string{}
	}
	if t.TastingDate.IsZero() {
		t.TastingDate = now
	}
}

// ValidateTasting checks t against the field rules and returns nil or a
// *domain.ValidationError naming every rejected field.
func ValidateTasting(v *validator.Validate, t *entities.Tasting) error {
	err := v.Struct(t)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	vErr := domain.NewValidationError()
	for _, fe := range fieldErrs {
		vErr.Add(fe.Field(), describe(fe))
	}
	return vErr
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "vintage":
		return fmt.Sprintf("must be between %d and %d", utils.MinVintage, utils.MaxVintage())
	case "vocab":
		return vocabReason(fe.Field())
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	default:
		return "failed on " + fe.Tag()
	}
}

func vocabReason(name string) string {
	return fmt.Sprintf("must be one of: %s", strings.Join(domain.Vocabularies[name].Options, ", "))
}

var enumNames = []string{
	"clarity", "intensity",
	"condition", "noseIntensity",
	"sweetness", "acidity", "tannin", "alcohol", "body", "flavorIntensity", "finish",
	"qualityLevel", "readiness",
}

func requestEnums(req domain.TastingRequest) map[string]*string {
	return map[string]*string{
		"clarity":         req.Clarity,
		"intensity":       req.Intensity,
		"condition":       req.Condition,
		"noseIntensity":   req.NoseIntensity,
		"sweetness":       req.Sweetness,
		"acidity":         req.Acidity,
		"tannin":          req.Tannin,
		"alcohol":         req.Alcohol,
		"body":            req.Body,
		"flavorIntensity": req.FlavorIntensity,
		"finish":          req.Finish,
		"qualityLevel":    req.QualityLevel,
		"readiness":       req.Readiness,
	}
}

func enumFields(t *entities.Tasting) map[string]*string {
	return map[string]*string{
		"clarity":         &t.Clarity,
		"intensity":       &t.Intensity,
		"condition":       &t.Condition,
		"noseIntensity":   &t.NoseIntensity,
		"sweetness":       &t.Sweetness,
		"acidity":         &t.Acidity,
		"tannin":          &t.Tannin,
		"alcohol":         &t.Alcohol,
		"body":            &t.Body,
		"flavorIntensity": &t.FlavorIntensity,
		"finish":          &t.Finish,
		"qualityLevel":    &t.QualityLevel,
		"readiness":       &t.Readiness,
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}

func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func parseTastingDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range domain.TastingDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return storedTime(t), nil
		}
	}
	return time.Time{}, errors.New("must be a date (YYYY-MM-DD) or RFC 3339 timestamp")
}

// storedTime reduces t to what a timestamptz column keeps: microseconds, in UTC.
func storedTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}
