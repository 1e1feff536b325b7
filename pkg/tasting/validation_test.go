package tasting

import (
	"testing"
	"time"
	"wine-diary/domain"
	"wine-diary/entities"
	"wine-diary/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func validRequest() domain.TastingRequest {
	return domain.TastingRequest{
		Winery:   ptr("Château Margaux"),
		Varietal: ptr("Cabernet Sauvignon"),
		Vintage:  ptr(2015),
		Region:   ptr("Bordeaux"),
		Country:  ptr("France"),
		Color:    ptr("Deep ruby"),
	}
}

func buildTasting(req domain.TastingRequest, now time.Time) (*entities.Tasting, error) {
	t := &entities.Tasting{}
	if err := ApplyRequest(t, req); err != nil {
		return t, err
	}
	ApplyDefaults(t, now)
	return t, ValidateTasting(utils.NewValidator(), t)
}

func requireRejected(t *testing.T, err error, fields ...string) *domain.ValidationError {
	t.Helper()
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	for _, f := range fields {
		assert.True(t, vErr.HasField(f), "expected %q in %s", f, vErr.Error())
	}
	return vErr
}

func TestApplyDefaults_FillsOmittedFields(t *testing.T) {
	now := time.Date(2024, 5, 1, 18, 30, 0, 0, time.UTC)

	tasting, err := buildTasting(validRequest(), now)
	require.NoError(t, err)

	assert.Equal(t, "Clear", tasting.Clarity)
	assert.Equal(t, "Medium", tasting.Intensity)
	assert.Equal(t, "Clean", tasting.Condition)
	assert.Equal(t, "Medium", tasting.NoseIntensity)
	assert.Equal(t, "Dry", tasting.Sweetness)
	assert.Equal(t, "Medium", tasting.Acidity)
	assert.Equal(t, "Medium", tasting.Tannin)
	assert.Equal(t, "Medium", tasting.Alcohol)
	assert.Equal(t, "Medium", tasting.Body)
	assert.Equal(t, "Medium", tasting.FlavorIntensity)
	assert.Equal(t, "Medium", tasting.Finish)
	assert.Equal(t, "Good", tasting.QualityLevel)
	assert.Equal(t, "Ready to Drink", tasting.Readiness)

	assert.NotNil(t, tasting.Aromas)
	assert.Empty(t, tasting.Aromas)
	assert.NotNil(t, tasting.Flavors)
	assert.Empty(t, tasting.Flavors)
	assert.True(t, tasting.TastingDate.Equal(now))
	assert.Nil(t, tasting.Price)
	assert.Nil(t, tasting.Rating)
}

func TestApplyDefaults_EveryDefaultIsAnOption(t *testing.T) {
	for name, vocab := range domain.Vocabularies {
		assert.True(t, vocab.Allows(vocab.Default), name)
	}
}

func TestValidateTasting_RejectsUnknownOption(t *testing.T) {
	req := validRequest()
	req.Clarity = ptr("Sparkling")

	_, err := buildTasting(req, time.Now())

	vErr := requireRejected(t, err, "clarity")
	assert.Len(t, vErr.Fields, 1)
	assert.Contains(t, vErr.Fields[0].Reason, "Clear, Hazy, Cloudy")
}

func TestValidateTasting_ReportsEveryMissingField(t *testing.T) {
	_, err := buildTasting(domain.TastingRequest{}, time.Now())

	requireRejected(t, err, "winery", "varietal", "vintage", "region", "country", "color")
}

func TestValidateTasting_BlankStringsAreMissing(t *testing.T) {
	req := validRequest()
	req.Winery = ptr("   ")

	_, err := buildTasting(req, time.Now())

	vErr := requireRejected(t, err, "winery")
	assert.Len(t, vErr.Fields, 1)
}

func TestValidateTasting_VintageBounds(t *testing.T) {
	maxVintage := time.Now().Year() + 1

	tests := []struct {
		name    string
		vintage int
		valid   bool
	}{
		{name: "earliest", vintage: 1900, valid: true},
		{name: "before earliest", vintage: 1899},
		{name: "next year", vintage: maxVintage, valid: true},
		{name: "two years ahead", vintage: maxVintage + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.Vintage = ptr(tt.vintage)

			_, err := buildTasting(req, time.Now())
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			requireRejected(t, err, "vintage")
		})
	}
}

func TestValidateTasting_PriceAndRating(t *testing.T) {
	tests := []struct {
		name   string
		price  *float64
		rating *int
		field  string
	}{
		{name: "zero price", price: ptr(0.0)},
		{name: "negative price", price: ptr(-0.01), field: "price"},
		{name: "lowest rating", rating: ptr(1)},
		{name: "highest rating", rating: ptr(5)},
		{name: "rating zero", rating: ptr(0), field: "rating"},
		{name: "rating six", rating: ptr(6), field: "rating"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.Price = tt.price
			req.Rating = tt.rating

			_, err := buildTasting(req, time.Now())
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			requireRejected(t, err, tt.field)
		})
	}
}

func TestApplyRequest_TrimsValuesAndDropsBlankListItems(t *testing.T) {
	req := validRequest()
	req.Winery = ptr("  Ridge  ")
	req.Aromas = []string{" cherry ", "", "  ", "cedar"}
	req.Flavors = []string{"plum"}

	tasting, err := buildTasting(req, time.Now())
	require.NoError(t, err)

	assert.Equal(t, "Ridge", tasting.Winery)
	assert.Equal(t, []string{"cherry", "cedar"}, []string(tasting.Aromas))
	assert.Equal(t, []string{"plum"}, []string(tasting.Flavors))
}

func TestApplyRequest_KeepsAbsentFields(t *testing.T) {
	tasting, err := buildTasting(validRequest(), time.Now())
	require.NoError(t, err)
	tasting.Aromas = []string{"cassis"}

	require.NoError(t, ApplyRequest(tasting, domain.TastingRequest{Rating: ptr(4)}))

	assert.Equal(t, "Château Margaux", tasting.Winery)
	assert.Equal(t, 2015, tasting.Vintage)
	assert.Equal(t, []string{"cassis"}, []string(tasting.Aromas))
	require.NotNil(t, tasting.Rating)
	assert.Equal(t, 4, *tasting.Rating)
}

func TestApplyDefaults_ResolvesReadinessAlias(t *testing.T) {
	req := validRequest()
	req.Readiness = ptr("Can Drink Now But Better Later")

	tasting, err := buildTasting(req, time.Now())
	require.NoError(t, err)

	assert.Equal(t, "Can Drink Now, But Better Later", tasting.Readiness)
}

func TestApplyRequest_TastingDate(t *testing.T) {
	t.Run("calendar date", func(t *testing.T) {
		req := validRequest()
		req.TastingDate = ptr("2023-11-04")

		tasting, err := buildTasting(req, time.Now())
		require.NoError(t, err)
		assert.Equal(t, time.Date(2023, 11, 4, 0, 0, 0, 0, time.UTC), tasting.TastingDate)
	})

	t.Run("timestamp", func(t *testing.T) {
		req := validRequest()
		req.TastingDate = ptr("2023-11-04T19:45:00Z")

		tasting, err := buildTasting(req, time.Now())
		require.NoError(t, err)
		assert.Equal(t, time.Date(2023, 11, 4, 19, 45, 0, 0, time.UTC), tasting.TastingDate)
	})

	t.Run("garbage", func(t *testing.T) {
		req := validRequest()
		req.TastingDate = ptr("last tuesday")

		_, err := buildTasting(req, time.Now())
		requireRejected(t, err, "tastingDate")
	})
}

func TestApplyRequest_BlankOptionIsRejected(t *testing.T) {
	req := validRequest()
	req.Clarity = ptr("")
	req.Finish = ptr("   ")

	_, err := buildTasting(req, time.Now())

	vErr := requireRejected(t, err, "clarity", "finish")
	assert.Equal(t, "clarity", vErr.Fields[0].Field)
	assert.Contains(t, vErr.Fields[1].Reason, "Short, Medium, Long")
}

func TestApplyRequest_TastingDateIsStoredInUTCMicroseconds(t *testing.T) {
	req := validRequest()
	req.TastingDate = ptr("2023-11-04T19:45:00.123456789+02:00")

	tasting, err := buildTasting(req, time.Now())
	require.NoError(t, err)

	assert.Equal(t, time.Date(2023, 11, 4, 17, 45, 0, 123456000, time.UTC), tasting.TastingDate)
}
