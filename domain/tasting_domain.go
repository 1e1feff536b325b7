package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetTastings    = "wines retrieved successfully"
	MessageSuccessGetTasting     = "wine retrieved successfully"
	MessageSuccessCreateTasting  = "wine created successfully"
	MessageSuccessUpdateTasting  = "wine updated successfully"
	MessageSuccessDeleteTasting  = "Wine deleted successfully"
	MessageSuccessSearchTastings = "wines searched successfully"
	MessageSuccessUploadLabel    = "wine label uploaded successfully"
	MessageSuccessRemoveLabel    = "wine label removed successfully"

	MessageFailedCreateTasting = "failed to create wine"
	MessageFailedUpdateTasting = "failed to update wine"
	MessageFailedUploadLabel   = "failed to upload wine label"
	MessageTastingNotFound     = "Wine not found"

	ErrTastingNotFound = errors.New("wine not found")
)

// TastingDateLayouts are the accepted input layouts for tastingDate.
var TastingDateLayouts = []string{time.RFC3339, "2006-01-02"}

type (
	// TastingRequest is the create and update payload. A nil field is absent
	// and leaves the stored value untouched on update. Ownership comes from
	// the token, so the payload has no userId field.
	TastingRequest struct {
		Winery    *string  `json:"winery"`
		WineMaker *string  `json:"wineMaker"`
		Varietal  *string  `json:"varietal"`
		Vintage   *int     `json:"vintage"`
		Region    *string  `json:"region"`
		Country   *string  `json:"country"`
		Price     *float64 `json:"price"`
		Rating    *int     `json:"rating"`

		Clarity   *string `json:"clarity"`
		Intensity *string `json:"intensity"`
		Color     *string `json:"color"`

		Condition     *string  `json:"condition"`
		NoseIntensity *string  `json:"noseIntensity"`
		Aromas        []string `json:"aromas"`

		Sweetness       *string  `json:"sweetness"`
		Acidity         *string  `json:"acidity"`
		Tannin          *string  `json:"tannin"`
		Alcohol         *string  `json:"alcohol"`
		Body            *string  `json:"body"`
		FlavorIntensity *string  `json:"flavorIntensity"`
		Flavors         []string `json:"flavors"`
		Finish          *string  `json:"finish"`

		QualityLevel  *string `json:"qualityLevel"`
		Readiness     *string `json:"readiness"`
		PersonalNotes *string `json:"personalNotes"`

		TastingDate *string `json:"tastingDate"`
	}

	TastingResponse struct {
		ID        string   `json:"id"`
		UserID    string   `json:"userId"`
		Winery    string   `json:"winery"`
		WineMaker string   `json:"wineMaker,omitempty"`
		Varietal  string   `json:"varietal"`
		Vintage   int      `json:"vintage"`
		Region    string   `json:"region"`
		Country   string   `json:"country"`
		Price     *float64 `json:"price,omitempty"`
		Rating    *int     `json:"rating,omitempty"`

		Clarity   string `json:"clarity"`
		Intensity string `json:"intensity"`
		Color     string `json:"color"`

		Condition     string   `json:"condition"`
		NoseIntensity string   `json:"noseIntensity"`
		Aromas        []string `json:"aromas"`

		Sweetness       string   `json:"sweetness"`
		Acidity         string   `json:"acidity"`
		Tannin          string   `json:"tannin"`
		Alcohol         string   `json:"alcohol"`
		Body            string   `json:"body"`
		FlavorIntensity string   `json:"flavorIntensity"`
		Flavors         []string `json:"flavors"`
		Finish          string   `json:"finish"`

		QualityLevel  string `json:"qualityLevel"`
		Readiness     string `json:"readiness"`
		PersonalNotes string `json:"personalNotes,omitempty"`

		LabelImageURL string    `json:"labelImageUrl,omitempty"`
		TastingDate   time.Time `json:"tastingDate"`
		CreatedAt     time.Time `json:"createdAt"`
		UpdatedAt     time.Time `json:"updatedAt"`
	}
)
