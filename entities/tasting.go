package entities

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"time"
)

// Tasting is one wine-tasting journal entry. Enumerated fields are checked
// against domain.Vocabularies by the "vocab" rule.
type Tasting struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index:idx_tastings_user_winery,priority:1;index:idx_tastings_user_varietal,priority:1;index:idx_tastings_user_vintage,priority:1" json:"userId"`

	// Wine identity
	Winery    string   `gorm:"not null;index:idx_tastings_user_winery,priority:2" json:"winery" validate:"required"`
	WineMaker string   `json:"wineMaker,omitempty"`
	Varietal  string   `gorm:"not null;index:idx_tastings_user_varietal,priority:2" json:"varietal" validate:"required"`
	Vintage   int      `gorm:"not null;index:idx_tastings_user_vintage,priority:2" json:"vintage" validate:"required,vintage"`
	Region    string   `gorm:"not null" json:"region" validate:"required"`
	Country   string   `gorm:"not null" json:"country" validate:"required"`
	Price     *float64 `json:"price,omitempty" validate:"omitnil,gte=0"`
	Rating    *int     `json:"rating,omitempty" validate:"omitnil,min=1,max=5"`

	// Appearance
	Clarity   string `gorm:"not null" json:"clarity" validate:"vocab"`
	Intensity string `gorm:"not null" json:"intensity" validate:"vocab"`
	Color     string `gorm:"not null" json:"color" validate:"required"`

	// Nose
	Condition     string                      `gorm:"not null" json:"condition" validate:"vocab"`
	NoseIntensity string                      `gorm:"not null" json:"noseIntensity" validate:"vocab"`
	Aromas        datatypes.JSONSlice[string] `gorm:"type:jsonb;not null" json:"aromas"`

	// Palate
	Sweetness       string                      `gorm:"not null" json:"sweetness" validate:"vocab"`
	Acidity         string                      `gorm:"not null" json:"acidity" validate:"vocab"`
	Tannin          string                      `gorm:"not null" json:"tannin" validate:"vocab"`
	Alcohol         string                      `gorm:"not null" json:"alcohol" validate:"vocab"`
	Body            string                      `gorm:"not null" json:"body" validate:"vocab"`
	FlavorIntensity string                      `gorm:"not null" json:"flavorIntensity" validate:"vocab"`
	Flavors         datatypes.JSONSlice[string] `gorm:"type:jsonb;not null" json:"flavors"`
	Finish          string                      `gorm:"not null" json:"finish" validate:"vocab"`

	// Conclusions
	QualityLevel  string `gorm:"not null" json:"qualityLevel" validate:"vocab"`
	Readiness     string `gorm:"not null" json:"readiness" validate:"vocab"`
	PersonalNotes string `gorm:"type:text" json:"personalNotes,omitempty"`

	LabelImageURL string    `json:"labelImageUrl,omitempty"`
	TastingDate   time.Time `gorm:"type:timestamp with time zone;not null" json:"tastingDate"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Timestamp
}
