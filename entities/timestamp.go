package entities

import "time"

type Timestamp struct {
	CreatedAt time.Time `gorm:"type:timestamp with time zone;not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"type:timestamp with time zone;not null" json:"updatedAt"`
}
