package domain

import (
	"gorm.io/gorm"

	"officerent/internal/pkg/photos"
)

type Office struct {
	ID          int64   `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"size:255;index"`
	Address     string  `json:"address" gorm:"size:255"`
	Options     string  `json:"options" gorm:"type:text"`
	Description string  `json:"description" gorm:"type:text"`
	Area        float64 `json:"area" gorm:"index"`
	Price       float64 `json:"price" gorm:"index"`
	Active      bool    `json:"active" gorm:"default:true"`

	// Photos хранятся одной text-колонкой в JSON (см. pkg/photos).
	PhotosRaw string   `json:"-" gorm:"column:photos;type:text"`
	Photos    []string `json:"photos" gorm:"-"`
}

func (Office) TableName() string { return "offices" }

func (o *Office) BeforeSave(*gorm.DB) error {
	o.PhotosRaw = photos.ToString(o.Photos)
	return nil
}

func (o *Office) AfterFind(*gorm.DB) error {
	o.Photos = photos.FromString(o.PhotosRaw)
	return nil
}
