package domain

import "time"

// Favorite — связь пользователя с понравившимся офисом.
// Раньше список жил int-массивом на пользователе; отдельная таблица с
// уникальным индексом убирает гонку read-modify-write при параллельных
// добавлениях.
type Favorite struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"not null;index;uniqueIndex:idx_fav_user_office"`
	OfficeID  int64     `json:"office_id" gorm:"not null;index;uniqueIndex:idx_fav_user_office"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Favorite) TableName() string { return "favorites" }
