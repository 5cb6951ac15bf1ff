package domain

// Статусы заявки. Колонка status не ограничена этим набором:
// PUT /applications принимает произвольное число и сохраняет его как есть.
const (
	ApplicationCancelled = 0
	ApplicationPending   = 1
	ApplicationApproved  = 2
)

// Application — заявка пользователя на аренду офиса.
// Уникальный индекс по паре (id_user, id_office) гарантирует не больше
// одной заявки на пару даже при конкурентных запросах.
type Application struct {
	ID       int64 `json:"id" gorm:"primaryKey"`
	UserID   int64 `json:"id_user" gorm:"column:id_user;not null;index;uniqueIndex:idx_app_user_office"`
	OfficeID int64 `json:"id_office" gorm:"column:id_office;not null;index;uniqueIndex:idx_app_user_office"`
	Status   int   `json:"status" gorm:"index"`
}

func (Application) TableName() string { return "applications" }
