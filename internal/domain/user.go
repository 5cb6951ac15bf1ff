package domain

type User struct {
	ID           int64  `json:"id" gorm:"primaryKey"`
	LastName     string `json:"lastName" gorm:"column:last_name;size:255;index"`
	FirstName    string `json:"firstName" gorm:"column:first_name;size:255;index"`
	Tel          string `json:"tel" gorm:"size:20;index"`
	Age          int    `json:"age"`
	Email        string `json:"email" gorm:"size:255;index"`
	PasswordHash string `json:"-" gorm:"column:password_hash;size:255"`
	Admin        bool   `json:"admin" gorm:"default:false;index"`
	Blocked      bool   `json:"blocked" gorm:"default:false"`
	Token        string `json:"token" gorm:"size:36;uniqueIndex"`

	// Старые клиенты читают id избранных офисов прямо с объекта пользователя.
	// Заполняется из таблицы favorites, в БД не хранится.
	Offices []int64 `json:"offices" gorm:"-"`
}

func (User) TableName() string { return "users" }
