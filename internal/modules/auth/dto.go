package auth

type RegisterRequest struct {
	LastName  string `json:"lastName" binding:"required"`
	FirstName string `json:"firstName" binding:"required"`
	Tel       string `json:"tel" binding:"required"`
	Age       int    `json:"age" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// UpdateUserRequest — частичное обновление: применяются только присланные
// поля, токен не перегенерируется.
type UpdateUserRequest struct {
	LastName  *string `json:"lastName"`
	FirstName *string `json:"firstName"`
	Tel       *string `json:"tel"`
	Age       *int    `json:"age"`
	Email     *string `json:"email"`
	Password  *string `json:"password"`
	Blocked   *bool   `json:"blocked"`
}
