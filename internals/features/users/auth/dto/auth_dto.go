package dto

/* =========================
   REQUEST
   ========================= */

type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FullName  string `json:"full_name" validate:"required,min=3,max=100"`
	Age       int    `json:"age" validate:"required,gte=1,lte=150"`
	Role      string `json:"role" validate:"omitempty,oneof=user admin"`
	AdminCode string `json:"admin_code"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

/* =========================
   RESPONSE
   ========================= */

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}
