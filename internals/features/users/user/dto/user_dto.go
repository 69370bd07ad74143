package dto

import (
	model "perpusku_backend/internals/features/users/user/model"
)

/* =========================
   RESPONSE
   ========================= */

type UserResponse struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Age      int    `json:"age"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
}

func FromModel(m *model.UserModel) UserResponse {
	return UserResponse{
		ID:       m.ID,
		Email:    m.Email,
		FullName: m.FullName,
		Age:      m.Age,
		Role:     m.Role,
		IsActive: m.IsActive,
	}
}

func FromModels(ms []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
