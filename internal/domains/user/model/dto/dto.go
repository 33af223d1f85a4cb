package dto

import (
	"busline/internal/domains/user/model"
	"busline/shared/constant"
	gModel "busline/shared/model"
	"busline/shared/timezone"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone,omitempty"`
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Email = model.Email
	r.Role = model.Role
	r.FullName = model.FullName

	if model.Phone != nil {
		r.Phone = *model.Phone
	}
}

func NewUserModel(email, hashedPassword, fullName, createdBy string) model.User {
	return model.User{
		ID:       uuid.NewString(),
		Email:    email,
		Password: hashedPassword,
		Role:     constant.RoleUser,
		FullName: fullName,
		Active:   true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  createdBy,
			ModifiedBy: createdBy,
		},
	}
}
