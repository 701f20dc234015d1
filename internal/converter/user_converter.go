package converter

import (
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
)

// UserToResponse maps a user record. The password never crosses this
// boundary.
func UserToResponse(user *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		UserID:   user.UserID,
		Username: user.Username,
		Role:     string(user.Role),
		Clinic:   user.Clinic,
	}
}

func UsersToResponses(users []entity.User) []dto.UserResponse {
	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, *UserToResponse(&users[i]))
	}
	return responses
}
