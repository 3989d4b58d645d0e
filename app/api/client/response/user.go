package response

import (
	"time"

	"backend/insurance-platform/app/database/constant/role"
	"backend/insurance-platform/app/database/constant/user"
	"backend/insurance-platform/app/database/entity"
)

// UserResponse is the full projection of a user. It never carries the
// password hash or any other authentication secret.
type UserResponse struct {
	ID            int64       `json:"id"`
	Email         *string     `json:"email"`
	EmailVerified bool        `json:"emailVerified"`
	FacebookID    *string     `json:"facebookId,omitempty"`
	GoogleID      *string     `json:"googleId,omitempty"`
	FirebaseUID   *string     `json:"firebaseUid,omitempty"`
	AppleID       *string     `json:"appleId,omitempty"`
	Role          role.Role   `json:"role"`
	Avatar        *string     `json:"avatar,omitempty"`
	FullName      *string     `json:"fullName,omitempty"`
	Phone         *string     `json:"phone,omitempty"`
	Province      *string     `json:"province,omitempty"`
	District      *string     `json:"district,omitempty"`
	Ward          *string     `json:"ward,omitempty"`
	Address       *string     `json:"address,omitempty"`
	DateOfBirth   *time.Time  `json:"dateOfBirth,omitempty"`
	IsActive      bool        `json:"isActive"`
	IsLocked      bool        `json:"isLocked"`
	LockReason    *string     `json:"lockReason,omitempty"`
	Status        user.Status `json:"status"`
	LastLogin     *time.Time  `json:"lastLogin,omitempty"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     *time.Time  `json:"updatedAt,omitempty"`
}

func ToUserResponse(u entity.User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Email:         u.Email,
		EmailVerified: u.EmailVerified,
		FacebookID:    u.FacebookID,
		GoogleID:      u.GoogleID,
		FirebaseUID:   u.FirebaseUID,
		AppleID:       u.AppleID,
		Role:          u.Role,
		Avatar:        u.Avatar,
		FullName:      u.FullName,
		Phone:         u.Phone,
		Province:      u.Province,
		District:      u.District,
		Ward:          u.Ward,
		Address:       u.Address,
		DateOfBirth:   u.DateOfBirth,
		IsActive:      u.IsActive,
		IsLocked:      u.IsLocked,
		LockReason:    u.LockReason,
		Status:        u.Status,
		LastLogin:     u.LastLogin,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

// UserSummaryResponse is the minimal projection returned by the narrow
// state transitions. Optional fields appear only when the transition
// touched them.
type UserSummaryResponse struct {
	ID            int64       `json:"id"`
	Email         *string     `json:"email"`
	FullName      *string     `json:"fullName"`
	Status        user.Status `json:"status"`
	IsActive      *bool       `json:"isActive,omitempty"`
	IsLocked      *bool       `json:"isLocked,omitempty"`
	LockReason    *string     `json:"lockReason,omitempty"`
	EmailVerified *bool       `json:"emailVerified,omitempty"`
}

func ToUserSummaryResponse(u entity.User) UserSummaryResponse {
	return UserSummaryResponse{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		Status:   u.Status,
	}
}

type UserStatsResponse struct {
	TotalUsers  int `json:"totalUsers"`
	ActiveUsers int `json:"activeUsers"`
	RecentUsers int `json:"recentUsers"`
	LockedUsers int `json:"lockedUsers"`
}

type UploadResponse struct {
	URL          string `json:"url"`
	PublicID     string `json:"public_id"`
	OriginalName string `json:"originalname"`
}
