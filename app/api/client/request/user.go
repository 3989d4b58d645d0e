package request

import (
	"backend/insurance-platform/app/database/constant/role"
	"backend/insurance-platform/app/database/constant/user"
)

// MaxPageSize caps the page size of user listings regardless of the
// requested limit.
const MaxPageSize = 100

type CreateUserRequest struct {
	Email         *string      `json:"email" validate:"omitempty,email"`
	Password      *string      `json:"password" validate:"omitempty,min=6,max=100"`
	EmailVerified *bool        `json:"emailVerified"`
	FacebookID    *string      `json:"facebookId"`
	GoogleID      *string      `json:"googleId"`
	FirebaseUID   *string      `json:"firebaseUid"`
	AppleID       *string      `json:"appleId"`
	Role          *role.Role   `json:"role" validate:"omitempty,oneof=USER ADMIN"`
	Avatar        *string      `json:"avatar" validate:"omitempty,max=255"`
	FullName      *string      `json:"fullName" validate:"omitempty,max=100"`
	Phone         *string      `json:"phone" validate:"omitempty,max=20"`
	Province      *string      `json:"province" validate:"omitempty,max=100"`
	District      *string      `json:"district" validate:"omitempty,max=100"`
	Ward          *string      `json:"ward" validate:"omitempty,max=100"`
	Address       *string      `json:"address" validate:"omitempty,max=255"`
	DateOfBirth   *string      `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	IsActive      *bool        `json:"isActive"`
	IsLocked      *bool        `json:"isLocked"`
	LockReason    *string      `json:"lockReason" validate:"omitempty,max=255"`
	Status        *user.Status `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE DELETED"`
}

// UpdateUserRequest is the sparse patch shape. Password and emailVerified
// are deliberately absent; they change only through their dedicated
// transitions.
type UpdateUserRequest struct {
	Email       *string      `json:"email" validate:"omitempty,email"`
	FacebookID  *string      `json:"facebookId"`
	GoogleID    *string      `json:"googleId"`
	FirebaseUID *string      `json:"firebaseUid"`
	AppleID     *string      `json:"appleId"`
	Role        *role.Role   `json:"role" validate:"omitempty,oneof=USER ADMIN"`
	Avatar      *string      `json:"avatar" validate:"omitempty,max=255"`
	FullName    *string      `json:"fullName" validate:"omitempty,max=100"`
	Phone       *string      `json:"phone" validate:"omitempty,max=20"`
	Province    *string      `json:"province" validate:"omitempty,max=100"`
	District    *string      `json:"district" validate:"omitempty,max=100"`
	Ward        *string      `json:"ward" validate:"omitempty,max=100"`
	Address     *string      `json:"address" validate:"omitempty,max=255"`
	DateOfBirth *string      `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	IsActive    *bool        `json:"isActive"`
	Status      *user.Status `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE DELETED"`
}

type QueryUsersRequest struct {
	Page      int          `query:"page"`
	Limit     int          `query:"limit"`
	Search    string       `query:"search"`
	Role      *role.Role   `query:"role" validate:"omitempty,oneof=USER ADMIN"`
	Status    *user.Status `query:"status" validate:"omitempty,oneof=ACTIVE INACTIVE DELETED"`
	IsActive  *bool        `query:"isActive"`
	IsLocked  *bool        `query:"isLocked"`
	Province  string       `query:"province"`
	District  string       `query:"district"`
	SortBy    string       `query:"sortBy"`
	SortOrder string       `query:"sortOrder" validate:"omitempty,oneof=asc desc"`
}

func (q *QueryUsersRequest) LoadDefaultValues() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 10
	}
	if q.Limit > MaxPageSize {
		q.Limit = MaxPageSize
	}
	if q.SortBy == "" {
		q.SortBy = "createdAt"
	}
	if q.SortOrder == "" {
		q.SortOrder = "desc"
	}
}

type LockUserRequest struct {
	Reason *string `json:"reason" validate:"omitempty,max=255"`
}
