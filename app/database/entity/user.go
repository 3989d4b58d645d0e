package entity

import (
	"time"

	"github.com/uptrace/bun"

	"backend/insurance-platform/app/database/constant/role"
	"backend/insurance-platform/app/database/constant/user"
)

type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID            int64       `bun:"id,pk,autoincrement"`
	Email         *string     `bun:"email,unique"`
	Password      *string     `bun:"password"`
	EmailVerified bool        `bun:"email_verified,notnull,default:false"`
	FacebookID    *string     `bun:"facebook_id,unique"`
	GoogleID      *string     `bun:"google_id,unique"`
	FirebaseUID   *string     `bun:"firebase_uid,unique"`
	AppleID       *string     `bun:"apple_id,unique"`
	Role          role.Role   `bun:"role,notnull,default:'USER'"`
	Avatar        *string     `bun:"avatar"`
	FullName      *string     `bun:"full_name"`
	Phone         *string     `bun:"phone"`
	Province      *string     `bun:"province"`
	District      *string     `bun:"district"`
	Ward          *string     `bun:"ward"`
	Address       *string     `bun:"address"`
	DateOfBirth   *time.Time  `bun:"date_of_birth"`
	IsActive      bool        `bun:"is_active,notnull,default:true"`
	IsLocked      bool        `bun:"is_locked,notnull,default:false"`
	LockReason    *string     `bun:"lock_reason"`
	Status        user.Status `bun:"status,notnull,default:'ACTIVE'"`
	LastLogin     *time.Time  `bun:"last_login"`
	CreatedAt     time.Time   `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt     *time.Time  `bun:"updated_at"`
}

func (u User) Alias() string {
	return "u"
}

// SocialID returns the stored subject id for the given provider column.
func (u User) SocialID(column string) *string {
	switch column {
	case "facebook_id":
		return u.FacebookID
	case "google_id":
		return u.GoogleID
	case "firebase_uid":
		return u.FirebaseUID
	case "apple_id":
		return u.AppleID
	}
	return nil
}
