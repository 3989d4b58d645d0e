package user

import (
	"database/sql/driver"
	"fmt"
)

// Status represents the status of a user account
type Status string

const (
	// Active indicates a live user account
	Active Status = "ACTIVE"
	// Inactive indicates an account that has been deactivated but not deleted
	Inactive Status = "INACTIVE"
	// Deleted indicates a soft-deleted account; the row is retained
	Deleted Status = "DELETED"
)

// Scan implements the sql.Scanner interface for database scanning
func (s *Status) Scan(value interface{}) error {
	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("cannot scan UserStatus from %T", value)
	}
	*s = Status(str)
	return nil
}

// Value implements the driver.Valuer interface for database storage
func (s Status) Value() (driver.Value, error) {
	return string(s), nil
}

func (s Status) Valid() bool {
	switch s {
	case Active, Inactive, Deleted:
		return true
	}
	return false
}
