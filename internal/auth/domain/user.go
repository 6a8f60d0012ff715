package domain

import "time"

type User struct {
	ID              string
	FullName        string
	DisplayName     string
	DateOfBirth     *time.Time
	CanSelfManage   bool
	CreatedByUserID *string
	FirstLoginAt    *time.Time
	LastLoginAt     *time.Time
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type LoginIdentity struct {
	ID         string
	UserID     string
	Type       string
	Value      string
	IsPrimary  bool
	IsVerified bool
	VerifiedAt *time.Time
	CreatedAt  time.Time
}
