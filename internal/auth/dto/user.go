package dto

import "time"

type UserOutput struct {
	ID            string     `json:"id"`
	FullName      string     `json:"full_name"`
	DisplayName   string     `json:"display_name,omitempty"`
	CanSelfManage bool       `json:"can_self_manage"`
	IsActive      bool       `json:"is_active"`
	FirstLoginAt  *time.Time `json:"first_login_at"`
	LastLoginAt   *time.Time `json:"last_login_at"`
	CreatedAt     time.Time  `json:"created_at"`
	PrimaryEmail  string     `json:"primary_email,omitempty"`
	PrimaryPhone  string     `json:"primary_phone,omitempty"`
}
