package models

import "encoding/json"

// Role enum
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleDoctor  Role = "doctor"
	RolePatient Role = "patient"
)

// User is an account as returned by the admin and user routers.
type User struct {
	ID       string `json:"_id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     Role   `json:"role"`
	IsActive bool   `json:"is_active"`
}

// UnmarshalJSON accepts the identifier under either "_id" or "id".
func (u *User) UnmarshalJSON(b []byte) error {
	type plain User
	aux := struct {
		*plain
		AltID string `json:"id"`
	}{plain: (*plain)(u)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	if u.ID == "" {
		u.ID = aux.AltID
	}
	return nil
}

// UserState is the profile snapshot handed back by a successful login.
type UserState struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     Role   `json:"role"`
}

// AuthResponse is the body of POST /auth/login.
type AuthResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	User        UserState `json:"user"`
}

// UserCreate registers a patient (POST /auth/register) or a doctor (POST /admin/register-doctor).
type UserCreate struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Role     Role   `json:"role,omitempty"`
	IsActive *bool  `json:"is_active,omitempty"`
}

// DoctorUpdate is the body of PUT /admin/doctor/:id.
type DoctorUpdate struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

// PasswordReset is the body of POST /admin/admin-reset-password.
type PasswordReset struct {
	UserID      string `json:"user_id"`
	NewPassword string `json:"new_password"`
}

// MessageResponse is the generic {"message": ...} acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// ToggleActivityResult is returned by PATCH /admin/doctor/:id/toggle-activity.
type ToggleActivityResult struct {
	Message  string `json:"message"`
	IsActive bool   `json:"is_active"`
}
