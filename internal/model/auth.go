package model

// Credentials is the login form.
type Credentials struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required"`
	RememberMe bool   `json:"rememberMe"`
}

// LoginResult is the backend response to a successful login.
type LoginResult struct {
	Token string  `json:"token"`
	User  Profile `json:"user"`
}

// Registration is the customer sign-up form.
type Registration struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	FullName    string `json:"fullName" validate:"required"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Role        Role   `json:"role,omitempty"`
}

// PasswordReset completes a forgot-password flow.
type PasswordReset struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

// PasswordChange replaces the current password of a logged in user.
type PasswordChange struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8,nefield=CurrentPassword"`
}
