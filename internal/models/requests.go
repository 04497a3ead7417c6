package models

// Request bodies for the auth and profile endpoints. Validation happens at
// the binding boundary rather than on the stored documents.

type SendSignupOtpRequest struct {
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone" binding:"required"`
}

type SignupRequest struct {
	FullName        string `json:"fullName" binding:"required"`
	Phone           string `json:"phone" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
	ReferenceID     string `json:"referenceId"`
	Otp             string `json:"otp" binding:"required"`
}

type SendOtpRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Type       string `json:"type" binding:"required,oneof=email phone"`
}

type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Type       string `json:"type" binding:"required,oneof=email phone"`
	Password   string `json:"password"`
	Otp        string `json:"otp"`
}

type InitialProfileRequest struct {
	UserID             string   `json:"userId" binding:"required"`
	ProfileType        []string `json:"profileType" binding:"required"`
	FreelancerServices []string `json:"freelancerServices"`
	BusinessServices   []string `json:"businessServices"`
}
