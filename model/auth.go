package model

// Auth is the OTP request/verify body. Phone is the full number with the
// country code prefix, for example "+919876543210".
type Auth struct {
	Phone string `json:"phone"`
	OTP   string `json:"otp,omitempty"`
}

type Login struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
