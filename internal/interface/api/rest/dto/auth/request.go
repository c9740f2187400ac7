package auth

type (
	RegisterRequest struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	LoginRequest struct {
		// Login accepts a username or an email.
		Login    string `json:"login"`
		Password string `json:"password"`
	}
)
