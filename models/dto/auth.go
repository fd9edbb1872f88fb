package dto

// RegisterRequest 用户注册请求。
type RegisterRequest struct {
	// Username 用户名，最短 6 个字符，全局唯一。
	Username string `json:"username" binding:"required,min=6,max=50"`
	// Email 邮箱，全局唯一。
	Email string `json:"email" binding:"required,email,max=255"`
	// Password 明文口令，最短 6 个字符，存储前经 bcrypt 散列。
	Password string `json:"password" binding:"required,min=6,max=72"`
}

// LoginRequest 用户登录请求，按用户名登录。
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
