package vo

import "github.com/Xushengqwer/image_service/models/entities"

// UserVO 用户公开信息。
type UserVO struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// AuthResultVO 注册/登录成功后的响应载荷。
type AuthResultVO struct {
	Token string `json:"token"` // Bearer 令牌
	User  UserVO `json:"user"`
}

// MapUserToVO 实体转公开视图，永不携带口令散列。
func MapUserToVO(user *entities.User) UserVO {
	return UserVO{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
}
