package entities

// User 用户实体
// - 表名: users
// - 注册/登录使用，密码只保存 bcrypt 散列。
type User struct {
	BaseModel

	// 用户名，全局唯一，登录凭据
	// - 类型: varchar(50)，注册时校验最短 6 个字符
	Username string `gorm:"type:varchar(50);uniqueIndex;not null"`

	// 邮箱，全局唯一
	Email string `gorm:"type:varchar(255);uniqueIndex;not null"`

	// 密码散列 (bcrypt, cost 12)
	// - 永不出现在任何响应体中
	PasswordHash string `gorm:"type:varchar(255);not null"`
}
