package domain

import "time"

type User struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	FullName  string    `gorm:"column:full_name;type:text" json:"full_name"`
	Email     string    `gorm:"column:email;type:text;uniqueIndex" json:"email"`
	Password  string    `gorm:"column:password;type:text" json:"-"`
	Role      string    `gorm:"column:role;type:text;default:customer" json:"role"`
	Gender    Gender    `gorm:"column:gender;type:text" json:"gender"`
	Age       int       `gorm:"column:age;default:0" json:"age"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
