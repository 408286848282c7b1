package model

// Admin 管理员账号，密码只保存bcrypt哈希，永不序列化
// swagger:model Admin
type Admin struct {
	BaseModel
	Name     string `gorm:"size:100;not null" json:"name"`
	Email    string `gorm:"size:100;unique;not null" json:"email"`
	Password string `gorm:"size:100;not null" json:"-"`
}

func (Admin) TableName() string {
	return "admins"
}

// AdminPublic 对外暴露的管理员字段
// swagger:model AdminPublic
type AdminPublic struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (a *Admin) Public() AdminPublic {
	return AdminPublic{
		ID:    a.ID,
		Name:  a.Name,
		Email: a.Email,
	}
}
