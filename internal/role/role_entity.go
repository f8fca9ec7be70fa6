package role

type Role struct {
	RoleID      uint    `gorm:"column:role_id;primaryKey;autoIncrement" json:"role_id"`
	Name        string  `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Description *string `gorm:"column:description;type:varchar(255)" json:"description"`
	Status      bool    `gorm:"column:status;default:true" json:"status"`
}

func (Role) TableName() string {
	return "Roles"
}
