package user

import (
	"time"

	"go-ums/internal/office"
	"go-ums/internal/role"
)

// UserType values mirror the enum in the legacy schema. The legacy model
// declared the column default as lowercase "employee", which is not a member
// of its own enum; the default here is the capitalized member.
const (
	TypeSuperAdmin = "super_admin"
	TypeEmployee   = "Employee"
	TypeAdmin      = "Admin"
	TypeClient     = "Client"
	TypeHR         = "HR"
)

type User struct {
	UserID       uint       `gorm:"column:user_id;primaryKey;autoIncrement" json:"user_id"`
	Username     string     `gorm:"column:username;type:varchar(255);not null;uniqueIndex:uq_users_username" json:"username"`
	Password     string     `gorm:"column:password;type:varchar(255);not null" json:"-"`
	EmailAddress string     `gorm:"column:email_address;type:varchar(255);not null;uniqueIndex:uq_users_email" json:"email_address"`
	IsActive     bool       `gorm:"column:is_active;default:true" json:"is_active"`
	Name         string     `gorm:"column:name;type:varchar(255);not null" json:"name"`
	ReportedTo   *string    `gorm:"column:reported_to;type:varchar(255)" json:"reported_to"`
	EmployeeID   *string    `gorm:"column:employee_id;type:varchar(255);uniqueIndex:uq_users_employee_id" json:"employee_id"`
	JoiningDate  *time.Time `gorm:"column:joining_date" json:"joining_date"`
	PhoneNo      string     `gorm:"column:phone_no;type:varchar(50);not null;uniqueIndex:uq_users_phone_no" json:"phone_no"`
	Department   *string    `gorm:"column:department;type:varchar(255)" json:"department"`
	Designation  *string    `gorm:"column:designation;type:varchar(255)" json:"designation"`
	OfficeID     *uint      `gorm:"column:office_id;index" json:"office_id"`
	RoleID       *uint      `gorm:"column:role_id;index" json:"role_id"`
	UserType     string     `gorm:"column:user_type;type:varchar(20);not null;default:'Employee'" json:"user_type"`

	Office *office.Office `gorm:"foreignKey:OfficeID;references:OfficeID" json:"-"`
	Role   *role.Role     `gorm:"foreignKey:RoleID;references:RoleID" json:"-"`
}

func (User) TableName() string {
	return "Users"
}
