package userdetails

import (
	"time"

	"go-ums/internal/user"
)

// PlaceholderNA fills profile fields the client omitted at registration.
const PlaceholderNA = "NA"

type UserDetails struct {
	DetailsID            uint      `gorm:"column:details_id;primaryKey;autoIncrement" json:"details_id"`
	UserID               uint      `gorm:"column:user_id;index" json:"user_id"`
	EmployeeID           string    `gorm:"column:employee_id;type:varchar(255);not null" json:"employee_id"`
	Name                 string    `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Address              string    `gorm:"column:address;type:varchar(255);not null" json:"address"`
	City                 string    `gorm:"column:city;type:varchar(255);not null" json:"city"`
	Pincode              string    `gorm:"column:pincode;type:varchar(255);not null" json:"pincode"`
	State                string    `gorm:"column:state;type:varchar(255);not null" json:"state"`
	Country              string    `gorm:"column:country;type:varchar(255);not null" json:"country"`
	Phone                string    `gorm:"column:phone;type:varchar(255);not null" json:"phone"`
	EmailAddress         string    `gorm:"column:email_address;type:varchar(255);not null" json:"email_address"`
	OfficialEmailAddress string    `gorm:"column:official_email_address;type:varchar(255);not null" json:"official_email_address"`
	Gender               string    `gorm:"column:gender;type:varchar(255);not null" json:"gender"`
	DateOfBirth          time.Time `gorm:"column:date_of_birth;not null" json:"date_of_birth"`
	Forte                *string   `gorm:"column:forte;type:varchar(255)" json:"forte"`
	OtherSkills          *string   `gorm:"column:other_skills;type:varchar(255)" json:"other_skills"`
	PanCardNo            string    `gorm:"column:pan_card_no;type:varchar(255);not null" json:"pan_card_no"`
	PassportNo           string    `gorm:"column:passport_no;type:varchar(255);not null" json:"passport_no"`
	AadharNo             string    `gorm:"column:aadhar_no;type:varchar(255);not null" json:"aadhar_no"`
	Nationality          string    `gorm:"column:nationality;type:varchar(255);not null" json:"nationality"`
	Religion             string    `gorm:"column:religion;type:varchar(255);not null" json:"religion"`
	MaritalStatus        string    `gorm:"column:marital_status;type:varchar(255);not null" json:"marital_status"`
	EmploymentOfSpouse   *string   `gorm:"column:employment_of_spouse;type:varchar(255)" json:"employment_of_spouse"`
	NoOfChildren         *int      `gorm:"column:no_of_children" json:"no_of_children"`

	User *user.User `gorm:"foreignKey:UserID;references:UserID" json:"-"`
}

func (UserDetails) TableName() string {
	return "User_Details"
}

// DetailsWithRole is the projection used by the aggregate listing: one
// User_Details row joined with the owning user's role_id.
type DetailsWithRole struct {
	UserDetails
	RoleID *uint `gorm:"column:role_id" json:"role_id"`
}
