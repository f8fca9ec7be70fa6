package user

import "time"

type UserResponse struct {
	UserID       uint       `json:"user_id"`
	Username     string     `json:"username"`
	EmailAddress string     `json:"email_address"`
	IsActive     bool       `json:"is_active"`
	Name         string     `json:"name"`
	ReportedTo   *string    `json:"reported_to"`
	EmployeeID   *string    `json:"employee_id"`
	JoiningDate  *time.Time `json:"joining_date"`
	PhoneNo      string     `json:"phone_no"`
	Department   *string    `json:"department"`
	Designation  *string    `json:"designation"`
	OfficeID     *uint      `json:"office_id"`
	RoleID       *uint      `json:"role_id"`
	UserType     string     `json:"user_type"`
}

type UpdateStatusRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

type FilterUsersQuery struct {
	EmployeeID  string `form:"employee_id"`
	Designation string `form:"designation"`
}

func mapToResponse(u User) UserResponse {
	return UserResponse{
		UserID:       u.UserID,
		Username:     u.Username,
		EmailAddress: u.EmailAddress,
		IsActive:     u.IsActive,
		Name:         u.Name,
		ReportedTo:   u.ReportedTo,
		EmployeeID:   u.EmployeeID,
		JoiningDate:  u.JoiningDate,
		PhoneNo:      u.PhoneNo,
		Department:   u.Department,
		Designation:  u.Designation,
		OfficeID:     u.OfficeID,
		RoleID:       u.RoleID,
		UserType:     u.UserType,
	}
}

func mapToListResponse(users []User) []UserResponse {
	res := make([]UserResponse, len(users))
	for i, u := range users {
		res[i] = mapToResponse(u)
	}
	return res
}
