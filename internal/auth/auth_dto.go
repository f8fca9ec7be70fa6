package auth

type RegisterRequest struct {
	// User fields
	Username     string  `json:"username" binding:"required"`
	Password     string  `json:"password" binding:"required,min=6"`
	EmailAddress string  `json:"email_address" binding:"required,email"`
	IsActive     *bool   `json:"is_active"`
	Name         string  `json:"name" binding:"required"`
	ReportedTo   *string `json:"reported_to"`
	EmployeeID   *string `json:"employee_id"`
	JoiningDate  *string `json:"joining_date"`
	PhoneNo      string  `json:"phone_no" binding:"required"`
	Department   *string `json:"department"`
	Designation  *string `json:"designation"`
	OfficeID     *uint   `json:"office_id"`
	RoleID       *uint   `json:"role_id"`
	UserType     string  `json:"user_type" binding:"required,oneof=super_admin Employee Admin Client HR"`

	// Profile fields, all optional; omitted ones take the NA placeholder
	Address              *string `json:"address"`
	City                 *string `json:"city"`
	Pincode              *string `json:"pincode"`
	State                *string `json:"state"`
	Country              *string `json:"country"`
	OfficialEmailAddress *string `json:"official_email_address"`
	Gender               *string `json:"gender"`
	DateOfBirth          *string `json:"date_of_birth"`
	Forte                *string `json:"forte"`
	OtherSkills          *string `json:"other_skills"`
	PanCardNo            *string `json:"pan_card_no"`
	PassportNo           *string `json:"passport_no"`
	AadharNo             *string `json:"aadhar_no"`
	Nationality          *string `json:"nationality"`
	Religion             *string `json:"religion"`
	MaritalStatus        *string `json:"marital_status"`
	EmploymentOfSpouse   *string `json:"employment_of_spouse"`
	NoOfChildren         *int    `json:"no_of_children"`
}

type LoginRequest struct {
	EmailAddress string `json:"email_address" binding:"required,email"`
	Password     string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken        string `json:"accessToken"`
	RefreshToken       string `json:"refreshToken"`
	Role               string `json:"role"`
	UserID             uint   `json:"userId"`
	VerificationStatus bool   `json:"verificationStatus"`
}

type StatusResponse struct {
	IsAuthenticated    bool   `json:"isAuthenticated"`
	Role               string `json:"role"`
	UserID             uint   `json:"userId"`
	VerificationStatus bool   `json:"verificationStatus"`
}
