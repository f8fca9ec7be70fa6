package userdetails

import (
	"fmt"
	"time"
)

type CreateDetailsRequest struct {
	UserID               uint    `json:"user_id" binding:"required"`
	EmployeeID           string  `json:"employee_id"`
	Name                 string  `json:"name"`
	Address              string  `json:"address"`
	City                 string  `json:"city"`
	Pincode              string  `json:"pincode"`
	State                string  `json:"state"`
	Country              string  `json:"country"`
	Phone                string  `json:"phone"`
	EmailAddress         string  `json:"email_address"`
	OfficialEmailAddress string  `json:"official_email_address"`
	Gender               string  `json:"gender"`
	DateOfBirth          *string `json:"date_of_birth"`
	Forte                *string `json:"forte"`
	OtherSkills          *string `json:"other_skills"`
	PanCardNo            string  `json:"pan_card_no"`
	PassportNo           string  `json:"passport_no"`
	AadharNo             string  `json:"aadhar_no"`
	Nationality          string  `json:"nationality"`
	Religion             string  `json:"religion"`
	MaritalStatus        string  `json:"marital_status"`
	EmploymentOfSpouse   *string `json:"employment_of_spouse"`
	NoOfChildren         *int    `json:"no_of_children"`
}

// UpdateDetailsRequest is a field-by-field patch: a nil pointer means the
// client did not send the field, so the stored value is kept.
type UpdateDetailsRequest struct {
	EmployeeID           *string `json:"employee_id"`
	Name                 *string `json:"name"`
	Address              *string `json:"address"`
	City                 *string `json:"city"`
	Pincode              *string `json:"pincode"`
	State                *string `json:"state"`
	Country              *string `json:"country"`
	Phone                *string `json:"phone"`
	EmailAddress         *string `json:"email_address"`
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

// UpdateBasicRequest patches the profile fields exposed by the combined
// basic-update endpoint. Name, when present, also patches Users.name.
type UpdateBasicRequest struct {
	Name        *string `json:"name"`
	Phone       *string `json:"phone"`
	Birthday    *string `json:"birthday"`
	Address     *string `json:"address"`
	City        *string `json:"city"`
	State       *string `json:"state"`
	Pincode     *string `json:"pincode"`
	Country     *string `json:"country"`
	Gender      *string `json:"gender"`
	Forte       *string `json:"forte"`
	OtherSkills *string `json:"other_skills"`
	Email       *string `json:"email"`
}

type EnrichedDetailsResponse struct {
	DetailsWithRole
	RoleName string `json:"role_name"`
}

// ParseDate accepts the wire formats used by the legacy clients: RFC 3339
// or a bare YYYY-MM-DD.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
