package verification

import (
	"time"

	"go-ums/internal/user"
)

// Verification is the administrative approval record paired 1:1 with a
// user. A row starts pending (status=false, no verifier, no timestamp) and
// only ever moves to verified.
type Verification struct {
	ID         uint       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID     uint       `gorm:"column:user_id;not null;index" json:"user_id"`
	VerifierID *uint      `gorm:"column:verifier_id" json:"verifier_id"`
	VerifiedAt *time.Time `gorm:"column:verified_at" json:"verified_at"`
	Status     bool       `gorm:"column:status;not null;default:false" json:"status"`

	User     *user.User `gorm:"foreignKey:UserID;references:UserID" json:"-"`
	Verifier *user.User `gorm:"foreignKey:VerifierID;references:UserID" json:"-"`
}

func (Verification) TableName() string {
	return "Verification"
}

// NewPending builds the row created alongside a user at registration.
func NewPending(userID uint) *Verification {
	return &Verification{
		UserID:     userID,
		VerifierID: nil,
		VerifiedAt: nil,
		Status:     false,
	}
}
