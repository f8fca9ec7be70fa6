package office

type Office struct {
	OfficeID uint `gorm:"column:office_id;primaryKey;autoIncrement" json:"office_id"`
	Status   bool `gorm:"column:status;default:true" json:"status"`
}

func (Office) TableName() string {
	return "Office"
}
