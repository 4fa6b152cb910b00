package model

// Class 班级表 — 对应 classes
type Class struct {
	ClassID     string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"class_id"`
	Name        string  `gorm:"type:varchar(50);not null"                      json:"name"` // 如 "10-A"
	Description *string `gorm:"type:varchar(200)"                              json:"description,omitempty"`
	BaseModel

	// 关联
	Students []Student `gorm:"foreignKey:ClassID" json:"students,omitempty"`
}

func (Class) TableName() string { return "classes" }
