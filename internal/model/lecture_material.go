package model

import "time"

// LectureMaterial 讲义资料表 — 对应 lecture_materials
// FilePath 为 Blob 存储返回的相对路径，字节内容不入库
type LectureMaterial struct {
	MaterialID  string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"material_id"`
	TeacherID   string    `gorm:"type:uuid;not null"                             json:"teacher_id"`
	SubjectID   string    `gorm:"type:uuid;not null"                             json:"subject_id"`
	Title       string    `gorm:"type:varchar(200);not null"                     json:"title"`
	Description *string   `gorm:"type:varchar(500)"                              json:"description,omitempty"`
	FilePath    *string   `gorm:"type:varchar(300)"                              json:"file_path,omitempty"`
	UploadedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"uploaded_at"`

	// 关联
	Teacher *Teacher `gorm:"foreignKey:TeacherID;references:TeacherID" json:"teacher,omitempty"`
	Subject *Subject `gorm:"foreignKey:SubjectID;references:SubjectID" json:"subject,omitempty"`
}

func (LectureMaterial) TableName() string { return "lecture_materials" }
