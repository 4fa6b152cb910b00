package model

import "time"

// ── 公告受众常量 ──

const (
	AudienceAll      = "all"
	AudienceStudents = "students"
	AudienceTeachers = "teachers"
)

// ValidAudience 判断受众是否属于合法闭集
func ValidAudience(s string) bool {
	return s == AudienceAll || s == AudienceStudents || s == AudienceTeachers
}

// Announcement 公告表 — 对应 announcements
// audience 仅供展示层过滤，核心不做强制
type Announcement struct {
	AnnouncementID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"announcement_id"`
	TeacherID      string    `gorm:"type:uuid;not null"                             json:"teacher_id"`
	Title          string    `gorm:"type:varchar(200);not null"                     json:"title"`
	Content        string    `gorm:"type:text;not null"                             json:"content"`
	Audience       string    `gorm:"type:varchar(20);not null;default:'all'"        json:"audience"` // all | students | teachers
	CreatedAt      time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`

	// 关联
	Teacher *Teacher `gorm:"foreignKey:TeacherID;references:TeacherID" json:"teacher,omitempty"`
}

func (Announcement) TableName() string { return "announcements" }
