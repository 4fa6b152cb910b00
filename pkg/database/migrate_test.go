package database

import (
	"regexp"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

// 种子管理员是新部署唯一可登录的账号，
// 迁移里的密码摘要必须能通过默认口令校验。
func TestSeedAdminPassword_Verifies(t *testing.T) {
	sql, err := migrationsFS.ReadFile("migrations/000001_init_schema.up.sql")
	if err != nil {
		t.Fatalf("读取迁移文件失败: %v", err)
	}

	re := regexp.MustCompile(`'(\$2[aby]\$\d{2}\$[./A-Za-z0-9]{53})'`)
	match := re.FindSubmatch(sql)
	if match == nil {
		t.Fatal("迁移中未找到 bcrypt 摘要")
	}

	if err := bcrypt.CompareHashAndPassword(match[1], []byte("Admin@123")); err != nil {
		t.Errorf("种子管理员摘要与默认口令不匹配: %v", err)
	}
}
