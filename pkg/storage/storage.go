package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// BlobStore 附件存储边界接口
// 核心只保存返回的相对路径，不关心字节内容的去向
type BlobStore interface {
	// Store 保存数据流并返回可持久化的相对路径
	Store(r io.Reader, suggestedName string) (string, error)
}

// LocalStore 本地磁盘实现
// 文件名加 uuid 前缀避免同名覆盖，路径统一使用斜杠分隔以便直接入库
type LocalStore struct {
	dir string
}

// NewLocalStore 创建本地存储，确保目录存在
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("创建上传目录失败: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

func (s *LocalStore) Store(r io.Reader, suggestedName string) (string, error) {
	name := fmt.Sprintf("%s_%s", uuid.New().String(), sanitizeName(suggestedName))
	dst := filepath.Join(s.dir, name)

	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("创建文件失败: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("写入文件失败: %w", err)
	}

	return filepath.ToSlash(filepath.Join("uploads", name)), nil
}

// sanitizeName 去除路径分隔符，防止目录穿越
func sanitizeName(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, string(os.PathSeparator), "_")
	if name == "" || name == "." {
		name = "file"
	}
	return name
}
