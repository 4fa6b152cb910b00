package service

import (
	"errors"
	"time"
)

// dateLayout 所有对外日期字段统一用 ISO 日期
const dateLayout = "2006-01-02"

var (
	ErrInvalidDate = errors.New("日期格式不正确，应为 YYYY-MM-DD")
	// ErrHasDependents 存在关联记录时拒绝删除
	ErrHasDependents = errors.New("存在关联记录，无法删除")
)

// IDGenerator 生成占位 ID，测试中可替换为确定性实现
type IDGenerator func() string

// parseDate 解析 YYYY-MM-DD 字符串为 UTC 零点时间
func parseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// parseDatePtr 解析可选日期字段，nil 原样返回
func parseDatePtr(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := parseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// formatDate 格式化为 YYYY-MM-DD
func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// formatDatePtr 格式化可选日期，nil 原样返回
func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

// formatTime 格式化为 RFC3339 时间戳
func formatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}
