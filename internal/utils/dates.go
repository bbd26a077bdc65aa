package utils

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ParseDeadline 解析创建表单里的截止日期：优先用明确的日期字符串
// （格式宽松，"2026-01-20"、"Jan 20 2026" 均可），否则按"N 天后"计算。
// 两者都没给则返回 nil，表示无期限项目。
func ParseDeadline(dateStr string, days int, now time.Time) (*time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr != "" {
		d, err := dateparse.ParseAny(dateStr)
		if err != nil {
			return nil, err
		}
		d = d.Truncate(24 * time.Hour)
		return &d, nil
	}

	if days > 0 {
		d := now.AddDate(0, 0, days).Truncate(24 * time.Hour)
		return &d, nil
	}

	return nil, nil
}
