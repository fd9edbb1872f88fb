package service

import (
	"fmt"
	"time"
)

// 本文件是规则标签的纯函数部分：只看图片的宽高与拍摄时间，
// 不碰数据库，也不依赖外部模型。上传流程先走这里，再走视觉打标。

// OrientationTag 按宽高比归类图片朝向。
// 宽高比大于 1.3 算横图，小于 0.7 算竖图，其余算方形。
func OrientationTag(width, height int) string {
	if height <= 0 {
		return "方形"
	}
	ratio := float64(width) / float64(height)
	switch {
	case ratio > 1.3:
		return "横图"
	case ratio < 0.7:
		return "竖图"
	default:
		return "方形"
	}
}

var chineseMonthNames = []string{
	"一月", "二月", "三月", "四月", "五月", "六月",
	"七月", "八月", "九月", "十月", "十一月", "十二月",
}

// TimeBasedTags 从拍摄时间派生时段、季节、月份、年份标签。
func TimeBasedTags(t time.Time) []string {
	var tags []string

	hour := t.Hour()
	switch {
	case hour >= 5 && hour < 8:
		tags = append(tags, "清晨")
	case hour >= 8 && hour < 12:
		tags = append(tags, "上午")
	case hour >= 12 && hour < 14:
		tags = append(tags, "中午")
	case hour >= 14 && hour < 18:
		tags = append(tags, "下午")
	case hour >= 18 && hour < 22:
		tags = append(tags, "傍晚")
	default:
		tags = append(tags, "夜晚")
	}

	month := int(t.Month())
	switch {
	case month >= 3 && month <= 5:
		tags = append(tags, "春天", "春季")
	case month >= 6 && month <= 8:
		tags = append(tags, "夏天", "夏季")
	case month >= 9 && month <= 11:
		tags = append(tags, "秋天", "秋季")
	default:
		tags = append(tags, "冬天", "冬季")
	}

	tags = append(tags, chineseMonthNames[month-1])
	tags = append(tags, fmt.Sprintf("%d年", t.Year()))
	return tags
}

// RuleTags 汇总全部规则标签：朝向必有，时间类标签仅在有拍摄时间时追加。
// 结果按出现顺序去重。
func RuleTags(width, height int, takenTime *time.Time) []string {
	seen := make(map[string]struct{})
	var tags []string
	add := func(tag string) {
		if _, ok := seen[tag]; ok {
			return
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}

	add(OrientationTag(width, height))
	if takenTime != nil {
		for _, tag := range TimeBasedTags(*takenTime) {
			add(tag)
		}
	}
	return tags
}
