package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOrientationTag(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
		want   string
	}{
		{"标准横图", 1920, 1080, "横图"},
		{"标准竖图", 1080, 1920, "竖图"},
		{"正方形", 800, 800, "方形"},
		{"比例 1.3 取方形", 1300, 1000, "方形"},
		{"比例略大于 1.3 取横图", 1301, 1000, "横图"},
		{"比例 0.7 取方形", 700, 1000, "方形"},
		{"比例略小于 0.7 取竖图", 699, 1000, "竖图"},
		{"高度为零兜底方形", 100, 0, "方形"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OrientationTag(tt.width, tt.height))
		})
	}
}

func TestTimeBasedTags_TimeOfDay(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{5, "清晨"},
		{7, "清晨"},
		{8, "上午"},
		{11, "上午"},
		{12, "中午"},
		{13, "中午"},
		{14, "下午"},
		{17, "下午"},
		{18, "傍晚"},
		{21, "傍晚"},
		{22, "夜晚"},
		{3, "夜晚"},
	}
	for _, tt := range tests {
		taken := time.Date(2024, 7, 15, tt.hour, 0, 0, 0, time.Local)
		tags := TimeBasedTags(taken)
		assert.Equal(t, tt.want, tags[0], "hour=%d", tt.hour)
	}
}

func TestTimeBasedTags_SeasonAndMonth(t *testing.T) {
	spring := TimeBasedTags(time.Date(2024, 4, 1, 10, 0, 0, 0, time.Local))
	assert.Contains(t, spring, "春天")
	assert.Contains(t, spring, "春季")
	assert.Contains(t, spring, "四月")
	assert.Contains(t, spring, "2024年")

	summer := TimeBasedTags(time.Date(2023, 8, 1, 10, 0, 0, 0, time.Local))
	assert.Contains(t, summer, "夏天")
	assert.Contains(t, summer, "八月")
	assert.Contains(t, summer, "2023年")

	autumn := TimeBasedTags(time.Date(2024, 10, 1, 10, 0, 0, 0, time.Local))
	assert.Contains(t, autumn, "秋季")
	assert.Contains(t, autumn, "十月")

	winter := TimeBasedTags(time.Date(2024, 12, 1, 10, 0, 0, 0, time.Local))
	assert.Contains(t, winter, "冬天")
	assert.Contains(t, winter, "十二月")

	january := TimeBasedTags(time.Date(2025, 1, 1, 10, 0, 0, 0, time.Local))
	assert.Contains(t, january, "冬季")
	assert.Contains(t, january, "一月")
}

func TestRuleTags(t *testing.T) {
	t.Run("无拍摄时间只有朝向", func(t *testing.T) {
		tags := RuleTags(1920, 1080, nil)
		assert.Equal(t, []string{"横图"}, tags)
	})

	t.Run("有拍摄时间追加时间标签", func(t *testing.T) {
		taken := time.Date(2024, 6, 15, 9, 30, 0, 0, time.Local)
		tags := RuleTags(800, 800, &taken)
		assert.Equal(t, []string{"方形", "上午", "夏天", "夏季", "六月", "2024年"}, tags)
	})

	t.Run("保持出现顺序且无重复", func(t *testing.T) {
		taken := time.Date(2024, 2, 15, 23, 0, 0, 0, time.Local)
		tags := RuleTags(500, 1000, &taken)
		seen := make(map[string]int)
		for _, tag := range tags {
			seen[tag]++
		}
		for tag, count := range seen {
			assert.Equal(t, 1, count, "标签 %q 出现了 %d 次", tag, count)
		}
		assert.Equal(t, "竖图", tags[0])
	})
}
