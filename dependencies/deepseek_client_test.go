package dependencies

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appConfig "github.com/Xushengqwer/image_service/config"
)

func TestParseSearchKeywords(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		fallback string
		want     []string
	}{
		{
			name:     "中文逗号分隔",
			content:  "海滩，日落，夏天",
			fallback: "q",
			want:     []string{"海滩", "日落", "夏天"},
		},
		{
			name:     "英文逗号混用",
			content:  "beach,日落, 海边",
			fallback: "q",
			want:     []string{"beach", "日落", "海边"},
		},
		{
			name:     "换行被当作空白处理",
			content:  "海滩，\n日落",
			fallback: "q",
			want:     []string{"海滩", "日落"},
		},
		{
			name:     "去重并保持顺序",
			content:  "猫，狗，猫",
			fallback: "q",
			want:     []string{"猫", "狗"},
		},
		{
			name:     "无法切分时退回查询原文",
			content:  "   ",
			fallback: " 去年夏天的海边 ",
			want:     []string{"去年夏天的海边"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSearchKeywords(tt.content, tt.fallback))
		})
	}
}

func TestDeepSeekClient_ExpandQuery(t *testing.T) {
	logger := newTestLogger(t)

	t.Run("正常响应", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

			var payload map[string]interface{}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			messages, ok := payload["messages"].([]interface{})
			require.True(t, ok)
			require.Len(t, messages, 2)

			resp := map[string]interface{}{
				"choices": []map[string]interface{}{
					{"message": map[string]string{"content": "海滩，日落，夏天"}},
				},
			}
			_ = json.NewEncoder(w).Encode(resp)
		}))
		defer server.Close()

		client := NewDeepSeekClient(&appConfig.DeepSeekConfig{
			APIKey: "test-key",
			APIURL: server.URL,
			Model:  "deepseek-chat",
		}, logger)

		keywords, err := client.ExpandQuery(context.Background(), "去年夏天在海边拍的日落")
		require.NoError(t, err)
		assert.Equal(t, []string{"海滩", "日落", "夏天"}, keywords)
	})

	t.Run("非200状态码返回错误", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		client := NewDeepSeekClient(&appConfig.DeepSeekConfig{
			APIKey: "test-key",
			APIURL: server.URL,
		}, logger)

		_, err := client.ExpandQuery(context.Background(), "海边日落")
		assert.Error(t, err)
	})

	t.Run("未配置密钥返回错误", func(t *testing.T) {
		client := NewDeepSeekClient(&appConfig.DeepSeekConfig{}, logger)
		_, err := client.ExpandQuery(context.Background(), "海边日落")
		assert.Error(t, err)
	})
}
