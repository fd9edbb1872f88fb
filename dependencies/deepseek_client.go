// dependencies/deepseek_client.go
package dependencies

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/Xushengqwer/image_service/config"
	"github.com/Xushengqwer/image_service/core"
)

// searchKeywordSystemPrompt 约束模型只输出逗号分隔的关键词。
const searchKeywordSystemPrompt = "你是一个图片检索关键词生成器。" +
	"用户会给你一段关于要查找图片的自然语言描述，" +
	"请提取 3-10 个简短的中文或英文关键词，用于数据库搜索。" +
	"只输出用中文逗号分隔的关键词，不要输出任何解释或多余文本。"

// SearchKeywordClient 定义了把自然语言查询扩展为检索关键词的能力。
type SearchKeywordClient interface {
	// ExpandQuery 调用大模型把查询原文扩展为关键词列表。
	ExpandQuery(ctx context.Context, query string) ([]string, error)
}

type deepSeekClient struct {
	httpClient *http.Client
	cfg        *config.DeepSeekConfig
	logger     *core.ZapLogger
}

// NewDeepSeekClient 是 deepSeekClient 的构造函数。
func NewDeepSeekClient(cfg *config.DeepSeekConfig, logger *core.ZapLogger) SearchKeywordClient {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &deepSeekClient{
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		cfg:    cfg,
		logger: logger,
	}
}

func (c *deepSeekClient) ExpandQuery(ctx context.Context, query string) ([]string, error) {
	if c.cfg.APIKey == "" {
		return nil, fmt.Errorf("DeepSeek API Key 未配置")
	}

	payload := map[string]interface{}{
		"model": c.cfg.Model,
		"messages": []map[string]string{
			{"role": "system", "content": searchKeywordSystemPrompt},
			{"role": "user", "content": query},
		},
		"temperature": 0.3,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("序列化 DeepSeek 请求失败: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.APIURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("构造 DeepSeek 请求失败: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("调用 DeepSeek 失败: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("读取 DeepSeek 响应失败: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("DeepSeek 返回非200状态码: %d, 响应: %s", resp.StatusCode, string(respBody))
	}

	var parsed chatCompletionResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("解析 DeepSeek 响应失败: %w", err)
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return nil, fmt.Errorf("DeepSeek 返回内容为空")
	}

	return ParseSearchKeywords(parsed.Choices[0].Message.Content, query), nil
}

// ParseSearchKeywords 把模型回复拆成去重后的关键词列表。
// 模型不守规矩输出了无法切分的内容时，退回用查询原文本身做关键词。
func ParseSearchKeywords(content, fallbackQuery string) []string {
	content = strings.ReplaceAll(content, "\n", " ")

	seen := make(map[string]struct{})
	var keywords []string
	for _, part := range commaSplitRe.Split(content, -1) {
		keyword := strings.TrimSpace(part)
		if keyword == "" {
			continue
		}
		if _, ok := seen[keyword]; ok {
			continue
		}
		seen[keyword] = struct{}{}
		keywords = append(keywords, keyword)
	}

	if len(keywords) == 0 {
		keywords = append(keywords, strings.TrimSpace(fallbackQuery))
	}
	return keywords
}
