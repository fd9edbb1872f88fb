// dependencies/vision_client.go
package dependencies

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/Xushengqwer/image_service/config"
	"github.com/Xushengqwer/image_service/core"
)

// VisionClient 定义了视觉打标能力：给一张图片内容，产出若干中文标签。
type VisionClient interface {
	// AnalyzeImage 调用视觉大模型识别图片内容并解析出标签。
	// - 调用失败或解析为空时回退到按文件名猜测，最终至少返回一个标签。
	AnalyzeImage(ctx context.Context, imageData []byte, mimeType, filename string) []string
}

type visionClient struct {
	httpClient *http.Client
	cfg        *config.VisionConfig
	logger     *core.ZapLogger
}

// NewVisionClient 是 visionClient 的构造函数。
// HTTP 客户端带 otelhttp 传输层，外呼全部进链路追踪。
func NewVisionClient(cfg *config.VisionConfig, logger *core.ZapLogger) VisionClient {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &visionClient{
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		cfg:    cfg,
		logger: logger,
	}
}

// chatCompletionResponse 仅取我们关心的字段。
type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *visionClient) AnalyzeImage(ctx context.Context, imageData []byte, mimeType, filename string) []string {
	tags, err := c.requestVisionTags(ctx, imageData, mimeType)
	if err != nil {
		c.logger.Warn("视觉模型打标失败，回退到文件名猜测",
			zap.String("filename", filename),
			zap.Error(err),
		)
		return FallbackTagsFromFilename(filename)
	}
	if len(tags) == 0 {
		c.logger.Warn("视觉模型响应未解析出有效标签，回退到文件名猜测", zap.String("filename", filename))
		return FallbackTagsFromFilename(filename)
	}
	return tags
}

func (c *visionClient) requestVisionTags(ctx context.Context, imageData []byte, mimeType string) ([]string, error) {
	if c.cfg.APIKey == "" {
		return nil, fmt.Errorf("视觉模型 API Key 未配置")
	}

	dataURL := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(imageData))
	payload := map[string]interface{}{
		"model": c.cfg.Model,
		"messages": []map[string]interface{}{
			{
				"role": "user",
				"content": []map[string]interface{}{
					{
						"type": "text",
						"text": "分析这张图片的内容，只输出图片中最主要的内容，用逗号分隔输出2-4个中文标签，不要其他文字。例如：风景,人物,动物,宠物,棕色,室内",
					},
					{
						"type": "image_url",
						"image_url": map[string]string{
							"url": dataURL,
						},
					},
				},
			},
		},
		"max_tokens":  50,
		"temperature": 0.1,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("序列化视觉模型请求失败: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.APIURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("构造视觉模型请求失败: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("调用视觉模型失败: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("读取视觉模型响应失败: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("视觉模型返回非200状态码: %d, 响应: %s", resp.StatusCode, string(respBody))
	}

	var parsed chatCompletionResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("解析视觉模型响应失败: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return nil, fmt.Errorf("视觉模型响应格式异常: choices 为空")
	}

	return ParseVisionTags(parsed.Choices[0].Message.Content), nil
}

// visionTagBlocklist 收集模型常见的"描述性废话"片段，含这些片段的词不算内容标签。
var visionTagBlocklist = []string{
	"图片", "照片", "图像", "这是", "包含", "可以看到", "主要有", "包括",
	"元素", "场景", "对象", "颜色", "氛围", "适合", "标签", "关键词",
	"详细", "分析", "识别", "给出", "输出", "不要", "直接", "作为",
	"请", "要求", "使用", "中文", "具体", "明确", "逗号", "分隔",
	"根据", "观察", "发现", "显示", "呈现", "应该", "可以", "需要",
	"例如", "比如", "可能", "一定", "非常", "特别",
}

var (
	trailingPunctRe = regexp.MustCompile(`[。.!?？\s]$`)
	quoteEdgeRe     = regexp.MustCompile(`^["']|["']$`)
	chineseWordRe   = regexp.MustCompile(`[\x{4e00}-\x{9fa5}]{2,4}`)
	commaSplitRe    = regexp.MustCompile(`[，,]`)
)

// ParseVisionTags 从视觉模型的自由文本回复中提取标签。
// 先按中英文逗号切分清洗；一个都没提取到时退而求其次，
// 直接扫描文本里 2-4 字的中文词。最多返回 8 个，保持出现顺序去重。
func ParseVisionTags(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	seen := make(map[string]struct{})
	var tags []string
	add := func(tag string) {
		if _, ok := seen[tag]; ok {
			return
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}

	for _, part := range commaSplitRe.Split(text, -1) {
		tag := strings.TrimSpace(part)
		tag = trailingPunctRe.ReplaceAllString(tag, "")
		tag = quoteEdgeRe.ReplaceAllString(tag, "")
		if isValidVisionTag(tag) {
			add(tag)
		}
	}

	if len(tags) == 0 {
		for _, word := range chineseWordRe.FindAllString(text, -1) {
			if isValidVisionTag(word) {
				add(word)
			}
		}
	}

	if len(tags) > 8 {
		tags = tags[:8]
	}
	return tags
}

func isValidVisionTag(tag string) bool {
	length := len([]rune(tag))
	if length < 2 || length > 6 {
		return false
	}
	for _, blocked := range visionTagBlocklist {
		if strings.Contains(tag, blocked) {
			return false
		}
	}
	return true
}

// filenamePattern 把文件名里的英文线索映射为一组中文标签。
type filenamePattern struct {
	re   *regexp.Regexp
	tags []string
}

var filenamePatterns = []filenamePattern{
	// 动物
	{regexp.MustCompile(`dog|puppy|canine`), []string{"狗", "动物", "宠物", "犬类"}},
	{regexp.MustCompile(`cat|kitten|feline`), []string{"猫", "动物", "宠物", "猫咪"}},
	{regexp.MustCompile(`bird|avian`), []string{"鸟类", "动物", "飞禽"}},
	{regexp.MustCompile(`fish|aquatic`), []string{"鱼类", "动物", "水生动物"}},
	// 人物
	{regexp.MustCompile(`person|people|man|woman|human`), []string{"人物", "人像", "人类"}},
	{regexp.MustCompile(`child|baby|kid`), []string{"儿童", "小孩", "婴儿"}},
	{regexp.MustCompile(`family`), []string{"家庭", "亲情", "家人"}},
	{regexp.MustCompile(`portrait`), []string{"肖像", "人像", "面部"}},
	// 风景
	{regexp.MustCompile(`landscape|scenery|view`), []string{"风景", "自然", "景观"}},
	{regexp.MustCompile(`mountain|hill`), []string{"山脉", "山景", "山峰"}},
	{regexp.MustCompile(`forest|wood`), []string{"森林", "树木", "林木"}},
	{regexp.MustCompile(`beach|coast|sea`), []string{"海滩", "海洋", "海岸"}},
	{regexp.MustCompile(`sunset|sunrise`), []string{"日落", "日出", "黄昏"}},
	// 建筑
	{regexp.MustCompile(`building|architecture`), []string{"建筑", "建筑物"}},
	{regexp.MustCompile(`city|urban`), []string{"城市", "都市", "城区"}},
	{regexp.MustCompile(`house|home`), []string{"房屋", "住宅", "房子"}},
	{regexp.MustCompile(`bridge`), []string{"桥梁", "桥"}},
	// 其他
	{regexp.MustCompile(`food|meal|dish`), []string{"食物", "美食", "餐饮"}},
	{regexp.MustCompile(`car|vehicle|auto`), []string{"汽车", "车辆", "交通工具"}},
	{regexp.MustCompile(`document|certificate|award`), []string{"文档", "证书", "奖状"}},
	{regexp.MustCompile(`text|word`), []string{"文字", "文本"}},
}

// FallbackTagsFromFilename 视觉模型不可用时按文件名里的英文线索猜测标签。
// 什么都猜不到时兜底返回 ["图片"]。
func FallbackTagsFromFilename(filename string) []string {
	name := strings.ToLower(filepath.Base(filename))

	seen := make(map[string]struct{})
	var tags []string
	for _, pattern := range filenamePatterns {
		if !pattern.re.MatchString(name) {
			continue
		}
		for _, tag := range pattern.tags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}

	if len(tags) == 0 {
		tags = append(tags, "图片")
	}
	return tags
}
