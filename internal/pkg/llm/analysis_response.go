package llm

import (
	"strings"

	"github.com/goccy/go-json"
)

// AnalysisResult 结构化分析结果。Degraded 表示回复没能按约定解析，
// 此时 Feedback 为模型原文，数值字段取默认值
type AnalysisResult struct {
	Sentiment float64
	Emotions  map[string]float64
	Feedback  string
	Degraded  bool
}

type returnAnalysis struct {
	Sentiment *float64           `json:"sentiment"`
	Emotions  map[string]float64 `json:"emotions"`
	Feedback  string             `json:"feedback"`
}

// ParseAnalysis 从回复文本中定位第一个 '{' 与最后一个 '}' 之间的 JSON 并解析，
// 缺失字段取默认值 (sentiment=0, emotions 为空, feedback 为原文)。
// 任何解析失败都降级为携带原文的结果，绝不向上抛错
func ParseAnalysis(raw string) *AnalysisResult {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return degradedResult(raw)
	}

	var temp returnAnalysis
	if err := json.Unmarshal([]byte(raw[start:end+1]), &temp); err != nil {
		return degradedResult(raw)
	}

	res := &AnalysisResult{
		Emotions: temp.Emotions,
		Feedback: temp.Feedback,
	}
	if temp.Sentiment != nil {
		res.Sentiment = *temp.Sentiment
	}
	if res.Emotions == nil {
		res.Emotions = map[string]float64{}
	}
	if res.Feedback == "" {
		res.Feedback = raw
	}
	return res
}

func degradedResult(raw string) *AnalysisResult {
	return &AnalysisResult{
		Sentiment: 0.0,
		Emotions:  map[string]float64{},
		Feedback:  raw,
		Degraded:  true,
	}
}
