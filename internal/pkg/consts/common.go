package consts

const (
	// AnalysisPlaceholder 条目尚未分析时的占位文案
	AnalysisPlaceholder = "no analysis performed"
)
