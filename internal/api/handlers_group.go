package api

import "ReflectAI/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	UserHandler     *handler.UserHandler
	EntryHandler    *handler.EntryHandler
	MoodHandler     *handler.MoodHandler
	AnalysisHandler *handler.AnalysisHandler
	DiagHandler     *handler.DiagHandler
	WsHandler       *handler.WsHandler
}
