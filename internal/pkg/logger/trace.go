package logger

import (
	"context"
	log "log/slog"
)

// TraceIDKey 贯穿请求与定时任务的链路标识在 Context 中的键
const TraceIDKey = "trace_id"

// ContextHandler 把 ctx 里的 trace_id 附加到每条记录上
type ContextHandler struct {
	log.Handler
}

func (s *ContextHandler) Handle(ctx context.Context, r log.Record) error {
	if ctx != nil {
		if traceID, ok := ctx.Value(TraceIDKey).(string); ok {
			r.AddAttrs(log.String(TraceIDKey, traceID))
		}
	}
	return s.Handler.Handle(ctx, r)
}
