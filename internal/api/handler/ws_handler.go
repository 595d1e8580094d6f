package handler

import (
	"ReflectAI/internal/pkg/consts"
	"ReflectAI/internal/pkg/redis"
	"ReflectAI/internal/pkg/response"
	"ReflectAI/internal/pkg/security"
	"ReflectAI/internal/service"
	"context"
	log "log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type WsHandler struct {
	entrySvc service.EntryService
	rdb      *redis.Client
}

func NewWsHandler(entrySvc service.EntryService, rdb *redis.Client) *WsHandler {
	return &WsHandler{
		entrySvc: entrySvc,
		rdb:      rdb,
	}
}

// feedTokenUser 校验 ws token 并返回用户 ID。
// 与 AuthMiddleware 同样先查签名黑名单，已登出的 token 不能再开实时流
func feedTokenUser(ctx context.Context, cache service.Cache, token string) (string, error) {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return "", err
	}
	value, err := cache.GetValue(ctx, signature)
	if err != nil {
		return "", err
	}
	if value != "" {
		return "", service.UnauthorizedError
	}
	claims, err := security.ValidateToken(token)
	if err != nil {
		return "", err
	}
	return claims.UserID, nil
}

// Feed 日记实时流：连接时先推全量快照，之后每次条目变更广播到来
// 都重新拉取并推送最新快照。客户端断开即取消订阅
func (s *WsHandler) Feed(c *gin.Context) {
	// 鉴权，ws 握手无法带 Authorization 头，token 走查询参数
	token := c.Query("token")
	if token == "" {
		response.Error(c, service.UnauthorizedError)
		return
	}
	userID, err := feedTokenUser(c.Request.Context(), s.rdb, token)
	if err != nil {
		log.Warn("WS 鉴权失败", "err", err)
		response.Error(c, service.UnauthorizedError)
		return
	}

	// 升级 Websocket
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error("WS 协议升级失败", "err", err)
		return
	}
	defer func() {
		_ = conn.Close()
	}()

	// 订阅该用户的变更频道
	pubsub := s.rdb.Subscribe(context.Background(), consts.JournalFeedKey+userID)
	defer func() {
		_ = pubsub.Close()
	}()

	log.Info("用户 WS 连接已建立", "userID", userID)

	if err := s.pushSnapshot(conn, userID); err != nil {
		log.Error("WS 推送初始快照失败", "userID", userID, "err", err)
		return
	}

	stopChan := make(chan struct{})

	// 读循环：监听客户端主动断开
	go func() {
		for {
			_, _, err := conn.ReadMessage()
			if err != nil {
				close(stopChan)
				return
			}
		}
	}()

	// 写循环：每次变更广播都推送最新快照
	redisCh := pubsub.Channel()
	for {
		select {
		case <-redisCh:
			if err := s.pushSnapshot(conn, userID); err != nil {
				log.Error("WS 推送失败", "userID", userID, "err", err)
				return
			}
		case <-stopChan:
			log.Info("用户 WS 连接已断开", "userID", userID)
			return
		}
	}
}

func (s *WsHandler) pushSnapshot(conn *websocket.Conn, userID string) error {
	entries := s.entrySvc.ListEntries(context.Background(), userID)
	payload, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	_ = conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return conn.WriteMessage(websocket.TextMessage, payload)
}
