// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"tripagent/internal/chat"
	"tripagent/internal/http/handlers"
	"tripagent/internal/http/middleware"
)

func NewRouter(chatSvc *chat.Service, logger *logrus.Logger, allowedOrigins []string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(allowedOrigins))

	chatHandler := handlers.NewChatHandler(chatSvc)
	r.POST("/api/chat", chatHandler.Chat)
	r.POST("/api/search", chatHandler.SmartSearch)
	r.GET("/api/debug/search-intent", chatHandler.DebugIntent)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "ai-agent"})
	})

	return r
}
