package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Входящий вебхук транспорта сообщений
	api.POST("/webhook/twilio", h.incomingMessage)

	// Маршруты доски оператора, закрытие защищено API-ключом
	cases := api.Group("/cases")
	{
		cases.GET("", h.listCases)
		cases.POST("/:id/close", APIKeyAuthMiddleware(h.cfg, h.logger), h.closeCase)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
