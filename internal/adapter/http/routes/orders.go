package routes

import (
	"tecnicontrol/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathOrders = "/ordenes"

func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/estadisticas", orderHandler.Stats)
		orders.GET("/secuencias", orderHandler.Sequences)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.PUT("/:id", orderHandler.UpdateOrderDetails)
		orders.DELETE("/:id", orderHandler.DeleteOrder)
	}
}
