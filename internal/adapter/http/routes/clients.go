package routes

import (
	"tecnicontrol/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathClients = "/clientes"

func addClientRoutes(rg *gin.RouterGroup, clientHandler *handlers.ClientHandler) {
	clients := rg.Group(PathClients)
	{
		clients.POST("", clientHandler.CreateClient)
		clients.GET("", clientHandler.ListClients)
		clients.GET("/:id", clientHandler.GetClient)
		clients.PATCH("/:id", clientHandler.UpdateClient)
		clients.DELETE("/:id", clientHandler.DeleteClient)
		clients.POST("/:id/equipos", clientHandler.AddDevice)
	}
}
