package routes

import (
	"tecnicontrol/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathNegocio  = "/negocio"
	PathContador = "/contador"
)

func addNegocioRoutes(rg *gin.RouterGroup, negocioHandler *handlers.NegocioHandler) {
	rg.GET(PathNegocio, negocioHandler.GetNegocio)
	rg.PATCH(PathNegocio, negocioHandler.UpdateNegocio)

	contador := rg.Group(PathContador)
	{
		contador.GET("", negocioHandler.GetContador)
		contador.POST("/siguiente", negocioHandler.NextNumber)
	}
}
