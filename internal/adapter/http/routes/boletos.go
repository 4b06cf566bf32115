package routes

import (
	"edu_boletos/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBoletos = "/boletos"
)

func addBoletoRoutes(rg *gin.RouterGroup, boletoHandler *handlers.BoletoHandler) {
	boletos := rg.Group(PathBoletos)
	{
		boletos.POST("", boletoHandler.CreateBoleto)
		boletos.POST("/batch", boletoHandler.CreateBoletoBatch)
		boletos.GET("/:id", boletoHandler.GetBoletoByID)
		boletos.GET("/number/:number", boletoHandler.GetBoletoByNumber)
		boletos.GET("/student/:student_ref", boletoHandler.ListBoletosByStudent)

		boletos.PATCH("/:id/settle", boletoHandler.SettleBoleto)
		boletos.PATCH("/:id/cancel", boletoHandler.CancelBoleto)

		boletos.GET("/:id/pix", boletoHandler.QuotePix)
		boletos.POST("/:id/payment-link", boletoHandler.CreatePaymentLink)

		// Integração de pagamentos (webhook normalizado).
		boletos.POST("/events", boletoHandler.HandlePaymentEvent)
		boletos.POST("/sweep-overdue", boletoHandler.SweepOverdue)
	}
}
