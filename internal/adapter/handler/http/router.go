package http

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/asaparov/tendercrm/internal/adapter/config"
	"github.com/asaparov/tendercrm/internal/core/port"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	conf *config.HTTP,
	tokenService port.TokenService,
	tenderHandler *TenderHandler,
	expenseHandler *ExpenseHandler,
	accountingHandler *AccountingHandler) (*Router, error) {

	router := gin.New()

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	api.Use(authCheck(tokenService))
	{
		tenders := api.Group("/tenders")
		{
			tenders.POST("", tenderHandler.CreateTender)
			tenders.GET("", tenderHandler.ListTenders)
			tenders.GET("/:id", tenderHandler.GetTender)
			tenders.PUT("/:id", tenderHandler.UpdateTender)
			tenders.DELETE("/:id", tenderHandler.DeleteTender)

			tenders.GET("/:id/transitions", tenderHandler.ListTransitions)
			tenders.POST("/:id/status", tenderHandler.UpdateStatus)

			tenders.POST("/:id/expenses", expenseHandler.AddExpense)
			tenders.GET("/:id/expenses", expenseHandler.ListExpenses)

			tenders.GET("/:id/summary", accountingHandler.TenderSummary)
		}

		api.DELETE("/expenses/:id", expenseHandler.DeleteExpense)

		api.GET("/accounting/report", accountingHandler.Report)
	}

	return &Router{router}, nil
}

// Serve starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
