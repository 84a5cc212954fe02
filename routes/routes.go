package routes

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/anantdinesh/selfreferral/controllers"
	"github.com/anantdinesh/selfreferral/middlewares"
	"github.com/anantdinesh/selfreferral/services"
)

func SetupRouter(logger *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middlewares.RequestLogger(logger))

	screeningSvc := services.NewScreeningService(logger)
	screeningCtl := controllers.NewScreeningController(screeningSvc)
	realtimeCtl := controllers.NewRealtimeController()

	screening := r.Group("/screening")
	{
		screening.POST("/evaluate", screeningCtl.Evaluate)
		screening.GET("/contact", screeningCtl.Contact)
	}

	r.GET("/ws/bmi", realtimeCtl.BMIPreviewWS)

	return r
}
