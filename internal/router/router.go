package router

import (
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginswagger "github.com/swaggo/gin-swagger"

	_ "fahs/docs"
	"fahs/internal/handler"
	"fahs/internal/middleware"
	"fahs/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	tokenSvc service.TokenService,
	sessionH *handler.SessionHandler,
	resultH *handler.ResultHandler,
	inspectionH *handler.InspectionHandler,
	healthH *handler.HealthHandler,
	allowedOrigins []string,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// API documentation
	r.GET("/swagger/*any", ginswagger.WrapHandler(swaggerfiles.Handler))

	v1 := r.Group("/api/v1")

	// Starting a session is the only unguarded wizard route; it issues the
	// token everything under /sessions/current requires.
	v1.POST("/sessions", sessionH.Start)

	// Past inspections are looked up by the ID printed on the report.
	v1.GET("/inspections/:id", inspectionH.Get)

	// Session-scoped routes resolve the session from the bearer token.
	current := v1.Group("/sessions/current")
	current.Use(middleware.SessionMiddleware(tokenSvc))

	current.GET("", sessionH.Get)
	current.PUT("/details", sessionH.UpdateDetails)
	current.POST("/photos/:slot", sessionH.StagePhoto)
	current.GET("/photos/:slot", sessionH.PhotoPreview)
	current.DELETE("/photos/:slot", sessionH.RemovePhoto)
	current.POST("/advance", sessionH.Advance)
	current.POST("/submit", sessionH.Submit)

	current.GET("/result", resultH.Result)
	current.GET("/scorecard", resultH.Scorecard)
	current.GET("/report", resultH.Report)
	current.POST("/share", resultH.Share)
	current.GET("/export/csv", resultH.ExportCSV)
	current.GET("/export/xlsx", resultH.ExportXLSX)

	return r
}
