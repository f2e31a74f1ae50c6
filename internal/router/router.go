package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/medikit/dispenser-backend/internal/config"
	"github.com/medikit/dispenser-backend/internal/handler"
	"github.com/medikit/dispenser-backend/internal/middleware"
	"github.com/medikit/dispenser-backend/internal/response"
	"github.com/medikit/dispenser-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth          *handler.AuthHandler
	Administrador *handler.AdministradorHandler
	Aluno         *handler.AlunoHandler
	Remedio       *handler.RemedioHandler
	Transacao     *handler.TransacaoHandler
	Dashboard     *handler.DashboardHandler
	WS            *handler.WSHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
// The dashboard and transaction routes are deliberately unauthenticated:
// the ESP32 and the kiosk frontend have no session. Everything else sits
// behind the JWT middleware.
func SetupRouter(
	tokens service.TokenService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally for log correlation.
	router.Use(response.RequestIDMiddleware())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ─── Public: registration and login ────────────────────────────────
	router.POST("/register", handlers.Auth.Register)
	router.POST("/login", handlers.Auth.Login)

	// ─── Public: device and kiosk surface ──────────────────────────────
	router.GET("/dashboard/summary", handlers.Dashboard.GetSummary)
	router.GET("/transacao", handlers.Transacao.List)
	router.POST("/transacao", handlers.Transacao.Ingest)

	// ─── Public: live transaction feed ─────────────────────────────────
	wsGroup := router.Group("/ws/v1")
	{
		wsGroup.GET("/transacoes/stream", handlers.WS.TransacaoStream)
	}

	// ─── Protected: administrator session required ─────────────────────
	authed := router.Group("/")
	authed.Use(middleware.RequireJWT(tokens))
	{
		authed.GET("/admin/me", handlers.Auth.GetMe)
		authed.GET("/administradores", handlers.Administrador.List)
		authed.PUT("/perfil/:id", handlers.Administrador.UpdatePerfil)
		authed.DELETE("/perfil/:id", handlers.Administrador.DeletePerfil)

		authed.GET("/alunos", handlers.Aluno.List)
		authed.POST("/aluno", handlers.Aluno.Create)
		authed.PUT("/aluno/:id", handlers.Aluno.Update)
		authed.DELETE("/aluno/:id", handlers.Aluno.Delete)

		authed.GET("/remedios", handlers.Remedio.List)
		authed.POST("/remedio", handlers.Remedio.Create)
		authed.PUT("/remedio/:id", handlers.Remedio.Update)
		authed.DELETE("/remedio/:id", handlers.Remedio.Delete)
	}

	return router
}
