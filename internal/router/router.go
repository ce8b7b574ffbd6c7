package router

import (
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rodrigomoreli/brumas2/internal/config"
	"github.com/rodrigomoreli/brumas2/internal/dto"
	"github.com/rodrigomoreli/brumas2/internal/handler"
	"github.com/rodrigomoreli/brumas2/internal/middleware"
	"github.com/rodrigomoreli/brumas2/internal/model"
	"github.com/rodrigomoreli/brumas2/internal/repository"
	"github.com/rodrigomoreli/brumas2/internal/service"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB
func New(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	r.Use(middleware.ErrorHandler())

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	eventoRepo := repository.NewEventoRepository(db)
	referenciaRepo := repository.NewReferenciaRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	assessoriaRepo := repository.NewDimensaoRepository[model.Assessoria](db)
	buffetRepo := repository.NewDimensaoRepository[model.Buffet](db)
	cidadeRepo := repository.NewDimensaoRepository[model.Cidade](db)
	clienteRepo := repository.NewDimensaoRepository[model.Cliente](db)
	insumoRepo := repository.NewDimensaoRepository[model.Insumo](db)
	localEventoRepo := repository.NewDimensaoRepository[model.LocalEvento](db)
	tipoEventoRepo := repository.NewDimensaoRepository[model.TipoEvento](db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	usuarioSvc := service.NewUsuarioService(usuarioRepo)
	eventoSvc := service.NewEventoService(eventoRepo, referenciaRepo)
	statsSvc := service.NewStatsService(statsRepo)

	assessoriaSvc := service.NewDimensaoService[model.Assessoria](assessoriaRepo, "Assessorias")
	buffetSvc := service.NewDimensaoService[model.Buffet](buffetRepo, "Buffets")
	cidadeSvc := service.NewDimensaoService[model.Cidade](cidadeRepo, "Cidades")
	clienteSvc := service.NewDimensaoService[model.Cliente](clienteRepo, "Clientes")
	insumoSvc := service.NewDimensaoService[model.Insumo](insumoRepo, "Insumos")
	localEventoSvc := service.NewDimensaoService[model.LocalEvento](localEventoRepo, "Locais de Evento")
	tipoEventoSvc := service.NewDimensaoService[model.TipoEvento](tipoEventoRepo, "Tipos de Evento")

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(usuarioSvc)
	eventosH := handler.NewEventosHandler(eventoSvc)
	despesasH := handler.NewDespesasHandler(eventoSvc)
	degustacoesH := handler.NewDegustacoesHandler(eventoSvc)
	statsH := handler.NewStatsHandler(statsSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/", handler.Raiz(cfg.ProjectName))
	r.GET("/health", handler.Health(db))
	r.POST("/login/access-token", middleware.LoginRateLimiter(), authH.Login)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg, usuarioRepo)
	v1 := r.Group("/api/v1", jwtMW)

	// Users — /me for any active user, management is admin-only
	users := v1.Group("/users")
	{
		users.GET("/me", usuariosH.Me)

		admin := users.Group("", middleware.RequirePerfil(model.PerfilAdministrativo))
		{
			admin.POST("", usuariosH.Criar)
			admin.GET("", usuariosH.Listar)
			admin.GET("/:id", usuariosH.Obter)
			admin.PUT("/:id", usuariosH.Atualizar)
			admin.DELETE("/:id", usuariosH.Deletar)
		}
	}

	// Dimensions — shared catalogue, any active user
	dim := v1.Group("/dimensions")
	{
		handler.NewDimensaoHandler(assessoriaSvc,
			dto.CriarAssessoriaRequest.ToModel,
			dto.AtualizarAssessoriaRequest.Aplicar,
			dto.NovaAssessoriaResponse,
		).Registrar(dim.Group("/assessorias"))

		handler.NewDimensaoHandler(buffetSvc,
			dto.CriarBuffetRequest.ToModel,
			dto.AtualizarBuffetRequest.Aplicar,
			dto.NovoBuffetResponse,
		).Registrar(dim.Group("/buffets"))

		handler.NewDimensaoHandler(cidadeSvc,
			dto.CriarCidadeRequest.ToModel,
			dto.AtualizarCidadeRequest.Aplicar,
			dto.NovaCidadeResponse,
		).Registrar(dim.Group("/cidades"))

		handler.NewDimensaoHandler(clienteSvc,
			dto.CriarClienteRequest.ToModel,
			dto.AtualizarClienteRequest.Aplicar,
			dto.NovoClienteResponse,
		).Registrar(dim.Group("/clientes"))

		handler.NewDimensaoHandler(insumoSvc,
			dto.CriarInsumoRequest.ToModel,
			dto.AtualizarInsumoRequest.Aplicar,
			dto.NovoInsumoResponse,
		).Registrar(dim.Group("/insumos"))

		handler.NewDimensaoHandler(localEventoSvc,
			dto.CriarLocalEventoRequest.ToModel,
			dto.AtualizarLocalEventoRequest.Aplicar,
			dto.NovoLocalEventoResponse,
		).Registrar(dim.Group("/locais_evento"))

		handler.NewDimensaoHandler(tipoEventoSvc,
			dto.CriarTipoEventoRequest.ToModel,
			dto.AtualizarTipoEventoRequest.Aplicar,
			dto.NovoTipoEventoResponse,
		).Registrar(dim.Group("/tipos_eventos"))
	}

	// Events — both profiles; ownership rules live in the service
	ev := v1.Group("/eventos", middleware.RequirePerfil(model.PerfilAdministrativo, model.PerfilOperacional))
	{
		ev.POST("", eventosH.Criar)
		ev.GET("", eventosH.Listar)
		ev.GET("/:id", eventosH.Obter)
		ev.PATCH("/:id", eventosH.Atualizar)
		ev.DELETE("/:id", eventosH.Deletar)

		ev.GET("/:id/despesas", despesasH.Listar)
		ev.POST("/:id/despesas", despesasH.Criar)
		ev.PATCH("/:id/despesas/:despesa_id", despesasH.Atualizar)
		ev.DELETE("/:id/despesas/:despesa_id", despesasH.Deletar)

		ev.GET("/:id/degustacoes", degustacoesH.Listar)
		ev.POST("/:id/degustacoes", degustacoesH.Criar)
		ev.PATCH("/:id/degustacoes/:degustacao_id", degustacoesH.Atualizar)
		ev.DELETE("/:id/degustacoes/:degustacao_id", degustacoesH.Deletar)

		// Reports — static segment takes precedence over :id
		stats := ev.Group("/stats")
		{
			stats.GET("/geral", statsH.Geral)
			stats.GET("/por-mes", statsH.PorMes)
			stats.GET("/por-status", statsH.PorStatus)
			stats.GET("/top-clientes", statsH.TopClientes)
			stats.GET("/despesas-por-insumo", statsH.DespesasPorInsumo)
			stats.GET("/dashboard", statsH.Dashboard)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
