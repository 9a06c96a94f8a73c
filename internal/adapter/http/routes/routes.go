package routes

import (
	"log"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "oficina_xpto/docs"
	"oficina_xpto/internal/adapter/http/handlers"
	"oficina_xpto/internal/adapter/persistence/repository"
	"oficina_xpto/internal/infrastructure/database"
	"oficina_xpto/internal/infrastructure/payments"
	"oficina_xpto/internal/usecase"
	"oficina_xpto/internal/usecase/interfaces"
)

var router = gin.Default()

const defaultPort = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := defaultPort
	if raw := os.Getenv("PORT"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			log.Fatalf("[http][routes] invalid PORT %q: %v", raw, err)
		}
		port = parsed
	}

	if err := router.Run(":" + strconv.Itoa(port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	db := database.ConnectPostgres()
	pool := db.Pool

	clienteRepo := repository.NewClienteRepository(pool)
	veiculoRepo := repository.NewVeiculoRepository(pool)
	oficinaRepo := repository.NewOficinaRepository(pool)
	funcionarioRepo := repository.NewFuncionarioRepository(pool)
	agendamentoRepo := repository.NewAgendamentoRepository(pool)
	orcamentoRepo := repository.NewOrcamentoRepository(pool)
	ordemRepo := repository.NewOrdemDeServicoRepository(pool)
	pagamentoRepo := repository.NewPagamentoRepository(pool)
	pecaRepo := repository.NewPecaRepository(pool)
	servicoRepo := repository.NewServicoRepository(pool)
	falhaRepo := repository.NewFalhaRepository(pool)
	enderecoClienteRepo := repository.NewEnderecoClienteRepository(pool)
	enderecoOficinaRepo := repository.NewEnderecoOficinaRepository(pool)
	telefoneClienteRepo := repository.NewTelefoneClienteRepository(pool)
	telefoneOficinaRepo := repository.NewTelefoneOficinaRepository(pool)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	clienteHandler := handlers.NewClienteHandler(usecase.NewClienteUseCase(clienteRepo, db))
	veiculoHandler := handlers.NewVeiculoHandler(usecase.NewVeiculoUseCase(veiculoRepo, db))
	oficinaHandler := handlers.NewOficinaHandler(usecase.NewOficinaUseCase(oficinaRepo, db))
	funcionarioHandler := handlers.NewFuncionarioHandler(usecase.NewFuncionarioUseCase(funcionarioRepo, db))
	agendamentoHandler := handlers.NewAgendamentoHandler(usecase.NewAgendamentoUseCase(agendamentoRepo, db))
	orcamentoHandler := handlers.NewOrcamentoHandler(usecase.NewOrcamentoUseCase(orcamentoRepo, db))
	ordemHandler := handlers.NewOrdemDeServicoHandler(usecase.NewOrdemDeServicoUseCase(ordemRepo, db))
	pagamentoHandler := handlers.NewPagamentoHandler(usecase.NewPagamentoUseCase(pagamentoRepo, db, paymentGateway))
	pecaHandler := handlers.NewPecaHandler(usecase.NewPecaUseCase(pecaRepo, db))
	servicoHandler := handlers.NewServicoHandler(usecase.NewServicoUseCase(servicoRepo, db))
	falhaHandler := handlers.NewFalhaHandler(usecase.NewFalhaUseCase(falhaRepo, db))
	enderecoClienteHandler := handlers.NewEnderecoHandler(usecase.NewEnderecoUseCase(enderecoClienteRepo, db))
	enderecoOficinaHandler := handlers.NewEnderecoHandler(usecase.NewEnderecoUseCase(enderecoOficinaRepo, db))
	telefoneClienteHandler := handlers.NewTelefoneHandler(usecase.NewTelefoneUseCase(telefoneClienteRepo, db))
	telefoneOficinaHandler := handlers.NewTelefoneHandler(usecase.NewTelefoneUseCase(telefoneOficinaRepo, db))

	// Rotas publicas
	addPingRoutes(router.Group("/"))
	rest := router.Group("/rest")
	addRestRoutes(rest, restHandlers{
		cliente:         clienteHandler,
		veiculo:         veiculoHandler,
		oficina:         oficinaHandler,
		funcionario:     funcionarioHandler,
		agendamento:     agendamentoHandler,
		orcamento:       orcamentoHandler,
		ordemDeServico:  ordemHandler,
		pagamento:       pagamentoHandler,
		peca:            pecaHandler,
		servico:         servicoHandler,
		falha:           falhaHandler,
		enderecoCliente: enderecoClienteHandler,
		enderecoOficina: enderecoOficinaHandler,
		telefoneCliente: telefoneClienteHandler,
		telefoneOficina: telefoneOficinaHandler,
	})
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
