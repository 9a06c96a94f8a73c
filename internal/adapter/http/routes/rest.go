package routes

import (
	"github.com/gin-gonic/gin"

	"oficina_xpto/internal/adapter/http/handlers"
)

const (
	PathCliente         = "/cliente"
	PathVeiculo         = "/veiculo"
	PathOficina         = "/oficina"
	PathFuncionario     = "/funcionario"
	PathAgendamento     = "/agendamento"
	PathOrcamento       = "/orcamento"
	PathOrdemDeServico  = "/ordemDeServico"
	PathPagamento       = "/pagamento"
	PathPecas           = "/pecas"
	PathServicos        = "/servicos"
	PathFalhas          = "/falhas"
	PathEnderecoCliente = "/enderecoCliente"
	PathEnderecoOficina = "/enderecoOficina"
	PathTelefoneCliente = "/telefoneCliente"
	PathTelefoneOficina = "/telefoneOficina"
)

type restHandlers struct {
	cliente         *handlers.ClienteHandler
	veiculo         *handlers.VeiculoHandler
	oficina         *handlers.OficinaHandler
	funcionario     *handlers.FuncionarioHandler
	agendamento     *handlers.AgendamentoHandler
	orcamento       *handlers.OrcamentoHandler
	ordemDeServico  *handlers.OrdemDeServicoHandler
	pagamento       *handlers.PagamentoHandler
	peca            *handlers.PecaHandler
	servico         *handlers.ServicoHandler
	falha           *handlers.FalhaHandler
	enderecoCliente *handlers.EnderecoHandler
	enderecoOficina *handlers.EnderecoHandler
	telefoneCliente *handlers.TelefoneHandler
	telefoneOficina *handlers.TelefoneHandler
}

// crudHandler is the surface every resource handler shares.
type crudHandler interface {
	Cadastre(c *gin.Context)
	FindAll(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

func addCRUDRoutes(rg *gin.RouterGroup, path string, h crudHandler) {
	group := rg.Group(path)
	{
		group.POST("/cadastre", h.Cadastre)
		group.GET("/all", h.FindAll)
		group.PUT("/:id", h.Update)
		group.DELETE("/:id", h.Delete)
	}
}

func addRestRoutes(rg *gin.RouterGroup, h restHandlers) {
	addCRUDRoutes(rg, PathCliente, h.cliente)
	addCRUDRoutes(rg, PathVeiculo, h.veiculo)
	addCRUDRoutes(rg, PathOficina, h.oficina)
	addCRUDRoutes(rg, PathFuncionario, h.funcionario)
	addCRUDRoutes(rg, PathAgendamento, h.agendamento)
	addCRUDRoutes(rg, PathOrcamento, h.orcamento)
	addCRUDRoutes(rg, PathOrdemDeServico, h.ordemDeServico)
	addCRUDRoutes(rg, PathPagamento, h.pagamento)
	addCRUDRoutes(rg, PathPecas, h.peca)
	addCRUDRoutes(rg, PathServicos, h.servico)
	addCRUDRoutes(rg, PathFalhas, h.falha)
	addCRUDRoutes(rg, PathEnderecoCliente, h.enderecoCliente)
	addCRUDRoutes(rg, PathEnderecoOficina, h.enderecoOficina)
	addCRUDRoutes(rg, PathTelefoneCliente, h.telefoneCliente)
	addCRUDRoutes(rg, PathTelefoneOficina, h.telefoneOficina)

	rg.POST(PathPagamento+"/:id/processar", h.pagamento.Processar)
}
