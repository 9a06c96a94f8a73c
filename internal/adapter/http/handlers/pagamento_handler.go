package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	request "oficina_xpto/internal/adapter/http/dto/request"
	response "oficina_xpto/internal/adapter/http/dto/response"
	"oficina_xpto/internal/adapter/persistence/repository"
	"oficina_xpto/internal/usecase"
	"oficina_xpto/pkg"
)

var errInvalidPagamentoPayload = pkg.NewDomainErrorSimple("PAGAMENTO_INVALID_INPUT", "Corpo da requisição inválido", http.StatusBadRequest)

type PagamentoHandler struct {
	usecase usecase.IPagamentoUseCase
}

func NewPagamentoHandler(uc usecase.IPagamentoUseCase) *PagamentoHandler {
	return &PagamentoHandler{usecase: uc}
}

func (h *PagamentoHandler) Cadastre(c *gin.Context) {
	var payload request.PagamentoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPagamentoPayload.HTTPStatus, errInvalidPagamentoPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapPagamentoError(err, "inserir")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPagamento(created))
}

func (h *PagamentoHandler) FindAll(c *gin.Context) {
	list, err := h.usecase.FindAll(c.Request.Context())
	if err != nil {
		appErr := mapPagamentoError(err, "listar")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPagamentoList(list))
}

func (h *PagamentoHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(errInvalidPagamentoPayload.HTTPStatus, errInvalidPagamentoPayload.ToHTTPError())
		return
	}

	var payload request.PagamentoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPagamentoPayload.HTTPStatus, errInvalidPagamentoPayload.ToHTTPError())
		return
	}

	entity := payload.ToEntity()
	entity.ID = id

	updated, err := h.usecase.Update(c.Request.Context(), entity)
	if err != nil {
		appErr := mapPagamentoError(err, "atualizar")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPagamento(updated))
}

func (h *PagamentoHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(errInvalidPagamentoPayload.HTTPStatus, errInvalidPagamentoPayload.ToHTTPError())
		return
	}

	if err := h.usecase.DeleteByID(c.Request.Context(), id); err != nil {
		appErr := mapPagamentoError(err, "deletar")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// Processar charges a stored payment through the configured gateway and
// records the resulting status on the record.
func (h *PagamentoHandler) Processar(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(errInvalidPagamentoPayload.HTTPStatus, errInvalidPagamentoPayload.ToHTTPError())
		return
	}

	var payload request.ProcessarPagamentoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPagamentoPayload.HTTPStatus, errInvalidPagamentoPayload.ToHTTPError())
		return
	}

	processed, err := h.usecase.Processar(c.Request.Context(), id, payload.Valor, payload.Descricao)
	if err != nil {
		appErr := mapProcessarPagamentoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPagamento(processed))
}

func mapPagamentoError(err error, acao string) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrCreateWithID):
		return pkg.NewDomainErrorSimple("PAGAMENTO_ID_NOT_ALLOWED", "Esse método só permite a criação de novos pagamentos", http.StatusBadRequest)
	case errors.Is(err, repository.ErrNotFound):
		return pkg.NewDomainErrorSimple("PAGAMENTO_NOT_FOUND", "Pagamento não encontrado", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Erro inesperado ao tentar "+acao+" pagamento", err, http.StatusInternalServerError)
	}
}

func mapProcessarPagamentoError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidValorPagamento):
		return pkg.NewDomainErrorSimple("PAGAMENTO_VALOR_INVALIDO", "Valor do pagamento inválido", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPagamentoJaProcessado):
		return pkg.NewDomainErrorSimple("PAGAMENTO_JA_PROCESSADO", "Pagamento já processado", http.StatusConflict)
	case errors.Is(err, repository.ErrNotFound):
		return pkg.NewDomainErrorSimple("PAGAMENTO_NOT_FOUND", "Pagamento não encontrado", http.StatusNotFound)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainError("GATEWAY_NOT_CONFIGURED", "Gateway de pagamento indisponível", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Erro inesperado ao tentar processar pagamento", err, http.StatusInternalServerError)
	}
}
