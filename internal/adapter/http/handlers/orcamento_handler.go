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

var errInvalidOrcamentoPayload = pkg.NewDomainErrorSimple("ORCAMENTO_INVALID_INPUT", "Corpo da requisição inválido", http.StatusBadRequest)

type OrcamentoHandler struct {
	usecase usecase.IOrcamentoUseCase
}

func NewOrcamentoHandler(uc usecase.IOrcamentoUseCase) *OrcamentoHandler {
	return &OrcamentoHandler{usecase: uc}
}

func (h *OrcamentoHandler) Cadastre(c *gin.Context) {
	var payload request.OrcamentoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrcamentoPayload.HTTPStatus, errInvalidOrcamentoPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapOrcamentoError(err, "inserir")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOrcamento(created))
}

func (h *OrcamentoHandler) FindAll(c *gin.Context) {
	list, err := h.usecase.FindAll(c.Request.Context())
	if err != nil {
		appErr := mapOrcamentoError(err, "listar")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrcamentoList(list))
}

func (h *OrcamentoHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(errInvalidOrcamentoPayload.HTTPStatus, errInvalidOrcamentoPayload.ToHTTPError())
		return
	}

	var payload request.OrcamentoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrcamentoPayload.HTTPStatus, errInvalidOrcamentoPayload.ToHTTPError())
		return
	}

	entity := payload.ToEntity()
	entity.ID = id

	updated, err := h.usecase.Update(c.Request.Context(), entity)
	if err != nil {
		appErr := mapOrcamentoError(err, "atualizar")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrcamento(updated))
}

func (h *OrcamentoHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(errInvalidOrcamentoPayload.HTTPStatus, errInvalidOrcamentoPayload.ToHTTPError())
		return
	}

	if err := h.usecase.DeleteByID(c.Request.Context(), id); err != nil {
		appErr := mapOrcamentoError(err, "deletar")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapOrcamentoError(err error, acao string) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrCreateWithID):
		return pkg.NewDomainErrorSimple("ORCAMENTO_ID_NOT_ALLOWED", "Esse método só permite a criação de novos orçamentos", http.StatusBadRequest)
	case errors.Is(err, repository.ErrNotFound):
		return pkg.NewDomainErrorSimple("ORCAMENTO_NOT_FOUND", "Orçamento não encontrado", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Erro inesperado ao tentar "+acao+" orçamento", err, http.StatusInternalServerError)
	}
}
