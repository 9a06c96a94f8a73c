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

var errInvalidOrdemDeServicoPayload = pkg.NewDomainErrorSimple("ORDEM_DE_SERVICO_INVALID_INPUT", "Corpo da requisição inválido", http.StatusBadRequest)

// OrdemDeServicoHandler handles the service-order REST endpoints.
type OrdemDeServicoHandler struct {
	usecase usecase.IOrdemDeServicoUseCase
}

func NewOrdemDeServicoHandler(uc usecase.IOrdemDeServicoUseCase) *OrdemDeServicoHandler {
	return &OrdemDeServicoHandler{usecase: uc}
}

func (h *OrdemDeServicoHandler) Cadastre(c *gin.Context) {
	var payload request.OrdemDeServicoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrdemDeServicoPayload.HTTPStatus, errInvalidOrdemDeServicoPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapOrdemDeServicoError(err, "inserir")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOrdemDeServico(created))
}

func (h *OrdemDeServicoHandler) FindAll(c *gin.Context) {
	list, err := h.usecase.FindAll(c.Request.Context())
	if err != nil {
		appErr := mapOrdemDeServicoError(err, "listar")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrdemDeServicoList(list))
}

func (h *OrdemDeServicoHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(errInvalidOrdemDeServicoPayload.HTTPStatus, errInvalidOrdemDeServicoPayload.ToHTTPError())
		return
	}

	var payload request.OrdemDeServicoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrdemDeServicoPayload.HTTPStatus, errInvalidOrdemDeServicoPayload.ToHTTPError())
		return
	}

	entity := payload.ToEntity()
	entity.ID = id

	updated, err := h.usecase.Update(c.Request.Context(), entity)
	if err != nil {
		appErr := mapOrdemDeServicoError(err, "atualizar")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrdemDeServico(updated))
}

func (h *OrdemDeServicoHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(errInvalidOrdemDeServicoPayload.HTTPStatus, errInvalidOrdemDeServicoPayload.ToHTTPError())
		return
	}

	if err := h.usecase.DeleteByID(c.Request.Context(), id); err != nil {
		appErr := mapOrdemDeServicoError(err, "deletar")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapOrdemDeServicoError(err error, acao string) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrCreateWithID):
		return pkg.NewDomainErrorSimple("ORDEM_DE_SERVICO_ID_NOT_ALLOWED", "Esse método só permite a criação de novas ordens de serviço", http.StatusBadRequest)
	case errors.Is(err, repository.ErrNotFound):
		return pkg.NewDomainErrorSimple("ORDEM_DE_SERVICO_NOT_FOUND", "Ordem de serviço não encontrada", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Erro inesperado ao tentar "+acao+" ordem de serviço", err, http.StatusInternalServerError)
	}
}
