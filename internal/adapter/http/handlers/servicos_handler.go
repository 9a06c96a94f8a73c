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

var errInvalidServicoPayload = pkg.NewDomainErrorSimple("SERVICO_INVALID_INPUT", "Corpo da requisição inválido", http.StatusBadRequest)

type ServicoHandler struct {
	usecase usecase.IServicoUseCase
}

func NewServicoHandler(uc usecase.IServicoUseCase) *ServicoHandler {
	return &ServicoHandler{usecase: uc}
}

func (h *ServicoHandler) Cadastre(c *gin.Context) {
	var payload request.ServicoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServicoPayload.HTTPStatus, errInvalidServicoPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapServicoError(err, "inserir")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromServico(created))
}

func (h *ServicoHandler) FindAll(c *gin.Context) {
	list, err := h.usecase.FindAll(c.Request.Context())
	if err != nil {
		appErr := mapServicoError(err, "listar")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServicoList(list))
}

func (h *ServicoHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(errInvalidServicoPayload.HTTPStatus, errInvalidServicoPayload.ToHTTPError())
		return
	}

	var payload request.ServicoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServicoPayload.HTTPStatus, errInvalidServicoPayload.ToHTTPError())
		return
	}

	entity := payload.ToEntity()
	entity.ID = id

	updated, err := h.usecase.Update(c.Request.Context(), entity)
	if err != nil {
		appErr := mapServicoError(err, "atualizar")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServico(updated))
}

func (h *ServicoHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(errInvalidServicoPayload.HTTPStatus, errInvalidServicoPayload.ToHTTPError())
		return
	}

	if err := h.usecase.DeleteByID(c.Request.Context(), id); err != nil {
		appErr := mapServicoError(err, "deletar")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapServicoError(err error, acao string) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrCreateWithID):
		return pkg.NewDomainErrorSimple("SERVICO_ID_NOT_ALLOWED", "Esse método só permite a criação de novos serviços", http.StatusBadRequest)
	case errors.Is(err, repository.ErrNotFound):
		return pkg.NewDomainErrorSimple("SERVICO_NOT_FOUND", "Serviço não encontrado", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Erro inesperado ao tentar "+acao+" serviço", err, http.StatusInternalServerError)
	}
}
