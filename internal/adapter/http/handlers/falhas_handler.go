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

var errInvalidFalhaPayload = pkg.NewDomainErrorSimple("FALHA_INVALID_INPUT", "Corpo da requisição inválido", http.StatusBadRequest)

type FalhaHandler struct {
	usecase usecase.IFalhaUseCase
}

func NewFalhaHandler(uc usecase.IFalhaUseCase) *FalhaHandler {
	return &FalhaHandler{usecase: uc}
}

func (h *FalhaHandler) Cadastre(c *gin.Context) {
	var payload request.FalhaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFalhaPayload.HTTPStatus, errInvalidFalhaPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapFalhaError(err, "inserir")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromFalha(created))
}

func (h *FalhaHandler) FindAll(c *gin.Context) {
	list, err := h.usecase.FindAll(c.Request.Context())
	if err != nil {
		appErr := mapFalhaError(err, "listar")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFalhaList(list))
}

func (h *FalhaHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(errInvalidFalhaPayload.HTTPStatus, errInvalidFalhaPayload.ToHTTPError())
		return
	}

	var payload request.FalhaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFalhaPayload.HTTPStatus, errInvalidFalhaPayload.ToHTTPError())
		return
	}

	entity := payload.ToEntity()
	entity.ID = id

	updated, err := h.usecase.Update(c.Request.Context(), entity)
	if err != nil {
		appErr := mapFalhaError(err, "atualizar")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFalha(updated))
}

func (h *FalhaHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(errInvalidFalhaPayload.HTTPStatus, errInvalidFalhaPayload.ToHTTPError())
		return
	}

	if err := h.usecase.DeleteByID(c.Request.Context(), id); err != nil {
		appErr := mapFalhaError(err, "deletar")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapFalhaError(err error, acao string) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrCreateWithID):
		return pkg.NewDomainErrorSimple("FALHA_ID_NOT_ALLOWED", "Esse método só permite a criação de novas falhas", http.StatusBadRequest)
	case errors.Is(err, repository.ErrNotFound):
		return pkg.NewDomainErrorSimple("FALHA_NOT_FOUND", "Falha não encontrada", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Erro inesperado ao tentar "+acao+" falha", err, http.StatusInternalServerError)
	}
}
