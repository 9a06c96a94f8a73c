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

var errInvalidOficinaPayload = pkg.NewDomainErrorSimple("OFICINA_INVALID_INPUT", "Corpo da requisição inválido", http.StatusBadRequest)

type OficinaHandler struct {
	usecase usecase.IOficinaUseCase
}

func NewOficinaHandler(uc usecase.IOficinaUseCase) *OficinaHandler {
	return &OficinaHandler{usecase: uc}
}

func (h *OficinaHandler) Cadastre(c *gin.Context) {
	var payload request.OficinaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOficinaPayload.HTTPStatus, errInvalidOficinaPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapOficinaError(err, "inserir")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOficina(created))
}

func (h *OficinaHandler) FindAll(c *gin.Context) {
	list, err := h.usecase.FindAll(c.Request.Context())
	if err != nil {
		appErr := mapOficinaError(err, "listar")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOficinaList(list))
}

func (h *OficinaHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(errInvalidOficinaPayload.HTTPStatus, errInvalidOficinaPayload.ToHTTPError())
		return
	}

	var payload request.OficinaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOficinaPayload.HTTPStatus, errInvalidOficinaPayload.ToHTTPError())
		return
	}

	entity := payload.ToEntity()
	entity.ID = id

	updated, err := h.usecase.Update(c.Request.Context(), entity)
	if err != nil {
		appErr := mapOficinaError(err, "atualizar")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOficina(updated))
}

func (h *OficinaHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(errInvalidOficinaPayload.HTTPStatus, errInvalidOficinaPayload.ToHTTPError())
		return
	}

	if err := h.usecase.DeleteByID(c.Request.Context(), id); err != nil {
		appErr := mapOficinaError(err, "deletar")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapOficinaError(err error, acao string) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrCreateWithID):
		return pkg.NewDomainErrorSimple("OFICINA_ID_NOT_ALLOWED", "Esse método só permite a criação de novas oficinas", http.StatusBadRequest)
	case errors.Is(err, repository.ErrNotFound):
		return pkg.NewDomainErrorSimple("OFICINA_NOT_FOUND", "Oficina não encontrada", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Erro inesperado ao tentar "+acao+" oficina", err, http.StatusInternalServerError)
	}
}
