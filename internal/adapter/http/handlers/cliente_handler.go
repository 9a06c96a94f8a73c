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

var errInvalidClientePayload = pkg.NewDomainErrorSimple("CLIENTE_INVALID_INPUT", "Corpo da requisição inválido", http.StatusBadRequest)

// ClienteHandler handles the customer REST endpoints.
type ClienteHandler struct {
	usecase usecase.IClienteUseCase
}

func NewClienteHandler(uc usecase.IClienteUseCase) *ClienteHandler {
	return &ClienteHandler{usecase: uc}
}

func (h *ClienteHandler) Cadastre(c *gin.Context) {
	var payload request.ClienteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidClientePayload.HTTPStatus, errInvalidClientePayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapClienteError(err, "inserir")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCliente(created))
}

func (h *ClienteHandler) FindAll(c *gin.Context) {
	list, err := h.usecase.FindAll(c.Request.Context())
	if err != nil {
		appErr := mapClienteError(err, "listar")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClienteList(list))
}

func (h *ClienteHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(errInvalidClientePayload.HTTPStatus, errInvalidClientePayload.ToHTTPError())
		return
	}

	var payload request.ClienteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidClientePayload.HTTPStatus, errInvalidClientePayload.ToHTTPError())
		return
	}

	// The path parameter wins over whatever id came in the body.
	entity := payload.ToEntity()
	entity.ID = id

	updated, err := h.usecase.Update(c.Request.Context(), entity)
	if err != nil {
		appErr := mapClienteError(err, "atualizar")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCliente(updated))
}

func (h *ClienteHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(errInvalidClientePayload.HTTPStatus, errInvalidClientePayload.ToHTTPError())
		return
	}

	if err := h.usecase.DeleteByID(c.Request.Context(), id); err != nil {
		appErr := mapClienteError(err, "deletar")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapClienteError(err error, acao string) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrCreateWithID):
		return pkg.NewDomainErrorSimple("CLIENTE_ID_NOT_ALLOWED", "Esse método só permite a criação de novos clientes", http.StatusBadRequest)
	case errors.Is(err, repository.ErrNotFound):
		return pkg.NewDomainErrorSimple("CLIENTE_NOT_FOUND", "Cliente não encontrado", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Erro inesperado ao tentar "+acao+" cliente", err, http.StatusInternalServerError)
	}
}
