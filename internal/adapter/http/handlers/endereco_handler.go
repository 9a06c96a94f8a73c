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

var errInvalidEnderecoPayload = pkg.NewDomainErrorSimple("ENDERECO_INVALID_INPUT", "Corpo da requisição inválido", http.StatusBadRequest)

// EnderecoHandler serves both the customer and the workshop address routes;
// the use case injected at wiring time decides which table it touches.
type EnderecoHandler struct {
	usecase usecase.IEnderecoUseCase
}

func NewEnderecoHandler(uc usecase.IEnderecoUseCase) *EnderecoHandler {
	return &EnderecoHandler{usecase: uc}
}

func (h *EnderecoHandler) Cadastre(c *gin.Context) {
	var payload request.EnderecoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEnderecoPayload.HTTPStatus, errInvalidEnderecoPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapEnderecoError(err, "inserir")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEndereco(created))
}

func (h *EnderecoHandler) FindAll(c *gin.Context) {
	list, err := h.usecase.FindAll(c.Request.Context())
	if err != nil {
		appErr := mapEnderecoError(err, "listar")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEnderecoList(list))
}

func (h *EnderecoHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(errInvalidEnderecoPayload.HTTPStatus, errInvalidEnderecoPayload.ToHTTPError())
		return
	}

	var payload request.EnderecoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEnderecoPayload.HTTPStatus, errInvalidEnderecoPayload.ToHTTPError())
		return
	}

	entity := payload.ToEntity()
	entity.ID = id

	updated, err := h.usecase.Update(c.Request.Context(), entity)
	if err != nil {
		appErr := mapEnderecoError(err, "atualizar")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEndereco(updated))
}

func (h *EnderecoHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(errInvalidEnderecoPayload.HTTPStatus, errInvalidEnderecoPayload.ToHTTPError())
		return
	}

	if err := h.usecase.DeleteByID(c.Request.Context(), id); err != nil {
		appErr := mapEnderecoError(err, "deletar")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapEnderecoError(err error, acao string) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrCreateWithID):
		return pkg.NewDomainErrorSimple("ENDERECO_ID_NOT_ALLOWED", "Esse método só permite a criação de novos endereços", http.StatusBadRequest)
	case errors.Is(err, repository.ErrNotFound):
		return pkg.NewDomainErrorSimple("ENDERECO_NOT_FOUND", "Endereço não encontrado", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Erro inesperado ao tentar "+acao+" endereço", err, http.StatusInternalServerError)
	}
}
