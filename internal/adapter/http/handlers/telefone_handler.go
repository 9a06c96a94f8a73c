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

var errInvalidTelefonePayload = pkg.NewDomainErrorSimple("TELEFONE_INVALID_INPUT", "Corpo da requisição inválido", http.StatusBadRequest)

// TelefoneHandler serves both phone routes, same arrangement as the address
// handler.
type TelefoneHandler struct {
	usecase usecase.ITelefoneUseCase
}

func NewTelefoneHandler(uc usecase.ITelefoneUseCase) *TelefoneHandler {
	return &TelefoneHandler{usecase: uc}
}

func (h *TelefoneHandler) Cadastre(c *gin.Context) {
	var payload request.TelefoneRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTelefonePayload.HTTPStatus, errInvalidTelefonePayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapTelefoneError(err, "inserir")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromTelefone(created))
}

func (h *TelefoneHandler) FindAll(c *gin.Context) {
	list, err := h.usecase.FindAll(c.Request.Context())
	if err != nil {
		appErr := mapTelefoneError(err, "listar")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTelefoneList(list))
}

func (h *TelefoneHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(errInvalidTelefonePayload.HTTPStatus, errInvalidTelefonePayload.ToHTTPError())
		return
	}

	var payload request.TelefoneRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTelefonePayload.HTTPStatus, errInvalidTelefonePayload.ToHTTPError())
		return
	}

	entity := payload.ToEntity()
	entity.ID = id

	updated, err := h.usecase.Update(c.Request.Context(), entity)
	if err != nil {
		appErr := mapTelefoneError(err, "atualizar")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTelefone(updated))
}

func (h *TelefoneHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(errInvalidTelefonePayload.HTTPStatus, errInvalidTelefonePayload.ToHTTPError())
		return
	}

	if err := h.usecase.DeleteByID(c.Request.Context(), id); err != nil {
		appErr := mapTelefoneError(err, "deletar")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapTelefoneError(err error, acao string) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrCreateWithID):
		return pkg.NewDomainErrorSimple("TELEFONE_ID_NOT_ALLOWED", "Esse método só permite a criação de novos telefones", http.StatusBadRequest)
	case errors.Is(err, repository.ErrNotFound):
		return pkg.NewDomainErrorSimple("TELEFONE_NOT_FOUND", "Telefone não encontrado", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Erro inesperado ao tentar "+acao+" telefone", err, http.StatusInternalServerError)
	}
}
