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

var errInvalidPecaPayload = pkg.NewDomainErrorSimple("PECA_INVALID_INPUT", "Corpo da requisição inválido", http.StatusBadRequest)

type PecaHandler struct {
	usecase usecase.IPecaUseCase
}

func NewPecaHandler(uc usecase.IPecaUseCase) *PecaHandler {
	return &PecaHandler{usecase: uc}
}

func (h *PecaHandler) Cadastre(c *gin.Context) {
	var payload request.PecaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPecaPayload.HTTPStatus, errInvalidPecaPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapPecaError(err, "inserir")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPeca(created))
}

func (h *PecaHandler) FindAll(c *gin.Context) {
	list, err := h.usecase.FindAll(c.Request.Context())
	if err != nil {
		appErr := mapPecaError(err, "listar")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPecaList(list))
}

func (h *PecaHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(errInvalidPecaPayload.HTTPStatus, errInvalidPecaPayload.ToHTTPError())
		return
	}

	var payload request.PecaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPecaPayload.HTTPStatus, errInvalidPecaPayload.ToHTTPError())
		return
	}

	entity := payload.ToEntity()
	entity.ID = id

	updated, err := h.usecase.Update(c.Request.Context(), entity)
	if err != nil {
		appErr := mapPecaError(err, "atualizar")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPeca(updated))
}

func (h *PecaHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(errInvalidPecaPayload.HTTPStatus, errInvalidPecaPayload.ToHTTPError())
		return
	}

	if err := h.usecase.DeleteByID(c.Request.Context(), id); err != nil {
		appErr := mapPecaError(err, "deletar")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapPecaError(err error, acao string) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrCreateWithID):
		return pkg.NewDomainErrorSimple("PECA_ID_NOT_ALLOWED", "Esse método só permite a criação de novas peças", http.StatusBadRequest)
	case errors.Is(err, repository.ErrNotFound):
		return pkg.NewDomainErrorSimple("PECA_NOT_FOUND", "Peça não encontrada", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Erro inesperado ao tentar "+acao+" peça", err, http.StatusInternalServerError)
	}
}
