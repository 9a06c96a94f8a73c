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

var errInvalidVeiculoPayload = pkg.NewDomainErrorSimple("VEICULO_INVALID_INPUT", "Corpo da requisição inválido", http.StatusBadRequest)

type VeiculoHandler struct {
	usecase usecase.IVeiculoUseCase
}

func NewVeiculoHandler(uc usecase.IVeiculoUseCase) *VeiculoHandler {
	return &VeiculoHandler{usecase: uc}
}

func (h *VeiculoHandler) Cadastre(c *gin.Context) {
	var payload request.VeiculoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidVeiculoPayload.HTTPStatus, errInvalidVeiculoPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapVeiculoError(err, "inserir")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromVeiculo(created))
}

func (h *VeiculoHandler) FindAll(c *gin.Context) {
	list, err := h.usecase.FindAll(c.Request.Context())
	if err != nil {
		appErr := mapVeiculoError(err, "listar")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVeiculoList(list))
}

func (h *VeiculoHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(errInvalidVeiculoPayload.HTTPStatus, errInvalidVeiculoPayload.ToHTTPError())
		return
	}

	var payload request.VeiculoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidVeiculoPayload.HTTPStatus, errInvalidVeiculoPayload.ToHTTPError())
		return
	}

	entity := payload.ToEntity()
	entity.ID = id

	updated, err := h.usecase.Update(c.Request.Context(), entity)
	if err != nil {
		appErr := mapVeiculoError(err, "atualizar")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVeiculo(updated))
}

func (h *VeiculoHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(errInvalidVeiculoPayload.HTTPStatus, errInvalidVeiculoPayload.ToHTTPError())
		return
	}

	if err := h.usecase.DeleteByID(c.Request.Context(), id); err != nil {
		appErr := mapVeiculoError(err, "deletar")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapVeiculoError(err error, acao string) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrCreateWithID):
		return pkg.NewDomainErrorSimple("VEICULO_ID_NOT_ALLOWED", "Esse método só permite a criação de novos veículos", http.StatusBadRequest)
	case errors.Is(err, repository.ErrNotFound):
		return pkg.NewDomainErrorSimple("VEICULO_NOT_FOUND", "Veículo não encontrado", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Erro inesperado ao tentar "+acao+" veículo", err, http.StatusInternalServerError)
	}
}
