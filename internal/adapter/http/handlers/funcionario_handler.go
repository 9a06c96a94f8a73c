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

var errInvalidFuncionarioPayload = pkg.NewDomainErrorSimple("FUNCIONARIO_INVALID_INPUT", "Corpo da requisição inválido", http.StatusBadRequest)

type FuncionarioHandler struct {
	usecase usecase.IFuncionarioUseCase
}

func NewFuncionarioHandler(uc usecase.IFuncionarioUseCase) *FuncionarioHandler {
	return &FuncionarioHandler{usecase: uc}
}

func (h *FuncionarioHandler) Cadastre(c *gin.Context) {
	var payload request.FuncionarioRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFuncionarioPayload.HTTPStatus, errInvalidFuncionarioPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapFuncionarioError(err, "inserir")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromFuncionario(created))
}

func (h *FuncionarioHandler) FindAll(c *gin.Context) {
	list, err := h.usecase.FindAll(c.Request.Context())
	if err != nil {
		appErr := mapFuncionarioError(err, "listar")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFuncionarioList(list))
}

func (h *FuncionarioHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(errInvalidFuncionarioPayload.HTTPStatus, errInvalidFuncionarioPayload.ToHTTPError())
		return
	}

	var payload request.FuncionarioRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFuncionarioPayload.HTTPStatus, errInvalidFuncionarioPayload.ToHTTPError())
		return
	}

	entity := payload.ToEntity()
	entity.ID = id

	updated, err := h.usecase.Update(c.Request.Context(), entity)
	if err != nil {
		appErr := mapFuncionarioError(err, "atualizar")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFuncionario(updated))
}

func (h *FuncionarioHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(errInvalidFuncionarioPayload.HTTPStatus, errInvalidFuncionarioPayload.ToHTTPError())
		return
	}

	if err := h.usecase.DeleteByID(c.Request.Context(), id); err != nil {
		appErr := mapFuncionarioError(err, "deletar")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapFuncionarioError(err error, acao string) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrCreateWithID):
		return pkg.NewDomainErrorSimple("FUNCIONARIO_ID_NOT_ALLOWED", "Esse método só permite a criação de novos funcionários", http.StatusBadRequest)
	case errors.Is(err, repository.ErrNotFound):
		return pkg.NewDomainErrorSimple("FUNCIONARIO_NOT_FOUND", "Funcionário não encontrado", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Erro inesperado ao tentar "+acao+" funcionário", err, http.StatusInternalServerError)
	}
}
