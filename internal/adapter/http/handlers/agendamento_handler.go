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

var errInvalidAgendamentoPayload = pkg.NewDomainErrorSimple("AGENDAMENTO_INVALID_INPUT", "Corpo da requisição inválido", http.StatusBadRequest)

type AgendamentoHandler struct {
	usecase usecase.IAgendamentoUseCase
}

func NewAgendamentoHandler(uc usecase.IAgendamentoUseCase) *AgendamentoHandler {
	return &AgendamentoHandler{usecase: uc}
}

func (h *AgendamentoHandler) Cadastre(c *gin.Context) {
	var payload request.AgendamentoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAgendamentoPayload.HTTPStatus, errInvalidAgendamentoPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapAgendamentoError(err, "inserir")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromAgendamento(created))
}

func (h *AgendamentoHandler) FindAll(c *gin.Context) {
	list, err := h.usecase.FindAll(c.Request.Context())
	if err != nil {
		appErr := mapAgendamentoError(err, "listar")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAgendamentoList(list))
}

func (h *AgendamentoHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(errInvalidAgendamentoPayload.HTTPStatus, errInvalidAgendamentoPayload.ToHTTPError())
		return
	}

	var payload request.AgendamentoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAgendamentoPayload.HTTPStatus, errInvalidAgendamentoPayload.ToHTTPError())
		return
	}

	entity := payload.ToEntity()
	entity.ID = id

	updated, err := h.usecase.Update(c.Request.Context(), entity)
	if err != nil {
		appErr := mapAgendamentoError(err, "atualizar")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAgendamento(updated))
}

func (h *AgendamentoHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(errInvalidAgendamentoPayload.HTTPStatus, errInvalidAgendamentoPayload.ToHTTPError())
		return
	}

	if err := h.usecase.DeleteByID(c.Request.Context(), id); err != nil {
		appErr := mapAgendamentoError(err, "deletar")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapAgendamentoError(err error, acao string) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrCreateWithID):
		return pkg.NewDomainErrorSimple("AGENDAMENTO_ID_NOT_ALLOWED", "Esse método só permite a criação de novos agendamentos", http.StatusBadRequest)
	case errors.Is(err, repository.ErrNotFound):
		return pkg.NewDomainErrorSimple("AGENDAMENTO_NOT_FOUND", "Agendamento não encontrado", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Erro inesperado ao tentar "+acao+" agendamento", err, http.StatusInternalServerError)
	}
}
