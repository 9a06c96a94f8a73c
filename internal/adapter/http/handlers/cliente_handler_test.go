package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"oficina_xpto/internal/adapter/http/handlers/mocks"
	"oficina_xpto/internal/adapter/persistence/repository"
	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newClienteRouter(h *ClienteHandler) *gin.Engine {
	r := gin.New()
	r.POST("/rest/cliente/cadastre", h.Cadastre)
	r.GET("/rest/cliente/all", h.FindAll)
	r.PUT("/rest/cliente/:id", h.Update)
	r.DELETE("/rest/cliente/:id", h.Delete)
	return r
}

func TestClienteHandler_Cadastre(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClienteUseCase(ctrl)
		r := newClienteRouter(NewClienteHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/rest/cliente/cadastre", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create with id returns 400 and mensagem", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClienteUseCase(ctrl)
		r := newClienteRouter(NewClienteHandler(uc))

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Cliente{}, usecase.ErrCreateWithID)

		body, _ := json.Marshal(map[string]any{"idCliente": 7, "nome": "Maria"})
		req := httptest.NewRequest(http.MethodPost, "/rest/cliente/cadastre", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var resp map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if resp["mensagem"] != "Esse método só permite a criação de novos clientes" {
			t.Fatalf("unexpected mensagem: %q", resp["mensagem"])
		}
	})

	t.Run("create success returns 201 with body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClienteUseCase(ctrl)
		r := newClienteRouter(NewClienteHandler(uc))

		uc.EXPECT().Create(gomock.Any(), entities.Cliente{CPF: "123.456.789-00", Nome: "Maria"}).
			Return(entities.Cliente{ID: 1, CPF: "123.456.789-00", Nome: "Maria"}, nil)

		body, _ := json.Marshal(map[string]any{"cpf": "123.456.789-00", "nome": "Maria"})
		req := httptest.NewRequest(http.MethodPost, "/rest/cliente/cadastre", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if resp["idCliente"].(float64) != 1 || resp["nome"] != "Maria" {
			t.Fatalf("unexpected body: %v", resp)
		}
	})

	t.Run("unexpected error returns 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClienteUseCase(ctrl)
		r := newClienteRouter(NewClienteHandler(uc))

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Cliente{}, errors.New("db down"))

		body, _ := json.Marshal(map[string]any{"nome": "Maria"})
		req := httptest.NewRequest(http.MethodPost, "/rest/cliente/cadastre", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestClienteHandler_FindAll(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns the list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClienteUseCase(ctrl)
		r := newClienteRouter(NewClienteHandler(uc))

		uc.EXPECT().FindAll(gomock.Any()).Return([]entities.Cliente{{ID: 1, Nome: "Maria"}, {ID: 2, Nome: "João"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/rest/cliente/all", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if len(resp) != 2 {
			t.Fatalf("expected 2 clientes, got %d", len(resp))
		}
	})

	t.Run("list failure returns 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClienteUseCase(ctrl)
		r := newClienteRouter(NewClienteHandler(uc))

		uc.EXPECT().FindAll(gomock.Any()).Return(nil, errors.New("db down"))

		req := httptest.NewRequest(http.MethodGet, "/rest/cliente/all", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestClienteHandler_Update(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("path id wins over body id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClienteUseCase(ctrl)
		r := newClienteRouter(NewClienteHandler(uc))

		uc.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Cliente{})).DoAndReturn(
			func(_ any, c entities.Cliente) (entities.Cliente, error) {
				if c.ID != 3 {
					t.Fatalf("expected path id 3, got %d", c.ID)
				}
				return c, nil
			},
		)

		body, _ := json.Marshal(map[string]any{"idCliente": 99, "nome": "Maria"})
		req := httptest.NewRequest(http.MethodPut, "/rest/cliente/3", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("non numeric id returns 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClienteUseCase(ctrl)
		r := newClienteRouter(NewClienteHandler(uc))

		req := httptest.NewRequest(http.MethodPut, "/rest/cliente/abc", bytes.NewBufferString("{}"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClienteUseCase(ctrl)
		r := newClienteRouter(NewClienteHandler(uc))

		uc.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Cliente{}, repository.ErrNotFound)

		req := httptest.NewRequest(http.MethodPut, "/rest/cliente/99", bytes.NewBufferString(`{"nome":"Maria"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestClienteHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("delete success returns 204", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClienteUseCase(ctrl)
		r := newClienteRouter(NewClienteHandler(uc))

		uc.EXPECT().DeleteByID(gomock.Any(), int64(3)).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/rest/cliente/3", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
		if w.Body.Len() != 0 {
			t.Fatalf("expected empty body, got %q", w.Body.String())
		}
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClienteUseCase(ctrl)
		r := newClienteRouter(NewClienteHandler(uc))

		uc.EXPECT().DeleteByID(gomock.Any(), int64(99)).Return(repository.ErrNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/rest/cliente/99", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
