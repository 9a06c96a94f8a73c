package handlers

import (
	"bytes"
	"encoding/json"
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

func newPagamentoRouter(h *PagamentoHandler) *gin.Engine {
	r := gin.New()
	r.POST("/rest/pagamento/cadastre", h.Cadastre)
	r.POST("/rest/pagamento/:id/processar", h.Processar)
	return r
}

func TestPagamentoHandler_Processar(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("processed payment returns 200 with gateway status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPagamentoUseCase(ctrl)
		r := newPagamentoRouter(NewPagamentoHandler(uc))

		status := entities.PagamentoGatewayAprovado
		referencia := "ref-123"
		uc.EXPECT().Processar(gomock.Any(), int64(1), 200.0, "revisão completa").
			Return(entities.Pagamento{ID: 1, Desconto: 10, StatusGateway: &status, ReferenciaExterna: &referencia}, nil)

		body, _ := json.Marshal(map[string]any{"valor": 200.0, "descricao": "revisão completa"})
		req := httptest.NewRequest(http.MethodPost, "/rest/pagamento/1/processar", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if resp["statusGateway"] != "aprovado" || resp["referenciaExterna"] != "ref-123" {
			t.Fatalf("unexpected body: %v", resp)
		}
	})

	t.Run("invalid valor returns 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPagamentoUseCase(ctrl)
		r := newPagamentoRouter(NewPagamentoHandler(uc))

		uc.EXPECT().Processar(gomock.Any(), int64(1), -5.0, "").
			Return(entities.Pagamento{}, usecase.ErrInvalidValorPagamento)

		body, _ := json.Marshal(map[string]any{"valor": -5.0})
		req := httptest.NewRequest(http.MethodPost, "/rest/pagamento/1/processar", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("already processed returns 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPagamentoUseCase(ctrl)
		r := newPagamentoRouter(NewPagamentoHandler(uc))

		uc.EXPECT().Processar(gomock.Any(), int64(1), 100.0, "").
			Return(entities.Pagamento{}, usecase.ErrPagamentoJaProcessado)

		body, _ := json.Marshal(map[string]any{"valor": 100.0})
		req := httptest.NewRequest(http.MethodPost, "/rest/pagamento/1/processar", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("unknown payment returns 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPagamentoUseCase(ctrl)
		r := newPagamentoRouter(NewPagamentoHandler(uc))

		uc.EXPECT().Processar(gomock.Any(), int64(99), 100.0, "").
			Return(entities.Pagamento{}, repository.ErrNotFound)

		body, _ := json.Marshal(map[string]any{"valor": 100.0})
		req := httptest.NewRequest(http.MethodPost, "/rest/pagamento/99/processar", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("gateway not configured returns 503", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPagamentoUseCase(ctrl)
		r := newPagamentoRouter(NewPagamentoHandler(uc))

		uc.EXPECT().Processar(gomock.Any(), int64(1), 100.0, "").
			Return(entities.Pagamento{}, usecase.ErrGatewayNotConfigured)

		body, _ := json.Marshal(map[string]any{"valor": 100.0})
		req := httptest.NewRequest(http.MethodPost, "/rest/pagamento/1/processar", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}

func TestPagamentoHandler_Cadastre(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("create success returns 201", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPagamentoUseCase(ctrl)
		r := newPagamentoRouter(NewPagamentoHandler(uc))

		in := entities.Pagamento{FormaPagamento: "PIX", TipoPagamento: "à vista", Desconto: 5, IDOrdemDeServico: 9}
		uc.EXPECT().Create(gomock.Any(), in).Return(entities.Pagamento{ID: 1, FormaPagamento: "PIX"}, nil)

		body, _ := json.Marshal(map[string]any{
			"formaPagamento":   "PIX",
			"tipoPagamento":    "à vista",
			"desconto":         5,
			"idOrdemDeServico": 9,
		})
		req := httptest.NewRequest(http.MethodPost, "/rest/pagamento/cadastre", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}
