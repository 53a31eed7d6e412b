package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sgf_demandas/internal/adapter/http/dto/response"
	"sgf_demandas/internal/adapter/persistence/repository/memory"
	"sgf_demandas/internal/domain/entities"
	"sgf_demandas/internal/usecase"

	"github.com/gin-gonic/gin"
)

func testContext() context.Context { return context.Background() }

// asRole injects an authenticated role under the key middleware.RequireAuth
// uses, so role-gated handlers see a logged-in operator.
func asRole(role entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("auth.role", role)
		c.Next()
	}
}

func newDemandRouter(role entities.Role) (*gin.Engine, *usecase.DemandUseCase, *memory.CatalogRepository) {
	gin.SetMode(gin.TestMode)

	demandRepo := memory.NewDemandRepository()
	catalogRepo := memory.NewCatalogRepository()
	demandUC := usecase.NewDemandUseCase(demandRepo)
	financialUC := usecase.NewFinancialUseCase(demandRepo, catalogRepo)

	dh := NewDemandHandler(demandUC)
	fh := NewFinancialHandler(financialUC)

	r := gin.New()
	g := r.Group("/v1", asRole(role))
	g.GET("/demands", dh.ListDemands)
	g.POST("/demands", dh.UpsertDemand)
	g.GET("/demands/:id", dh.GetDemand)
	g.DELETE("/demands/:id", dh.DeleteDemand)
	g.PATCH("/demands/:id/status", dh.SetStatus)
	g.POST("/demands/:id/items", fh.AddLineItem)
	g.DELETE("/demands/:id/items/:itemId", fh.RemoveLineItem)
	return r, demandUC, catalogRepo
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestDemandHandler_Upsert(t *testing.T) {
	t.Run("missing required fields", func(t *testing.T) {
		r, _, _ := newDemandRouter(entities.RoleUser)
		w := doJSON(t, r, http.MethodPost, "/v1/demands", map[string]any{"empresa": "Citsmart"})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("create derives identity and period", func(t *testing.T) {
		r, _, _ := newDemandRouter(entities.RoleUser)
		w := doJSON(t, r, http.MethodPost, "/v1/demands", map[string]any{
			"empresa":         "Citsmart",
			"dataSolicitacao": "2024-01-10",
			"dataConclusao":   "2024-01-15",
			"status":          "Concluída",
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var got response.DemandResponse
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID == "" {
			t.Fatalf("expected generated id")
		}
		if got.BillingPeriod != "Fevereiro / 2024" {
			t.Fatalf("expected derived period, got %q", got.BillingPeriod)
		}
	})

	t.Run("domain error maps to 400", func(t *testing.T) {
		r, _, _ := newDemandRouter(entities.RoleUser)
		w := doJSON(t, r, http.MethodPost, "/v1/demands", map[string]any{
			"empresa":         "Citsmart",
			"dataSolicitacao": "10/01/2024",
		})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestDemandHandler_GetAndList(t *testing.T) {
	r, uc, _ := newDemandRouter(entities.RoleUser)
	created, err := uc.Upsert(testContext(), entities.Demand{Company: "Citsmart", RequestDate: "2024-01-10"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	w := doJSON(t, r, http.MethodGet, "/v1/demands/"+created.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/v1/demands/missing", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/v1/demands", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var list []response.DemandResponse
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 1 || list[0].ID != created.ID {
		t.Fatalf("unexpected list: %+v", list)
	}
}

func TestDemandHandler_Delete(t *testing.T) {
	t.Run("non-admin forbidden", func(t *testing.T) {
		r, uc, _ := newDemandRouter(entities.RoleUser)
		created, err := uc.Upsert(testContext(), entities.Demand{Company: "Citsmart", RequestDate: "2024-01-10"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		w := doJSON(t, r, http.MethodDelete, "/v1/demands/"+created.ID, nil)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("admin deletes", func(t *testing.T) {
		r, uc, _ := newDemandRouter(entities.RoleAdmin)
		created, err := uc.Upsert(testContext(), entities.Demand{Company: "Citsmart", RequestDate: "2024-01-10"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		w := doJSON(t, r, http.MethodDelete, "/v1/demands/"+created.ID, nil)
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestDemandHandler_SetStatus(t *testing.T) {
	r, uc, _ := newDemandRouter(entities.RoleUser)
	created, err := uc.Upsert(testContext(), entities.Demand{Company: "Citsmart", RequestDate: "2024-01-10"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	w := doJSON(t, r, http.MethodPatch, "/v1/demands/"+created.ID+"/status", map[string]any{
		"status": "Concluída",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without completion date, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPatch, "/v1/demands/"+created.ID+"/status", map[string]any{
		"status":        "Concluída",
		"dataConclusao": "2024-12-20",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var got response.DemandResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != entities.StatusConcluida || got.BillingPeriod != "Janeiro / 2025" {
		t.Fatalf("unexpected demand: status=%q period=%q", got.Status, got.BillingPeriod)
	}
}

func TestFinancialHandler_LineItems(t *testing.T) {
	r, uc, catalogRepo := newDemandRouter(entities.RoleUser)
	created, err := uc.Upsert(testContext(), entities.Demand{Company: "Citsmart", RequestDate: "2024-01-10"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := catalogRepo.Save(testContext(), entities.CatalogItem{ID: "i1", Name: "Ponto de rede", UnitValue: 150, UnitMeasure: "Un"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	w := doJSON(t, r, http.MethodPost, "/v1/demands/"+created.ID+"/items", map[string]any{
		"itemId":   "i1",
		"quantity": 2,
		"bdi":      21.15,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var got response.DemandResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.TotalValue != 363.45 {
		t.Fatalf("expected valorTotal 363.45, got %v", got.TotalValue)
	}
	if len(got.FinancialItems) != 1 {
		t.Fatalf("expected one line item, got %+v", got.FinancialItems)
	}

	w = doJSON(t, r, http.MethodDelete, "/v1/demands/"+created.ID+"/items/"+got.FinancialItems[0].ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.FinancialItems) != 0 || got.TotalValue != 0 {
		t.Fatalf("expected empty line items, got %+v", got)
	}

	w = doJSON(t, r, http.MethodPost, "/v1/demands/"+created.ID+"/items", map[string]any{
		"itemId":   "missing",
		"quantity": 1,
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown catalog item, got %d: %s", w.Code, w.Body.String())
	}
}
