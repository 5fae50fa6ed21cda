package handler

import (
	"net/http"
	"testing"

	"github.com/alterians/Lojistik-Asistan/internal/track/entity"
	"github.com/alterians/Lojistik-Asistan/internal/track/repository"
	"github.com/alterians/Lojistik-Asistan/internal/track/service"
	"github.com/alterians/Lojistik-Asistan/internal/track/testutil"
	"go.uber.org/zap"
)

func setupApplyUpdatesTest(t *testing.T) *testutil.TestEnv {
	t.Helper()
	db := testutil.SetupTestDB(t)

	repos := repository.NewRepositories(db)
	trackingSvc := service.NewTrackingService(repos, nil, zap.NewNop())
	draftSvc := service.NewDraftService(repos, nil)
	handler := NewDraftHandler(draftSvc, trackingSvc)

	router := testutil.SetupRouter()
	api := testutil.AuthGroup(router, "/api/v1/track")
	api.POST("/updates/apply", handler.ApplyUpdates)

	return &testutil.TestEnv{DB: db, Router: router, T: t}
}

// TestApplyUpdatesMaterialFallbackKey applies a confirmed date update whose
// key component is the material code of an item-less line, alongside a
// normal item-number key and an unknown key.
func TestApplyUpdatesMaterialFallbackKey(t *testing.T) {
	env := setupApplyUpdatesTest(t)
	token := testutil.DefaultTestToken()

	testutil.SeedSnapshot(t, env.DB, "snap-apply", "Güncelleme", 7, []entity.OrderLine{
		{
			ID:            "line-apply-001",
			OrderNo:       "4500001111",
			ItemNo:        "",
			SupplierCode:  "1000123",
			SupplierName:  "ACME Metal",
			MaterialCode:  "MAT-900",
			DeliveryDate:  "10.06.2030",
			DaysRemaining: 40,
			RiskBucket:    entity.RiskOK,
		},
		{
			ID:            "line-apply-002",
			OrderNo:       "4500001111",
			ItemNo:        "20",
			SupplierCode:  "1000123",
			SupplierName:  "ACME Metal",
			MaterialCode:  "MAT-901",
			DeliveryDate:  "10.06.2030",
			DaysRemaining: 40,
			RiskBucket:    entity.RiskOK,
		},
	})

	body := map[string]interface{}{
		"snapshot_id": "snap-apply",
		"updates": []map[string]string{
			{"order_no": "4500001111", "item_no": "MAT-900", "new_date": "15.07.2030"},
			{"order_no": "4500001111", "item_no": "20", "new_date": "20.07.2030"},
			{"order_no": "4500009999", "item_no": "10", "new_date": "01.08.2030"},
		},
	}
	w := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/track/updates/apply", body, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	if data["applied"].(float64) != 2 {
		t.Fatalf("expected 2 applied, got %v", data["applied"])
	}
	if data["skipped"].(float64) != 1 {
		t.Fatalf("expected 1 skipped, got %v", data["skipped"])
	}

	var fallback entity.OrderLine
	if err := env.DB.Where("id = ?", "line-apply-001").First(&fallback).Error; err != nil {
		t.Fatalf("failed to reload line: %v", err)
	}
	if fallback.RevisedDate != "15.07.2030" {
		t.Fatalf("material-fallback key update not applied, revised = %q", fallback.RevisedDate)
	}

	var direct entity.OrderLine
	env.DB.Where("id = ?", "line-apply-002").First(&direct)
	if direct.RevisedDate != "20.07.2030" {
		t.Fatalf("item-number key update not applied, revised = %q", direct.RevisedDate)
	}
}
