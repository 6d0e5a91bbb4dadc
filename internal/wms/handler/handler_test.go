package handler_test

import (
	"fmt"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/s1gl/eWMS/internal/wms/handler"
	"github.com/s1gl/eWMS/internal/wms/repository"
	"github.com/s1gl/eWMS/internal/wms/service"
	"github.com/s1gl/eWMS/internal/wms/testutil"
)

func setupAPI(t *testing.T) *gin.Engine {
	t.Helper()
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	services := service.NewServices(db, repos, nil)
	handlers := handler.NewHandlers(services)

	r := testutil.SetupRouter()
	handler.RegisterRoutes(r, handlers)
	return r
}

func TestWarehouseAPI(t *testing.T) {
	r := setupAPI(t)

	t.Run("create and fetch", func(t *testing.T) {
		w := testutil.DoRequest(r, "POST", "/api/v1/warehouses", map[string]interface{}{
			"name": "Main", "code": "WH1",
		})
		if w.Code != 201 {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
		resp := testutil.ParseResponse(w)
		data := resp["data"].(map[string]interface{})
		id := int(data["id"].(float64))

		w = testutil.DoRequest(r, "GET", fmt.Sprintf("/api/v1/warehouses/%d", id), nil)
		if w.Code != 200 {
			t.Fatalf("status = %d", w.Code)
		}
	})

	t.Run("duplicate code conflicts", func(t *testing.T) {
		w := testutil.DoRequest(r, "POST", "/api/v1/warehouses", map[string]interface{}{
			"name": "Clone", "code": "WH1",
		})
		if w.Code != 409 {
			t.Errorf("status = %d, want 409", w.Code)
		}
		resp := testutil.ParseResponse(w)
		if resp["code"].(float64) != 40900 {
			t.Errorf("business code = %v, want 40900", resp["code"])
		}
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		w := testutil.DoRequest(r, "GET", "/api/v1/warehouses/9999", nil)
		if w.Code != 404 {
			t.Errorf("status = %d, want 404", w.Code)
		}
	})

	t.Run("malformed id is 400", func(t *testing.T) {
		w := testutil.DoRequest(r, "GET", "/api/v1/warehouses/abc", nil)
		if w.Code != 400 {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("lookup by code", func(t *testing.T) {
		w := testutil.DoRequest(r, "GET", "/api/v1/warehouses/by-code/WH1", nil)
		if w.Code != 200 {
			t.Fatalf("status = %d", w.Code)
		}
		resp := testutil.ParseResponse(w)
		if resp["data"].(map[string]interface{})["name"] != "Main" {
			t.Errorf("unexpected warehouse: %v", resp["data"])
		}

		w = testutil.DoRequest(r, "GET", "/api/v1/warehouses/by-code/NOPE", nil)
		if w.Code != 404 {
			t.Errorf("status = %d, want 404", w.Code)
		}
	})
}

func TestItemAPI(t *testing.T) {
	r := setupAPI(t)

	w := testutil.DoRequest(r, "POST", "/api/v1/items", map[string]interface{}{
		"sku": "SKU-001", "name": "Widget",
	})
	if w.Code != 201 {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	if data["unit"] != "pcs" {
		t.Errorf("unit = %v, want default pcs", data["unit"])
	}

	t.Run("duplicate sku conflicts", func(t *testing.T) {
		w := testutil.DoRequest(r, "POST", "/api/v1/items", map[string]interface{}{
			"sku": "SKU-001", "name": "Other",
		})
		if w.Code != 409 {
			t.Errorf("status = %d, want 409", w.Code)
		}
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		w := testutil.DoRequest(r, "POST", "/api/v1/items", map[string]interface{}{
			"sku": "SKU-002",
		})
		if w.Code != 400 {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("lookup by sku", func(t *testing.T) {
		w := testutil.DoRequest(r, "GET", "/api/v1/items/by-sku/SKU-001", nil)
		if w.Code != 200 {
			t.Fatalf("status = %d", w.Code)
		}
		resp := testutil.ParseResponse(w)
		if resp["data"].(map[string]interface{})["name"] != "Widget" {
			t.Errorf("unexpected item: %v", resp["data"])
		}

		w = testutil.DoRequest(r, "GET", "/api/v1/items/by-sku/NOPE", nil)
		if w.Code != 404 {
			t.Errorf("status = %d, want 404", w.Code)
		}
	})
}

func TestReceivingFlowAPI(t *testing.T) {
	r := setupAPI(t)

	post := func(t *testing.T, path string, body map[string]interface{}, wantStatus int) map[string]interface{} {
		t.Helper()
		w := testutil.DoRequest(r, "POST", path, body)
		if w.Code != wantStatus {
			t.Fatalf("POST %s: status = %d, want %d, body = %s", path, w.Code, wantStatus, w.Body.String())
		}
		return testutil.ParseResponse(w)
	}

	id := func(resp map[string]interface{}) float64 {
		return resp["data"].(map[string]interface{})["id"].(float64)
	}

	whID := id(post(t, "/api/v1/warehouses", map[string]interface{}{"name": "Main", "code": "WH1"}, 201))
	zoneID := id(post(t, fmt.Sprintf("/api/v1/warehouses/%.0f/zones", whID), map[string]interface{}{
		"name": "Inbound", "code": "ZIN", "zone_type": "inbound",
	}, 201))
	locID := id(post(t, "/api/v1/locations", map[string]interface{}{
		"warehouse_id": whID, "zone_id": zoneID, "code": "IN-01",
	}, 201))
	itemID := id(post(t, "/api/v1/items", map[string]interface{}{"sku": "SKU-A", "name": "Widget"}, 201))
	typeID := id(post(t, "/api/v1/tare-types", map[string]interface{}{
		"code": "pallet", "name": "Pallet", "prefix": "PAL",
	}, 201))
	tareID := id(post(t, "/api/v1/tares", map[string]interface{}{
		"warehouse_id": whID, "type_id": typeID,
	}, 201))
	orderID := id(post(t, "/api/v1/inbound-orders", map[string]interface{}{
		"external_number": "PO-1001",
		"warehouse_id":    whID,
		"lines":           []map[string]interface{}{{"item_id": itemID, "expected_qty": 5}},
	}, 201))

	w := testutil.DoRequest(r, "PUT", fmt.Sprintf("/api/v1/inbound-orders/%.0f/status", orderID),
		map[string]interface{}{"status": "receiving"})
	if w.Code != 200 {
		t.Fatalf("status update: %d, body = %s", w.Code, w.Body.String())
	}

	post(t, fmt.Sprintf("/api/v1/inbound-orders/%.0f/receive", orderID), map[string]interface{}{
		"tare_id": tareID, "item_id": itemID, "qty": 5,
	}, 200)
	resp := post(t, fmt.Sprintf("/api/v1/inbound-orders/%.0f/close-tare", orderID), map[string]interface{}{
		"tare_id": tareID, "location_id": locID,
	}, 200)

	order := resp["data"].(map[string]interface{})
	if order["status"] != "received" {
		t.Errorf("order status = %v, want received", order["status"])
	}

	w = testutil.DoRequest(r, "GET", fmt.Sprintf("/api/v1/inventory?warehouse_id=%.0f", whID), nil)
	if w.Code != 200 {
		t.Fatalf("inventory list: %d", w.Code)
	}
	items := testutil.ParseResponse(w)["data"].(map[string]interface{})["items"].([]interface{})
	if len(items) != 1 {
		t.Fatalf("inventory rows = %d, want 1", len(items))
	}
	row := items[0].(map[string]interface{})
	if row["quantity"].(float64) != 5 {
		t.Errorf("quantity = %v, want 5", row["quantity"])
	}
}
