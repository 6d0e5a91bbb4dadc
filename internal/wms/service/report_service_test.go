package service

import (
	"context"
	"testing"

	"github.com/s1gl/eWMS/internal/wms/repository"
	"github.com/s1gl/eWMS/internal/wms/testutil"
)

func TestReports(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	invSvc := NewInventoryService(db, repos.Inventory)
	svc := NewReportService(repos.Inventory, repos.Movement)
	ctx := context.Background()

	wh := testutil.SeedWarehouse(t, db, "Main", "WH1")
	locA := testutil.SeedLocation(t, db, wh.ID, nil, "A-01")
	locB := testutil.SeedLocation(t, db, wh.ID, nil, "A-02")
	item := testutil.SeedItem(t, db, "SKU-A", "Widget")

	for _, in := range []struct {
		loc uint
		qty int
	}{{locA.ID, 5}, {locB.ID, 3}} {
		if _, err := invSvc.Inbound(ctx, InventoryInboundRequest{
			WarehouseID: wh.ID, LocationID: in.loc, ItemID: item.ID, Qty: in.qty,
		}); err != nil {
			t.Fatalf("Inbound failed: %v", err)
		}
	}

	t.Run("stock summary sums over locations", func(t *testing.T) {
		rows, err := svc.StockSummary()
		if err != nil {
			t.Fatalf("StockSummary failed: %v", err)
		}
		if len(rows) != 1 {
			t.Fatalf("rows = %d, want 1", len(rows))
		}
		if rows[0].Quantity != 8 {
			t.Errorf("total = %d, want 8", rows[0].Quantity)
		}
	})

	t.Run("turnover splits inbound and outbound", func(t *testing.T) {
		if err := invSvc.Move(ctx, InventoryMoveRequest{
			WarehouseID: wh.ID, FromLocationID: locA.ID, ToLocationID: locB.ID, ItemID: item.ID, Qty: 2,
		}); err != nil {
			t.Fatalf("Move failed: %v", err)
		}

		rows, err := svc.Turnover(nil, nil)
		if err != nil {
			t.Fatalf("Turnover failed: %v", err)
		}
		if len(rows) != 1 {
			t.Fatalf("rows = %d, want 1", len(rows))
		}
		// the internal transfer counts on neither side
		if rows[0].InboundQty != 8 || rows[0].OutboundQty != 0 {
			t.Errorf("turnover = %d/%d, want 8/0", rows[0].InboundQty, rows[0].OutboundQty)
		}
	})
}
