package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/s1gl/eWMS/internal/wms/entity"
	"github.com/s1gl/eWMS/internal/wms/repository"
	"github.com/s1gl/eWMS/internal/wms/testutil"
	"github.com/s1gl/eWMS/internal/wms/wmserr"
)

func TestInventoryInbound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewInventoryService(db, repository.NewInventoryRepository(db))
	ctx := context.Background()

	wh := testutil.SeedWarehouse(t, db, "Main", "WH1")
	loc := testutil.SeedLocation(t, db, wh.ID, nil, "A-01-01")
	item := testutil.SeedItem(t, db, "SKU-001", "Widget")

	t.Run("creates inventory row and movement", func(t *testing.T) {
		inv, err := svc.Inbound(ctx, InventoryInboundRequest{
			WarehouseID: wh.ID, LocationID: loc.ID, ItemID: item.ID, Qty: 10,
		})
		if err != nil {
			t.Fatalf("Inbound failed: %v", err)
		}
		if inv.Quantity != 10 {
			t.Errorf("quantity = %d, want 10", inv.Quantity)
		}

		var movements []entity.Movement
		db.Find(&movements)
		if len(movements) != 1 {
			t.Fatalf("movements = %d, want 1", len(movements))
		}
		if movements[0].FromLocationID != nil {
			t.Error("inbound movement should have nil source")
		}
		if movements[0].ToLocationID == nil || *movements[0].ToLocationID != loc.ID {
			t.Error("inbound movement target mismatch")
		}
	})

	t.Run("accumulates onto existing row", func(t *testing.T) {
		inv, err := svc.Inbound(ctx, InventoryInboundRequest{
			WarehouseID: wh.ID, LocationID: loc.ID, ItemID: item.ID, Qty: 5,
		})
		if err != nil {
			t.Fatalf("Inbound failed: %v", err)
		}
		if inv.Quantity != 15 {
			t.Errorf("quantity = %d, want 15", inv.Quantity)
		}

		var count int64
		db.Model(&entity.Inventory{}).Count(&count)
		if count != 1 {
			t.Errorf("inventory rows = %d, want 1", count)
		}
	})

	t.Run("rejects unknown location", func(t *testing.T) {
		_, err := svc.Inbound(ctx, InventoryInboundRequest{
			WarehouseID: wh.ID, LocationID: 9999, ItemID: item.ID, Qty: 1,
		})
		if !errors.Is(err, wmserr.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})

	t.Run("rejects location of another warehouse", func(t *testing.T) {
		other := testutil.SeedWarehouse(t, db, "Other", "WH2")
		otherLoc := testutil.SeedLocation(t, db, other.ID, nil, "B-01-01")
		_, err := svc.Inbound(ctx, InventoryInboundRequest{
			WarehouseID: wh.ID, LocationID: otherLoc.ID, ItemID: item.ID, Qty: 1,
		})
		if !errors.Is(err, wmserr.ErrLocationMismatch) {
			t.Errorf("err = %v, want ErrLocationMismatch", err)
		}
	})
}

func TestInventoryMove(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewInventoryService(db, repository.NewInventoryRepository(db))
	ctx := context.Background()

	wh := testutil.SeedWarehouse(t, db, "Main", "WH1")
	src := testutil.SeedLocation(t, db, wh.ID, nil, "A-01-01")
	dst := testutil.SeedLocation(t, db, wh.ID, nil, "A-01-02")
	item := testutil.SeedItem(t, db, "SKU-001", "Widget")
	testutil.SeedInventory(t, db, wh.ID, src.ID, item.ID, 10)

	t.Run("rejects identical source and target", func(t *testing.T) {
		err := svc.Move(ctx, InventoryMoveRequest{
			WarehouseID: wh.ID, FromLocationID: src.ID, ToLocationID: src.ID, ItemID: item.ID, Qty: 1,
		})
		if !errors.Is(err, wmserr.ErrInvalidMove) {
			t.Errorf("err = %v, want ErrInvalidMove", err)
		}
	})

	t.Run("transfers partial quantity", func(t *testing.T) {
		err := svc.Move(ctx, InventoryMoveRequest{
			WarehouseID: wh.ID, FromLocationID: src.ID, ToLocationID: dst.ID, ItemID: item.ID, Qty: 4,
		})
		if err != nil {
			t.Fatalf("Move failed: %v", err)
		}

		var srcInv, dstInv entity.Inventory
		db.Where("location_id = ?", src.ID).First(&srcInv)
		db.Where("location_id = ?", dst.ID).First(&dstInv)
		if srcInv.Quantity != 6 || dstInv.Quantity != 4 {
			t.Errorf("quantities = %d/%d, want 6/4", srcInv.Quantity, dstInv.Quantity)
		}
	})

	t.Run("rejects insufficient stock without side effects", func(t *testing.T) {
		err := svc.Move(ctx, InventoryMoveRequest{
			WarehouseID: wh.ID, FromLocationID: src.ID, ToLocationID: dst.ID, ItemID: item.ID, Qty: 100,
		})
		if !errors.Is(err, wmserr.ErrInsufficientStock) {
			t.Fatalf("err = %v, want ErrInsufficientStock", err)
		}

		var srcInv entity.Inventory
		db.Where("location_id = ?", src.ID).First(&srcInv)
		if srcInv.Quantity != 6 {
			t.Errorf("source quantity changed to %d after failed move", srcInv.Quantity)
		}
	})

	t.Run("deletes the source row at zero", func(t *testing.T) {
		err := svc.Move(ctx, InventoryMoveRequest{
			WarehouseID: wh.ID, FromLocationID: src.ID, ToLocationID: dst.ID, ItemID: item.ID, Qty: 6,
		})
		if err != nil {
			t.Fatalf("Move failed: %v", err)
		}

		var count int64
		db.Model(&entity.Inventory{}).Where("location_id = ?", src.ID).Count(&count)
		if count != 0 {
			t.Errorf("source row survived at zero quantity")
		}
	})
}

// Two moves race for stock that covers only one of them. The row lock taken
// inside the transaction must serialize the sufficiency checks, so exactly one
// wins and the loser sees the post-commit quantity, not a stale read.
func TestInventoryConcurrentMove(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewInventoryService(db, repository.NewInventoryRepository(db))
	ctx := context.Background()

	wh := testutil.SeedWarehouse(t, db, "Main", "WH1")
	src := testutil.SeedLocation(t, db, wh.ID, nil, "A-01-01")
	dst := testutil.SeedLocation(t, db, wh.ID, nil, "A-01-02")
	item := testutil.SeedItem(t, db, "SKU-001", "Widget")
	testutil.SeedInventory(t, db, wh.ID, src.ID, item.ID, 5)

	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = svc.Move(ctx, InventoryMoveRequest{
				WarehouseID: wh.ID, FromLocationID: src.ID, ToLocationID: dst.ID, ItemID: item.ID, Qty: 4,
			})
		}(i)
	}
	wg.Wait()

	succeeded, insufficient := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, wmserr.ErrInsufficientStock):
			insufficient++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if succeeded != 1 || insufficient != 1 {
		t.Fatalf("succeeded = %d, insufficient = %d, want 1/1", succeeded, insufficient)
	}

	var srcInv, dstInv entity.Inventory
	db.Where("location_id = ?", src.ID).First(&srcInv)
	db.Where("location_id = ?", dst.ID).First(&dstInv)
	if srcInv.Quantity != 1 || dstInv.Quantity != 4 {
		t.Errorf("quantities = %d/%d, want 1/4", srcInv.Quantity, dstInv.Quantity)
	}
}
