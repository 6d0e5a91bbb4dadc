package service

import (
	"context"
	"errors"
	"testing"

	"github.com/s1gl/eWMS/internal/wms/entity"
	"github.com/s1gl/eWMS/internal/wms/repository"
	"github.com/s1gl/eWMS/internal/wms/testutil"
	"github.com/s1gl/eWMS/internal/wms/wmserr"
	"gorm.io/gorm"
)

type inboundTestEnv struct {
	db         *gorm.DB
	tareSvc    *TareService
	warehouse  *entity.Warehouse
	inboundLoc *entity.Location
	storageLoc *entity.Location
	itemA      *entity.Item
	itemB      *entity.Item
	tareType   *entity.TareType
}

func setupInboundTest(t *testing.T) (*InboundService, *inboundTestEnv) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	svc := NewInboundService(db, repos.Inbound, repos.Warehouse, repos.Partner, repos.Item)
	tareSvc := NewTareService(db, repos.Tare, repos.Warehouse, nil)

	wh := testutil.SeedWarehouse(t, db, "Main", "WH1")
	inboundZone := testutil.SeedZone(t, db, wh.ID, "ZIN", entity.ZoneTypeInbound)
	storageZone := testutil.SeedZone(t, db, wh.ID, "ZST", entity.ZoneTypeStorage)

	return svc, &inboundTestEnv{
		db:         db,
		tareSvc:    tareSvc,
		warehouse:  wh,
		inboundLoc: testutil.SeedLocation(t, db, wh.ID, &inboundZone.ID, "IN-01"),
		storageLoc: testutil.SeedLocation(t, db, wh.ID, &storageZone.ID, "ST-01"),
		itemA:      testutil.SeedItem(t, db, "SKU-A", "Widget A"),
		itemB:      testutil.SeedItem(t, db, "SKU-B", "Widget B"),
		tareType:   testutil.SeedTareType(t, db, "pallet", "PAL"),
	}
}

func (env *inboundTestEnv) newOrder(t *testing.T, svc *InboundService, expectedQty int) *entity.InboundOrder {
	t.Helper()
	order, err := svc.Create(context.Background(), CreateInboundOrderRequest{
		ExternalNumber: "PO-1001",
		WarehouseID:    env.warehouse.ID,
		Lines: []CreateInboundLineRequest{
			{ItemID: env.itemA.ID, ExpectedQty: expectedQty},
		},
	})
	if err != nil {
		t.Fatalf("Create order failed: %v", err)
	}
	return order
}

func (env *inboundTestEnv) newTare(t *testing.T) *entity.Tare {
	t.Helper()
	tare, err := env.tareSvc.Create(context.Background(), CreateTareRequest{
		WarehouseID: env.warehouse.ID, TypeID: env.tareType.ID,
	})
	if err != nil {
		t.Fatalf("Create tare failed: %v", err)
	}
	return tare
}

func TestInboundStatusTransitions(t *testing.T) {
	svc, env := setupInboundTest(t)
	ctx := context.Background()

	order := env.newOrder(t, svc, 10)
	if order.Status != entity.InboundStatusReadyForReceiving {
		t.Fatalf("initial status = %s", order.Status)
	}

	t.Run("rejects skipping to received", func(t *testing.T) {
		_, err := svc.UpdateStatus(ctx, order.ID, entity.InboundStatusReceived)
		if !errors.Is(err, wmserr.ErrInvalidTransition) {
			t.Errorf("err = %v, want ErrInvalidTransition", err)
		}
	})

	t.Run("self transition is a no-op", func(t *testing.T) {
		got, err := svc.UpdateStatus(ctx, order.ID, entity.InboundStatusReadyForReceiving)
		if err != nil {
			t.Fatalf("UpdateStatus failed: %v", err)
		}
		if got.Status != entity.InboundStatusReadyForReceiving {
			t.Errorf("status = %s", got.Status)
		}
	})

	t.Run("accepts legacy alias", func(t *testing.T) {
		got, err := svc.UpdateStatus(ctx, order.ID, "in_progress")
		if err != nil {
			t.Fatalf("UpdateStatus failed: %v", err)
		}
		if got.Status != entity.InboundStatusReceiving {
			t.Errorf("status = %s, want receiving", got.Status)
		}
	})

	t.Run("cancel is terminal", func(t *testing.T) {
		if _, err := svc.UpdateStatus(ctx, order.ID, entity.InboundStatusCancelled); err != nil {
			t.Fatalf("cancel failed: %v", err)
		}
		_, err := svc.UpdateStatus(ctx, order.ID, entity.InboundStatusReceiving)
		if !errors.Is(err, wmserr.ErrInvalidTransition) {
			t.Errorf("err = %v, want ErrInvalidTransition", err)
		}
	})
}

func TestInboundReceive(t *testing.T) {
	svc, env := setupInboundTest(t)
	ctx := context.Background()

	order := env.newOrder(t, svc, 10)
	tare := env.newTare(t)

	t.Run("rejects receive before receiving starts", func(t *testing.T) {
		_, err := svc.Receive(ctx, order.ID, InboundReceiveRequest{TareID: tare.ID, ItemID: &env.itemA.ID, Qty: 1})
		if !errors.Is(err, wmserr.ErrOrderNotReceiving) {
			t.Errorf("err = %v, want ErrOrderNotReceiving", err)
		}
	})

	if _, err := svc.UpdateStatus(ctx, order.ID, entity.InboundStatusReceiving); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}

	t.Run("partial receive", func(t *testing.T) {
		got, err := svc.Receive(ctx, order.ID, InboundReceiveRequest{TareID: tare.ID, ItemID: &env.itemA.ID, Qty: 4})
		if err != nil {
			t.Fatalf("Receive failed: %v", err)
		}
		if got.Status != entity.InboundStatusReceiving {
			t.Errorf("order status = %s, want receiving", got.Status)
		}
		if got.Lines[0].ReceivedQty != 4 || got.Lines[0].LineStatus != entity.LineStatusPartiallyReceived {
			t.Errorf("line = %d/%s, want 4/partially_received", got.Lines[0].ReceivedQty, got.Lines[0].LineStatus)
		}

		// stock stays in the tare until it closes
		var invCount int64
		env.db.Model(&entity.Inventory{}).Count(&invCount)
		if invCount != 0 {
			t.Error("receive must not touch inventory before tare close")
		}
	})

	t.Run("completing the line completes the order", func(t *testing.T) {
		got, err := svc.Receive(ctx, order.ID, InboundReceiveRequest{TareID: tare.ID, ItemID: &env.itemA.ID, Qty: 6})
		if err != nil {
			t.Fatalf("Receive failed: %v", err)
		}
		if got.Lines[0].LineStatus != entity.LineStatusFullyReceived {
			t.Errorf("line status = %s, want fully_received", got.Lines[0].LineStatus)
		}
		if got.Status != entity.InboundStatusReceived {
			t.Errorf("order status = %s, want received", got.Status)
		}
	})
}

func TestInboundReceiveDeviations(t *testing.T) {
	svc, env := setupInboundTest(t)
	ctx := context.Background()

	order := env.newOrder(t, svc, 10)
	tare := env.newTare(t)
	if _, err := svc.UpdateStatus(ctx, order.ID, entity.InboundStatusReceiving); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}

	t.Run("over-receipt flags the order as problem", func(t *testing.T) {
		got, err := svc.Receive(ctx, order.ID, InboundReceiveRequest{TareID: tare.ID, ItemID: &env.itemA.ID, Qty: 12})
		if err != nil {
			t.Fatalf("Receive failed: %v", err)
		}
		if got.Lines[0].LineStatus != entity.LineStatusOverReceived {
			t.Errorf("line status = %s, want over_received", got.Lines[0].LineStatus)
		}
		if got.Status != entity.InboundStatusProblem {
			t.Errorf("order status = %s, want problem", got.Status)
		}
	})

	t.Run("unplanned item creates a mis-sort line", func(t *testing.T) {
		got, err := svc.Receive(ctx, order.ID, InboundReceiveRequest{TareID: tare.ID, ItemID: &env.itemB.ID, Qty: 2})
		if err != nil {
			t.Fatalf("Receive failed: %v", err)
		}
		if len(got.Lines) != 2 {
			t.Fatalf("lines = %d, want 2", len(got.Lines))
		}
		var adHoc *entity.InboundOrderLine
		for i := range got.Lines {
			if got.Lines[i].ItemID == env.itemB.ID {
				adHoc = &got.Lines[i]
			}
		}
		if adHoc == nil {
			t.Fatal("ad-hoc line not created")
		}
		if adHoc.ExpectedQty != 0 || adHoc.ReceivedQty != 2 || adHoc.LineStatus != entity.LineStatusMisSort {
			t.Errorf("ad-hoc line = %+v", adHoc)
		}
		if got.Status != entity.InboundStatusMisSort {
			t.Errorf("order status = %s, want mis_sort", got.Status)
		}
	})
}

func TestInboundOverReceiptOutranksMisSort(t *testing.T) {
	svc, env := setupInboundTest(t)
	ctx := context.Background()

	order := env.newOrder(t, svc, 5)
	tare := env.newTare(t)
	if _, err := svc.UpdateStatus(ctx, order.ID, entity.InboundStatusReceiving); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}

	got, err := svc.Receive(ctx, order.ID, InboundReceiveRequest{
		TareID: tare.ID, ItemID: &env.itemA.ID, Qty: 3, Condition: entity.LineStatusMisSort,
	})
	if err != nil {
		t.Fatalf("Receive failed: %v", err)
	}
	if got.Lines[0].LineStatus != entity.LineStatusMisSort {
		t.Fatalf("line status = %s, want mis_sort", got.Lines[0].LineStatus)
	}

	// crossing the expected quantity reclassifies the line even if it was
	// previously flagged as mis-sorted
	got, err = svc.Receive(ctx, order.ID, InboundReceiveRequest{TareID: tare.ID, ItemID: &env.itemA.ID, Qty: 4})
	if err != nil {
		t.Fatalf("Receive failed: %v", err)
	}
	if got.Lines[0].LineStatus != entity.LineStatusOverReceived {
		t.Errorf("line status = %s, want over_received", got.Lines[0].LineStatus)
	}
	if got.Status != entity.InboundStatusProblem {
		t.Errorf("order status = %s, want problem", got.Status)
	}
}

func TestInboundCloseTare(t *testing.T) {
	svc, env := setupInboundTest(t)
	ctx := context.Background()

	order := env.newOrder(t, svc, 10)
	tare := env.newTare(t)
	if _, err := svc.UpdateStatus(ctx, order.ID, entity.InboundStatusReceiving); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	if _, err := svc.Receive(ctx, order.ID, InboundReceiveRequest{TareID: tare.ID, ItemID: &env.itemA.ID, Qty: 10}); err != nil {
		t.Fatalf("Receive failed: %v", err)
	}

	t.Run("rejects closing into a storage location", func(t *testing.T) {
		_, err := svc.CloseTare(ctx, order.ID, InboundCloseTareRequest{TareID: tare.ID, LocationID: env.storageLoc.ID})
		if !errors.Is(err, wmserr.ErrZoneNotInbound) {
			t.Errorf("err = %v, want ErrZoneNotInbound", err)
		}
	})

	t.Run("close places stock into the inbound zone", func(t *testing.T) {
		got, err := svc.CloseTare(ctx, order.ID, InboundCloseTareRequest{TareID: tare.ID, LocationID: env.inboundLoc.ID})
		if err != nil {
			t.Fatalf("CloseTare failed: %v", err)
		}
		if got.Status != entity.InboundStatusReceived {
			t.Errorf("order status = %s, want received", got.Status)
		}

		var closedTare entity.Tare
		env.db.First(&closedTare, tare.ID)
		if closedTare.Status != entity.TareStatusClosed {
			t.Errorf("tare status = %s, want closed", closedTare.Status)
		}

		var inv entity.Inventory
		if err := env.db.Where("location_id = ? AND item_id = ?", env.inboundLoc.ID, env.itemA.ID).First(&inv).Error; err != nil {
			t.Fatalf("inventory row not found: %v", err)
		}
		if inv.Quantity != 10 {
			t.Errorf("quantity = %d, want 10", inv.Quantity)
		}

		var movement entity.Movement
		if err := env.db.Where("item_id = ?", env.itemA.ID).First(&movement).Error; err != nil {
			t.Fatalf("movement not recorded: %v", err)
		}
		if movement.FromLocationID != nil {
			t.Error("close movement should have nil source")
		}
	})

	t.Run("closed tare cannot close again", func(t *testing.T) {
		_, err := svc.CloseTare(ctx, order.ID, InboundCloseTareRequest{TareID: tare.ID, LocationID: env.inboundLoc.ID})
		if !errors.Is(err, wmserr.ErrAlreadyClosed) {
			t.Errorf("err = %v, want ErrAlreadyClosed", err)
		}
	})
}
