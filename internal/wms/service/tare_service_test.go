package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/s1gl/eWMS/internal/wms/entity"
	"github.com/s1gl/eWMS/internal/wms/repository"
	"github.com/s1gl/eWMS/internal/wms/testutil"
	"github.com/s1gl/eWMS/internal/wms/wmserr"
	"gorm.io/gorm"
)

type tareTestEnv struct {
	db         *gorm.DB
	warehouse  *entity.Warehouse
	inboundLoc *entity.Location
	storageLoc *entity.Location
	item       *entity.Item
	tareType   *entity.TareType
}

func setupTareTest(t *testing.T) (*TareService, *tareTestEnv) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	svc := NewTareService(db, repository.NewTareRepository(db), repository.NewWarehouseRepository(db), nil)

	wh := testutil.SeedWarehouse(t, db, "Main", "WH1")
	inboundZone := testutil.SeedZone(t, db, wh.ID, "ZIN", entity.ZoneTypeInbound)
	storageZone := testutil.SeedZone(t, db, wh.ID, "ZST", entity.ZoneTypeStorage)

	return svc, &tareTestEnv{
		db:         db,
		warehouse:  wh,
		inboundLoc: testutil.SeedLocation(t, db, wh.ID, &inboundZone.ID, "IN-01"),
		storageLoc: testutil.SeedLocation(t, db, wh.ID, &storageZone.ID, "ST-01"),
		item:       testutil.SeedItem(t, db, "SKU-001", "Widget"),
		tareType:   testutil.SeedTareType(t, db, "pallet", "PAL"),
	}
}

func TestTareCodeGeneration(t *testing.T) {
	svc, env := setupTareTest(t)
	ctx := context.Background()

	t.Run("issues sequential codes", func(t *testing.T) {
		for i := 1; i <= 3; i++ {
			tare, err := svc.Create(ctx, CreateTareRequest{WarehouseID: env.warehouse.ID, TypeID: env.tareType.ID})
			if err != nil {
				t.Fatalf("Create failed: %v", err)
			}
			want := fmt.Sprintf("PAL-%06d", i)
			if tare.TareCode != want {
				t.Errorf("code = %s, want %s", tare.TareCode, want)
			}
			if tare.Status != entity.TareStatusInbound {
				t.Errorf("status = %s, want inbound", tare.Status)
			}
		}
	})

	t.Run("skips past manually inserted codes", func(t *testing.T) {
		env.db.Create(&entity.Tare{
			WarehouseID: env.warehouse.ID, TypeID: env.tareType.ID,
			TareCode: "PAL-000004", Status: entity.TareStatusInbound,
		})
		tare, err := svc.Create(ctx, CreateTareRequest{WarehouseID: env.warehouse.ID, TypeID: env.tareType.ID})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if tare.TareCode != "PAL-000005" {
			t.Errorf("code = %s, want PAL-000005", tare.TareCode)
		}
	})

	t.Run("rejects duplicate type code", func(t *testing.T) {
		_, err := svc.CreateType(CreateTareTypeRequest{Code: "pallet", Name: "Pallet", Prefix: "PAL"})
		if !errors.Is(err, wmserr.ErrDuplicateKey) {
			t.Errorf("err = %v, want ErrDuplicateKey", err)
		}
	})
}

func TestTareManifestAndClose(t *testing.T) {
	svc, env := setupTareTest(t)
	ctx := context.Background()

	tare, err := svc.Create(ctx, CreateTareRequest{WarehouseID: env.warehouse.ID, TypeID: env.tareType.ID})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	t.Run("accumulates manifest lines", func(t *testing.T) {
		if err := svc.AddItem(ctx, tare.ID, AddTareItemRequest{ItemID: env.item.ID, Qty: 3}); err != nil {
			t.Fatalf("AddItem failed: %v", err)
		}
		if err := svc.AddItem(ctx, tare.ID, AddTareItemRequest{ItemID: env.item.ID, Qty: 4}); err != nil {
			t.Fatalf("AddItem failed: %v", err)
		}

		items, err := svc.ListItems(tare.ID)
		if err != nil {
			t.Fatalf("ListItems failed: %v", err)
		}
		if len(items) != 1 || items[0].Quantity != 7 {
			t.Fatalf("manifest = %+v, want one line of 7", items)
		}
	})

	t.Run("close books the manifest into inventory", func(t *testing.T) {
		closed, err := svc.Close(ctx, tare.ID, env.inboundLoc.ID)
		if err != nil {
			t.Fatalf("Close failed: %v", err)
		}
		if closed.Status != entity.TareStatusClosed {
			t.Errorf("status = %s, want closed", closed.Status)
		}
		if closed.LocationID == nil || *closed.LocationID != env.inboundLoc.ID {
			t.Error("tare not placed onto the close location")
		}

		var inv entity.Inventory
		if err := env.db.Where("location_id = ? AND item_id = ?", env.inboundLoc.ID, env.item.ID).First(&inv).Error; err != nil {
			t.Fatalf("inventory row not found: %v", err)
		}
		if inv.Quantity != 7 {
			t.Errorf("quantity = %d, want 7", inv.Quantity)
		}
		if inv.TareID == nil || *inv.TareID != tare.ID {
			t.Error("inventory row should reference the tare")
		}
	})

	t.Run("close is not repeatable", func(t *testing.T) {
		_, err := svc.Close(ctx, tare.ID, env.inboundLoc.ID)
		if !errors.Is(err, wmserr.ErrAlreadyClosed) {
			t.Errorf("err = %v, want ErrAlreadyClosed", err)
		}
	})

	t.Run("closed tare rejects new items", func(t *testing.T) {
		err := svc.AddItem(ctx, tare.ID, AddTareItemRequest{ItemID: env.item.ID, Qty: 1})
		if !errors.Is(err, wmserr.ErrAlreadyClosed) {
			t.Errorf("err = %v, want ErrAlreadyClosed", err)
		}
	})
}

func TestTarePutAway(t *testing.T) {
	svc, env := setupTareTest(t)
	ctx := context.Background()

	tare, err := svc.Create(ctx, CreateTareRequest{WarehouseID: env.warehouse.ID, TypeID: env.tareType.ID})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := svc.AddItem(ctx, tare.ID, AddTareItemRequest{ItemID: env.item.ID, Qty: 5}); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	if _, err := svc.Close(ctx, tare.ID, env.inboundLoc.ID); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	t.Run("rejects put-away back into an inbound location", func(t *testing.T) {
		var inboundZone entity.Zone
		if err := env.db.Where("code = ?", "ZIN").First(&inboundZone).Error; err != nil {
			t.Fatalf("zone lookup failed: %v", err)
		}
		otherInbound := testutil.SeedLocation(t, env.db, env.warehouse.ID, &inboundZone.ID, "IN-02")
		if _, err := svc.PutAway(ctx, tare.ID, otherInbound.ID); !errors.Is(err, wmserr.ErrInvalidZoneTransition) {
			t.Errorf("err = %v, want ErrInvalidZoneTransition", err)
		}
	})

	t.Run("moves the manifest into storage", func(t *testing.T) {
		moved, err := svc.PutAway(ctx, tare.ID, env.storageLoc.ID)
		if err != nil {
			t.Fatalf("PutAway failed: %v", err)
		}
		if moved.Status != entity.TareStatusStorage {
			t.Errorf("status = %s, want storage", moved.Status)
		}

		var count int64
		env.db.Model(&entity.Inventory{}).Where("location_id = ?", env.inboundLoc.ID).Count(&count)
		if count != 0 {
			t.Error("stock left behind in the inbound location")
		}

		var inv entity.Inventory
		if err := env.db.Where("location_id = ?", env.storageLoc.ID).First(&inv).Error; err != nil {
			t.Fatalf("storage inventory row not found: %v", err)
		}
		if inv.Quantity != 5 {
			t.Errorf("quantity = %d, want 5", inv.Quantity)
		}
	})

	t.Run("rejects moving an unplaced tare", func(t *testing.T) {
		floating, err := svc.Create(ctx, CreateTareRequest{WarehouseID: env.warehouse.ID, TypeID: env.tareType.ID})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if _, err := svc.PutAway(ctx, floating.ID, env.storageLoc.ID); !errors.Is(err, wmserr.ErrInvalidMove) {
			t.Errorf("err = %v, want ErrInvalidMove", err)
		}
	})
}
