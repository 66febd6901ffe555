package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/towingbuddy/towtrack-api/internal/core/domain"
	"github.com/towingbuddy/towtrack-api/internal/core/ports"
)

func TestOwnerUpsert_CreatesThenUpdates(t *testing.T) {
	repo := newStubOwnerRepo()
	svc := NewOwnerService(repo, zerolog.Nop())
	ctx := context.Background()

	owner, updated, err := svc.Upsert(ctx, ports.UpsertOwnerInput{
		PlateNumber: "mh 12 ab 1234",
		OwnerName:   "Asha",
		Phone:       "+919876543210",
		Model:       "Swift",
	})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if updated {
		t.Fatal("first upsert should create, not update")
	}
	if owner.PlateNumber != "MH12AB1234" {
		t.Fatalf("plate not normalized: %q", owner.PlateNumber)
	}

	// Second submission with blank phone/model keeps the stored values.
	owner, updated, err = svc.Upsert(ctx, ports.UpsertOwnerInput{
		PlateNumber: "MH12AB1234",
		OwnerName:   "Asha Rao",
	})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if !updated {
		t.Fatal("second upsert should update")
	}
	if owner.OwnerName != "Asha Rao" {
		t.Fatalf("name not overwritten: %q", owner.OwnerName)
	}
	if owner.Phone != "+919876543210" || owner.Model != "Swift" {
		t.Fatalf("blank inputs must not clobber stored phone/model: %+v", owner)
	}
	if len(repo.byPlate) != 1 {
		t.Fatalf("expected a single directory entry, got %d", len(repo.byPlate))
	}

	// Non-empty inputs do overwrite.
	owner, _, err = svc.Upsert(ctx, ports.UpsertOwnerInput{
		PlateNumber: "MH12AB1234",
		OwnerName:   "Asha Rao",
		Phone:       "+911111122222",
		Model:       "Baleno",
	})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if owner.Phone != "+911111122222" || owner.Model != "Baleno" {
		t.Fatalf("non-empty inputs should overwrite: %+v", owner)
	}
}

func TestOwnerUpsert_ConflictOnInsertRace(t *testing.T) {
	repo := newStubOwnerRepo()
	repo.createErr = domain.ErrOwnerExists
	svc := NewOwnerService(repo, zerolog.Nop())

	_, _, err := svc.Upsert(context.Background(), ports.UpsertOwnerInput{
		PlateNumber: "MH12AB1234",
		OwnerName:   "Asha",
	})
	if !errors.Is(err, domain.ErrOwnerExists) {
		t.Fatalf("expected ErrOwnerExists, got %v", err)
	}
}

func TestOwnerLookup_Normalizes(t *testing.T) {
	repo := newStubOwnerRepo()
	svc := NewOwnerService(repo, zerolog.Nop())
	ctx := context.Background()

	if _, _, err := svc.Upsert(ctx, ports.UpsertOwnerInput{PlateNumber: "MH12AB1234", OwnerName: "Asha"}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	owner, err := svc.Lookup(ctx, "mh 12 ab 1234")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if owner.OwnerName != "Asha" {
		t.Fatalf("unexpected owner: %+v", owner)
	}

	if _, err := svc.Lookup(ctx, "KA01XY9999"); !errors.Is(err, domain.ErrOwnerNotFound) {
		t.Fatalf("expected ErrOwnerNotFound, got %v", err)
	}
}
