package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/towingbuddy/towtrack-api/internal/core/domain"
	"github.com/towingbuddy/towtrack-api/internal/core/ports"
)

type stubTowingService struct {
	createFn        func(ctx context.Context, input ports.CreateRecordInput) (*domain.TowingRecord, error)
	listFn          func(ctx context.Context, page, limit int) (*ports.ListRecordsResult, error)
	updatePaymentFn func(ctx context.Context, id string, status domain.PaymentStatus, paymentID string) (*domain.TowingRecord, error)
	paymentStatusFn func(ctx context.Context, id string) (*ports.PaymentStatusResult, error)
}

func (s *stubTowingService) CreateRecord(ctx context.Context, input ports.CreateRecordInput) (*domain.TowingRecord, error) {
	return s.createFn(ctx, input)
}

func (s *stubTowingService) ListRecords(ctx context.Context, page, limit int) (*ports.ListRecordsResult, error) {
	return s.listFn(ctx, page, limit)
}

func (s *stubTowingService) UpdatePaymentStatus(ctx context.Context, id string, status domain.PaymentStatus, paymentID string) (*domain.TowingRecord, error) {
	return s.updatePaymentFn(ctx, id, status, paymentID)
}

func (s *stubTowingService) GetPaymentStatus(ctx context.Context, id string) (*ports.PaymentStatusResult, error) {
	return s.paymentStatusFn(ctx, id)
}

func TestVehicleHandler_Create_Success(t *testing.T) {
	var captured ports.CreateRecordInput
	stub := &stubTowingService{
		createFn: func(ctx context.Context, input ports.CreateRecordInput) (*domain.TowingRecord, error) {
			captured = input
			return &domain.TowingRecord{
				ID:            "rec_1",
				PlateNumber:   "MH12AB1234",
				TowedFrom:     input.TowedFrom,
				TowedTo:       input.TowedTo,
				Fine:          input.Fine,
				Reason:        input.Reason,
				PaymentStatus: domain.PaymentUnpaid,
				CreatedAt:     time.Now(),
			}, nil
		},
	}
	handler := NewVehicleHandler(stub)

	body := `{
		"vehicleNumber": "MH 12 AB 1234",
		"towedFrom": "MG Road",
		"towedTo": "Central Yard",
		"fine": 500,
		"reason": "No parking",
		"owner": {"name": "Asha", "phone": "+911234567890", "model": "Swift"},
		"towedFromCoords": {"lat": 18.52, "lon": 73.85}
	}`
	c, rec := newTestContext(t, http.MethodPost, "/api/vehicles", body)
	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	resp := decodeBody(t, rec)
	if resp["message"] != "Vehicle added" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
	if captured.Fine != 500 {
		t.Fatalf("expected fine 500, got %v", captured.Fine)
	}
	if captured.Owner == nil || captured.Owner.Name != "Asha" {
		t.Fatalf("expected owner payload to be forwarded: %+v", captured.Owner)
	}
	if captured.TowedFromCoords == nil || captured.TowedFromCoords.Lat != 18.52 {
		t.Fatalf("expected from-coords to be forwarded: %+v", captured.TowedFromCoords)
	}
	if captured.TowedToCoords != nil {
		t.Fatalf("expected no to-coords, got %+v", captured.TowedToCoords)
	}
}

func TestVehicleHandler_Create_MissingFields(t *testing.T) {
	handler := NewVehicleHandler(&stubTowingService{})

	c, rec := newTestContext(t, http.MethodPost, "/api/vehicles", `{"vehicleNumber":"MH12AB1234","towedFrom":"MG Road"}`)
	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestVehicleHandler_Create_FineVariants(t *testing.T) {
	tests := []struct {
		name string
		body string
		want float64
	}{
		{"omitted", `{"vehicleNumber":"KA01A1","towedFrom":"a","towedTo":"b","reason":"r"}`, 0},
		{"numeric string", `{"vehicleNumber":"KA01A1","towedFrom":"a","towedTo":"b","reason":"r","fine":"250.5"}`, 250.5},
		{"garbage string", `{"vehicleNumber":"KA01A1","towedFrom":"a","towedTo":"b","reason":"r","fine":"free"}`, 0},
		{"number", `{"vehicleNumber":"KA01A1","towedFrom":"a","towedTo":"b","reason":"r","fine":1200}`, 1200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got float64
			stub := &stubTowingService{
				createFn: func(ctx context.Context, input ports.CreateRecordInput) (*domain.TowingRecord, error) {
					got = input.Fine
					return &domain.TowingRecord{ID: "rec_1"}, nil
				},
			}
			handler := NewVehicleHandler(stub)

			c, rec := newTestContext(t, http.MethodPost, "/api/vehicles", tt.body)
			if err := handler.Create(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != http.StatusCreated {
				t.Fatalf("expected 201, got %d", rec.Code)
			}
			if got != tt.want {
				t.Fatalf("expected fine %v, got %v", tt.want, got)
			}
		})
	}
}

func TestVehicleHandler_Create_PartialCoordsDropped(t *testing.T) {
	var captured ports.CreateRecordInput
	stub := &stubTowingService{
		createFn: func(ctx context.Context, input ports.CreateRecordInput) (*domain.TowingRecord, error) {
			captured = input
			return &domain.TowingRecord{ID: "rec_1"}, nil
		},
	}
	handler := NewVehicleHandler(stub)

	body := `{"vehicleNumber":"KA01A1","towedFrom":"a","towedTo":"b","reason":"r","towedFromCoords":{"lat":18.52}}`
	c, _ := newTestContext(t, http.MethodPost, "/api/vehicles", body)
	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if captured.TowedFromCoords != nil {
		t.Fatalf("expected lat-only coords to be dropped, got %+v", captured.TowedFromCoords)
	}
}

func TestVehicleHandler_List(t *testing.T) {
	stub := &stubTowingService{
		listFn: func(ctx context.Context, page, limit int) (*ports.ListRecordsResult, error) {
			if page != 2 || limit != 5 {
				t.Fatalf("unexpected paging: page=%d limit=%d", page, limit)
			}
			return &ports.ListRecordsResult{
				Records: []*domain.TowingRecord{{ID: "rec_2"}, {ID: "rec_1"}},
				Total:   12,
				Page:    2,
				Limit:   5,
			}, nil
		},
	}
	handler := NewVehicleHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/api/vehicles?page=2&limit=5", "")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	resp := decodeBody(t, rec)
	if resp["total"] != float64(12) || resp["page"] != float64(2) || resp["limit"] != float64(5) {
		t.Fatalf("unexpected paging metadata: %+v", resp)
	}
	vehicles, ok := resp["vehicles"].([]any)
	if !ok || len(vehicles) != 2 {
		t.Fatalf("expected 2 vehicles: %+v", resp["vehicles"])
	}
}
