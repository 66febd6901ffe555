package service

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/towingbuddy/towtrack-api/internal/core/domain"
	"github.com/towingbuddy/towtrack-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories shared by the service tests
// ---------------------------------------------------------------------------

type stubOwnerRepo struct {
	byPlate      map[string]*domain.Owner
	createErr    error
	upsertErr    error
	upsertCalls  int
	lastSnapshot [4]string // plate, name, phone, model
}

func newStubOwnerRepo() *stubOwnerRepo {
	return &stubOwnerRepo{byPlate: make(map[string]*domain.Owner)}
}

func (r *stubOwnerRepo) FindByPlate(_ context.Context, plate string) (*domain.Owner, error) {
	o, ok := r.byPlate[plate]
	if !ok {
		return nil, domain.ErrOwnerNotFound
	}
	clone := *o
	return &clone, nil
}

func (r *stubOwnerRepo) Create(_ context.Context, owner *domain.Owner) (*domain.Owner, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	if _, ok := r.byPlate[owner.PlateNumber]; ok {
		return nil, domain.ErrOwnerExists
	}
	clone := *owner
	clone.ID = "owner_" + strconv.Itoa(len(r.byPlate)+1)
	r.byPlate[owner.PlateNumber] = &clone
	out := clone
	return &out, nil
}

func (r *stubOwnerRepo) Save(_ context.Context, owner *domain.Owner) error {
	if _, ok := r.byPlate[owner.PlateNumber]; !ok {
		return domain.ErrOwnerNotFound
	}
	clone := *owner
	r.byPlate[owner.PlateNumber] = &clone
	return nil
}

func (r *stubOwnerRepo) UpsertSnapshot(_ context.Context, plate, name, phone, model string) error {
	r.upsertCalls++
	r.lastSnapshot = [4]string{plate, name, phone, model}
	if r.upsertErr != nil {
		return r.upsertErr
	}
	now := time.Now().UTC()
	if existing, ok := r.byPlate[plate]; ok {
		existing.OwnerName = name
		existing.Phone = phone
		existing.Model = model
		existing.UpdatedAt = now
		return nil
	}
	r.byPlate[plate] = &domain.Owner{
		PlateNumber: plate,
		OwnerName:   name,
		Phone:       phone,
		Model:       model,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return nil
}

type stubOtpRepo struct {
	byPlate     map[string]*domain.OtpChallenge
	upsertErr   error
	upsertCalls int
}

func newStubOtpRepo() *stubOtpRepo {
	return &stubOtpRepo{byPlate: make(map[string]*domain.OtpChallenge)}
}

func (r *stubOtpRepo) Upsert(_ context.Context, challenge *domain.OtpChallenge) error {
	if r.upsertErr != nil {
		return r.upsertErr
	}
	r.upsertCalls++
	clone := *challenge
	r.byPlate[challenge.PlateNumber] = &clone
	return nil
}

func (r *stubOtpRepo) FindByPlate(_ context.Context, plate string) (*domain.OtpChallenge, error) {
	c, ok := r.byPlate[plate]
	if !ok {
		return nil, domain.ErrNoChallenge
	}
	clone := *c
	return &clone, nil
}

func (r *stubOtpRepo) IncrementAttempts(_ context.Context, plate string) error {
	c, ok := r.byPlate[plate]
	if !ok {
		return domain.ErrNoChallenge
	}
	c.Attempts++
	return nil
}

func (r *stubOtpRepo) Delete(_ context.Context, plate string) error {
	delete(r.byPlate, plate)
	return nil
}

type stubTowingRepo struct {
	records   []*domain.TowingRecord
	createErr error
	nextID    int
}

func newStubTowingRepo() *stubTowingRepo {
	return &stubTowingRepo{}
}

func (r *stubTowingRepo) Create(_ context.Context, record *domain.TowingRecord) (*domain.TowingRecord, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.nextID++
	clone := *record
	clone.ID = "rec_" + strconv.Itoa(r.nextID)
	r.records = append(r.records, &clone)
	out := clone
	return &out, nil
}

func (r *stubTowingRepo) FindByPlate(_ context.Context, plate string) ([]*domain.TowingRecord, error) {
	var matched []*domain.TowingRecord
	for _, rec := range r.records {
		if rec.PlateNumber == plate {
			clone := *rec
			matched = append(matched, &clone)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return matched, nil
}

func (r *stubTowingRepo) FindByID(_ context.Context, id string) (*domain.TowingRecord, error) {
	for _, rec := range r.records {
		if rec.ID == id {
			clone := *rec
			return &clone, nil
		}
	}
	return nil, domain.ErrRecordNotFound
}

func (r *stubTowingRepo) List(_ context.Context, page, limit int) ([]*domain.TowingRecord, int64, error) {
	sorted := make([]*domain.TowingRecord, len(r.records))
	copy(sorted, r.records)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	total := int64(len(sorted))
	skip := (page - 1) * limit
	if skip >= len(sorted) {
		return []*domain.TowingRecord{}, total, nil
	}
	end := skip + limit
	if end > len(sorted) {
		end = len(sorted)
	}
	out := make([]*domain.TowingRecord, 0, end-skip)
	for _, rec := range sorted[skip:end] {
		clone := *rec
		out = append(out, &clone)
	}
	return out, total, nil
}

func (r *stubTowingRepo) UpdatePayment(_ context.Context, id string, update ports.PaymentUpdate) (*domain.TowingRecord, error) {
	for _, rec := range r.records {
		if rec.ID != id {
			continue
		}
		rec.PaymentStatus = update.Status
		if update.PaymentID != "" {
			rec.PaymentID = update.PaymentID
		}
		if update.PaidAt != nil {
			rec.PaidAt = update.PaidAt
		}
		clone := *rec
		return &clone, nil
	}
	return nil, domain.ErrRecordNotFound
}

type stubAdminRepo struct {
	byEmail map[string]*domain.Admin
}

func newStubAdminRepo() *stubAdminRepo {
	return &stubAdminRepo{byEmail: make(map[string]*domain.Admin)}
}

func (r *stubAdminRepo) FindByEmail(_ context.Context, email string) (*domain.Admin, error) {
	a, ok := r.byEmail[normalizeEmailForTest(email)]
	if !ok {
		return nil, domain.ErrAdminNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubAdminRepo) Create(_ context.Context, admin *domain.Admin) (*domain.Admin, error) {
	key := normalizeEmailForTest(admin.Email)
	if _, ok := r.byEmail[key]; ok {
		return nil, domain.ErrAdminExists
	}
	clone := *admin
	clone.Email = key
	r.byEmail[key] = &clone
	out := clone
	return &out, nil
}

func normalizeEmailForTest(email string) string {
	out := make([]byte, 0, len(email))
	for i := 0; i < len(email); i++ {
		ch := email[i]
		if ch == ' ' {
			continue
		}
		if ch >= 'A' && ch <= 'Z' {
			ch += 'a' - 'A'
		}
		out = append(out, ch)
	}
	return string(out)
}

// stubDispatcher records enqueued notifications synchronously.
type stubDispatcher struct {
	mu       sync.Mutex
	enqueued []ports.Notification
}

func (d *stubDispatcher) Enqueue(n ports.Notification) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.enqueued = append(d.enqueued, n)
}

func (d *stubDispatcher) all() []ports.Notification {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]ports.Notification, len(d.enqueued))
	copy(out, d.enqueued)
	return out
}
