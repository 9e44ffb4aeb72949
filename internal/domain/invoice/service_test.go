package invoice

import (
	"context"
	"errors"
	"testing"

	"facturier/internal/core/apperror"
	"facturier/internal/core/types"
)

// --- Mocks ---

// mockTxManager simulates transaction control: fn errors trigger a
// rollback, success commits unless commitErr is set.
type mockTxManager struct {
	beginCount int
	committed  bool
	rolledBack bool
	commitErr  error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.beginCount++
	if err := fn(ctx); err != nil {
		m.rolledBack = true
		return err
	}
	if m.commitErr != nil {
		return apperror.NewTransaction("commit", m.commitErr)
	}
	m.committed = true
	return nil
}

type mockRepo struct {
	nextID    int64
	headers   []int64 // customer IDs of created headers
	lines     []Line
	headerErr error
	lineErrAt int // fail InsertLine when LineNo == lineErrAt (0 = never)
}

func (m *mockRepo) CreateHeader(ctx context.Context, customerID int64) (int64, error) {
	if m.headerErr != nil {
		return 0, m.headerErr
	}
	m.headers = append(m.headers, customerID)
	m.nextID++
	return m.nextID, nil
}

func (m *mockRepo) InsertLine(ctx context.Context, line Line) error {
	if m.lineErrAt != 0 && line.LineNo == m.lineErrAt {
		return apperror.NewPersistence("invoice_lines", 0)
	}
	m.lines = append(m.lines, line)
	return nil
}

func (m *mockRepo) GetByID(ctx context.Context, id int64) (*Invoice, error) {
	return nil, apperror.NewNotFound("invoice", id)
}

func (m *mockRepo) GetLines(ctx context.Context, invoiceID int64) ([]Line, error) {
	return nil, nil
}

func (m *mockRepo) CountForCustomer(ctx context.Context, customerID int64) (int64, error) {
	return int64(len(m.headers)), nil
}

func (m *mockRepo) TotalForCustomer(ctx context.Context, customerID int64) (types.Money, error) {
	return types.Zero, nil
}

type mockResolver struct {
	prices map[int64]string
	calls  []int64
}

func (m *mockResolver) ResolvePrice(ctx context.Context, id int64) (types.Money, error) {
	m.calls = append(m.calls, id)
	p, ok := m.prices[id]
	if !ok {
		return types.Zero, apperror.NewNotFound("product", id)
	}
	return types.MustMoney(p), nil
}

type mockAuditor struct {
	records []string
	err     error
}

func (m *mockAuditor) Record(ctx context.Context, entityType string, entityID int64, action string, payload any) error {
	m.records = append(m.records, entityType+":"+action)
	return m.err
}

func newTestService(repo *mockRepo, resolver *mockResolver, txm *mockTxManager, auditor Auditor) *Service {
	return NewService(repo, resolver, txm, auditor)
}

// --- Tests ---

func TestCreate_Success(t *testing.T) {
	repo := &mockRepo{}
	resolver := &mockResolver{prices: map[int64]string{100: "49.90", 200: "189.00"}}
	txm := &mockTxManager{}
	svc := newTestService(repo, resolver, txm, nil)

	result, err := svc.Create(context.Background(), 7, []int64{100, 200}, []int64{2, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.InvoiceID != 1 {
		t.Errorf("invoice id = %d, want 1", result.InvoiceID)
	}
	if !result.Total.Equal(types.MustMoney("288.80")) {
		t.Errorf("total = %s, want 288.80", result.Total)
	}
	if result.Lines != 2 {
		t.Errorf("lines = %d, want 2", result.Lines)
	}

	if !txm.committed || txm.rolledBack {
		t.Error("transaction should be committed, not rolled back")
	}

	if len(repo.lines) != 2 {
		t.Fatalf("inserted lines = %d, want 2", len(repo.lines))
	}
	for i, line := range repo.lines {
		if line.LineNo != i+1 {
			t.Errorf("line %d has line_no %d", i, line.LineNo)
		}
		if line.InvoiceID != 1 {
			t.Errorf("line %d has invoice_id %d", i, line.InvoiceID)
		}
	}
	if !repo.lines[0].Price.Equal(types.MustMoney("49.90")) {
		t.Errorf("line 1 price = %s, want snapshot 49.90", repo.lines[0].Price)
	}
}

func TestCreate_EmptyLines(t *testing.T) {
	repo := &mockRepo{}
	resolver := &mockResolver{}
	txm := &mockTxManager{}
	svc := newTestService(repo, resolver, txm, nil)

	result, err := svc.Create(context.Background(), 7, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.Total.IsZero() {
		t.Errorf("total = %s, want 0", result.Total)
	}
	if len(repo.headers) != 1 {
		t.Error("header should be created even without lines")
	}
	if !txm.committed {
		t.Error("transaction should be committed")
	}
}

func TestCreate_UnknownProduct_RollsBack(t *testing.T) {
	repo := &mockRepo{}
	resolver := &mockResolver{prices: map[int64]string{100: "49.90"}} // 999 missing
	txm := &mockTxManager{}
	svc := newTestService(repo, resolver, txm, nil)

	_, err := svc.Create(context.Background(), 7, []int64{100, 999}, []int64{1, 1})
	if !apperror.IsNotFound(err) {
		t.Fatalf("error = %v, want NOT_FOUND", err)
	}

	if !txm.rolledBack {
		t.Error("transaction should be rolled back")
	}
	if txm.committed {
		t.Error("transaction must not be committed")
	}
	// First line was written before the failure; rollback discards it.
	if len(repo.lines) != 1 {
		t.Errorf("lines written before failure = %d, want 1", len(repo.lines))
	}
}

func TestCreate_ValidationErrors(t *testing.T) {
	tests := []struct {
		name       string
		customerID int64
		productIDs []int64
		quantities []int64
	}{
		{"length mismatch", 7, []int64{100, 200}, []int64{1}},
		{"zero quantity", 7, []int64{100}, []int64{0}},
		{"negative quantity", 7, []int64{100}, []int64{-3}},
		{"missing customer", 0, []int64{100}, []int64{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepo{}
			resolver := &mockResolver{prices: map[int64]string{100: "1.00", 200: "2.00"}}
			txm := &mockTxManager{}
			svc := newTestService(repo, resolver, txm, nil)

			_, err := svc.Create(context.Background(), tt.customerID, tt.productIDs, tt.quantities)
			if !apperror.IsValidation(err) {
				t.Fatalf("error = %v, want VALIDATION_ERROR", err)
			}

			// Validation rejects before any storage interaction
			if txm.beginCount != 0 {
				t.Error("no transaction should be started")
			}
			if len(repo.headers) != 0 || len(repo.lines) != 0 {
				t.Error("storage must not be touched")
			}
			if len(resolver.calls) != 0 {
				t.Error("prices must not be resolved")
			}
		})
	}
}

func TestCreate_InsertLineFailure(t *testing.T) {
	repo := &mockRepo{lineErrAt: 2}
	resolver := &mockResolver{prices: map[int64]string{100: "49.90", 200: "189.00"}}
	txm := &mockTxManager{}
	svc := newTestService(repo, resolver, txm, nil)

	_, err := svc.Create(context.Background(), 7, []int64{100, 200}, []int64{1, 1})
	if !apperror.IsPersistence(err) {
		t.Fatalf("error = %v, want PERSISTENCE_ERROR", err)
	}
	if !txm.rolledBack {
		t.Error("transaction should be rolled back")
	}
}

func TestCreate_HeaderFailure(t *testing.T) {
	cause := errors.New("connection refused")
	repo := &mockRepo{headerErr: cause}
	resolver := &mockResolver{}
	txm := &mockTxManager{}
	svc := newTestService(repo, resolver, txm, nil)

	_, err := svc.Create(context.Background(), 7, []int64{100}, []int64{1})
	if !errors.Is(err, cause) {
		t.Fatalf("error = %v, want wrapped cause", err)
	}
	if !txm.rolledBack {
		t.Error("transaction should be rolled back")
	}
	if len(resolver.calls) != 0 {
		t.Error("no price should be resolved after header failure")
	}
}

func TestCreate_CommitFailure(t *testing.T) {
	repo := &mockRepo{}
	resolver := &mockResolver{prices: map[int64]string{100: "49.90"}}
	txm := &mockTxManager{commitErr: errors.New("broken pipe")}
	svc := newTestService(repo, resolver, txm, nil)

	_, err := svc.Create(context.Background(), 7, []int64{100}, []int64{1})
	if !apperror.IsTransaction(err) {
		t.Fatalf("error = %v, want TRANSACTION_ERROR", err)
	}
}

func TestCreate_AuditRecorded(t *testing.T) {
	repo := &mockRepo{}
	resolver := &mockResolver{prices: map[int64]string{100: "49.90"}}
	txm := &mockTxManager{}
	auditor := &mockAuditor{}
	svc := newTestService(repo, resolver, txm, auditor)

	_, err := svc.Create(context.Background(), 7, []int64{100}, []int64{1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(auditor.records) != 1 || auditor.records[0] != "invoice:create" {
		t.Errorf("audit records = %v", auditor.records)
	}
}

func TestCreate_AuditFailureIsNotFatal(t *testing.T) {
	repo := &mockRepo{}
	resolver := &mockResolver{prices: map[int64]string{100: "49.90"}}
	txm := &mockTxManager{}
	auditor := &mockAuditor{err: errors.New("audit table missing")}
	svc := newTestService(repo, resolver, txm, auditor)

	result, err := svc.Create(context.Background(), 7, []int64{100}, []int64{1})
	if err != nil {
		t.Fatalf("audit failure must not fail creation: %v", err)
	}
	if result.InvoiceID != 1 {
		t.Errorf("invoice id = %d", result.InvoiceID)
	}
}
