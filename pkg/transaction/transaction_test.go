package transaction

import (
	"errors"
	"testing"
)

func TestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to Status
		want     bool
	}{
		{StatusPending, StatusProcessing, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusFailed, true},
		{StatusPending, StatusCompleted, false},
		{StatusProcessing, StatusCompleted, true},
		{StatusProcessing, StatusFailed, true},
		{StatusProcessing, StatusPending, false},
		{StatusFailed, StatusProcessing, true},
		{StatusFailed, StatusCompleted, false},
		{StatusCompleted, StatusRefunded, false},
		{StatusCompleted, StatusCompleted, true},
		{StatusCancelled, StatusProcessing, false},
	}
	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
			t.Errorf("%s -> %s: expected %v, got %v", tt.from, tt.to, tt.want, got)
		}
	}
}

func TestParse(t *testing.T) {
	if st, err := ParseStatus(" Failed "); err != nil || st != StatusFailed {
		t.Fatalf("expected failed, got %q %v", st, err)
	}
	if _, err := ParseStatus("stuck"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if typ, err := ParseType("WITHDRAWAL"); err != nil || typ != TypeWithdrawal {
		t.Fatalf("expected withdrawal, got %q %v", typ, err)
	}
	if _, err := ParseType("loan"); !errors.Is(err, ErrInvalidType) {
		t.Fatalf("expected ErrInvalidType, got %v", err)
	}
}

func TestNewFromDraft_Defaults(t *testing.T) {
	d := Draft{Type: TypeDeposit}
	d.Provider = "bitmama"

	tx := NewFromDraft(d, "tx-1", 1000, DefaultMaxRetries)
	if tx.Status != StatusPending || tx.MaxRetries != DefaultMaxRetries {
		t.Fatalf("unexpected defaults: %+v", tx)
	}
	if tx.Metadata.Timestamp != 1000 || tx.Metadata.ProviderName != "bitmama" {
		t.Fatalf("unexpected metadata: %+v", tx.Metadata)
	}
}

func TestClone_IsDeep(t *testing.T) {
	confirmations := 3
	tx := &Transaction{
		ID: "tx-1",
		Metadata: Metadata{
			Confirmations: &confirmations,
			Error:         &ErrorInfo{Code: CodeRetryFailed},
		},
	}
	cp := tx.Clone()
	*cp.Metadata.Confirmations = 9
	cp.Metadata.Error.Code = "X"

	if *tx.Metadata.Confirmations != 3 || tx.Metadata.Error.Code != CodeRetryFailed {
		t.Fatal("clone shares metadata with the original")
	}
}

func TestSelect_Filters(t *testing.T) {
	txs := []*Transaction{
		{ID: "a", Type: TypeDeposit, Status: StatusPending, CreatedAt: 1, Metadata: Metadata{ToAddress: "0xAbC", ProviderID: "p-1", ProviderName: "cashramp"}},
		{ID: "b", Type: TypeWithdrawal, Status: StatusFailed, CreatedAt: 2, Metadata: Metadata{FromAddress: "0xabc", ProviderName: "bitmama"}},
		{ID: "c", Type: TypeDeposit, Status: StatusCompleted, CreatedAt: 3, Metadata: Metadata{ToAddress: "0xdef"}},
	}

	got := Select(txs, Filters{Address: "0xABC"})
	if len(got) != 2 || got[0].ID != "b" || got[1].ID != "a" {
		t.Fatalf("expected b, a newest first, got %v", ids(got))
	}

	got = Select(txs, Filters{ProviderID: "p-1"})
	if len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("expected a, got %v", ids(got))
	}

	got = Select(txs, Filters{Statuses: []Status{StatusPending, StatusCompleted}, SortOrder: SortAsc})
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "c" {
		t.Fatalf("expected a, c, got %v", ids(got))
	}

	got = Select(txs, Filters{Search: "BITMAMA"})
	if len(got) != 1 || got[0].ID != "b" {
		t.Fatalf("expected b, got %v", ids(got))
	}

	got = Select(txs, Filters{Limit: 1, Offset: 1})
	if len(got) != 1 || got[0].ID != "b" {
		t.Fatalf("expected b, got %v", ids(got))
	}
}

func TestMetadataPatch_Apply(t *testing.T) {
	m := Metadata{ProviderName: "cashramp", TxHash: "0x1"}
	blocks := int64(42)
	(&MetadataPatch{TxHash: String("0x2"), BlockNumber: &blocks}).Apply(&m)

	if m.ProviderName != "cashramp" || m.TxHash != "0x2" || *m.BlockNumber != 42 {
		t.Fatalf("unexpected metadata: %+v", m)
	}
	blocks = 7
	if *m.BlockNumber != 42 {
		t.Fatal("patch aliases caller memory")
	}
}

func ids(txs []*Transaction) []string {
	out := make([]string, len(txs))
	for i, t := range txs {
		out[i] = t.ID
	}
	return out
}
