package pg

import (
	"github.com/uptrace/bun"

	"github.com/jahpay/ramp-aggregator/pkg/transaction"
)

// TransactionDao maps a transaction to the 'transactions' table. The full
// record lives in the jsonb column; the scalar columns exist for querying.
type TransactionDao struct {
	bun.BaseModel `bun:"table:transactions,alias:t"`
	ID            string                   `bun:"id,pk,type:varchar(36)"`
	Type          string                   `bun:"type,notnull,type:varchar(16)"`
	Status        string                   `bun:"status,notnull,type:varchar(16)"`
	Provider      string                   `bun:"provider,type:varchar(64)"`
	FromAddress   string                   `bun:"from_address,type:varchar(128)"`
	ToAddress     string                   `bun:"to_address,type:varchar(128)"`
	RetryCount    int                      `bun:"retry_count,notnull,default:0"`
	CreatedAt     int64                    `bun:"created_at,notnull"`
	UpdatedAt     int64                    `bun:"updated_at,notnull"`
	Record        *transaction.Transaction `bun:"record,type:jsonb,notnull"`
}

func toTransactionDao(t *transaction.Transaction) *TransactionDao {
	return &TransactionDao{
		ID:          t.ID,
		Type:        string(t.Type),
		Status:      string(t.Status),
		Provider:    t.Metadata.ProviderName,
		FromAddress: t.Metadata.FromAddress,
		ToAddress:   t.Metadata.ToAddress,
		RetryCount:  t.RetryCount,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
		Record:      t,
	}
}
