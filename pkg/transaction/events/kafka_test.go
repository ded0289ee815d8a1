package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/jahpay/ramp-aggregator/pkg/config"
	"github.com/jahpay/ramp-aggregator/pkg/transaction"
)

func TestNewWriter_FlushesQuicklyAndHashesKeys(t *testing.T) {
	w := newWriter(config.KafkaConfig{Brokers: []string{"localhost:9092"}, Topic: "ramp.transactions"})
	if w.BatchTimeout != defaultBatchTimeout {
		t.Fatalf("expected batch timeout %v, got %v", defaultBatchTimeout, w.BatchTimeout)
	}
	if _, ok := w.Balancer.(*kafka.Hash); !ok {
		t.Fatalf("expected key hash balancer, got %T", w.Balancer)
	}
	if w.Async {
		t.Fatal("expected synchronous writes so publish errors are reported")
	}

	w = newWriter(config.KafkaConfig{BatchTimeout: 50 * time.Millisecond})
	if w.BatchTimeout != 50*time.Millisecond {
		t.Fatalf("expected configured batch timeout, got %v", w.BatchTimeout)
	}
}

func TestEncode_KeysByTransactionID(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)
	tx := &transaction.Transaction{
		ID:         "tx-1",
		Type:       transaction.TypeDeposit,
		Status:     transaction.StatusProcessing,
		RetryCount: 2,
		Metadata:   transaction.Metadata{ProviderName: "cashramp"},
	}

	msgs, err := encode([]Event{FromTransaction(TypeUpdated, tx, transaction.StatusPending, now.UnixMilli())}, now)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
	if string(msgs[0].Key) != "tx-1" {
		t.Fatalf("unexpected key %q", msgs[0].Key)
	}
	if !msgs[0].Time.Equal(now) {
		t.Fatalf("unexpected message time %v", msgs[0].Time)
	}

	var got map[string]any
	if err := json.Unmarshal(msgs[0].Value, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got["type"] != TypeUpdated || got["status"] != "processing" || got["previousStatus"] != "pending" {
		t.Fatalf("unexpected payload: %v", got)
	}
	if got["provider"] != "cashramp" || got["txType"] != "deposit" {
		t.Fatalf("unexpected payload: %v", got)
	}
}
