package transaction

import (
	"slices"
	"sort"
	"strings"
)

// Matches reports whether t passes every filter criterion. Paging and
// ordering are not considered.
func (f *Filters) Matches(t *Transaction) bool {
	if len(f.Statuses) > 0 && !slices.Contains(f.Statuses, t.Status) {
		return false
	}
	if len(f.Types) > 0 && !slices.Contains(f.Types, t.Type) {
		return false
	}
	if f.FromAddress != "" && !strings.EqualFold(t.Metadata.FromAddress, f.FromAddress) {
		return false
	}
	if f.ToAddress != "" && !strings.EqualFold(t.Metadata.ToAddress, f.ToAddress) {
		return false
	}
	if f.Address != "" &&
		!strings.EqualFold(t.Metadata.FromAddress, f.Address) &&
		!strings.EqualFold(t.Metadata.ToAddress, f.Address) {
		return false
	}
	if f.ProviderID != "" && t.Metadata.ProviderID != f.ProviderID {
		return false
	}
	if f.StartDate > 0 && t.CreatedAt < f.StartDate {
		return false
	}
	if f.EndDate > 0 && t.CreatedAt > f.EndDate {
		return false
	}
	if f.Search != "" && !matchesSearch(t, strings.ToLower(f.Search)) {
		return false
	}
	return true
}

// Select filters, sorts and pages txs. The input slice is not modified.
func Select(txs []*Transaction, f Filters) []*Transaction {
	out := make([]*Transaction, 0, len(txs))
	for _, t := range txs {
		if f.Matches(t) {
			out = append(out, t)
		}
	}

	key := func(t *Transaction) int64 { return t.CreatedAt }
	if f.SortBy == SortByUpdatedAt {
		key = func(t *Transaction) int64 { return t.UpdatedAt }
	}
	asc := f.SortOrder == SortAsc
	sort.SliceStable(out, func(i, j int) bool {
		if asc {
			return key(out[i]) < key(out[j])
		}
		return key(out[i]) > key(out[j])
	})

	if f.Offset > 0 {
		if f.Offset >= len(out) {
			return []*Transaction{}
		}
		out = out[f.Offset:]
	}
	if f.Limit > 0 && f.Limit < len(out) {
		out = out[:f.Limit]
	}
	return out
}

func matchesSearch(t *Transaction, needle string) bool {
	for _, field := range []string{t.ID, t.Metadata.FromAddress, t.Metadata.ToAddress, t.Metadata.ProviderName} {
		if field != "" && strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
