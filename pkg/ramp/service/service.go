// Package service orchestrates on/off-ramps: it picks a provider, hands the
// ramp to it and records the resulting transaction.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/jahpay/ramp-aggregator/pkg/app/errors"
	"github.com/jahpay/ramp-aggregator/pkg/provider"
	"github.com/jahpay/ramp-aggregator/pkg/ramp"
	"github.com/jahpay/ramp-aggregator/pkg/transaction"
	txservice "github.com/jahpay/ramp-aggregator/pkg/transaction/service"
	"github.com/jahpay/ramp-aggregator/pkg/user"
)

// BankAccounts resolves a wallet's saved payout account.
type BankAccounts interface {
	GetBankAccount(ctx context.Context, walletAddress, id string) (*user.BankAccount, error)
}

// Profiles resolves the stored preferences of a wallet.
type Profiles interface {
	GetProfile(ctx context.Context, walletAddress string) (*user.Profile, error)
}

// Service is the ramp API.
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	ListProviders(ctx context.Context) *ramp.ProvidersResponse
	Rates(ctx context.Context, from, to, amount string) (*ramp.RatesResponse, error)
	InitiateOnRamp(ctx context.Context, walletAddress string, req *ramp.OnRampRequest) (*ramp.InitiateResponse, error)
	InitiateOffRamp(ctx context.Context, walletAddress string, req *ramp.OffRampRequest) (*ramp.InitiateResponse, error)
	GetTransaction(ctx context.Context, walletAddress, id string) (*transaction.Transaction, error)
	ListTransactions(ctx context.Context, walletAddress string, q ramp.ListQuery) (*ramp.TransactionList, error)
	RetryTransaction(ctx context.Context, walletAddress, id string) (*txservice.RetryResult, error)
	Stats(ctx context.Context) *transaction.Stats
}

// Option configures the ramp service.
type Option func(*rampService)

// WithCallbackBaseURL sets the public URL providers post webhooks to.
// Callbacks go to <base>/webhooks/<provider>.
func WithCallbackBaseURL(base string) Option {
	return func(s *rampService) { s.callbackBase = strings.TrimRight(base, "/") }
}

// WithCatalogue sets the provider catalogue served by ListProviders.
func WithCatalogue(infos []ramp.ProviderInfo) Option {
	return func(s *rampService) { s.catalogue = infos }
}

// WithProfiles lets a wallet's stored preferred provider lead the ranked
// candidates when a request names none.
func WithProfiles(p Profiles) Option {
	return func(s *rampService) { s.profiles = p }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *rampService) { s.now = now }
}

type rampService struct {
	aggregator   *provider.Aggregator
	registry     *provider.Registry
	txs          txservice.Service
	accounts     BankAccounts
	profiles     Profiles
	logger       *zap.Logger
	catalogue    []ramp.ProviderInfo
	callbackBase string
	now          func() time.Time
}

// NewService creates the ramp service.
func NewService(
	aggregator *provider.Aggregator,
	txs txservice.Service,
	accounts BankAccounts,
	logger *zap.Logger,
	opts ...Option,
) Service {
	s := &rampService{
		aggregator: aggregator,
		registry:   aggregator.Registry(),
		txs:        txs,
		accounts:   accounts,
		logger:     logger,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *rampService) ListProviders(context.Context) *ramp.ProvidersResponse {
	registered := make(map[string]bool)
	for _, name := range s.registry.Names() {
		registered[name] = true
	}

	infos := make([]ramp.ProviderInfo, 0, len(s.catalogue))
	for _, info := range s.catalogue {
		info.IsActive = registered[info.Name]
		infos = append(infos, info)
	}
	return &ramp.ProvidersResponse{Providers: infos, Count: len(infos)}
}

func (s *rampService) Rates(ctx context.Context, from, to, amount string) (*ramp.RatesResponse, error) {
	if from == "" || to == "" || amount == "" {
		return nil, apperrors.BadRequestError(nil, "Missing required parameters: from, to, amount")
	}

	best, err := s.aggregator.BestQuote(ctx, provider.QuoteRequest{From: from, To: to, Amount: amount})
	if err != nil {
		if errors.Is(err, provider.ErrInvalidAmount) {
			return nil, apperrors.BadRequestError(err, err.Error())
		}
		return nil, apperrors.InternalError(err, err.Error())
	}

	return &ramp.RatesResponse{
		From:      from,
		To:        to,
		Amount:    amount,
		BestQuote: best.BestQuote,
		AllQuotes: best.AllQuotes,
		Rates:     s.aggregator.ExchangeRates(ctx, from, to),
		Timestamp: s.now().UTC().Format(time.RFC3339Nano),
	}, nil
}

func (s *rampService) InitiateOnRamp(
	ctx context.Context,
	walletAddress string,
	req *ramp.OnRampRequest,
) (*ramp.InitiateResponse, error) {
	amount := req.QuoteAmount()
	if !amount.IsPositive() {
		return nil, apperrors.BadRequestError(provider.ErrInvalidAmount, "Amount must be greater than 0")
	}

	quoteReq := provider.QuoteRequest{
		From:    req.FiatCurrency,
		To:      req.CryptoCurrency,
		Amount:  amount.String(),
		Address: walletAddress,
		Network: req.Network,
	}

	initiate := func(ctx context.Context, p provider.Provider) (*provider.InitiateResult, error) {
		return p.InitiateOnRamp(ctx, provider.OnRampParams{
			Amount:         amount.String(),
			FiatCurrency:   req.FiatCurrency,
			CryptoCurrency: req.CryptoCurrency,
			WalletAddress:  walletAddress,
			CountryCode:    strings.ToUpper(req.CountryCode),
			Email:          req.Email,
			CallbackURL:    s.callbackURL(p.Name()),
		})
	}

	return s.initiate(ctx, walletAddress, req.PreferredProvider, quoteReq, initiate, transaction.Draft{
		Type:         transaction.TypeDeposit,
		FromCurrency: req.FiatCurrency,
		ToCurrency:   req.CryptoCurrency,
		Metadata:     transaction.Metadata{ToAddress: walletAddress},
	})
}

func (s *rampService) InitiateOffRamp(
	ctx context.Context,
	walletAddress string,
	req *ramp.OffRampRequest,
) (*ramp.InitiateResponse, error) {
	if !req.Amount.IsPositive() {
		return nil, apperrors.BadRequestError(provider.ErrInvalidAmount, "Amount must be greater than 0")
	}

	account, err := s.accounts.GetBankAccount(ctx, walletAddress, req.BankAccountID)
	if err != nil {
		return nil, err
	}

	quoteReq := provider.QuoteRequest{
		From:    req.CryptoCurrency,
		To:      req.FiatCurrency,
		Amount:  req.Amount.String(),
		Address: walletAddress,
	}

	initiate := func(ctx context.Context, p provider.Provider) (*provider.InitiateResult, error) {
		return p.InitiateOffRamp(ctx, provider.OffRampParams{
			Amount:         req.Amount.String(),
			CryptoCurrency: req.CryptoCurrency,
			FiatCurrency:   req.FiatCurrency,
			WalletAddress:  walletAddress,
			CountryCode:    strings.ToUpper(req.CountryCode),
			BankAccount: provider.BankAccount{
				AccountNumber: account.AccountNumber,
				BankCode:      account.BankCode,
				AccountName:   account.AccountName,
			},
			CallbackURL: s.callbackURL(p.Name()),
		})
	}

	return s.initiate(ctx, walletAddress, req.PreferredProvider, quoteReq, initiate, transaction.Draft{
		Type:         transaction.TypeWithdrawal,
		FromCurrency: req.CryptoCurrency,
		ToCurrency:   req.FiatCurrency,
		Metadata:     transaction.Metadata{FromAddress: walletAddress},
	})
}

type initiateFunc func(ctx context.Context, p provider.Provider) (*provider.InitiateResult, error)

type candidate struct {
	provider provider.Provider
	quote    *provider.Quote
}

// initiate hands the ramp to the preferred provider, or walks providers from
// best to worst quote until one accepts, then records the transaction. A
// stored preference only moves its provider to the front of the walk.
func (s *rampService) initiate(
	ctx context.Context,
	walletAddress string,
	preferred string,
	quoteReq provider.QuoteRequest,
	fn initiateFunc,
	draft transaction.Draft,
) (*ramp.InitiateResponse, error) {
	candidates, err := s.candidates(ctx, preferred, quoteReq)
	if err != nil {
		return nil, err
	}
	if preferred == "" {
		candidates = preferFirst(candidates, s.storedPreference(ctx, walletAddress))
	}

	for _, c := range candidates {
		res, err := fn(ctx, c.provider)
		if provider.IsUnsupported(err) {
			s.logger.Debug("provider does not support ramp, trying next",
				zap.String("provider", c.provider.Name()),
				zap.String("type", string(draft.Type)))
			continue
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, apperrors.TimeoutError(err,
				fmt.Sprintf("Provider %s did not respond in time", c.provider.Name()))
		}
		if err != nil {
			return nil, apperrors.DependencyFailureError(err,
				fmt.Sprintf("Provider %s failed to initiate transaction", c.provider.Name()))
		}
		return s.record(ctx, c, res, draft)
	}

	if preferred != "" {
		return nil, apperrors.BadRequestError(provider.ErrUnsupported,
			fmt.Sprintf("Provider %s does not support this operation", preferred))
	}
	return nil, apperrors.DependencyFailureError(provider.ErrNoProvidersAvailable, "No provider available for this request")
}

func (s *rampService) candidates(ctx context.Context, preferred string, req provider.QuoteRequest) ([]candidate, error) {
	if preferred != "" {
		p, err := s.registry.Get(preferred)
		if err != nil {
			return nil, apperrors.BadRequestError(err, "Invalid provider")
		}
		q, err := s.aggregator.Quote(ctx, preferred, req)
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, apperrors.TimeoutError(err,
				fmt.Sprintf("Provider %s did not respond in time", preferred))
		}
		if err != nil {
			return nil, apperrors.DependencyFailureError(err,
				fmt.Sprintf("Provider %s could not quote this request", preferred))
		}
		return []candidate{{provider: p, quote: q}}, nil
	}

	quotes := provider.RankQuotes(s.aggregator.Quotes(ctx, req))
	out := make([]candidate, 0, len(quotes))
	for _, q := range quotes {
		p, err := s.registry.Get(q.Provider)
		if err != nil {
			continue
		}
		out = append(out, candidate{provider: p, quote: q})
	}
	if len(out) == 0 {
		return nil, apperrors.DependencyFailureError(provider.ErrNoProvidersAvailable, "No provider available for this request")
	}
	return out, nil
}

// storedPreference returns the wallet's saved provider, or "" when there is
// none or it cannot be read.
func (s *rampService) storedPreference(ctx context.Context, walletAddress string) string {
	if s.profiles == nil {
		return ""
	}
	profile, err := s.profiles.GetProfile(ctx, walletAddress)
	if err != nil {
		s.logger.Warn("failed to read stored provider preference",
			zap.String("wallet_address", walletAddress),
			zap.Error(err))
		return ""
	}
	return profile.PreferredProvider
}

// preferFirst moves the candidate named name to the front, keeping the rank
// order of the rest.
func preferFirst(candidates []candidate, name string) []candidate {
	if name == "" {
		return candidates
	}
	for i, c := range candidates {
		if c.provider.Name() != name {
			continue
		}
		out := make([]candidate, 0, len(candidates))
		out = append(out, c)
		out = append(out, candidates[:i]...)
		return append(out, candidates[i+1:]...)
	}
	return candidates
}

func (s *rampService) record(
	ctx context.Context,
	c candidate,
	res *provider.InitiateResult,
	draft transaction.Draft,
) (*ramp.InitiateResponse, error) {
	if res == nil {
		res = &provider.InitiateResult{}
	}

	draft.Quote = *c.quote
	draft.Provider = c.provider.Name()
	draft.Metadata.ProviderName = c.provider.Name()
	draft.Metadata.ProviderID = res.ProviderTxID
	draft.Metadata.Fee = c.quote.Fee
	draft.Metadata.FeeCurrency = draft.FromCurrency

	tx, err := s.txs.Create(ctx, draft)
	if err != nil {
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}

	expiresIn := res.ExpiresIn
	if expiresIn <= 0 {
		expiresIn = ramp.DefaultExpiresIn
	}
	return &ramp.InitiateResponse{
		TransactionID: tx.ID,
		Provider:      c.provider.Name(),
		Status:        string(tx.Status),
		ProviderURL:   res.ProviderURL,
		ExpiresIn:     expiresIn,
		Quote:         c.quote,
	}, nil
}

func (s *rampService) callbackURL(providerName string) string {
	if s.callbackBase == "" {
		return ""
	}
	return s.callbackBase + "/webhooks/" + providerName
}

func (s *rampService) GetTransaction(ctx context.Context, walletAddress, id string) (*transaction.Transaction, error) {
	tx, err := s.txs.Get(ctx, id)
	if err != nil {
		if txservice.IsNotFound(err) {
			return nil, apperrors.ResourceNotFoundError(err, "Transaction not found")
		}
		return nil, err
	}
	if !ownedBy(tx, walletAddress) {
		return nil, apperrors.ResourceNotFoundError(transaction.ErrTransactionNotFound, "Transaction not found")
	}
	return tx, nil
}

func ownedBy(tx *transaction.Transaction, walletAddress string) bool {
	return strings.EqualFold(tx.Metadata.FromAddress, walletAddress) ||
		strings.EqualFold(tx.Metadata.ToAddress, walletAddress)
}

func (s *rampService) ListTransactions(
	ctx context.Context,
	walletAddress string,
	q ramp.ListQuery,
) (*ramp.TransactionList, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = ramp.DefaultListLimit
	}
	if limit > ramp.MaxListLimit {
		limit = ramp.MaxListLimit
	}
	offset := max(q.Offset, 0)

	matched := s.txs.List(ctx, transaction.Filters{
		Address:   walletAddress,
		Statuses:  q.Status,
		Types:     q.Type,
		SortBy:    transaction.SortByCreatedAt,
		SortOrder: transaction.SortDesc,
	})

	page := []*transaction.Transaction{}
	if offset < len(matched) {
		page = matched[offset:min(offset+limit, len(matched))]
	}
	return &ramp.TransactionList{
		Transactions: page,
		Total:        len(matched),
		Limit:        limit,
		Offset:       offset,
	}, nil
}

func (s *rampService) RetryTransaction(ctx context.Context, walletAddress, id string) (*txservice.RetryResult, error) {
	if _, err := s.GetTransaction(ctx, walletAddress, id); err != nil {
		return nil, err
	}

	var reported *provider.TransactionStatus
	result, err := s.txs.Retry(ctx, id, func(ctx context.Context, tx *transaction.Transaction) error {
		st, err := s.checkProvider(ctx, tx)
		if err != nil {
			return err
		}
		reported = st
		return nil
	})
	switch {
	case err == nil:
	case errors.Is(err, transaction.ErrRetryInFlight):
		return nil, apperrors.LockedError(err, "Retry already in progress")
	case errors.Is(err, transaction.ErrNotRetryable):
		return nil, apperrors.ConflictError(err, "Transaction cannot be retried")
	case txservice.IsNotFound(err):
		return nil, apperrors.ResourceNotFoundError(err, "Transaction not found")
	default:
		return nil, err
	}

	if result.Success && reported != nil && reported.TxHash != "" {
		updated, err := s.txs.Update(ctx, id, transaction.Update{
			Metadata: &transaction.MetadataPatch{TxHash: transaction.String(reported.TxHash)},
		})
		if err != nil {
			s.logger.Warn("failed to record provider tx hash",
				zap.String("transaction_id", id),
				zap.Error(err))
		} else {
			result.Transaction = updated
		}
	}
	return result, nil
}

// checkProvider asks the transaction's provider for its view and succeeds
// only when the provider reports completion.
func (s *rampService) checkProvider(ctx context.Context, tx *transaction.Transaction) (*provider.TransactionStatus, error) {
	if tx.Metadata.ProviderID == "" {
		return nil, errors.New("transaction has no provider reference")
	}
	p, err := s.registry.Get(tx.Metadata.ProviderName)
	if err != nil {
		return nil, err
	}
	st, err := p.GetTransactionStatus(ctx, tx.Metadata.ProviderID)
	if err != nil {
		return nil, err
	}
	if st == nil || !strings.EqualFold(st.Status, provider.StatusCompleted) {
		status := "unknown"
		if st != nil {
			status = st.Status
		}
		return nil, fmt.Errorf("provider %s reports status %s", p.Name(), status)
	}
	return st, nil
}

func (s *rampService) Stats(ctx context.Context) *transaction.Stats {
	return s.txs.Stats(ctx)
}
