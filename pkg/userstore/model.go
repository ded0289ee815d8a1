package userstore

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/jahpay/ramp-aggregator/pkg/user"
)

// BankAccountDao is a data access object that maps directly to the 'bank_accounts' table in PostgreSQL.
type BankAccountDao struct {
	bun.BaseModel `bun:"table:bank_accounts,alias:ba"`
	ID            string    `bun:"id,pk,type:varchar(36)"`
	WalletAddress string    `bun:"wallet_address,notnull,type:varchar(42)"`
	AccountNumber string    `bun:"account_number,notnull,type:varchar(32)"`
	BankCode      string    `bun:"bank_code,notnull,type:varchar(32)"`
	BankName      *string   `bun:"bank_name,type:varchar(255)"`
	AccountName   string    `bun:"account_name,notnull,type:varchar(255)"`
	CountryCode   string    `bun:"country_code,notnull,type:varchar(2)"`
	IsVerified    bool      `bun:"is_verified,notnull,default:false"`
	IsDefault     bool      `bun:"is_default,notnull,default:false"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

func toBankAccountDao(a *user.BankAccount) *BankAccountDao {
	dao := &BankAccountDao{
		ID:            a.ID,
		WalletAddress: a.WalletAddress,
		AccountNumber: a.AccountNumber,
		BankCode:      a.BankCode,
		AccountName:   a.AccountName,
		CountryCode:   a.CountryCode,
		IsVerified:    a.IsVerified,
		IsDefault:     a.IsDefault,
		CreatedAt:     a.CreatedAt,
	}
	if a.BankName != "" {
		dao.BankName = &a.BankName
	}
	return dao
}

func toBankAccount(dao *BankAccountDao) *user.BankAccount {
	a := &user.BankAccount{
		ID:            dao.ID,
		WalletAddress: dao.WalletAddress,
		AccountNumber: dao.AccountNumber,
		BankCode:      dao.BankCode,
		AccountName:   dao.AccountName,
		CountryCode:   dao.CountryCode,
		IsVerified:    dao.IsVerified,
		IsDefault:     dao.IsDefault,
		CreatedAt:     dao.CreatedAt,
	}
	if dao.BankName != nil {
		a.BankName = *dao.BankName
	}
	return a
}

// ProfileDao maps to the 'user_profiles' table. A wallet has at most one row.
type ProfileDao struct {
	bun.BaseModel     `bun:"table:user_profiles,alias:up"`
	ID                string     `bun:"id,pk,type:varchar(36)"`
	WalletAddress     string     `bun:"wallet_address,notnull,unique,type:varchar(42)"`
	CountryCode       *string    `bun:"country_code,type:varchar(2)"`
	PreferredProvider *string    `bun:"preferred_provider,type:varchar(32)"`
	KYCStatus         string     `bun:"kyc_status,notnull,type:varchar(16),default:'unverified'"`
	KYCVerifiedAt     *time.Time `bun:"kyc_verified_at"`
	KYCDocumentType   *string    `bun:"kyc_document_type,type:varchar(64)"`
	CreatedAt         time.Time  `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt         time.Time  `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toProfileDao(p *user.Profile) *ProfileDao {
	return &ProfileDao{
		ID:                p.ID,
		WalletAddress:     p.WalletAddress,
		CountryCode:       optional(p.CountryCode),
		PreferredProvider: optional(p.PreferredProvider),
		KYCStatus:         string(p.KYCStatus),
		KYCVerifiedAt:     p.KYCVerifiedAt,
		KYCDocumentType:   optional(p.KYCDocumentType),
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func toProfile(dao *ProfileDao) *user.Profile {
	return &user.Profile{
		ID:                dao.ID,
		WalletAddress:     dao.WalletAddress,
		CountryCode:       deref(dao.CountryCode),
		PreferredProvider: deref(dao.PreferredProvider),
		KYCStatus:         user.KYCStatus(dao.KYCStatus),
		KYCVerifiedAt:     dao.KYCVerifiedAt,
		KYCDocumentType:   deref(dao.KYCDocumentType),
		CreatedAt:         dao.CreatedAt,
		UpdatedAt:         dao.UpdatedAt,
	}
}
