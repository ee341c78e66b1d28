package datasync

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"credema/pkg/domain"
)

// Standard facility terms applied to every new startup registration.
const (
	registrationTermMonths = 24
	registrationMultiplier = 5
	registrationMinTicket  = 50000
	escrowDepositShare     = 0.2
)

// StartupRegistration carries the intake form for a founder applying
// with their company in one step.
type StartupRegistration struct {
	CompanyName    string             `json:"companyName"`
	Tagline        string             `json:"tagline"`
	Location       string             `json:"location"`
	Sector         string             `json:"sector"`
	Stage          domain.Stage       `json:"stage"`
	Description    string             `json:"description"`
	RaisingAmount  float64            `json:"raisingAmount"`
	Instrument     domain.Instrument  `json:"instrument"`
	Valuation      float64            `json:"valuation"`
	LeverageNeeded float64            `json:"leverageNeeded"`
	HasDeposit     bool               `json:"hasDeposit"`
	Context        domain.DealContext `json:"ragContext"`
}

// RegisterStartup creates the founder account (pending approval) and
// its deal (pending, standard terms) together, and returns both as
// stored. Either write may be silently dropped by an unreachable
// backend, per the shared mutation policy.
func (s *Service) RegisterStartup(ctx context.Context, reg StartupRegistration) (domain.Account, domain.Deal) {
	ownerID := "founder-" + uuid.NewString()

	account := domain.Account{
		ID:         ownerID,
		Email:      founderEmail(reg.CompanyName),
		Name:       "Startup Lead",
		EntityName: reg.CompanyName,
		Role:       domain.RoleFounder,
		Status:     domain.StatusPending,
	}

	deposit := 0.0
	if reg.HasDeposit {
		deposit = reg.LeverageNeeded * escrowDepositShare
	}
	deal := domain.Deal{
		ID:          fmt.Sprintf("CD-%d-%s", time.Now().Year(), shortID()),
		OwnerID:     ownerID,
		CompanyName: reg.CompanyName,
		Tagline:     reg.Tagline,
		Location:    reg.Location,
		Sector:      reg.Sector,
		Stage:       reg.Stage,
		Description: reg.Description,

		RaisingAmount: reg.RaisingAmount,
		Instrument:    reg.Instrument,
		Valuation:     reg.Valuation,
		ValuationType: "CAP",
		MinTicket:     registrationMinTicket,
		InvestorNote:  "New Institutional Application",

		LeverageAmount:     reg.LeverageNeeded,
		DepositAmount:      deposit,
		LeverageMultiplier: registrationMultiplier,
		TermMonths:         registrationTermMonths,

		WalletStatus:    domain.WalletPending,
		WalletAddress:   "0x...",
		LastOracleCheck: time.Now().UTC().Format("2006-01-02"),

		Context: reg.Context,
		Status:  domain.DealPending,
	}

	s.CreateAccount(ctx, account)
	s.CreateDeal(ctx, deal)
	return account, deal
}

func founderEmail(companyName string) string {
	slug := strings.ToLower(strings.ReplaceAll(companyName, " ", ""))
	return slug + "@credema-founder.com"
}

func shortID() string {
	return strings.Split(uuid.NewString(), "-")[0]
}
