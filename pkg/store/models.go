package store

import (
	"encoding/json"

	"gorm.io/datatypes"

	"credema/pkg/domain"
)

// GORM models used for persistence. Column names follow the backend's
// snake_case convention; the to/from mapping functions below are the
// single place where domain field names are translated to remote ones
// (EntityName <-> entity_name and so on), in both directions.

type AccountModel struct {
	ID         string `gorm:"primaryKey"`
	Email      string `gorm:"uniqueIndex;not null"`
	Name       string
	Role       string
	EntityName string
	Status     string
}

type DealModel struct {
	ID          string `gorm:"primaryKey"`
	OwnerID     string `gorm:"index"`
	CompanyName string `gorm:"not null"`
	Tagline     string
	Location    string
	Sector      string
	Stage       string
	Description string `gorm:"type:text"`

	RaisingAmount float64
	Instrument    string
	Valuation     float64
	ValuationType string
	MinTicket     float64
	InvestorNote  string `gorm:"type:text"`

	LeverageAmount     float64
	DepositAmount      float64
	LeverageMultiplier float64
	TermMonths         int
	MonthsElapsed      int

	WalletStatus    string
	WalletAddress   string
	LastOracleCheck string

	GrowthMetrics  datatypes.JSON `gorm:"type:jsonb"`
	ProductMetrics datatypes.JSON `gorm:"type:jsonb"`
	RagContext     datatypes.JSON `gorm:"type:jsonb"`

	SeedInvestorVerified bool
	Status               string
}

type BlogPostModel struct {
	ID         string         `gorm:"primaryKey"`
	Title      datatypes.JSON `gorm:"type:jsonb"`
	Excerpt    datatypes.JSON `gorm:"type:jsonb"`
	Content    datatypes.JSON `gorm:"type:jsonb"`
	Category   datatypes.JSON `gorm:"type:jsonb"`
	ReadTime   datatypes.JSON `gorm:"type:jsonb"`
	Date       datatypes.JSON `gorm:"type:jsonb"`
	AuthorName string
	AuthorRole datatypes.JSON `gorm:"type:jsonb"`
	Image      string
}

func accountToModel(a domain.Account) AccountModel {
	return AccountModel{
		ID:         a.ID,
		Email:      a.Email,
		Name:       a.Name,
		Role:       string(a.Role),
		EntityName: a.EntityName,
		Status:     string(a.Status),
	}
}

func accountFromModel(m AccountModel) domain.Account {
	return domain.Account{
		ID:         m.ID,
		Email:      m.Email,
		Name:       m.Name,
		Role:       domain.Role(m.Role),
		EntityName: m.EntityName,
		Status:     domain.AccountStatus(m.Status),
	}
}

func dealToModel(d domain.Deal) DealModel {
	growth, _ := json.Marshal(d.GrowthMetrics)
	product, _ := json.Marshal(d.ProductMetrics)
	rag, _ := json.Marshal(d.Context)
	return DealModel{
		ID:          d.ID,
		OwnerID:     d.OwnerID,
		CompanyName: d.CompanyName,
		Tagline:     d.Tagline,
		Location:    d.Location,
		Sector:      d.Sector,
		Stage:       string(d.Stage),
		Description: d.Description,

		RaisingAmount: d.RaisingAmount,
		Instrument:    string(d.Instrument),
		Valuation:     d.Valuation,
		ValuationType: d.ValuationType,
		MinTicket:     d.MinTicket,
		InvestorNote:  d.InvestorNote,

		LeverageAmount:     d.LeverageAmount,
		DepositAmount:      d.DepositAmount,
		LeverageMultiplier: d.LeverageMultiplier,
		TermMonths:         d.TermMonths,
		MonthsElapsed:      d.MonthsElapsed,

		WalletStatus:    string(d.WalletStatus),
		WalletAddress:   d.WalletAddress,
		LastOracleCheck: d.LastOracleCheck,

		GrowthMetrics:  growth,
		ProductMetrics: product,
		RagContext:     rag,

		SeedInvestorVerified: d.SeedInvestorVerified,
		Status:               string(d.Status),
	}
}

func dealFromModel(m DealModel) domain.Deal {
	var growth domain.GrowthMetrics
	var product domain.ProductMetrics
	var rag domain.DealContext
	if len(m.GrowthMetrics) > 0 {
		_ = json.Unmarshal(m.GrowthMetrics, &growth)
	}
	if len(m.ProductMetrics) > 0 {
		_ = json.Unmarshal(m.ProductMetrics, &product)
	}
	if len(m.RagContext) > 0 {
		_ = json.Unmarshal(m.RagContext, &rag)
	}
	return domain.Deal{
		ID:          m.ID,
		OwnerID:     m.OwnerID,
		CompanyName: m.CompanyName,
		Tagline:     m.Tagline,
		Location:    m.Location,
		Sector:      m.Sector,
		Stage:       domain.Stage(m.Stage),
		Description: m.Description,

		RaisingAmount: m.RaisingAmount,
		Instrument:    domain.Instrument(m.Instrument),
		Valuation:     m.Valuation,
		ValuationType: m.ValuationType,
		MinTicket:     m.MinTicket,
		InvestorNote:  m.InvestorNote,

		LeverageAmount:     m.LeverageAmount,
		DepositAmount:      m.DepositAmount,
		LeverageMultiplier: m.LeverageMultiplier,
		TermMonths:         m.TermMonths,
		MonthsElapsed:      m.MonthsElapsed,

		WalletStatus:    domain.WalletStatus(m.WalletStatus),
		WalletAddress:   m.WalletAddress,
		LastOracleCheck: m.LastOracleCheck,

		GrowthMetrics:  growth,
		ProductMetrics: product,
		Context:        rag,

		SeedInvestorVerified: m.SeedInvestorVerified,
		Status:               domain.DealStatus(m.Status),
	}
}

func postToModel(p domain.BlogPost) BlogPostModel {
	title, _ := json.Marshal(p.Title)
	excerpt, _ := json.Marshal(p.Excerpt)
	content, _ := json.Marshal(p.Content)
	category, _ := json.Marshal(p.Category)
	readTime, _ := json.Marshal(p.ReadTime)
	date, _ := json.Marshal(p.Date)
	authorRole, _ := json.Marshal(p.Author.Role)
	return BlogPostModel{
		ID:         p.ID,
		Title:      title,
		Excerpt:    excerpt,
		Content:    content,
		Category:   category,
		ReadTime:   readTime,
		Date:       date,
		AuthorName: p.Author.Name,
		AuthorRole: authorRole,
		Image:      p.Image,
	}
}

func postFromModel(m BlogPostModel) domain.BlogPost {
	post := domain.BlogPost{
		ID:    m.ID,
		Image: m.Image,
	}
	post.Author.Name = m.AuthorName
	unmarshalLocalized := func(raw datatypes.JSON, dest *domain.Localized) {
		if len(raw) > 0 {
			_ = json.Unmarshal(raw, dest)
		}
	}
	unmarshalLocalized(m.Title, &post.Title)
	unmarshalLocalized(m.Excerpt, &post.Excerpt)
	unmarshalLocalized(m.Content, &post.Content)
	unmarshalLocalized(m.Category, &post.Category)
	unmarshalLocalized(m.ReadTime, &post.ReadTime)
	unmarshalLocalized(m.Date, &post.Date)
	unmarshalLocalized(m.AuthorRole, &post.Author.Role)
	return post
}
