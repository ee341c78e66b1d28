package domain

// Role classifies platform identities. The empty string means "unset":
// an anonymous visitor who has not registered or logged in.
type Role string

const (
	RoleFounder          Role = "FOUNDER"
	RoleSeedInvestor     Role = "SEED_INVESTOR"
	RoleLeverageProvider Role = "LEVERAGE_PROVIDER"
	RoleAdmin            Role = "ADMIN"
	RoleUnset            Role = ""
)

// AccountStatus tracks the administrative approval state of an account.
type AccountStatus string

const (
	StatusPending  AccountStatus = "PENDING"
	StatusApproved AccountStatus = "APPROVED"
	StatusRejected AccountStatus = "REJECTED"
)

// Account is the platform identity record. Email is the login key
// (matched case-insensitively); ID is assigned at creation and never
// changes. IsLoggedIn is session-local and never written remotely.
type Account struct {
	ID         string        `json:"id"`
	Email      string        `json:"email"`
	Name       string        `json:"name"`
	EntityName string        `json:"entityName"`
	Role       Role          `json:"role"`
	Status     AccountStatus `json:"status"`
	IsLoggedIn bool          `json:"isLoggedIn"`
}

// Anonymous returns the sentinel identity used when no session exists.
func Anonymous() Account {
	return Account{Status: StatusPending}
}

type DealStatus string

const (
	DealActive    DealStatus = "ACTIVE"
	DealPending   DealStatus = "PENDING"
	DealDefault   DealStatus = "DEFAULT"
	DealConverted DealStatus = "CONVERTED"
	DealRejected  DealStatus = "REJECTED"
)

type WalletStatus string

const (
	WalletVerified WalletStatus = "VERIFIED"
	WalletBreach   WalletStatus = "BREACH"
	WalletPending  WalletStatus = "PENDING"
)

type Stage string

const (
	StagePreSeed Stage = "PRE_SEED"
	StageSeed    Stage = "SEED"
	StageSeriesA Stage = "SERIES_A"
)

type Instrument string

const (
	InstrumentSAFE            Instrument = "SAFE"
	InstrumentConvertibleNote Instrument = "CONVERTIBLE_NOTE"
	InstrumentPricedEquity    Instrument = "PRICED_EQUITY"
)

// GrowthMetrics captures acquisition economics reported by a startup.
// The later-stage fields are optional and stay zero for early stages.
type GrowthMetrics struct {
	CAC            float64 `json:"cac"`
	ROAS           float64 `json:"roas"`
	MonthlyAdSpend float64 `json:"monthlyAdSpend"`
	ConversionRate float64 `json:"conversionRate"`
	ARR            float64 `json:"arr,omitempty"`
	NRR            float64 `json:"nrr,omitempty"`
	LTV            float64 `json:"ltv,omitempty"`
	YoYGrowth      float64 `json:"yoyGrowth,omitempty"`
}

// ProductMetrics captures product and team telemetry.
type ProductMetrics struct {
	BurnRate          float64 `json:"burnRate,omitempty"`
	RunwayMonths      int     `json:"runwayMonths,omitempty"`
	WaitlistSize      int     `json:"waitlistSize,omitempty"`
	TeamSize          int     `json:"teamSize,omitempty"`
	GithubCommits     int     `json:"githubCommits"`
	RoadmapCompletion float64 `json:"roadmapCompletion"`
	BetaUsers         int     `json:"betaUsers"`
}

// DealContext is the free-form briefing a founder supplies about their
// company. It feeds the AI concierge.
type DealContext struct {
	Problem        string `json:"problem"`
	Solution       string `json:"solution"`
	MarketStrategy string `json:"marketStrategy"`
	Competition    string `json:"competition"`
	TeamBackground string `json:"teamBackground"`
	UseOfFunds     string `json:"useOfFunds"`
}

// Deal is a funding opportunity owned by one account (by OwnerID, not
// enforced at this layer). Identity is immutable once created; status
// transitions are a console responsibility, not a data-layer one.
type Deal struct {
	ID          string `json:"id"`
	OwnerID     string `json:"ownerId,omitempty"`
	CompanyName string `json:"companyName"`
	Tagline     string `json:"tagline"`
	Location    string `json:"location,omitempty"`
	Sector      string `json:"sector"`
	Stage       Stage  `json:"stage"`
	Description string `json:"description"`

	RaisingAmount float64    `json:"raisingAmount"`
	Instrument    Instrument `json:"instrument"`
	Valuation     float64    `json:"valuation"`
	ValuationType string     `json:"valuationType"`
	MinTicket     float64    `json:"minTicket"`
	InvestorNote  string     `json:"investorNote"`

	LeverageAmount     float64 `json:"leverageAmount"`
	DepositAmount      float64 `json:"depositAmount"`
	LeverageMultiplier float64 `json:"leverageMultiplier"`
	TermMonths         int     `json:"termMonths"`
	MonthsElapsed      int     `json:"monthsElapsed"`

	WalletStatus    WalletStatus `json:"walletStatus"`
	WalletAddress   string       `json:"walletAddress"`
	LastOracleCheck string       `json:"lastOracleCheck"`

	GrowthMetrics  GrowthMetrics  `json:"growthMetrics"`
	ProductMetrics ProductMetrics `json:"productMetrics"`
	Context        DealContext    `json:"ragContext"`

	SeedInvestorVerified bool       `json:"seedInvestorVerified"`
	Status               DealStatus `json:"status"`
}

// Author credits a blog post. The display role is localized, the name
// is not.
type Author struct {
	Name string    `json:"name"`
	Role Localized `json:"role"`
}

// BlogPost is a multi-locale content record. Locale maps should carry
// at least the English entry; readers degrade through Localized.Get
// rather than failing on a missing translation.
type BlogPost struct {
	ID       string    `json:"id"`
	Title    Localized `json:"title"`
	Excerpt  Localized `json:"excerpt"`
	Content  Localized `json:"content"`
	Category Localized `json:"category"`
	ReadTime Localized `json:"readTime"`
	Date     Localized `json:"date"`
	Author   Author    `json:"author"`
	Image    string    `json:"image"`
}
