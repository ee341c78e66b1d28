package store

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"credema/pkg/domain"
)

// GormStore implements RemoteStore using GORM + Postgres.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore opens the DB and runs auto-migrations.
func NewGormStore(dsn string) (*GormStore, error) {
	gormLog := gormlogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: gormLog})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := db.AutoMigrate(&AccountModel{}, &DealModel{}, &BlogPostModel{}); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}
	return &GormStore{db: db}, nil
}

// ListAccounts returns every account row.
func (s *GormStore) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	var models []AccountModel
	if err := s.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, err
	}
	res := make([]domain.Account, 0, len(models))
	for _, m := range models {
		res = append(res, accountFromModel(m))
	}
	return res, nil
}

// InsertAccounts inserts a batch. Rows whose id already exists are left
// untouched, which keeps seed bootstrapping idempotent.
func (s *GormStore) InsertAccounts(ctx context.Context, accounts []domain.Account) error {
	if len(accounts) == 0 {
		return nil
	}
	models := make([]AccountModel, 0, len(accounts))
	for _, a := range accounts {
		models = append(models, accountToModel(a))
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models).Error
}

// UpdateAccount patches the mutable account fields by id.
func (s *GormStore) UpdateAccount(ctx context.Context, a domain.Account) error {
	return s.db.WithContext(ctx).Model(&AccountModel{}).
		Where("id = ?", a.ID).
		Updates(map[string]any{
			"name":        a.Name,
			"email":       a.Email,
			"entity_name": a.EntityName,
			"role":        string(a.Role),
			"status":      string(a.Status),
		}).Error
}

// DeleteAccount removes one account row.
func (s *GormStore) DeleteAccount(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Delete(&AccountModel{}, "id = ?", id).Error
}

// ListDeals returns every deal row.
func (s *GormStore) ListDeals(ctx context.Context) ([]domain.Deal, error) {
	var models []DealModel
	if err := s.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, err
	}
	res := make([]domain.Deal, 0, len(models))
	for _, m := range models {
		res = append(res, dealFromModel(m))
	}
	return res, nil
}

// InsertDeals inserts a batch, skipping existing ids.
func (s *GormStore) InsertDeals(ctx context.Context, deals []domain.Deal) error {
	if len(deals) == 0 {
		return nil
	}
	models := make([]DealModel, 0, len(deals))
	for _, d := range deals {
		models = append(models, dealToModel(d))
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models).Error
}

// UpdateDeal patches the console-editable deal fields by id.
func (s *GormStore) UpdateDeal(ctx context.Context, d domain.Deal) error {
	model := dealToModel(d)
	return s.db.WithContext(ctx).Model(&DealModel{}).
		Where("id = ?", d.ID).
		Updates(map[string]any{
			"company_name":           model.CompanyName,
			"tagline":                model.Tagline,
			"sector":                 model.Sector,
			"stage":                  model.Stage,
			"raising_amount":         model.RaisingAmount,
			"instrument":             model.Instrument,
			"valuation":              model.Valuation,
			"status":                 model.Status,
			"rag_context":            model.RagContext,
			"deposit_amount":         model.DepositAmount,
			"leverage_multiplier":    model.LeverageMultiplier,
			"leverage_amount":        model.LeverageAmount,
			"seed_investor_verified": model.SeedInvestorVerified,
			"investor_note":          model.InvestorNote,
			"last_oracle_check":      model.LastOracleCheck,
		}).Error
}

// DeleteDeal removes one deal row.
func (s *GormStore) DeleteDeal(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Delete(&DealModel{}, "id = ?", id).Error
}

// ListPosts returns every blog post row.
func (s *GormStore) ListPosts(ctx context.Context) ([]domain.BlogPost, error) {
	var models []BlogPostModel
	if err := s.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, err
	}
	res := make([]domain.BlogPost, 0, len(models))
	for _, m := range models {
		res = append(res, postFromModel(m))
	}
	return res, nil
}

// InsertPosts inserts a batch, skipping existing ids.
func (s *GormStore) InsertPosts(ctx context.Context, posts []domain.BlogPost) error {
	if len(posts) == 0 {
		return nil
	}
	models := make([]BlogPostModel, 0, len(posts))
	for _, p := range posts {
		models = append(models, postToModel(p))
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models).Error
}

// UpdatePost patches the post content fields by id.
func (s *GormStore) UpdatePost(ctx context.Context, p domain.BlogPost) error {
	model := postToModel(p)
	return s.db.WithContext(ctx).Model(&BlogPostModel{}).
		Where("id = ?", p.ID).
		Updates(map[string]any{
			"title":       model.Title,
			"excerpt":     model.Excerpt,
			"content":     model.Content,
			"category":    model.Category,
			"read_time":   model.ReadTime,
			"date":        model.Date,
			"author_name": model.AuthorName,
			"author_role": model.AuthorRole,
			"image":       model.Image,
		}).Error
}

// DeletePost removes one blog post row.
func (s *GormStore) DeletePost(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Delete(&BlogPostModel{}, "id = ?", id).Error
}
