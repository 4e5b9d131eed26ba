package backing

import (
	"context"
	"errors"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"github.com/codecraft-labs/codecraft-backend/pkg/logger"
)

// StoreDocument is the single-row blob table behind SQLStore. One row per
// key; the contribution store only ever writes one key.
type StoreDocument struct {
	Key       string    `gorm:"primaryKey;type:text;column:key"`
	Value     string    `gorm:"type:text"`
	UpdatedAt time.Time `gorm:"column:updatedAt"`
}

func (StoreDocument) TableName() string {
	return "store_documents"
}

// SQLStore lets a deployment reuse its relational database as the durable
// blob store instead of Redis.
type SQLStore struct {
	db *gorm.DB
}

func NewSQLStore(databaseURL string) (*SQLStore, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := db.AutoMigrate(&StoreDocument{}); err != nil {
		return nil, err
	}

	logger.Info().Msg("Connected to SQL backing store")
	return &SQLStore{db: db}, nil
}

// NewSQLStoreWithDB wraps an already opened gorm connection. Tests use it
// with the in-memory sqlite driver.
func NewSQLStoreWithDB(db *gorm.DB) (*SQLStore, error) {
	if err := db.AutoMigrate(&StoreDocument{}); err != nil {
		return nil, err
	}
	return &SQLStore{db: db}, nil
}

func (s *SQLStore) Get(ctx context.Context, key string) ([]byte, error) {
	var doc StoreDocument
	err := s.db.WithContext(ctx).First(&doc, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(doc.Value), nil
}

func (s *SQLStore) Set(ctx context.Context, key string, value []byte) error {
	doc := StoreDocument{Key: key, Value: string(value), UpdatedAt: time.Now()}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		UpdateAll: true,
	}).Create(&doc).Error
}

func (s *SQLStore) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Delete(&StoreDocument{}, "key = ?", key).Error
}

func (s *SQLStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
