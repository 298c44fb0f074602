package journal

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rotasegura/beacon/internal/exception"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SqliteRepo is our repo implementation for sqlite
type SqliteRepo struct {
	db *gorm.DB
}

// NewMemoryDatabase opens a private in-memory sqlite database with the
// sweep table migrated. Nothing written to it outlives the process.
func NewMemoryDatabase() (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})

	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()

	if err != nil {
		return nil, err
	}

	// the database lives only as long as a connection to it stays open
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if err := db.AutoMigrate(&SweepModel{}); err != nil {
		return nil, err
	}

	return db, nil
}

// NewSqliteRepo returns a new instance of SqliteRepo
func NewSqliteRepo(db *gorm.DB) *SqliteRepo {
	return &SqliteRepo{db: db}
}

// Record stores a finished sweep
func (r *SqliteRepo) Record(sweep *Sweep) error {
	if sweep.ID == "" {
		return errors.New("sweep id cannot be empty")
	}

	model, err := toModel(sweep)

	if err != nil {
		return err
	}

	return r.db.Create(model).Error
}

// GetAll returns every recorded sweep, oldest first
func (r *SqliteRepo) GetAll() ([]*Sweep, error) {
	models := []*SweepModel{}

	if result := r.db.Order("started_at asc").Find(&models); result.Error != nil {
		return nil, result.Error
	}

	sweeps := []*Sweep{}

	for _, m := range models {
		s, err := fromModel(m)

		if err != nil {
			return nil, err
		}

		sweeps = append(sweeps, s)
	}

	return sweeps, nil
}

// Get returns the sweep with id
func (r *SqliteRepo) Get(id string) (*Sweep, error) {
	model := SweepModel{}

	if result := r.db.Where("id = ?", id).First(&model); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, exception.ErrRecordNotFound
		}

		return nil, result.Error
	}

	return fromModel(&model)
}

// Last returns the most recently started sweep
func (r *SqliteRepo) Last() (*Sweep, error) {
	model := SweepModel{}

	if result := r.db.Order("started_at desc").First(&model); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, exception.ErrRecordNotFound
		}

		return nil, result.Error
	}

	return fromModel(&model)
}
