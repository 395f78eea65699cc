package db

import (
	"database/sql"
	"sync"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"github.com/bridgeworld/atlas-mine-watcher/common/config"
	"github.com/bridgeworld/atlas-mine-watcher/common/logging"
	"github.com/bridgeworld/atlas-mine-watcher/database/models"
	"github.com/bridgeworld/atlas-mine-watcher/database/models/mining"
	"github.com/bridgeworld/atlas-mine-watcher/types"
)

var logger = logging.NewLoggerTag("database")

var (
	db      *gorm.DB
	dbMutex sync.Mutex
)

// watcherModels lists every table the watcher owns.
func watcherModels() []interface{} {
	return []interface{}{
		&models.System{},
		&mining.HolderSnapshot{},
	}
}

// NewDB opens a gorm postgres handle with the shared connection settings.
func NewDB(args string) (*gorm.DB, error) {
	handle, err := gorm.Open(postgres.Open(args), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			SingularTable: true,
		},
	})
	if err != nil {
		logger.Warn("failed to open gorm db err=%v", err)
		return nil, err
	}
	handle.Logger.LogMode(0)

	var sqlDB *sql.DB
	sqlDB, err = handle.DB()
	if err != nil {
		logger.Warn("failed to get sql.DB from gorm db err=%v", err)
		return nil, err
	}
	sqlDB.SetMaxIdleConns(config.GetInt("DB_MAX_IDLE_CONNS", 2))
	sqlDB.SetMaxOpenConns(config.GetInt("DB_MAX_OPEN_CONNS", 10))
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
	return handle, nil
}

// Initialize dials the database. It only creates the connection instance,
// it doesn't reset or migrate anything.
func Initialize() {
	dbMutex.Lock()
	defer dbMutex.Unlock()
	if db != nil {
		return
	}
	logger.Info("Initializing database ...")
	handle, err := NewDB(config.GetString("DB_ARGS"))
	if err != nil {
		logger.Critical(err.Error())
	}
	db = handle
	logger.Info("Initialize DONE")
}

// Finalize closes the database.
func Finalize() {
	dbMutex.Lock()
	defer dbMutex.Unlock()
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err == nil && sqlDB != nil {
		if err = sqlDB.Close(); err != nil {
			logger.Warn("failed to close db err=%v", err)
		}
	}
	db = nil
}

// GetDB returns the database handle, dialing on first use.
func GetDB() *gorm.DB {
	dbMutex.Lock()
	ret := db
	dbMutex.Unlock()
	if ret != nil {
		return ret
	}
	Initialize()

	dbMutex.Lock()
	defer dbMutex.Unlock()
	if db == nil {
		panic("gets nil db")
	}
	return db
}

// Reset migrates all watcher tables and writes the schema version record.
func Reset(handle *gorm.DB) {
	logger.Info("Creating models ...")
	err := WithTransaction(handle, func(tx *gorm.DB) error {
		for _, model := range watcherModels() {
			if e := tx.AutoMigrate(model); e != nil {
				return e
			}
		}
		return tx.Where(models.System{Name: types.SysVarSchemaVersion}).
			FirstOrCreate(&models.System{
				Name:  types.SysVarSchemaVersion,
				Value: types.SchemaVersion,
			}).Error
	})
	if err != nil {
		panic(err)
	}
	logger.Info("Reset Done")
}
