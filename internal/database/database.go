// Package database
package database

import (
	"context"
	. "fmt"
	"time"

	"github.com/aviodesk/charterops/internal/interfaces/config"
	"github.com/aviodesk/charterops/internal/interfaces/global"
	"github.com/aviodesk/charterops/internal/interfaces/log"
	. "github.com/aviodesk/charterops/internal/interfaces/operation"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DBCloseCallback struct {
	logger log.LoggerInterface
	db     *gorm.DB
}

func NewDBCloseCallback(logger log.LoggerInterface, db *gorm.DB) *DBCloseCallback {
	return &DBCloseCallback{logger: logger, db: db}
}

func (dc *DBCloseCallback) Invoke(ctx context.Context) error {
	dc.logger.Info("Closing database connection")
	db, err := dc.db.DB()
	if err != nil {
		return err
	}
	return db.Close()
}

// ConnectDatabase opens the configured storage engine, ensures the four
// record tables exist (create-if-absent, safe on every start) and returns
// the operation bundle together with a shutdown callback.
func ConnectDatabase(loggerInterface log.LoggerInterface, conf *config.Config, debugMode bool) (global.Callable, *DatabaseOperations, error) {
	queryTimeout := conf.Database.QueryDuration

	connection := conf.Database.GetConnection(loggerInterface)
	if connection == nil {
		return nil, nil, Errorf("unsupported database type %s", conf.Database.Type)
	}

	connectionConfig := gorm.Config{}
	connectionConfig.DefaultTransactionTimeout = 5 * time.Second
	connectionConfig.PrepareStmt = true

	if debugMode {
		connectionConfig.Logger = logger.Default.LogMode(logger.Error)
	} else {
		connectionConfig.Logger = logger.Default.LogMode(logger.Silent)
	}

	db, err := gorm.Open(connection, &connectionConfig)
	if err != nil {
		return nil, nil, Errorf("error occured while connecting to database: %v", err)
	}

	if err = db.Migrator().AutoMigrate(&Flight{}, &MaintenanceTask{}, &CrewMember{}, &User{}); err != nil {
		return nil, nil, Errorf("error occured while migrating database: %v", err)
	}

	dbPool, err := db.DB()
	if err != nil {
		return nil, nil, Errorf("error occured while creating database pool: %v", err)
	}

	maxOpenConnections := conf.Database.ServerMaxConnections * 4 / 5
	maxIdleConnections := maxOpenConnections / 5

	dbPool.SetMaxIdleConns(maxIdleConnections)
	dbPool.SetMaxOpenConns(maxOpenConnections)
	dbPool.SetConnMaxLifetime(conf.Database.ConnectIdleDuration)

	if err = dbPool.Ping(); err != nil {
		return nil, nil, Errorf("error occured while pinging database: %v", err)
	}
	loggerInterface.Info("Database initialized and connection established")

	operations := NewDatabaseOperations(
		NewFlightOperation(db, queryTimeout),
		NewMaintenanceOperation(db, queryTimeout),
		NewCrewOperation(db, queryTimeout),
		NewUserOperation(db, queryTimeout, conf.General),
	)

	return NewDBCloseCallback(loggerInterface, db), operations, nil
}
