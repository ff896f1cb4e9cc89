// Package database
package database

import (
	"context"
	"time"

	. "github.com/aviodesk/charterops/internal/interfaces/operation"
	"gorm.io/gorm"
)

type MaintenanceOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewMaintenanceOperation(db *gorm.DB, queryTimeout time.Duration) *MaintenanceOperation {
	return &MaintenanceOperation{db: db, queryTimeout: queryTimeout}
}

func (maintenanceOperation *MaintenanceOperation) NewMaintenanceTask(aircraft, description, dueDate string) *MaintenanceTask {
	return &MaintenanceTask{
		Aircraft:    aircraft,
		Description: description,
		DueDate:     dueDate,
	}
}

func (maintenanceOperation *MaintenanceOperation) AddMaintenanceTask(task *MaintenanceTask) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), maintenanceOperation.queryTimeout)
	defer cancel()
	return maintenanceOperation.db.WithContext(ctx).Create(task).Error
}

func (maintenanceOperation *MaintenanceOperation) GetMaintenanceTasks() (tasks []*MaintenanceTask, err error) {
	tasks = make([]*MaintenanceTask, 0)
	ctx, cancel := context.WithTimeout(context.Background(), maintenanceOperation.queryTimeout)
	defer cancel()
	err = maintenanceOperation.db.WithContext(ctx).Order("due_date asc").Find(&tasks).Error
	return
}
