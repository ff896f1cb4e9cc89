// Package operation
package operation

type MaintenanceOperationInterface interface {
	// NewMaintenanceTask builds a task record without writing it to the database
	NewMaintenanceTask(aircraft, description, dueDate string) (task *MaintenanceTask)
	// AddMaintenanceTask durably persists one task row, err is nil on success
	AddMaintenanceTask(task *MaintenanceTask) (err error)
	// GetMaintenanceTasks returns all tasks ordered by due date ascending
	GetMaintenanceTasks() (tasks []*MaintenanceTask, err error)
}
