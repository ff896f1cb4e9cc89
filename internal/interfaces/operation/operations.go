// Package operation
package operation

type DatabaseOperations struct {
	flightOperation      FlightOperationInterface
	maintenanceOperation MaintenanceOperationInterface
	crewOperation        CrewOperationInterface
	userOperation        UserOperationInterface
}

func NewDatabaseOperations(
	flightOperation FlightOperationInterface,
	maintenanceOperation MaintenanceOperationInterface,
	crewOperation CrewOperationInterface,
	userOperation UserOperationInterface,
) *DatabaseOperations {
	return &DatabaseOperations{
		flightOperation:      flightOperation,
		maintenanceOperation: maintenanceOperation,
		crewOperation:        crewOperation,
		userOperation:        userOperation,
	}
}

func (db *DatabaseOperations) FlightOperation() FlightOperationInterface {
	return db.flightOperation
}

func (db *DatabaseOperations) MaintenanceOperation() MaintenanceOperationInterface {
	return db.maintenanceOperation
}

func (db *DatabaseOperations) CrewOperation() CrewOperationInterface {
	return db.crewOperation
}

func (db *DatabaseOperations) UserOperation() UserOperationInterface {
	return db.userOperation
}
