// Package operation
package operation

type CrewOperationInterface interface {
	// NewCrewMember builds a crew record with its status derived from
	// totalHours, without writing it to the database
	NewCrewMember(name string, totalHours float64, lastFlight string) (member *CrewMember)
	// AddCrewMember durably persists one crew row, err is nil on success
	AddCrewMember(member *CrewMember) (err error)
	// GetCrewMembers returns all crew members in insertion order
	GetCrewMembers() (members []*CrewMember, err error)
}
