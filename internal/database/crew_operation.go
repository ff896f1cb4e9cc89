// Package database
package database

import (
	"context"
	"time"

	. "github.com/aviodesk/charterops/internal/interfaces/operation"
	"gorm.io/gorm"
)

type CrewOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewCrewOperation(db *gorm.DB, queryTimeout time.Duration) *CrewOperation {
	return &CrewOperation{db: db, queryTimeout: queryTimeout}
}

// NewCrewMember derives the rest status from totalHours here, once. The
// stored status is never re-evaluated, there is no update path.
func (crewOperation *CrewOperation) NewCrewMember(name string, totalHours float64, lastFlight string) *CrewMember {
	return &CrewMember{
		Name:       name,
		TotalHours: totalHours,
		LastFlight: lastFlight,
		Status:     DeriveCrewStatus(totalHours),
	}
}

func (crewOperation *CrewOperation) AddCrewMember(member *CrewMember) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), crewOperation.queryTimeout)
	defer cancel()
	return crewOperation.db.WithContext(ctx).Create(member).Error
}

func (crewOperation *CrewOperation) GetCrewMembers() (members []*CrewMember, err error) {
	members = make([]*CrewMember, 0)
	ctx, cancel := context.WithTimeout(context.Background(), crewOperation.queryTimeout)
	defer cancel()
	err = crewOperation.db.WithContext(ctx).Order("id asc").Find(&members).Error
	return
}
