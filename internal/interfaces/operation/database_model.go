package operation

import (
	"time"
)

// Departure times and due dates are stored as free text, exactly as
// submitted. Listing order is therefore lexicographic string order.
type Flight struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	PilotName     string    `gorm:"size:64" json:"pilot_name"`
	FlightNumber  string    `gorm:"size:16;not null" json:"flight_number"`
	DepartureTime string    `gorm:"size:32;not null" json:"departure_time"`
	Origin        string    `gorm:"size:64;not null" json:"origin"`
	Destination   string    `gorm:"size:64;not null" json:"destination"`
	Aircraft      string    `gorm:"size:16;not null" json:"aircraft"`
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"-"`
}

type MaintenanceTask struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Aircraft    string    `gorm:"size:16;not null" json:"aircraft"`
	Description string    `gorm:"type:text;not null" json:"description"`
	DueDate     string    `gorm:"size:32;not null" json:"due_date"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

type CrewMember struct {
	ID         uint       `gorm:"primarykey" json:"id"`
	Name       string     `gorm:"size:64;not null" json:"name"`
	TotalHours float64    `gorm:"not null" json:"total_hours"`
	LastFlight string     `gorm:"size:32" json:"last_flight"`
	Status     CrewStatus `gorm:"size:16;default:'OK';not null" json:"status"`
	CreatedAt  time.Time  `json:"-"`
	UpdatedAt  time.Time  `json:"-"`
}

type User struct {
	ID        uint      `gorm:"primarykey" json:"-"`
	Username  string    `gorm:"size:64;uniqueIndex;not null" json:"username"`
	Email     string    `gorm:"size:128;uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"size:128;not null" json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
