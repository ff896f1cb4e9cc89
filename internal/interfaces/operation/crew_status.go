package operation

type CrewStatus string

const (
	CrewStatusOK        CrewStatus = "OK"
	CrewStatusNeedsRest CrewStatus = "Needs Rest"
)

// RestThresholdHours is the flight-hour count above which a crew member is
// marked as needing rest. Exactly at the threshold still counts as OK.
const RestThresholdHours = 100.0

// DeriveCrewStatus is applied once when a crew member record is created and
// the result is persisted with the record. It is never recomputed on read.
func DeriveCrewStatus(totalHours float64) CrewStatus {
	if totalHours > RestThresholdHours {
		return CrewStatusNeedsRest
	}
	return CrewStatusOK
}
