package reservation

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

// Blocks reports whether a reservation in this status occupies its dress.
func (s Status) Blocks() bool {
	return s == StatusPending || s == StatusConfirmed
}

type ProspectStatus string

const (
	ProspectStatusNew ProspectStatus = "new"
)

const SourceWebsite = "website"
