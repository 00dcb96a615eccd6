package launch

// Status classifies a launch outcome for display.
type Status string

const (
	StatusUpcoming Status = "upcoming"
	StatusSuccess  Status = "success"
	StatusFailed   Status = "failed"
	StatusUnknown  Status = "unknown"
)

// DeriveStatus applies the first matching rule: upcoming, then the success flag,
// then unknown when the flag is absent.
func DeriveStatus(upcoming bool, success *bool) Status {
	switch {
	case upcoming:
		return StatusUpcoming
	case success != nil && *success:
		return StatusSuccess
	case success != nil:
		return StatusFailed
	default:
		return StatusUnknown
	}
}

// Label returns the badge text for s.
func (s Status) Label() string {
	switch s {
	case StatusUpcoming:
		return "Upcoming"
	case StatusSuccess:
		return "Success"
	case StatusFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}
