package dto

// StatsResponse carries the reporting counters.
type StatsResponse struct {
	Patients     int64 `json:"patients"`
	Physicians   int64 `json:"physicians"`
	Appointments int64 `json:"appointments"`
}
