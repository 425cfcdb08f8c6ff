package models

// TrackingInfo is the campaign attribution attached to an application.
type TrackingInfo struct {
	Campaign string `json:"campaign"`
	Keyword  string `json:"keyword"`
}

// IsEmpty reports whether no attribution was supplied.
func (t TrackingInfo) IsEmpty() bool {
	return t.Campaign == "" && t.Keyword == ""
}

// AnalyticsInfo is the web analytics context of a submission.
type AnalyticsInfo struct {
	TrackingString string
	UserAgent      string
}
