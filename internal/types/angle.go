package types

// UniqueAngle frames the user's existing background as an asset for the
// target role
type UniqueAngle struct {
	UniqueValue     string `json:"uniqueValue"`
	Superpower      string `json:"superpower"`
	Positioning     string `json:"positioning"`
	ElevatorPitch   string `json:"elevatorPitch"`
	ResumeTip       string `json:"resumeTip"`
	ConfidenceBoost string `json:"confidenceBoost"`
}
