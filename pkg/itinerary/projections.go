package itinerary

// LineInfo is a read-only projection of one distinct line used by a journey.
type LineInfo struct {
	LineCode      string        `groups:"basic"`
	LineName      string        `groups:"basic"`
	LineColour    string        `groups:"basic"`
	TransportType TransportType `groups:"basic"`
}

// StopInfo is a read-only projection of one stop visited by a journey.
type StopInfo struct {
	Sequence int `groups:"basic"`

	StopPointRef string `groups:"basic"`
	StopAreaRef  string `groups:"basic"`

	Name string `groups:"basic"`

	LineCode string `groups:"basic"`

	Location *Location `groups:"basic" json:",omitempty"`
}
