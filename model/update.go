package model

// Direction describes how a latest version relates to the current one.
type Direction string

const (
	DirectionNewer Direction = "newer"
	DirectionOlder Direction = "older"
	DirectionSame  Direction = "same"
)

// FirmwareStatus compares installed and published firmware for one side.
type FirmwareStatus struct {
	Side            string   `json:"side"`
	Installed       string   `json:"installed,omitempty"`
	Latest          string   `json:"latest"`
	Name            string   `json:"name,omitempty"`
	UpdateAvailable bool     `json:"update_available"`
	Changelog       []string `json:"changelog,omitempty"`
}

// UpdateReport is the outcome of comparing the current version to a latest one.
type UpdateReport struct {
	CurrentVersion  string           `json:"current_version"`
	CurrentSource   VersionSource    `json:"current_source"`
	LatestVersion   string           `json:"latest_version"`
	UpdateAvailable bool             `json:"update_available"`
	Direction       Direction        `json:"direction"`
	ExecutableName  string           `json:"executable_name,omitempty"`
	Changelog       []string         `json:"changelog,omitempty"`
	Firmware        []FirmwareStatus `json:"firmware,omitempty"`
}
