package candidate

//go:generate mockgen -destination=../mock/candidate/mock_candidate.go -package=mock_candidate . Source

// Platform runtime environment the client is running in
type Platform string

// Known platform tags
const (
	PlatformEmulatorAndroid Platform = "emulator-android"
	PlatformSimulatorIOS    Platform = "simulator-ios"
	PlatformWeb             Platform = "web"
	PlatformDevice          Platform = "device"
)

// Rationale why a host is worth probing
type Rationale string

// Rationale values. They double as the group keys of the platform table.
const (
	RationaleEmulatorAlias   Rationale = "emulator-alias"
	RationaleLoopback        Rationale = "loopback"
	RationaleLANGuess        Rationale = "lan-guess"
	RationalePreviousSuccess Rationale = "previous-success"
)

// Candidate a host worth probing for a live backend
type Candidate struct {
	Host      string    `json:"host"`
	Rationale Rationale `json:"rationale"`
}

// Source produces the ordered candidates for a platform
type Source interface {
	Candidates(platform Platform) []Candidate
}
