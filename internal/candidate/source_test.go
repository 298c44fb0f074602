package candidate_test

import (
	"testing"

	"github.com/rotasegura/beacon/internal/candidate"
	"github.com/rotasegura/beacon/internal/config"
	"github.com/rotasegura/beacon/internal/exception"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hosts(candidates []candidate.Candidate) []string {
	result := []string{}

	for _, c := range candidates {
		result = append(result, c.Host)
	}

	return result
}

func TestTableSource(t *testing.T) {
	conf := config.Default()

	source, err := candidate.NewTableSource(*conf, "")

	require.NoError(t, err)

	t.Run("returns non empty duplicate free candidates for every platform", func(st *testing.T) {
		for _, p := range candidate.Platforms() {
			candidates := source.Candidates(p)

			assert.NotEmpty(st, candidates, p)

			seen := map[string]bool{}

			for _, c := range candidates {
				assert.False(st, seen[c.Host], "duplicate host %s for %s", c.Host, p)
				seen[c.Host] = true
			}

			// order is stable across calls
			assert.Equal(st, candidates, source.Candidates(p))
		}
	})

	t.Run("puts emulator alias first on android emulator", func(st *testing.T) {
		candidates := source.Candidates(candidate.PlatformEmulatorAndroid)

		assert.Equal(st, candidate.Candidate{
			Host:      "10.0.2.2",
			Rationale: candidate.RationaleEmulatorAlias,
		}, candidates[0])

		last := candidates[len(candidates)-1]

		assert.Equal(st, candidate.RationaleLoopback, last.Rationale)
		assert.Equal(st, candidate.RationaleLANGuess, candidates[1].Rationale)
	})

	t.Run("puts loopback first on simulators and web", func(st *testing.T) {
		for _, p := range []candidate.Platform{candidate.PlatformSimulatorIOS, candidate.PlatformWeb} {
			candidates := source.Candidates(p)

			assert.Equal(st, "localhost", candidates[0].Host)
			assert.Equal(st, candidate.RationaleLoopback, candidates[0].Rationale)
			assert.Equal(st, candidate.RationaleLANGuess, candidates[len(candidates)-1].Rationale)

			for _, c := range candidates {
				assert.NotEqual(st, candidate.RationaleEmulatorAlias, c.Rationale)
			}
		}
	})

	t.Run("puts lan guesses first and loopback last on devices", func(st *testing.T) {
		candidates := source.Candidates(candidate.PlatformDevice)

		assert.Equal(st, "192.168.1.1", candidates[0].Host)
		assert.Equal(st, candidate.RationaleLANGuess, candidates[0].Rationale)
		assert.Equal(st, "127.0.0.1", candidates[len(candidates)-1].Host)
	})

	t.Run("falls back to device candidates for unknown platforms", func(st *testing.T) {
		assert.Equal(
			st,
			source.Candidates(candidate.PlatformDevice),
			source.Candidates(candidate.Platform("toaster")),
		)
	})

	t.Run("bounds lan guesses", func(st *testing.T) {
		lan := 0

		for _, c := range source.Candidates(candidate.PlatformDevice) {
			if c.Rationale == candidate.RationaleLANGuess {
				lan++
			}
		}

		assert.LessOrEqual(st, lan, config.MaxLANGuesses)
	})
}

func TestTableSourceOverrides(t *testing.T) {
	t.Run("puts extra hosts and local subnet ahead of configured networks", func(st *testing.T) {
		conf := config.Default()
		conf.ExtraHosts = []string{"192.168.100.9"}
		conf.LAN.IncludeLocalSubnet = true
		conf.LAN.Networks = []string{"10.0.0.0/24"}
		conf.LAN.HostMin = 1
		conf.LAN.HostMax = 2

		source, err := candidate.NewTableSource(*conf, "172.16.5.40/24")

		require.NoError(st, err)

		assert.Equal(
			st,
			[]string{
				"192.168.100.9",
				"172.16.5.1",
				"10.0.0.1",
				"172.16.5.2",
				"10.0.0.2",
				"localhost",
				"127.0.0.1",
			},
			hosts(source.Candidates(candidate.PlatformDevice)),
		)
	})

	t.Run("suppresses duplicates across groups", func(st *testing.T) {
		conf := config.Default()
		conf.ExtraHosts = []string{"localhost"}

		source, err := candidate.NewTableSource(*conf, "")

		require.NoError(st, err)

		candidates := source.Candidates(candidate.PlatformWeb)

		assert.Equal(st, "localhost", candidates[0].Host)
		assert.Equal(st, candidate.RationaleLoopback, candidates[0].Rationale)

		count := 0

		for _, c := range candidates {
			if c.Host == "localhost" {
				count++
			}
		}

		assert.Equal(st, 1, count)
	})

	t.Run("returns error for malformed networks", func(st *testing.T) {
		conf := config.Default()
		conf.LAN.Networks = []string{"300.1.1.0/24"}

		_, err := candidate.NewTableSource(*conf, "")

		assert.Error(st, err)
	})
}

func TestLANGuesses(t *testing.T) {
	t.Run("interleaves networks and honours limit", func(st *testing.T) {
		guesses, err := candidate.LANGuesses(
			[]string{"192.168.1.0/24", "192.168.0.0/24", "192.168.100.9"},
			1,
			3,
			5,
		)

		assert.NoError(st, err)
		assert.Equal(
			st,
			[]string{
				"192.168.1.1",
				"192.168.0.1",
				"192.168.100.9",
				"192.168.1.2",
				"192.168.0.2",
			},
			guesses,
		)
	})
}

func TestParsePlatform(t *testing.T) {
	t.Run("parses known tags", func(st *testing.T) {
		p, err := candidate.ParsePlatform(" Emulator-Android ")

		assert.NoError(st, err)
		assert.Equal(st, candidate.PlatformEmulatorAndroid, p)
	})

	t.Run("defaults to device", func(st *testing.T) {
		p, err := candidate.ParsePlatform("")

		assert.NoError(st, err)
		assert.Equal(st, candidate.PlatformDevice, p)
	})

	t.Run("rejects unknown tags", func(st *testing.T) {
		_, err := candidate.ParsePlatform("toaster")

		assert.ErrorIs(st, err, exception.ErrInvalidPlatform)
	})
}

func TestDedupe(t *testing.T) {
	t.Run("keeps the higher priority rationale", func(st *testing.T) {
		result := candidate.Dedupe([]candidate.Candidate{
			{Host: "10.0.0.1", Rationale: candidate.RationalePreviousSuccess},
			{Host: "10.0.0.1", Rationale: candidate.RationaleLANGuess},
			{Host: "localhost", Rationale: candidate.RationaleLoopback},
		})

		assert.Equal(st, []candidate.Candidate{
			{Host: "10.0.0.1", Rationale: candidate.RationalePreviousSuccess},
			{Host: "localhost", Rationale: candidate.RationaleLoopback},
		}, result)
	})
}
