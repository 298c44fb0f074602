package candidate

import (
	"fmt"
	"net"
	"regexp"
	"sort"
	"strings"

	"github.com/projectdiscovery/mapcidr"
	"github.com/rotasegura/beacon/internal/config"
	"github.com/rotasegura/beacon/internal/exception"
	"github.com/rotasegura/beacon/internal/logger"
	"github.com/rotasegura/beacon/internal/util"
)

var cidrSuffix = regexp.MustCompile(`\/\d{1,2}$`)

// platformTable priority of candidate groups per platform. New platforms
// only need a new row.
var platformTable = map[Platform][]Rationale{
	PlatformEmulatorAndroid: {RationaleEmulatorAlias, RationaleLANGuess, RationaleLoopback},
	PlatformSimulatorIOS:    {RationaleLoopback, RationaleLANGuess},
	PlatformWeb:             {RationaleLoopback, RationaleLANGuess},
	PlatformDevice:          {RationaleLANGuess, RationaleLoopback},
}

// ParsePlatform maps a platform tag to a Platform. An empty tag means device.
func ParsePlatform(tag string) (Platform, error) {
	p := Platform(strings.ToLower(strings.TrimSpace(tag)))

	if p == "" {
		return PlatformDevice, nil
	}

	if _, ok := platformTable[p]; !ok {
		return "", fmt.Errorf("%w: %q", exception.ErrInvalidPlatform, tag)
	}

	return p, nil
}

// Platforms returns every platform tag with a table entry
func Platforms() []Platform {
	platforms := []Platform{}

	for p := range platformTable {
		platforms = append(platforms, p)
	}

	sort.Slice(platforms, func(i, j int) bool {
		return platforms[i] < platforms[j]
	})

	return platforms
}

// TableSource implements Source using the platform table
type TableSource struct {
	groups map[Rationale][]string
	log    logger.Logger
}

// NewTableSource returns a new instance of TableSource. localCIDR is the
// subnet of this machine and may be empty.
func NewTableSource(conf config.Config, localCIDR string) (*TableSource, error) {
	networks := []string{}

	if conf.LAN.IncludeLocalSubnet && localCIDR != "" {
		networks = append(networks, localCIDR)
	}

	networks = append(networks, conf.LAN.Networks...)

	limit := conf.LAN.Limit

	if limit <= 0 || limit > config.MaxLANGuesses {
		limit = config.MaxLANGuesses
	}

	guesses, err := LANGuesses(networks, conf.LAN.HostMin, conf.LAN.HostMax, limit)

	if err != nil {
		return nil, err
	}

	lan := append([]string{}, conf.ExtraHosts...)
	lan = append(lan, guesses...)
	lan = util.Unique(lan, func(h string) string { return h })

	if len(lan) > limit {
		lan = lan[:limit]
	}

	alias := []string{}

	if conf.EmulatorAlias != "" {
		alias = append(alias, conf.EmulatorAlias)
	}

	return &TableSource{
		groups: map[Rationale][]string{
			RationaleEmulatorAlias: alias,
			RationaleLANGuess:      lan,
			RationaleLoopback:      append([]string{}, conf.Loopback...),
		},
		log: logger.New(),
	}, nil
}

// Candidates returns the ordered, duplicate free candidates for platform.
// Unknown platforms use the device row.
func (s *TableSource) Candidates(platform Platform) []Candidate {
	order, ok := platformTable[platform]

	if !ok {
		s.log.Warn().Str("platform", string(platform)).Msg("unknown platform, using device candidates")
		order = platformTable[PlatformDevice]
	}

	candidates := []Candidate{}

	for _, rationale := range order {
		for _, host := range s.groups[rationale] {
			candidates = append(candidates, Candidate{Host: host, Rationale: rationale})
		}
	}

	return Dedupe(candidates)
}

// Dedupe drops repeated hosts keeping the first, higher priority, entry
func Dedupe(candidates []Candidate) []Candidate {
	return util.Unique(candidates, func(c Candidate) string {
		return strings.ToLower(strings.TrimSpace(c.Host))
	})
}

// LANGuesses combines networks with the host number range hostMin-hostMax.
// Hosts are interleaved across networks so every network gets its first
// hosts tried before any network gets its later ones. Plain host entries
// are passed through. At most limit guesses are returned.
func LANGuesses(networks []string, hostMin, hostMax, limit int) ([]string, error) {
	perNetwork := [][]string{}

	for _, n := range networks {
		if !cidrSuffix.MatchString(n) {
			perNetwork = append(perNetwork, []string{n})
			continue
		}

		_, ipnet, err := net.ParseCIDR(n)

		if err != nil {
			return nil, err
		}

		ips, err := mapcidr.IPAddresses(ipnet.String())

		if err != nil {
			return nil, err
		}

		hosts := []net.IP{}

		for _, ip := range ips {
			ip4 := net.ParseIP(ip).To4()

			if ip4 == nil {
				continue
			}

			if h := int(ip4[3]); h >= hostMin && h <= hostMax {
				hosts = append(hosts, ip4)
			}
		}

		sort.Slice(hosts, func(i, j int) bool {
			return hosts[i][3] < hosts[j][3]
		})

		hostStrs := []string{}

		for _, h := range hosts {
			hostStrs = append(hostStrs, h.String())
		}

		perNetwork = append(perNetwork, hostStrs)
	}

	guesses := []string{}

	for i := 0; ; i++ {
		added := false

		for _, hosts := range perNetwork {
			if i < len(hosts) {
				guesses = append(guesses, hosts[i])
				added = true
			}
		}

		if !added {
			break
		}
	}

	guesses = util.Unique(guesses, func(h string) string { return h })

	if limit > 0 && len(guesses) > limit {
		guesses = guesses[:limit]
	}

	return guesses, nil
}
