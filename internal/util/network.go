package util

import (
	"errors"
	"net"
)

// LocalNetwork the interface and subnet carrying this machine's outbound
// traffic
type LocalNetwork struct {
	Interface string
	IP        net.IP
	Cidr      string
}

// ContainingNetwork returns the network among addrs that contains ip
func ContainingNetwork(ip net.IP, addrs []net.Addr) (*net.IPNet, bool) {
	for _, addr := range addrs {
		_, ipnet, err := net.ParseCIDR(addr.String())

		if err != nil {
			continue
		}

		if ipnet.Contains(ip) {
			return ipnet, true
		}
	}

	return nil, false
}

// outboundIP asks the routing table which source address traffic to the
// internet would use. udp never sends a packet for this.
func outboundIP() (net.IP, error) {
	conn, err := net.Dial("udp", "8.8.8.8:80")

	if err != nil {
		return nil, err
	}

	defer conn.Close()

	return conn.LocalAddr().(*net.UDPAddr).IP, nil
}

// DetectLocalNetwork returns the interface and subnet of the preferred
// outbound address
func DetectLocalNetwork() (*LocalNetwork, error) {
	ip, err := outboundIP()

	if err != nil {
		return nil, err
	}

	interfaces, err := net.Interfaces()

	if err != nil {
		return nil, err
	}

	for _, iface := range interfaces {
		addrs, err := iface.Addrs()

		if err != nil {
			continue
		}

		if ipnet, ok := ContainingNetwork(ip, addrs); ok {
			return &LocalNetwork{
				Interface: iface.Name,
				IP:        ip,
				Cidr:      ipnet.String(),
			}, nil
		}
	}

	return nil, errors.New("no interface holds the outbound address")
}
