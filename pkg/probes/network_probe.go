package probes

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gravito-framework/sysmon-go/pkg/types"
)

// Unavailable stands in for a public IP that could not be fetched
const Unavailable = "Unavailable"

// NetworkProbe reports hostname, local IP and public IP
type NetworkProbe struct {
	hostname func() (string, error)
	lookup   func(ctx context.Context, host string) ([]net.IPAddr, error)

	client      *http.Client
	publicIPURL string
}

// NewNetworkProbe creates a network probe that asks endpoint for the public
// address, giving up after timeout.
func NewNetworkProbe(endpoint string, timeout time.Duration) *NetworkProbe {
	return &NetworkProbe{
		hostname:    os.Hostname,
		lookup:      net.DefaultResolver.LookupIPAddr,
		client:      &http.Client{Timeout: timeout},
		publicIPURL: endpoint,
	}
}

// Collect resolves the local identity; a failed public lookup is not fatal
func (p *NetworkProbe) Collect(ctx context.Context) types.ProbeResult {
	title := types.CatNetwork.Title()

	hostname, err := p.hostname()
	if err != nil {
		return types.Failed(title, fmt.Sprintf("Error retrieving network info: %v", err))
	}

	localIP, err := p.localIP(ctx, hostname)
	if err != nil {
		return types.Failed(title, fmt.Sprintf("Error retrieving network info: %v", err))
	}

	table := types.NewMetricTable("Hostname", "Local IP Address", "Public IP Address")
	table.Append(hostname, localIP, p.publicIP(ctx))
	return types.Ok(title, table)
}

// localIP prefers the first IPv4 address of host
func (p *NetworkProbe) localIP(ctx context.Context, host string) (string, error) {
	addrs, err := p.lookup(ctx, host)
	if err != nil {
		return "", err
	}
	if len(addrs) == 0 {
		return "", fmt.Errorf("no addresses found for %s", host)
	}

	for _, a := range addrs {
		if v4 := a.IP.To4(); v4 != nil {
			return v4.String(), nil
		}
	}
	return addrs[0].IP.String(), nil
}

func (p *NetworkProbe) publicIP(ctx context.Context) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.publicIPURL, nil)
	if err != nil {
		return Unavailable
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return Unavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Unavailable
	}

	// An address never needs more than this
	body, err := io.ReadAll(io.LimitReader(resp.Body, 256))
	if err != nil {
		return Unavailable
	}

	ip := strings.TrimSpace(string(body))
	if ip == "" {
		return Unavailable
	}
	return ip
}

var _ Probe = (*NetworkProbe)(nil)
