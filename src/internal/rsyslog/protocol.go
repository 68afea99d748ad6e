package rsyslog

import (
	"fmt"

	"github.com/maksimkurb/logsrv-assist/src/internal/errors"
)

// Protocol is a transport supported by the plain listener modules.
type Protocol string

const (
	TCP Protocol = "tcp"
	UDP Protocol = "udp"
)

// DefaultPort is the standard syslog port.
const DefaultPort = 514

// ParseProtocol accepts exactly "tcp" or "udp".
func ParseProtocol(s string) (Protocol, error) {
	switch Protocol(s) {
	case TCP, UDP:
		return Protocol(s), nil
	default:
		return "", errors.NewInvalidArgumentError(fmt.Sprintf("protocol must be either 'tcp' or 'udp', got %q", s))
	}
}

// InputModule returns the name of the rsyslog input module for p (imtcp or imudp).
func (p Protocol) InputModule() string {
	return "im" + string(p)
}
