package rsyslog

import "fmt"

// Suggestions returns SELinux and firewall commands an operator usually needs
// when rsyslog listens on a non-default port. It returns nil for DefaultPort.
func Suggestions(port int, protocol Protocol) []string {
	if port == DefaultPort {
		return nil
	}

	return []string{
		"Since you are using a non-default port, consider running the following commands to update SELinux and firewall rules:",
		fmt.Sprintf("# semanage port -a -t syslogd_port_t -p %s %d", protocol, port),
		fmt.Sprintf("# firewall-cmd --permanent --add-port=%d/%s", port, protocol),
		"# firewall-cmd --reload",
	}
}
