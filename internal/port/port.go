package port

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

const (
	// DefaultHost is the probe target; the tools only manage local services.
	DefaultHost = "localhost"

	// probeTimeout bounds the connect probe so a stalled handshake cannot
	// hang the calling tool.
	probeTimeout = 500 * time.Millisecond
)

// Service maps a workspace tool name to its assigned port.
type Service struct {
	Name string
	Port int
}

// DefaultServices is the static port assignment table for the workspace
// tools, in display order.
func DefaultServices() []Service {
	return []Service{
		{Name: "local-model-manager", Port: 8768},
		{Name: "task-board", Port: 8769},
		{Name: "token-monitor", Port: 8770},
		{Name: "api-auto-switch", Port: 8771},
		{Name: "custom-tool", Port: 8772},
		{Name: "service-panel", Port: 8773},
	}
}

// InUse reports whether something is listening on the local port. A refused
// or timed-out connect means the port is free, not an error.
func InUse(port int) bool {
	return InUseOn(DefaultHost, port)
}

// InUseOn probes host:port with a short-lived TCP client connection.
func InUseOn(host string, port int) bool {
	addr := net.JoinHostPort(host, strconv.Itoa(port))
	conn, err := net.DialTimeout("tcp", addr, probeTimeout)
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}

// Bindable reports whether the port can be bound on the loopback interface.
func Bindable(port int) bool {
	ln, err := net.Listen("tcp", net.JoinHostPort("127.0.0.1", strconv.Itoa(port)))
	if err != nil {
		return false
	}
	_ = ln.Close()
	return true
}

// FirstFree scans the inclusive range for the first bindable port.
func FirstFree(min int, max int) (int, bool) {
	for p := min; p <= max; p++ {
		if Bindable(p) {
			return p, true
		}
	}
	return 0, false
}

// URL renders the local service address for console output.
func URL(port int) string {
	return fmt.Sprintf("http://localhost:%d", port)
}
