// Package smtppool provides a thread-safe SMTP connection pool for
// mailbox probing. A probe is a non-committing recipient check:
// HELO → MAIL FROM → RCPT TO, never proceeding to DATA. Connections to
// the same MX host are reused across probes via the RSET command.
package smtppool

import (
	"bufio"
	"errors"
	"fmt"
	"net"
	"strings"
	"sync"
	"time"
)

// Config configures the SMTP connection pool.
type Config struct {
	HeloHost        string // client name sent in HELO
	MailFrom        string // placeholder sender for MAIL FROM
	ConnectTimeout  time.Duration
	CommandTimeout  time.Duration
	Port            string
	MaxConnsPerHost int           // max idle connections per MX host (default: 3)
	MaxUsesPerConn  int           // max probes per connection before reconnect (default: 100)
	MaxConnAge      time.Duration // max lifetime of a connection (default: 5m)
	// Dial is injectable for testing. Defaults to net.DialTimeout.
	Dial func(network, address string, timeout time.Duration) (net.Conn, error)
}

// Pool manages SMTP connections per MX host.
type Pool struct {
	cfg    Config
	mu     sync.Mutex
	idle   map[string][]*conn
	closed bool
}

type conn struct {
	netConn   net.Conn
	reader    *bufio.Reader
	writer    *bufio.Writer
	createdAt time.Time
	uses      int
}

// expired reports whether the connection has outlived its use count or
// age and must not carry another probe.
func (c *conn) expired(cfg Config) bool {
	return c.uses >= cfg.MaxUsesPerConn || time.Since(c.createdAt) > cfg.MaxConnAge
}

// command sends one SMTP command and reads the response.
func (c *conn) command(cmd string) (int, string, error) {
	if _, err := c.writer.WriteString(cmd); err != nil {
		return 0, "", err
	}
	if err := c.writer.Flush(); err != nil {
		return 0, "", err
	}
	return readResponse(c.reader)
}

// New creates a new SMTP connection pool.
func New(cfg Config) *Pool {
	if cfg.Dial == nil {
		cfg.Dial = net.DialTimeout
	}
	if cfg.MaxConnsPerHost <= 0 {
		cfg.MaxConnsPerHost = 3
	}
	if cfg.MaxUsesPerConn <= 0 {
		cfg.MaxUsesPerConn = 100
	}
	if cfg.MaxConnAge <= 0 {
		cfg.MaxConnAge = 5 * time.Minute
	}
	return &Pool{
		cfg:  cfg,
		idle: make(map[string][]*conn),
	}
}

// Probe performs the recipient check against mxHost and returns the raw
// RCPT TO response code and message. On a fresh connection the exchange
// is Banner → HELO → MAIL FROM → RCPT TO; on a reused connection RSET
// replaces the banner and HELO. The session never reaches DATA.
func (p *Pool) Probe(mxHost, email string) (code int, msg string, err error) {
	c, fresh, err := p.get(mxHost)
	if err != nil {
		return 0, "", err
	}

	if derr := c.netConn.SetDeadline(time.Now().Add(p.cfg.CommandTimeout)); derr != nil {
		_ = c.netConn.Close()
		return 0, "", fmt.Errorf("set deadline: %w", derr)
	}

	if fresh {
		err = p.greet(c)
	} else {
		err = p.reset(c)
	}
	if err == nil {
		code, msg, err = p.transaction(c, email)
	}
	if err != nil {
		// Connection state is unknown, discard it.
		_ = c.netConn.Close()
		return 0, "", err
	}

	p.put(mxHost, c)
	return code, msg, nil
}

// Close closes all pooled connections. The pool cannot be used afterwards.
func (p *Pool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closed = true
	for host, conns := range p.idle {
		for _, c := range conns {
			sendQuit(c)
			_ = c.netConn.Close()
		}
		delete(p.idle, host)
	}
	return nil
}

// get retrieves a reusable connection from the pool or dials a new one.
// The second return value reports whether the connection is fresh.
// Dialing happens outside the lock so a slow MX host does not stall
// probes against other hosts.
func (p *Pool) get(mxHost string) (*conn, bool, error) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil, false, errors.New("smtppool: pool is closed")
	}
	c := p.takeIdle(mxHost)
	p.mu.Unlock()

	if c != nil {
		return c, false, nil
	}

	c, err := p.dial(mxHost)
	if err != nil {
		return nil, false, err
	}
	return c, true, nil
}

// takeIdle pops the most recently parked healthy connection for the
// host, retiring expired ones along the way. Caller holds the lock.
func (p *Pool) takeIdle(mxHost string) *conn {
	for {
		conns := p.idle[mxHost]
		n := len(conns)
		if n == 0 {
			return nil
		}
		c := conns[n-1]
		p.idle[mxHost] = conns[:n-1]

		if c.expired(p.cfg) {
			sendQuit(c)
			_ = c.netConn.Close()
			continue
		}
		return c
	}
}

// put parks a connection for reuse, or closes it when the pool is
// closed or the host's idle slots are full.
func (p *Pool) put(mxHost string, c *conn) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed || len(p.idle[mxHost]) >= p.cfg.MaxConnsPerHost {
		sendQuit(c)
		_ = c.netConn.Close()
		return
	}

	p.idle[mxHost] = append(p.idle[mxHost], c)
}

func (p *Pool) dial(mxHost string) (*conn, error) {
	address := net.JoinHostPort(mxHost, p.cfg.Port)
	netConn, err := p.cfg.Dial("tcp", address, p.cfg.ConnectTimeout)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", address, err)
	}

	return &conn{
		netConn:   netConn,
		reader:    bufio.NewReader(netConn),
		writer:    bufio.NewWriter(netConn),
		createdAt: time.Now(),
	}, nil
}

// greet consumes the banner and introduces the client on a fresh
// connection.
func (p *Pool) greet(c *conn) error {
	code, msg, err := readResponse(c.reader)
	if err != nil {
		return fmt.Errorf("read banner: %w", err)
	}
	if code >= 500 {
		return fmt.Errorf("server rejected connection: %d %s", code, msg)
	}

	code, msg, err = c.command("HELO " + p.cfg.HeloHost + "\r\n")
	if err != nil {
		return fmt.Errorf("HELO failed: %w", err)
	}
	if code >= 400 {
		return fmt.Errorf("HELO rejected: %d %s", code, msg)
	}
	return nil
}

// reset starts a fresh mail transaction on a reused connection.
func (p *Pool) reset(c *conn) error {
	code, msg, err := c.command("RSET\r\n")
	if err != nil {
		return fmt.Errorf("RSET failed: %w", err)
	}
	if code >= 400 {
		return fmt.Errorf("RSET rejected: %d %s", code, msg)
	}
	return nil
}

// transaction runs MAIL FROM and RCPT TO, returning the raw recipient
// response. A permanent MAIL FROM rejection is a probe result, not an
// error; a temporary one leaves the session in doubt and is.
func (p *Pool) transaction(c *conn, email string) (int, string, error) {
	code, msg, err := c.command("MAIL FROM:<" + p.cfg.MailFrom + ">\r\n")
	if err != nil {
		return 0, "", fmt.Errorf("MAIL FROM failed: %w", err)
	}
	if code >= 500 {
		return code, msg, nil
	}
	if code >= 400 {
		return 0, "", fmt.Errorf("MAIL FROM temporary failure: %d %s", code, msg)
	}

	code, msg, err = c.command("RCPT TO:<" + email + ">\r\n")
	if err != nil {
		return 0, "", fmt.Errorf("RCPT TO failed: %w", err)
	}

	c.uses++
	return code, msg, nil
}

// sendQuit sends a QUIT command (best-effort, ignores errors).
func sendQuit(c *conn) {
	_ = c.netConn.SetDeadline(time.Now().Add(2 * time.Second))
	_, _ = c.writer.WriteString("QUIT\r\n")
	_ = c.writer.Flush()
}

// readResponse reads a (possibly multi-line) SMTP response.
func readResponse(r *bufio.Reader) (code int, full string, err error) {
	var lines []string
	for {
		line, readErr := r.ReadString('\n')
		if readErr != nil {
			return 0, "", fmt.Errorf("read SMTP response: %w", readErr)
		}
		line = strings.TrimRight(line, "\r\n")
		if len(line) < 3 {
			return 0, "", errors.New("SMTP response line too short")
		}
		lines = append(lines, line)
		// A '-' in the 4th column marks a continuation line.
		if len(line) < 4 || line[3] != '-' {
			break
		}
	}

	lastLine := lines[len(lines)-1]
	if _, err := fmt.Sscanf(lastLine[:3], "%d", &code); err != nil {
		return 0, "", fmt.Errorf("invalid SMTP response code %q: %w", lastLine[:3], err)
	}
	return code, strings.Join(lines, " | "), nil
}
