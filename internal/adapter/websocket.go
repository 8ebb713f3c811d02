package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-run-watch/internal/config"
	"github.com/MKhiriev/go-run-watch/internal/logger"
	"golang.org/x/net/websocket"
)

type webSocketDialer struct {
	baseURL string
	origin  string
	timeout time.Duration

	logger *logger.Logger
}

// NewWebSocketDialer constructs a [PushDialer] over golang.org/x/net/websocket.
//
// The push base URL is adapterCfg.WSAddress, or, when empty, the host of
// adapterCfg.HTTPAddress with the scheme switched to ws/wss and the path
// dropped. The base URL is validated lazily in Dial, so a bad push address
// degrades to polling instead of failing startup.
//
// Returns an error only if adapterCfg.HTTPAddress is invalid.
func NewWebSocketDialer(adapterCfg config.ClientAdapter, logger *logger.Logger) (PushDialer, error) {
	httpBase, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	wsBase := strings.TrimSpace(adapterCfg.WSAddress)
	if wsBase == "" {
		wsBase = deriveWSBase(httpBase)
	}

	return &webSocketDialer{
		baseURL: strings.TrimRight(wsBase, "/"),
		origin:  httpBase,
		timeout: adapterCfg.RequestTimeout,
		logger:  logger,
	}, nil
}

func deriveWSBase(httpBase string) string {
	u, err := url.Parse(httpBase)
	if err != nil {
		return httpBase
	}

	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	}
	u.Path = ""
	u.RawPath = ""
	u.RawQuery = ""

	return u.String()
}

// Dial implements [PushDialer]. The handshake is bounded by the adapter
// request timeout; once established the channel has no deadline.
func (d *webSocketDialer) Dial(ctx context.Context, runID int64, token string) (PushChannel, error) {
	endpoint, err := d.endpoint(runID, token)
	if err != nil {
		return nil, err
	}

	wsCfg, err := websocket.NewConfig(endpoint, d.origin)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedURL, err)
	}

	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	conn, err := wsCfg.DialContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("dial push channel: %w", err)
	}

	d.logger.Debug().Int64("run_id", runID).Msg("push channel established")

	return &webSocketChannel{conn: conn}, nil
}

func (d *webSocketDialer) endpoint(runID int64, token string) (string, error) {
	u, err := url.Parse(d.baseURL)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedURL, err)
	}
	if u.Scheme != "ws" && u.Scheme != "wss" {
		return "", fmt.Errorf("%w: %q", ErrDisallowedScheme, u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("%w: missing host", ErrMalformedURL)
	}

	u = u.JoinPath("ws", "runs", strconv.FormatInt(runID, 10))
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()

	return u.String(), nil
}

type webSocketChannel struct {
	conn *websocket.Conn

	closeOnce sync.Once
	closeErr  error
}

// Receive implements [PushChannel].
func (c *webSocketChannel) Receive() ([]byte, error) {
	var frame []byte
	if err := websocket.Message.Receive(c.conn, &frame); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrChannelClosed
		}
		return nil, err
	}
	return frame, nil
}

// Close implements [PushChannel].
func (c *webSocketChannel) Close() error {
	c.closeOnce.Do(func() {
		c.closeErr = c.conn.Close()
	})
	return c.closeErr
}
