package launch

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/websocket"
	"github.com/schollz/progressbar/v3"
)

// WaitReady polls the Streamlit websocket endpoint until the server accepts
// a connection or the context expires. A spinner on stderr keeps the user
// informed; the child keeps running either way.
func WaitReady(ctx context.Context, host string, port int) error {
	url := fmt.Sprintf("ws://%s:%d/_stcore/stream", host, port)

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription("waiting for app"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)
	defer func() { _ = bar.Finish() }()

	dialer := websocket.Dialer{
		HandshakeTimeout: 2 * time.Second,
	}

	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		conn, resp, err := dialer.DialContext(ctx, url, nil)
		if err == nil {
			_ = conn.Close()
			return nil
		}
		if resp != nil && resp.StatusCode == http.StatusForbidden {
			// Server is up but refuses websocket upgrades (CORS/XSRF config);
			// good enough as a liveness signal.
			return nil
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("app did not become ready: %w", ctx.Err())
		case <-ticker.C:
			_ = bar.Add(1)
		}
	}
}
