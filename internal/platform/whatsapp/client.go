package whatsapp

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	cfgpkg "github.com/gauswarn/storefront/pkg/config"
)

const (
	defaultBaseURL = "https://bhashsms.com/api/sendmsg.php"
	requestTimeout = 5 * time.Second
)

// Client sends templated WhatsApp texts through the bhashsms gateway. The
// gateway is GET-based with credentials in the query string.
type Client struct {
	user    string
	pass    string
	sender  string
	baseURL string
	http    *http.Client
}

func NewClient(cfg *cfgpkg.Config) *Client {
	baseURL := cfg.WhatsApp.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		user:    cfg.WhatsApp.User,
		pass:    cfg.WhatsApp.Pass,
		sender:  cfg.WhatsApp.Sender,
		baseURL: baseURL,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// Send delivers one message to a mobile number. Callers treat failures as
// advisory; this client only reports them.
func (c *Client) Send(ctx context.Context, mobile, text string) error {
	q := url.Values{}
	q.Set("user", c.user)
	q.Set("pass", c.pass)
	q.Set("sender", c.sender)
	q.Set("phone", mobile)
	q.Set("text", text)
	q.Set("priority", "wa")
	q.Set("stype", "normal")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("gateway status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
