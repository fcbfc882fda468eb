package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/oauth2/clientcredentials"
)

const graphBase = "https://graph.microsoft.com/v1.0"

// GraphSender sends mail through the Microsoft Graph sendMail endpoint
// using an Azure AD app registration (client-credentials flow). The
// oauth2 client caches and refreshes the token transparently.
type GraphSender struct {
	from   string
	client *http.Client
}

// NewGraphSender builds a sender for the given tenant/app credentials.
// Mail is sent from the fromAddress mailbox.
func NewGraphSender(tenantID, clientID, clientSecret, fromAddress string) *GraphSender {
	cfg := clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     fmt.Sprintf("https://login.microsoftonline.com/%s/oauth2/v2.0/token", tenantID),
		Scopes:       []string{"https://graph.microsoft.com/.default"},
	}
	client := cfg.Client(context.Background())
	client.Timeout = 15 * time.Second
	return &GraphSender{from: fromAddress, client: client}
}

type graphMessage struct {
	Subject      string           `json:"subject"`
	Body         graphBody        `json:"body"`
	ToRecipients []graphRecipient `json:"toRecipients"`
}

type graphBody struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

type graphRecipient struct {
	EmailAddress graphAddress `json:"emailAddress"`
}

type graphAddress struct {
	Address string `json:"address"`
}

// Send posts one sendMail request. Graph answers 202 Accepted on success.
func (g *GraphSender) Send(ctx context.Context, to, subject, htmlBody string) error {
	payload := struct {
		Message         graphMessage `json:"message"`
		SaveToSentItems bool         `json:"saveToSentItems"`
	}{
		Message: graphMessage{
			Subject:      subject,
			Body:         graphBody{ContentType: "HTML", Content: htmlBody},
			ToRecipients: []graphRecipient{{EmailAddress: graphAddress{Address: to}}},
		},
		SaveToSentItems: true,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("graph mail: encode: %w", err)
	}

	url := fmt.Sprintf("%s/users/%s/sendMail", graphBase, g.from)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("graph mail: request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("graph mail: send to %s: %w", to, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("graph mail: send to %s: status %d: %s", to, resp.StatusCode, detail)
	}
	return nil
}
