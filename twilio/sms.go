package twilio

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Sender dispatches one SMS and returns the provider's message id.
type Sender interface {
	Send(to, message string) (string, error)
}

type smsSender struct {
	AccountSID string
	AuthToken  string
	URL        string
	From       string
	HTTPClient http.Client
}

func NewSender(acSID, authToken, apiURL, from string) Sender {
	return &smsSender{
		AccountSID: acSID,
		AuthToken:  authToken,
		URL:        fmt.Sprintf("%s/%s/Messages.json", apiURL, acSID),
		From:       from,
	}
}

func (s *smsSender) Send(to, message string) (string, error) {
	v := url.Values{}
	v.Set("To", to)
	v.Set("From", s.From)
	v.Set("Body", message)

	statusCode, sid, err := s.post(v)
	if err != nil {
		return "", fmt.Errorf("send: error sending sms: status code: %d: err: %w", statusCode, err)
	}
	return sid, nil
}

func (s *smsSender) post(values url.Values) (int, string, error) {
	req, err := http.NewRequest(http.MethodPost, s.URL, strings.NewReader(values.Encode()))
	if err != nil {
		return 0, "", err
	}

	req.SetBasicAuth(s.AccountSID, s.AuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := s.HTTPClient.Do(req)
	if err != nil {
		return 0, "", err
	}
	defer res.Body.Close()

	if res.StatusCode >= 200 && res.StatusCode < 300 {
		bodyBytes, err := io.ReadAll(res.Body)
		if err != nil {
			return res.StatusCode, "", fmt.Errorf("post: error reading sms body: %w", err)
		}

		var data map[string]interface{}
		if err := json.Unmarshal(bodyBytes, &data); err != nil {
			return res.StatusCode, "", fmt.Errorf("post: error unmarshalling response body: %w", err)
		}

		sid, ok := data["sid"].(string)
		if !ok {
			return res.StatusCode, "", fmt.Errorf("post: no sid in response body")
		}
		return res.StatusCode, sid, nil
	}

	return res.StatusCode, "", fmt.Errorf("post: provider rejected the message")
}
