package webhookpublisher

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Publish builds, signs and posts the event. It returns the resolved type.
func (c Client) Publish(ctx context.Context, e Event) (string, error) {
	build, contentType := BuildEventBody, "application/json"
	if c.CloudEvents {
		build, contentType = BuildCloudEvent, "application/cloudevents+json"
	}
	body, resolvedType, err := build(e)
	if err != nil {
		return "", err
	}
	if err := c.publishBody(ctx, body, contentType); err != nil {
		return "", err
	}
	return resolvedType, nil
}

func (c Client) publishBody(ctx context.Context, body []byte, contentType string) error {
	endpoint := strings.TrimSpace(c.Endpoint)
	if endpoint == "" {
		return fmt.Errorf("endpoint is required")
	}

	httpClient := c.HTTPClient
	if httpClient == nil {
		timeout := c.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	requestURL := strings.TrimRight(endpoint, "/") + "/webhooks/propertyfinder"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if secret := strings.TrimSpace(c.Secret); secret != "" {
		req.Header.Set("X-Signature", "sha256="+sign(body, secret))
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("webhook rejected: status=%s body=%s", resp.Status, strings.TrimSpace(string(payload)))
	}
	return nil
}

func sign(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}
