// Package social implements the Facebook Graph page-posting client.
package social

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"plastic-world/internal/checkout"
	"plastic-world/internal/model"
	"plastic-world/internal/settings"

	"github.com/rs/zerolog"
)

// PageInfo is the result of a successful connection test.
type PageInfo struct {
	Name     string `json:"name"`
	FanCount int    `json:"fan_count"`
}

// graphError is the Graph API's error envelope.
type graphError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Client posts captioned product photos to the shop's Facebook page.
// Credentials are read from the settings store on every call so an admin
// can update them without a restart.
type Client struct {
	endpoint string
	store    *settings.Store
	http     *http.Client
	logger   zerolog.Logger
}

// NewClient creates a Graph client against the given endpoint, e.g.
// "https://graph.facebook.com/v19.0".
func NewClient(endpoint string, store *settings.Store, logger zerolog.Logger) *Client {
	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		store:    store,
		http:     http.DefaultClient,
		logger:   logger.With().Str("component", "facebook-client").Logger(),
	}
}

// TestConnection validates the stored credentials by fetching the page's
// name and follower count.
func (c *Client) TestConnection(ctx context.Context) (*PageInfo, error) {
	creds, err := c.store.Load()
	if err != nil {
		return nil, err
	}
	if !creds.Configured() {
		return nil, fmt.Errorf("page credentials are not configured")
	}

	reqURL := fmt.Sprintf("%s/%s?fields=name,fan_count&access_token=%s",
		c.endpoint, url.PathEscape(creds.PageID), url.QueryEscape(creds.AccessToken))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build page request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("page_id", creds.PageID).Msg("page lookup failed")
		return nil, fmt.Errorf("page lookup failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read page response: %w", err)
	}

	if msg := upstreamError(body); msg != "" {
		c.logger.Warn().Str("page_id", creds.PageID).Str("error", msg).Msg("page lookup rejected")
		return nil, fmt.Errorf("%s", msg)
	}

	var info PageInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, fmt.Errorf("failed to parse page response: %w", err)
	}

	c.logger.Info().
		Str("page_id", creds.PageID).
		Str("page_name", info.Name).
		Int("fan_count", info.FanCount).
		Msg("page connection verified")

	return &info, nil
}

// PostPhoto publishes the product as a captioned photo post and returns
// the remote post id. Inline images are attached as a file part named
// "source"; remote images are passed as a "url" field. Exactly one of the
// two is ever sent.
func (c *Client) PostPhoto(ctx context.Context, product model.Product) (string, error) {
	creds, err := c.store.Load()
	if err != nil {
		return "", err
	}
	if !creds.Configured() {
		return "", fmt.Errorf("page credentials are not configured")
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if err := writer.WriteField("caption", Caption(product)); err != nil {
		return "", fmt.Errorf("failed to build post request: %w", err)
	}
	if err := writer.WriteField("access_token", creds.AccessToken); err != nil {
		return "", fmt.Errorf("failed to build post request: %w", err)
	}

	switch product.Image.Kind {
	case model.ImageInline:
		part, err := writer.CreateFormFile("source", "photo")
		if err != nil {
			return "", fmt.Errorf("failed to build post request: %w", err)
		}
		if _, err := part.Write(product.Image.Data); err != nil {
			return "", fmt.Errorf("failed to attach image: %w", err)
		}
	default:
		if err := writer.WriteField("url", product.Image.URL); err != nil {
			return "", fmt.Errorf("failed to build post request: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to build post request: %w", err)
	}

	reqURL := fmt.Sprintf("%s/%s/photos", c.endpoint, url.PathEscape(creds.PageID))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, &buf)
	if err != nil {
		return "", fmt.Errorf("failed to build post request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("page_id", creds.PageID).Msg("photo post failed")
		return "", fmt.Errorf("photo post failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read post response: %w", err)
	}

	if msg := upstreamError(body); msg != "" {
		c.logger.Warn().
			Str("page_id", creds.PageID).
			Str("product_id", product.ID).
			Str("error", msg).
			Msg("photo post rejected")
		return "", fmt.Errorf("%s", msg)
	}

	var result struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to parse post response: %w", err)
	}
	if result.ID == "" {
		return "", fmt.Errorf("post response carried no id")
	}

	c.logger.Info().
		Str("page_id", creds.PageID).
		Str("product_id", product.ID).
		Str("post_id", result.ID).
		Msg("product posted to page")

	return result.ID, nil
}

// Caption renders the product announcement used as the photo caption.
func Caption(product model.Product) string {
	return fmt.Sprintf("🆕 وصل حديثاً: %s\nالسعر: %s لكل %s\nللطلب والاستفسار تواصلوا معنا.",
		product.Name, checkout.FormatTotal(product.Price), product.UnitType)
}

// upstreamError extracts the Graph error message, if the body carries one.
func upstreamError(body []byte) string {
	var envelope graphError
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}
	return envelope.Error.Message
}
