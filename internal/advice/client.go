// Package advice forwards customer questions to a conversational
// completion API, grounded with a summary of the current catalogue.
package advice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"plastic-world/internal/model"

	"github.com/rs/zerolog"
)

// Fallback is returned to the shopper whenever the upstream call fails or
// comes back empty.
const Fallback = "لم أستطع معالجة طلبك حالياً، حاول مرة أخرى."

// systemInstruction is the fixed persona for every request.
const systemInstruction = "أنت خبير في المنتجات البلاستيكية وتجارة الجملة في العراق. تحدث بلهجة عراقية محببة ومهنية. ركز على فوائد الشراء بالجملة وخدمة التوصيل المجاني في الكوت."

// Config holds the upstream endpoint parameters.
type Config struct {
	Endpoint    string
	APIKey      string
	Model       string
	Temperature float64
}

// Client issues single generateContent requests. No retry, no streaming.
type Client struct {
	cfg    Config
	http   *http.Client
	logger zerolog.Logger
}

// NewClient creates an advice client.
func NewClient(cfg Config, logger zerolog.Logger) *Client {
	return &Client{
		cfg:    cfg,
		http:   http.DefaultClient,
		logger: logger.With().Str("component", "advice-client").Logger(),
	}
}

// request/response mirror the generateContent wire format.
type generateRequest struct {
	Contents          []content         `json:"contents"`
	SystemInstruction *content          `json:"systemInstruction,omitempty"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature float64 `json:"temperature"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// GetAdvice sends the shopper's prompt plus the catalogue summary and
// returns the completion text verbatim. The fallback message is returned
// in place of an error or an empty completion; callers never fail.
func (c *Client) GetAdvice(ctx context.Context, prompt string, products []model.Product) string {
	combined := fmt.Sprintf("أنت مساعد ذكي لمتجر \"عالم بلاستك\" في الكوت. ساعد الزبون بناءً على المنتجات المتوفرة: %s. الطلب: %s",
		CatalogueSummary(products), prompt)

	reqBody := generateRequest{
		Contents:          []content{{Parts: []part{{Text: combined}}}},
		SystemInstruction: &content{Parts: []part{{Text: systemInstruction}}},
		GenerationConfig:  &generationConfig{Temperature: c.cfg.Temperature},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		c.logger.Error().Err(err).Msg("failed to encode advice request")
		return Fallback
	}

	reqURL := fmt.Sprintf("%s/models/%s:generateContent", strings.TrimRight(c.cfg.Endpoint, "/"), c.cfg.Model)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
	if err != nil {
		c.logger.Error().Err(err).Msg("failed to build advice request")
		return Fallback
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Msg("advice request failed")
		return Fallback
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error().Err(err).Msg("failed to read advice response")
		return Fallback
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn().Int("status", resp.StatusCode).Msg("advice request rejected")
		return Fallback
	}

	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		c.logger.Error().Err(err).Msg("failed to parse advice response")
		return Fallback
	}

	text := completionText(parsed)
	if strings.TrimSpace(text) == "" {
		c.logger.Warn().Msg("advice response was empty")
		return Fallback
	}

	c.logger.Debug().Int("response_length", len(text)).Msg("advice received")
	return text
}

// CatalogueSummary flattens the catalogue into the compact one-line form
// sent with every prompt.
func CatalogueSummary(products []model.Product) string {
	lines := make([]string, len(products))
	for i, p := range products {
		lines[i] = fmt.Sprintf("%s (سعر: %d, جملة: %d, متاح: %d %s)",
			p.Name, p.Price, p.WholesalePrice, p.Quantity, p.UnitType)
	}
	return strings.Join(lines, ", ")
}

func completionText(resp generateResponse) string {
	if len(resp.Candidates) == 0 {
		return ""
	}
	var b strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	return b.String()
}
