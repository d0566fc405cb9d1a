package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/examtools/questionbank/constants"
	"github.com/examtools/questionbank/internal/classify"
)

// classificationSchema constrains the model's response to exactly the three
// label fields.
var classificationSchema = jsonschema.MustCompileString("classification.json", `{
	"type": "object",
	"additionalProperties": false,
	"properties": {
		"subject":  {"type": "string", "minLength": 1},
		"topic":    {"type": "string", "minLength": 1},
		"subtopic": {"type": "string", "minLength": 1}
	},
	"required": ["subject", "topic", "subtopic"]
}`)

type labels struct {
	Subject  string `json:"subject"`
	Topic    string `json:"topic"`
	Subtopic string `json:"subtopic"`
}

// Classify implements classify.Classifier using text-only chat/completions.
// Every failure mode maps to a Result outcome; nothing here is fatal to the
// pipeline.
func (c *Client) Classify(ctx context.Context, text string) classify.Result {
	rid := uuid.New().String()
	start := time.Now()
	prompt := classify.TruncatePrompt(text)

	c.logger.Info("classify.fallback.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"text_len", len(prompt),
	)

	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": "You classify exam MCQ text. Return ONLY minified JSON with keys subject, topic, subtopic."},
			{"role": "user", "content": "Classify the nursing exam MCQ text into JSON with keys subject, topic, subtopic. Text: " + prompt},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, err := c.post(ctx, endpoint, body)
	if err != nil {
		c.logger.Warn("classify.fallback.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return classify.Result{Outcome: classify.TransportError, Err: err}
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		return c.transportError(rid, start, fmt.Errorf("decode openai response: %w", err))
	}
	if len(cc.Choices) == 0 {
		return c.transportError(rid, start, fmt.Errorf("no choices in openai response"))
	}
	content := strings.TrimSpace(cc.Choices[0].Message.Content)

	var v any
	if err := json.Unmarshal([]byte(content), &v); err != nil {
		return c.transportError(rid, start, fmt.Errorf("decode classification: %w", err))
	}
	if err := classificationSchema.Validate(v); err != nil {
		return c.transportError(rid, start, fmt.Errorf("schema validation failed: %w", err))
	}
	var out labels
	if err := json.Unmarshal([]byte(content), &out); err != nil {
		return c.transportError(rid, start, fmt.Errorf("unmarshal labels: %w", err))
	}

	if out.Subject == "" || out.Subject == constants.SubjectUnknown {
		c.logger.Info("classify.fallback.not_found",
			"req_id", rid,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return classify.Result{Outcome: classify.NotFound}
	}

	c.logger.Info("classify.fallback.ok",
		"req_id", rid,
		"subject", out.Subject,
		"topic", out.Topic,
		"subtopic", out.Subtopic,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return classify.Result{
		Subject:  out.Subject,
		Topic:    out.Topic,
		Subtopic: out.Subtopic,
		Outcome:  classify.Matched,
	}
}

func (c *Client) transportError(rid string, start time.Time, err error) classify.Result {
	c.logger.Warn("classify.fallback.malformed",
		"req_id", rid, "error", err,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return classify.Result{Outcome: classify.TransportError, Err: err}
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai http error: %w", err)
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			c.logger.Warn("openai response body close error", "error", err)
		}
	}(resp.Body)

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, fmt.Errorf("read openai response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("openai status %d: %s", resp.StatusCode, buf.String())
	}
	return buf.Bytes(), nil
}
