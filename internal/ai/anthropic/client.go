package anthropic

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/takuya-okamoto/zumenkan/constants"
	"github.com/takuya-okamoto/zumenkan/internal/ai"
	"github.com/takuya-okamoto/zumenkan/internal/common"
)

const apiVersion = "2023-06-01"

var _ ai.Client = (*Client)(nil)

// DetectRotation asks the model how the page must be turned to read upright.
func (c *Client) DetectRotation(ctx context.Context, png []byte) (ai.RotationJudgment, error) {
	var out ai.RotationJudgment
	raw, err := c.askJSON(ctx, "rotation", rotationPrompt, png, ai.RotationSchema())
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, &ai.MalformedResponseError{Detail: "decoding rotation judgment", Raw: raw, Cause: err}
	}
	return out, nil
}

// ExtractFields reads the title block. fieldNames constrains which field
// labels the model may answer with.
func (c *Client) ExtractFields(ctx context.Context, png []byte, fieldNames []string) ([]ai.FieldResult, error) {
	prompt := fieldsPrompt(fieldNames)
	raw, err := c.askJSON(ctx, "fields", prompt, png, ai.FieldsSchema(fieldNames))
	if err != nil {
		return nil, err
	}
	var out struct {
		Fields []ai.FieldResult `json:"fields"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &ai.MalformedResponseError{Detail: "decoding field results", Raw: raw, Cause: err}
	}
	return out.Fields, nil
}

// Classify decides whether the page is a part, unit or assembly drawing.
func (c *Client) Classify(ctx context.Context, png []byte) (ai.ClassificationResult, error) {
	var out ai.ClassificationResult
	classes := constants.ClassificationStrings()
	raw, err := c.askJSON(ctx, "classification", classificationPrompt(classes), png, ai.ClassificationSchema(classes))
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, &ai.MalformedResponseError{Detail: "decoding classification", Raw: raw, Cause: err}
	}
	return out, nil
}

func (c *Client) ExtractBalloons(ctx context.Context, png []byte) ([]ai.BalloonResult, error) {
	raw, err := c.askJSON(ctx, "balloons", balloonsPrompt, png, ai.BalloonsSchema())
	if err != nil {
		return nil, err
	}
	var out struct {
		Balloons []ai.BalloonResult `json:"balloons"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &ai.MalformedResponseError{Detail: "decoding balloon results", Raw: raw, Cause: err}
	}
	return out.Balloons, nil
}

func (c *Client) ExtractRevisions(ctx context.Context, png []byte) ([]ai.RevisionResult, error) {
	raw, err := c.askJSON(ctx, "revisions", revisionsPrompt, png, ai.RevisionsSchema())
	if err != nil {
		return nil, err
	}
	var out struct {
		Revisions []ai.RevisionResult `json:"revisions"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &ai.MalformedResponseError{Detail: "decoding revision results", Raw: raw, Cause: err}
	}
	return out.Revisions, nil
}

func (c *Client) Summarize(ctx context.Context, png []byte, sc ai.SummaryContext) (ai.SummaryResult, error) {
	var out ai.SummaryResult
	raw, err := c.askJSON(ctx, "summary", summaryPrompt(sc), png, ai.SummarySchema())
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, &ai.MalformedResponseError{Detail: "decoding summary", Raw: raw, Cause: err}
	}
	return out, nil
}

// askJSON sends one vision request, pulls the JSON block out of the answer
// and validates it against the stage schema. Transient provider failures are
// retried inside.
func (c *Client) askJSON(ctx context.Context, op, prompt string, png []byte, schema map[string]any) ([]byte, error) {
	rid := common.RequestIDFromContext(ctx)
	if rid == "" {
		rid = uuid.New().String()
	}
	start := time.Now()

	c.log.Info("ai.request",
		"req_id", rid,
		"op", op,
		"model", c.cfg.Model,
		"image_bytes", len(png),
	)

	answer, err := ai.Do(ctx, c.cfg.Retry, c.log, op, func(ctx context.Context) (string, error) {
		return c.complete(ctx, prompt, png)
	})
	if err != nil {
		c.log.Error("ai.request_failed",
			"req_id", rid, "op", op, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}

	raw, err := ai.ExtractJSONBlock(answer)
	if err != nil {
		c.log.Error("ai.answer_not_json", "req_id", rid, "op", op, "error", err)
		return nil, err
	}
	if err := ai.ValidateJSONAgainstSchema(schema, raw); err != nil {
		c.log.Error("ai.schema_validation_failed",
			"req_id", rid, "op", op, "error", err, "content", string(raw),
		)
		return nil, &ai.MalformedResponseError{Detail: "schema validation failed", Raw: raw, Cause: err}
	}

	c.log.Info("ai.response",
		"req_id", rid,
		"op", op,
		"bytes", len(raw),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return raw, nil
}

// complete posts one messages call with the page image attached and returns
// the concatenated text blocks of the answer.
func (c *Client) complete(ctx context.Context, prompt string, png []byte) (string, error) {
	body := map[string]any{
		"model":       c.cfg.Model,
		"max_tokens":  c.cfg.MaxTokens,
		"temperature": c.cfg.Temperature,
		"messages": []map[string]any{
			{
				"role": "user",
				"content": []map[string]any{
					{
						"type": "image",
						"source": map[string]any{
							"type":       "base64",
							"media_type": "image/png",
							"data":       base64.StdEncoding.EncodeToString(png),
						},
					},
					{"type": "text", "text": prompt},
				},
			},
		},
	}

	b, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}
	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/messages"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.cfg.APIKey)
	req.Header.Set("anthropic-version", apiVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", &ai.TransientError{Cause: err}
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			c.log.Warn("ai response body close error", "error", err)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)
	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return "", &ai.AuthExpiredError{Status: resp.StatusCode, Body: string(raw)}
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return "", &ai.TransientError{Status: resp.StatusCode, Cause: fmt.Errorf("%s", strings.TrimSpace(string(raw)))}
	case resp.StatusCode/100 != 2:
		return "", fmt.Errorf("ai: status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var msg struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.Unmarshal(raw, &msg); err != nil {
		return "", &ai.MalformedResponseError{Detail: "decoding messages envelope", Raw: raw, Cause: err}
	}
	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return "", &ai.MalformedResponseError{Detail: "no text blocks in answer", Raw: raw}
	}
	return sb.String(), nil
}
