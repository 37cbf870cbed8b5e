package summarize

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	endpointPath = "/summarize"
	formField    = "audio"
)

type errorBody struct {
	Message string `json:"message"`
}

// Summarize uploads file as multipart field "audio" to <base>/summarize.
// Each call gets its own timeout; a call that exceeds it fails with ErrTimeout.
func (c *implClient) Summarize(ctx context.Context, file File) (Result, error) {
	var result Result

	body, contentType, err := encodeForm(file)
	if err != nil {
		return result, err
	}

	reqID, err := uuid.NewV7()
	if err != nil {
		return result, fmt.Errorf("generate request id: %w", err)
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	url := strings.TrimRight(c.baseURL(), "/") + endpointPath
	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, url, body)
	if err != nil {
		return result, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", reqID.String())

	c.logger.Info(ctx, "Summarize request %s: %s (%s) -> %s", reqID, file.Name, ConvertSize(file.Size), url)
	startTime := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return result, c.requestError(ctx, reqCtx, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return result, c.requestError(ctx, reqCtx, err)
	}
	if int64(len(data)) > c.maxBody {
		c.logger.Warn(ctx, "Summarize request %s: response larger than %d bytes", reqID, c.maxBody)
		return result, fmt.Errorf("response body exceeds %d bytes", c.maxBody)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: errorMessage(data)}
		c.logger.Warn(ctx, "Summarize request %s failed with status %d: %s", reqID, resp.StatusCode, apiErr.Message)
		return result, apiErr
	}

	if err := json.Unmarshal(data, &result); err != nil {
		return Result{}, fmt.Errorf("decode response: %w", err)
	}

	c.logger.Info(ctx, "Summarize request %s done in %s", reqID, time.Since(startTime).Round(time.Millisecond))
	return result, nil
}

// requestError maps a transport failure caused by our own deadline to ErrTimeout.
// Cancellation by the caller is returned as is.
func (c *implClient) requestError(ctx, reqCtx context.Context, err error) error {
	if ctx.Err() == nil && errors.Is(reqCtx.Err(), context.DeadlineExceeded) {
		c.logger.Warn(ctx, "Summarize request timed out after %s", c.timeout)
		return fmt.Errorf("%w (after %s)", ErrTimeout, c.timeout)
	}
	return fmt.Errorf("send request: %w", err)
}

func encodeForm(file File) (io.Reader, string, error) {
	src, err := file.Open()
	if err != nil {
		return nil, "", fmt.Errorf("open audio file: %w", err)
	}
	defer src.Close()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile(formField, file.Name)
	if err != nil {
		return nil, "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, src); err != nil {
		return nil, "", fmt.Errorf("copy audio file: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close form: %w", err)
	}

	return &buf, w.FormDataContentType(), nil
}

func errorMessage(data []byte) string {
	var body errorBody
	if err := json.Unmarshal(data, &body); err != nil {
		return DefaultErrorMessage
	}
	if msg := strings.TrimSpace(body.Message); msg != "" {
		return msg
	}
	return DefaultErrorMessage
}
