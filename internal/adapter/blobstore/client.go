package blobstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"
)

// ErrObjectNotFound indicates the blob store has no object under the key.
var ErrObjectNotFound = errors.New("object not found")

// ObjectInfo describes a stored object.
type ObjectInfo struct {
	Key         string
	ContentType string
	Size        int64
}

// Client exposes operations against the external blob store.
type Client interface {
	Stat(ctx context.Context, key string) (*ObjectInfo, error)
	Delete(ctx context.Context, key string) error
}

// HTTPClient implements Client via the blob store HTTP API.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPClient creates HTTP blob store client with default timeout.
func NewHTTPClient(baseURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse blob store url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("blob store url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Stat verifies an object exists and returns its stored metadata.
func (c *HTTPClient) Stat(ctx context.Context, key string) (*ObjectInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.objectURL(key), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		size := int64(0)
		if cl := resp.Header.Get("Content-Length"); cl != "" {
			if parsed, err := strconv.ParseInt(cl, 10, 64); err == nil {
				size = parsed
			}
		}
		return &ObjectInfo{
			Key:         key,
			ContentType: resp.Header.Get("Content-Type"),
			Size:        size,
		}, nil
	case http.StatusNotFound:
		return nil, ErrObjectNotFound
	default:
		c.logger.Error("blob store stat failed", slog.String("key", key), slog.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("blob store error: %s", resp.Status)
	}
}

// Delete removes an object. A missing object is treated as already deleted.
func (c *HTTPClient) Delete(ctx context.Context, key string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.objectURL(key), nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent, http.StatusNotFound:
		return nil
	default:
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("blob store delete failed", slog.String("key", key), slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return fmt.Errorf("blob store error: %s", resp.Status)
	}
}

func (c *HTTPClient) objectURL(key string) string {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/objects/", key)
	return endpoint.String()
}
