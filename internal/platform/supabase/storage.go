package supabase

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
)

// Upload writes data to bucket under key with the declared content type.
// Upsert is disabled: uploading to an existing key fails instead of silently
// replacing the object.
func (c *Client) Upload(ctx context.Context, bucket, key string, data []byte, contentType string) error {
	u := fmt.Sprintf("%s/object/%s/%s", c.storageURL, bucket, key)

	req, err := c.newRequest(ctx, http.MethodPost, u, bytes.NewReader(data))
	if err != nil {
		return err
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "false")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("supabase: upload to %s/%s: %w", bucket, key, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("supabase: upload to %s/%s failed (status %d): %s", bucket, key, resp.StatusCode, string(body))
	}
	return nil
}

// Remove deletes the object at key. Removing a missing object is not an
// error, which keeps rollback idempotent.
func (c *Client) Remove(ctx context.Context, bucket, key string) error {
	u := fmt.Sprintf("%s/object/%s/%s", c.storageURL, bucket, key)

	req, err := c.newRequest(ctx, http.MethodDelete, u, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("supabase: remove %s/%s: %w", bucket, key, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 && resp.StatusCode != http.StatusNotFound {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("supabase: remove %s/%s failed (status %d): %s", bucket, key, resp.StatusCode, string(body))
	}
	return nil
}
