// Package imghost uploads room photos to the ImgBB hosting API and hands
// back the public URL stored alongside the room.
package imghost

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"paradise-inn/internal/pkg/config"
	"paradise-inn/internal/pkg/errs"
	"paradise-inn/internal/usecase"
)

// MaxImageBytes caps uploads at 5 MiB before any network round trip.
const MaxImageBytes = 5 * 1024 * 1024

var (
	ErrImageTooLarge = errors.New("image exceeds the maximum upload size")
	ErrEmptyImage    = errors.New("image data is empty")
	ErrUploadFailed  = errors.New("image host rejected the upload")
)

type Client struct {
	apiKey     string
	uploadURL  string
	httpClient *http.Client
}

func NewClient(cfg config.ImgBBConfig) usecase.ImageHost {
	return &Client{
		apiKey:    cfg.APIKey,
		uploadURL: cfg.UploadURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

func (c *Client) Upload(ctx context.Context, data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyImage
	}
	if len(data) > MaxImageBytes {
		return "", ErrImageTooLarge
	}

	form := url.Values{}
	form.Set("key", c.apiKey)
	form.Set("image", base64.StdEncoding.EncodeToString(data))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.uploadURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", errs.Wrap(err, "failed to build upload request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errs.Wrap(err, "failed to reach image host")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errs.Wrap(err, "failed to read upload response")
	}

	if resp.StatusCode != http.StatusOK {
		return "", errs.Wrapf(ErrUploadFailed, "unexpected status %d: %s", resp.StatusCode, string(body))
	}

	var parsed uploadResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", errs.Wrap(err, "failed to decode upload response")
	}
	if !parsed.Success || parsed.Data.URL == "" {
		return "", errs.Wrapf(ErrUploadFailed, "upload not accepted: %s", string(body))
	}

	return parsed.Data.URL, nil
}

type uploadResponse struct {
	Success bool `json:"success"`
	Data    struct {
		URL string `json:"url"`
	} `json:"data"`
}
