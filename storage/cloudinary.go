// Package storage is the object-storage collaborator. The core hands it an
// image payload and stores the returned URL/reference opaquely; image bytes
// are never interpreted here or anywhere else.
package storage

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"plume/config"
	"plume/models"
)

// UploadResult is the upload+URL contract: a serving URL plus the provider's
// reference for the stored object.
type UploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

type Uploader interface {
	Upload(ctx context.Context, data []byte, mimeType string) (*UploadResult, error)
}

// CloudinaryUploader uploads images through Cloudinary's signed REST API.
type CloudinaryUploader struct {
	cloudName string
	apiKey    string
	apiSecret string
	folder    string
	client    *http.Client
	now       func() time.Time
}

func NewCloudinaryUploader(cfg *config.Config) *CloudinaryUploader {
	return &CloudinaryUploader{
		cloudName: cfg.CloudinaryCloudName,
		apiKey:    cfg.CloudinaryAPIKey,
		apiSecret: cfg.CloudinaryAPISecret,
		folder:    cfg.CloudinaryFolder,
		client:    &http.Client{Timeout: 30 * time.Second},
		now:       time.Now,
	}
}

// Configured reports whether provider credentials are present.
func (u *CloudinaryUploader) Configured() bool {
	return u.cloudName != "" && u.apiKey != "" && u.apiSecret != ""
}

func (u *CloudinaryUploader) Upload(ctx context.Context, data []byte, mimeType string) (*UploadResult, error) {
	if !u.Configured() {
		return nil, fmt.Errorf("%w: image storage not configured", models.ErrUpstream)
	}

	timestamp := strconv.FormatInt(u.now().Unix(), 10)
	signature := u.sign(timestamp)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", "upload")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrUpstream, err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrUpstream, err)
	}
	_ = w.WriteField("api_key", u.apiKey)
	_ = w.WriteField("timestamp", timestamp)
	_ = w.WriteField("folder", u.folder)
	_ = w.WriteField("signature", signature)
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrUpstream, err)
	}

	endpoint := fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/upload", u.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrUpstream, err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := u.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: image upload failed", models.ErrUpstream)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: image upload failed", models.ErrUpstream)
	}

	var parsed struct {
		SecureURL string `json:"secure_url"`
		PublicID  string `json:"public_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: image upload failed", models.ErrUpstream)
	}

	return &UploadResult{URL: parsed.SecureURL, PublicID: parsed.PublicID}, nil
}

// sign computes Cloudinary's request signature: sha1 of the sorted upload
// parameters concatenated with the API secret.
func (u *CloudinaryUploader) sign(timestamp string) string {
	toSign := fmt.Sprintf("folder=%s&timestamp=%s%s", u.folder, timestamp, u.apiSecret)
	sum := sha1.Sum([]byte(toSign))
	return hex.EncodeToString(sum[:])
}
