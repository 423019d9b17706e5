// Package upload pushes admin-form images to the image host through
// Cloudinary's unsigned upload endpoint and hands back the hosted URLs.
package upload

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

type Uploader interface {
	Upload(filename string, content io.Reader) (string, error)
}

type cloudinary struct {
	URL          string
	UploadPreset string
	HTTPClient   http.Client
}

func NewUploader(apiURL, cloudName, uploadPreset string) Uploader {
	return &cloudinary{
		URL:          fmt.Sprintf("%s/%s/image/upload", apiURL, cloudName),
		UploadPreset: uploadPreset,
	}
}

func (c *cloudinary) Upload(filename string, content io.Reader) (string, error) {
	var body bytes.Buffer
	form := multipart.NewWriter(&body)

	part, err := form.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("upload: error creating form file: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return "", fmt.Errorf("upload: error copying file content: %w", err)
	}
	if err := form.WriteField("upload_preset", c.UploadPreset); err != nil {
		return "", fmt.Errorf("upload: error writing preset field: %w", err)
	}
	if err := form.Close(); err != nil {
		return "", fmt.Errorf("upload: error closing form: %w", err)
	}

	statusCode, hostedURL, err := c.post(form.FormDataContentType(), &body)
	if err != nil {
		return "", fmt.Errorf("upload: error uploading %s: status code: %d: err: %w", filename, statusCode, err)
	}
	return hostedURL, nil
}

func (c *cloudinary) post(contentType string, body io.Reader) (int, string, error) {
	req, err := http.NewRequest(http.MethodPost, c.URL, body)
	if err != nil {
		return 0, "", err
	}
	req.Header.Set("Content-Type", contentType)

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return 0, "", err
	}
	defer res.Body.Close()

	if res.StatusCode >= 200 && res.StatusCode < 300 {
		bodyBytes, err := io.ReadAll(res.Body)
		if err != nil {
			return res.StatusCode, "", fmt.Errorf("post: error reading upload body: %w", err)
		}

		var data map[string]interface{}
		if err := json.Unmarshal(bodyBytes, &data); err != nil {
			return res.StatusCode, "", fmt.Errorf("post: error unmarshalling upload body: %w", err)
		}

		hostedURL, ok := data["secure_url"].(string)
		if !ok {
			return res.StatusCode, "", fmt.Errorf("post: no secure_url in response body")
		}
		return res.StatusCode, hostedURL, nil
	}

	return res.StatusCode, "", fmt.Errorf("post: image host rejected the upload")
}
