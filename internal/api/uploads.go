package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/cannadex/cannadex-go/internal/models"
)

// ProgressFunc receives upload progress as an integer percentage 0..100.
// Values are monotonically non-decreasing; the final value on success is
// always 100.
type ProgressFunc func(percent int)

// UploadAvatar replaces the caller's avatar and returns the updated user.
func (c *Client) UploadAvatar(ctx context.Context, filename string, r io.Reader, progress ProgressFunc) (*models.User, error) {
	body, err := c.upload(ctx, "/uploads/avatar", "avatar", filename, r, nil, progress)
	if err != nil {
		return nil, err
	}
	return unwrapPtr[models.User](body)
}

// UploadEncounterPhoto attaches a photo to an encounter and returns the
// stored photo URL.
func (c *Client) UploadEncounterPhoto(ctx context.Context, encounterID int64, filename string, r io.Reader, progress ProgressFunc) (string, error) {
	fields := map[string]string{"encounter_id": strconv.FormatInt(encounterID, 10)}
	body, err := c.upload(ctx, "/uploads/encounter_photos", "photo", filename, r, fields, progress)
	if err != nil {
		return "", err
	}
	data, err := unwrap[struct {
		URL string `json:"url"`
	}](body)
	if err != nil {
		return "", err
	}
	return data.URL, nil
}

// upload sends a multipart request through the same auth/connectivity/error
// pipeline as do, but without retries: a retried upload would rewind the
// progress callback, breaking its monotonicity contract.
func (c *Client) upload(ctx context.Context, path, field, filename string, r io.Reader, fields map[string]string, progress ProgressFunc) ([]byte, error) {
	if !c.online.Online(ctx) {
		return nil, &NetworkError{Err: errOffline}
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return nil, fmt.Errorf("write form field: %w", err)
		}
	}
	fw, err := mw.CreateFormFile(field, filename)
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(fw, r); err != nil {
		return nil, fmt.Errorf("read upload payload: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("finish multipart body: %w", err)
	}

	actx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	pr := &progressReader{r: bytes.NewReader(buf.Bytes()), total: int64(buf.Len()), cb: progress}
	req, err := http.NewRequestWithContext(actx, http.MethodPost, c.baseURL+path, pr)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.ContentLength = int64(buf.Len())
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token, err := c.sessions.Token(); err == nil && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	out, err := c.normalize(ctx, resp.StatusCode, respBody)
	if err != nil {
		return nil, err
	}
	pr.finish()
	return out, nil
}

// progressReader reports transport-level read progress as percentages,
// suppressing any regression below the last reported value.
type progressReader struct {
	r     io.Reader
	total int64
	read  int64
	last  int
	cb    ProgressFunc
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 && p.cb != nil && p.total > 0 {
		p.read += int64(n)
		pct := int(p.read * 100 / p.total)
		if pct > 100 {
			pct = 100
		}
		if pct > p.last {
			p.last = pct
			p.cb(pct)
		}
	}
	return n, err
}

// finish emits the terminal 100 if the transport never reported it.
func (p *progressReader) finish() {
	if p.cb != nil && p.last < 100 {
		p.last = 100
		p.cb(100)
	}
}
