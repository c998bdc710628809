package upstream

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rimedu/resultats-portal-api/internal/models"
	appErrors "github.com/rimedu/resultats-portal-api/pkg/errors"
)

// Login exchanges credentials for a bearer token (form-encoded, as the
// upstream auth endpoint expects).
func (c *Client) Login(ctx context.Context, username, password string) (*models.AuthToken, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	var token models.AuthToken
	if err := c.submitForm(ctx, http.MethodPost, "/auth/login", "", form, &token); err != nil {
		return nil, err
	}
	return &token, nil
}

// UploadResults submits a bulk result file for a session as multipart
// form data and returns the upstream task handle.
func (c *Client) UploadResults(ctx context.Context, token string, sessionID int, filename string, file io.Reader) (*models.UploadTask, error) {
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "build multipart body")
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "copy upload file")
	}
	if err := writer.WriteField("session_id", strconv.Itoa(sessionID)); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "write session field")
	}
	if err := writer.Close(); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "finalise multipart body")
	}

	var task models.UploadTask
	req := request{
		method:      http.MethodPost,
		path:        "/admin/upload/",
		token:       token,
		body:        buf,
		contentType: writer.FormDataContentType(),
	}
	if err := c.do(ctx, req, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// UploadStatus polls one progress snapshot of a running upload.
func (c *Client) UploadStatus(ctx context.Context, token, taskID string) (*models.UploadStatus, error) {
	var status models.UploadStatus
	if err := c.get(ctx, "/admin/upload/"+taskID+"/status/", nil, token, &status); err != nil {
		return nil, err
	}
	if status.TaskID == "" {
		status.TaskID = taskID
	}
	return &status, nil
}

// CreateSession creates an exam session (form-encoded).
func (c *Client) CreateSession(ctx context.Context, token string, year int, examType, sessionName string) (*models.Session, error) {
	form := url.Values{}
	form.Set("year", strconv.Itoa(year))
	form.Set("exam_type", examType)
	form.Set("session_name", sessionName)

	var session models.Session
	if err := c.submitForm(ctx, http.MethodPost, "/admin/sessions", token, form, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// PublishSession toggles a session's publication flag.
func (c *Client) PublishSession(ctx context.Context, token string, sessionID int, isPublished bool) (*models.Session, error) {
	form := url.Values{}
	form.Set("is_published", strconv.FormatBool(isPublished))

	var session models.Session
	path := "/admin/sessions/" + strconv.Itoa(sessionID) + "/publish"
	if err := c.submitForm(ctx, http.MethodPatch, path, token, form, &session); err != nil {
		return nil, err
	}
	return &session, nil
}
