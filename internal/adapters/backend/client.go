package backend

// Package backend implements the HTTP client for the activities REST
// backend. All requests are context-aware; failures map onto the
// internal/errors taxonomy so callers can distinguish transport,
// authorization, and validation failures.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mergington/activities-ui/internal/domain/model"
	apperrors "github.com/mergington/activities-ui/internal/errors"
	"github.com/mergington/activities-ui/internal/ports"
)

// Config captures the subset of backend client behaviour we need.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Client  *http.Client
}

// Client talks to the activities backend. It holds no state beyond the
// connection settings; credentials travel per call.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient builds a backend client. Callers should pass a validated config.
func NewClient(cfg Config) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("backend base url is required")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("parse backend base url: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	hc := cfg.Client
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL: baseURL,
		client:  hc,
	}, nil
}

// ListActivities fetches the activity snapshot. Requires no credential.
func (c *Client) ListActivities(ctx context.Context) (model.ActivityList, error) {
	req, err := c.newRequest(ctx, requestSpec{Method: http.MethodGet, Path: "/activities"})
	if err != nil {
		return nil, err
	}

	var list model.ActivityList
	if doErr := c.do(req, &list); doErr != nil {
		return nil, fmt.Errorf("list activities: %w", doErr)
	}
	return list, nil
}

// loginResponse mirrors the backend login payload.
type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	TeacherName string `json:"teacher_name"`
}

// Login exchanges form-encoded credentials for a bearer token.
func (c *Client) Login(ctx context.Context, username, password string) (ports.LoginResult, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req, err := c.newRequest(ctx, requestSpec{
		Method:      http.MethodPost,
		Path:        "/auth/login",
		Body:        strings.NewReader(form.Encode()),
		ContentType: "application/x-www-form-urlencoded",
	})
	if err != nil {
		return ports.LoginResult{}, err
	}

	var out loginResponse
	if doErr := c.do(req, &out); doErr != nil {
		return ports.LoginResult{}, fmt.Errorf("login: %w", doErr)
	}
	if out.AccessToken == "" {
		return ports.LoginResult{}, apperrors.Internal("login response missing access token")
	}

	return ports.LoginResult{
		AccessToken: out.AccessToken,
		TeacherName: out.TeacherName,
	}, nil
}

// probeResponse mirrors the backend session introspection payload.
type probeResponse struct {
	Authenticated bool `json:"authenticated"`
	Teacher       *struct {
		Username string `json:"username"`
		Name     string `json:"name"`
	} `json:"teacher"`
}

// Probe validates an existing token without performing a state change.
func (c *Client) Probe(ctx context.Context, token string) (ports.ProbeResult, error) {
	req, err := c.newRequest(ctx, requestSpec{
		Method: http.MethodGet,
		Path:   "/auth/me",
		Token:  token,
	})
	if err != nil {
		return ports.ProbeResult{}, err
	}

	var out probeResponse
	if doErr := c.do(req, &out); doErr != nil {
		return ports.ProbeResult{}, fmt.Errorf("probe session: %w", doErr)
	}

	result := ports.ProbeResult{Authenticated: out.Authenticated}
	if out.Teacher != nil {
		result.TeacherName = out.Teacher.Name
	}
	if result.Authenticated && result.TeacherName == "" {
		// The backend never reports authenticated without an identity;
		// treat it as unauthenticated rather than trusting half an answer.
		result.Authenticated = false
	}
	return result, nil
}

// messageResponse mirrors the backend mutation success payload.
type messageResponse struct {
	Message string `json:"message"`
}

// Signup registers a student for an activity on the backend.
func (c *Client) Signup(ctx context.Context, in ports.RegistrationInput) (string, error) {
	return c.mutate(ctx, http.MethodPost, "signup", in)
}

// Unregister removes a student from an activity on the backend.
func (c *Client) Unregister(ctx context.Context, in ports.RegistrationInput) (string, error) {
	return c.mutate(ctx, http.MethodDelete, "unregister", in)
}

func (c *Client) mutate(ctx context.Context, method, action string, in ports.RegistrationInput) (string, error) {
	if in.Activity == "" {
		return "", apperrors.Validation("activity name is required")
	}
	if in.Email == "" {
		return "", apperrors.Validation("student email is required")
	}

	query := url.Values{}
	query.Set("email", in.Email)

	req, err := c.newRequest(ctx, requestSpec{
		Method: method,
		Path:   "/activities/" + url.PathEscape(in.Activity) + "/" + action,
		Query:  query,
		Token:  in.Token,
	})
	if err != nil {
		return "", err
	}

	var out messageResponse
	if doErr := c.do(req, &out); doErr != nil {
		return "", fmt.Errorf("%s: %w", action, doErr)
	}
	return out.Message, nil
}

// requestSpec groups request construction parameters.
type requestSpec struct {
	Method      string
	Path        string
	Query       url.Values
	Token       string
	Body        io.Reader
	ContentType string
}

func (c *Client) newRequest(ctx context.Context, spec requestSpec) (*http.Request, error) {
	target := c.baseURL + spec.Path
	if len(spec.Query) > 0 {
		target += "?" + spec.Query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, spec.Method, target, spec.Body)
	if err != nil {
		return nil, fmt.Errorf("create backend request: %w", err)
	}
	if spec.ContentType != "" {
		req.Header.Set("Content-Type", spec.ContentType)
	}
	if spec.Token != "" {
		req.Header.Set("Authorization", "Bearer "+spec.Token)
	}
	return req, nil
}

// do executes the request, decoding a 2xx body into dst and mapping any
// other outcome onto the error taxonomy.
func (c *Client) do(req *http.Request, dst any) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeTransport, "backend request failed")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.handleErrorResponse(resp)
	}

	return decodeSuccess(resp, dst)
}

func decodeSuccess(resp *http.Response, dst any) error {
	defer func() {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if dst == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "decode backend response")
	}
	return nil
}

// errorDetail mirrors the backend failure payload.
type errorDetail struct {
	Detail string `json:"detail"`
}

func (c *Client) handleErrorResponse(resp *http.Response) error {
	body, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	closeErr := resp.Body.Close()
	if readErr != nil {
		return apperrors.Wrap(errors.Join(readErr, closeErr), apperrors.ErrCodeInternal, "read backend error response")
	}

	var payload errorDetail
	_ = json.Unmarshal(body, &payload) // a non-JSON body just means no detail

	return classifyStatus(resp.StatusCode, payload.Detail)
}

// classifyStatus maps a backend failure status and optional detail onto the
// error taxonomy. The detail becomes the user-facing message when present.
func classifyStatus(status int, detail string) *apperrors.AppError {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		if detail == "" {
			detail = "Teacher authentication required"
		}
		return apperrors.Unauthorized(detail)
	case status == http.StatusNotFound:
		if detail == "" {
			detail = "Not found"
		}
		return apperrors.NotFound(detail)
	case status == http.StatusConflict:
		if detail == "" {
			detail = "Conflict"
		}
		return apperrors.Conflict(detail)
	case status >= 400 && status < 500:
		if detail == "" {
			detail = "An error occurred"
		}
		return apperrors.Validation(detail)
	default:
		if detail == "" {
			detail = fmt.Sprintf("backend returned status %d", status)
		}
		return apperrors.Internal(detail)
	}
}

var _ ports.Backend = (*Client)(nil)
