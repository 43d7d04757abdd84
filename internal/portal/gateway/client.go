// Package gateway is the typed client over the portal REST contract.
// It owns all normalization of backend payloads; callers only ever see
// clean entities with parsed dates and defaulted statuses.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// local fallbacks used when the lookup endpoints are unreachable
var (
	fallbackAcademicYears = []string{"2021-2022", "2022-2023", "2023-2024", "2024-2025", "2025-2026"}
	fallbackSemesters     = []string{"S1", "S2", "S3", "S4", "S5", "S6"}
	fallbackSupervisors   = []string{"Pr. El Amrani", "Pr. Benkirane", "Pr. Tazi", "Pr. Ouazzani"}
)

// Client talks to the portal backend
type Client struct {
	baseURL string
	http    *http.Client
	logger  *log.Logger
}

// NewClient creates a gateway client for the given base URL
// (e.g. "http://localhost:3000/api")
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		logger:  log.Default(),
	}
}

// NewClientWith creates a client with a custom HTTP client and logger,
// used by tests and by callers that need their own timeouts
func NewClientWith(baseURL string, httpClient *http.Client, logger *log.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		logger:  logger,
	}
}

// apiError carries the backend's own error message when it provides one
type apiError struct {
	Status  int
	Message string
}

func (e *apiError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("API error (%d)", e.Status)
}

// do performs a JSON request and decodes the response body into out
// when out is non-nil. Non-2xx responses become apiError values carrying
// the server-provided message when the body has one.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return extractError(resp.StatusCode, raw)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// extractError pulls the envelope's error or message field, falling back
// to a generic status-code message
func extractError(status int, raw []byte) error {
	var envelope struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if envelope.Error != "" {
			return &apiError{Status: status, Message: envelope.Error}
		}
		if envelope.Message != "" {
			return &apiError{Status: status, Message: envelope.Message}
		}
	}
	return &apiError{Status: status}
}

// unwrapList tolerates both a bare JSON array and the backend's wrapped
// list shapes ({"requests": [...]}, {"data": [...]})
func unwrapList(raw json.RawMessage, keys ...string) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return trimmed, nil
	}
	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &wrapper); err != nil {
		return nil, fmt.Errorf("decode list: %w", err)
	}
	for _, key := range keys {
		if inner, ok := wrapper[key]; ok {
			return inner, nil
		}
	}
	return nil, errors.New("decode list: no recognized list field")
}

// ListRequests fetches and normalizes all document requests
func (c *Client) ListRequests(ctx context.Context) ([]Request, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/requests", nil, &raw); err != nil {
		return nil, err
	}
	inner, err := unwrapList(raw, "requests", "data")
	if err != nil {
		return nil, err
	}
	var records []requestRecord
	if err := json.Unmarshal(inner, &records); err != nil {
		return nil, fmt.Errorf("decode requests: %w", err)
	}
	return normalizeRequests(records, c.logger), nil
}

// CreateRequest submits a new document request
func (c *Client) CreateRequest(ctx context.Context, input CreateRequestInput) (*CreateResult, error) {
	var result CreateResult
	if err := c.do(ctx, http.MethodPost, "/requests", input, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateRequestStatus moves a request to accepted or rejected. The local
// list is never patched; callers refetch to observe the change.
func (c *Client) UpdateRequestStatus(ctx context.Context, id uint, update StatusUpdate) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/requests/%d/status", id), update, nil)
}

// DownloadDocument fetches the generated document as opaque bytes
func (c *Client) DownloadDocument(ctx context.Context, id uint) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/requests/%d/download", c.baseURL, id), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, extractError(resp.StatusCode, raw)
	}
	return raw, nil
}

// SendRequestEmail asks the backend to (re)send the decision email
func (c *Client) SendRequestEmail(ctx context.Context, id uint, input EmailInput) (*EmailResult, error) {
	var result EmailResult
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/requests/%d/send-email", id), input, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListComplaints fetches and normalizes all complaints
func (c *Client) ListComplaints(ctx context.Context) ([]Complaint, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/complaints", nil, &raw); err != nil {
		return nil, err
	}
	inner, err := unwrapList(raw, "complaints", "data")
	if err != nil {
		return nil, err
	}
	var records []complaintRecord
	if err := json.Unmarshal(inner, &records); err != nil {
		return nil, fmt.Errorf("decode complaints: %w", err)
	}
	return normalizeComplaints(records, c.logger), nil
}

// CreateComplaint submits a new complaint
func (c *Client) CreateComplaint(ctx context.Context, input CreateComplaintInput) (*CreateResult, error) {
	var result CreateResult
	if err := c.do(ctx, http.MethodPost, "/complaints", input, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetComplaint fetches one complaint with its related request snapshot
func (c *Client) GetComplaint(ctx context.Context, id uint) (*ComplaintDetail, error) {
	var rec struct {
		Complaint      complaintRecord `json:"complaint"`
		Student        *Student        `json:"student"`
		RelatedRequest *RelatedRequest `json:"relatedRequest"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/complaints/%d", id), nil, &rec); err != nil {
		return nil, err
	}

	normalized := normalizeComplaints([]complaintRecord{rec.Complaint}, c.logger)
	if len(normalized) == 0 {
		return nil, errors.New("malformed complaint record")
	}
	return &ComplaintDetail{
		Complaint:      normalized[0],
		Student:        rec.Student,
		RelatedRequest: rec.RelatedRequest,
	}, nil
}

// RespondComplaint records the admin's response and resolves the complaint
func (c *Client) RespondComplaint(ctx context.Context, id uint, responseText string, adminID uint) error {
	body := map[string]interface{}{"response": responseText}
	if adminID != 0 {
		body["adminId"] = adminID
	}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/complaints/%d/response", id), body, nil)
}

// ValidateStudent checks an identity triple against the enrollment records.
// A non-matching identity is not an error: valid is false and student nil.
func (c *Client) ValidateStudent(ctx context.Context, identity Identity) (*Student, bool, error) {
	var result struct {
		Valid   bool     `json:"valid"`
		Student *Student `json:"student"`
	}
	if err := c.do(ctx, http.MethodPost, "/students/validate", identity, &result); err != nil {
		return nil, false, err
	}
	return result.Student, result.Valid, nil
}

// StudentDemands fetches the dashboard rows for a validated identity
func (c *Client) StudentDemands(ctx context.Context, identity Identity) ([]DemandSummary, error) {
	var result struct {
		Demands []DemandSummary `json:"demands"`
	}
	if err := c.do(ctx, http.MethodPost, "/students/demands", identity, &result); err != nil {
		return nil, err
	}
	return result.Demands, nil
}

// StudentHistory fetches a student's enrollment history grouped by year
func (c *Client) StudentHistory(ctx context.Context, studentID uint) ([]HistoryYear, error) {
	var result struct {
		History []HistoryYear `json:"history"`
	}
	body := map[string]uint{"studentId": studentID}
	if err := c.do(ctx, http.MethodPost, "/students/history", body, &result); err != nil {
		return nil, err
	}
	return result.History, nil
}

// AcademicYears returns the selectable academic years, falling back to a
// built-in list when the lookup endpoint is unreachable
func (c *Client) AcademicYears(ctx context.Context) []string {
	return c.lookup(ctx, "/academic-years", fallbackAcademicYears)
}

// Semesters returns the selectable semesters
func (c *Client) Semesters(ctx context.Context) []string {
	return c.lookup(ctx, "/semesters", fallbackSemesters)
}

// Supervisors returns the selectable internship supervisors
func (c *Client) Supervisors(ctx context.Context) []string {
	return c.lookup(ctx, "/supervisors", fallbackSupervisors)
}

func (c *Client) lookup(ctx context.Context, path string, fallback []string) []string {
	var values []string
	if err := c.do(ctx, http.MethodGet, path, nil, &values); err != nil {
		c.logger.Printf("⚠️ Lookup %s failed, using local fallback: %v", path, err)
		return fallback
	}
	if len(values) == 0 {
		return fallback
	}
	return values
}

// Login authenticates an admin by email or username
func (c *Client) Login(ctx context.Context, identifier, password string) (*AdminUser, error) {
	body := map[string]string{"identifier": identifier, "password": password}
	var result struct {
		Data struct {
			Admin *AdminUser `json:"admin"`
		} `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/login", body, &result); err != nil {
		return nil, err
	}
	if result.Data.Admin == nil {
		return nil, errors.New("login response missing admin")
	}
	return result.Data.Admin, nil
}
