package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultTimeout    = 10 * time.Second
	DefaultHealthPath = "health"

	maxBodyBytes = 8 << 20
)

// Resultados que se reportan al Recorder.
const (
	OutcomeOK              = "ok"
	OutcomeHTTPError       = "http_error"
	OutcomeTransportError  = "transport_error"
	OutcomeInvalidResponse = "invalid_response"
)

// TokenSource entrega el bearer token. "" => se manda sin Authorization.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// TokenFunc adapta una función a TokenSource.
type TokenFunc func(ctx context.Context) (string, error)

func (f TokenFunc) Token(ctx context.Context) (string, error) { return f(ctx) }

// Recorder recibe una observación por request.
type Recorder interface {
	ObserveRequest(method, outcome string)
}

type nopRecorder struct{}

func (nopRecorder) ObserveRequest(string, string) {}

type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HealthPath string
}

type Option func(*Client)

func WithTokenSource(ts TokenSource) Option { return func(c *Client) { c.tokens = ts } }
func WithLogger(l *zap.Logger) Option       { return func(c *Client) { c.log = l } }
func WithRecorder(r Recorder) Option        { return func(c *Client) { c.rec = r } }

// WithTransport permite inyectar un Transport (p.ej. para tests).
func WithTransport(tr http.RoundTripper) Option {
	return func(c *Client) { c.HTTP.Transport = tr }
}

// Client es el gateway al backend remoto. Nunca devuelve errores de Go:
// todo termina en un Result.
type Client struct {
	HTTP       *http.Client
	BaseURL    string
	healthPath string

	tokens TokenSource
	log    *zap.Logger
	rec    Recorder
}

// New crea un Client con BaseURL + timeout.
func New(cfg Config, opts ...Option) (*Client, error) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if strings.TrimSpace(cfg.HealthPath) == "" {
		cfg.HealthPath = DefaultHealthPath
	}
	c := &Client{
		HTTP:       &http.Client{Timeout: cfg.Timeout},
		healthPath: cfg.HealthPath,
	}
	if base := strings.TrimSpace(cfg.BaseURL); base != "" {
		if _, err := url.ParseRequestURI(base); err != nil {
			return nil, fmt.Errorf("invalid base url: %w", err)
		}
		c.BaseURL = strings.TrimRight(base, "/")
	}
	for _, o := range opts {
		o(c)
	}
	if c.log == nil {
		c.log = zap.NewNop()
	}
	if c.rec == nil {
		c.rec = nopRecorder{}
	}
	return c, nil
}

// HTTPError es la forma error de un Result fallido.
// StatusCode 0 = el request no llegó a tener respuesta.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	if e.StatusCode == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (status=%d)", e.Message, e.StatusCode)
}

// IsNotFound reporta si err es un 404 del backend.
func IsNotFound(err error) bool {
	var he *HTTPError
	return errors.As(err, &he) && he.StatusCode == http.StatusNotFound
}

// Result es la respuesta uniforme: {success, data, message, error}.
type Result struct {
	Success bool
	Data    json.RawMessage
	Message string
	Error   string
	Status  int
}

// Err convierte un fallo en *HTTPError; nil si Success.
func (r Result) Err() error {
	if r.Success {
		return nil
	}
	msg := r.Error
	if msg == "" {
		msg = "request failed"
	}
	return &HTTPError{StatusCode: r.Status, Message: msg}
}

// Decode deserializa Data en out. Un Result fallido devuelve su Err().
func (r Result) Decode(out any) error {
	if err := r.Err(); err != nil {
		return err
	}
	if len(r.Data) == 0 || string(r.Data) == "null" {
		return &HTTPError{StatusCode: r.Status, Message: "response has no data"}
	}
	if err := json.Unmarshal(r.Data, out); err != nil {
		return &HTTPError{StatusCode: r.Status, Message: "unexpected response data: " + err.Error()}
	}
	return nil
}

func (c *Client) Get(ctx context.Context, endpoint string, params url.Values) Result {
	return c.do(ctx, http.MethodGet, endpoint, params, nil, "")
}

func (c *Client) Post(ctx context.Context, endpoint string, payload any) Result {
	return c.doJSON(ctx, http.MethodPost, endpoint, payload)
}

func (c *Client) Put(ctx context.Context, endpoint string, payload any) Result {
	return c.doJSON(ctx, http.MethodPut, endpoint, payload)
}

func (c *Client) Delete(ctx context.Context, endpoint string) Result {
	return c.do(ctx, http.MethodDelete, endpoint, nil, nil, "")
}

// UploadFile es un archivo para Upload.
type UploadFile struct {
	Field       string // default "file"
	Name        string
	ContentType string
	Body        io.Reader
}

// Upload manda multipart/form-data con el archivo y campos extra.
func (c *Client) Upload(ctx context.Context, endpoint string, file UploadFile, fields map[string]string) Result {
	if file.Body == nil {
		return c.fail(http.MethodPost, endpoint, 0, OutcomeTransportError, "upload: empty file")
	}
	if file.Field == "" {
		file.Field = "file"
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return c.fail(http.MethodPost, endpoint, 0, OutcomeTransportError, "upload: "+err.Error())
		}
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, file.Field, file.Name))
	ct := file.ContentType
	if ct == "" {
		ct = "application/octet-stream"
	}
	h.Set("Content-Type", ct)
	part, err := mw.CreatePart(h)
	if err != nil {
		return c.fail(http.MethodPost, endpoint, 0, OutcomeTransportError, "upload: "+err.Error())
	}
	if _, err := io.Copy(part, file.Body); err != nil {
		return c.fail(http.MethodPost, endpoint, 0, OutcomeTransportError, "upload: "+err.Error())
	}
	if err := mw.Close(); err != nil {
		return c.fail(http.MethodPost, endpoint, 0, OutcomeTransportError, "upload: "+err.Error())
	}

	return c.do(ctx, http.MethodPost, endpoint, nil, &buf, mw.FormDataContentType())
}

// TestConnection hace un GET liviano. Cualquier problema => false.
func (c *Client) TestConnection(ctx context.Context) bool {
	if c == nil || c.HTTP == nil {
		return false
	}
	return c.Get(ctx, c.healthPath, nil).Success
}

func (c *Client) doJSON(ctx context.Context, method, endpoint string, payload any) Result {
	var body io.Reader
	ct := ""
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return c.fail(method, endpoint, 0, OutcomeTransportError, "marshal json: "+err.Error())
		}
		body = bytes.NewReader(b)
		ct = "application/json"
	}
	return c.do(ctx, method, endpoint, nil, body, ct)
}

func (c *Client) do(ctx context.Context, method, endpoint string, params url.Values, body io.Reader, contentType string) Result {
	if c == nil || c.HTTP == nil {
		return Result{Error: "httpclient: nil client"}
	}

	fullURL, err := c.resolveURL(endpoint)
	if err != nil {
		return c.fail(method, endpoint, 0, OutcomeTransportError, err.Error())
	}
	if len(params) > 0 {
		sep := "?"
		if strings.Contains(fullURL, "?") {
			sep = "&"
		}
		fullURL += sep + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return c.fail(method, endpoint, 0, OutcomeTransportError, "new request: "+err.Error())
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	// sin token se intenta igual; el backend decide
	if c.tokens != nil {
		tok, err := c.tokens.Token(ctx)
		if err != nil {
			c.log.Debug("token unavailable", zap.Error(err))
		}
		if tok = strings.TrimSpace(tok); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return c.fail(method, endpoint, 0, OutcomeTransportError, "could not reach server: "+err.Error())
	}
	defer resp.Body.Close()

	raw, err := readAtMost(resp.Body, maxBodyBytes)
	if err != nil {
		return c.fail(method, endpoint, resp.StatusCode, OutcomeTransportError, "read body: "+err.Error())
	}

	res, outcome := interpret(method, resp.StatusCode, raw)
	if !res.Success {
		return c.fail(method, endpoint, res.Status, outcome, res.Error)
	}
	c.rec.ObserveRequest(method, OutcomeOK)
	return res
}

func (c *Client) fail(method, endpoint string, status int, outcome, msg string) Result {
	c.rec.ObserveRequest(method, outcome)
	c.log.Warn("remote call failed",
		zap.String("method", method),
		zap.String("endpoint", endpoint),
		zap.Int("status", status),
		zap.String("error", msg),
	)
	return Result{Success: false, Error: msg, Status: status}
}

// interpret normaliza la respuesta. Acepta el envelope {success,data,...}
// o un array/objeto pelado como data.
func interpret(method string, status int, raw []byte) (Result, string) {
	trimmed := bytes.TrimSpace(raw)
	ok := status >= 200 && status < 300

	if !ok {
		return Result{Status: status, Error: errorMessage(status, trimmed)}, OutcomeHTTPError
	}

	if len(trimmed) == 0 {
		if method == http.MethodGet && status != http.StatusNoContent {
			return Result{Status: status, Error: "empty response"}, OutcomeInvalidResponse
		}
		return Result{Success: true, Status: status}, OutcomeOK
	}

	if !json.Valid(trimmed) {
		return Result{Status: status, Error: "invalid JSON response"}, OutcomeInvalidResponse
	}

	switch trimmed[0] {
	case '[':
		return Result{Success: true, Data: json.RawMessage(trimmed), Status: status}, OutcomeOK
	case '{':
		env, isEnvelope := parseEnvelope(trimmed)
		if !isEnvelope {
			return Result{Success: true, Data: json.RawMessage(trimmed), Status: status}, OutcomeOK
		}
		if !env.Success {
			msg := firstNonEmpty(env.Error, env.Message, "request failed")
			return Result{Status: status, Error: msg, Message: env.Message}, OutcomeHTTPError
		}
		return Result{Success: true, Data: env.Data, Message: env.Message, Status: status}, OutcomeOK
	default:
		return Result{Status: status, Error: "unexpected response shape"}, OutcomeInvalidResponse
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

// parseEnvelope: es envelope solo si trae "success" booleano.
func parseEnvelope(b []byte) (envelope, bool) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(b, &probe); err != nil {
		return envelope{}, false
	}
	s, ok := probe["success"]
	if !ok {
		return envelope{}, false
	}
	var env envelope
	if err := json.Unmarshal(s, &env.Success); err != nil {
		return envelope{}, false
	}
	env.Data = probe["data"]
	_ = json.Unmarshal(probe["message"], &env.Message)
	_ = json.Unmarshal(probe["error"], &env.Error)
	return env, true
}

func errorMessage(status int, body []byte) string {
	if len(body) > 0 && body[0] == '{' {
		if env, ok := parseEnvelope(body); ok {
			if m := firstNonEmpty(env.Error, env.Message); m != "" {
				return m
			}
		}
		var loose struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		if json.Unmarshal(body, &loose) == nil {
			if m := firstNonEmpty(loose.Error, loose.Message); m != "" {
				return m
			}
		}
	}
	text := http.StatusText(status)
	if text == "" {
		text = "unexpected status"
	}
	return text
}

func firstNonEmpty(s ...string) string {
	for _, v := range s {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func (c *Client) resolveURL(pathOrURL string) (string, error) {
	pathOrURL = strings.TrimSpace(pathOrURL)
	if pathOrURL == "" {
		return "", errors.New("httpclient: empty url")
	}

	// Si ya es URL absoluta, úsala tal cual.
	if strings.HasPrefix(pathOrURL, "http://") || strings.HasPrefix(pathOrURL, "https://") {
		return pathOrURL, nil
	}

	// Si no es absoluta, requiere BaseURL.
	if strings.TrimSpace(c.BaseURL) == "" {
		return "", errors.New("httpclient: relative path requires BaseURL")
	}

	if !strings.HasPrefix(pathOrURL, "/") {
		pathOrURL = "/" + pathOrURL
	}
	return c.BaseURL + pathOrURL, nil
}

func readAtMost(r io.Reader, max int64) ([]byte, error) {
	if max <= 0 {
		max = 1 << 20
	}
	lr := io.LimitReader(r, max)
	return io.ReadAll(lr)
}
