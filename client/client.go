package client

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
	"strings"

	"github.com/askpdf/askpdf-cli/config"
	"github.com/askpdf/askpdf-cli/model"
)

// Paths of the backend endpoints.
const (
	UploadPath = "/upload"
	AskPath    = "/ask"
)

// UploadField is the multipart key the backend reads the document from.
const UploadField = "pdfFile"

type Uploader interface {
	Upload(ctx context.Context, file *model.SelectedFile) (*UploadResult, error)
}

type Asker interface {
	Ask(ctx context.Context, question string) (*model.Answer, error)
}

type Client interface {
	Uploader
	Asker
}

type client struct {
	cl      *http.Client
	apiHost string
}

var _ Client = (*client)(nil)

var (
	ErrTransport         = errors.New("request failed")
	ErrMalformedResponse = errors.New("malformed response")
)

type Option func(*options)

type options struct {
	httpClient *http.Client
	version    string
}

// WithHTTPClient replaces the http client. Its transport is wrapped so the
// version and request id headers are still set.
func WithHTTPClient(cl *http.Client) Option {
	return func(o *options) {
		o.httpClient = cl
	}
}

func WithVersion(version string) Option {
	return func(o *options) {
		o.version = version
	}
}

func New(apiHost string, opts ...Option) Client {
	o := &options{
		httpClient: &http.Client{},
		version:    config.Version(),
	}
	for _, opt := range opts {
		opt(o)
	}

	cl := *o.httpClient
	cl.Transport = &VersionRoundTripper{
		next:    cl.Transport,
		version: o.version,
	}

	return &client{
		cl:      &cl,
		apiHost: strings.TrimRight(apiHost, "/"),
	}
}

// apiURL returns the full url to the api endpoint
// path must start with a slash. e.g. /ask
// apiURL will add a slash if it's missing
func (c *client) apiURL(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.apiHost + path
}

// UploadResult is the outcome of an upload the server answered.
type UploadResult struct {
	StatusCode int
	Status     model.UploadStatus
}

// OK reports whether the status code is in the 2xx range.
func (r *UploadResult) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode <= 299
}

// Upload posts the file as a multipart form under UploadField.
// A nil file still sends the request with an empty field.
// Any status the server answers with is returned in the result, not as an error.
func (c *client) Upload(ctx context.Context, file *model.SelectedFile) (*UploadResult, error) {
	body, contentType, err := uploadBody(file)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL(UploadPath), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.cl.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: upload: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	result := &UploadResult{StatusCode: resp.StatusCode}
	// the body is informational only
	_ = json.NewDecoder(resp.Body).Decode(&result.Status)
	return result, nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func uploadBody(file *model.SelectedFile) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if file == nil {
		if err := w.WriteField(UploadField, ""); err != nil {
			return nil, "", err
		}
	} else {
		ct := file.ContentType
		if ct == "" {
			ct = "application/octet-stream"
		}
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
			quoteEscaper.Replace(UploadField), quoteEscaper.Replace(file.Name)))
		h.Set("Content-Type", ct)

		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(file.Data); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

// Ask posts the question and decodes the answer.
// The body is parsed as JSON regardless of the status code.
func (c *client) Ask(ctx context.Context, question string) (*model.Answer, error) {
	bs, err := json.Marshal(model.Question{Question: question})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL(AskPath), bytes.NewReader(bs))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.cl.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: ask: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: ask: %w", ErrTransport, err)
	}

	answer, err := model.ParseAnswer(body)
	if err != nil {
		return nil, fmt.Errorf("%w: ask returned %d: %w", ErrMalformedResponse, resp.StatusCode, err)
	}
	return answer, nil
}
