package client_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/askpdf/askpdf-cli/client"
	"github.com/askpdf/askpdf-cli/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var samplePDF = &model.SelectedFile{
	Name:        "report.pdf",
	ContentType: "application/pdf",
	Data:        []byte("%PDF-1.4 sample"),
}

func TestUpload(t *testing.T) {
	t.Run("SendsFileUnderPDFField", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, client.UploadPath, r.URL.Path)
			assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data; boundary="))
			assert.Equal(t, "test", r.Header.Get(client.VersionHeader))
			assert.Equal(t, "askpdf/test", r.Header.Get("User-Agent"))
			assert.True(t, strings.HasPrefix(r.Header.Get(client.RequestIDHeader), "req-"))

			f, fh, err := r.FormFile(client.UploadField)
			if !assert.NoError(t, err) {
				return
			}
			defer f.Close()
			assert.Equal(t, "report.pdf", fh.Filename)
			assert.Equal(t, "application/pdf", fh.Header.Get("Content-Type"))
			assert.Len(t, r.MultipartForm.File, 1)

			bs, err := io.ReadAll(f)
			assert.NoError(t, err)
			assert.Equal(t, samplePDF.Data, bs)

			w.WriteHeader(http.StatusOK)
			_, _ = io.WriteString(w, `{"message":"File uploaded successfully"}`)
		}))
		t.Cleanup(srv.Close)

		cl := client.New(srv.URL, client.WithVersion("test"))
		res, err := cl.Upload(context.Background(), samplePDF)
		require.NoError(t, err)
		assert.True(t, res.OK())
		assert.Equal(t, "File uploaded successfully", res.Status.Message)
		assert.EqualValues(t, 1, calls.Load())
	})
	t.Run("NilFileStillSendsField", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
				return
			}
			assert.Empty(t, r.MultipartForm.File)
			assert.Equal(t, []string{""}, r.MultipartForm.Value[client.UploadField])

			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, `{"error":"No file part"}`)
		}))
		t.Cleanup(srv.Close)

		res, err := client.New(srv.URL).Upload(context.Background(), nil)
		require.NoError(t, err)
		assert.False(t, res.OK())
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Equal(t, "No file part", res.Status.Error)
	})
	t.Run("NonJSONBodyIsIgnored", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = io.WriteString(w, "<html>boom</html>")
		}))
		t.Cleanup(srv.Close)

		res, err := client.New(srv.URL).Upload(context.Background(), samplePDF)
		require.NoError(t, err)
		assert.False(t, res.OK())
		assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
		assert.Empty(t, res.Status)
	})
	t.Run("TransportFailure", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()

		_, err := client.New(srv.URL).Upload(context.Background(), samplePDF)
		assert.ErrorIs(t, err, client.ErrTransport)
	})
}

func TestUploadResultOK(t *testing.T) {
	for code, ok := range map[int]bool{199: false, 200: true, 201: true, 299: true, 300: false, 500: false} {
		assert.Equal(t, ok, (&client.UploadResult{StatusCode: code}).OK(), "status %d", code)
	}
}

func TestAsk(t *testing.T) {
	t.Run("SendsJSONQuestion", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, client.AskPath, r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			bs, err := io.ReadAll(r.Body)
			assert.NoError(t, err)
			assert.Equal(t, `{"question":"What is the capital of France?"}`, string(bs))

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]string{"answer": "Paris"})
		}))
		t.Cleanup(srv.Close)

		answer, err := client.New(srv.URL+"/").Ask(context.Background(), "What is the capital of France?")
		require.NoError(t, err)
		assert.Equal(t, "Paris", answer.Text())
		assert.EqualValues(t, 1, calls.Load())
	})
	t.Run("ParsesBodyOfErrorStatus", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, `{"error":"no document uploaded"}`)
		}))
		t.Cleanup(srv.Close)

		answer, err := client.New(srv.URL).Ask(context.Background(), "anything?")
		require.NoError(t, err)
		assert.False(t, answer.Present())
		assert.Equal(t, model.Undefined, answer.Text())
	})
	t.Run("NonJSONBodyFails", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = io.WriteString(w, "<!doctype html><title>500 Internal Server Error</title>")
		}))
		t.Cleanup(srv.Close)

		_, err := client.New(srv.URL).Ask(context.Background(), "anything?")
		assert.ErrorIs(t, err, client.ErrMalformedResponse)
		assert.Contains(t, err.Error(), "500")
	})
	t.Run("TransportFailure", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()

		_, err := client.New(srv.URL).Ask(context.Background(), "anything?")
		assert.ErrorIs(t, err, client.ErrTransport)
	})
	t.Run("WrapsCustomTransport", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "inner", r.Header.Get("X-Test-Transport"))
			assert.Equal(t, "test", r.Header.Get(client.VersionHeader))
			_, _ = io.WriteString(w, `{"answer":"ok"}`)
		}))
		t.Cleanup(srv.Close)

		hc := &http.Client{Transport: headerTransport{"X-Test-Transport": "inner"}}
		answer, err := client.New(srv.URL, client.WithHTTPClient(hc), client.WithVersion("test")).Ask(context.Background(), "q")
		require.NoError(t, err)
		assert.Equal(t, "ok", answer.Text())
	})
}

// headerTransport sets fixed headers before handing off to the default transport.
type headerTransport map[string]string

func (h headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	for k, v := range h {
		req.Header.Set(k, v)
	}
	return http.DefaultTransport.RoundTrip(req)
}
