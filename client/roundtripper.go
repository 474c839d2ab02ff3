package client

import (
	"net/http"

	"github.com/askpdf/askpdf-cli/idgen"
)

const (
	VersionHeader   = "X-AskPDF-Version"
	RequestIDHeader = "X-Request-ID"
)

type VersionRoundTripper struct {
	next    http.RoundTripper
	version string
}

func (v *VersionRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to ensure thread safety
	clonedReq := req.Clone(req.Context())
	clonedReq.Header.Set("User-Agent", "askpdf/"+v.version)
	clonedReq.Header.Set(VersionHeader, v.version)
	if clonedReq.Header.Get(RequestIDHeader) == "" {
		clonedReq.Header.Set(RequestIDHeader, idgen.New(idgen.RequestPrefix))
	}

	next := v.next
	if next == nil {
		next = http.DefaultTransport
	}
	return next.RoundTrip(clonedReq)
}
