// Code generated by esgen from the Elasticsearch REST API specification.
// DO NOT EDIT.

package ping

import (
	"github.com/elastic-go/estc/esparams"
)

// Returns whether the cluster is running.
// PingUrlParams is the tagged union of legal URL-parameter combinations for
// the "ping" endpoint. Each variant is its own concrete type
// implementing Url(); dispatch happens through the interface's method set
// rather than a switch over a tag.
type PingUrlParams interface {
	isPingUrlParams()
	Url() esparams.UrlPath
}

type PingUrlParamsNone struct {
}

func (PingUrlParamsNone) isPingUrlParams() {}

func (v PingUrlParamsNone) Url() esparams.UrlPath {
	return esparams.UrlPath("/")
}

// PingRequest is the fully-built request for the "ping"
// endpoint: a URL computed from one PingUrlParams variant.
type PingRequest struct {
	URL esparams.UrlPath
}

func NewPingRequest() PingRequest {
	return PingRequest{URL: PingUrlParamsNone{}.Url()}
}
