// Package httpclient is lesson 26: talking HTTP with net/http and resty.
//
// The demonstrations run against a local httptest server that mimics a
// small slice of httpbin.org (/get, /post, /status, /delay), so they are
// fast and offline. Set GOLESSONS_HTTPBIN to a base URL (for example
// https://httpbin.org) to aim the same calls at a live endpoint.
package httpclient
