package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"sigvault/internal/crypto"
	"sigvault/internal/domain"
	"sigvault/internal/httpapi"
)

// ErrRateLimited is returned when the server rejects a request with 429.
var ErrRateLimited = errors.New("rate limited by server")

// HTTP is a sigvault client.
type HTTP struct {
	Base string
	HTTP *http.Client
}

// NewHTTP returns a client for the server at base, e.g. "http://localhost:8080".
func NewHTTP(base string) *HTTP {
	return &HTTP{
		Base: strings.TrimRight(base, "/"),
		HTTP: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTP) CreateIdentity(ctx context.Context, in domain.NewIdentity) error {
	return c.post(ctx, "/api/user/create", in, nil)
}

// LookupIdentity fetches the identity registered under nif.
func (c *HTTP) LookupIdentity(ctx context.Context, nif domain.NIF) (domain.Identity, error) {
	var out domain.Identity
	if err := c.do(ctx, http.MethodGet, "/api/user/"+url.PathEscape(nif.String()), nil, &out, nil); err != nil {
		return domain.Identity{}, err
	}
	return out, nil
}

// DeleteIdentity removes the identity and its key pair.
func (c *HTTP) DeleteIdentity(ctx context.Context, nif domain.NIF) error {
	return c.do(ctx, http.MethodDelete, "/api/user/"+url.PathEscape(nif.String()), nil, nil, nil)
}

func (c *HTTP) GenerateKeys(ctx context.Context, nif domain.NIF) (domain.Fingerprint, error) {
	var hdr http.Header
	path := "/api/userkeys/generate-keys/" + url.PathEscape(nif.String())
	if err := c.do(ctx, http.MethodPost, path, nil, nil, &hdr); err != nil {
		return "", err
	}
	return domain.Fingerprint(hdr.Get(httpapi.FingerprintHeader)), nil
}

// PublicKey fetches the public key and fingerprint of nif.
func (c *HTTP) PublicKey(ctx context.Context, nif domain.NIF) (domain.PublicKeyInfo, error) {
	var out domain.PublicKeyInfo
	if err := c.do(ctx, http.MethodGet, "/api/userkeys/"+url.PathEscape(nif.String()), nil, &out, nil); err != nil {
		return domain.PublicKeyInfo{}, err
	}
	return out, nil
}

func (c *HTTP) Sign(ctx context.Context, nif domain.NIF, document []byte) ([]byte, error) {
	var text string
	in := httpapi.SignRequest{DocumentBase64: crypto.B64(document), NIF: nif}
	if err := c.post(ctx, "/api/sign", in, &text); err != nil {
		return nil, err
	}
	return crypto.FromB64(text)
}

func (c *HTTP) Verify(ctx context.Context, nif domain.NIF, document, signature []byte) (bool, error) {
	var ok bool
	in := httpapi.VerifyRequest{
		DocumentBase64:  crypto.B64(document),
		SignatureBase64: crypto.B64(signature),
		NIF:             nif,
	}
	if err := c.post(ctx, "/api/signature/verify", in, &ok); err != nil {
		return false, err
	}
	return ok, nil
}

func (c *HTTP) post(ctx context.Context, path string, in, out any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, buf, out, nil)
}

// do sends the request and decodes a 2xx body into out: a *string receives
// the raw text, anything else is decoded as JSON. hdr, when set, receives the
// response headers.
func (c *HTTP) do(ctx context.Context, method, path string, body io.Reader, out any, hdr *http.Header) error {
	req, err := http.NewRequestWithContext(ctx, method, c.Base+path, body)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return decodeError(method, path, resp)
	}
	if hdr != nil {
		*hdr = resp.Header
	}
	switch o := out.(type) {
	case nil:
		return nil
	case *string:
		b, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		*o = string(b)
		return nil
	default:
		return json.NewDecoder(resp.Body).Decode(out)
	}
}

// decodeError turns an error response back into a domain error.
func decodeError(method, path string, resp *http.Response) error {
	if resp.StatusCode == http.StatusTooManyRequests {
		return ErrRateLimited
	}
	var body httpapi.ErrorBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Code != "" {
		if sentinel := domain.ParseErrorKind(body.Code).Sentinel(); sentinel != nil {
			if body.Error == sentinel.Error() {
				return sentinel
			}
			return fmt.Errorf("%w: %s", sentinel, strings.TrimPrefix(body.Error, sentinel.Error()+": "))
		}
		return fmt.Errorf("sigvault %s %s: %s: %s", method, path, resp.Status, body.Error)
	}
	return fmt.Errorf("sigvault %s %s: %s", method, path, resp.Status)
}

var _ domain.SignatureGateway = (*HTTP)(nil)
