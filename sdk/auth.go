package sdk

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/flat-peak/go-sdk/pkg/config"
	"github.com/flat-peak/go-sdk/pkg/errs"
	"github.com/flat-peak/go-sdk/pkg/models"
)

type AuthKind string

const (
	AuthBasic  AuthKind = "Basic"
	AuthBearer AuthKind = "Bearer"
)

// authState is the single mutable cell shared by every gateway client:
// the live connection settings plus the bearer token cache. Rotating
// any credential or the host through a setter clears the cache. The
// cached token is never refreshed client-side; once the remote 30
// minute expiry passes, the next bearer call fails with a remote auth
// error.
type authState struct {
	mu sync.Mutex

	host           string
	publishableKey string
	secretKey      string

	accountID   string
	bearerToken string

	// unsigned traced client used for the account lookup and the
	// login token exchange
	httpClient *http.Client
	logger     *logrus.Entry
}

func newAuthState(cfg config.FlatPeakClient, logger *logrus.Entry) *authState {
	return &authState{
		host:           cfg.Host,
		publishableKey: cfg.PublishableKey,
		secretKey:      string(cfg.SecretKey),
		httpClient:     buildTracedClient(logger),
		logger:         logger,
	}
}

func (s *authState) BaseURL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return BuildURL(s.host)
}

func (s *authState) Host() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.host
}

func (s *authState) PublishableKey() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.publishableKey
}

func (s *authState) SecretKey() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.secretKey
}

func (s *authState) SetHost(value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.host = value
	s.invalidateLocked()
}

func (s *authState) SetPublishableKey(value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.publishableKey = value
	s.invalidateLocked()
}

func (s *authState) SetSecretKey(value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.secretKey = value
	s.invalidateLocked()
}

func (s *authState) invalidateLocked() {
	s.accountID = ""
	s.bearerToken = ""
}

// ResolveAuthorization produces the Authorization header value for the
// requested auth kind. Bearer resolution lazily performs the account
// lookup and login exchange on first use and caches the result.
func (s *authState) ResolveAuthorization(ctx context.Context, kind AuthKind) (string, error) {
	switch kind {
	case AuthBearer:
		return s.resolveBearer(ctx)
	default:
		return s.resolveBasic()
	}
}

func (s *authState) resolveBasic() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.publishableKey == "" {
		return "", errs.ErrMissingPublishableKey
	}

	return basicAuthValue(s.publishableKey, ""), nil
}

func (s *authState) resolveBearer(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.secretKey == "" {
		return "", errs.ErrMissingSecretKey
	}

	if s.accountID == "" {
		account, err := s.fetchAccountLocked(ctx)
		if err != nil {
			s.logger.Errorf("could not resolve account id: %s", err)
			return "", err
		}

		s.accountID = account.ID
	}

	if s.bearerToken == "" {
		token, err := s.obtainTokenLocked(ctx)
		if err != nil {
			s.logger.Errorf("could not obtain bearer token: %s", err)
			return "", err
		}

		s.bearerToken = token.Token
	}

	return "Bearer " + s.bearerToken, nil
}

// fetchAccountLocked resolves the account behind the configured keys.
// The publishable key is preferred for this lookup; the secret key is
// used when no publishable key is configured.
func (s *authState) fetchAccountLocked(ctx context.Context) (*models.Account, error) {
	key := s.publishableKey
	if key == "" {
		key = s.secretKey
	}

	r, err := http.NewRequestWithContext(ctx, "GET", BuildURL(s.host)+"/account", nil)
	if err != nil {
		return nil, err
	}

	r.Header.Set("Authorization", basicAuthValue(key, ""))
	r.Header.Set("Content-Type", "application/json")

	account, err := doRequest[models.Account](s.httpClient, r)
	if err != nil {
		return nil, err
	}

	return &account, nil
}

// obtainTokenLocked performs the login token exchange. The exchange
// authenticates with Basic credentials derived from the resolved
// account id and the secret key.
func (s *authState) obtainTokenLocked(ctx context.Context) (*models.AuthToken, error) {
	r, err := http.NewRequestWithContext(ctx, "POST", BuildURL(s.host)+"/login", nil)
	if err != nil {
		return nil, err
	}

	r.Header.Set("Authorization", basicAuthValue(s.accountID, s.secretKey))
	r.Header.Set("Content-Type", "application/json")

	token, err := doRequest[models.AuthToken](s.httpClient, r)
	if err != nil {
		return nil, err
	}

	return &token, nil
}

func basicAuthValue(user string, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(fmt.Sprintf("%s:%s", user, password)))
}

// signingRoundTripper attaches the computed Authorization header and a
// default JSON content type to each outgoing request. Computed values
// win over caller-supplied headers of the same name; other headers pass
// through untouched.
type signingRoundTripper struct {
	transport http.RoundTripper
	state     *authState
	kind      AuthKind
}

func (srt signingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	authorization, err := srt.state.ResolveAuthorization(req.Context(), srt.kind)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", authorization)
	req.Header.Set("Content-Type", "application/json")
	return srt.transport.RoundTrip(req)
}
