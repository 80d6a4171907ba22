package sdk

import (
	"fmt"
	"net/http"
	"net/http/httputil"
	"time"

	"github.com/sirupsen/logrus"
)

// BuildHTTPClient assembles a client whose transport signs every
// request for the given auth kind on top of a tracing transport.
func BuildHTTPClient(state *authState, kind AuthKind, logger *logrus.Entry) *http.Client {
	client := buildTracedClient(logger)
	client.Transport = signingRoundTripper{
		transport: client.Transport,
		state:     state,
		kind:      kind,
	}

	return client
}

func buildTracedClient(logger *logrus.Entry) *http.Client {
	return &http.Client{
		Transport: loggingRoundTripper{
			transport: http.DefaultTransport,
			logger:    logger,
		},
	}
}

type loggingRoundTripper struct {
	transport http.RoundTripper
	logger    *logrus.Entry
}

func (lrt loggingRoundTripper) RoundTrip(req *http.Request) (res *http.Response, err error) {
	start := time.Now()
	dReq, _ := httputil.DumpRequestOut(req, true)
	res, err = lrt.transport.RoundTrip(req)
	if err != nil {
		lrt.logger.Errorf("%s: %s", req.URL.String(), err)
	} else {
		log := lrt.logger.WithField("response", fmt.Sprintf("%s %d: %s", req.Method, res.StatusCode, time.Since(start)))
		log.Debug(req.URL.String())
		if dRes, dumpErr := httputil.DumpResponse(res, true); dumpErr == nil {
			log.Tracef("%s\n%s", dReq, dRes)
		}
	}

	return
}
