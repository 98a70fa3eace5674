package clickhouse

import (
	"crypto/tls"
	"crypto/x509"
	"os"

	"github.com/pkg/errors"
)

// Enabled reports whether any TLS file is configured.
func (s TLSSettings) Enabled() bool {
	return s.CAFile != "" || s.CertFile != ""
}

// Config builds the tls.Config for the native protocol connection. It returns
// nil when TLS is not enabled.
//
// A CAFile alone verifies the server against that CA. A CertFile (with its
// KeyFile) adds a client certificate for mTLS, verified against the system
// roots when no CAFile is set.
func (s TLSSettings) Config() (*tls.Config, error) {
	if !s.Enabled() {
		return nil, nil
	}

	cfg := &tls.Config{MinVersion: tls.VersionTLS12}

	if s.CertFile != "" {
		cert, err := tls.LoadX509KeyPair(s.CertFile, s.KeyFile)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load client certificate %s", s.CertFile)
		}
		cfg.Certificates = []tls.Certificate{cert}
	}

	if s.CAFile != "" {
		pem, err := os.ReadFile(s.CAFile)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read CA file %s", s.CAFile)
		}

		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, errors.Errorf("no certificates found in CA file %s", s.CAFile)
		}
		cfg.RootCAs = pool
	}

	return cfg, nil
}
