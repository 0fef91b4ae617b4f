// Package feed loads update-metadata documents from local files or from
// yum repositories.
package feed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/ralt/rpmupdates/internal/document"
	"github.com/ralt/rpmupdates/internal/models"
	"github.com/ralt/rpmupdates/internal/signer"
	"github.com/ralt/rpmupdates/internal/utils"
	"github.com/sirupsen/logrus"
)

var documentSuffixes = []string{".xml", ".xml.gz", ".xml.xz", ".xml.zst", ".xml.bz2"}

type options struct {
	retries  int
	timeout  time.Duration
	verifier signer.Verifier
}

// Option configures a Loader
type Option func(*options)

// WithRetries sets how many times a failed HTTP request is retried
func WithRetries(retries int) Option {
	return func(opts *options) {
		opts.retries = retries
	}
}

// WithTimeout sets the timeout of a single HTTP request
func WithTimeout(timeout time.Duration) Option {
	return func(opts *options) {
		opts.timeout = timeout
	}
}

// WithVerifier makes the loader require a valid repomd.xml.asc signature
// for repository feeds
func WithVerifier(v signer.Verifier) Option {
	return func(opts *options) {
		opts.verifier = v
	}
}

// Loader reads feed documents
type Loader struct {
	client   *retryablehttp.Client
	verifier signer.Verifier
}

// NewLoader creates a Loader
func NewLoader(opts ...Option) *Loader {
	o := &options{
		retries: defaultRetries,
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(o)
	}

	return &Loader{
		client:   newHTTPClient(o.retries, o.timeout),
		verifier: o.verifier,
	}
}

// IsRemote reports whether source is fetched over HTTP
func IsRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// Load reads the feed document named by source.
//
// A local path is read and decompressed according to its name. An HTTP URL
// pointing at an XML file is downloaded as is; any other URL is treated as a
// repository base and its updateinfo is located through repodata/repomd.xml.
func (l *Loader) Load(ctx context.Context, source string) (*document.Node, error) {
	var (
		data []byte
		err  error
	)

	switch {
	case !IsRemote(source):
		data, err = utils.ReadFile(source)
		if err != nil {
			return nil, &models.UpdateError{Type: models.ErrFeedFetch, Source: source, Err: err}
		}
	case isDocumentURL(source):
		data, err = l.fetchDocument(ctx, source)
	default:
		data, err = l.fetchUpdateInfo(ctx, source)
	}
	if err != nil {
		return nil, err
	}

	root, err := document.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, &models.UpdateError{Type: models.ErrFeedParse, Source: source, Err: err}
	}
	return root, nil
}

func isDocumentURL(source string) bool {
	u, err := url.Parse(source)
	if err != nil {
		return false
	}
	for _, suffix := range documentSuffixes {
		if strings.HasSuffix(u.Path, suffix) {
			return true
		}
	}
	return false
}

func (l *Loader) fetchDocument(ctx context.Context, source string) ([]byte, error) {
	logrus.Infof("Fetching %s", source)
	data, err := l.fetch(ctx, source)
	if err != nil {
		return nil, &models.UpdateError{Type: models.ErrFeedFetch, Source: source, Err: err}
	}

	out, err := utils.Decompress(source, data)
	if err != nil {
		return nil, &models.UpdateError{Type: models.ErrFeedFetch, Source: source, Err: fmt.Errorf("failed to decompress: %w", err)}
	}
	return out, nil
}

// fetchUpdateInfo follows <base>/repodata/repomd.xml to the updateinfo file
func (l *Loader) fetchUpdateInfo(ctx context.Context, base string) ([]byte, error) {
	u, err := url.Parse(base)
	if err != nil {
		return nil, &models.UpdateError{Type: models.ErrFeedFetch, Source: base, Err: fmt.Errorf("failed to parse url: %w", err)}
	}
	rootPath := u.Path

	u.Path = path.Join(rootPath, "repodata/repomd.xml")
	repomdURL := u.String()
	logrus.Infof("Fetching %s", repomdURL)

	repomdData, err := l.fetch(ctx, repomdURL)
	if err != nil {
		return nil, &models.UpdateError{Type: models.ErrFeedFetch, Source: base, Err: err}
	}

	if l.verifier != nil {
		if err := l.verifyRepoMd(ctx, repomdURL, repomdData); err != nil {
			return nil, &models.UpdateError{Type: models.ErrSignature, Source: base, Err: err}
		}
		logrus.Debugf("Verified signature of %s", repomdURL)
	}

	repoMd, err := decodeRepoMd(repomdData)
	if err != nil {
		return nil, &models.UpdateError{Type: models.ErrFeedParse, Source: base, Err: err}
	}

	entry, ok := repoMd.UpdateInfo()
	if !ok {
		return nil, &models.UpdateError{Type: models.ErrFeedFetch, Source: base, Err: models.ErrNoUpdateInfo}
	}

	u.Path = path.Join(rootPath, entry.Location.Href)
	updateInfoURL := u.String()
	logrus.Infof("Fetching %s", updateInfoURL)

	data, err := l.fetch(ctx, updateInfoURL)
	if err != nil {
		return nil, &models.UpdateError{Type: models.ErrFeedFetch, Source: base, Err: err}
	}

	if entry.Checksum.Value != "" {
		if err := utils.VerifyChecksum(data, entry.Checksum.Type, entry.Checksum.Value); err != nil {
			return nil, &models.UpdateError{Type: models.ErrChecksum, Source: updateInfoURL, Err: err}
		}
	}

	out, err := utils.Decompress(entry.Location.Href, data)
	if err != nil {
		return nil, &models.UpdateError{Type: models.ErrFeedFetch, Source: updateInfoURL, Err: fmt.Errorf("failed to decompress: %w", err)}
	}
	return out, nil
}

func (l *Loader) verifyRepoMd(ctx context.Context, repomdURL string, data []byte) error {
	sig, err := l.fetch(ctx, repomdURL+".asc")
	if err != nil {
		return fmt.Errorf("failed to fetch signature: %w", err)
	}
	return l.verifier.VerifyDetached(data, sig)
}

// IsNoUpdateInfo reports whether err means the repository publishes no updateinfo
func IsNoUpdateInfo(err error) bool {
	return errors.Is(err, models.ErrNoUpdateInfo)
}
