// Package fomcweb locates and downloads FOMC meeting minutes from the
// Federal Reserve's public calendar page.
package fomcweb

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/fedwatch-labs/fedwatch-cli/internal/core/domain"
	"github.com/fedwatch-labs/fedwatch-cli/internal/logger"
)

const (
	// DefaultCalendarURL is the Fed's meeting calendar page.
	DefaultCalendarURL = "https://www.federalreserve.gov/monetarypolicy/fomccalendars.htm"

	// DefaultBaseURL resolves relative links found on the page.
	DefaultBaseURL = "https://www.federalreserve.gov"

	// DefaultMarker is the substring a link must contain to count as
	// minutes.
	DefaultMarker = "fomcminutes"

	defaultTimeout  = 60 * time.Second
	defaultRate     = 1.0
	defaultMaxBytes = 50 << 20

	userAgent = "fedwatch-cli/1.0"
)

// hrefPattern extracts anchor targets from the calendar HTML. The page is
// well-formed enough that a full HTML parser is not needed to find them.
var hrefPattern = regexp.MustCompile(`(?i)<a[^>]+href\s*=\s*["']([^"']+)["']`)

// Config configures the scraper.
type Config struct {
	CalendarURL string
	BaseURL     string
	Marker      string
	Timeout     time.Duration

	// RequestsPerSecond throttles outbound requests. Zero uses a
	// conservative default.
	RequestsPerSecond float64
}

// Scraper implements driven.MinutesSource against the live Fed site.
type Scraper struct {
	cfg     Config
	client  *http.Client
	limiter *rate.Limiter
	base    *url.URL
}

// New creates a scraper. Zero-valued config fields use defaults.
func New(cfg Config) (*Scraper, error) {
	if cfg.CalendarURL == "" {
		cfg.CalendarURL = DefaultCalendarURL
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Marker == "" {
		cfg.Marker = DefaultMarker
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = defaultRate
	}

	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}

	return &Scraper{
		cfg:     cfg,
		client:  &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1),
		base:    base,
	}, nil
}

// FindLatest fetches the calendar page and returns the first minutes PDF
// link in document order, resolved to an absolute URL, with its filename.
func (s *Scraper) FindLatest(ctx context.Context) (string, string, error) {
	body, err := s.fetch(ctx, s.cfg.CalendarURL)
	if err != nil {
		return "", "", fmt.Errorf("fetching calendar page: %w", err)
	}

	marker := strings.ToLower(s.cfg.Marker)
	for _, m := range hrefPattern.FindAllStringSubmatch(string(body), -1) {
		href := m[1]
		lower := strings.ToLower(href)
		if !strings.Contains(lower, marker) || !strings.HasSuffix(lower, ".pdf") {
			continue
		}

		ref, err := url.Parse(href)
		if err != nil {
			logger.Debug("Skipping unparseable link %q: %v", href, err)
			continue
		}
		abs := s.base.ResolveReference(ref)
		filename := path.Base(abs.Path)

		logger.Debug("Found minutes link: %s", abs)
		return abs.String(), filename, nil
	}

	return "", "", fmt.Errorf("%w on %s", domain.ErrNoTarget, s.cfg.CalendarURL)
}

// Download fetches the PDF at rawURL into destDir under filename and
// returns the written path.
func (s *Scraper) Download(ctx context.Context, rawURL, filename, destDir string) (string, error) {
	if filename == "" || strings.Contains(filename, string(os.PathSeparator)) {
		return "", fmt.Errorf("%w: bad filename %q", domain.ErrInvalidInput, filename)
	}
	if err := os.MkdirAll(destDir, 0700); err != nil {
		return "", fmt.Errorf("creating download directory: %w", err)
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrDownloadFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %s returned %s", domain.ErrDownloadFailed, rawURL, resp.Status)
	}

	dest := filepath.Join(destDir, filename)
	tmp := dest + ".part"
	f, err := os.Create(tmp)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}

	written, err := io.Copy(f, io.LimitReader(resp.Body, defaultMaxBytes))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("%w: writing %s: %v", domain.ErrDownloadFailed, filename, err)
	}
	if err := os.Rename(tmp, dest); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("moving download into place: %w", err)
	}

	logger.Info("Downloaded %s (%d bytes)", filename, written)
	return dest, nil
}

// fetch GETs a URL and returns the body, honouring the rate limit.
func (s *Scraper) fetch(ctx context.Context, rawURL string) ([]byte, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s returned %s", rawURL, resp.Status)
	}
	return io.ReadAll(io.LimitReader(resp.Body, defaultMaxBytes))
}
