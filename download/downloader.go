package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"jonnyzzz.com/nerdfonts/fonterror"
	"jonnyzzz.com/nerdfonts/layout"
	"jonnyzzz.com/nerdfonts/logging"
)

const (
	// DefaultBaseURL points at the latest Nerd Fonts release assets
	DefaultBaseURL = "https://github.com/ryanoasis/nerd-fonts/releases/latest/download"
	// DefaultBufferSize is the transfer buffer used while streaming an archive
	DefaultBufferSize = 4 << 20
	// DefaultTimeout bounds a whole archive transfer
	DefaultTimeout = 5 * time.Minute
)

// Fetcher streams font archives from the release server
type Fetcher struct {
	HTTPClient *http.Client
	BaseURL    string
	Format     layout.ArchiveFormat
	UserAgent  string
	BufferSize int
}

// NewFetcher creates a Fetcher with default settings
func NewFetcher(userAgent string) *Fetcher {
	return &Fetcher{
		HTTPClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		BaseURL:    DefaultBaseURL,
		Format:     layout.FormatZip,
		UserAgent:  userAgent,
		BufferSize: DefaultBufferSize,
	}
}

// ArchiveFormat is the format of the archives this Fetcher downloads
func (f *Fetcher) ArchiveFormat() layout.ArchiveFormat {
	return f.Format
}

// ArchiveURL returns <BaseURL>/<fontName>.<format>
func (f *Fetcher) ArchiveURL(fontName string) string {
	return fmt.Sprintf("%s/%s.%s", strings.TrimSuffix(f.BaseURL, "/"), url.PathEscape(fontName), f.Format)
}

// Fetch downloads the archive for fontName into sink.
// The sink may hold partial data when an error is returned.
func (f *Fetcher) Fetch(ctx context.Context, fontName string, sink io.Writer) error {
	logger := logging.GetLogger("download")
	archiveURL := f.ArchiveURL(fontName)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, archiveURL, nil)
	if err != nil {
		return fonterror.Wrap(err, fonterror.InvalidHTTPResponse, "failed to create request for %s", archiveURL)
	}
	if f.UserAgent != "" {
		req.Header.Set("User-Agent", f.UserAgent)
	}

	logger.Info().Str("font", fontName).Str("url", archiveURL).Msg("Downloading font archive")

	resp, err := f.HTTPClient.Do(req)
	if err != nil {
		return fonterror.Wrap(err, fonterror.InvalidHTTPResponse, "failed to download %s", archiveURL)
	}
	//goland:noinspection GoUnhandledErrorResult
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fonterror.New(fonterror.InvalidHTTPResponse, "unexpected status %d for %s", resp.StatusCode, archiveURL).
			WithDetail("status", resp.StatusCode).
			WithDetail("url", archiveURL)
	}

	bufferSize := f.BufferSize
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}

	// plain Writer/Reader wrappers keep io.CopyBuffer on our buffer
	written, err := io.CopyBuffer(struct{ io.Writer }{sink}, struct{ io.Reader }{resp.Body}, make([]byte, bufferSize))
	if err != nil {
		return fonterror.Wrap(err, fonterror.InvalidHTTPResponse, "failed to read response body of %s", archiveURL)
	}

	logger.Debug().Str("font", fontName).Int64("bytes", written).Msg("Font archive downloaded")
	return nil
}
