package driven

import "context"

// MinutesSource locates and downloads FOMC minutes PDFs from the Fed's
// public calendar page.
type MinutesSource interface {
	// FindLatest returns the absolute URL and derived filename of the
	// first minutes PDF linked from the calendar page. Fails with
	// domain.ErrNoTarget when no matching link exists.
	FindLatest(ctx context.Context) (url string, filename string, err error)

	// Download fetches the PDF at url into destDir under filename and
	// returns the written path. Fails with domain.ErrDownloadFailed on a
	// non-success status.
	Download(ctx context.Context, url, filename, destDir string) (string, error)
}
