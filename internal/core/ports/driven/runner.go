package driven

import "context"

// CommandRunner executes an external command and returns its combined
// output. It exists so adapters that shell out (the PDF normaliser runs
// pdftotext) can be tested with a fake.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}
