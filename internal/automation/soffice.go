// Package automation drives a headless LibreOffice process for the format
// conversions wordprocessingml alone cannot express (pdf, doc, html).
package automation

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	pdflib "github.com/ledongthuc/pdf"
)

// Soffice wraps the soffice binary. A zero Available() backend still
// constructs; callers decide per operation whether the missing binary is
// fatal.
type Soffice struct {
	path    string // resolved binary path, empty when unavailable
	timeout time.Duration
}

// Probe locates the soffice binary once at startup. binary may be a bare
// name looked up on PATH or an explicit path.
func Probe(binary string, timeout time.Duration) *Soffice {
	s := &Soffice{timeout: timeout}
	if binary == "" {
		binary = "soffice"
	}
	if path, err := exec.LookPath(binary); err == nil {
		s.path = path
	}
	return s
}

// Available reports whether the automation backend can run.
func (s *Soffice) Available() bool { return s.path != "" }

// Convert converts src to the given target format ("pdf", "doc", "docx",
// "html", "txt") writing the result next to outPath's directory and
// renaming it to outPath. The external process is bounded by the configured
// timeout and always reaped.
func (s *Soffice) Convert(ctx context.Context, src, outPath, format string) error {
	if !s.Available() {
		return fmt.Errorf("soffice binary not found; conversion to %s unavailable", format)
	}
	outDir := filepath.Dir(outPath)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	// soffice writes <basename>.<format> into the --outdir.
	cmd := exec.CommandContext(ctx, s.path,
		"--headless", "--norestore",
		"--convert-to", format,
		"--outdir", outDir,
		src,
	)
	out, err := cmd.CombinedOutput()
	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("soffice conversion timed out after %s", s.timeout)
	}
	if err != nil {
		return fmt.Errorf("soffice conversion failed: %w: %s", err, strings.TrimSpace(string(out)))
	}

	base := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	produced := filepath.Join(outDir, base+"."+format)
	if produced == outPath {
		return nil
	}
	if _, err := os.Stat(produced); err != nil {
		return fmt.Errorf("soffice reported success but %s was not produced", produced)
	}
	if err := os.Rename(produced, outPath); err != nil {
		return fmt.Errorf("move converted file: %w", err)
	}
	return nil
}

// VerifyPDF opens a produced PDF and returns its page count, confirming the
// conversion yielded a readable file.
func VerifyPDF(path string) (int, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open converted pdf: %w", err)
	}
	defer f.Close()
	return reader.NumPage(), nil
}
