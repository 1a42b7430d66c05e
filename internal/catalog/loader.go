package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Loader is the sole data-entry point into the Store. It fetches the static
// catalog document from an HTTP URL or a local file, decodes it, and
// validates every record. One shot, no retry; a failure leaves the store as
// it was.
type Loader struct {
	src    string
	client *http.Client
}

func NewLoader(src string) *Loader {
	return &Loader{
		src:    src,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (l *Loader) Load(ctx context.Context) ([]Product, error) {
	raw, err := l.fetch(ctx)
	if err != nil {
		return nil, err
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog document: %w", err)
	}
	if err := validate.Struct(doc); err != nil {
		return nil, fmt.Errorf("validate catalog document: %w", err)
	}
	return doc.Products, nil
}

func (l *Loader) fetch(ctx context.Context) ([]byte, error) {
	if !strings.HasPrefix(l.src, "http://") && !strings.HasPrefix(l.src, "https://") {
		raw, err := os.ReadFile(l.src)
		if err != nil {
			return nil, fmt.Errorf("read catalog file: %w", err)
		}
		return raw, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.src, nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch catalog: http=%d", resp.StatusCode)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read catalog response: %w", err)
	}
	return raw, nil
}
