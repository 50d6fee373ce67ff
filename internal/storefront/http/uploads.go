package http

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/aussiebroadwan/storefront/pkg/httpx"
	"github.com/aussiebroadwan/storefront/pkg/shopsdk"
)

const (
	maxBodyBytes   = 1 << 20
	maxImageBytes  = 5 << 20
	maxUploadBytes = maxImageBytes + maxBodyBytes
)

var (
	errBadUpload = errors.New("bad_upload")
	errBadID     = errors.New("bad_id")
)

// Only sniffable raster formats are accepted.
var imageExtensions = map[string]string{
	"image/png":    ".png",
	"image/jpeg":   ".jpg",
	"image/gif":    ".gif",
	"image/webp":   ".webp",
	"image/bmp":    ".bmp",
	"image/x-icon": ".ico",
}

func isMultipart(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mt == "multipart/form-data"
}

// parseMultipart reads a multipart body capped at maxUploadBytes.
func parseMultipart(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return errBadUpload
		}
		return fmt.Errorf("%w: %v", httpx.ErrBadPayload, err)
	}
	return nil
}

// saveImage stores the file in form field as "<prefix>-<uuid><ext>" under
// dir and returns the file name. An absent field yields "".
func saveImage(r *http.Request, field, dir, prefix string) (string, error) {
	f, hdr, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", errBadUpload, err)
	}
	defer f.Close()

	if hdr.Size > maxImageBytes {
		return "", errBadUpload
	}

	head := make([]byte, 512)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", fmt.Errorf("%w: %v", errBadUpload, err)
	}
	head = head[:n]

	ext, ok := imageExtensions[http.DetectContentType(head)]
	if !ok {
		return "", errBadUpload
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	name := prefix + "-" + uuid.NewString() + ext
	path := filepath.Join(dir, name)
	out, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create upload: %w", err)
	}

	_, err = io.Copy(out, io.MultiReader(bytes.NewReader(head), io.LimitReader(f, maxImageBytes)))
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("write upload: %w", err)
	}
	return name, nil
}

// discardUpload removes a file saved by saveImage whose request then failed.
func discardUpload(dir, name string) {
	if name == "" {
		return
	}
	_ = os.Remove(filepath.Join(dir, name))
}

// uploadsHandler serves stored images. Directory listings are not exposed.
func uploadsHandler(dir string) http.Handler {
	fs := http.FileServer(http.Dir(dir))
	return http.StripPrefix("/uploads", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			shopsdk.ErrRouteNotFound.WriteError(w)
			return
		}
		fs.ServeHTTP(w, r)
	}))
}
