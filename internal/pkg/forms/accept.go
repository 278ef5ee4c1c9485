package forms

import (
	"fmt"
	"giya-service/internal/pkg/constvars"
	"io"

	"github.com/gabriel-vasile/mimetype"
)

// AcceptedTypes maps an accept tag to the content types it admits.
var AcceptedTypes = map[string][]string{
	"image": {constvars.MIMEImagePNG, constvars.MIMEImageJPG, constvars.MIMEImageJPEG},
	"video": {constvars.MIMEVideoMP4},
	"media": {constvars.MIMEImagePNG, constvars.MIMEImageJPG, constvars.MIMEImageJPEG, constvars.MIMEVideoMP4},
}

// DetectContentType sniffs the content of r.
func DetectContentType(r io.Reader) (string, error) {
	detected, err := mimetype.DetectReader(r)
	if err != nil {
		return "", err
	}
	return detected.String(), nil
}

// CheckContentType reports an error when contentType is not admitted by
// the accept group.
func CheckContentType(contentType, accept string) error {
	allowed, ok := AcceptedTypes[accept]
	if !ok {
		return fmt.Errorf("unknown accept group %q", accept)
	}
	mt := mimetype.Lookup(contentType)
	for _, candidate := range allowed {
		if candidate == contentType || (mt != nil && mt.Is(candidate)) {
			return nil
		}
	}
	return fmt.Errorf("content type %s not accepted", contentType)
}
