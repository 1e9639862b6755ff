package model

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
)

// ImageKind discriminates the two forms a product image can take.
type ImageKind int

const (
	// ImageRemote is an image referenced by URL.
	ImageRemote ImageKind = iota
	// ImageInline is an image embedded as raw bytes with a MIME type.
	ImageInline
)

// Image is a product image: either a remote URL or inline binary data.
// Exactly one form is populated. On the wire it is a plain string — a URL
// or a data URI — matching the storefront's JSON format.
type Image struct {
	Kind     ImageKind
	URL      string
	Data     []byte
	MIMEType string
}

// RemoteImage returns an Image referencing url.
func RemoteImage(url string) Image {
	return Image{Kind: ImageRemote, URL: url}
}

// InlineImage returns an Image embedding data with the given MIME type.
func InlineImage(data []byte, mimeType string) Image {
	return Image{Kind: ImageInline, Data: data, MIMEType: mimeType}
}

// ParseImage interprets s as an image reference. Data URIs of the form
// "data:<mime>;base64,<payload>" become inline images; anything else is
// treated as a remote URL.
func ParseImage(s string) (Image, error) {
	if !strings.HasPrefix(s, "data:") {
		return RemoteImage(s), nil
	}

	rest := strings.TrimPrefix(s, "data:")
	mimeType, payload, found := strings.Cut(rest, ";base64,")
	if !found {
		return Image{}, fmt.Errorf("unsupported data URI encoding")
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return Image{}, fmt.Errorf("failed to decode data URI: %w", err)
	}

	return InlineImage(data, mimeType), nil
}

// String renders the image back to its wire form.
func (img Image) String() string {
	if img.Kind == ImageInline {
		return "data:" + img.MIMEType + ";base64," + base64.StdEncoding.EncodeToString(img.Data)
	}
	return img.URL
}

// MarshalJSON encodes the image as its wire string.
func (img Image) MarshalJSON() ([]byte, error) {
	return json.Marshal(img.String())
}

// UnmarshalJSON decodes a URL or data URI string.
func (img *Image) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	parsed, err := ParseImage(s)
	if err != nil {
		return err
	}

	*img = parsed
	return nil
}
