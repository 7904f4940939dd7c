//go:build !ocr

// Package ocr reads slide previews back with Tesseract to confirm that the
// rendered text is legible.
//
// Without the "ocr" build tag the package compiles against no C library and
// every recognition call fails with ErrOCRNotEnabled. VerifyTitles and
// ContainsText still work with any other Recognizer. Build with
//
//	go build -tags ocr
//
// once Tesseract is installed (brew install tesseract, or
// apt-get install tesseract-ocr libtesseract-dev).
package ocr

import "errors"

// ErrOCRNotEnabled is returned by every Client method in builds without
// the ocr tag.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// Client stands in for the Tesseract client.
type Client struct{}

// New always fails with ErrOCRNotEnabled.
func New() (*Client, error) {
	return nil, ErrOCRNotEnabled
}

// Close is a no-op. It is safe on a nil client.
func (c *Client) Close() error {
	return nil
}

func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	return "", ErrOCRNotEnabled
}

func (c *Client) SetLanguage(lang string) error {
	return ErrOCRNotEnabled
}

func (c *Client) SetPageSegMode(mode PageSegMode) error {
	return ErrOCRNotEnabled
}
