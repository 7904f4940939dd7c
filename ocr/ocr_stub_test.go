//go:build !ocr

package ocr

import (
	"errors"
	"testing"

	"github.com/tsawler/deckforge/decks"
	"github.com/tsawler/deckforge/render"
)

func TestStub_New(t *testing.T) {
	client, err := New()
	if !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("New() error = %v, want ErrOCRNotEnabled", err)
	}
	if client != nil {
		t.Error("expected nil client when OCR is disabled")
	}
}

func TestStub_Methods(t *testing.T) {
	var client *Client
	if err := client.Close(); err != nil {
		t.Errorf("Close on nil client: %v", err)
	}

	c := &Client{}
	if _, err := c.RecognizeImage(nil); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("RecognizeImage() error = %v", err)
	}
	if err := c.SetLanguage("eng"); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("SetLanguage() error = %v", err)
	}
	if err := c.SetPageSegMode(PSM_AUTO); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("SetPageSegMode() error = %v", err)
	}
}

func TestStub_VerifyTitles(t *testing.T) {
	var rec Recognizer = &Client{}
	checks, err := VerifyTitles(rec, decks.Tokens(), render.Options{Width: 320})
	if !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("VerifyTitles() error = %v, want ErrOCRNotEnabled", err)
	}
	if len(checks) != 0 {
		t.Errorf("got %d checks before the first failure", len(checks))
	}
}
