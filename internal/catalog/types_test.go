package catalog

import (
	"strings"
	"testing"
)

func TestShortTextPrefersShortDescription(t *testing.T) {
	p := Product{ShortDescription: "quick blurb", Description: "long text"}
	if got := p.ShortText(); got != "quick blurb" {
		t.Fatalf("got %q", got)
	}
}

func TestShortTextTruncatesLongDescriptions(t *testing.T) {
	p := Product{Description: strings.Repeat("x", 200)}
	got := p.ShortText()
	if len([]rune(got)) != 83 {
		t.Fatalf("length: got %d runes", len([]rune(got)))
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("missing ellipsis: %q", got)
	}
}

func TestShortTextKeepsShortDescriptions(t *testing.T) {
	p := Product{Description: "fits as is"}
	if got := p.ShortText(); got != "fits as is" {
		t.Fatalf("got %q", got)
	}
}
