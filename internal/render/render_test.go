package render

import (
	"strings"
	"testing"
)

func TestRenderHTMLBody(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatal(err)
	}

	msg, err := r.Render("Weekly Digest", "line one\nline two", "https://news.example.com/newsletter/unsubscribe?email=a%40example.com&token=abc")
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(msg.HTML, "<h1>Weekly Digest</h1>") {
		t.Fatalf("subject not rendered as heading:\n%s", msg.HTML)
	}
	if !strings.Contains(msg.HTML, "line one<br/>line two") {
		t.Fatalf("newlines not converted for the html body:\n%s", msg.HTML)
	}
	if !strings.Contains(msg.HTML, `href="https://news.example.com/newsletter/unsubscribe?email=a%40example.com&token=abc"`) {
		t.Fatalf("unsubscribe link missing from footer:\n%s", msg.HTML)
	}
}

func TestRenderTextBody(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatal(err)
	}

	msg, err := r.Render("Weekly Digest", "line one\nline two", "https://news.example.com/u?x=1")
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(msg.Text, "line one\nline two") {
		t.Fatalf("text body must keep newlines verbatim:\n%s", msg.Text)
	}
	if !strings.Contains(msg.Text, "Unsubscribe: https://news.example.com/u?x=1") {
		t.Fatalf("text footer missing unsubscribe url:\n%s", msg.Text)
	}
}

// TestRenderDoesNotEscape pins the documented contract: content is trusted
// upstream and embedded as-is, the renderer never sanitizes it.
func TestRenderDoesNotEscape(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatal(err)
	}

	msg, err := r.Render("T", `<strong>bold</strong> & "quoted"`, "https://example.com/u")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(msg.HTML, `<strong>bold</strong> & "quoted"`) {
		t.Fatalf("content was escaped:\n%s", msg.HTML)
	}
}
