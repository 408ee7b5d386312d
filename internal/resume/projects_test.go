package resume

import (
	"strings"
	"testing"
)

func TestExtractProjectsCapturesSentenceSnippets(t *testing.T) {
	text := "Developed a real-time chat application. Built docker pipelines for deployment."
	got := ExtractProjects(text)

	var foundChat, foundDocker bool
	for snippet := range got {
		if strings.Contains(snippet, "chat application") {
			foundChat = true
		}
		if strings.Contains(snippet, "docker") {
			foundDocker = true
		}
	}
	if !foundChat {
		t.Fatalf("expected chat application snippet in %v", SortedSet(got))
	}
	if !foundDocker {
		t.Fatalf("expected docker snippet in %v", SortedSet(got))
	}
}

func TestExtractProjectsDiscardsShortSnippets(t *testing.T) {
	got := ExtractProjects("built an app.")
	if len(got) != 0 {
		t.Fatalf("expected short snippets discarded, got %v", SortedSet(got))
	}
}

func TestExtractProjectsStopsAtLineBreak(t *testing.T) {
	got := ExtractProjects("implemented search indexing service\nunrelated next line")
	for snippet := range got {
		if strings.Contains(snippet, "unrelated") {
			t.Fatalf("snippet crossed line break: %q", snippet)
		}
	}
}
