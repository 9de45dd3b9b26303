package api

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/kalambet/folio/internal/download"
	"github.com/kalambet/folio/internal/resume"
	"github.com/kalambet/folio/internal/view"
)

func newTestMCPDeps() MCPDeps {
	return MCPDeps{
		Projector: view.NewProjector(testResume(), view.NewMarkdown(), testDownload, ResumePath),
		Download:  testDownload,
		Version:   "test",
	}
}

func toolText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("no content in result")
	}
	tc, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected TextContent, got %T", result.Content[0])
	}
	return tc.Text
}

func makeCallToolRequest(name string, args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func makeReadResourceRequest(uri string) mcp.ReadResourceRequest {
	return mcp.ReadResourceRequest{
		Params: mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestMCPTool_ListSkills_All(t *testing.T) {
	handler := mcpListSkills(newTestMCPDeps())

	result, err := handler(context.Background(), makeCallToolRequest("list_skills", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %s", toolText(t, result))
	}

	var skills []resume.Skill
	if err := json.Unmarshal([]byte(toolText(t, result)), &skills); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(skills) != 3 {
		t.Fatalf("expected 3 skills, got %d", len(skills))
	}
	if skills[0].Title != "C" || skills[1].Title != "Go" || skills[2].Title != "SQL" {
		t.Errorf("unexpected order: %+v", skills)
	}
}

func TestMCPTool_ListSkills_Category(t *testing.T) {
	handler := mcpListSkills(newTestMCPDeps())

	result, err := handler(context.Background(), makeCallToolRequest("list_skills", map[string]interface{}{
		"category": "DB",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var skills []resume.Skill
	if err := json.Unmarshal([]byte(toolText(t, result)), &skills); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(skills) != 1 || skills[0].Title != "SQL" {
		t.Errorf("skills = %+v, want [SQL]", skills)
	}
}

func TestMCPTool_ListSkills_UnknownCategory(t *testing.T) {
	handler := mcpListSkills(newTestMCPDeps())

	result, err := handler(context.Background(), makeCallToolRequest("list_skills", map[string]interface{}{
		"category": "Cooking",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text := toolText(t, result); text != "[]" {
		t.Errorf("text = %q, want []", text)
	}
}

func TestMCPTool_ListCategories(t *testing.T) {
	handler := mcpListCategories(newTestMCPDeps())

	result, err := handler(context.Background(), makeCallToolRequest("list_categories", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var names []string
	if err := json.Unmarshal([]byte(toolText(t, result)), &names); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(names) != 3 || names[0] != "All" || names[1] != "DB" || names[2] != "Lang" {
		t.Errorf("categories = %v", names)
	}
}

func TestMCPResource_Background(t *testing.T) {
	handler := mcpResourceBackground(newTestMCPDeps())

	contents, err := handler(context.Background(), makeReadResourceRequest("resume://background"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(contents) != 1 {
		t.Fatalf("expected 1 content, got %d", len(contents))
	}
	tc, ok := contents[0].(mcp.TextResourceContents)
	if !ok {
		t.Fatalf("expected TextResourceContents, got %T", contents[0])
	}

	var out map[string][]backgroundEntry
	if err := json.Unmarshal([]byte(tc.Text), &out); err != nil {
		t.Fatalf("failed to parse resource: %v", err)
	}
	work := out["work"]
	if len(work) != 2 {
		t.Fatalf("work entries = %d, want 2", len(work))
	}
	if work[0].Description != "Did things" {
		t.Errorf("description = %q, want plain text", work[0].Description)
	}
	edu := out["education"]
	if len(edu) != 1 || len(edu[0].Degrees) != 1 {
		t.Fatalf("education = %+v", edu)
	}
	if edu[0].Degrees[0] != "B.S., CS" {
		t.Errorf("degree = %q, want title and description", edu[0].Degrees[0])
	}
}

func TestMCPResource_Download(t *testing.T) {
	handler := mcpResourceDownload(newTestMCPDeps())

	contents, err := handler(context.Background(), makeReadResourceRequest("resume://download"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tc := contents[0].(mcp.TextResourceContents)

	var info download.Info
	if err := json.Unmarshal([]byte(tc.Text), &info); err != nil {
		t.Fatalf("failed to parse resource: %v", err)
	}
	if info.Name != testDownload.Name || info.Pages != testDownload.Pages {
		t.Errorf("info = %+v", info)
	}
}

func TestNewMCPServer(t *testing.T) {
	if s := NewMCPServer(newTestMCPDeps()); s == nil {
		t.Fatal("NewMCPServer returned nil")
	}
}
