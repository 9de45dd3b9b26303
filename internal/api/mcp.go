package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/kalambet/folio/internal/download"
	"github.com/kalambet/folio/internal/resume"
	"github.com/kalambet/folio/internal/view"
)

// MCPDeps holds dependencies for the MCP server.
type MCPDeps struct {
	Projector *view.Projector
	Download  download.Info
	Version   string
}

// NewMCPServer creates an MCP server exposing the resume as tools and
// resources.
func NewMCPServer(deps MCPDeps) *server.MCPServer {
	version := deps.Version
	if version == "" {
		version = "dev"
	}
	s := server.NewMCPServer(
		"folio",
		version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("folio: read-only access to a personal resume (skills, background, downloadable PDF)."),
		server.WithRecovery(),
	)

	s.AddTool(
		mcp.NewTool("list_skills",
			mcp.WithDescription("List skills ordered by proficiency (highest first), optionally restricted to one category."),
			mcp.WithString("category", mcp.Description(`Category to filter by; "All" or empty for every skill`)),
		),
		mcpListSkills(deps),
	)

	s.AddTool(
		mcp.NewTool("list_categories",
			mcp.WithDescription(`List skill categories in display order, starting with "All".`),
		),
		mcpListCategories(deps),
	)

	s.AddResource(
		mcp.NewResource(
			"resume://background",
			"Background",
			mcp.WithResourceDescription("Education, work, research and languages as JSON with plain-text descriptions"),
			mcp.WithMIMEType("application/json"),
		),
		mcpResourceBackground(deps),
	)

	s.AddResource(
		mcp.NewResource(
			"resume://download",
			"Resume PDF",
			mcp.WithResourceDescription("Metadata of the downloadable resume PDF"),
			mcp.WithMIMEType("application/json"),
		),
		mcpResourceDownload(deps),
	)

	return s
}

func mcpListSkills(deps MCPDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		category := req.GetString("category", "")
		if category == "" {
			category = resume.AllCategories
		}

		skills := deps.Projector.Skills(category)
		if skills == nil {
			skills = []resume.Skill{}
		}

		b, err := json.Marshal(skills)
		if err != nil {
			return mcpError(fmt.Sprintf("failed to marshal skills: %v", err)), nil
		}
		return mcpText(string(b)), nil
	}
}

func mcpListCategories(deps MCPDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cats := deps.Projector.Categories()
		names := make([]string, len(cats))
		for i, c := range cats {
			names[i] = c.Name
		}
		b, err := json.Marshal(names)
		if err != nil {
			return mcpError(fmt.Sprintf("failed to marshal categories: %v", err)), nil
		}
		return mcpText(string(b)), nil
	}
}

type backgroundEntry struct {
	Title       string   `json:"title"`
	Link        string   `json:"link,omitempty"`
	Description string   `json:"description,omitempty"`
	Degrees     []string `json:"degrees,omitempty"`
}

func mcpResourceBackground(deps MCPDeps) server.ResourceHandlerFunc {
	return func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		out := make(map[string][]backgroundEntry)
		for _, sec := range deps.Projector.Background().Sections {
			entries := make([]backgroundEntry, 0, len(sec.Entries))
			for _, e := range sec.Entries {
				be := backgroundEntry{
					Title:       e.Title,
					Link:        e.Link,
					Description: view.PlainText(e.Description),
				}
				for _, d := range e.Degrees {
					deg := d.Title
					if d.Description != "" {
						deg += ", " + d.Description
					}
					be.Degrees = append(be.Degrees, deg)
				}
				entries = append(entries, be)
			}
			out[sec.Key] = entries
		}

		b, err := json.Marshal(out)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal background: %w", err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     string(b),
			},
		}, nil
	}
}

func mcpResourceDownload(deps MCPDeps) server.ResourceHandlerFunc {
	return func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		b, err := json.Marshal(deps.Download)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal download info: %w", err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     string(b),
			},
		}, nil
	}
}

func mcpText(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: text},
		},
	}
}

func mcpError(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: msg},
		},
		IsError: true,
	}
}
