package api

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/adaora/incilens/internal/analysis"
	"github.com/adaora/incilens/internal/kb"
	"github.com/adaora/incilens/internal/profile"
	"github.com/adaora/incilens/internal/storage"
)

// MCPDeps holds dependencies for the MCP server.
type MCPDeps struct {
	Service  *analysis.Service
	Registry *kb.Registry
	Profile  *profile.Manager
	Store    *storage.Store // optional; if nil, the recent-analyses resource returns an empty list
}

// NewMCPServer creates an MCP server exposing ingredient analysis to
// assistant hosts over stdio.
func NewMCPServer(deps MCPDeps) *server.MCPServer {
	s := server.NewMCPServer(
		"incilens",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithInstructions("incilens — cosmetic ingredient safety analysis tuned for melanin-rich skin."),
		server.WithRecovery(),
	)

	// Tools
	s.AddTool(
		mcp.NewTool("analyze_ingredients",
			mcp.WithDescription("Analyze a cosmetic ingredient list and return a safety report: per-ingredient classification, composite score, allergens, irritants, and recommendations."),
			mcp.WithString("text", mcp.Description("The ingredient list, comma/semicolon/newline separated"), mcp.Required()),
		),
		mcpAnalyze(deps),
	)

	s.AddTool(
		mcp.NewTool("lookup_ingredient",
			mcp.WithDescription("Look up a single ingredient in the knowledge base by name or alias."),
			mcp.WithString("name", mcp.Description("Ingredient name, e.g. \"niacinamide\" or \"aqua\""), mcp.Required()),
		),
		mcpLookup(deps),
	)

	s.AddTool(
		mcp.NewTool("set_skin_profile",
			mcp.WithDescription("Update a skin profile field. Keys: skin_type (oily/combination/normal/dry/sensitive), child_mode (bool), pregnant (bool), known_allergies (JSON array or comma list)."),
			mcp.WithString("key", mcp.Description("Profile field key"), mcp.Required()),
			mcp.WithString("value", mcp.Description("Value to set"), mcp.Required()),
		),
		mcpSetProfile(deps),
	)

	// Resources
	s.AddResource(
		mcp.NewResource(
			"user://skin-profile",
			"Skin Profile",
			mcp.WithResourceDescription("Current skin profile as JSON"),
			mcp.WithMIMEType("application/json"),
		),
		mcpResourceProfile(deps),
	)

	s.AddResource(
		mcp.NewResource(
			"kb://ingredients",
			"Ingredient Knowledge Base",
			mcp.WithResourceDescription("All known ingredients with their safety ratings"),
			mcp.WithMIMEType("application/json"),
		),
		mcpResourceIngredients(deps),
	)

	s.AddResource(
		mcp.NewResource(
			"user://recent-analyses",
			"Recent Analyses",
			mcp.WithResourceDescription("Last 10 stored analyses (summaries only)"),
			mcp.WithMIMEType("application/json"),
		),
		mcpResourceRecent(deps),
	)

	return s
}

func mcpAnalyze(deps MCPDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text, err := req.RequireString("text")
		if err != nil {
			return mcpError("text is required"), nil
		}

		res, err := deps.Service.Analyze(ctx, text, "mcp")
		if err != nil {
			return mcpError(fmt.Sprintf("analysis failed: %v", err)), nil
		}

		b, err := json.Marshal(res)
		if err != nil {
			return mcpError(fmt.Sprintf("failed to marshal result: %v", err)), nil
		}
		return mcpText(string(b)), nil
	}
}

func mcpLookup(deps MCPDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := req.RequireString("name")
		if err != nil {
			return mcpError("name is required"), nil
		}

		p, ok := deps.Registry.Find(name)
		if !ok {
			return mcpError(fmt.Sprintf("unknown ingredient %q", name)), nil
		}

		b, err := json.Marshal(p)
		if err != nil {
			return mcpError(fmt.Sprintf("failed to marshal profile: %v", err)), nil
		}
		return mcpText(string(b)), nil
	}
}

func mcpSetProfile(deps MCPDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		key, err := req.RequireString("key")
		if err != nil {
			return mcpError("key is required"), nil
		}
		value, err := req.RequireString("value")
		if err != nil {
			return mcpError("value is required"), nil
		}

		if err := deps.Profile.SetField(key, value); err != nil {
			return mcpError(fmt.Sprintf("failed to set profile field: %v", err)), nil
		}

		return mcpText(fmt.Sprintf("Set %s = %s", key, value)), nil
	}
}

func mcpResourceProfile(deps MCPDeps) server.ResourceHandlerFunc {
	return func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		p, err := deps.Profile.Get()
		if err != nil {
			return nil, fmt.Errorf("failed to get profile: %w", err)
		}

		b, err := json.Marshal(p)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal profile: %w", err)
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

func mcpResourceIngredients(deps MCPDeps) server.ResourceHandlerFunc {
	type entry struct {
		CanonicalName string `json:"canonical_name"`
		Category      string `json:"category"`
		SafetyRating  string `json:"safety_rating"`
	}
	return func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		profiles := deps.Registry.Profiles()
		entries := make([]entry, len(profiles))
		for i, p := range profiles {
			entries[i] = entry{
				CanonicalName: p.CanonicalName,
				Category:      p.Category,
				SafetyRating:  string(p.SafetyRating),
			}
		}

		b, err := json.Marshal(entries)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal ingredients: %w", err)
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

func mcpResourceRecent(deps MCPDeps) server.ResourceHandlerFunc {
	type analysisSummary struct {
		ID          string `json:"id"`
		CreatedAt   string `json:"created_at"`
		SafetyScore int    `json:"safety_score"`
		Input       string `json:"input"`
	}
	return func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		summaries := []analysisSummary{}
		if deps.Store != nil {
			analyses, err := deps.Store.ListAnalyses(10, 0)
			if err != nil {
				return nil, fmt.Errorf("failed to list analyses: %w", err)
			}
			for _, a := range analyses {
				input := a.InputText
				if len(input) > 200 {
					input = strings.TrimSpace(input[:200]) + "..."
				}
				summaries = append(summaries, analysisSummary{
					ID:          a.ID,
					CreatedAt:   a.CreatedAt.Format(time.RFC3339),
					SafetyScore: a.SafetyScore,
					Input:       input,
				})
			}
		}

		b, err := json.Marshal(summaries)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal analyses: %w", err)
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
