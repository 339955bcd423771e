package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jmylchreest/inkswatch/internal/colour"
	"github.com/jmylchreest/inkswatch/internal/inks"
)

// Default result counts when a client omits them.
const (
	defaultSearchResults = 10
	defaultClosest       = 5
	defaultMakerResults  = 50
	defaultPaletteSize   = 5
)

// jsonResult renders v as indented JSON text content.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

// errorResult reports a query failure to the client as tool output.
func errorResult(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

// --- search_inks_by_name ---

// SearchByNameTool fuzzy searches ink names.
type SearchByNameTool struct {
	svc *inks.Service
}

// NewSearchByNameTool creates the search_inks_by_name tool.
func NewSearchByNameTool(svc *inks.Service) *SearchByNameTool {
	return &SearchByNameTool{svc: svc}
}

func (t *SearchByNameTool) Definition() mcp.Tool {
	return mcp.NewTool("search_inks_by_name",
		mcp.WithDescription("Fuzzy search inks by name or maker. Tolerates typos, missing words and accents."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("query", mcp.Required(), mcp.Description("Ink name or part of it, e.g. 'oxblood' or 'iroshizuku kon'")),
		mcp.WithNumber("max_results", mcp.Description("Maximum number of results"), mcp.DefaultNumber(defaultSearchResults), mcp.Min(1), mcp.Max(inks.MaxSearchResults)),
	)
}

func (t *SearchByNameTool) Handle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return errorResult(err)
	}

	results, err := t.svc.SearchByName(query, req.GetInt("max_results", defaultSearchResults))
	if err != nil {
		return errorResult(err)
	}
	return jsonResult(map[string]any{"query": query, "results": results})
}

// --- search_inks_by_color ---

// SearchByColourTool finds the inks closest to a colour.
type SearchByColourTool struct {
	svc *inks.Service
}

// NewSearchByColourTool creates the search_inks_by_color tool.
func NewSearchByColourTool(svc *inks.Service) *SearchByColourTool {
	return &SearchByColourTool{svc: svc}
}

func (t *SearchByColourTool) Definition() mcp.Tool {
	return mcp.NewTool("search_inks_by_color",
		mcp.WithDescription("Find the inks whose scanned colour is closest to a hex colour."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("color", mcp.Required(), mcp.Description("Hex colour, e.g. '#1a4b8c' or '1a4b8c'")),
		mcp.WithNumber("max_results", mcp.Description("Maximum number of results"), mcp.DefaultNumber(defaultSearchResults), mcp.Min(1), mcp.Max(inks.MaxSearchResults)),
	)
}

func (t *SearchByColourTool) Handle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	hex, err := req.RequireString("color")
	if err != nil {
		return errorResult(err)
	}

	res, err := t.svc.SearchByColour(hex, req.GetInt("max_results", defaultSearchResults))
	if err != nil {
		return errorResult(err)
	}
	return jsonResult(res)
}

// --- analyze_color ---

// AnalyzeColourTool classifies a colour and lists the closest inks.
type AnalyzeColourTool struct {
	svc *inks.Service
}

// NewAnalyzeColourTool creates the analyze_color tool.
func NewAnalyzeColourTool(svc *inks.Service) *AnalyzeColourTool {
	return &AnalyzeColourTool{svc: svc}
}

func (t *AnalyzeColourTool) Definition() mcp.Tool {
	return mcp.NewTool("analyze_color",
		mcp.WithDescription("Describe a hex colour (family, brightness, saturation, HSL) and list the closest inks."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("color", mcp.Required(), mcp.Description("Hex colour, e.g. '#8b0000'")),
		mcp.WithNumber("max_closest", mcp.Description("Number of closest inks to include"), mcp.DefaultNumber(defaultClosest), mcp.Min(1), mcp.Max(inks.MaxSearchResults)),
	)
}

func (t *AnalyzeColourTool) Handle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	hex, err := req.RequireString("color")
	if err != nil {
		return errorResult(err)
	}

	res, err := t.svc.SearchByColour(hex, req.GetInt("max_closest", defaultClosest))
	if err != nil {
		return errorResult(err)
	}
	return jsonResult(map[string]any{
		"color":       res.Target.Hex,
		"rgb":         res.Target.RGB,
		"hsl":         res.Target.HSL,
		"family":      res.Target.Family,
		"description": res.Target.Description,
		"closest":     res.Results,
	})
}

// --- get_ink_details ---

// InkDetailsTool returns the full record of one ink.
type InkDetailsTool struct {
	svc *inks.Service
}

// NewInkDetailsTool creates the get_ink_details tool.
func NewInkDetailsTool(svc *inks.Service) *InkDetailsTool {
	return &InkDetailsTool{svc: svc}
}

func (t *InkDetailsTool) Definition() mcp.Tool {
	return mcp.NewTool("get_ink_details",
		mcp.WithDescription("Get the full details of an ink by its id, including maker and scan date when known."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("ink_id", mcp.Required(), mcp.Description("Ink id as returned by the search tools")),
	)
}

func (t *InkDetailsTool) Handle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("ink_id")
	if err != nil {
		return errorResult(err)
	}

	d, err := t.svc.Details(id)
	if err != nil {
		return errorResult(err)
	}
	return jsonResult(d)
}

// --- get_inks_by_maker ---

// InksByMakerTool lists the inks of one maker.
type InksByMakerTool struct {
	svc *inks.Service
}

// NewInksByMakerTool creates the get_inks_by_maker tool.
func NewInksByMakerTool(svc *inks.Service) *InksByMakerTool {
	return &InksByMakerTool{svc: svc}
}

func (t *InksByMakerTool) Definition() mcp.Tool {
	return mcp.NewTool("get_inks_by_maker",
		mcp.WithDescription("List the inks made by a maker. Use list_makers for valid maker names."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("maker", mcp.Required(), mcp.Description("Maker name, e.g. 'Diamine'")),
		mcp.WithNumber("max_results", mcp.Description("Maximum number of inks"), mcp.DefaultNumber(defaultMakerResults), mcp.Min(1), mcp.Max(inks.MaxMakerResults)),
	)
}

func (t *InksByMakerTool) Handle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	maker, err := req.RequireString("maker")
	if err != nil {
		return errorResult(err)
	}

	res, err := t.svc.ByMaker(maker, req.GetInt("max_results", defaultMakerResults))
	if err != nil {
		return errorResult(err)
	}
	return jsonResult(res)
}

// --- list_makers ---

// ListMakersTool lists makers and their ink counts.
type ListMakersTool struct {
	svc *inks.Service
}

// NewListMakersTool creates the list_makers tool.
func NewListMakersTool(svc *inks.Service) *ListMakersTool {
	return &ListMakersTool{svc: svc}
}

func (t *ListMakersTool) Definition() mcp.Tool {
	return mcp.NewTool("list_makers",
		mcp.WithDescription("List every ink maker in the catalog with its number of inks."),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

func (t *ListMakersTool) Handle(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	makers := t.svc.Makers()
	return jsonResult(map[string]any{"count": len(makers), "makers": makers})
}

// --- generate_palette ---

// PaletteTool builds palettes of distinct inks.
type PaletteTool struct {
	svc *inks.Service
}

// NewPaletteTool creates the generate_palette tool.
func NewPaletteTool(svc *inks.Service) *PaletteTool {
	return &PaletteTool{svc: svc}
}

func (t *PaletteTool) Definition() mcp.Tool {
	rules := colour.HarmonyRules()
	ruleNames := make([]string, len(rules))
	for i, r := range rules {
		ruleNames[i] = string(r)
	}

	return mcp.NewTool("generate_palette",
		mcp.WithDescription("Build a palette of distinct inks from a built-in theme, a comma-separated list of hex colours, or a base hex colour with a harmony rule. The palette can be shorter than requested when the catalog has no further distinct match."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("theme", mcp.Required(), mcp.Description("Theme name (see list_palette_themes), hex list like '#112233,#445566', or base hex colour when harmony is set")),
		mcp.WithNumber("palette_size", mcp.Description("Number of inks"), mcp.DefaultNumber(defaultPaletteSize), mcp.Min(1), mcp.Max(inks.MaxPaletteSize)),
		mcp.WithString("harmony", mcp.Description("Colour harmony rule applied to a base colour"), mcp.Enum(ruleNames...)),
	)
}

func (t *PaletteTool) Handle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	theme, err := req.RequireString("theme")
	if err != nil {
		return errorResult(err)
	}

	p, err := t.svc.BuildPalette(inks.PaletteRequest{
		Theme:   theme,
		Size:    req.GetInt("palette_size", defaultPaletteSize),
		Harmony: req.GetString("harmony", ""),
	})
	if err != nil {
		return errorResult(err)
	}
	return jsonResult(p)
}

// --- list_palette_themes ---

// ListThemesTool lists the built-in palette themes.
type ListThemesTool struct{}

// NewListThemesTool creates the list_palette_themes tool.
func NewListThemesTool() *ListThemesTool {
	return &ListThemesTool{}
}

func (t *ListThemesTool) Definition() mcp.Tool {
	return mcp.NewTool("list_palette_themes",
		mcp.WithDescription("List the built-in palette themes and their target colours."),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

func (t *ListThemesTool) Handle(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(map[string]any{"themes": inks.Themes()})
}
