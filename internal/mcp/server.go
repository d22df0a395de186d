package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/krishsharma1008/mcp-form-renderer/internal/config"
	"github.com/krishsharma1008/mcp-form-renderer/internal/descriptions"
	"github.com/krishsharma1008/mcp-form-renderer/internal/render"
)

// Server represents the MCP server instance
type Server struct {
	config        *config.Config
	renderService *render.Service
	mcpServer     *server.MCPServer
}

// NewServer creates a new MCP server instance
func NewServer(cfg *config.Config, renderService *render.Service) (*Server, error) {
	if renderService == nil {
		return nil, fmt.Errorf("renderService cannot be nil")
	}

	// Create MCP server
	mcpServer := server.NewMCPServer(
		cfg.ServerName,
		cfg.Version,
		server.WithToolCapabilities(false), // We don't support dynamic tool capabilities
	)

	s := &Server{
		config:        cfg,
		renderService: renderService,
		mcpServer:     mcpServer,
	}

	// Register tools
	s.registerTools()

	return s, nil
}

// registerTools registers all available MCP tools
func (s *Server) registerTools() {
	// Register form render tool
	formRenderTool := mcp.NewTool(
		"form_render",
		mcp.WithDescription(descriptions.FormRenderDescription),
		mcp.WithString("templateBase64",
			mcp.Required(),
			mcp.Description("Base64-encoded template bytes (JPEG, PNG, or PDF)"),
		),
		mcp.WithNumber("imageWidth",
			mcp.Description("Claimed raster width the field boxes were computed against (image templates)"),
		),
		mcp.WithNumber("imageHeight",
			mcp.Description("Claimed raster height the field boxes were computed against (image templates)"),
		),
		mcp.WithArray("fields",
			mcp.Required(),
			mcp.Description("Detected fields: [{name, label, bbox:{x,y,width,height}, value}], "+
				"bbox in template pixel space with a top-left origin"),
		),
	)
	s.mcpServer.AddTool(formRenderTool, s.handleFormRender)

	// Register template inspect tool
	templateInspectTool := mcp.NewTool(
		"template_inspect",
		mcp.WithDescription(descriptions.TemplateInspectDescription),
		mcp.WithString("templateBase64",
			mcp.Required(),
			mcp.Description("Base64-encoded template bytes (JPEG, PNG, or PDF)"),
		),
	)
	s.mcpServer.AddTool(templateInspectTool, s.handleTemplateInspect)

	// Register server info tool
	serverInfoTool := mcp.NewTool(
		"form_server_info",
		mcp.WithDescription(descriptions.FormServerInfoDescription),
	)
	s.mcpServer.AddTool(serverInfoTool, s.handleServerInfo)
}

// Handler functions
func (s *Server) handleFormRender(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	templateBase64, err := request.RequireString("templateBase64")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	args := request.GetArguments()
	req := render.FormRenderRequest{
		TemplateBase64: templateBase64,
		ImageWidth:     numberOrZero(args["imageWidth"]),
		ImageHeight:    numberOrZero(args["imageHeight"]),
		Fields:         parseFields(args["fields"]),
	}

	result, err := s.renderService.FormRender(req)
	if err != nil {
		kind := render.KindOf(err)
		log.Printf("form_render failed: kind=%s template_chars=%d fields=%d: %v",
			kind, len(req.TemplateBase64), len(req.Fields), err)
		return mcp.NewToolResultError(publicMessage(kind)), nil
	}

	payload, err := json.Marshal(result)
	if err != nil {
		log.Printf("form_render result encoding failed: %v", err)
		return mcp.NewToolResultError(publicMessage(render.KindInternal)), nil
	}
	return mcp.NewToolResultText(string(payload)), nil
}

func (s *Server) handleTemplateInspect(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	templateBase64, err := request.RequireString("templateBase64")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	req := render.TemplateInspectRequest{TemplateBase64: templateBase64}
	result, err := s.renderService.TemplateInspect(req)
	if err != nil {
		kind := render.KindOf(err)
		log.Printf("template_inspect failed: kind=%s template_chars=%d: %v", kind, len(templateBase64), err)
		return mcp.NewToolResultError(publicMessage(kind)), nil
	}

	return mcp.NewToolResultText(s.formatTemplateInspectResult(result)), nil
}

func (s *Server) handleServerInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	req := render.ServerInfoRequest{}
	result, err := s.renderService.ServerInfo(req, s.config.ServerName, s.config.Version)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(s.formatServerInfoResult(result)), nil
}

// Argument coercion
//
// Field geometry is coerced leniently on purpose: a non-numeric bbox
// coordinate becomes NaN and flows into the renderer's validity check,
// where it selects the fallback list layout. Rejecting the whole request
// over one bad box would leave the caller with nothing.

func parseFields(v any) []render.Field {
	items, ok := v.([]any)
	if !ok {
		return nil
	}

	fields := make([]render.Field, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		f := render.Field{
			Name:  stringOrEmpty(m["name"]),
			Label: stringOrEmpty(m["label"]),
			Value: stringOrEmpty(m["value"]),
		}
		if bb, ok := m["bbox"].(map[string]any); ok {
			f.BBox = render.BBox{
				X:      numberOrNaN(bb["x"]),
				Y:      numberOrNaN(bb["y"]),
				Width:  numberOrNaN(bb["width"]),
				Height: numberOrNaN(bb["height"]),
			}
		} else {
			f.BBox = render.BBox{X: math.NaN(), Y: math.NaN(), Width: math.NaN(), Height: math.NaN()}
		}
		fields = append(fields, f)
	}
	return fields
}

func stringOrEmpty(v any) string {
	s, _ := v.(string)
	return s
}

func numberOrNaN(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	case json.Number:
		if f, err := t.Float64(); err == nil {
			return f
		}
	case string:
		if f, err := strconv.ParseFloat(t, 64); err == nil {
			return f
		}
	}
	return math.NaN()
}

func numberOrZero(v any) float64 {
	f := numberOrNaN(v)
	if math.IsNaN(f) {
		return 0
	}
	return f
}

// publicMessage translates a failure kind into the generic response the
// caller sees; internal errors and library details stay in the log.
func publicMessage(kind render.Kind) string {
	switch kind {
	case render.KindEncoding:
		return "template payload is not valid base64"
	case render.KindBadTemplate:
		return "template is neither a parseable PDF nor a decodable JPEG/PNG image"
	case render.KindTooLarge:
		return "template exceeds the configured size limit"
	default:
		return "rendering failed"
	}
}

// Formatting methods
func (s *Server) formatTemplateInspectResult(result *render.TemplateInspectResult) string {
	text := fmt.Sprintf("Template kind: %s\n", result.Kind)
	text += fmt.Sprintf("Readable: %t\n", result.Readable)
	text += fmt.Sprintf("Size: %d bytes\n", result.SizeBytes)

	if result.PageCount > 0 {
		text += fmt.Sprintf("Pages: %d\n", result.PageCount)
	}
	if result.PageWidth > 0 && result.PageHeight > 0 {
		text += fmt.Sprintf("Page size: %.2f x %.2f pt\n", result.PageWidth, result.PageHeight)
	}
	if result.ImageWidth > 0 && result.ImageHeight > 0 {
		text += fmt.Sprintf("Image size: %d x %d px\n", result.ImageWidth, result.ImageHeight)
	}
	if result.Message != "" {
		text += fmt.Sprintf("Note: %s\n", result.Message)
	}

	return text
}

func (s *Server) formatServerInfoResult(result *render.ServerInfoResult) string {
	text := fmt.Sprintf("%s v%s - Server Information\n", result.ServerName, result.Version)
	text += fmt.Sprintf("Max template size: %d MB\n", result.MaxRequestSize/(1024*1024))

	text += "\nAvailable Tools:\n"
	for _, tool := range result.AvailableTools {
		text += fmt.Sprintf("\n• %s\n", tool.Name)
		text += fmt.Sprintf("  Description: %s\n", tool.Description)
		text += fmt.Sprintf("  Usage: %s\n", tool.Usage)
		text += fmt.Sprintf("  Parameters: %s\n", tool.Parameters)
	}

	text += "\n" + result.UsageGuidance

	return text
}

// Run starts the MCP server in the configured mode
func (s *Server) Run(ctx context.Context) error {
	if s.config.IsServerMode() {
		return s.runServerMode(ctx)
	}
	return s.runStdioMode(ctx)
}

// runStdioMode runs the server in stdio mode
func (s *Server) runStdioMode(_ context.Context) error {
	if s.config.IsDebug() {
		log.Printf("Starting form renderer MCP server in stdio mode")
	}

	// Use the mark3labs/mcp-go server.ServeStdio function
	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve stdio: %w", err)
	}
	return nil
}

// runServerMode runs the server in HTTP server mode
func (s *Server) runServerMode(ctx context.Context) error {
	// For now, we'll just use stdio mode since the mark3labs library
	// handles the transport differently
	log.Printf("Server mode not yet implemented with mark3labs/mcp-go")
	log.Printf("Falling back to stdio mode")
	return s.runStdioMode(ctx)
}
