package render

import "fmt"

// ServerInfo returns server information, the tool inventory and usage
// guidance for clients discovering the renderer.
func (s *Service) ServerInfo(_ ServerInfoRequest, serverName, version string) (*ServerInfoResult, error) {
	availableTools := []ToolInfo{
		{
			Name:        "form_render",
			Description: "Render field values onto a form template and return the finished PDF",
			Usage: "Use this tool once field regions have been detected and values collected. " +
				"Accepts a JPEG, PNG or PDF template and draws every value at its scaled position.",
			Parameters: "templateBase64 (required): base64 template bytes, " +
				"imageWidth/imageHeight (image templates): claimed raster dimensions, " +
				"fields (required): array of {name, label, bbox{x,y,width,height}, value}",
		},
		{
			Name:        "template_inspect",
			Description: "Classify a template payload and report its dimensions",
			Usage: "Use this tool before detection or rendering to check what kind of template " +
				"the payload is and which coordinate space field boxes will be computed in.",
			Parameters: "templateBase64 (required): base64 template bytes",
		},
		{
			Name:        "form_server_info",
			Description: "Get server information, available tools and usage guidance",
			Usage:       "Use this tool to discover the renderer's capabilities and limits.",
			Parameters:  "none",
		},
	}

	usageGuidance := `Form Renderer Usage Guide:

1. INSPECT THE TEMPLATE:
   - Use 'template_inspect' to classify the payload (pdf, jpeg, png) and
     learn its dimensions before running field detection against it.

2. DETECT FIELDS (external):
   - Field detection happens outside this server. Bounding boxes must be
     expressed in the template raster's pixel space, origin top-left.

3. RENDER:
   - Use 'form_render' with the template and the detected fields plus values.
   - Image templates: the decoded pixel size is authoritative; the claimed
     imageWidth/imageHeight are only a hint and are overridden.
   - The response is a single-page PDF, base64 encoded.

4. INTERPRET THE RESULT:
   - mode "fields": values were placed at their scaled positions; fields
     with unusable geometry were skipped.
   - mode "list": no field geometry was usable, so the document carries a
     plain "label: value" listing instead of positioned text.

IMPORTANT NOTES:
- Templates are limited to ` + fmt.Sprintf("%d", s.maxRequestSize/(1024*1024)) + `MB decoded
- Multi-page PDF templates are trimmed to their first page
- Field order is preserved; it determines list-mode line order`

	return &ServerInfoResult{
		ServerName:     serverName,
		Version:        version,
		MaxRequestSize: s.maxRequestSize,
		AvailableTools: availableTools,
		UsageGuidance:  usageGuidance,
	}, nil
}
