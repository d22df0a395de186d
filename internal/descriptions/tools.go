package descriptions

// Comprehensive tool descriptions with practical examples and use cases

const (
	FormRenderDescription = `Render field values onto a form template and return the finished single-page PDF.

**When to use:** Field regions have been detected on a scanned form and the user has supplied values to fill in.

**Why it's useful:** Reconciles the detector's raster pixel coordinates with the PDF page's point coordinates automatically, so values land inside their boxes regardless of template resolution.

**Examples:**
• Fill a scanned application: "Render the collected answers onto application-scan.jpg at the detected boxes"
• Stamp an existing PDF form: "Place the user's name and address onto lease-agreement.pdf"
• Recover from bad geometry: "Render anyway; unusable boxes fall back to a plain label: value listing"

**Common workflows:**
1. Voice Form Filling: Detect fields → Collect values in conversation → form_render → Return PDF to user
2. Template Reuse: Inspect template → Cache detected boxes → form_render per applicant
3. Degraded Rendering: form_render → mode "list" in response signals geometry was unusable

**Best practices:** Bounding boxes must be in the template raster's pixel space (origin top-left). For image templates the decoded pixel size is authoritative and overrides imageWidth/imageHeight.`

	TemplateInspectDescription = `Classify a template payload and report its dimensions before detection or rendering.

**When to use:** Before running field detection, or to debug why rendering produced unexpected positions.

**Why it's useful:** Tells you which coordinate space field boxes will be computed in (pixel dimensions for images, point dimensions for PDFs) and flags unreadable payloads early.

**Examples:**
• Pre-flight an upload: "Check what kind of template the user uploaded and how big it is"
• Debug placement: "Confirm the PDF's first page is really 612x792 points"
• Catch corruption: "Verify the scanned image decodes before detection spends a vision call on it"

**Common workflows:**
1. Upload Pipeline: template_inspect → route images to detection, PDFs to coordinate mapping
2. Quality Control: template_inspect → reject unreadable payloads with a clear message

**Best practices:** A payload starting with %PDF is always treated as a document even when damaged; everything else must decode as JPEG or PNG.`

	FormServerInfoDescription = `Get server information, available tools, limits, and usage guidance.

**When to use:** At the start of a session to discover the renderer's capabilities, or when unsure which tool fits the task.

**Why it's useful:** Returns the tool inventory with parameter documentation plus the configured template size limit, so clients can plan requests without trial and error.

**Examples:**
• Session startup: "What can this form renderer do and how large may templates be?"
• Integration check: "List the tools and their required parameters"

**Best practices:** Call once and cache; the inventory and limits do not change while the server runs.`
)
