package models

import "strings"

// DocumentModel is the structured extraction of one HTML document. It is
// produced fresh by every parse call and never mutated afterward.
type DocumentModel struct {
	URL           string             `json:"url,omitempty" yaml:"url,omitempty"`
	BasicInfo     BasicInfo          `json:"basic_info" yaml:"basic_info"`
	Metadata      MetadataBag        `json:"metadata" yaml:"metadata"`
	Structure     StructureInfo      `json:"structure" yaml:"structure"`
	Content       ContentInfo        `json:"content" yaml:"content"`
	Forms         []FormDescriptor   `json:"forms,omitempty" yaml:"forms,omitempty"`
	Media         MediaAssets        `json:"media" yaml:"media"`
	Links         []LinkDescriptor   `json:"links,omitempty" yaml:"links,omitempty"`
	Scripts       []ScriptDescriptor `json:"scripts,omitempty" yaml:"scripts,omitempty"`
	Styles        []StyleDescriptor  `json:"styles,omitempty" yaml:"styles,omitempty"`
	Accessibility AccessibilityInfo  `json:"accessibility" yaml:"accessibility"`
	Microdata     []MicrodataItem    `json:"microdata,omitempty" yaml:"microdata,omitempty"`
	JSONLD        []any              `json:"json_ld,omitempty" yaml:"json_ld,omitempty"`
	Performance   PerformanceInfo    `json:"performance" yaml:"performance"`
	Readability   *ReadabilityInfo   `json:"readability,omitempty" yaml:"readability,omitempty"`
}

// BasicInfo holds the head-level essentials of a page.
type BasicInfo struct {
	Title              string  `json:"title,omitempty" yaml:"title,omitempty"`
	Description        string  `json:"description,omitempty" yaml:"description,omitempty"`
	Keywords           string  `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	Author             string  `json:"author,omitempty" yaml:"author,omitempty"`
	Viewport           string  `json:"viewport,omitempty" yaml:"viewport,omitempty"`
	Charset            string  `json:"charset,omitempty" yaml:"charset,omitempty"`
	Language           string  `json:"language,omitempty" yaml:"language,omitempty"`
	LanguageDetected   bool    `json:"language_detected,omitempty" yaml:"language_detected,omitempty"`
	LanguageConfidence float64 `json:"language_confidence,omitempty" yaml:"language_confidence,omitempty"`
	Canonical          string  `json:"canonical,omitempty" yaml:"canonical,omitempty"`
	Robots             string  `json:"robots,omitempty" yaml:"robots,omitempty"`
}

// MetadataBag buckets meta tags by vocabulary prefix.
type MetadataBag struct {
	OpenGraph   map[string]string `json:"open_graph,omitempty" yaml:"open_graph,omitempty"`
	TwitterCard map[string]string `json:"twitter_card,omitempty" yaml:"twitter_card,omitempty"`
	SchemaOrg   map[string]string `json:"schema_org,omitempty" yaml:"schema_org,omitempty"`
	DublinCore  map[string]string `json:"dublin_core,omitempty" yaml:"dublin_core,omitempty"`
	Custom      map[string]string `json:"custom,omitempty" yaml:"custom,omitempty"`
}

type StructureInfo struct {
	Headings []Heading        `json:"headings,omitempty" yaml:"headings,omitempty"`
	Regions  []SemanticRegion `json:"semantic_regions,omitempty" yaml:"semantic_regions,omitempty"`
}

type Heading struct {
	Level int    `json:"level" yaml:"level"`
	Text  string `json:"text" yaml:"text"`
	ID    string `json:"id,omitempty" yaml:"id,omitempty"`
	Class string `json:"class,omitempty" yaml:"class,omitempty"`
}

// SemanticRegion is one of the HTML5 landmark elements
// (header, nav, main, section, article, aside, footer).
type SemanticRegion struct {
	Tag   string `json:"tag" yaml:"tag"`
	Text  string `json:"text,omitempty" yaml:"text,omitempty"`
	ID    string `json:"id,omitempty" yaml:"id,omitempty"`
	Class string `json:"class,omitempty" yaml:"class,omitempty"`
	Role  string `json:"role,omitempty" yaml:"role,omitempty"`
}

type ContentInfo struct {
	Paragraphs       []string  `json:"paragraphs,omitempty" yaml:"paragraphs,omitempty"`
	Lists            []List    `json:"lists,omitempty" yaml:"lists,omitempty"`
	Tables           []Table   `json:"tables,omitempty" yaml:"tables,omitempty"`
	Blockquotes      []string  `json:"blockquotes,omitempty" yaml:"blockquotes,omitempty"`
	CodeBlocks       []string  `json:"code_blocks,omitempty" yaml:"code_blocks,omitempty"`
	TextContent      string    `json:"text_content,omitempty" yaml:"text_content,omitempty"`
	WordCount        int       `json:"word_count,omitempty" yaml:"word_count,omitempty"`
	EstimatedReadMin float64   `json:"estimated_read_min,omitempty" yaml:"estimated_read_min,omitempty"`
	TopKeywords      []string  `json:"top_keywords,omitempty" yaml:"top_keywords,omitempty"`
}

type List struct {
	Type  string   `json:"type" yaml:"type"` // ul, ol, dl
	Items []string `json:"items" yaml:"items"`
}

// Table is a row-major cell matrix; header rows are not distinguished.
type Table struct {
	Rows [][]string `json:"rows" yaml:"rows"`
}

type FormDescriptor struct {
	Action  string      `json:"action,omitempty" yaml:"action,omitempty"`
	Method  string      `json:"method" yaml:"method"`
	Enctype string      `json:"enctype,omitempty" yaml:"enctype,omitempty"`
	Fields  []FormField `json:"fields,omitempty" yaml:"fields,omitempty"`
}

type FormField struct {
	Type        string `json:"type" yaml:"type"`
	Name        string `json:"name,omitempty" yaml:"name,omitempty"`
	ID          string `json:"id,omitempty" yaml:"id,omitempty"`
	Class       string `json:"class,omitempty" yaml:"class,omitempty"`
	Placeholder string `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Required    bool   `json:"required,omitempty" yaml:"required,omitempty"`
	Value       string `json:"value,omitempty" yaml:"value,omitempty"`
}

type MediaAssets struct {
	Images  []ImageAsset  `json:"images,omitempty" yaml:"images,omitempty"`
	Videos  []VideoAsset  `json:"videos,omitempty" yaml:"videos,omitempty"`
	Audio   []AudioAsset  `json:"audio,omitempty" yaml:"audio,omitempty"`
	Iframes []IframeAsset `json:"iframes,omitempty" yaml:"iframes,omitempty"`
}

type ImageAsset struct {
	Src     string `json:"src,omitempty" yaml:"src,omitempty"`
	Alt     string `json:"alt,omitempty" yaml:"alt,omitempty"`
	Title   string `json:"title,omitempty" yaml:"title,omitempty"`
	Width   string `json:"width,omitempty" yaml:"width,omitempty"`
	Height  string `json:"height,omitempty" yaml:"height,omitempty"`
	Class   string `json:"class,omitempty" yaml:"class,omitempty"`
	Loading string `json:"loading,omitempty" yaml:"loading,omitempty"`
}

type MediaSource struct {
	Src  string `json:"src,omitempty" yaml:"src,omitempty"`
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
}

type VideoAsset struct {
	Src      string        `json:"src,omitempty" yaml:"src,omitempty"`
	Poster   string        `json:"poster,omitempty" yaml:"poster,omitempty"`
	Controls bool          `json:"controls,omitempty" yaml:"controls,omitempty"`
	Autoplay bool          `json:"autoplay,omitempty" yaml:"autoplay,omitempty"`
	Loop     bool          `json:"loop,omitempty" yaml:"loop,omitempty"`
	Muted    bool          `json:"muted,omitempty" yaml:"muted,omitempty"`
	Sources  []MediaSource `json:"sources,omitempty" yaml:"sources,omitempty"`
}

type AudioAsset struct {
	Src      string        `json:"src,omitempty" yaml:"src,omitempty"`
	Controls bool          `json:"controls,omitempty" yaml:"controls,omitempty"`
	Autoplay bool          `json:"autoplay,omitempty" yaml:"autoplay,omitempty"`
	Loop     bool          `json:"loop,omitempty" yaml:"loop,omitempty"`
	Sources  []MediaSource `json:"sources,omitempty" yaml:"sources,omitempty"`
}

type IframeAsset struct {
	Src             string `json:"src,omitempty" yaml:"src,omitempty"`
	Title           string `json:"title,omitempty" yaml:"title,omitempty"`
	Width           string `json:"width,omitempty" yaml:"width,omitempty"`
	Height          string `json:"height,omitempty" yaml:"height,omitempty"`
	Frameborder     string `json:"frameborder,omitempty" yaml:"frameborder,omitempty"`
	Sandbox         string `json:"sandbox,omitempty" yaml:"sandbox,omitempty"`
	AllowFullscreen bool   `json:"allowfullscreen,omitempty" yaml:"allowfullscreen,omitempty"`
}

// LinkDescriptor describes an href-bearing anchor. AbsoluteURL is always
// populated; it falls back to the raw href when the base URL is empty or
// cannot be resolved.
type LinkDescriptor struct {
	Href        string `json:"href" yaml:"href"`
	AbsoluteURL string `json:"absolute_url" yaml:"absolute_url"`
	Text        string `json:"text,omitempty" yaml:"text,omitempty"`
	Title       string `json:"title,omitempty" yaml:"title,omitempty"`
	Target      string `json:"target,omitempty" yaml:"target,omitempty"`
	Rel         string `json:"rel,omitempty" yaml:"rel,omitempty"`
	Type        string `json:"type" yaml:"type"` // email, phone, anchor, external, internal
}

type ScriptDescriptor struct {
	Src         string `json:"src,omitempty" yaml:"src,omitempty"`
	AbsoluteURL string `json:"absolute_url,omitempty" yaml:"absolute_url,omitempty"`
	Inline      string `json:"inline,omitempty" yaml:"inline,omitempty"`
	Type        string `json:"type,omitempty" yaml:"type,omitempty"`
	Async       bool   `json:"async,omitempty" yaml:"async,omitempty"`
	Defer       bool   `json:"defer,omitempty" yaml:"defer,omitempty"`
}

type StyleDescriptor struct {
	Href        string `json:"href,omitempty" yaml:"href,omitempty"`
	AbsoluteURL string `json:"absolute_url,omitempty" yaml:"absolute_url,omitempty"`
	Media       string `json:"media,omitempty" yaml:"media,omitempty"`
	Type        string `json:"type,omitempty" yaml:"type,omitempty"`
	Inline      string `json:"inline,omitempty" yaml:"inline,omitempty"`
}

type AccessibilityInfo struct {
	AriaLabels []AriaLabel   `json:"aria_labels,omitempty" yaml:"aria_labels,omitempty"`
	Roles      []RoleElement `json:"roles,omitempty" yaml:"roles,omitempty"`
	Landmarks  []RoleElement `json:"landmarks,omitempty" yaml:"landmarks,omitempty"`
	ImageAlts  []ImageAlt    `json:"image_alts,omitempty" yaml:"image_alts,omitempty"`
}

type AriaLabel struct {
	Tag   string `json:"tag" yaml:"tag"`
	Label string `json:"label" yaml:"label"`
}

type RoleElement struct {
	Tag  string `json:"tag" yaml:"tag"`
	Role string `json:"role" yaml:"role"`
}

type ImageAlt struct {
	Src string `json:"src,omitempty" yaml:"src,omitempty"`
	Alt string `json:"alt" yaml:"alt"`
}

type MicrodataItem struct {
	ItemType   string              `json:"itemtype,omitempty" yaml:"itemtype,omitempty"`
	Properties []MicrodataProperty `json:"properties,omitempty" yaml:"properties,omitempty"`
}

type MicrodataProperty struct {
	Name    string `json:"name" yaml:"name"`
	Value   string `json:"value,omitempty" yaml:"value,omitempty"`
	Content string `json:"content,omitempty" yaml:"content,omitempty"`
}

// PerformanceInfo carries size heuristics for the parsed tree. Complexity is
// element count times maximum depth, not a physical rendering metric.
type PerformanceInfo struct {
	DOMElements int `json:"dom_elements" yaml:"dom_elements"`
	TextNodes   int `json:"text_nodes" yaml:"text_nodes"`
	Depth       int `json:"depth" yaml:"depth"`
	Complexity  int `json:"complexity" yaml:"complexity"`
}

// ReadabilityInfo is the optional main-content enrichment produced by the
// go-readability pass.
type ReadabilityInfo struct {
	Excerpt       string `json:"excerpt,omitempty" yaml:"excerpt,omitempty"`
	Byline        string `json:"byline,omitempty" yaml:"byline,omitempty"`
	SiteName      string `json:"site_name,omitempty" yaml:"site_name,omitempty"`
	PublishedTime string `json:"published_time,omitempty" yaml:"published_time,omitempty"`
	Image         string `json:"image,omitempty" yaml:"image,omitempty"`
	Favicon       string `json:"favicon,omitempty" yaml:"favicon,omitempty"`
	ReadableText  string `json:"readable_text,omitempty" yaml:"readable_text,omitempty"`
}

// ToPlainText concatenates the readable text of the extracted content blocks.
func (d *DocumentModel) ToPlainText() string {
	var sb strings.Builder

	for _, h := range d.Structure.Headings {
		sb.WriteString(h.Text)
		sb.WriteString("\n")
	}
	for _, p := range d.Content.Paragraphs {
		sb.WriteString(p)
		sb.WriteString("\n")
	}
	for _, l := range d.Content.Lists {
		sb.WriteString(strings.Join(l.Items, " "))
		sb.WriteString("\n")
	}
	for _, t := range d.Content.Tables {
		for _, row := range t.Rows {
			sb.WriteString(strings.Join(row, " "))
			sb.WriteString("\n")
		}
	}
	for _, q := range d.Content.Blockquotes {
		sb.WriteString(q)
		sb.WriteString("\n")
	}

	return sb.String()
}
