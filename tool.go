package fsbox

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/deepnoodle-ai/wonton/schema"
)

// ToolAnnotations are optional hints describing how a tool behaves. They
// follow the MCP tool annotation fields.
type ToolAnnotations struct {
	Title           string         `json:"title,omitempty"`
	ReadOnlyHint    bool           `json:"readOnlyHint,omitempty"`
	DestructiveHint bool           `json:"destructiveHint,omitempty"`
	IdempotentHint  bool           `json:"idempotentHint,omitempty"`
	OpenWorldHint   bool           `json:"openWorldHint,omitempty"`
	Extra           map[string]any `json:"extra,omitempty"`
}

func (a *ToolAnnotations) MarshalJSON() ([]byte, error) {
	data := map[string]any{
		"title":           a.Title,
		"readOnlyHint":    a.ReadOnlyHint,
		"destructiveHint": a.DestructiveHint,
		"idempotentHint":  a.IdempotentHint,
		"openWorldHint":   a.OpenWorldHint,
	}
	for k, v := range a.Extra {
		data[k] = v
	}
	return json.Marshal(data)
}

type ToolResultContentType string

const (
	ToolResultContentTypeText ToolResultContentType = "text"
)

func (t ToolResultContentType) String() string {
	return string(t)
}

type ToolResultContent struct {
	Type ToolResultContentType `json:"type"`
	Text string                `json:"text,omitempty"`
}

// ToolResult is the output from a tool call.
type ToolResult struct {
	Content []*ToolResultContent `json:"content"`
	IsError bool                 `json:"isError,omitempty"`

	// Display is an optional short, human-oriented summary of the result.
	// It is never sent to the caller as content.
	Display string `json:"-"`
}

// WithDisplay sets the display summary and returns the result.
func (r *ToolResult) WithDisplay(display string) *ToolResult {
	r.Display = display
	return r
}

// Text returns the concatenated text content of the result.
func (r *ToolResult) Text() string {
	var text string
	for i, c := range r.Content {
		if i > 0 {
			text += "\n"
		}
		text += c.Text
	}
	return text
}

// NewToolResultError creates a new ToolResult containing an error message.
func NewToolResultError(text string) *ToolResult {
	return &ToolResult{
		IsError: true,
		Content: []*ToolResultContent{
			{
				Type: ToolResultContentTypeText,
				Text: text,
			},
		},
	}
}

// NewToolResult creates a new ToolResult with the given content.
func NewToolResult(content ...*ToolResultContent) *ToolResult {
	return &ToolResult{Content: content}
}

// NewToolResultText creates a new ToolResult with the given text content.
func NewToolResultText(text string) *ToolResult {
	return NewToolResult(&ToolResultContent{
		Type: ToolResultContentTypeText,
		Text: text,
	})
}

// ToolCallPreview is a one-line summary of what a call would do.
type ToolCallPreview struct {
	Summary string `json:"summary"`
}

// Tool is a named operation that can be invoked with JSON-like input.
type Tool interface {
	// Name of the tool.
	Name() string

	// Description of the tool.
	Description() string

	// Schema describes the parameters used to call the tool.
	Schema() *schema.Schema

	// Annotations returns optional properties that describe tool behavior.
	Annotations() *ToolAnnotations

	// Call is the function that is called to use the tool.
	Call(ctx context.Context, input any) (*ToolResult, error)
}

// TypedTool is a tool that can be called with a specific type of input.
type TypedTool[T any] interface {
	Name() string
	Description() string
	Schema() *schema.Schema
	Annotations() *ToolAnnotations
	Call(ctx context.Context, input T) (*ToolResult, error)
}

// TypedToolPreviewer is implemented by typed tools that can summarize a call
// before it runs.
type TypedToolPreviewer[T any] interface {
	PreviewCall(ctx context.Context, input T) *ToolCallPreview
}

// ToolAdapter creates a new TypedToolAdapter for the given tool.
func ToolAdapter[T any](tool TypedTool[T]) *TypedToolAdapter[T] {
	return &TypedToolAdapter[T]{tool: tool}
}

// TypedToolAdapter is an adapter that allows a TypedTool to be used as a regular Tool.
// Specifically the Call method accepts `input any` and then internally unmarshals the input
// to the correct type and passes it to the TypedTool.
type TypedToolAdapter[T any] struct {
	tool TypedTool[T]
}

func (t *TypedToolAdapter[T]) Name() string {
	return t.tool.Name()
}

func (t *TypedToolAdapter[T]) Description() string {
	return t.tool.Description()
}

func (t *TypedToolAdapter[T]) Schema() *schema.Schema {
	return t.tool.Schema()
}

func (t *TypedToolAdapter[T]) Annotations() *ToolAnnotations {
	return t.tool.Annotations()
}

func (t *TypedToolAdapter[T]) Call(ctx context.Context, input any) (*ToolResult, error) {
	// Pass through if the input is already the correct type
	if converted, ok := input.(T); ok {
		return t.tool.Call(ctx, converted)
	}

	typedInput, err := t.decode(input)
	if err != nil {
		return NewToolResultError(fmt.Sprintf("invalid json for tool %s: %v", t.Name(), err)), nil
	}
	return t.tool.Call(ctx, typedInput)
}

// PreviewCall returns a preview of the call when the underlying tool supports
// it, and nil otherwise.
func (t *TypedToolAdapter[T]) PreviewCall(ctx context.Context, input any) *ToolCallPreview {
	previewer, ok := t.tool.(TypedToolPreviewer[T])
	if !ok {
		return nil
	}
	if converted, ok := input.(T); ok {
		return previewer.PreviewCall(ctx, converted)
	}
	typedInput, err := t.decode(input)
	if err != nil {
		return nil
	}
	return previewer.PreviewCall(ctx, typedInput)
}

func (t *TypedToolAdapter[T]) decode(input any) (T, error) {
	var typedInput T
	var data []byte
	switch raw := input.(type) {
	case json.RawMessage:
		data = raw
	case []byte:
		data = raw
	case string:
		data = []byte(raw)
	default:
		var err error
		data, err = json.Marshal(input)
		if err != nil {
			return typedInput, err
		}
	}
	if len(data) == 0 || string(data) == "null" {
		data = []byte("{}")
	}
	err := json.Unmarshal(data, &typedInput)
	return typedInput, err
}

// Unwrap returns the underlying TypedTool.
func (t *TypedToolAdapter[T]) Unwrap() TypedTool[T] {
	return t.tool
}
