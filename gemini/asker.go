// Package gemini implements the generative fallback Asker using Google
// Gemini.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/wkleong/outletmap"
	"google.golang.org/genai"
)

// DefaultModel is the model used when none is specified.
const DefaultModel = "gemini-2.5-flash"

// Ensure Asker implements outletmap.Asker at compile time.
var _ outletmap.Asker = (*Asker)(nil)

// Asker implements outletmap.Asker using Google Gemini.
type Asker struct {
	client *genai.Client
	model  string
}

// NewAsker creates a new Asker. An empty model selects DefaultModel.
func NewAsker(client *genai.Client, model string) *Asker {
	if model == "" {
		model = DefaultModel
	}
	return &Asker{client: client, model: model}
}

// Ask answers a free-text question about the provided outlets and returns
// the completion verbatim.
func (a *Asker) Ask(ctx context.Context, question string, outlets []*outletmap.Outlet) (string, error) {
	if question == "" {
		return "", outletmap.Errorf(outletmap.EINVALID, "question required")
	}

	prompt := BuildUserPrompt(outlets, question)
	config := BuildConfig()

	result, err := a.client.Models.GenerateContent(ctx, a.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", outletmap.Errorf(outletmap.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.7)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a helpful assistant for Subway outlets in Kuala Lumpur. Answer based only on the outlet listing provided. If the answer is not in the listing, say so.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt containing the outlet listing and
// the question.
func BuildUserPrompt(outlets []*outletmap.Outlet, question string) string {
	var sb strings.Builder
	sb.WriteString("Use this outlet listing to answer questions:\n\n")
	sb.WriteString(outletmap.FormatOutlets(outlets))
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "Question: %s", question)
	return sb.String()
}
