package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alterians/Lojistik-Asistan/internal/track/entity"
)

// DateUpdate is one proposed delivery date change extracted from free text or
// an attached image. Updates are only applied after user confirmation, through
// the same mutation path as a manual edit.
type DateUpdate struct {
	OrderNo string `json:"order_no"`
	ItemNo  string `json:"item_no"`
	NewDate string `json:"new_date"` // DD.MM.YYYY
}

// ExtractResult carries the proposed updates plus the collaborator's
// explanatory message. On any parse trouble Updates is empty and Message
// explains why; the caller never sees a hard failure for malformed model
// output.
type ExtractResult struct {
	Updates []DateUpdate `json:"updates"`
	Message string       `json:"message"`
}

const extractSystemPrompt = `Sen bir satınalma asistanısın. Kullanıcının talimatından ` +
	`ve varsa ekteki görselden teslimat tarihi değişikliklerini çıkarırsın. ` +
	`Yanıtını şu JSON biçiminde ver: ` +
	`{"updates":[{"order_no":"...","item_no":"...","new_date":"GG.AA.YYYY"}],"message":"..."}`

// ExtractDateUpdates asks the collaborator to propose date changes for the
// given lines. imageDataURL may be empty; when set it is attached as an image
// content part. Structural failures of the round trip return an error; a
// syntactically broken model answer does not — it degrades to zero updates
// with the raw text as the message.
func (c *Client) ExtractDateUpdates(ctx context.Context, lines []entity.OrderLine, instruction, imageDataURL string) (ExtractResult, error) {
	var sb strings.Builder
	sb.WriteString("Mevcut açık sipariş kalemleri:\n")
	sb.WriteString(formatLines(lines))
	fmt.Fprintf(&sb, "\nTalimat: %s\n", instruction)

	userMsg := Message{Role: "user", Content: sb.String()}
	if imageDataURL != "" {
		userMsg.Content = []ContentPart{
			{Type: "text", Text: sb.String()},
			{Type: "image_url", ImageURL: &ImageURL{URL: imageDataURL}},
		}
	}

	raw, err := c.chat(ctx, []Message{
		{Role: "system", Content: extractSystemPrompt},
		userMsg,
	})
	if err != nil {
		return ExtractResult{}, err
	}
	return parseExtractResult(raw), nil
}

// parseExtractResult validates the collaborator's unstructured answer best
// effort: the first JSON object found in the text is decoded; anything else
// degrades to an empty update list with the text as explanation.
func parseExtractResult(raw string) ExtractResult {
	candidate := raw
	if start := strings.Index(candidate, "{"); start >= 0 {
		if end := strings.LastIndex(candidate, "}"); end > start {
			candidate = candidate[start : end+1]
		}
	}

	var res ExtractResult
	if err := json.Unmarshal([]byte(candidate), &res); err != nil {
		return ExtractResult{
			Message: "Yanıt çözümlenemedi: " + strings.TrimSpace(raw),
		}
	}
	if res.Message == "" {
		res.Message = fmt.Sprintf("%d tarih güncellemesi önerildi.", len(res.Updates))
	}
	return res
}
