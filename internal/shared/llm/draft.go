package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/alterians/Lojistik-Asistan/internal/track/entity"
)

const draftSystemPrompt = `Sen bir satınalma uzmanısın. Tedarikçilere açık siparişlerin ` +
	`teslimat durumunu hatırlatan, kibar ama net iş e-postaları yazarsın. ` +
	`Yanıt olarak yalnızca e-posta metnini döndür.`

// DraftReminder asks the collaborator for a reminder email covering the given
// supplier's lines. The caller hands the lines in already sorted most urgent
// first; the prompt keeps that order.
func (c *Client) DraftReminder(ctx context.Context, supplierName string, lines []entity.OrderLine, extra string) (string, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Tedarikçi: %s\n\nAçık sipariş kalemleri (en acil önce):\n", supplierName)
	sb.WriteString(formatLines(lines))
	if extra != "" {
		fmt.Fprintf(&sb, "\nEk talimatlar: %s\n", extra)
	}
	sb.WriteString("\nBu kalemler için bir hatırlatma e-postası yaz.")

	return c.chat(ctx, []Message{
		{Role: "system", Content: draftSystemPrompt},
		{Role: "user", Content: sb.String()},
	})
}

// RefineDraft sends the current draft back with a free-text instruction and
// returns the revised text.
func (c *Client) RefineDraft(ctx context.Context, draft, instruction string) (string, error) {
	prompt := fmt.Sprintf("Mevcut e-posta taslağı:\n\n%s\n\nTalimat: %s\n\n"+
		"Taslağı talimata göre düzenle ve yalnızca yeni metni döndür.", draft, instruction)
	return c.chat(ctx, []Message{
		{Role: "system", Content: draftSystemPrompt},
		{Role: "user", Content: prompt},
	})
}

// formatLines renders order lines as a compact listing for prompts. One line
// per item: key, material, open quantity and the effective date with its
// remaining days.
func formatLines(lines []entity.OrderLine) string {
	var sb strings.Builder
	for _, l := range lines {
		fmt.Fprintf(&sb, "- %s/%s %s (%s): %.1f %s, termin %s (%+d gün)\n",
			l.OrderNo, l.ItemNo, l.MaterialCode, l.MaterialDesc,
			l.OpenQty, l.Unit, l.EffectiveDate(), l.DaysRemaining)
	}
	return sb.String()
}
