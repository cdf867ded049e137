package usecase

import (
	"context"
	"encoding/json"
	"html"
	"strconv"
	"strings"

	"cart-recovery/internal/domain/cart"
	"cart-recovery/internal/infra"
	"cart-recovery/internal/pkg/config"
	"cart-recovery/internal/pkg/currency"
	"cart-recovery/internal/pkg/errs"
	"cart-recovery/internal/usecase/shared"
)

var ErrTemplatesFailed = errs.New("template storage failed")

// Default copy for the three recovery steps, escalating in urgency. Stored
// overrides are merged per step and per field.
func defaultTemplates() map[int]shared.EmailTemplate {
	return map[int]shared.EmailTemplate{
		1: {
			Subject: "You left items in your cart",
			Body:    "Hi {customer_name},\n\nYou left these items in your cart:\n{cart_items}\n\nTotal: {cart_total}\n\nComplete your purchase here: {restore_link}\n\nThanks,\n{store_name}",
		},
		2: {
			Subject: "Still thinking it over?",
			Body:    "Hi {customer_name},\n\nYour cart is still waiting:\n{cart_items}\n\nTotal: {cart_total}\n\nResume checkout: {restore_link}\n\n{store_name}",
		},
		3: {
			Subject: "Last chance to complete your order",
			Body:    "Hi {customer_name},\n\nYour cart is about to expire:\n{cart_items}\n\nTotal: {cart_total}\n\nFinish now: {restore_link}\n\nThanks,\n{store_name}",
		},
	}
}

// TemplateService renders recovery emails for a step by substituting
// cart-derived tokens into merged templates.
type TemplateService struct {
	options  OptionsRepository
	recovery config.RecoveryConfig
}

func NewTemplateService(options OptionsRepository, cfg config.Config) *TemplateService {
	return &TemplateService{options: options, recovery: cfg.Recovery}
}

type storedTemplate struct {
	Subject *string `json:"subject,omitempty"`
	Body    *string `json:"body,omitempty"`
}

// Templates returns the merged step -> template mapping.
func (t *TemplateService) Templates(ctx context.Context) (map[int]shared.EmailTemplate, error) {
	merged := defaultTemplates()

	raw, err := t.options.Get(ctx, templatesOptionKey)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return merged, nil
		}
		return nil, errs.Mark(err, ErrTemplatesFailed)
	}

	var stored map[int]storedTemplate
	if err := json.Unmarshal(raw, &stored); err != nil {
		return merged, nil
	}

	for step, tmpl := range stored {
		base := merged[step]
		if tmpl.Subject != nil {
			base.Subject = *tmpl.Subject
		}
		if tmpl.Body != nil {
			base.Body = *tmpl.Body
		}
		merged[step] = base
	}
	return merged, nil
}

func (t *TemplateService) Update(ctx context.Context, templates map[int]shared.EmailTemplate) error {
	raw, err := json.Marshal(templates)
	if err != nil {
		return errs.Mark(err, ErrTemplatesFailed)
	}
	if err := t.options.Set(ctx, templatesOptionKey, raw); err != nil {
		return errs.Mark(err, ErrTemplatesFailed)
	}
	return nil
}

// Render substitutes tokens into the step template. ok is false when the
// step has no template (custom step numbers beyond the defaults start
// empty); callers skip rather than fail.
func (t *TemplateService) Render(ctx context.Context, step int, rec *cart.Record, restoreLink string) (shared.RenderedEmail, bool, error) {
	templates, err := t.Templates(ctx)
	if err != nil {
		return shared.RenderedEmail{}, false, err
	}

	tmpl, ok := templates[step]
	if !ok || (tmpl.Subject == "" && tmpl.Body == "") {
		return shared.RenderedEmail{}, false, nil
	}

	replacer := strings.NewReplacer(
		"{customer_name}", customerName(rec.Email),
		"{cart_items}", formatCartItems(rec.Items),
		"{cart_total}", currency.Format(rec.TotalCents, rec.Currency),
		"{restore_link}", restoreLink,
		"{store_name}", t.recovery.StoreName,
		"{store_url}", t.recovery.StoreURL,
	)

	return shared.RenderedEmail{
		Subject: replacer.Replace(tmpl.Subject),
		Body:    paragraphs(replacer.Replace(tmpl.Body)),
	}, true, nil
}

// customerName derives a greeting from the local part of the address:
// non-letters become spaces, words are title-cased, and an address that
// yields nothing falls back to a generic greeting.
func customerName(email string) string {
	local, _, _ := strings.Cut(email, "@")

	var b strings.Builder
	for _, r := range local {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	words := strings.Fields(b.String())
	if len(words) == 0 {
		return "there"
	}
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

func formatCartItems(items cart.Items) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		if item.Name == "" {
			continue
		}
		qty := item.Quantity
		if qty <= 0 {
			qty = 1
		}
		lines = append(lines, strconv.Itoa(qty)+"x "+html.EscapeString(item.Name))
	}
	if len(lines) == 0 {
		return "Your cart items"
	}
	return "<ul><li>" + strings.Join(lines, "</li><li>") + "</li></ul>"
}

// paragraphs converts plain-text line breaks into HTML: blank lines split
// paragraphs, single newlines become <br />.
func paragraphs(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	blocks := strings.Split(text, "\n\n")

	var b strings.Builder
	for _, block := range blocks {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		b.WriteString("<p>")
		b.WriteString(strings.ReplaceAll(block, "\n", "<br />"))
		b.WriteString("</p>\n")
	}
	return b.String()
}
