package telegram

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/reshetovitsme/audience-reach/internal/modules/audience/domain"
	"github.com/reshetovitsme/audience-reach/internal/modules/audience/report"
	audienceService "github.com/reshetovitsme/audience-reach/internal/modules/audience/service"
	presetService "github.com/reshetovitsme/audience-reach/internal/modules/preset/service"
	"github.com/reshetovitsme/audience-reach/internal/shared/config"
	"github.com/reshetovitsme/audience-reach/internal/shared/errors"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// Handler lets operators preview campaign reach from Telegram.
// Each chat keeps its own draft FilterModel.
type Handler struct {
	cfg       *config.Config
	estimator *audienceService.Estimator
	presets   *presetService.Service

	mu     sync.Mutex
	drafts map[int64]*audienceService.Preview
}

// New creates a new Telegram handler
func New(cfg *config.Config, estimator *audienceService.Estimator, presets *presetService.Service) *Handler {
	return &Handler{
		cfg:       cfg,
		estimator: estimator,
		presets:   presets,
		drafts:    make(map[int64]*audienceService.Preview),
	}
}

// RegisterCommands registers bot commands
func (h *Handler) RegisterCommands(b *bot.Bot) {
	b.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, h.handleHelp)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypeExact, h.handleHelp)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/segments", bot.MatchTypeExact, h.handleSegments)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/estimate", bot.MatchTypePrefix, h.handleEstimate)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/set", bot.MatchTypePrefix, h.handleSet)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/draft", bot.MatchTypeExact, h.handleDraft)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/reset", bot.MatchTypeExact, h.handleReset)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/presets", bot.MatchTypeExact, h.handlePresets)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/save", bot.MatchTypePrefix, h.handleSave)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/load", bot.MatchTypePrefix, h.handleLoad)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/delete", bot.MatchTypePrefix, h.handleDelete)
}

// HandleUpdate handles anything no command matched
func (h *Handler) HandleUpdate(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}
	if strings.HasPrefix(update.Message.Text, "/") {
		h.send(ctx, b, update.Message.Chat.ID, "Unknown command. Use /help to see what I can do.")
	}
}

func (h *Handler) handleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.guard(ctx, b, update, func(chatID int64, _ []string) string {
		return helpText()
	})
}

func (h *Handler) handleSegments(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.guard(ctx, b, update, func(chatID int64, _ []string) string {
		return segmentsText()
	})
}

func (h *Handler) handleEstimate(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.guard(ctx, b, update, func(chatID int64, args []string) string {
		return h.estimateReply(args)
	})
}

func (h *Handler) handleSet(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.guard(ctx, b, update, h.setReply)
}

func (h *Handler) handleDraft(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.guard(ctx, b, update, func(chatID int64, _ []string) string {
		return h.draftReply(chatID)
	})
}

func (h *Handler) handleReset(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.guard(ctx, b, update, func(chatID int64, _ []string) string {
		return h.resetReply(chatID)
	})
}

func (h *Handler) handlePresets(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.guard(ctx, b, update, func(chatID int64, _ []string) string {
		return h.presetsReply()
	})
}

func (h *Handler) handleSave(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.guard(ctx, b, update, func(chatID int64, args []string) string {
		return h.saveReply(chatID, update.Message.From.ID, args)
	})
}

func (h *Handler) handleLoad(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.guard(ctx, b, update, h.loadReply)
}

func (h *Handler) handleDelete(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.guard(ctx, b, update, func(chatID int64, args []string) string {
		return h.deleteReply(args)
	})
}

// guard checks authorization, splits the command arguments and sends the reply
func (h *Handler) guard(ctx context.Context, b *bot.Bot, update *models.Update, reply func(chatID int64, args []string) string) {
	msg := update.Message
	if msg == nil {
		return
	}
	if msg.From == nil || !h.cfg.IsAllowed(msg.From.ID) {
		slog.Warn("Rejected unauthorized command", "chat_id", msg.Chat.ID, "text", msg.Text)
		h.send(ctx, b, msg.Chat.ID, "❌ Unauthorized")
		return
	}

	parts := strings.Fields(msg.Text)
	var args []string
	if len(parts) > 1 {
		args = parts[1:]
	}
	h.send(ctx, b, msg.Chat.ID, reply(msg.Chat.ID, args))
}

func (h *Handler) send(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	if _, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	}); err != nil {
		slog.Error("Failed to send message", "chat_id", chatID, "error", err)
	}
}

func (h *Handler) estimateReply(args []string) string {
	model := domain.NewFilterModel()
	if err := model.ApplyAssignments(args); err != nil {
		return errorText(err)
	}
	if err := model.Validate(); err != nil {
		return errorText(err)
	}
	return report.Estimate(h.estimator.Estimate(model))
}

func (h *Handler) setReply(chatID int64, args []string) string {
	if len(args) == 0 {
		return "Usage: /set key=value [key=value ...]\nExample: /set xp=50-100 wallet=yes"
	}

	estimate, err := h.draft(chatID).Update(func(m *domain.FilterModel) error {
		if err := m.ApplyAssignments(args); err != nil {
			return err
		}
		return m.Validate()
	})
	if err != nil {
		return errorText(err)
	}
	return "✏️ Draft updated\n\n" + report.Estimate(estimate)
}

func (h *Handler) draftReply(chatID int64) string {
	p := h.draft(chatID)
	return report.Model(p.Model()) + "\n\n" + report.Estimate(p.Latest())
}

func (h *Handler) resetReply(chatID int64) string {
	return "🧹 Draft cleared\n\n" + report.Estimate(h.draft(chatID).Reset())
}

func (h *Handler) presetsReply() string {
	presets, err := h.presets.List()
	if err != nil {
		return errorText(err)
	}
	if len(presets) == 0 {
		return "📋 No presets saved yet. Use /save <name> to store the current draft."
	}

	var text strings.Builder
	text.WriteString("📋 Presets:\n\n")
	for _, p := range presets {
		fmt.Fprintf(&text, "• %s: %d filters, %s, updated %s\n",
			p.Name, p.Model.ActiveFilters(), p.Model.Delivery.Channel, p.UpdatedAt.Format("2006-01-02"))
	}
	return text.String()
}

func (h *Handler) saveReply(chatID, userID int64, args []string) string {
	if len(args) != 1 {
		return "Usage: /save <name>\nSaves this chat's draft as a preset."
	}
	preset, err := h.presets.Save(args[0], h.draft(chatID).Model(), userID)
	if err != nil {
		return errorText(err)
	}
	return fmt.Sprintf("✅ Saved preset %s with %d active filters", preset.Name, preset.Model.ActiveFilters())
}

func (h *Handler) loadReply(chatID int64, args []string) string {
	if len(args) != 1 {
		return "Usage: /load <name>\nReplaces this chat's draft with a preset."
	}
	preset, err := h.presets.Get(args[0])
	if err != nil {
		return errorText(err)
	}
	estimate, err := h.draft(chatID).Update(func(m *domain.FilterModel) error {
		*m = preset.Model.Clone()
		return m.Validate()
	})
	if err != nil {
		return errorText(err)
	}
	return fmt.Sprintf("📥 Loaded preset %s\n\n%s", preset.Name, report.Estimate(estimate))
}

func (h *Handler) deleteReply(args []string) string {
	if len(args) != 1 {
		return "Usage: /delete <name>"
	}
	if err := h.presets.Delete(args[0]); err != nil {
		return errorText(err)
	}
	return fmt.Sprintf("🗑️ Deleted preset %s", strings.ToLower(args[0]))
}

func (h *Handler) draft(chatID int64) *audienceService.Preview {
	h.mu.Lock()
	defer h.mu.Unlock()

	p, ok := h.drafts[chatID]
	if !ok {
		p = audienceService.NewPreview(h.estimator, domain.NewFilterModel())
		h.drafts[chatID] = p
	}
	return p
}

func errorText(err error) string {
	switch {
	case stderrors.Is(err, errors.ErrUnknownFilterKey):
		return fmt.Sprintf("❌ %v%s\nKnown keys: %s (use off=<key> to disable)", err, errorDetail(err), strings.Join(domain.AssignmentKeys, ", "))
	case stderrors.Is(err, errors.ErrInvalidFilter), stderrors.Is(err, errors.ErrInvalidPresetName):
		return fmt.Sprintf("❌ %v%s", err, errorDetail(err))
	case stderrors.Is(err, errors.ErrPresetNotFound):
		return "❌ Preset not found. Use /presets to list saved presets."
	default:
		slog.Error("Unexpected error handling command", "error", err)
		return "❌ Something went wrong"
	}
}

// errorDetail lists the oops context attached to err, sorted by key
func errorDetail(err error) string {
	oopsErr, ok := oops.AsOops(err)
	if !ok {
		return ""
	}
	ctx := oopsErr.Context()
	keys := lo.Keys(ctx)
	if len(keys) == 0 {
		return ""
	}
	slices.Sort(keys)
	return " (" + strings.Join(lo.Map(keys, func(k string, _ int) string {
		return fmt.Sprintf("%s: %v", k, ctx[k])
	}), ", ") + ")"
}

func helpText() string {
	return `👋 Audience reach preview

Commands:
/estimate key=value ... - One-off estimate
/set key=value ... - Edit this chat's draft and re-estimate
/draft - Show the draft and its estimate
/reset - Clear the draft
/save <name> - Save the draft as a preset
/load <name> - Load a preset into the draft
/presets - List saved presets
/delete <name> - Delete a preset
/segments - Describe the audience segments
/help - Show this message

Keys: ` + strings.Join(domain.AssignmentKeys, ", ") + `
Disable a filter with off=<key>.

Example:
/estimate xp=50-100 trust=70 wallet=yes channel=telegram`
}

func segmentsText() string {
	var text strings.Builder
	text.WriteString("🧩 Segments:\n")
	for _, s := range domain.Segments() {
		fmt.Fprintf(&text, "\n%s %s\n   %s\n", s.Icon, s.Name, s.Description)
	}
	return text.String()
}
