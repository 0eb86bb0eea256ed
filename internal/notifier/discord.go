package notifier

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/gdg-garage/park-planner-api/internal/models"
	"github.com/gdg-garage/park-planner-api/internal/planner"
)

type Notifier interface {
	NotifyPlanGenerated(session models.PlannerSession, parkLabel string) error
}

// MessageSender is the part of *discordgo.Session the notifier uses.
type MessageSender interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

type DiscordNotifier struct {
	session   MessageSender
	channelID string
}

func NewDiscordNotifier(session MessageSender, channelID string) *DiscordNotifier {
	return &DiscordNotifier{
		session:   session,
		channelID: channelID,
	}
}

// NewDiscordBotNotifier opens a bot session for token.
func NewDiscordBotNotifier(token, channelID string) (*DiscordNotifier, error) {
	if token == "" {
		return nil, fmt.Errorf("discord bot token is empty")
	}
	if channelID == "" {
		return nil, fmt.Errorf("discord channel ID is empty")
	}
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	return NewDiscordNotifier(s, channelID), nil
}

func (n *DiscordNotifier) NotifyPlanGenerated(session models.PlannerSession, parkLabel string) error {
	if n.session == nil {
		return fmt.Errorf("discord session is nil")
	}
	if n.channelID == "" {
		return fmt.Errorf("discord channel ID is empty")
	}

	_, err := n.session.ChannelMessageSend(n.channelID, FormatPlanMessage(session, parkLabel))
	if err != nil {
		return fmt.Errorf("send discord message: %w", err)
	}
	return nil
}

// FormatPlanMessage renders the channel message for a published plan.
func FormatPlanMessage(session models.PlannerSession, parkLabel string) string {
	visitor := session.VisitorName
	if visitor == "" {
		visitor = "anonymous"
	}
	duration := session.Duration
	if duration == "" {
		duration = "-"
	}

	var highlights []string
	for _, item := range session.Plan {
		if item.Priority == planner.PriorityHigh {
			highlights = append(highlights, fmt.Sprintf("%s %s %s", item.Time, planner.TypeIcon(item.Type), item.Activity))
		}
	}
	highlightStr := ""
	if len(highlights) > 0 {
		highlightStr = "\n**Must do:**\n" + strings.Join(highlights, "\n")
	}

	return fmt.Sprintf("🏰 **Plan Generated**\n**Visitor:** %s\n**Park:** %s\n**Duration:** %s\n**Items:** %s%s",
		visitor,
		parkLabel,
		duration,
		planner.ItemCountBadge(len(session.Plan)),
		highlightStr,
	)
}
