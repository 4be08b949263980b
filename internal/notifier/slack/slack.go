package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/riftboard/riftboard/internal/metrics"
	"github.com/riftboard/riftboard/internal/notifier"
	"github.com/riftboard/riftboard/internal/roster"
	"github.com/slack-go/slack"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending roster notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	api := slack.New(token)
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) (string, string, error) {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-ts", "dry-run-thread-ts", nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)

	if err != nil {
		s.metrics.IncSlackNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncSlackNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

// SendRefreshSummary posts the outcome of a roster refresh run.
func (s *Notifier) SendRefreshSummary(summary notifier.RefreshSummary, dryRun bool) error {
	msg := s.formatRefreshSummary(summary)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

// SendPlayerAdded announces a player added through the API.
func (s *Notifier) SendPlayerAdded(player *roster.PlayerRecord, dryRun bool) error {
	msg := s.formatPlayerAdded(player)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

// formatRefreshSummary creates the Slack message for a completed refresh run using Block Kit.
func (s *Notifier) formatRefreshSummary(summary notifier.RefreshSummary) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "🗡️ Roster refresh complete 🗡️", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	details := fmt.Sprintf(
		"*Players:* %d\n*Enriched:* %d\n*Degraded:* %d\n*Failed:* %d\n*Took:* %s",
		summary.Total,
		summary.Enriched,
		summary.Degraded,
		summary.Failed,
		summary.Duration.Round(time.Second),
	)
	detailsText := slack.NewTextBlockObject("mrkdwn", details, false, false)
	blocks = append(blocks, slack.NewSectionBlock(detailsText, nil, nil))

	runText := slack.NewTextBlockObject("mrkdwn", fmt.Sprintf("run `%s`", summary.RunID), false, false)
	blocks = append(blocks, slack.NewContextBlock("", runText))

	return slack.NewBlockMessage(blocks...)
}

// formatPlayerAdded creates the Slack message for a newly added player.
func (s *Notifier) formatPlayerAdded(player *roster.PlayerRecord) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "🆕 Player joined the roster", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	rank := player.SoloRank.Tier
	if player.SoloRank.Division != "" {
		rank = fmt.Sprintf("%s %s (%d LP)", player.SoloRank.Tier, player.SoloRank.Division, player.SoloRank.Points)
	}
	details := fmt.Sprintf(
		"*%s*\n*Level:* %d\n*Solo queue:* %s",
		player.RiotID(),
		player.SummonerLevel,
		rank,
	)
	detailsText := slack.NewTextBlockObject("mrkdwn", details, false, false)
	blocks = append(blocks, slack.NewSectionBlock(detailsText, nil, nil))

	return slack.NewBlockMessage(blocks...)
}
