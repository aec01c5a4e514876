package notify

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/x-xyz/auctionindexer/base/ctx"
	"github.com/x-xyz/auctionindexer/domain"
)

type DiscordConfig struct {
	BotKey    string
	ChannelId string
	// AssetUrl is formatted with nftToken and nftTokenId for the embed description
	AssetUrl string
}

type embedSender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed) (*discordgo.Message, error)
}

type discord struct {
	config DiscordConfig
	sender embedSender
}

// NewDiscord returns a no-op notifier when the bot key or channel is not configured
func NewDiscord(config DiscordConfig) (domain.Notifier, error) {
	if config.BotKey == "" || config.ChannelId == "" {
		return Nop{}, nil
	}
	session, err := discordgo.New(fmt.Sprintf("Bot %s", config.BotKey))
	if err != nil {
		return nil, err
	}
	return &discord{config, session}, nil
}

func (d *discord) AuctionSold(c ctx.Ctx, a *domain.Auction) error {
	msg := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("Auction #%d sold!", a.AuctionId),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Nft", Value: fmt.Sprintf("%s #%d", a.NftToken, a.NftTokenId)},
			{Name: "Buyer", Value: string(a.HighestBidder)},
			{Name: "Price", Value: fmt.Sprintf("%s (%s)", a.FinalHighestBid.String(), a.LastToken)},
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if d.config.AssetUrl != "" {
		msg.Description = fmt.Sprintf(d.config.AssetUrl, a.NftToken, a.NftTokenId)
	}
	if a.NftData != nil {
		msg.Image = &discordgo.MessageEmbedImage{URL: a.NftData.Image}
		if a.NftData.Name != "" {
			msg.Fields[0].Value = a.NftData.Name
		}
	}
	return d.send(c, msg)
}

func (d *discord) CronStale(c ctx.Ctx, state *domain.CronState) error {
	msg := &discordgo.MessageEmbed{
		Title:       "Cron sweep lock looks stale",
		Description: "isRunning has been set for too long, clear it manually once the last run is confirmed dead",
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Last start", Value: state.LastStartTime.UTC().Format(time.RFC3339)},
			{Name: "Next auction", Value: state.NextAuctionId.String()},
		},
	}
	return d.send(c, msg)
}

func (d *discord) send(c ctx.Ctx, msg *discordgo.MessageEmbed) error {
	if _, err := d.sender.ChannelMessageSendEmbed(d.config.ChannelId, msg); err != nil {
		c.WithField("err", err).Warn("discord notification failed")
		return err
	}
	return nil
}

// Nop drops every notification
type Nop struct{}

func (Nop) AuctionSold(ctx.Ctx, *domain.Auction) error  { return nil }
func (Nop) CronStale(ctx.Ctx, *domain.CronState) error { return nil }
