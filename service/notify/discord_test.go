package notify

import (
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/auctionindexer/base/ctx"
	"github.com/x-xyz/auctionindexer/domain"
)

type recorder struct {
	channel string
	embeds  []*discordgo.MessageEmbed
	err     error
}

func (r *recorder) ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed) (*discordgo.Message, error) {
	r.channel = channelID
	r.embeds = append(r.embeds, embed)
	return &discordgo.Message{}, r.err
}

func TestNewDiscordUnconfigured(t *testing.T) {
	n, err := NewDiscord(DiscordConfig{})
	require.NoError(t, err)
	require.Equal(t, Nop{}, n)
	require.NoError(t, n.AuctionSold(ctx.Background(), &domain.Auction{}))
}

func TestAuctionSold(t *testing.T) {
	req := require.New(t)
	rec := &recorder{}
	d := &discord{DiscordConfig{ChannelId: "chan", AssetUrl: "https://x/%s/%d"}, rec}

	a := &domain.Auction{
		AuctionId:       42,
		NftToken:        "0xabc",
		NftTokenId:      7,
		HighestBidder:   "0xbuyer",
		FinalHighestBid: decimal.RequireFromString("1.5"),
		LastToken:       "0xbusd",
		NftData:         &domain.NftData{Name: "Hammer #7", Image: "https://img"},
	}
	req.NoError(d.AuctionSold(ctx.Background(), a))
	req.Equal("chan", rec.channel)
	req.Len(rec.embeds, 1)
	msg := rec.embeds[0]
	req.Equal("Auction #42 sold!", msg.Title)
	req.Equal("https://x/0xabc/7", msg.Description)
	req.Equal("Hammer #7", msg.Fields[0].Value)
	req.Equal("1.5 (0xbusd)", msg.Fields[2].Value)
	req.Equal("https://img", msg.Image.URL)
}

func TestCronStaleError(t *testing.T) {
	rec := &recorder{err: errors.New("rate limited")}
	d := &discord{DiscordConfig{ChannelId: "chan"}, rec}
	err := d.CronStale(ctx.Background(), &domain.CronState{IsRunning: true, LastStartTime: time.Unix(0, 0), NextAuctionId: 3})
	require.Error(t, err)
	require.Equal(t, "3", rec.embeds[0].Fields[1].Value)
}
