package domain

type Table string

const (
	TableAuctions    = Table("auctiondata")
	TableUserBids    = Table("userbids")
	TableCheckpoints = Table("checkpoints")
)

// names of the two singleton documents in TableCheckpoints
const (
	CrawlerCheckpoint = "crawler"
	CronCheckpoint    = "cron"
)
