package model

// Subscription 订阅关系 channel_id是被订阅的频道 subscriber_id是订阅者
type Subscription struct {
	SubscriptionId int64  `gorm:"column:subscription_id;primaryKey" json:"subscription_id"`
	ChannelId      int64  `gorm:"column:channel_id;uniqueIndex:uk_channel_subscriber" json:"channel_id"`
	SubscriberId   int64  `gorm:"column:subscriber_id;uniqueIndex:uk_channel_subscriber" json:"subscriber_id"`
	CreatedAt      string `gorm:"column:created_at" json:"created_at"`
}

func (s *Subscription) TableName() string {
	return "subscriptions"
}
