package cache

import (
	"fmt"
	"time"
)

const (
	SnapshotKeyPrefix = "trend:snapshot:%d"
	HistoryKeyPrefix  = "trend:history:%d"
	RankingKeyPrefix  = "trend:ranking:%d"
	SummaryKeyPrefix  = "trend:summary:%d"
)

const (
	SnapshotTTL = 30 * time.Minute
	HistoryTTL  = 60 * time.Minute
	RankingTTL  = 15 * time.Minute
	SummaryTTL  = 10 * time.Minute
)

func SnapshotKey(keywordID uint) string {
	return fmt.Sprintf(SnapshotKeyPrefix, keywordID)
}

func HistoryKey(keywordID uint) string {
	return fmt.Sprintf(HistoryKeyPrefix, keywordID)
}

func RankingKey(userID uint) string {
	return fmt.Sprintf(RankingKeyPrefix, userID)
}

func SummaryKey(userID uint) string {
	return fmt.Sprintf(SummaryKeyPrefix, userID)
}
