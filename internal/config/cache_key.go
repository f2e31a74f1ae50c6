package config

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// DashboardSummaryKey returns the cache key for the dashboard summary snapshot
func (r *CacheKeyStruct) DashboardSummaryKey() string {
	return "dashboard:summary"
}

// TransacaoFeedChannel returns the Redis PubSub channel for the live transaction feed
func (r *CacheKeyStruct) TransacaoFeedChannel() string {
	return "transacoes:feed"
}

var CacheKey = NewCacheKeyStruct()
