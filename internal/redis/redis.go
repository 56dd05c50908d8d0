package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var Rdb *redis.Client

// scheduleConfigKey holds the serialized schedule snapshot. The store
// invalidates it on every rule/settings write; the TTL is only a backstop.
const (
	scheduleConfigKey = "schedule:config"
	scheduleConfigTTL = time.Hour

	pairingKeyPrefix = "pairing:"
	pairingCodeTTL   = 5 * time.Minute
)

func InitRedis(redisAddress string, redisUsername string, redisPassword string) {
	Rdb = redis.NewClient(&redis.Options{
		Addr:     redisAddress,
		Username: redisUsername,
		Password: redisPassword,
		DB:       0,
	})
}

// GetScheduleConfig returns the cached snapshot, or nil on miss. Redis being
// down is treated as a miss; callers fall through to Postgres.
func GetScheduleConfig(ctx context.Context) []byte {
	if Rdb == nil {
		return nil
	}
	data, err := Rdb.Get(ctx, scheduleConfigKey).Bytes()
	if err != nil {
		return nil
	}
	return data
}

func SetScheduleConfig(ctx context.Context, data []byte) {
	if Rdb == nil {
		return
	}
	if err := Rdb.Set(ctx, scheduleConfigKey, data, scheduleConfigTTL).Err(); err != nil {
		log.Error().Err(err).Msg("failed to cache schedule config")
	}
}

func InvalidateScheduleConfig(ctx context.Context) {
	if Rdb == nil {
		return
	}
	if err := Rdb.Del(ctx, scheduleConfigKey).Err(); err != nil {
		log.Error().Err(err).Msg("failed to invalidate schedule config cache")
	}
}

// SetPairingCode stores a short-lived pairing code for a device.
func SetPairingCode(ctx context.Context, code, deviceID string) error {
	if Rdb == nil {
		return redis.ErrClosed
	}
	return Rdb.Set(ctx, pairingKeyPrefix+code, deviceID, pairingCodeTTL).Err()
}

// GetPairingCode returns the device id a code was issued for, consuming the
// code so it cannot be redeemed twice.
func GetPairingCode(ctx context.Context, code string) (string, error) {
	if Rdb == nil {
		return "", redis.ErrClosed
	}
	deviceID, err := Rdb.GetDel(ctx, pairingKeyPrefix+code).Result()
	if err != nil {
		return "", err
	}
	return deviceID, nil
}
