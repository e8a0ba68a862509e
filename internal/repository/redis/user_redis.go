package redis

import (
	"context"
	"fmt"
	"strconv"

	"github.com/SimpnicServerTeam/scs-sentence-server/internal/models"
	"github.com/SimpnicServerTeam/scs-sentence-server/internal/repository"
	"github.com/redis/go-redis/v9"
)

var _ repository.UserRepository = (*RedisUserRepository)(nil)

const (
	fieldPasswordHash = "password_hash"
	fieldSentence     = "sentence"
	fieldCredits      = "credits"
)

// Script results below zero are error markers; a real balance is never negative.
const (
	resultNotFound     = -1
	resultInsufficient = -2
	resultNegative     = -3
)

var createUserScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 1 then
	return 0
end
redis.call('HSET', KEYS[1], 'password_hash', ARGV[1], 'sentence', '', 'credits', ARGV[2])
return 1
`)

var updateUserScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
	return 0
end
if #ARGV > 0 then
	redis.call('HSET', KEYS[1], unpack(ARGV))
end
return 1
`)

// ARGV[1] is the cost, ARGV[2] the optional new sentence.
var chargeScript = redis.NewScript(`
local credits = redis.call('HGET', KEYS[1], 'credits')
if not credits then
	return -1
end
local cost = tonumber(ARGV[1])
if tonumber(credits) < cost then
	return -2
end
if ARGV[2] then
	redis.call('HSET', KEYS[1], 'sentence', ARGV[2])
end
return redis.call('HINCRBY', KEYS[1], 'credits', -cost)
`)

var retrieveScript = redis.NewScript(`
local credits = redis.call('HGET', KEYS[1], 'credits')
if not credits then
	return {-1, ''}
end
local cost = tonumber(ARGV[1])
if tonumber(credits) < cost then
	return {-2, ''}
end
local balance = redis.call('HINCRBY', KEYS[1], 'credits', -cost)
return {balance, redis.call('HGET', KEYS[1], 'sentence')}
`)

var addCreditsScript = redis.NewScript(`
local credits = redis.call('HGET', KEYS[1], 'credits')
if not credits then
	return -1
end
local amount = tonumber(ARGV[1])
if tonumber(credits) + amount < 0 then
	return -3
end
return redis.call('HINCRBY', KEYS[1], 'credits', amount)
`)

// RedisUserRepository implements UserRepository with one Redis hash per user.
type RedisUserRepository struct {
	client *redis.Client
}

// Helper to construct user key
func makeUserKey(username string) string {
	return fmt.Sprintf("user:%s", username)
}

func NewRedisUserRepository(client *redis.Client) *RedisUserRepository {
	return &RedisUserRepository{
		client: client,
	}
}

func (r *RedisUserRepository) CreateUser(ctx context.Context, username string, passwordHash []byte, credits int64) error {
	if credits < 0 {
		return repository.ErrNegativeCredits
	}

	created, err := createUserScript.Run(ctx, r.client, []string{makeUserKey(username)}, string(passwordHash), credits).Int64()
	if err != nil {
		return fmt.Errorf("failed to create user in redis: %w", err)
	}
	if created == 0 {
		return repository.ErrUserExists
	}
	return nil
}

func (r *RedisUserRepository) GetUser(ctx context.Context, username string) (*models.User, error) {
	fields, err := r.client.HGetAll(ctx, makeUserKey(username)).Result()
	if err != nil {
		return nil, fmt.Errorf("redis HGETALL failed: %w", err)
	}
	if len(fields) == 0 {
		return nil, repository.ErrUserNotFound
	}

	credits, err := strconv.ParseInt(fields[fieldCredits], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("corrupt credits for user %q: %w", username, err)
	}
	return &models.User{
		Username:     username,
		PasswordHash: []byte(fields[fieldPasswordHash]),
		Sentence:     fields[fieldSentence],
		Credits:      credits,
	}, nil
}

func (r *RedisUserRepository) UpdateUser(ctx context.Context, username string, update models.UserUpdate) error {
	var args []any
	if update.PasswordHash != nil {
		args = append(args, fieldPasswordHash, string(update.PasswordHash))
	}
	if update.Sentence != nil {
		args = append(args, fieldSentence, *update.Sentence)
	}
	if update.Credits != nil {
		if *update.Credits < 0 {
			return repository.ErrNegativeCredits
		}
		args = append(args, fieldCredits, *update.Credits)
	}

	updated, err := updateUserScript.Run(ctx, r.client, []string{makeUserKey(username)}, args...).Int64()
	if err != nil {
		return fmt.Errorf("failed to update user in redis: %w", err)
	}
	if updated == 0 {
		return repository.ErrUserNotFound
	}
	return nil
}

func (r *RedisUserRepository) GetCredits(ctx context.Context, username string) (int64, error) {
	credits, err := r.client.HGet(ctx, makeUserKey(username), fieldCredits).Int64()
	if err == redis.Nil {
		return 0, repository.ErrUserNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("redis HGET failed: %w", err)
	}
	return credits, nil
}

func (r *RedisUserRepository) ChargeCredits(ctx context.Context, username string, amount int64) (int64, error) {
	result, err := chargeScript.Run(ctx, r.client, []string{makeUserKey(username)}, amount).Int64()
	if err != nil {
		return 0, fmt.Errorf("failed to charge credits in redis: %w", err)
	}
	return balanceFromResult(result)
}

func (r *RedisUserRepository) StoreSentence(ctx context.Context, username, sentence string, cost int64) (int64, error) {
	result, err := chargeScript.Run(ctx, r.client, []string{makeUserKey(username)}, cost, sentence).Int64()
	if err != nil {
		return 0, fmt.Errorf("failed to store sentence in redis: %w", err)
	}
	return balanceFromResult(result)
}

func (r *RedisUserRepository) RetrieveSentence(ctx context.Context, username string, cost int64) (string, int64, error) {
	values, err := retrieveScript.Run(ctx, r.client, []string{makeUserKey(username)}, cost).Slice()
	if err != nil {
		return "", 0, fmt.Errorf("failed to retrieve sentence from redis: %w", err)
	}
	if len(values) != 2 {
		return "", 0, fmt.Errorf("unexpected retrieve script reply: %v", values)
	}

	result, ok := values[0].(int64)
	if !ok {
		return "", 0, fmt.Errorf("unexpected balance type %T", values[0])
	}
	balance, err := balanceFromResult(result)
	if err != nil {
		return "", 0, err
	}
	sentence, _ := values[1].(string)
	return sentence, balance, nil
}

func (r *RedisUserRepository) AddCredits(ctx context.Context, username string, amount int64) (int64, error) {
	result, err := addCreditsScript.Run(ctx, r.client, []string{makeUserKey(username)}, amount).Int64()
	if err != nil {
		return 0, fmt.Errorf("failed to add credits in redis: %w", err)
	}
	return balanceFromResult(result)
}

func balanceFromResult(result int64) (int64, error) {
	switch result {
	case resultNotFound:
		return 0, repository.ErrUserNotFound
	case resultInsufficient:
		return 0, repository.ErrInsufficientCredits
	case resultNegative:
		return 0, repository.ErrNegativeCredits
	}
	return result, nil
}
