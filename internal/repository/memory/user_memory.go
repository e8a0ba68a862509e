package memory

import (
	"context"
	"sync"

	"github.com/SimpnicServerTeam/scs-sentence-server/internal/models"
	"github.com/SimpnicServerTeam/scs-sentence-server/internal/repository"
)

var _ repository.UserRepository = (*MemoryUserRepository)(nil)

// MemoryUserRepository implements UserRepository in memory (NOT FOR PRODUCTION).
type MemoryUserRepository struct {
	users map[string]models.User
	mutex sync.RWMutex
}

// NewMemoryUserRepository creates an empty in-memory user repository.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		users: make(map[string]models.User),
	}
}

func (r *MemoryUserRepository) CreateUser(ctx context.Context, username string, passwordHash []byte, credits int64) error {
	if credits < 0 {
		return repository.ErrNegativeCredits
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.users[username]; exists {
		return repository.ErrUserExists
	}
	r.users[username] = models.User{
		Username:     username,
		PasswordHash: append([]byte(nil), passwordHash...),
		Credits:      credits,
	}
	return nil
}

func (r *MemoryUserRepository) GetUser(ctx context.Context, username string) (*models.User, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	user, exists := r.users[username]
	if !exists {
		return nil, repository.ErrUserNotFound
	}
	user.PasswordHash = append([]byte(nil), user.PasswordHash...)
	return &user, nil
}

func (r *MemoryUserRepository) UpdateUser(ctx context.Context, username string, update models.UserUpdate) error {
	if update.Credits != nil && *update.Credits < 0 {
		return repository.ErrNegativeCredits
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	user, exists := r.users[username]
	if !exists {
		return repository.ErrUserNotFound
	}
	if update.PasswordHash != nil {
		user.PasswordHash = append([]byte(nil), update.PasswordHash...)
	}
	if update.Sentence != nil {
		user.Sentence = *update.Sentence
	}
	if update.Credits != nil {
		user.Credits = *update.Credits
	}
	r.users[username] = user
	return nil
}

func (r *MemoryUserRepository) GetCredits(ctx context.Context, username string) (int64, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	user, exists := r.users[username]
	if !exists {
		return 0, repository.ErrUserNotFound
	}
	return user.Credits, nil
}

func (r *MemoryUserRepository) ChargeCredits(ctx context.Context, username string, amount int64) (int64, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	user, err := r.chargeLocked(username, amount)
	if err != nil {
		return 0, err
	}
	r.users[username] = user
	return user.Credits, nil
}

func (r *MemoryUserRepository) StoreSentence(ctx context.Context, username, sentence string, cost int64) (int64, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	user, err := r.chargeLocked(username, cost)
	if err != nil {
		return 0, err
	}
	user.Sentence = sentence
	r.users[username] = user
	return user.Credits, nil
}

func (r *MemoryUserRepository) RetrieveSentence(ctx context.Context, username string, cost int64) (string, int64, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	user, err := r.chargeLocked(username, cost)
	if err != nil {
		return "", 0, err
	}
	r.users[username] = user
	return user.Sentence, user.Credits, nil
}

func (r *MemoryUserRepository) AddCredits(ctx context.Context, username string, amount int64) (int64, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	user, exists := r.users[username]
	if !exists {
		return 0, repository.ErrUserNotFound
	}
	if user.Credits+amount < 0 {
		return 0, repository.ErrNegativeCredits
	}
	user.Credits += amount
	r.users[username] = user
	return user.Credits, nil
}

// chargeLocked returns a copy of the user with amount subtracted.
// The caller must hold the write lock and store the copy back.
func (r *MemoryUserRepository) chargeLocked(username string, amount int64) (models.User, error) {
	user, exists := r.users[username]
	if !exists {
		return models.User{}, repository.ErrUserNotFound
	}
	if user.Credits < amount {
		return models.User{}, repository.ErrInsufficientCredits
	}
	user.Credits -= amount
	return user, nil
}
