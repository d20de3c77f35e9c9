package users

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/bloghub/internal/common"
	"github.com/dmitrijs2005/bloghub/internal/server/models"
)

type followKey struct {
	userID     int64
	followerID int64
}

// MemoryRepository keeps accounts and follows in process memory. It enforces
// the same constraints as the SQL schema: unique nicknames, unique follow
// pairs and cascading delete of follows.
type MemoryRepository struct {
	mu      sync.RWMutex
	nextID  int64
	byID    map[int64]*models.Account
	follows map[followKey]time.Time
	now     func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:    make(map[int64]*models.Account),
		follows: make(map[followKey]time.Time),
		now:     time.Now,
	}
}

// snapshot returns a copy of a with derived counts filled in. Caller holds mu.
func (r *MemoryRepository) snapshot(a *models.Account) *models.Account {
	c := *a
	c.FollowerCount, c.FollowingCount = 0, 0
	for k := range r.follows {
		if k.userID == a.ID {
			c.FollowerCount++
		}
		if k.followerID == a.ID {
			c.FollowingCount++
		}
	}
	return &c
}

func (r *MemoryRepository) findNickname(nickname string) *models.Account {
	for _, a := range r.byID {
		if a.Nickname == nickname {
			return a
		}
	}
	return nil
}

func (r *MemoryRepository) FindByNickname(_ context.Context, nickname string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a := r.findNickname(nickname)
	if a == nil {
		return nil, common.ErrorNotFound
	}
	return r.snapshot(a), nil
}

func (r *MemoryRepository) FindByID(_ context.Context, id int64) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return r.snapshot(a), nil
}

func (r *MemoryRepository) ListAll(_ context.Context) ([]*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	accounts := make([]*models.Account, 0, len(r.byID))
	for _, a := range r.byID {
		accounts = append(accounts, r.snapshot(a))
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].ID < accounts[j].ID })
	return accounts, nil
}

func (r *MemoryRepository) ExistsByNickname(_ context.Context, nickname string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.findNickname(nickname) != nil, nil
}

func (r *MemoryRepository) Insert(_ context.Context, account *models.Account) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.findNickname(account.Nickname) != nil {
		return nil, fmt.Errorf("%w: users_nickname_key", common.ErrorAlreadyExists)
	}

	r.nextID++
	a := *account
	a.ID = r.nextID
	a.MemberSince = r.now().UTC()
	r.byID[a.ID] = &a

	return r.snapshot(&a), nil
}

func (r *MemoryRepository) Update(_ context.Context, id int64, patch models.AccountPatch) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}

	if nickname, set := patch.Nickname.Get(); set {
		if other := r.findNickname(nickname); other != nil && other.ID != id {
			return nil, fmt.Errorf("%w: users_nickname_key", common.ErrorAlreadyExists)
		}
	}

	patch.Apply(a)
	return r.snapshot(a), nil
}

func (r *MemoryRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return common.ErrorNotFound
	}

	delete(r.byID, id)
	for k := range r.follows {
		if k.userID == id || k.followerID == id {
			delete(r.follows, k)
		}
	}
	return nil
}

func (r *MemoryRepository) Follow(_ context.Context, followerID, followedID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, okFollower := r.byID[followerID]
	_, okFollowed := r.byID[followedID]
	if !okFollower || !okFollowed {
		return common.ErrorNotFound
	}

	k := followKey{userID: followedID, followerID: followerID}
	if _, exists := r.follows[k]; exists {
		return fmt.Errorf("%w: unique_follow", common.ErrorAlreadyExists)
	}

	r.follows[k] = r.now().UTC()
	return nil
}

func (r *MemoryRepository) Unfollow(_ context.Context, followerID, followedID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := followKey{userID: followedID, followerID: followerID}
	if _, exists := r.follows[k]; !exists {
		return common.ErrorNotFound
	}

	delete(r.follows, k)
	return nil
}
