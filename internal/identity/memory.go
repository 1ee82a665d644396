package identity

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"touchline/internal/admission/ports"
	id "touchline/pkg/domain"
	"touchline/pkg/platform/sentinel"
)

type memoryAccount struct {
	id         id.ExternalAccountID
	username   string
	secretHash []byte
	profile    ports.AccountProfile
}

// MemoryProvider is an in-process identity provider for development mode
// and tests. Secrets are bcrypt-hashed; usernames are unique; deletes are
// idempotent, matching the contract of the real provider.
type MemoryProvider struct {
	mu         sync.Mutex
	accounts   map[id.ExternalAccountID]*memoryAccount
	byUsername map[string]id.ExternalAccountID

	// FailCreate makes the next CreateAccount calls fail, for saga tests.
	FailCreate error
}

func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{
		accounts:   make(map[id.ExternalAccountID]*memoryAccount),
		byUsername: make(map[string]id.ExternalAccountID),
	}
}

var _ ports.IdentityProvider = (*MemoryProvider)(nil)

func (p *MemoryProvider) CreateAccount(_ context.Context, account ports.NewAccount) (id.ExternalAccountID, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.FailCreate != nil {
		return "", p.FailCreate
	}
	if account.Username == "" || account.Secret == "" {
		return "", fmt.Errorf("username and secret are required")
	}
	if _, taken := p.byUsername[account.Username]; taken {
		return "", fmt.Errorf("account username already taken: %w", sentinel.ErrConflict)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(account.Secret), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash account secret: %w", err)
	}

	accountID := id.ExternalAccountID("acct_" + uuid.NewString())
	p.accounts[accountID] = &memoryAccount{
		id:         accountID,
		username:   account.Username,
		secretHash: hash,
		profile:    account.Profile,
	}
	p.byUsername[account.Username] = accountID
	return accountID, nil
}

func (p *MemoryProvider) DeleteAccount(_ context.Context, accountID id.ExternalAccountID) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	acct, ok := p.accounts[accountID]
	if !ok {
		// Already gone counts as success.
		return nil
	}
	delete(p.byUsername, acct.username)
	delete(p.accounts, accountID)
	return nil
}

// Verify checks a username/secret pair. Test helper only.
func (p *MemoryProvider) Verify(username, secret string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	accountID, ok := p.byUsername[username]
	if !ok {
		return false
	}
	return bcrypt.CompareHashAndPassword(p.accounts[accountID].secretHash, []byte(secret)) == nil
}

// Exists reports whether an account is present. Test helper only.
func (p *MemoryProvider) Exists(accountID id.ExternalAccountID) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.accounts[accountID]
	return ok
}
