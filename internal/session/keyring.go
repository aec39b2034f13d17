package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	// “Service” groups the client's session entries in the OS keychain.
	KeyringService = "jobtrack"

	accountToken = "session:token"
	accountName  = "session:name"
)

// Keyring stores the session in the OS keychain so it survives restarts,
// like a browser's origin-scoped storage would.
type Keyring struct{}

func NewKeyring() *Keyring { return &Keyring{} }

func (k *Keyring) SetSession(token, name string) error {
	if err := k.SetToken(token); err != nil {
		return err
	}
	return k.SetName(name)
}

func (k *Keyring) SetToken(token string) error {
	if strings.TrimSpace(token) == "" {
		return errors.New("session token is empty")
	}
	if err := keyring.Set(KeyringService, accountToken, token); err != nil {
		return fmt.Errorf("keyring set token: %w", err)
	}
	return nil
}

func (k *Keyring) SetName(name string) error {
	if err := keyring.Set(KeyringService, accountName, name); err != nil {
		return fmt.Errorf("keyring set name: %w", err)
	}
	return nil
}

func (k *Keyring) Token() (string, error) { return get(accountToken) }
func (k *Keyring) Name() (string, error)  { return get(accountName) }

func (k *Keyring) Clear() error {
	// Both entries go together; a missing one is already cleared.
	if err := del(accountToken); err != nil {
		return err
	}
	return del(accountName)
}

func get(account string) (string, error) {
	v, err := keyring.Get(KeyringService, account)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("keyring get %s: %w", account, err)
	}
	return v, nil
}

func del(account string) error {
	err := keyring.Delete(KeyringService, account)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("keyring delete %s: %w", account, err)
	}
	return nil
}
