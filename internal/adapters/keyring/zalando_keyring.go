package keyring

import (
	"errors"

	"appctl/internal/ports"

	"github.com/zalando/go-keyring"
)

const service = "appctl"

// Compile-time interface compliance check
var _ ports.Keyring = ZalandoKeyring{}

// ZalandoKeyring stores secrets in the OS keychain under the appctl service
type ZalandoKeyring struct{}

func ProvideZalandoKeyring() ports.Keyring {
	return ZalandoKeyring{}
}

func (z ZalandoKeyring) GetKey(keyName string) (string, error) {
	return keyring.Get(service, keyName)
}

func (z ZalandoKeyring) SetKey(keyName string, keyValue string) error {
	return keyring.Set(service, keyName, keyValue)
}

func (z ZalandoKeyring) HasKey(keyName string) (bool, error) {
	_, err := keyring.Get(service, keyName)
	if errors.Is(err, keyring.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}
