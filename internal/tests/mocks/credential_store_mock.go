package mocks

// CredentialStoreMock serves Secrets when GetFunc is unset.
type CredentialStoreMock struct {
	GetFunc    func(provider string) (string, bool, error)
	SetFunc    func(provider, secret string) error
	RemoveFunc func(provider string) error

	Secrets map[string]string
}

func (m *CredentialStoreMock) Get(provider string) (string, bool, error) {
	if m.GetFunc != nil {
		return m.GetFunc(provider)
	}
	secret, ok := m.Secrets[provider]
	return secret, ok, nil
}

func (m *CredentialStoreMock) Set(provider, secret string) error {
	if m.SetFunc != nil {
		return m.SetFunc(provider, secret)
	}
	if m.Secrets == nil {
		m.Secrets = make(map[string]string)
	}
	m.Secrets[provider] = secret
	return nil
}

func (m *CredentialStoreMock) Remove(provider string) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(provider)
	}
	delete(m.Secrets, provider)
	return nil
}

func (m *CredentialStoreMock) Has(provider string) bool {
	_, ok, err := m.Get(provider)
	return ok && err == nil
}
