package models

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of the repo interfaces, used by
// tests and local development without a MongoDB instance.
type MemoryRepo struct {
	mu       sync.Mutex
	users    []*User
	otps     map[string]*OtpRecord
	profiles []*Profile
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		otps: make(map[string]*OtpRecord),
	}
}

func (m *MemoryRepo) ExistsByEmailOrPhone(ctx context.Context, email, phone string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email || u.Phone == phone {
			return true, nil
		}
	}
	return false, nil
}

func (m *MemoryRepo) FindByChannel(ctx context.Context, channel, identifier string) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if channel == ChannelPhone {
			if u.Phone == identifier {
				copied := *u
				return &copied, nil
			}
		} else if u.Email == identifier {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *MemoryRepo) CreateUser(ctx context.Context, user *User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *user
	m.users = append(m.users, &copied)
	return nil
}

func (m *MemoryRepo) SetToken(ctx context.Context, userID, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.ID == userID {
			u.Token = token
		}
	}
	return nil
}

func (m *MemoryRepo) SetUserType(ctx context.Context, userID string, userType []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.ID == userID {
			u.UserType = userType
		}
	}
	return nil
}

func (m *MemoryRepo) UpsertOtp(ctx context.Context, record *OtpRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *record
	if prior, ok := m.otps[record.Identifier]; ok && copied.Phone == "" {
		copied.Phone = prior.Phone
	}
	m.otps[record.Identifier] = &copied
	return nil
}

func (m *MemoryRepo) FindOtp(ctx context.Context, identifier string) (*OtpRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	record, ok := m.otps[identifier]
	if !ok {
		return nil, nil
	}
	copied := *record
	return &copied, nil
}

func (m *MemoryRepo) DeleteOtp(ctx context.Context, identifier string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.otps, identifier)
	return nil
}

func (m *MemoryRepo) CreateProfile(ctx context.Context, profile *Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *profile
	m.profiles = append(m.profiles, &copied)
	return nil
}

func (m *MemoryRepo) GetProfileByUserID(ctx context.Context, userID string) (*Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.profiles {
		if p.UserID == userID {
			copied := *p
			return &copied, nil
		}
	}
	return nil, nil
}
