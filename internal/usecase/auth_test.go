package usecase_test

import (
	"testing"

	repo "career-compass/internal/adapter/repository"
	"career-compass/internal/domain"
	"career-compass/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	store := repo.NewMemStore()
	store.CreateUser(domain.InsertUser{
		Username: "alice",
		Password: "secret",
		FullName: "Alice A",
		Email:    "a@x.com",
	})
	auth := usecase.NewAuth(store)

	tests := []struct {
		name     string
		username string
		password string
		wantOK   bool
	}{
		{"valid credentials", "alice", "secret", true},
		{"wrong password", "alice", "nope", false},
		{"unknown username", "bob", "secret", false},
		{"empty password", "alice", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, ok := auth.Login(tt.username, tt.password)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, "alice", user.Username)
			} else {
				assert.Zero(t, user.ID)
			}
		})
	}
}

func TestCurrentUser(t *testing.T) {
	store := repo.NewMemStore()
	created := store.CreateUser(domain.InsertUser{
		Username: "alice", Password: "secret", FullName: "Alice A", Email: "a@x.com",
	})
	auth := usecase.NewAuth(store)

	user, ok := auth.CurrentUser(created.ID)
	require.True(t, ok)
	assert.Equal(t, "alice", user.Username)

	_, ok = auth.CurrentUser(999)
	assert.False(t, ok)
}
